package dao

import (
	"booksite/models"
	"context"

	"gorm.io/gorm"
)

type BookPageDAO struct {
	Repo[models.BookPage]
}

func NewBookPageDAO(db *gorm.DB) *BookPageDAO {
	return &BookPageDAO{Repo: NewRepo[models.BookPage](db)}
}

// GetByID 查询章节，未找到返回 gorm.ErrRecordNotFound
func (d *BookPageDAO) GetByID(ctx context.Context, pageID int64) (*models.BookPage, error) {
	return d.FindById(ctx, pageID)
}
