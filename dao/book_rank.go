package dao

import (
	"booksite/models"
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRankDAO struct {
	Repo[models.BookRank]
}

func NewBookRankDAO(db *gorm.DB) *BookRankDAO {
	return &BookRankDAO{Repo: NewRepo[models.BookRank](db)}
}

// IncrFavCount 收藏计数增减，记录不存在时先创建，计数不小于 0
func (d *BookRankDAO) IncrFavCount(ctx context.Context, bookID int64, delta int64) error {
	db := d.Db.WithContext(ctx)

	rank := models.BookRank{BookID: bookID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rank).Error; err != nil {
		return fmt.Errorf("dao.BookRank.IncrFavCount create: %w", err)
	}

	err := db.Model(&models.BookRank{}).
		Where("book_id = ?", bookID).
		Update("fav_count", gorm.Expr("CASE WHEN fav_count + ? < 0 THEN 0 ELSE fav_count + ? END", delta, delta)).Error
	if err != nil {
		return fmt.Errorf("dao.BookRank.IncrFavCount update: %w", err)
	}
	return nil
}

// GetByBookID 查询书籍统计，不存在时返回零值
func (d *BookRankDAO) GetByBookID(ctx context.Context, bookID int64) (*models.BookRank, error) {
	var item models.BookRank
	err := d.Db.WithContext(ctx).Where("book_id = ?", bookID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.BookID == 0 {
		return &models.BookRank{BookID: bookID}, nil
	}
	return &item, nil
}
