package dao

import (
	"booksite/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type BookMarkDAO struct {
	Repo[models.BookMark]
}

func NewBookMarkDAO(db *gorm.DB) *BookMarkDAO {
	return &BookMarkDAO{Repo: NewRepo[models.BookMark](db)}
}

// GetByUserBook 查询用户在某本书上的书签，不存在返回 nil
func (d *BookMarkDAO) GetByUserBook(ctx context.Context, userID, bookID int64) (*models.BookMark, error) {
	var item models.BookMark
	err := d.Db.WithContext(ctx).Where("user_id = ? AND book_id = ?", userID, bookID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// GetByIDAndUser 按书签ID查询，限定所属用户
func (d *BookMarkDAO) GetByIDAndUser(ctx context.Context, id, userID int64) (*models.BookMark, error) {
	return d.FindByWhere(ctx, "id = ? AND user_id = ?", id, userID)
}

// ListByUser 用户全部书签，按创建时间倒序，带出书名和章节名
func (d *BookMarkDAO) ListByUser(ctx context.Context, userID int64) ([]*models.BookMark, error) {
	var items []*models.BookMark
	err := d.Db.WithContext(ctx).
		Preload("Book").
		Preload("Page").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&items).Error
	return items, err
}

// DeleteByID 删除书签，返回是否真的删除了记录
func (d *BookMarkDAO) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res := d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.BookMark{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsNotFound 统一判断记录不存在
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
