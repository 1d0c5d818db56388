package models

import "time"

// BookRank 书籍统计，fav_count 为收藏（书签）人数
type BookRank struct {
	BookID    int64     `gorm:"column:book_id;primaryKey;autoIncrement:false" json:"book_id"`
	FavCount  int64     `gorm:"column:fav_count;not null;default:0" json:"fav_count"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (BookRank) TableName() string {
	return "book_ranks"
}
