package models

import "time"

// BookMark 书签，对应 book_marks
// 唯一键: user_id + book_id，每本书每个用户只保留一个书签
type BookMark struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_book,priority:1" json:"user_id"`
	BookID    int64     `gorm:"column:book_id;not null;uniqueIndex:uk_user_book,priority:2" json:"book_id"`
	PageID    int64     `gorm:"column:page_id;not null;index" json:"page_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	Book *Book     `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Page *BookPage `gorm:"foreignKey:PageID" json:"page,omitempty"`
}

func (BookMark) TableName() string {
	return "book_marks"
}
