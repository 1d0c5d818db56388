package models

import "time"

// Book 书籍，由书库模块维护，这里只读
type Book struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Author    string    `gorm:"column:author;type:varchar(100);not null;default:''" json:"author"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// BookPage 书籍章节
type BookPage struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	BookID    int64     `gorm:"column:book_id;not null;index:idx_book_sort,priority:1" json:"book_id"`
	Title     string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Sort      int       `gorm:"column:sort;not null;default:0;index:idx_book_sort,priority:2" json:"sort"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (BookPage) TableName() string {
	return "book_pages"
}
