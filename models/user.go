package models

import "time"

// Users 用户表
type Users struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"` // 雪花算法ID
	Username  string     `gorm:"column:username;type:varchar(30);not null;uniqueIndex:uk_username" json:"username"`
	Email     string     `gorm:"column:email;type:varchar(254);not null;default:''" json:"email"`
	Password  string     `gorm:"column:password;type:varchar(128);not null" json:"-"`
	IsActive  bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	LastLogin *time.Time `gorm:"column:last_login" json:"last_login"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
