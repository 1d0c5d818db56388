// Package dbtest 为测试提供迁移好的 SQLite 数据库
package dbtest

import (
	"booksite/config"
	"booksite/models"
	"booksite/pkg/database"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

// New 在临时目录创建数据库并建表，测试结束自动关闭
func New(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(&config.Database{Driver: config.DriverSQLite, Database: path})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// SeedBook 写入一本书和若干章节，章节ID为 bookID*100+序号
func SeedBook(t testing.TB, db *gorm.DB, bookID int64, title string, pages int) []models.BookPage {
	t.Helper()

	if err := db.Create(&models.Book{ID: bookID, Title: title}).Error; err != nil {
		t.Fatalf("seed book: %v", err)
	}
	items := make([]models.BookPage, 0, pages)
	for i := 1; i <= pages; i++ {
		items = append(items, models.BookPage{
			ID:     bookID*100 + int64(i),
			BookID: bookID,
			Title:  title + " 第" + string(rune('0'+i%10)) + "章",
			Sort:   i,
		})
	}
	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			t.Fatalf("seed pages: %v", err)
		}
	}
	return items
}

// SeedUser 直接写入用户，密码字段存放调用方给的 hash
func SeedUser(t testing.TB, db *gorm.DB, id int64, username string, passwordHash string) *models.Users {
	t.Helper()

	user := &models.Users{ID: id, Username: username, Email: username + "@example.com", Password: passwordHash, IsActive: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}
