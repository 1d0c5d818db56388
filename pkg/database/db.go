package database

import (
	"booksite/config"
	"booksite/models"
	"booksite/pkg/log"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	db, err := Open(conf.Database)
	if err != nil {
		log.L.Fatal("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db
}

// Open 按驱动类型打开连接，TranslateError 让唯一键冲突返回 gorm.ErrDuplicatedKey
func Open(conf *config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(conf.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(conf.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}

	gormConf := &gorm.Config{TranslateError: true}
	if !conf.Debug {
		gormConf.Logger = logger.Default.LogMode(logger.Silent)
	}
	return gorm.Open(dialector, gormConf)
}

// Migrate 同步表结构
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Users{},
		&models.Book{},
		&models.BookPage{},
		&models.BookMark{},
		&models.BookRank{},
	)
}
