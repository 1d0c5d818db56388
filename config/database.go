package config

import "fmt"

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Database 数据库配置
// driver=sqlite 时 database 为数据库文件路径
type Database struct {
	Driver   string `json:"driver" yaml:"driver"`
	Dsn      string `json:"dsn" yaml:"dsn"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	Charset  string `json:"charset" yaml:"charset"`
	Debug    bool   `json:"debug" yaml:"debug"`
}

func (d *Database) DSN() string {
	if d.Dsn != "" {
		return d.Dsn
	}
	if d.Driver == DriverSQLite {
		if d.Database == "" {
			return "booksite.db"
		}
		return d.Database
	}
	charset := d.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database, charset)
}
