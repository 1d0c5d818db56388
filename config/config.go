package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Server   *Server   `json:"server" yaml:"server"`
	Database *Database `json:"database" yaml:"database"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Session  *Session  `json:"session" yaml:"session"`
	Captcha  *Captcha  `json:"captcha" yaml:"captcha"`
}

type Server struct {
	Http           int      `json:"http" yaml:"http"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
}

func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load 读取配置文件，并用环境变量覆盖敏感字段
func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("解析 %s 读取错误: %w", filename, err)
	}
	conf.withDefaults()

	if v := os.Getenv("SESSION_SECRET"); v != "" {
		conf.Session.Secret = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		conf.Database.Dsn = v
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) withDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Redis == nil {
		c.Redis = &Redis{Address: "127.0.0.1", Port: 6379}
	}
	if c.Session == nil {
		c.Session = &Session{}
	}
	if c.Session.Name == "" {
		c.Session.Name = "booksite_session"
	}
	if c.Session.MaxAge == 0 {
		c.Session.MaxAge = 14 * 24 * 3600
	}
	if c.Captcha == nil {
		c.Captcha = &Captcha{}
	}
	c.Captcha.withDefaults()
}

// Validate 校验必填配置
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", c.Database.Driver)
	}
	switch c.Captcha.Store {
	case CaptchaStoreRedis, CaptchaStoreMemory:
	default:
		return fmt.Errorf("不支持的验证码存储: %s", c.Captcha.Store)
	}
	if c.Session.Secret == "" {
		if !c.Debug() {
			return fmt.Errorf("session.secret is required when app.debug is false")
		}
		c.Session.Secret = "booksite-insecure-dev-secret"
	}
	return nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
