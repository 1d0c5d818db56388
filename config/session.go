package config

// Session 会话 Cookie 配置
type Session struct {
	Name   string `json:"name" yaml:"name"`
	Secret string `json:"secret" yaml:"secret"`
	MaxAge int    `json:"max_age" yaml:"max_age"` // 秒
	Secure bool   `json:"secure" yaml:"secure"`
}
