package config

import "time"

const (
	CaptchaStoreRedis  = "redis"
	CaptchaStoreMemory = "memory"
)

// Captcha 图形验证码配置
type Captcha struct {
	Store    string `json:"store" yaml:"store"`
	Height   int    `json:"height" yaml:"height"`
	Width    int    `json:"width" yaml:"width"`
	Length   int    `json:"length" yaml:"length"`
	ExpireIn int    `json:"expire_in" yaml:"expire_in"` // 秒
}

func (c *Captcha) withDefaults() {
	if c.Store == "" {
		c.Store = CaptchaStoreRedis
	}
	if c.Height == 0 {
		c.Height = 40
	}
	if c.Width == 0 {
		c.Width = 120
	}
	if c.Length == 0 {
		c.Length = 4
	}
	if c.ExpireIn == 0 {
		c.ExpireIn = 300
	}
}

func (c *Captcha) Expiration() time.Duration {
	return time.Duration(c.ExpireIn) * time.Second
}
