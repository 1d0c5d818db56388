package types

import "html/template"

// Captcha 图形验证码，Image 为 data:image/png;base64 格式
type Captcha struct {
	ID    string       `json:"id"`
	Image template.URL `json:"image"`
}
