package service

import (
	"booksite/config"
	"booksite/dao/cache"
	"booksite/types"
	"context"
	"html/template"
	"strings"

	"github.com/mojocn/base64Captcha"
	"github.com/redis/go-redis/v9"
)

var _ ICaptchaService = (*CaptchaService)(nil)

type ICaptchaService interface {
	Generate(ctx context.Context) (*types.Captcha, error)
	// Verify 校验后答案即失效，同一个验证码只能用一次
	Verify(ctx context.Context, id string, answer string) bool
}

type CaptchaService struct {
	captcha *base64Captcha.Captcha
}

func NewCaptchaService(conf *config.Config, rdb *redis.Client) *CaptchaService {
	var store base64Captcha.Store
	switch conf.Captcha.Store {
	case config.CaptchaStoreRedis:
		store = cache.NewCaptchaStorage(rdb, conf.Captcha.Expiration())
	default:
		store = base64Captcha.NewMemoryStore(base64Captcha.GCLimitNumber, conf.Captcha.Expiration())
	}
	return NewCaptchaServiceWithStore(conf.Captcha, store)
}

func NewCaptchaServiceWithStore(conf *config.Captcha, store base64Captcha.Store) *CaptchaService {
	driver := base64Captcha.NewDriverDigit(conf.Height, conf.Width, conf.Length, 0.7, 80)
	return &CaptchaService{captcha: base64Captcha.NewCaptcha(driver, store)}
}

func (s *CaptchaService) Generate(ctx context.Context) (*types.Captcha, error) {
	id, b64s, _, err := s.captcha.Generate()
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(b64s, "data:") {
		b64s = "data:image/png;base64," + b64s
	}
	return &types.Captcha{ID: id, Image: template.URL(b64s)}, nil
}

func (s *CaptchaService) Verify(ctx context.Context, id string, answer string) bool {
	answer = strings.TrimSpace(answer)
	if id == "" || answer == "" {
		return false
	}
	return s.captcha.Verify(id, answer, true)
}
