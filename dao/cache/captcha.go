package cache

import (
	"booksite/pkg/log"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CaptchaStorage 验证码答案存储，实现 base64Captcha.Store
type CaptchaStorage struct {
	redis  *redis.Client
	expire time.Duration
}

func NewCaptchaStorage(rdb *redis.Client, expire time.Duration) *CaptchaStorage {
	return &CaptchaStorage{redis: rdb, expire: expire}
}

func (s *CaptchaStorage) Set(id string, value string) error {
	ctx, cancel := s.timeout()
	defer cancel()
	return s.redis.Set(ctx, s.key(id), value, s.expire).Err()
}

// Get 读取答案，clear 为 true 时读取后立即删除
func (s *CaptchaStorage) Get(id string, clear bool) string {
	ctx, cancel := s.timeout()
	defer cancel()

	var (
		val string
		err error
	)
	if clear {
		val, err = s.redis.GetDel(ctx, s.key(id)).Result()
	} else {
		val, err = s.redis.Get(ctx, s.key(id)).Result()
	}
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.L.Warn("captcha get failed", zap.String("id", id), zap.Error(err))
		}
		return ""
	}
	return val
}

func (s *CaptchaStorage) Verify(id, answer string, clear bool) bool {
	if id == "" || answer == "" {
		return false
	}
	stored := s.Get(id, clear)
	return stored != "" && strings.EqualFold(stored, strings.TrimSpace(answer))
}

func (s *CaptchaStorage) key(id string) string {
	return fmt.Sprintf("captcha:%s", id)
}

func (s *CaptchaStorage) timeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}
