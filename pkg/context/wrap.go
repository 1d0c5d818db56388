package context

import (
	"errors"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
)

// Wrap 把返回 error 的 handler 适配成 gin.HandlerFunc，错误交给 response.ErrorMiddleware 渲染
func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			_ = c.Error(err)
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}
