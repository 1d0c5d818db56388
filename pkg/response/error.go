package response

import (
	"errors"
	"net/http"

	"booksite/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

const msgInternal = "系统异常"

// ErrorMiddleware 兜底 panic，并把 c.Errors 中的错误渲染成统一结构
// 非业务错误只记日志，不把底层错误信息返回给客户端
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered", zap.Any("panic", r), zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
					Code: http.StatusInternalServerError,
					Msg:  msgInternal,
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var be *BizError
		if errors.As(err, &be) {
			Fail(c, be.Code, be.Msg)
			c.Abort()
			return
		}
		log.L.Error("handler error", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
			Code: http.StatusInternalServerError,
			Msg:  msgInternal,
		})
	}
}
