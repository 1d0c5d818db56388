package middleware

import (
	"net/http"
	"net/url"

	"booksite/pkg/context"
	"booksite/pkg/session"

	"github.com/gin-gonic/gin"
)

// LoginRequired 未登录时跳转登录页，登录后回到原地址
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := session.UserID(c)
		if uid <= 0 {
			target := session.LoginURL + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}

		c.Set(context.CtxUserID, uid)
		c.Next()
	}
}
