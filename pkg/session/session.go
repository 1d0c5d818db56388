package session

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	keyUserID  = "_auth_user_id"
	keyLoginAt = "_auth_login_at"

	LoginURL = "/accounts/login"
)

// Login 写入登录态
func Login(c *gin.Context, userID int64) error {
	s := sessions.Default(c)
	s.Clear()
	s.Set(keyUserID, userID)
	s.Set(keyLoginAt, time.Now().Unix())
	return s.Save()
}

// Logout 清空会话
func Logout(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// UserID 当前登录用户，未登录返回 0
func UserID(c *gin.Context) int64 {
	switch v := sessions.Default(c).Get(keyUserID).(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
