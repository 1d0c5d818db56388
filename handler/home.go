package handler

import (
	"booksite/pkg/context"
	"booksite/pkg/session"
	"booksite/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Home struct {
	UserService service.IUserService
}

func (h *Home) RegisterRouter(r gin.IRouter) {
	r.GET("/", context.Wrap(h.Index))
	r.GET("/health", h.Health)
}

func (h *Home) Index(c *gin.Context) error {
	data := gin.H{"Title": "首页"}
	if uid := session.UserID(c); uid > 0 {
		// 用户已被删除时按未登录处理
		if user, err := h.UserService.GetByID(c.Request.Context(), uid); err == nil {
			data["User"] = user
		}
	}
	c.HTML(http.StatusOK, "index.html", data)
	return nil
}

func (h *Home) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
