package handler

import (
	"booksite/middleware"
	"booksite/pkg/context"
	"booksite/pkg/log"
	"booksite/pkg/response"
	"booksite/service"
	"booksite/types"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Bookmark struct {
	UserService     service.IUserService
	BookmarkService service.IBookmarkService
}

// RegisterRouter 增删接口只注册 POST，其他方法落到 404
func (b *Bookmark) RegisterRouter(r gin.IRouter) {
	g := r.Group("/accounts/bookmark", middleware.LoginRequired())
	g.GET("", context.Wrap(b.List))
	g.POST("/add", context.Wrap(b.Add))
	g.POST("/del/:bookmark_id", context.Wrap(b.Delete))
}

func (b *Bookmark) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	ctx := c.Request.Context()
	user, err := b.UserService.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	bookmarks, err := b.BookmarkService.List(ctx, userID)
	if err != nil {
		return err
	}

	c.HTML(http.StatusOK, "bookmark.html", gin.H{
		"Title":     "我的书签",
		"User":      user,
		"Bookmarks": bookmarks,
	})
	return nil
}

// Add 添加书签，同一本书已有书签时改为指向新章节
func (b *Bookmark) Add(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	// 只读取 POST 表单中的 pageid
	pageID, err := strconv.ParseInt(c.PostForm("pageid"), 10, 64)
	if err != nil || pageID <= 0 {
		return response.NewError(response.CodeFailed, types.MsgChapterError)
	}

	if _, err := b.BookmarkService.Add(c.Request.Context(), userID, pageID); err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			return response.NewError(response.CodeFailed, types.MsgChapterError)
		}
		return err
	}

	response.Success(c, types.MsgBookmarkAdded)
	return nil
}

// Delete 删除书签，任何失败都返回同一条提示
func (b *Bookmark) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	bookmarkID, err := strconv.ParseInt(c.Param("bookmark_id"), 10, 64)
	if err != nil {
		return response.NewError(response.CodeFailed, types.MsgBookmarkDelFailure)
	}

	if err := b.BookmarkService.Delete(c.Request.Context(), userID, bookmarkID); err != nil {
		if !errors.Is(err, service.ErrBookmarkNotFound) {
			log.L.Error("delete bookmark failed",
				zap.Int64("user_id", userID), zap.Int64("bookmark_id", bookmarkID), zap.Error(err))
		}
		return response.NewError(response.CodeFailed, types.MsgBookmarkDelFailure)
	}

	response.Success(c, types.MsgBookmarkDeleted)
	return nil
}
