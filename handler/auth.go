package handler

import (
	"booksite/pkg/context"
	"booksite/pkg/log"
	"booksite/pkg/response"
	"booksite/pkg/session"
	"booksite/service"
	"booksite/types"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Auth struct {
	UserService    service.IUserService
	CaptchaService service.ICaptchaService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/accounts")
	g.GET("/login", context.Wrap(u.LoginPage))
	g.POST("/login", context.Wrap(u.Login))
	g.Any("/signup", context.Wrap(u.Signup)) // 非 GET/POST 返回 400
	g.Any("/logout", context.Wrap(u.Logout))

	r.GET("/captcha/new", context.Wrap(u.NewCaptcha))
}

func (u *Auth) LoginPage(c *gin.Context) error {
	form := &types.LoginForm{Next: c.Query("next")}
	return u.renderLogin(c, form, types.FormErrors{})
}

// Login 登录，验证码和用户名密码都会校验，错误一并展示，全部通过才写入会话
func (u *Auth) Login(c *gin.Context) error {
	var form types.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		return u.renderLogin(c, &form, types.BindErrors(err))
	}

	ctx := c.Request.Context()
	errs := types.FormErrors{}
	if !u.CaptchaService.Verify(ctx, form.CaptchaID, form.Captcha) {
		errs.Add("captcha", types.MsgCaptchaInvalid)
	}

	user, err := u.UserService.Authenticate(ctx, form.Username, form.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		errs.Add(types.NonFieldErrors, types.MsgInvalidLogin)
	case errors.Is(err, service.ErrUserInactive):
		errs.Add(types.NonFieldErrors, types.MsgInactive)
	case err != nil:
		return err
	}
	if !errs.Empty() {
		return u.renderLogin(c, &form, errs)
	}

	if err := u.login(c, user.ID); err != nil {
		return err
	}
	c.Redirect(http.StatusFound, safeRedirect(form.Next))
	return nil
}

func (u *Auth) Signup(c *gin.Context) error {
	switch c.Request.Method {
	case http.MethodGet:
		return u.renderSignup(c, &types.SignupForm{}, types.FormErrors{})
	case http.MethodPost:
		return u.signup(c)
	default:
		c.AbortWithStatus(http.StatusBadRequest)
		return nil
	}
}

// signup 注册成功后直接登录并跳转首页
func (u *Auth) signup(c *gin.Context) error {
	ctx := c.Request.Context()

	var form types.SignupForm
	errs := types.FormErrors{}
	if err := c.ShouldBind(&form); err != nil {
		errs = types.BindErrors(err)
	}

	if !errs.Has("username") {
		exist, err := u.UserService.IsUsernameExist(ctx, form.Username)
		if err != nil {
			return err
		}
		if exist {
			errs.Add("username", types.MsgDuplicateUsername)
		}
	}
	if form.Password1 != "" && form.Password2 != "" && form.Password1 != form.Password2 {
		errs.Add("password2", types.MsgPasswordMismatch)
	}
	if !errs.Has("captcha") && !u.CaptchaService.Verify(ctx, form.CaptchaID, form.Captcha) {
		errs.Add("captcha", types.MsgCaptchaInvalid)
	}
	if !errs.Empty() {
		return u.renderSignup(c, &form, errs)
	}

	_, err := u.UserService.Register(ctx, &service.UserRegisterOpt{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password1,
	})
	if errors.Is(err, service.ErrUsernameExists) {
		errs.Add("username", types.MsgDuplicateUsername)
		return u.renderSignup(c, &form, errs)
	}
	if err != nil {
		return err
	}

	user, err := u.UserService.Authenticate(ctx, form.Username, form.Password1)
	if err != nil {
		return err
	}
	if err := u.login(c, user.ID); err != nil {
		return err
	}
	log.L.Info("user signed up", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	c.Redirect(http.StatusFound, "/")
	return nil
}

func (u *Auth) Logout(c *gin.Context) error {
	if err := session.Logout(c); err != nil {
		return err
	}
	c.Redirect(http.StatusFound, "/")
	return nil
}

// NewCaptcha 刷新验证码
func (u *Auth) NewCaptcha(c *gin.Context) error {
	captcha, err := u.CaptchaService.Generate(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, captcha)
	return nil
}

func (u *Auth) login(c *gin.Context, userID int64) error {
	if err := session.Login(c, userID); err != nil {
		return err
	}
	if err := u.UserService.RecordLogin(c.Request.Context(), userID); err != nil {
		log.L.Warn("record last login failed", zap.Int64("user_id", userID), zap.Error(err))
	}
	return nil
}

func (u *Auth) renderLogin(c *gin.Context, form *types.LoginForm, errs types.FormErrors) error {
	captcha, err := u.CaptchaService.Generate(c.Request.Context())
	if err != nil {
		return err
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":   "登录",
		"Form":    form,
		"Errors":  errs,
		"Captcha": captcha,
	})
	return nil
}

func (u *Auth) renderSignup(c *gin.Context, form *types.SignupForm, errs types.FormErrors) error {
	captcha, err := u.CaptchaService.Generate(c.Request.Context())
	if err != nil {
		return err
	}
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"Title":   "注册",
		"Form":    form,
		"Errors":  errs,
		"Captcha": captcha,
	})
	return nil
}

// safeRedirect 只允许跳转到站内路径
func safeRedirect(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") ||
		strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	target, err := url.Parse(next)
	if err != nil || target.Scheme != "" || target.Host != "" {
		return "/"
	}
	return next
}
