package types

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	UsernameMaxLength = 30

	// NonFieldErrors 不属于某个字段的表单错误
	NonFieldErrors = "__all__"
)

// 表单错误提示
const (
	MsgRequired          = "This field is required."
	MsgUsernameInvalid   = "This value may contain only letters, numbers and @/./+/-/_ characters."
	MsgDuplicateUsername = "A user with that username already exists."
	MsgPasswordMismatch  = "The two password fields didn't match."
	MsgEmailInvalid      = "Enter a valid email address."
	MsgCaptchaInvalid    = "Invalid CAPTCHA"
	MsgInvalidLogin      = "Please enter a correct username and password. Note that both fields may be case-sensitive."
	MsgInactive          = "This account is inactive."
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// ValidUsername 用户名只允许字母、数字和 @/./+/-/_，最长 30 个字符
func ValidUsername(username string) bool {
	if username == "" || utf8.RuneCountInString(username) > UsernameMaxLength {
		return false
	}
	return usernamePattern.MatchString(username)
}

// LoginForm 登录表单
type LoginForm struct {
	Username  string `form:"username" binding:"required"`
	Password  string `form:"password" binding:"required"`
	CaptchaID string `form:"captcha_id"`
	Captcha   string `form:"captcha" binding:"required"`
	Next      string `form:"next"`
}

// SignupForm 注册表单
type SignupForm struct {
	Username  string `form:"username" binding:"required,max=30,username"`
	Email     string `form:"email" binding:"required,email"`
	Password1 string `form:"password1" binding:"required"`
	Password2 string `form:"password2" binding:"required"`
	CaptchaID string `form:"captcha_id"`
	Captcha   string `form:"captcha" binding:"required"`
}

// FormErrors 字段名 -> 错误提示
type FormErrors map[string][]string

func (e FormErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e FormErrors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e FormErrors) Empty() bool {
	return len(e) == 0
}

func (e FormErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msgs := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, " ")))
	}
	return strings.Join(parts, "; ")
}

var registerOnce sync.Once

// RegisterValidators 向 gin 的校验器注册自定义规则，表单错误使用 form 标签作为字段名
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
	})
}

// BindErrors 把 ShouldBind 的错误转成表单错误
func BindErrors(err error) FormErrors {
	errs := FormErrors{}
	if err == nil {
		return errs
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		errs.Add(NonFieldErrors, err.Error())
		return errs
	}
	for _, fe := range ves {
		errs.Add(fe.Field(), fieldMessage(fe))
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "username":
		return MsgUsernameInvalid
	case "email":
		return MsgEmailInvalid
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters (it has %d).",
			fe.Param(), utf8.RuneCountInString(fmt.Sprint(fe.Value())))
	default:
		return fmt.Sprintf("Invalid value for %s.", fe.Field())
	}
}
