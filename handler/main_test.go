package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"booksite/config"
	"booksite/dao"
	"booksite/handler"
	"booksite/pkg/database/dbtest"
	"booksite/pkg/response"
	"booksite/pkg/server"
	"booksite/service"
	"booksite/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testCaptchaID     = "cid"
	testCaptchaAnswer = "1234"
)

type stubCaptcha struct{}

func (stubCaptcha) Generate(ctx context.Context) (*types.Captcha, error) {
	return &types.Captcha{ID: testCaptchaID, Image: "data:image/png;base64,AAAA"}, nil
}

func (stubCaptcha) Verify(ctx context.Context, id string, answer string) bool {
	return id == testCaptchaID && answer == testCaptchaAnswer
}

type testApp struct {
	t        *testing.T
	db       *gorm.DB
	engine   *gin.Engine
	users    *service.UserService
	bookmark *service.BookmarkService
	cookies  map[string]*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.New(t)
	users := &service.UserService{UsersRepo: dao.NewUsers(db)}
	bookmarks := &service.BookmarkService{
		DB:          db,
		PageDAO:     dao.NewBookPageDAO(db),
		BookMarkDAO: dao.NewBookMarkDAO(db),
		RankDAO:     dao.NewBookRankDAO(db),
	}

	conf := &config.Config{
		App:      &config.App{Env: "test"},
		Server:   &config.Server{},
		Database: &config.Database{Driver: config.DriverSQLite},
		Redis:    &config.Redis{},
		Session:  &config.Session{Name: "booksite_session", Secret: "test-secret", MaxAge: 3600},
		Captcha:  &config.Captcha{Store: config.CaptchaStoreMemory},
	}
	engine := server.NewGinEngine(conf, &server.Handlers{
		Home:     &handler.Home{UserService: users},
		Auth:     &handler.Auth{UserService: users, CaptchaService: stubCaptcha{}},
		Bookmark: &handler.Bookmark{UserService: users, BookmarkService: bookmarks},
	})

	return &testApp{
		t:        t,
		db:       db,
		engine:   engine,
		users:    users,
		bookmark: bookmarks,
		cookies:  map[string]*http.Cookie{},
	}
}

// do 发送请求并像浏览器一样保存 Set-Cookie
func (a *testApp) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	a.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range a.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		a.cookies[c.Name] = c
	}
	return w
}

func (a *testApp) register(username, password string) {
	a.t.Helper()
	_, err := a.users.Register(context.Background(), &service.UserRegisterOpt{
		Username: username,
		Email:    username + "@example.com",
		Password: password,
	})
	require.NoError(a.t, err)
}

func (a *testApp) login(username, password string) {
	a.t.Helper()
	w := a.do(http.MethodPost, "/accounts/login", url.Values{
		"username":   {username},
		"password":   {password},
		"captcha_id": {testCaptchaID},
		"captcha":    {testCaptchaAnswer},
	})
	require.Equal(a.t, http.StatusFound, w.Code, w.Body.String())
}

func (a *testApp) logout() {
	a.t.Helper()
	a.do(http.MethodGet, "/accounts/logout", nil)
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}
