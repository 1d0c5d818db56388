package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"booksite/pkg/context"
	"booksite/pkg/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinZap(), PrometheusMiddleware())
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("secret"))))

	r.GET("/login-as/:id", func(c *gin.Context) {
		_ = session.Login(c, 42)
		c.Status(http.StatusNoContent)
	})
	r.GET("/private", LoginRequired(), func(c *gin.Context) {
		uid, err := context.GetUserID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": uid})
	})
	return r
}

func TestLoginRequired_Anonymous(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private?page=2", nil))

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/accounts/login?next=%2Fprivate%3Fpage%3D2", w.Header().Get("Location"))
}

func TestLoginRequired_LoggedIn(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login-as/42", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"uid":42}`, w.Body.String())
}

func TestGinZap_RequestID(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(requestIDHeader, "req-1")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(requestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Len(t, w.Header().Get(requestIDHeader), 36)
}
