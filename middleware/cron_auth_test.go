package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(secret string) *gin.Engine {
		r := gin.New()
		r.GET("/cron", CronAuth(secret), func(c *gin.Context) { c.String(200, "ran") })
		return r
	}
	do := func(r *gin.Engine, auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/cron", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	guarded := newRouter("s3cret")
	w := do(guarded, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, do(guarded, "Bearer wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, do(guarded, "s3cret").Code)
	assert.Equal(t, http.StatusOK, do(guarded, "Bearer s3cret").Code)

	// 未配置密钥时放行
	assert.Equal(t, http.StatusOK, do(newRouter(""), "").Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(200, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	_, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
}
