package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_PerApiKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(0.001, 2).Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(apiKey string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if apiKey != "" {
			req.Header.Set("api-key", apiKey)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("test"))
	assert.Equal(t, http.StatusOK, do("test"))
	assert.Equal(t, http.StatusTooManyRequests, do("test"))

	// 其他 api-key 拥有独立的配额
	assert.Equal(t, http.StatusOK, do("222"))
}
