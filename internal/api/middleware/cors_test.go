package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveWith(h gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(h)
	r.Any("/api/tweets", func(c *gin.Context) { c.Status(http.StatusOK) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSMiddleware_AllowList(t *testing.T) {
	h := CORSMiddleware([]string{"https://warbler.example/"})

	req := httptest.NewRequest(http.MethodOptions, "/api/tweets", nil)
	req.Header.Set("Origin", "https://warbler.example")
	w := serveWith(h, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://warbler.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Api-Key")

	req = httptest.NewRequest(http.MethodGet, "/api/tweets", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = serveWith(h, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_AnyOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/tweets", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serveWith(CORSMiddleware(nil), req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestTraceMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/tweets", nil)
	req.Header.Set(TraceHeader, "abc-123")
	w := serveWith(TraceMiddleware(), req)
	assert.Equal(t, "abc-123", w.Header().Get(TraceHeader))

	req = httptest.NewRequest(http.MethodGet, "/api/tweets", nil)
	req.Header.Set(TraceHeader, "bad id\n")
	w = serveWith(TraceMiddleware(), req)
	assert.Len(t, w.Header().Get(TraceHeader), 36)
}
