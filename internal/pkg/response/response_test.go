package response

import (
	"Warbler/internal/service"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func run(handler gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestSuccess(t *testing.T) {
	w, body := run(func(c *gin.Context) {
		Success(c, gin.H{"tweet_id": 7})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["result"])
	assert.EqualValues(t, 7, body["tweet_id"])
}

func TestError_KnownSentinel(t *testing.T) {
	w, body := run(func(c *gin.Context) {
		Error(c, service.ErrTweetNotFound)
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["result"])
	assert.Equal(t, "NotFound", body["error_type"])
	assert.Equal(t, service.ErrTweetNotFound.Error(), body["error_message"])
}

func TestError_WrappedSentinel(t *testing.T) {
	w, body := run(func(c *gin.Context) {
		Error(c, fmt.Errorf("like: %w", service.ErrLikeExist))
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Conflict", body["error_type"])
}

func TestError_Unknown(t *testing.T) {
	w, body := run(func(c *gin.Context) {
		Error(c, errors.New("db is down"))
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "InternalServerError", body["error_type"])
	assert.Equal(t, service.UnExpectedError.Error(), body["error_message"])
}

type bindTarget struct {
	TweetData string `json:"tweet_data"`
}

func bind(raw string) (*httptest.ResponseRecorder, map[string]any, bool) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(raw))

	var target bindTarget
	ok := BindJSON(c, &target)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body, ok
}

func TestBindJSON(t *testing.T) {
	_, _, ok := bind(`{"tweet_data":"hello"}`)
	assert.True(t, ok)

	cases := map[string]string{
		"wrong type": `{"tweet_data":5}`,
		"syntax":     `{"tweet_data":`,
		"empty":      ``,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			w, body, ok := bind(raw)
			assert.False(t, ok)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "BadRequest", body["error_type"])
			assert.NotEmpty(t, body["error_message"])
		})
	}
}
