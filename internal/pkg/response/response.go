package response

import (
	"Warbler/internal/service"
	"errors"
	"io"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装，payload 中的字段与 result 并列
func Success(c *gin.Context, payload gin.H) {
	body := gin.H{"result": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, errorType, message string) {
	c.JSON(status, gin.H{
		"result":        false,
		"error_type":    errorType,
		"error_message": message,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fail(c, service.ErrParamInvalid, ve.Error())
		return
	}

	target, ok := lookup(err)
	if !ok {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		fail(c, service.UnExpectedError, service.UnExpectedError.Error())
		return
	}
	fail(c, target, err.Error())
}

// BindJSON 使用 go-json 解码请求体，失败时直接写入 400 响应并返回 false
func BindJSON(c *gin.Context, obj any) bool {
	if c.Request.Body == nil {
		fail(c, service.ErrParamInvalid, "empty body")
		return false
	}
	err := json.NewDecoder(c.Request.Body).Decode(obj)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		fail(c, service.ErrParamInvalid, typeErr.Error())
	case errors.As(err, &syntaxErr):
		fail(c, service.ErrParamInvalid, "invalid json")
	case errors.Is(err, io.EOF):
		fail(c, service.ErrParamInvalid, "empty body")
	default:
		fail(c, service.ErrParamInvalid, err.Error())
	}
	return false
}

func fail(c *gin.Context, target error, message string) {
	Fail(c, service.ErrorMap[target], service.ErrorTypes[target], message)
}

func lookup(err error) (error, bool) {
	if _, ok := service.ErrorMap[err]; ok {
		return err, true
	}
	for target := range service.ErrorMap {
		if errors.Is(err, target) {
			return target, true
		}
	}
	return nil, false
}
