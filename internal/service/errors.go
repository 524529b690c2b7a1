package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid     = errors.New("invalid parameter")
	ErrApiKeyMissing    = errors.New("api-key header is required")
	ErrApiKeyInvalid    = errors.New("no user with this api-key")
	ErrUserNotFound     = errors.New("no user with this id")
	ErrTweetNotFound    = errors.New("no tweet with this id")
	ErrLikeExist        = errors.New("tweet already liked")
	ErrUserFollowExist  = errors.New("user already followed")
	ErrFileNotSupported = errors.New("unsupported file type")
	ErrStorageDisabled  = errors.New("media storage is not configured")
	ErrTooManyRequests  = errors.New("too many requests")
	UnExpectedError     = errors.New("unexpected error, please try again later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     http.StatusBadRequest,
	ErrApiKeyMissing:    http.StatusUnauthorized,
	ErrApiKeyInvalid:    http.StatusUnauthorized,
	ErrUserNotFound:     http.StatusNotFound,
	ErrTweetNotFound:    http.StatusNotFound,
	ErrLikeExist:        http.StatusBadRequest,
	ErrUserFollowExist:  http.StatusBadRequest,
	ErrFileNotSupported: http.StatusBadRequest,
	ErrStorageDisabled:  http.StatusServiceUnavailable,
	ErrTooManyRequests:  http.StatusTooManyRequests,
	UnExpectedError:     http.StatusInternalServerError,
}

// ErrorTypes 对应响应体中的 error_type
var ErrorTypes = map[error]string{
	ErrParamInvalid:     "BadRequest",
	ErrApiKeyMissing:    "Unauthorized",
	ErrApiKeyInvalid:    "Unauthorized",
	ErrUserNotFound:     "NotFound",
	ErrTweetNotFound:    "NotFound",
	ErrLikeExist:        "Conflict",
	ErrUserFollowExist:  "Conflict",
	ErrFileNotSupported: "BadRequest",
	ErrStorageDisabled:  "ServiceUnavailable",
	ErrTooManyRequests:  "TooManyRequests",
	UnExpectedError:     "InternalServerError",
}
