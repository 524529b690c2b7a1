package middleware

import (
	"Warbler/internal/pkg/consts"
	"bytes"
	"io"
	log "log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// 审计日志中单个请求体/响应体最多记录的字节数
const auditBodyLimit = 4096

// auditSkipPaths 不记录审计日志的路径
var auditSkipPaths = map[string]struct{}{
	"/metrics":  {},
	"/api/ping": {},
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if remain := auditBodyLimit - r.body.Len(); remain > 0 {
		if len(b) > remain {
			r.body.Write(b[:remain])
		} else {
			r.body.Write(b)
		}
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseBodyWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// AuditMiddleware 记录请求与响应。
// 只记录 JSON 请求体的前 auditBodyLimit 字节，上传文件等其他请求体只记录类型和长度，
// 已读取的部分会重新拼回请求体，处理函数仍能读到完整内容
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auditSkipPaths[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		attrs := []any{
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", c.Request.URL.RawQuery),
			log.Bool("api_key", c.GetHeader(consts.ApiKeyHeader) != ""),
		}
		if c.Request.Body != nil && c.Request.Body != http.NoBody {
			attrs = append(attrs, captureRequestBody(c.Request)...)
		}
		log.InfoContext(ctx, "Recv Request", attrs...)

		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		startTime := time.Now()

		c.Next()

		log.InfoContext(ctx, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.String("res_body", w.body.String()),
		)
	}
}

// captureRequestBody 读取 JSON 请求体的开头用于记录
func captureRequestBody(req *http.Request) []any {
	contentType := req.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType != "application/json" {
		return []any{
			log.String("content_type", contentType),
			log.Int64("content_length", req.ContentLength),
		}
	}

	head, _ := io.ReadAll(io.LimitReader(req.Body, auditBodyLimit))
	req.Body = readCloser{
		Reader: io.MultiReader(bytes.NewReader(head), req.Body),
		Closer: req.Body,
	}

	attrs := []any{log.String("req_body", string(head))}
	if req.ContentLength > auditBodyLimit {
		attrs = append(attrs, log.Bool("req_body_truncated", true))
	}
	return attrs
}

type readCloser struct {
	io.Reader
	io.Closer
}
