package logger

import (
	"bytes"
	"context"
	"errors"
	log "log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := log.Default()
	log.SetDefault(log.New(log.NewJSONHandler(buf, &log.HandlerOptions{Level: log.LevelDebug})))
	t.Cleanup(func() { log.SetDefault(prev) })
	return buf
}

func TestRemoteFilterHandler(t *testing.T) {
	var remote bytes.Buffer
	h := &ContextHandler{&RemoteFilterHandler{next: log.NewJSONHandler(&remote, nil)}}
	l := log.New(h)

	l.Info("startup noise")
	assert.Zero(t, remote.Len())

	l.Warn("startup warning")
	assert.Contains(t, remote.String(), "startup warning")

	ctx := context.WithValue(context.Background(), TraceIDKey, "t-1")
	l.InfoContext(ctx, "request log")
	assert.Contains(t, remote.String(), `"trace_id":"t-1"`)
}

func TestTeeHandler_PerHandlerLevel(t *testing.T) {
	var all, warnOnly bytes.Buffer
	tee := &TeeHandler{handlers: []log.Handler{
		log.NewJSONHandler(&all, &log.HandlerOptions{Level: log.LevelDebug}),
		log.NewJSONHandler(&warnOnly, &log.HandlerOptions{Level: log.LevelWarn}),
	}}
	l := log.New(tee).With("service", "warbler")

	l.Debug("debug line")
	l.Warn("warn line")

	assert.Contains(t, all.String(), "debug line")
	assert.Contains(t, all.String(), "warn line")
	assert.NotContains(t, warnOnly.String(), "debug line")
	assert.Contains(t, warnOnly.String(), `"service":"warbler"`)
}

func TestSlogGormLogger_Trace(t *testing.T) {
	buf := captureDefault(t)
	ctx := context.Background()
	query := func() (string, int64) { return "select * from tweets", 3 }

	warn := NewGormLogger().LogMode(logger.Warn)
	warn.Trace(ctx, time.Now(), query, nil)
	assert.Zero(t, buf.Len())

	warn.Trace(ctx, time.Now(), query, logger.ErrRecordNotFound)
	assert.Zero(t, buf.Len())

	warn.Trace(ctx, time.Now(), query, errors.New("boom"))
	assert.Contains(t, buf.String(), "SQL SELECT Error")

	buf.Reset()
	warn.Trace(ctx, time.Now().Add(-time.Second), query, nil)
	assert.Contains(t, buf.String(), "SQL SELECT Slow")

	buf.Reset()
	NewGormLogger().LogMode(logger.Info).Trace(ctx, time.Now(), query, nil)
	assert.Contains(t, buf.String(), `"rows":3`)
}

func TestSlogGormLogger_LogModeCopies(t *testing.T) {
	base := NewGormLogger()
	_ = base.LogMode(logger.Silent)
	assert.Equal(t, logger.Warn, base.LogLevel)
}
