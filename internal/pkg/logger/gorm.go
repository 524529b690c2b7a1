package logger

import (
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * time.Millisecond

// SlogGormLogger 将 gorm 日志写入 slog，SQL 随请求 ctx 带上 trace_id
type SlogGormLogger struct {
	LogLevel      logger.LogLevel
	SlowThreshold time.Duration
}

func NewGormLogger() *SlogGormLogger {
	return &SlogGormLogger{LogLevel: logger.Warn, SlowThreshold: defaultSlowThreshold}
}

// LogMode 返回副本，不修改共享的 logger
func (l *SlogGormLogger) LogMode(level logger.LogLevel) logger.Interface {
	next := *l
	next.LogLevel = level
	return &next
}

func (l *SlogGormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Info {
		log.InfoContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Warn {
		log.WarnContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Error {
		log.ErrorContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, logger.ErrRecordNotFound)
	slow := l.SlowThreshold > 0 && elapsed > l.SlowThreshold

	switch {
	case failed && l.LogLevel >= logger.Error:
	case slow && l.LogLevel >= logger.Warn:
	case l.LogLevel >= logger.Info:
	default:
		return
	}

	sql, rows := fc()
	msg := "SQL " + sqlOperation(sql)
	fields := []any{
		log.String("sql", sql),
		log.Duration("latency", elapsed),
		log.Int64("rows", rows),
	}

	switch {
	case failed:
		log.ErrorContext(ctx, msg+" Error", append(fields, log.Any("err", err))...)
	case slow:
		log.WarnContext(ctx, msg+" Slow", fields...)
	default:
		log.InfoContext(ctx, msg, fields...)
	}
}

// sqlOperation SQL 的第一个关键字，如 SELECT、INSERT
func sqlOperation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "Query"
	}
	return strings.ToUpper(fields[0])
}
