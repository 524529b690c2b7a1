package logger

import (
	"Warbler/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
)

var LogWriter io.Writer = os.Stdout

// logToken 与 targetIndex 会随每条远程日志发送给 Logstash
var (
	logToken    string
	targetIndex = "logstash-warbler"
)

// InitLogger 输出 JSON 日志到标准输出，配置了 Logstash 地址时同时上报带 trace_id 的日志
func InitLogger(cfg config.LogstashConfig, level string) {
	var lv log.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		lv = log.LevelInfo
	}
	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: lv})

	var finalHandler log.Handler = hStdout

	if cfg.Index != "" {
		targetIndex = cfg.Index
	}
	logToken = cfg.Token

	if cfg.Address == "" {
		log.SetDefault(log.New(&ContextHandler{finalHandler}))
		return
	}

	conn, err := net.Dial("tcp", cfg.Address)
	if err == nil {
		hRemote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: lv}).
			WithAttrs([]log.Attr{
				log.String("target_index", targetIndex),
				log.String("log_token", logToken),
			})

		filterRemote := &RemoteFilterHandler{next: hRemote}

		finalHandler = &TeeHandler{
			handlers: []log.Handler{hStdout, filterRemote},
		}

		LogWriter = conn
	} else {
		LogWriter = os.Stdout
		log.Warn("Failed to connect to Logstash, logging to stdout only", "err", err)
	}

	logger := log.New(&ContextHandler{finalHandler})
	log.SetDefault(logger)
}
