package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FeedAssembleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "warbler_feed_assemble_duration_seconds",
		Help:    "Feed assembly duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	FeedTweets = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "warbler_feed_tweets",
		Help: "Number of tweets in the last assembled feed",
	})
	FeedCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_feed_cache_lookups_total",
		Help: "Feed cache lookups by result",
	}, []string{"result"})
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"method", "route", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "warbler_http_request_duration_seconds",
		Help:    "HTTP request duration seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(FeedAssembleDuration, FeedTweets, FeedCacheLookups, HTTPRequests, HTTPDuration)
}

// ObserveFeedAssemble 记录一次 Feed 组装
func ObserveFeedAssemble(start time.Time, tweets int) {
	FeedAssembleDuration.Observe(time.Since(start).Seconds())
	FeedTweets.Set(float64(tweets))
}

// IncFeedCache result 取 hit / miss
func IncFeedCache(result string) { FeedCacheLookups.WithLabelValues(result).Inc() }

// Middleware 统计请求数量与耗时，路由取注册时的模板避免高基数
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler 暴露 /metrics
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
