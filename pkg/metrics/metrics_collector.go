package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector 指标收集器
type MetricsCollector struct {
	// HTTP 指标
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// 数据库指标
	dbErrorsTotal *prometheus.CounterVec

	// 缓存指标
	cacheHitsTotal   *prometheus.CounterVec
	cacheMissesTotal *prometheus.CounterVec

	// 业务指标
	likeTogglesTotal   *prometheus.CounterVec
	orphanRepliesTotal *prometheus.CounterVec
}

// NewMetricsCollector 创建指标收集器，注册到 reg
func NewMetricsCollector(reg prometheus.Registerer) *MetricsCollector {
	factory := promauto.With(reg)
	return &MetricsCollector{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		dbErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_errors_total",
				Help: "Total number of database errors",
			},
			[]string{"operation"},
		),

		cacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"key_prefix"},
		),

		cacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"key_prefix"},
		),

		likeTogglesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "novel_like_toggles_total",
				Help: "Like toggles by item kind and direction",
			},
			[]string{"kind", "direction"},
		),

		orphanRepliesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "novel_orphan_replies_total",
				Help: "Replies dropped from a thread because their parent was not in scope",
			},
			[]string{"kind"},
		),
	}
}

// RecordHTTPRequest 记录 HTTP 请求指标
func (m *MetricsCollector) RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordDBError 记录数据库错误
func (m *MetricsCollector) RecordDBError(operation string) {
	m.dbErrorsTotal.WithLabelValues(operation).Inc()
}

// RecordCache 记录缓存命中情况
func (m *MetricsCollector) RecordCache(keyPrefix string, hit bool) {
	if hit {
		m.cacheHitsTotal.WithLabelValues(keyPrefix).Inc()
	} else {
		m.cacheMissesTotal.WithLabelValues(keyPrefix).Inc()
	}
}

// RecordLikeToggle 记录一次点赞切换
func (m *MetricsCollector) RecordLikeToggle(kind string, liked bool) {
	direction := "unlike"
	if liked {
		direction = "like"
	}
	m.likeTogglesTotal.WithLabelValues(kind, direction).Inc()
}

// RecordOrphanReplies 记录被丢弃的孤儿回复
func (m *MetricsCollector) RecordOrphanReplies(kind string, n int) {
	if n <= 0 {
		return
	}
	m.orphanRepliesTotal.WithLabelValues(kind).Add(float64(n))
}

// 全局指标收集器实例
var (
	globalCollector *MetricsCollector
	once            sync.Once
)

// GetGlobalCollector 获取全局指标收集器，注册在默认 Registry 上
func GetGlobalCollector() *MetricsCollector {
	once.Do(func() {
		globalCollector = NewMetricsCollector(prometheus.DefaultRegisterer)
	})
	return globalCollector
}
