package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// HTTP метрики входящих запросов
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Метрики запросов к внешнему Holidaze API
	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	// Метрики кеша занятых дней
	availabilityCacheHits   prometheus.Counter
	availabilityCacheMisses prometheus.Counter
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		upstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of requests to the Holidaze API",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		upstreamRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Holidaze API request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"operation"}),

		availabilityCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "availability_cache_hits_total",
			Help:        "Total number of availability cache hits",
			ConstLabels: constLabels,
		}),

		availabilityCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "availability_cache_misses_total",
			Help:        "Total number of availability cache misses",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует метрики обработанного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveUpstreamRequest фиксирует метрики запроса к внешнему API
func (m *Metrics) ObserveUpstreamRequest(operation string, status int, duration time.Duration) {
	m.upstreamRequestsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	m.upstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// CacheHit инкрементирует счетчик попаданий в кеш занятых дней
func (m *Metrics) CacheHit() {
	m.availabilityCacheHits.Inc()
}

// CacheMiss инкрементирует счетчик промахов кеша занятых дней
func (m *Metrics) CacheMiss() {
	m.availabilityCacheMisses.Inc()
}
