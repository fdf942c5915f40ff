package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service Prometheus collectors.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Counter
}

// New registers and returns the service collectors. serviceName is attached
// as a constant label.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		dbOpenConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the database pool.",
			ConstLabels: constLabels,
		}),
		dbInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Database pool connections currently in use.",
			ConstLabels: constLabels,
		}),
		dbIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the database pool.",
			ConstLabels: constLabels,
		}),
		dbWaitCount: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "db_wait_count_total",
			Help:        "Total number of connections waited for.",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest records one handled HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// CollectDBStats samples sql.DBStats every interval until stop is closed.
func (m *Metrics) CollectDBStats(db *sql.DB, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastWaitCount int64
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			stats := db.Stats()
			m.dbOpenConnections.Set(float64(stats.OpenConnections))
			m.dbInUse.Set(float64(stats.InUse))
			m.dbIdle.Set(float64(stats.Idle))
			if delta := stats.WaitCount - lastWaitCount; delta > 0 {
				m.dbWaitCount.Add(float64(delta))
				lastWaitCount = stats.WaitCount
			}
		}
	}
}
