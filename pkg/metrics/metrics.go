package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requests_total",
			Help: "Total number of requests",
		},
		[]string{"service", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method"},
	)

	DatabaseConnections = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "database_connections",
			Help: "Current database connections",
		},
		[]string{"service", "status"},
	)

	MemoriesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memories_created_total",
			Help: "Total number of memories ingested",
		},
		[]string{"status"},
	)

	UploadBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "upload_bytes_total",
			Help: "Total bytes accepted by the upload handler",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		DatabaseConnections,
		MemoriesCreated,
		UploadBytes,
	)
}

// RecordDBStats exports one snapshot of the connection pool.
func RecordDBStats(service string, stats sql.DBStats) {
	DatabaseConnections.WithLabelValues(service, "open").Set(float64(stats.OpenConnections))
	DatabaseConnections.WithLabelValues(service, "in_use").Set(float64(stats.InUse))
	DatabaseConnections.WithLabelValues(service, "idle").Set(float64(stats.Idle))
}

// ObserveDBPool keeps the pool gauges current for the life of the process.
func ObserveDBPool(service string, db *sql.DB) {
	for {
		RecordDBStats(service, db.Stats())
		time.Sleep(15 * time.Second)
	}
}

func RecordRequest(service, method, status string, duration time.Duration) {
	RequestsTotal.WithLabelValues(service, method, status).Inc()
	RequestDuration.WithLabelValues(service, method).Observe(duration.Seconds())
}

// StartMetricsServer serves /metrics on its own port in the background.
func StartMetricsServer(port string) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		http.ListenAndServe(":"+port, mux)
	}()
}

// Handler exposes the prometheus handler for mounting inside the API router.
func Handler() http.Handler {
	return promhttp.Handler()
}
