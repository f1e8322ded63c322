package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exported on /metrics.
// It tracks storage round trips, attendance marks split by whether they
// created or updated a record, and HTTP responses per route pattern.
type Metrics struct {
	DBQueryDuration *prometheus.HistogramVec
	AttendanceMarks *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance registered on reg.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hrms_db_query_duration_seconds",
			Help:    "Duration of document store queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'get_employee', 'insert_attendance'
		AttendanceMarks: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_attendance_marks_total",
			Help: "Total attendance marks, by whether a record was created or updated.",
		}, []string{"result"}),
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_http_requests_total",
			Help: "Total HTTP requests served, by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
	}

	metrics.AttendanceMarks.WithLabelValues("created")
	metrics.AttendanceMarks.WithLabelValues("updated")

	return metrics
}

// ObserveQuery records the time elapsed since start under queryType.
// Intended for use with defer at the top of a repository method.
func (m *Metrics) ObserveQuery(queryType string, start time.Time) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}

// RecordMark counts one attendance mark; result is "created" or "updated".
func (m *Metrics) RecordMark(result string) {
	if m == nil {
		return
	}
	m.AttendanceMarks.WithLabelValues(result).Inc()
}

// CountRequest counts one HTTP response.
func (m *Metrics) CountRequest(method, route string, status int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
