package metrics_test

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	m := metrics.NewMetrics(reg)
	require.NotNil(t, m)

	assert.InDelta(t, 0, testutil.ToFloat64(m.AttendanceMarks.WithLabelValues("created")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.AttendanceMarks.WithLabelValues("updated")), 0)
}

func TestObserveQuery(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	m.ObserveQuery("get_employee", time.Now().Add(-10*time.Millisecond))

	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
}

func TestObserveQuery_NilMetrics(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveQuery("get_employee", time.Now())
	})
}

func TestRecordMarkAndCountRequest(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())

	m.RecordMark("created")
	m.RecordMark("created")
	m.RecordMark("updated")
	m.CountRequest("POST", "/api/attendance/", 201)

	assert.InDelta(t, 2, testutil.ToFloat64(m.AttendanceMarks.WithLabelValues("created")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.AttendanceMarks.WithLabelValues("updated")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/api/attendance/", "201")), 0)

	var unset *metrics.Metrics
	assert.NotPanics(t, func() {
		unset.RecordMark("created")
		unset.CountRequest("GET", "/", 200)
	})
}
