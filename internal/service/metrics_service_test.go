package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceObservesSchedules(t *testing.T) {
	m := NewMetricsService()
	m.ObserveSchedule(false, 480, 17)
	m.ObserveSchedule(true, 480, 22)
	m.ObserveSchedule(true, 450, 20)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.schedulesTotal.WithLabelValues("catalog")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.schedulesTotal.WithLabelValues("fallback")))
}

func TestMetricsServiceCacheAndJobs(t *testing.T) {
	m := NewMetricsService()
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(false, time.Millisecond)
	m.RecordCacheOperation(false, time.Millisecond)
	m.ObservePlanningJob(nil)
	m.ObservePlanningJob(errors.New("profile missing"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.planningJobsTotal.WithLabelValues("failed")))
}

func TestMetricsServiceHandler(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodPost, "/api/v1/schedules", http.StatusCreated, 5*time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveSchedule(true, 0, 0)
	m.ObserveDBQuery("x", time.Second)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsServiceTrackQueueDepth(t *testing.T) {
	m := NewMetricsService()
	depth := 3
	require.NoError(t, m.TrackQueueDepth("planning", func() int { return depth }))
	assert.Error(t, m.TrackQueueDepth("planning", func() int { return 0 }))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `job_queue_depth{queue="planning"} 3`)

	count, err := testutil.GatherAndCount(m.Registry(), "job_queue_depth")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var nilMetrics *MetricsService
	assert.NoError(t, nilMetrics.TrackQueueDepth("planning", func() int { return 0 }))
}
