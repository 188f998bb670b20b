package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API, the
// schedule planner and the batch queue.
type MetricsService struct {
	registry          *prometheus.Registry
	handler           http.Handler
	requestDuration   *prometheus.HistogramVec
	requestTotal      *prometheus.CounterVec
	cacheLatency      prometheus.Observer
	cacheWrite        prometheus.Observer
	cacheLookups      *prometheus.CounterVec
	dbQueryDuration   *prometheus.HistogramVec
	schedulesTotal    *prometheus.CounterVec
	scheduledMinutes  prometheus.Histogram
	scheduleEntries   prometheus.Histogram
	planningJobsTotal *prometheus.CounterVec
}

// NewMetricsService registers the collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache lookups",
		Buckets: prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_write_seconds",
		Help:    "Latency for cache set operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_lookups_total",
		Help: "Cache lookups by result",
	}, []string{"result"})

	dbQueryDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"query"})

	schedulesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "day_schedules_generated_total",
		Help: "Generated day schedules by catalog source",
	}, []string{"catalog"})

	scheduledMinutes := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "day_schedule_task_minutes",
		Help:    "Scheduled task minutes per generated day schedule",
		Buckets: []float64{60, 120, 240, 330, 420, 480, 540, 600},
	})

	scheduleEntries := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "day_schedule_entries",
		Help:    "Entries (tasks and breaks) per generated day schedule",
		Buckets: prometheus.LinearBuckets(0, 5, 10),
	})

	planningJobsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planning_jobs_total",
		Help: "Batch planning job outcomes",
	}, []string{"result"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(
		requestDuration, requestTotal,
		cacheLatency, cacheWrite, cacheLookups,
		dbQueryDuration,
		schedulesTotal, scheduledMinutes, scheduleEntries,
		planningJobsTotal,
		goroutines,
	)

	return &MetricsService{
		registry:          registry,
		handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:   requestDuration,
		requestTotal:      requestTotal,
		cacheLatency:      cacheLatency,
		cacheWrite:        cacheWrite,
		cacheLookups:      cacheLookups,
		dbQueryDuration:   dbQueryDuration,
		schedulesTotal:    schedulesTotal,
		scheduledMinutes:  scheduledMinutes,
		scheduleEntries:   scheduleEntries,
		planningJobsTotal: planningJobsTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry exposes the underlying registry, mainly for tests.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordCacheOperation records a cache lookup and its latency.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.Observe(duration.Seconds())
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// ObserveCacheWrite tracks the duration for cache write operations.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// ObserveDBQuery records database query timing.
func (m *MetricsService) ObserveDBQuery(label string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(label).Observe(duration.Seconds())
}

// ObserveSchedule records a generated day schedule.
func (m *MetricsService) ObserveSchedule(usedFallback bool, taskMinutes, entries int) {
	if m == nil {
		return
	}
	source := "catalog"
	if usedFallback {
		source = "fallback"
	}
	m.schedulesTotal.WithLabelValues(source).Inc()
	m.scheduledMinutes.Observe(float64(taskMinutes))
	m.scheduleEntries.Observe(float64(entries))
}

// ObservePlanningJob records a final batch job outcome.
func (m *MetricsService) ObservePlanningJob(err error) {
	if m == nil {
		return
	}
	result := "finished"
	if err != nil {
		result = "failed"
	}
	m.planningJobsTotal.WithLabelValues(result).Inc()
}

// TrackQueueDepth exposes depth as a gauge for the named job queue.
func (m *MetricsService) TrackQueueDepth(queue string, depth func() int) error {
	if m == nil {
		return nil
	}
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "job_queue_depth",
		Help:        "Jobs waiting for a free worker",
		ConstLabels: prometheus.Labels{"queue": queue},
	}, func() float64 {
		return float64(depth())
	})
	return m.registry.Register(gauge)
}
