// Package metrics holds the Prometheus collectors exported by the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	FeedFetchTotal    *prometheus.CounterVec
	FeedFetchDuration *prometheus.HistogramVec

	AvailabilityComputations *prometheus.CounterVec
	MonitorFailedSources     prometheus.Gauge
	MonitorRuns              *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		FeedFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "ical_feed_fetch_total",
			Help:        "Total number of calendar feed fetches by source and outcome",
			ConstLabels: constLabels,
		}, []string{"source", "outcome"}),

		FeedFetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "ical_feed_fetch_duration_seconds",
			Help:        "Calendar feed fetch duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}, []string{"source"}),

		AvailabilityComputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_computations_total",
			Help:        "Total number of availability computations by number of failed sources",
			ConstLabels: constLabels,
		}, []string{"failed_sources"}),

		MonitorFailedSources: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "feed_monitor_failed_sources",
			Help:        "Number of failed calendar sources seen by the last monitor run",
			ConstLabels: constLabels,
		}),

		MonitorRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "feed_monitor_runs_total",
			Help:        "Total number of feed monitor runs by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.FeedFetchTotal,
		m.FeedFetchDuration,
		m.AvailabilityComputations,
		m.MonitorFailedSources,
		m.MonitorRuns,
	)

	return m
}

// RecordHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordFeedFetch записывает метрики загрузки календаря
func (m *Metrics) RecordFeedFetch(source, outcome string, duration time.Duration) {
	m.FeedFetchTotal.WithLabelValues(source, outcome).Inc()
	if duration > 0 {
		m.FeedFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
	}
}

// RecordComputation записывает факт расчёта доступности
func (m *Metrics) RecordComputation(failedSources int) {
	m.AvailabilityComputations.WithLabelValues(strconv.Itoa(failedSources)).Inc()
}

// RecordMonitorRun записывает результат прогона монитора
func (m *Metrics) RecordMonitorRun(failedSources int, err error) {
	if err != nil {
		m.MonitorRuns.WithLabelValues("error").Inc()
		return
	}
	m.MonitorRuns.WithLabelValues("ok").Inc()
	m.MonitorFailedSources.Set(float64(failedSources))
}
