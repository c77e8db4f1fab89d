package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics registers collectors in the default registry, so it must
// be constructed once per process. Tests use a recorder stub instead.
type PrometheusMetrics struct {
	loginsTotal          *prometheus.CounterVec
	transfersTotal       *prometheus.CounterVec
	loansTotal           *prometheus.CounterVec
	closesTotal          *prometheus.CounterVec
	sessionTimeoutsTotal prometheus.Counter
	countdownSeconds     prometheus.Gauge
	requestDuration      prometheus.Histogram
	httpRequestsTotal    *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		loginsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankist_logins_total",
				Help: "Total number of login attempts by result",
			},
			[]string{"result"},
		),
		transfersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankist_transfers_total",
				Help: "Total number of transfer requests by result",
			},
			[]string{"result"},
		),
		loansTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankist_loans_total",
				Help: "Total number of loan requests by result",
			},
			[]string{"result"},
		),
		closesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankist_closes_total",
				Help: "Total number of account close requests by result",
			},
			[]string{"result"},
		),
		sessionTimeoutsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bankist_session_timeouts_total",
				Help: "Total number of sessions ended by the inactivity countdown",
			},
		),
		countdownSeconds: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "bankist_session_countdown_seconds",
				Help: "Seconds remaining on the current session countdown",
			},
		),
		requestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bankist_request_duration_milliseconds",
				Help:    "HTTP request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankist_http_requests_total",
				Help: "Total number of HTTP requests by method and status",
			},
			[]string{"method", "status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	result := tags["result"]

	switch name {
	case "bankist_logins_total":
		if result != "" {
			m.loginsTotal.WithLabelValues(result).Inc()
		}
	case "bankist_transfers_total":
		if result != "" {
			m.transfersTotal.WithLabelValues(result).Inc()
		}
	case "bankist_loans_total":
		if result != "" {
			m.loansTotal.WithLabelValues(result).Inc()
		}
	case "bankist_closes_total":
		if result != "" {
			m.closesTotal.WithLabelValues(result).Inc()
		}
	case "bankist_session_timeouts_total":
		m.sessionTimeoutsTotal.Inc()
	case "bankist_http_requests_total":
		m.httpRequestsTotal.WithLabelValues(tags["method"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "bankist_request_duration":
		m.requestDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "bankist_session_countdown_seconds":
		m.countdownSeconds.Set(value)
	}
}
