package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасно вызывать на nil (метрики выключены)
type Metrics struct {
	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	BookingAPICallsTotal   *prometheus.CounterVec
	BookingAPICallDuration *prometheus.HistogramVec
	ConflictsTotal         prometheus.Counter
	AlternativesTotal      *prometheus.CounterVec
	StaleSnapshotsTotal    prometheus.Counter
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingAPICallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_api_calls_total",
			Help:        "Calls to the remote booking API by operation and outcome",
			ConstLabels: labels,
		}, []string{"operation", "outcome"}),

		BookingAPICallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "booking_api_call_duration_seconds",
			Help:        "Remote booking API call duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		ConflictsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Submissions rejected by the booking API as conflicts",
			ConstLabels: labels,
		}),

		AlternativesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_alternatives_total",
			Help:        "Alternative court searches by result",
			ConstLabels: labels,
		}, []string{"result"}),

		StaleSnapshotsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "booking_snapshots_superseded_total",
			Help:        "Fetched booking snapshots discarded because a newer fetch was already stored",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveBookingAPICall записывает результат вызова удаленного API бронирований
func (m *Metrics) ObserveBookingAPICall(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.BookingAPICallsTotal.WithLabelValues(operation, outcome).Inc()
	m.BookingAPICallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncConflict увеличивает счетчик конфликтов бронирования
func (m *Metrics) IncConflict() {
	if m == nil {
		return
	}
	m.ConflictsTotal.Inc()
}

// ObserveAlternative фиксирует результат поиска альтернативного корта
func (m *Metrics) ObserveAlternative(found bool) {
	if m == nil {
		return
	}
	result := "none"
	if found {
		result = "found"
	}
	m.AlternativesTotal.WithLabelValues(result).Inc()
}

// IncSupersededSnapshot увеличивает счетчик отброшенных устаревших снимков
func (m *Metrics) IncSupersededSnapshot() {
	if m == nil {
		return
	}
	m.StaleSnapshotsTotal.Inc()
}
