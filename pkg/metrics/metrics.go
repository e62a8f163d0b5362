package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	bookingsAccepted    prometheus.Counter
	bookingsRejected    *prometheus.CounterVec
	summarizerFallbacks *prometheus.CounterVec
	dbQueryDuration     *prometheus.HistogramVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_accepted_total",
			Help:        "Appointments written to the ledger",
			ConstLabels: labels,
		}),
		bookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_rejected_total",
			Help:        "Booking attempts rejected by reason",
			ConstLabels: labels,
		}, []string{"reason"}),
		summarizerFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "summarizer_fallbacks_total",
			Help:        "Text generation calls replaced with a static fallback",
			ConstLabels: labels,
		}, []string{"operation"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation", "status"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.bookingsAccepted,
		m.bookingsRejected,
		m.summarizerFallbacks,
		m.dbQueryDuration,
	)

	return m
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// BookingAccepted фиксирует успешную запись в журнал
func (m *Metrics) BookingAccepted() {
	if m == nil {
		return
	}
	m.bookingsAccepted.Inc()
}

// BookingRejected фиксирует отказ в бронировании
func (m *Metrics) BookingRejected(reason string) {
	if m == nil {
		return
	}
	m.bookingsRejected.WithLabelValues(reason).Inc()
}

// SummarizerFallback фиксирует подмену ответа генератора текста
func (m *Metrics) SummarizerFallback(operation string) {
	if m == nil {
		return
	}
	m.summarizerFallbacks.WithLabelValues(operation).Inc()
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(elapsed.Seconds())
}
