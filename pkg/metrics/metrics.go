package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	availabilitySlots *prometheus.HistogramVec
	availabilityEmpty *prometheus.CounterVec
}

// New создает и регистрирует метрики в reg
// В production передаётся prometheus.DefaultRegisterer, в тестах - prometheus.NewRegistry()
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),

		availabilitySlots: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "availability_slots_returned",
			Help:    "Number of slots returned per single-day availability computation",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"service"}),

		availabilityEmpty: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_empty_total",
			Help: "Single-day availability computations with no slots, by reason",
		}, []string{"service", "reason"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.availabilitySlots,
		m.availabilityEmpty,
	)

	return m
}

// RecordHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// RecordDBQuery фиксирует выполнение SQL запроса
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration, err error) {
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetDBStats обновляет метрики пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	m.dbConnections.WithLabelValues(m.serviceName, "open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues(m.serviceName, "idle").Set(float64(stats.Idle))
}

// RecordAvailability фиксирует результат расчёта доступности на один день
// reason пустой, если слоты найдены
func (m *Metrics) RecordAvailability(slots int, reason string) {
	m.availabilitySlots.WithLabelValues(m.serviceName).Observe(float64(slots))
	if slots == 0 && reason != "" {
		m.availabilityEmpty.WithLabelValues(m.serviceName, reason).Inc()
	}
}
