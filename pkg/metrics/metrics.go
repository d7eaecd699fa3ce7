package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках вызовы ничего не делают.
type Metrics struct {
	service string

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	appointments *prometheus.CounterVec
	availability *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		service: serviceName,
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Count of HTTP requests by route and status.",
			},
			[]string{"service", "method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "route"},
		),
		dbQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency by operation.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"service", "operation"},
		),
		dbQueryErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_query_errors_total",
				Help: "Count of failed database queries by operation.",
			},
			[]string{"service", "operation"},
		),
		dbConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_connections",
				Help: "Database pool connections by state.",
			},
			[]string{"service", "state"},
		),
		appointments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "appointments_created_total",
				Help: "Count of appointment creation attempts by outcome.",
			},
			[]string{"service", "outcome"},
		),
		availability: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "availability_queries_total",
				Help: "Count of availability queries by mode and cache result.",
			},
			[]string{"service", "mode", "cache"},
		),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.appointments,
		m.availability,
	)

	return m
}

// ObserveHTTPRequest учитывает HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(m.service, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery учитывает запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(m.service, operation).Inc()
	}
}

// SetPoolStats обновляет метрики пула соединений
func (m *Metrics) SetPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.service, "open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues(m.service, "in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues(m.service, "idle").Set(float64(stats.Idle))
}

// IncAppointment учитывает попытку создания записи (outcome: created, no_coverage, fully_booked, duplicate_slot, invalid, store_error)
func (m *Metrics) IncAppointment(outcome string) {
	if m == nil {
		return
	}
	m.appointments.WithLabelValues(m.service, outcome).Inc()
}

// IncAvailabilityQuery учитывает запрос доступных слотов (mode: stylist|aggregate, cache: hit|miss|off)
func (m *Metrics) IncAvailabilityQuery(mode, cache string) {
	if m == nil {
		return
	}
	m.availability.WithLabelValues(m.service, mode, cache).Inc()
}
