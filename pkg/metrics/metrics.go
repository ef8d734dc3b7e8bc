package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   *prometheus.GaugeVec
	DBInUseConnections  *prometheus.GaugeVec
	DBIdleConnections   *prometheus.GaugeVec
	DBWaitCount         *prometheus.GaugeVec
	DBMaxOpenConnection *prometheus.GaugeVec

	ReservationsCreated      *prometheus.CounterVec
	ReservationConflicts     *prometheus.CounterVec
	ReservationStatusChanges *prometheus.CounterVec
	LoginAttempts            *prometheus.CounterVec
}

// New создает и регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
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
		}, []string{"method", "route", "status"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections to the database",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBMaxOpenConnection: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_max_open_connections",
			Help:        "Maximum number of open connections to the database",
			ConstLabels: constLabels,
		}, []string{"db"}),

		ReservationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Total number of created reservations",
			ConstLabels: constLabels,
		}, []string{"type"}),

		ReservationConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_conflicts_total",
			Help:        "Total number of rejected bookings for an already taken slot",
			ConstLabels: constLabels,
		}, []string{}),

		ReservationStatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_status_changes_total",
			Help:        "Total number of reservation status transitions",
			ConstLabels: constLabels,
		}, []string{"status"}),

		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "admin_login_attempts_total",
			Help:        "Total number of admin login attempts",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBMaxOpenConnection,
		m.ReservationsCreated,
		m.ReservationConflicts,
		m.ReservationStatusChanges,
		m.LoginAttempts,
	)

	return m
}

// Методы ниже безопасны для nil-получателя: при выключенных метриках
// бизнес-слой вызывает их без дополнительных проверок

// IncReservationCreated увеличивает счётчик созданных бронирований
func (m *Metrics) IncReservationCreated(reservationType string) {
	if m == nil {
		return
	}
	m.ReservationsCreated.WithLabelValues(reservationType).Inc()
}

// IncReservationConflict увеличивает счётчик конфликтов слотов
func (m *Metrics) IncReservationConflict() {
	if m == nil {
		return
	}
	m.ReservationConflicts.WithLabelValues().Inc()
}

// IncStatusChange увеличивает счётчик смен статуса
func (m *Metrics) IncStatusChange(status string) {
	if m == nil {
		return
	}
	m.ReservationStatusChanges.WithLabelValues(status).Inc()
}

// IncLogin увеличивает счётчик попыток входа с результатом (success, invalid_credentials, access_denied, error)
func (m *Metrics) IncLogin(result string) {
	if m == nil {
		return
	}
	m.LoginAttempts.WithLabelValues(result).Inc()
}
