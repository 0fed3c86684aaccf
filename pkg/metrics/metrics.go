package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec

	// Бизнес-метрики
	SlotsGenerated      *prometheus.CounterVec
	LedgerMutations     *prometheus.CounterVec
	CommissionRuleWrite *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в переданном реестре (удобно для тестов)
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),

		SlotsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "slots_generated_total",
			Help:        "Generated time slots by availability",
			ConstLabels: constLabels,
		}, []string{"available"}),

		LedgerMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "order_ledger_mutations_total",
			Help:        "Order ledger mutations by operation and result",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),

		CommissionRuleWrite: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "commission_rule_writes_total",
			Help:        "Commission rule update attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// Методы ниже безопасны для nil-получателя: при выключенных метриках
// сервисы получают (*Metrics)(nil) и ничего не пишут

// ObserveSlots фиксирует количество сгенерированных слотов
func (m *Metrics) ObserveSlots(available, unavailable int) {
	if m == nil {
		return
	}
	m.SlotsGenerated.WithLabelValues("true").Add(float64(available))
	m.SlotsGenerated.WithLabelValues("false").Add(float64(unavailable))
}

// RecordLedgerMutation фиксирует изменение заказа
func (m *Metrics) RecordLedgerMutation(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	m.LedgerMutations.WithLabelValues(operation, result).Inc()
}

// RecordCommissionWrite фиксирует исход обновления правила комиссии (written, noop, invalid)
func (m *Metrics) RecordCommissionWrite(outcome string) {
	if m == nil {
		return
	}
	m.CommissionRuleWrite.WithLabelValues(outcome).Inc()
}
