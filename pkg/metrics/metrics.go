package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil
type Metrics struct {
	Registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge
	dbIdleConns     prometheus.Gauge

	slotQueriesTotal *prometheus.CounterVec
	slotsReturned    prometheus.Histogram
	fleetChecksTotal prometheus.Counter
	fleetItemsTotal  *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: labels,
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		slotQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_slot_queries_total",
			Help:        "Slot queries by outcome (open, closed, not_configured)",
			ConstLabels: labels,
		}, []string{"outcome"}),
		slotsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "availability_slots_returned",
			Help:        "Number of free slots returned per query",
			ConstLabels: labels,
			Buckets:     []float64{0, 1, 4, 8, 16, 32, 64},
		}),
		fleetChecksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "availability_fleet_checks_total",
			Help:        "Total number of fleet availability checks",
			ConstLabels: labels,
		}),
		fleetItemsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_fleet_items_total",
			Help:        "Fleet items classified by fleet checks",
			ConstLabels: labels,
		}, []string{"state"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.slotQueriesTotal,
		m.slotsReturned,
		m.fleetChecksTotal,
		m.fleetItemsTotal,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(open))
	m.dbInUseConns.Set(float64(inUse))
	m.dbIdleConns.Set(float64(idle))
}

// ObserveSlotQuery фиксирует результат запроса свободных слотов
func (m *Metrics) ObserveSlotQuery(outcome string, slots int) {
	if m == nil {
		return
	}
	m.slotQueriesTotal.WithLabelValues(outcome).Inc()
	m.slotsReturned.Observe(float64(slots))
}

// ObserveFleetCheck фиксирует результат проверки автопарка
func (m *Metrics) ObserveFleetCheck(available, unavailable int) {
	if m == nil {
		return
	}
	m.fleetChecksTotal.Inc()
	m.fleetItemsTotal.WithLabelValues("available").Add(float64(available))
	m.fleetItemsTotal.WithLabelValues("unavailable").Add(float64(unavailable))
}
