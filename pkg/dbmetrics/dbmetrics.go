package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DefaultPoolStatsInterval период сбора статистики пула соединений
const DefaultPoolStatsInterval = 15 * time.Second

// DBExecutor общий интерфейс для выполнения запросов
// Реализуется *sql.DB и *DB
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PingContext(ctx context.Context) error
}

// Collector приемник метрик БД
type Collector interface {
	ObserveDBQuery(operation string, duration time.Duration, err error)
	SetDBPoolStats(open, inUse, idle int)
}

// DB обертка над *sql.DB, собирающая метрики запросов
type DB struct {
	db        *sql.DB
	collector Collector
}

// Wrap оборачивает *sql.DB и запускает сбор статистики пула до закрытия stopCh
func Wrap(db *sql.DB, collector Collector, interval time.Duration, stopCh <-chan struct{}) *DB {
	w := &DB{db: db, collector: collector}
	go w.collectPoolStats(interval, stopCh)
	return w
}

// WrapWithDefault оборачивает *sql.DB с интервалом сбора по умолчанию
func WrapWithDefault(db *sql.DB, collector Collector, stopCh <-chan struct{}) *DB {
	return Wrap(db, collector, DefaultPoolStatsInterval, stopCh)
}

func (w *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := w.db.QueryContext(ctx, query, args...)
	w.collector.ObserveDBQuery(operationOf(query), time.Since(start), err)
	return rows, err
}

func (w *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := w.db.QueryRowContext(ctx, query, args...)
	w.collector.ObserveDBQuery(operationOf(query), time.Since(start), row.Err())
	return row
}

func (w *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := w.db.ExecContext(ctx, query, args...)
	w.collector.ObserveDBQuery(operationOf(query), time.Since(start), err)
	return res, err
}

func (w *DB) PingContext(ctx context.Context) error {
	return w.db.PingContext(ctx)
}

func (w *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := w.db.Stats()
			w.collector.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)
		}
	}
}

// operationOf возвращает SQL-глагол запроса (select, insert, ...) для метки метрики
func operationOf(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
