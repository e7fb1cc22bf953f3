// Package dbmetrics обёртка над *sql.DB со сбором prometheus-метрик
// по каждому запросу и периодической публикацией состояния пула.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
)

// defaultPoolStatsInterval период публикации метрик пула соединений
const defaultPoolStatsInterval = 15 * time.Second

// DB обёртка над *sql.DB с метриками
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает db сбором метрик
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает db и запускает публикацию метрик пула
// с периодом по умолчанию до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectPoolStats(defaultPoolStatsInterval, stopCh)
	return wrapped
}

// QueryContext выполняет запрос с фиксацией метрик
func (w *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := w.db.QueryContext(ctx, query, args...)
	w.metrics.ObserveDBQuery("query", time.Since(start), err)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки с фиксацией метрик.
// Ошибка выполнения доступна только при Scan, поэтому здесь фиксируется
// только длительность.
func (w *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := w.db.QueryRowContext(ctx, query, args...)
	w.metrics.ObserveDBQuery("query_row", time.Since(start), nil)
	return row
}

// ExecContext выполняет запрос без результата с фиксацией метрик
func (w *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := w.db.ExecContext(ctx, query, args...)
	w.metrics.ObserveDBQuery("exec", time.Since(start), err)
	return result, err
}

// BeginTx начинает транзакцию; запросы внутри неё также попадают в метрики
func (w *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := w.db.BeginTx(ctx, opts)
	w.metrics.ObserveDBQuery("begin_tx", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &metricsTx{tx: tx, metrics: w.metrics}, nil
}

func (w *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.metrics.SetDBPoolStats(w.db.Stats())
		case <-stopCh:
			return
		}
	}
}

// metricsTx транзакция с фиксацией метрик каждого запроса
type metricsTx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *metricsTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query", time.Since(start), err)
	return rows, err
}

func (t *metricsTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query_row", time.Since(start), nil)
	return row
}

func (t *metricsTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_exec", time.Since(start), err)
	return result, err
}

func (t *metricsTx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.metrics.ObserveDBQuery("commit", time.Since(start), err)
	return err
}

func (t *metricsTx) Rollback() error {
	return t.tx.Rollback()
}
