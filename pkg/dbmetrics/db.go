package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DBExecutor общий интерфейс *sql.DB, *sql.Tx и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB обертка над *sql.DB, измеряющая длительность запросов
type DB struct {
	db       *sql.DB
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// Wrap оборачивает соединение; reg == nil отключает метрики
func Wrap(db *sql.DB, serviceName string, reg prometheus.Registerer) *DB {
	wrapped := &DB{db: db}
	if reg == nil {
		return wrapped
	}

	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}
	wrapped.duration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "db_query_duration_seconds",
		Help:        "Database query duration in seconds",
		ConstLabels: labels,
		Buckets:     []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation"})
	wrapped.errors = factory.NewCounterVec(prometheus.CounterOpts{
		Name:        "db_query_errors_total",
		Help:        "Database queries that returned an error",
		ConstLabels: labels,
	}, []string{"operation"})

	return wrapped
}

// Unwrap возвращает исходное соединение (для закрытия и сбора статистики пула)
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	started := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, err, started)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	started := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, err, started)
	return rows, err
}

// QueryRowContext ошибка *sql.Row откладывается до Scan, поэтому учитывается только время
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	started := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, nil, started)
	return row
}

func (d *DB) observe(query string, err error, started time.Time) {
	if d.duration == nil {
		return
	}
	op := Operation(query)
	d.duration.WithLabelValues(op).Observe(time.Since(started).Seconds())
	if err != nil {
		d.errors.WithLabelValues(op).Inc()
	}
}

// Operation первое слово запроса в нижнем регистре: select, insert, create...
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
