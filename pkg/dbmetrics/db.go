package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor общий интерфейс *sql.DB, *sql.Tx и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Observer получатель длительности запросов (pkg/metrics.Metrics)
type Observer interface {
	ObserveDBQuery(operation string, elapsed time.Duration, err error)
}

// DB обертка над *sql.DB, замеряющая каждый запрос
type DB struct {
	db       *sql.DB
	observer Observer
}

// Wrap оборачивает соединение. observer может быть nil.
func Wrap(db *sql.DB, observer Observer) *DB {
	return &DB{db: db, observer: observer}
}

// ExecContext выполняет запрос без результата
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

// QueryContext выполняет запрос, возвращающий строки
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// QueryRowContext выполняет запрос, возвращающий одну строку
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	var err error
	if row.Err() != nil && row.Err() != sql.ErrNoRows {
		err = row.Err()
	}
	d.observe("query_row", start, err)
	return row
}

// PingContext проверяет соединение
func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Close закрывает пул соединений
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) observe(operation string, start time.Time, err error) {
	if d.observer == nil {
		return
	}
	d.observer.ObserveDBQuery(operation, time.Since(start), err)
}
