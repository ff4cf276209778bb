package database

import (
	"context"
	"database/sql"
)

// DBTX объединяет *sql.DB и *sql.Tx, чтобы запросы работали
// как напрямую, так и внутри транзакции.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Queries реализует слой SQL-запросов поверх DBTX.
type Queries struct {
	db DBTX
}

// New создает слой запросов поверх соединения или транзакции.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx возвращает копию Queries, выполняющую запросы в транзакции.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}
