package sqlite

import (
	"context"
	"database/sql"

	"finance-tracker/internal/storage"
)

// querier - общее между *sql.Tx и *sql.Conn
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Queries реализует storage.Repository поверх одного соединения или транзакции
type Queries struct {
	db querier
}

var _ storage.Repository = (*Queries)(nil)

// insert выполняет INSERT и возвращает id новой строки
func (q *Queries) insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classifyError(err)
	}
	return res.LastInsertId()
}
