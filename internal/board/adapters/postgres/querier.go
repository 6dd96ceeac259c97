// Package postgres реализует порты хранилища поверх pgx.
package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier - общие операции пула, соединения и транзакции pgx.
type Querier interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

// TxBeginner открывает транзакции.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Коды SQLSTATE, которые различают репозитории.
const (
	sqlStateUniqueViolation   = "23505"
	sqlStateIntegrityClass    = "23"
	sqlStateStringDataTooLong = "22001"
)

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return sqlState(err) == sqlStateUniqueViolation
}

// isConstraintViolation сообщает, отклонило ли хранилище строку из-за ограничений схемы.
func isConstraintViolation(err error) bool {
	code := sqlState(err)
	return strings.HasPrefix(code, sqlStateIntegrityClass) || code == sqlStateStringDataTooLong
}
