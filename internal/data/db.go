package data

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is implemented by *pgxpool.Pool, pgx.Tx and pgxmock pools, and is
// what pgxscan needs to scan rows.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type txOptionsBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// TxRunner runs functions inside a transaction. Nested calls on a pgx.Tx
// become savepoints and ignore the isolation level.
type TxRunner struct {
	db Querier
}

func NewTxRunner(db Querier) *TxRunner {
	return &TxRunner{db: db}
}

func (r *TxRunner) WithTx(ctx context.Context, opts pgx.TxOptions, fn func(tx pgx.Tx) error) error {
	var (
		tx  pgx.Tx
		err error
	)
	if b, ok := r.db.(txOptionsBeginner); ok {
		tx, err = b.BeginTx(ctx, opts)
	} else {
		tx, err = r.db.Begin(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return handleError(err)
	}
	return nil
}
