// Package postgres implements the store interfaces on PostgreSQL via pgx.
package postgres

import (
	"context"
	"fmt"

	"github.com/flyaway-travel/flyaway-backend/internal/store"
	"github.com/flyaway-travel/flyaway-backend/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx operations the stores issue. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so every store method runs against
// the ambient transaction when one is present.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is what the stores are constructed with: a pool (or pgxmock pool).
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

type txKey struct{}

// txFrom returns the transaction carried by ctx, or nil.
func txFrom(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

// querier picks the ambient transaction if the context carries one, and the
// base connection otherwise.
func querier(ctx context.Context, db DB) Querier {
	if tx := txFrom(ctx); tx != nil {
		return tx
	}
	return db
}

// TxManager implements store.TxRunner over a pgx pool.
type TxManager struct {
	db DB
}

func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

var _ store.TxRunner = (*TxManager)(nil)

// WithinTx begins a transaction, stashes it in the context handed to fn, and
// commits or rolls back based on fn's result. A context that already carries
// a transaction joins it instead of nesting.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFrom(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.GetLogger().Errorw("Rollback after panic failed", "error", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.GetLogger().Errorw("Transaction rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
