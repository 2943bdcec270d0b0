package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-missions/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// executor returns the transaction carried by ctx, falling back to db.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// TxManager runs units of work inside a database transaction.
type TxManager struct {
	db *sqlx.DB
}

// NewTxManager creates a TxManager over db.
func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// WithTx begins a transaction, hands fn a context carrying it and commits
// when fn succeeds. Errors and panics roll back; panics are rethrown.
// Repositories called with the derived context join the transaction.
// A context that already carries a transaction is reused as is.
func (m *TxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to begin transaction", "error", err)
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.FromContext(ctx).Errorw("failed to rollback transaction", "error", rbErr)
			}
			return
		}
		if err = tx.Commit(); err != nil {
			logger.FromContext(ctx).Errorw("failed to commit transaction", "error", err)
			err = fmt.Errorf("commit tx: %w", err)
		}
	}()

	return fn(setTxToContext(ctx, tx))
}
