package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/swift-payment-portal/src/internal/logger"
)

type Transactor struct {
	db *sql.DB
}

func NewTransactor(db *sql.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction joins an outer transaction already bound to ctx instead of
// opening a nested one.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("transactor begin tx failed", err, nil)
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Error("transactor rollback failed", rbErr, nil)
			}
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.Error("transactor commit tx failed", err, nil)
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
