package repository

import (
	"context"

	domainRepo "github.com/shopbook/shopbook-api/internal/domain/repository"
	"gorm.io/gorm"
)

type txKey struct{}

// withTx stores the transaction handle in the context so repositories used
// inside TxManager.Do join the same transaction.
func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// conn resolves the database handle for ctx: the enclosing transaction when
// one is active, the base connection otherwise.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a TxManager backed by a gorm transaction
func NewTxManager(db *gorm.DB) domainRepo.TxManager {
	return &txManager{db: db}
}

func (m *txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	// Nested Do calls join the outer transaction rather than opening a new one.
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
