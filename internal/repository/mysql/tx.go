package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/adiwarta/warta/domain"
)

type txKey struct{}

// withTx returns a context carrying the transaction handle.
func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// dbFrom resolves the transaction handle from the context, falling back to
// the shared connection. Repositories route every statement through this so
// calls made inside TxManager.WithinTx join the same transaction.
func dbFrom(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}

type txManager struct {
	DB *gorm.DB
}

var _ domain.TxManager = (*txManager)(nil)

func NewTxManager(db *gorm.DB) *txManager {
	return &txManager{DB: db}
}

// WithinTx runs fn inside one database transaction. fn receives a context
// whose repository calls all execute on that transaction; any error rolls
// the whole unit back.
func (m *txManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
