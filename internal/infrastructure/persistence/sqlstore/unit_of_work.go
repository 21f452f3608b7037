package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/cofflyze/cofflyze-api/internal/domain/ports"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implementa ports.UnitOfWork
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork cria um novo UnitOfWork
func NewUnitOfWork(db *gorm.DB) ports.UnitOfWork {
	return &UnitOfWork{db: db}
}

// WithTransaction executa fn com a transação no contexto; erro em fn faz rollback
func (uow *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return uow.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey, tx))
	})
}

// getDB extrai DB do contexto (para suportar transações)
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
