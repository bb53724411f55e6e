package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type txKey struct{}

// conn returns the transaction carried by ctx, or db bound to ctx when there is none.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// GormTransactor runs units of work in a single database transaction.
// Repositories called with the context handed to fn join that transaction.
type GormTransactor struct {
	db *gorm.DB
}

// NewGormTransactor creates a GormTransactor on db.
func NewGormTransactor(db *gorm.DB) (*GormTransactor, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &GormTransactor{db: db}, nil
}

// WithinTransaction commits when fn returns nil and rolls back otherwise.
// Nested calls reuse the outer transaction through a savepoint.
func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return conn(ctx, t.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
