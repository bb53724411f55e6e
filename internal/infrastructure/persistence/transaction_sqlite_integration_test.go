//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(email string) *accounts.User {
	return &accounts.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "$2a$10$testhash",
		FirstName:    "Tx",
		LastName:     "User",
		Role:         accounts.RoleCustomer,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
}

func TestGormTransactor_WithinTransaction(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	errBoom := errors.New("boom")

	rolledBack := newTestUser("rollback@example.com")
	err := ctx.Repos.Tx.WithinTransaction(context.Background(), func(txCtx context.Context) error {
		require.NoError(t, ctx.Repos.Users.Create(txCtx, rolledBack))
		_, err := ctx.Repos.Users.GetByID(txCtx, rolledBack.ID)
		require.NoError(t, err, "writes are visible inside the transaction")
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)
	_, err = ctx.Repos.Users.GetByID(context.Background(), rolledBack.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	committed := newTestUser("commit@example.com")
	err = ctx.Repos.Tx.WithinTransaction(context.Background(), func(txCtx context.Context) error {
		return ctx.Repos.Users.Create(txCtx, committed)
	})
	require.NoError(t, err)
	_, err = ctx.Repos.Users.GetByID(context.Background(), committed.ID)
	assert.NoError(t, err)
}

func TestGormTransactor_NestedRollbackKeepsOuterWrites(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	outer := newTestUser("outer@example.com")
	inner := newTestUser("inner@example.com")

	err := ctx.Repos.Tx.WithinTransaction(context.Background(), func(txCtx context.Context) error {
		if err := ctx.Repos.Users.Create(txCtx, outer); err != nil {
			return err
		}
		innerErr := ctx.Repos.Tx.WithinTransaction(txCtx, func(innerCtx context.Context) error {
			require.NoError(t, ctx.Repos.Users.Create(innerCtx, inner))
			return errors.New("inner failed")
		})
		assert.Error(t, innerErr)
		return nil
	})
	require.NoError(t, err)

	_, err = ctx.Repos.Users.GetByID(context.Background(), outer.ID)
	assert.NoError(t, err)
	_, err = ctx.Repos.Users.GetByID(context.Background(), inner.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
