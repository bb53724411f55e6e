//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx, "jane@example.com")

	fetched, err := ctx.Repos.Users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, fetched.Email)

	byEmail, err := ctx.Repos.Users.GetByEmail(context.Background(), "JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestUser(t, ctx, "dup@example.com")

	dup := &accounts.User{
		ID:           uuid.NewString(),
		Email:        "dup@example.com",
		PasswordHash: "hash",
		Role:         accounts.RoleCustomer,
		CreatedAt:    time.Now().UTC(),
	}
	err := ctx.Repos.Users.Create(context.Background(), dup)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.Repos.Users.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUserRepository_ListSearchAndCount(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestUser(t, ctx, "alice@example.com")
	CreateTestUser(t, ctx, "bob@example.com")

	query := accounts.NewUserQuery()
	query.Search = "ALICE"
	users, err := ctx.Repos.Users.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice@example.com", users[0].Email)

	count, err := ctx.Repos.Users.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx, "update@example.com")

	user.FirstName = "Updated"
	require.NoError(t, ctx.Repos.Users.UpdateByID(context.Background(), user))

	fetched, err := ctx.Repos.Users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", fetched.FirstName)

	require.NoError(t, ctx.Repos.Users.DeleteByID(context.Background(), user.ID))
	assert.ErrorIs(t, ctx.Repos.Users.DeleteByID(context.Background(), user.ID), apperr.ErrNotFound)
}

func TestVerificationCodeRepository_Latest(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	now := time.Now().UTC()

	for i, code := range []string{"111111", "222222"} {
		require.NoError(t, ctx.Repos.VerificationCodes.Create(context.Background(), &accounts.VerificationCode{
			ID:        uuid.NewString(),
			Email:     "code@example.com",
			Code:      code,
			Purpose:   accounts.PurposeEmailVerification,
			ExpiresAt: now.Add(accounts.VerificationCodeTTL),
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}

	latest, err := ctx.Repos.VerificationCodes.Latest(context.Background(), "code@example.com", accounts.PurposeEmailVerification)
	require.NoError(t, err)
	assert.Equal(t, "222222", latest.Code)

	_, err = ctx.Repos.VerificationCodes.Latest(context.Background(), "code@example.com", accounts.PurposePasswordReset)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
