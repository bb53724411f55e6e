//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/partners"
	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepository_GetCurrentByUser(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx, "sub@example.com")
	plan := CreateTestPlan(t, ctx, 4)

	_, err := ctx.Repos.Subscriptions.GetCurrentByUser(context.Background(), user.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	sub := CreateTestSubscription(t, ctx, user, plan)

	current, err := ctx.Repos.Subscriptions.GetCurrentByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, current.ID)

	sub.Status = subscriptions.StatusCancelled
	require.NoError(t, ctx.Repos.Subscriptions.UpdateByID(context.Background(), sub))

	_, err = ctx.Repos.Subscriptions.GetCurrentByUser(context.Background(), user.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	counts, err := ctx.Repos.Subscriptions.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[subscriptions.StatusCancelled])
}

func TestWashLedger_RecordWash(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx, "wash@example.com")
	partner := CreateTestPartner(t, ctx, "partner@example.com")
	plan := CreateTestPlan(t, ctx, 4)
	sub := CreateTestSubscription(t, ctx, user, plan)

	location := &partners.Location{
		ID:          uuid.NewString(),
		PartnerID:   partner.ID,
		Name:        "Central",
		AddressLine: "1 High Street",
		City:        "London",
		Postcode:    "SW1A 1AA",
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, ctx.Repos.Locations.Create(context.Background(), location))

	now := time.Now().UTC()
	code := &subscriptions.QRCode{
		ID:             uuid.NewString(),
		Code:           "0123456789abcdef0123456789abcdef",
		SubscriptionID: sub.ID,
		UserID:         user.ID,
		ExpiresAt:      now.Add(subscriptions.QRCodeTTL),
		CreatedAt:      now,
	}
	require.NoError(t, ctx.Repos.QRCodes.Create(context.Background(), code))

	verification := &subscriptions.WashVerification{
		ID:             uuid.NewString(),
		QRCodeID:       code.ID,
		SubscriptionID: sub.ID,
		UserID:         user.ID,
		PartnerID:      partner.ID,
		LocationID:     location.ID,
		VerifiedAt:     now,
	}
	require.NoError(t, ctx.Repos.Ledger.RecordWash(context.Background(), code, sub, verification))
	assert.Equal(t, 1, sub.WashesUsed)
	assert.NotNil(t, code.UsedAt)

	stored, err := ctx.Repos.QRCodes.GetByCode(context.Background(), code.Code)
	require.NoError(t, err)
	assert.NotNil(t, stored.UsedAt)

	again := *verification
	again.ID = uuid.NewString()
	err = ctx.Repos.Ledger.RecordWash(context.Background(), stored, sub, &again)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	history, err := ctx.Repos.Verifications.List(context.Background(), &subscriptions.VerificationQuery{PartnerID: partner.ID})
	require.NoError(t, err)
	assert.Len(t, history, 1)

	count, err := ctx.Repos.Verifications.CountSince(context.Background(), now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// recordTestWash redeems a fresh QR code against sub at a new location.
func recordTestWash(t *testing.T, tc *TestContext, sub *subscriptions.Subscription) {
	t.Helper()

	partner := CreateTestPartner(t, tc, uuid.NewString()[:8]+"@partner.example.com")
	now := time.Now().UTC()
	location := &partners.Location{
		ID:          uuid.NewString(),
		PartnerID:   partner.ID,
		Name:        "Depot",
		AddressLine: "2 Mill Lane",
		City:        "Leeds",
		Postcode:    "SW1A 1AA",
		Active:      true,
		CreatedAt:   now,
	}
	require.NoError(t, tc.Repos.Locations.Create(context.Background(), location))

	code := &subscriptions.QRCode{
		ID:             uuid.NewString(),
		Code:           strings.ReplaceAll(uuid.NewString(), "-", ""),
		SubscriptionID: sub.ID,
		UserID:         sub.UserID,
		ExpiresAt:      now.Add(subscriptions.QRCodeTTL),
		CreatedAt:      now,
	}
	require.NoError(t, tc.Repos.QRCodes.Create(context.Background(), code))

	require.NoError(t, tc.Repos.Ledger.RecordWash(context.Background(), code, sub, &subscriptions.WashVerification{
		ID:             uuid.NewString(),
		QRCodeID:       code.ID,
		SubscriptionID: sub.ID,
		UserID:         sub.UserID,
		PartnerID:      partner.ID,
		LocationID:     location.ID,
		VerifiedAt:     now,
	}))
}

func TestSubscriptionRepository_UpdateByIDKeepsWashCounter(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx, "stale@example.com")
	plan := CreateTestPlan(t, ctx, 4)
	sub := CreateTestSubscription(t, ctx, user, plan)

	stale, err := ctx.Repos.Subscriptions.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)

	recordTestWash(t, ctx, sub)

	stale.CancelAtPeriodEnd = true
	stale.UpdatedAt = time.Now().UTC()
	require.NoError(t, ctx.Repos.Subscriptions.UpdateByID(context.Background(), stale))

	stored, err := ctx.Repos.Subscriptions.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.True(t, stored.CancelAtPeriodEnd)
	assert.Equal(t, 1, stored.WashesUsed, "a stale copy must not undo a recorded wash")

	missing := *stale
	missing.ID = uuid.NewString()
	assert.ErrorIs(t, ctx.Repos.Subscriptions.UpdateByID(context.Background(), &missing), apperr.ErrNotFound)
}

func TestSubscriptionRepository_RenewPeriod(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx, "renew@example.com")
	plan := CreateTestPlan(t, ctx, 4)
	sub := CreateTestSubscription(t, ctx, user, plan)
	recordTestWash(t, ctx, sub)

	next := *sub
	next.CurrentPeriodStart = sub.CurrentPeriodEnd
	next.CurrentPeriodEnd = plan.PeriodEnd(next.CurrentPeriodStart)
	require.NoError(t, ctx.Repos.Subscriptions.RenewPeriod(context.Background(), &next))

	stored, err := ctx.Repos.Subscriptions.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.WashesUsed)
	assert.WithinDuration(t, next.CurrentPeriodEnd, stored.CurrentPeriodEnd, time.Second)

	again := next
	assert.ErrorIs(t, ctx.Repos.Subscriptions.RenewPeriod(context.Background(), &again), apperr.ErrConflict)
}

func TestSubscriptionRepository_OneCurrentSubscriptionPerUser(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx, "twice@example.com")
	plan := CreateTestPlan(t, ctx, 4)
	first := CreateTestSubscription(t, ctx, user, plan)

	second := *first
	second.ID = uuid.NewString()
	err := ctx.Repos.Subscriptions.Create(context.Background(), &second)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	second.Status = subscriptions.StatusPastDue
	err = ctx.Repos.Subscriptions.Create(context.Background(), &second)
	assert.ErrorIs(t, err, apperr.ErrConflict, "past due counts as current")

	first.Status = subscriptions.StatusCancelled
	require.NoError(t, ctx.Repos.Subscriptions.UpdateByID(context.Background(), first))

	second.Status = subscriptions.StatusActive
	require.NoError(t, ctx.Repos.Subscriptions.Create(context.Background(), &second))
}
