//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/domain/catalog"
	"github.com/bella-carwash/bella-api/internal/domain/partners"
	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
	"github.com/bella-carwash/bella-api/internal/pkg/config"
	"github.com/bella-carwash/bella-api/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB    *gorm.DB
	Repos *Repositories
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	log := testutil.SetupTestLogger(t)
	db, err := NewDBConnection(settings, log)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, AutoMigrate(db), "Failed to migrate schema")

	repos, err := NewRepositories(db, log)
	require.NoError(t, err, "Failed to create repositories")

	return &TestContext{DB: db, Repos: repos}
}

// CreateTestUser persists a customer with default values
func CreateTestUser(t *testing.T, tc *TestContext, email string) *accounts.User {
	t.Helper()

	user := &accounts.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "$2a$10$testhash",
		FirstName:    "Test",
		LastName:     "User",
		Role:         accounts.RoleCustomer,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, tc.Repos.Users.Create(context.Background(), user))
	return user
}

// CreateTestPartner persists an approved partner
func CreateTestPartner(t *testing.T, tc *TestContext, email string) *partners.Partner {
	t.Helper()

	partner := &partners.Partner{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "$2a$10$testhash",
		BusinessName: "Sparkle Wash",
		Status:       partners.StatusApproved,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, tc.Repos.Partners.Create(context.Background(), partner))
	return partner
}

// CreateTestPlan persists an active monthly plan
func CreateTestPlan(t *testing.T, tc *TestContext, washes int) *catalog.Plan {
	t.Helper()

	plan := &catalog.Plan{
		ID:              uuid.NewString(),
		Name:            "Basic",
		PriceCents:      1999,
		Currency:        "gbp",
		Interval:        catalog.IntervalMonth,
		WashesPerPeriod: washes,
		Active:          true,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	require.NoError(t, tc.Repos.Plans.Create(context.Background(), plan))
	return plan
}

// CreateTestSubscription persists an active subscription for user on plan
func CreateTestSubscription(t *testing.T, tc *TestContext, user *accounts.User, plan *catalog.Plan) *subscriptions.Subscription {
	t.Helper()

	start := time.Now().UTC()
	sub := &subscriptions.Subscription{
		ID:                 uuid.NewString(),
		UserID:             user.ID,
		PlanID:             plan.ID,
		Status:             subscriptions.StatusActive,
		CurrentPeriodStart: start,
		CurrentPeriodEnd:   plan.PeriodEnd(start),
		CreatedAt:          start,
		UpdatedAt:          start,
	}
	require.NoError(t, tc.Repos.Subscriptions.Create(context.Background(), sub))
	return sub
}
