//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
	"github.com/stretchr/testify/assert"
)

func TestUserModel_RoundTrip(t *testing.T) {
	customerID := "cus_123"
	user := &accounts.User{
		ID:               "a3b1c2d4-0000-4000-8000-000000000001",
		Email:            "jane@example.com",
		PasswordHash:     "hash",
		FirstName:        "Jane",
		LastName:         "Doe",
		Role:             accounts.RoleCustomer,
		EmailVerified:    true,
		StripeCustomerID: &customerID,
		CreatedAt:        time.Now().UTC(),
	}

	model := &UserModel{}
	model.FromDomain(user)

	assert.Equal(t, user, model.ToDomain())
}

func TestSubscriptionModel_RoundTrip(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := &subscriptions.Subscription{
		ID:                 "a3b1c2d4-0000-4000-8000-000000000002",
		UserID:             "a3b1c2d4-0000-4000-8000-000000000001",
		PlanID:             "a3b1c2d4-0000-4000-8000-000000000003",
		Status:             subscriptions.StatusActive,
		CurrentPeriodStart: start,
		CurrentPeriodEnd:   start.AddDate(0, 1, 0),
		WashesUsed:         2,
		CreatedAt:          start,
	}

	model := &SubscriptionModel{}
	model.FromDomain(sub)

	assert.Equal(t, sub, model.ToDomain())
}

func TestAll_ContainsEveryTable(t *testing.T) {
	names := map[string]bool{}
	for _, m := range All() {
		if tabler, ok := m.(interface{ TableName() string }); ok {
			names[tabler.TableName()] = true
		}
	}

	for _, table := range []string{"users", "partners", "locations", "plans", "subscriptions", "qr_codes", "wash_verifications", "payments", "webhook_events", "support_tickets", "postcodes"} {
		assert.True(t, names[table], "missing table %s", table)
	}
}
