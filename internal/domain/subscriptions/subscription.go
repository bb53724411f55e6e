package subscriptions

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/validators"
)

// Subscription statuses.
const (
	StatusActive    = "active"
	StatusPastDue   = "past_due"
	StatusCancelled = "cancelled"
)

// Subscription entity
type Subscription struct {
	ID                   string    `validate:"required,uuid4"`
	UserID               string    `validate:"required,uuid4"`
	PlanID               string    `validate:"required,uuid4"`
	Status               string    `validate:"required,oneof=active past_due cancelled"`
	CurrentPeriodStart   time.Time `validate:"required"`
	CurrentPeriodEnd     time.Time `validate:"required,gtfield=CurrentPeriodStart"`
	WashesUsed           int       `validate:"min=0"`
	CancelAtPeriodEnd    bool
	StripeSubscriptionID *string
	CreatedAt            time.Time `validate:"required"`
	UpdatedAt            time.Time
}

// Validate for validating Subscription struct
func (s *Subscription) Validate() error {
	return validators.Struct(s)
}

// ActiveAt reports whether the subscription entitles washes at now.
func (s *Subscription) ActiveAt(now time.Time) bool {
	return s.Status == StatusActive && now.Before(s.CurrentPeriodEnd)
}

// SubscribeInput starts a subscription. ProviderSubscriptionID links it to the
// payment provider's subscription created during checkout.
type SubscribeInput struct {
	PlanID                 string `validate:"required,uuid4"`
	ProviderSubscriptionID string `validate:"omitempty,max=255"`
}
