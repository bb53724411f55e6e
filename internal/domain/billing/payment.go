package billing

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/validators"
)

// Payment statuses.
const (
	PaymentSucceeded = "succeeded"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Payment entity
type Payment struct {
	ID             string `validate:"required,uuid4"`
	UserID         string `validate:"required,uuid4"`
	SubscriptionID *string `validate:"omitempty,uuid4"`
	AmountCents    int64  `validate:"min=0"`
	Currency       string `validate:"required,len=3"`
	Status         string `validate:"required,oneof=succeeded failed refunded"`
	Description    string `validate:"max=255"`
	// ProviderRef is the payment provider's object id (invoice, charge).
	ProviderRef string    `validate:"max=255"`
	CreatedAt   time.Time `validate:"required"`
}

// Validate for validating Payment struct
func (p *Payment) Validate() error {
	return validators.Struct(p)
}

// PaymentMethod is a stored card reference. Card numbers never reach this service.
type PaymentMethod struct {
	ID          string `validate:"required,uuid4"`
	UserID      string `validate:"required,uuid4"`
	Brand       string `validate:"required,max=32"`
	Last4       string `validate:"required,len=4,numeric"`
	ExpMonth    int    `validate:"min=1,max=12"`
	ExpYear     int    `validate:"min=2000,max=2100"`
	IsDefault   bool
	ProviderRef string    `validate:"required,max=255"`
	CreatedAt   time.Time `validate:"required"`
}

// Validate for validating PaymentMethod struct
func (m *PaymentMethod) Validate() error {
	return validators.Struct(m)
}

// PaymentMethodInput carries a tokenised card reference from the frontend.
type PaymentMethodInput struct {
	ProviderRef string `validate:"required,max=255"`
	Brand       string `validate:"required,max=32"`
	Last4       string `validate:"required,len=4,numeric"`
	ExpMonth    int    `validate:"min=1,max=12"`
	ExpYear     int    `validate:"min=2000,max=2100"`
	MakeDefault bool
}

// Summary is the billing overview shown on the account page.
type Summary struct {
	SubscriptionID     *string
	PlanName           string
	Status             string
	NextChargeAt       *time.Time
	NextChargeCents    int64
	Currency           string
	TotalPaidCents     int64
	PaymentCount       int
	DefaultPaymentCard *PaymentMethod
}
