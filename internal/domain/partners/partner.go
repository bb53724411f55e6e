package partners

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/validators"
)

// Partner statuses. Only approved partners appear publicly and can verify washes.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusSuspended = "suspended"
)

// Partner entity
type Partner struct {
	ID              string `validate:"required,uuid4"`
	Email           string `validate:"required,email,max=255"`
	PasswordHash    string `validate:"required"`
	BusinessName    string `validate:"required,min=1,max=255"`
	ContactName     string `validate:"max=255"`
	Phone           string `validate:"omitempty,max=32"`
	Status          string `validate:"required,oneof=pending approved suspended"`
	StripeAccountID *string
	CreatedAt       time.Time `validate:"required"`
	UpdatedAt       time.Time
}

// Validate for validating Partner struct
func (p *Partner) Validate() error {
	return validators.Struct(p)
}

// PartnerQuery filters partner listings.
type PartnerQuery struct {
	Status string `validate:"omitempty,oneof=pending approved suspended"`
	Limit  int    `validate:"min=0,max=200"`
	Offset int    `validate:"min=0"`
}

// Validate for validating PartnerQuery struct
func (q *PartnerQuery) Validate() error {
	return validators.Struct(q)
}

// ConnectStatus describes a partner's payout account link.
type ConnectStatus struct {
	PartnerID       string
	Connected       bool
	StripeAccountID *string
}
