package subscriptions

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/validators"
)

// WashVerification records a redeemed wash at a partner location.
type WashVerification struct {
	ID             string    `validate:"required,uuid4"`
	QRCodeID       string    `validate:"required,uuid4"`
	SubscriptionID string    `validate:"required,uuid4"`
	UserID         string    `validate:"required,uuid4"`
	PartnerID      string    `validate:"required,uuid4"`
	LocationID     string    `validate:"required,uuid4"`
	Notes          string    `validate:"max=500"`
	VerifiedAt     time.Time `validate:"required"`
}

// Validate for validating WashVerification struct
func (v *WashVerification) Validate() error {
	return validators.Struct(v)
}

// VerifyInput is what a partner submits after scanning a QR code.
type VerifyInput struct {
	Code       string `validate:"required,len=32,hexadecimal"`
	LocationID string `validate:"required,uuid4"`
	Notes      string `validate:"max=500"`
}

// VerificationQuery pages through a partner's verification history.
type VerificationQuery struct {
	PartnerID  string `validate:"required,uuid4"`
	LocationID string `validate:"omitempty,uuid4"`
	Since      time.Time
	Limit      int `validate:"min=0,max=200"`
	Offset     int `validate:"min=0"`
}

// Validate for validating VerificationQuery struct
func (q *VerificationQuery) Validate() error {
	return validators.Struct(q)
}
