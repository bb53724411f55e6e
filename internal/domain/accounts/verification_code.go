package accounts

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/validators"
)

// Verification code purposes.
const (
	PurposeEmailVerification = "email_verification"
	PurposePasswordReset     = "password_reset"
)

// Limits applied to one-time codes.
const (
	VerificationCodeTTL         = 15 * time.Minute
	VerificationCodeMaxAttempts = 5
)

// VerificationCode is a six digit one-time code sent to an email address.
type VerificationCode struct {
	ID         string `validate:"required,uuid4"`
	Email      string `validate:"required,email"`
	Code       string `validate:"required,len=6,numeric"`
	Purpose    string `validate:"required,oneof=email_verification password_reset"`
	Attempts   int    `validate:"min=0"`
	ExpiresAt  time.Time `validate:"required"`
	ConsumedAt *time.Time
	CreatedAt  time.Time `validate:"required"`
}

// Validate for validating VerificationCode struct
func (c *VerificationCode) Validate() error {
	return validators.Struct(c)
}

// Usable reports whether the code can still be confirmed at now.
func (c *VerificationCode) Usable(now time.Time) bool {
	return c.ConsumedAt == nil && now.Before(c.ExpiresAt) && c.Attempts < VerificationCodeMaxAttempts
}
