package subscriptions

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/validators"
)

// QRCodeTTL is how long an issued QR code can be scanned.
const QRCodeTTL = 24 * time.Hour

// QRCode is a single-use token encoded in the QR image shown at the wash bay.
type QRCode struct {
	ID             string    `validate:"required,uuid4"`
	Code           string    `validate:"required,len=32,hexadecimal"`
	SubscriptionID string    `validate:"required,uuid4"`
	UserID         string    `validate:"required,uuid4"`
	ExpiresAt      time.Time `validate:"required"`
	UsedAt         *time.Time
	CreatedAt      time.Time `validate:"required"`
}

// Validate for validating QRCode struct
func (q *QRCode) Validate() error {
	return validators.Struct(q)
}

// Usable reports whether the code can still be redeemed at now.
func (q *QRCode) Usable(now time.Time) bool {
	return q.UsedAt == nil && now.Before(q.ExpiresAt)
}

// QRCodeStatus is what a partner sees when scanning a code before verifying it.
type QRCodeStatus struct {
	Code            string
	Valid           bool
	Reason          string
	SubscriptionID  string
	PlanName        string
	WashesRemaining *int
	ExpiresAt       time.Time
}
