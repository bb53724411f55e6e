package subscriptions

import (
	"context"
	"time"
)

// SubscriptionService manages a customer's subscriptions.
type SubscriptionService interface {
	// Subscribe starts a subscription to planID. A user holds at most one active subscription.
	Subscribe(ctx context.Context, userID string, input SubscribeInput) (*Subscription, error)
	List(ctx context.Context, userID string) ([]*Subscription, error)
	GetByID(ctx context.Context, userID, subscriptionID string) (*Subscription, error)
	// Cancel stops renewal; the subscription stays usable until the period ends.
	Cancel(ctx context.Context, userID, subscriptionID string) (*Subscription, error)
}

// QRCodeService issues and inspects QR codes.
type QRCodeService interface {
	Issue(ctx context.Context, userID string) (*QRCode, error)
	Inspect(ctx context.Context, code string) (*QRCodeStatus, error)
}

// WashVerificationService redeems QR codes at partner locations.
type WashVerificationService interface {
	Verify(ctx context.Context, partnerID string, input VerifyInput) (*WashVerification, error)
	List(ctx context.Context, query *VerificationQuery) ([]*WashVerification, error)
}

// SubscriptionRepository defines the interface for Subscription-related operations
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, subscriptionID string) (*Subscription, error)
	GetByProviderID(ctx context.Context, stripeSubscriptionID string) (*Subscription, error)
	// GetCurrentByUser returns the user's active or past-due subscription.
	GetCurrentByUser(ctx context.Context, userID string) (*Subscription, error)
	ListByUser(ctx context.Context, userID string) ([]*Subscription, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	// UpdateByID writes the lifecycle fields of sub: status, cancellation flag
	// and provider reference. It leaves the period and wash counter untouched.
	UpdateByID(ctx context.Context, sub *Subscription) error
	// RenewPeriod stores a new billing period and resets the wash counter.
	RenewPeriod(ctx context.Context, sub *Subscription) error
}

// QRCodeRepository defines the interface for QRCode-related operations
type QRCodeRepository interface {
	Create(ctx context.Context, code *QRCode) error
	GetByCode(ctx context.Context, code string) (*QRCode, error)
}

// VerificationRepository defines the interface for WashVerification-related operations
type VerificationRepository interface {
	List(ctx context.Context, query *VerificationQuery) ([]*WashVerification, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// WashLedger atomically redeems a QR code: it marks the code used, bumps the
// subscription's wash counter and stores the verification.
type WashLedger interface {
	RecordWash(ctx context.Context, code *QRCode, sub *Subscription, verification *WashVerification) error
}
