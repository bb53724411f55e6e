package billing

import (
	"context"
)

// PaymentService exposes a customer's payment history.
type PaymentService interface {
	List(ctx context.Context, userID string) ([]*Payment, error)
	GetByID(ctx context.Context, userID, paymentID string) (*Payment, error)
}

// PaymentMethodService manages a customer's stored cards.
type PaymentMethodService interface {
	List(ctx context.Context, userID string) ([]*PaymentMethod, error)
	Add(ctx context.Context, userID string, input PaymentMethodInput) (*PaymentMethod, error)
	SetDefault(ctx context.Context, userID, methodID string) (*PaymentMethod, error)
	Remove(ctx context.Context, userID, methodID string) error
}

// BillingService builds billing overviews.
type BillingService interface {
	Summary(ctx context.Context, userID string) (*Summary, error)
	History(ctx context.Context, userID string) ([]*Payment, error)
}

// WebhookService verifies and applies payment provider events.
type WebhookService interface {
	// Handle verifies signature against the raw payload and applies the event once.
	Handle(ctx context.Context, payload []byte, signature string) (*WebhookResult, error)
}

// PaymentRepository defines the interface for Payment-related operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, paymentID string) (*Payment, error)
	ListByUser(ctx context.Context, userID string) ([]*Payment, error)
}

// PaymentMethodRepository defines the interface for PaymentMethod-related operations
type PaymentMethodRepository interface {
	Create(ctx context.Context, method *PaymentMethod) error
	GetByID(ctx context.Context, methodID string) (*PaymentMethod, error)
	ListByUser(ctx context.Context, userID string) ([]*PaymentMethod, error)
	// SetDefault marks methodID as the user's only default method.
	SetDefault(ctx context.Context, userID, methodID string) error
	DeleteByID(ctx context.Context, methodID string) error
}

// WebhookEventRepository defines persistence for received provider events.
type WebhookEventRepository interface {
	// CreateIfAbsent stores the event and reports false when it was already recorded.
	CreateIfAbsent(ctx context.Context, event *WebhookEvent) (bool, error)
	MarkProcessed(ctx context.Context, eventID string) error
}
