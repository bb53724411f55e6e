package billing

import (
	"time"
)

// Provider event types handled by the webhook processor.
const (
	EventInvoicePaid          = "invoice.paid"
	EventInvoicePaymentFailed = "invoice.payment_failed"
	EventSubscriptionDeleted  = "customer.subscription.deleted"
)

// WebhookEvent records a provider event so redeliveries are ignored.
type WebhookEvent struct {
	ID          string
	Type        string
	ReceivedAt  time.Time
	ProcessedAt *time.Time
}

// WebhookResult reports what happened to a delivered event.
type WebhookResult struct {
	EventID   string
	EventType string
	Duplicate bool
	Handled   bool
}

// ProviderEvent is a verified payment provider event reduced to the fields the
// webhook processor needs.
type ProviderEvent struct {
	ID   string
	Type string
	// SubscriptionRef is the provider's subscription id, if the event carries one.
	SubscriptionRef string
	CustomerRef     string
	InvoiceRef      string
	AmountCents     int64
	Currency        string
}

// EventVerifier authenticates a raw webhook payload and decodes it.
type EventVerifier interface {
	Verify(payload []byte, signature string) (*ProviderEvent, error)
}
