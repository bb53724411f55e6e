// Package payments adapts payment provider webhooks to billing events.
package payments

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bella-carwash/bella-api/internal/domain/billing"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeVerifier checks the Stripe-Signature header against the endpoint secret.
type StripeVerifier struct {
	secret string
}

// NewStripeVerifier creates a verifier. An empty secret rejects every event.
func NewStripeVerifier(secret string) *StripeVerifier {
	return &StripeVerifier{secret: secret}
}

func (v *StripeVerifier) Verify(payload []byte, signature string) (*billing.ProviderEvent, error) {
	if v.secret == "" {
		return nil, apperr.New(http.StatusServiceUnavailable, "webhooks_disabled", "Webhook endpoint is not configured")
	}
	if signature == "" {
		return nil, apperr.BadRequest("Missing Stripe-Signature header")
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, apperr.Wrap(err, http.StatusBadRequest, "invalid_signature", "Webhook signature verification failed")
	}

	out := &billing.ProviderEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data == nil {
		return out, nil
	}

	switch {
	case strings.HasPrefix(out.Type, "invoice."):
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return nil, apperr.Wrap(err, http.StatusBadRequest, "invalid_payload", "Malformed invoice payload")
		}
		out.InvoiceRef = invoice.ID
		out.AmountCents = invoice.AmountPaid
		if out.AmountCents == 0 {
			out.AmountCents = invoice.AmountDue
		}
		out.Currency = string(invoice.Currency)
		if invoice.Customer != nil {
			out.CustomerRef = invoice.Customer.ID
		}
		if invoice.Subscription != nil {
			out.SubscriptionRef = invoice.Subscription.ID
		}

	case strings.HasPrefix(out.Type, "customer.subscription."):
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, apperr.Wrap(err, http.StatusBadRequest, "invalid_payload", "Malformed subscription payload")
		}
		out.SubscriptionRef = sub.ID
		if sub.Customer != nil {
			out.CustomerRef = sub.Customer.ID
		}
	}

	return out, nil
}

var _ billing.EventVerifier = (*StripeVerifier)(nil)
