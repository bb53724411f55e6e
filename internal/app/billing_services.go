package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/billing"
	"github.com/bella-carwash/bella-api/internal/domain/catalog"
	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"github.com/google/uuid"
)

// paymentService implements billing.PaymentService
type paymentService struct {
	payments billing.PaymentRepository
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(payments billing.PaymentRepository) billing.PaymentService {
	return &paymentService{payments: payments}
}

func (s *paymentService) List(ctx context.Context, userID string) ([]*billing.Payment, error) {
	return s.payments.ListByUser(ctx, userID)
}

func (s *paymentService) GetByID(ctx context.Context, userID, paymentID string) (*billing.Payment, error) {
	payment, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.UserID != userID {
		return nil, apperr.NotFound("Payment not found")
	}
	return payment, nil
}

// paymentMethodService implements billing.PaymentMethodService
type paymentMethodService struct {
	methods billing.PaymentMethodRepository
	now     func() time.Time
}

// NewPaymentMethodService creates a new instance of PaymentMethodService
func NewPaymentMethodService(methods billing.PaymentMethodRepository, now func() time.Time) billing.PaymentMethodService {
	return &paymentMethodService{methods: methods, now: now}
}

func (s *paymentMethodService) List(ctx context.Context, userID string) ([]*billing.PaymentMethod, error) {
	return s.methods.ListByUser(ctx, userID)
}

// Add stores a card reference. The first card becomes the default.
func (s *paymentMethodService) Add(ctx context.Context, userID string, input billing.PaymentMethodInput) (*billing.PaymentMethod, error) {
	if err := validate(&input); err != nil {
		return nil, err
	}

	existing, err := s.methods.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	method := &billing.PaymentMethod{
		ID:          uuid.NewString(),
		UserID:      userID,
		Brand:       strings.ToLower(strings.TrimSpace(input.Brand)),
		Last4:       input.Last4,
		ExpMonth:    input.ExpMonth,
		ExpYear:     input.ExpYear,
		ProviderRef: strings.TrimSpace(input.ProviderRef),
		CreatedAt:   s.now(),
	}
	if err := s.methods.Create(ctx, method); err != nil {
		return nil, err
	}

	if input.MakeDefault || len(existing) == 0 {
		if err := s.methods.SetDefault(ctx, userID, method.ID); err != nil {
			return nil, err
		}
		method.IsDefault = true
	}
	return method, nil
}

func (s *paymentMethodService) SetDefault(ctx context.Context, userID, methodID string) (*billing.PaymentMethod, error) {
	method, err := s.owned(ctx, userID, methodID)
	if err != nil {
		return nil, err
	}
	if err := s.methods.SetDefault(ctx, userID, methodID); err != nil {
		return nil, err
	}
	method.IsDefault = true
	return method, nil
}

// Remove deletes a card. When the default card goes, the newest remaining card
// takes its place.
func (s *paymentMethodService) Remove(ctx context.Context, userID, methodID string) error {
	method, err := s.owned(ctx, userID, methodID)
	if err != nil {
		return err
	}
	if err := s.methods.DeleteByID(ctx, methodID); err != nil {
		return err
	}
	if !method.IsDefault {
		return nil
	}

	remaining, err := s.methods.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		return nil
	}
	return s.methods.SetDefault(ctx, userID, remaining[0].ID)
}

func (s *paymentMethodService) owned(ctx context.Context, userID, methodID string) (*billing.PaymentMethod, error) {
	method, err := s.methods.GetByID(ctx, methodID)
	if err != nil {
		return nil, err
	}
	if method.UserID != userID {
		return nil, apperr.NotFound("Payment method not found")
	}
	return method, nil
}

// billingService implements billing.BillingService
type billingService struct {
	subs     subscriptions.SubscriptionRepository
	plans    catalog.PlanRepository
	payments billing.PaymentRepository
	methods  billing.PaymentMethodRepository
	now      func() time.Time
}

// NewBillingService creates a new instance of BillingService
func NewBillingService(subs subscriptions.SubscriptionRepository, plans catalog.PlanRepository, payments billing.PaymentRepository, methods billing.PaymentMethodRepository, now func() time.Time) billing.BillingService {
	return &billingService{subs: subs, plans: plans, payments: payments, methods: methods, now: now}
}

func (s *billingService) Summary(ctx context.Context, userID string) (*billing.Summary, error) {
	summary := &billing.Summary{Currency: defaultCurrency}

	sub, err := s.subs.GetCurrentByUser(ctx, userID)
	switch {
	case err == nil:
		plan, err := s.plans.GetByID(ctx, sub.PlanID)
		if err != nil {
			return nil, err
		}
		id := sub.ID
		summary.SubscriptionID = &id
		summary.PlanName = plan.Name
		summary.Status = sub.Status
		summary.Currency = plan.Currency
		if !sub.CancelAtPeriodEnd {
			next := sub.CurrentPeriodEnd
			summary.NextChargeAt = &next
			summary.NextChargeCents = plan.PriceCents
		}
	case !isNotFound(err):
		return nil, err
	}

	payments, err := s.payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if p.Status == billing.PaymentSucceeded {
			summary.TotalPaidCents += p.AmountCents
			summary.PaymentCount++
		}
	}

	methods, err := s.methods.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, m := range methods {
		if m.IsDefault {
			summary.DefaultPaymentCard = m
			break
		}
	}
	return summary, nil
}

func (s *billingService) History(ctx context.Context, userID string) ([]*billing.Payment, error) {
	return s.payments.ListByUser(ctx, userID)
}

// webhookService implements billing.WebhookService
type webhookService struct {
	verifier billing.EventVerifier
	tx       Transactor
	events   billing.WebhookEventRepository
	subs     subscriptions.SubscriptionRepository
	plans    catalog.PlanRepository
	payments billing.PaymentRepository
	recorder EventRecorder
	now      func() time.Time
	logger   logger.Logger
}

// NewWebhookService creates a new instance of WebhookService
func NewWebhookService(
	verifier billing.EventVerifier,
	tx Transactor,
	events billing.WebhookEventRepository,
	subs subscriptions.SubscriptionRepository,
	plans catalog.PlanRepository,
	payments billing.PaymentRepository,
	recorder EventRecorder,
	now func() time.Time,
	logger logger.Logger,
) billing.WebhookService {
	return &webhookService{
		verifier: verifier,
		tx:       tx,
		events:   events,
		subs:     subs,
		plans:    plans,
		payments: payments,
		recorder: recorder,
		now:      now,
		logger:   logger,
	}
}

// Handle verifies the payload, then records the event id and applies the event
// in one transaction. A failed application rolls back the id together with any
// payment it wrote, so the provider's retry is processed from scratch.
func (s *webhookService) Handle(ctx context.Context, payload []byte, signature string) (*billing.WebhookResult, error) {
	if s.verifier == nil {
		return nil, errors.New("webhook verifier is not configured")
	}

	event, err := s.verifier.Verify(payload, signature)
	if err != nil {
		s.recorder.WebhookEvent("unknown", "rejected")
		return nil, err
	}
	result := &billing.WebhookResult{EventID: event.ID, EventType: event.Type}

	var applyErr error
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err := s.events.CreateIfAbsent(ctx, &billing.WebhookEvent{ID: event.ID, Type: event.Type, ReceivedAt: s.now()})
		if err != nil {
			return err
		}
		if !created {
			result.Duplicate = true
			return nil
		}

		if result.Handled, applyErr = s.apply(ctx, event); applyErr != nil {
			return applyErr
		}
		return s.events.MarkProcessed(ctx, event.ID)
	})

	switch {
	case applyErr != nil:
		s.recorder.WebhookEvent(event.Type, "failed")
		return nil, fmt.Errorf("failed to apply webhook event %s: %w", event.ID, applyErr)
	case err != nil:
		return nil, err
	case result.Duplicate:
		s.recorder.WebhookEvent(event.Type, "duplicate")
		s.logger.Info("Ignoring redelivered webhook event ", event.ID)
		return result, nil
	}

	outcome := "ignored"
	if result.Handled {
		outcome = "handled"
	}
	s.recorder.WebhookEvent(event.Type, outcome)
	return result, nil
}

func (s *webhookService) apply(ctx context.Context, event *billing.ProviderEvent) (bool, error) {
	switch event.Type {
	case billing.EventInvoicePaid, billing.EventInvoicePaymentFailed, billing.EventSubscriptionDeleted:
	default:
		return false, nil
	}

	if event.SubscriptionRef == "" {
		s.logger.Warn("Webhook event ", event.ID, " carries no subscription reference")
		return false, nil
	}
	sub, err := s.subs.GetByProviderID(ctx, event.SubscriptionRef)
	if isNotFound(err) {
		s.logger.Warn("Webhook event ", event.ID, " references unknown subscription ", event.SubscriptionRef)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	now := s.now()
	update := s.subs.UpdateByID
	switch event.Type {
	case billing.EventInvoicePaid:
		if err := s.recordPayment(ctx, event, sub, billing.PaymentSucceeded); err != nil {
			return false, err
		}
		if !now.Before(sub.CurrentPeriodEnd) {
			plan, err := s.plans.GetByID(ctx, sub.PlanID)
			if err != nil {
				return false, err
			}
			sub.CurrentPeriodStart = sub.CurrentPeriodEnd
			sub.CurrentPeriodEnd = plan.PeriodEnd(sub.CurrentPeriodStart)
			update = s.subs.RenewPeriod
		}
		if sub.Status == subscriptions.StatusPastDue {
			sub.Status = subscriptions.StatusActive
		}

	case billing.EventInvoicePaymentFailed:
		if err := s.recordPayment(ctx, event, sub, billing.PaymentFailed); err != nil {
			return false, err
		}
		if sub.Status == subscriptions.StatusActive {
			sub.Status = subscriptions.StatusPastDue
		}

	case billing.EventSubscriptionDeleted:
		sub.Status = subscriptions.StatusCancelled
		sub.CancelAtPeriodEnd = false
	}

	sub.UpdatedAt = now
	if err := update(ctx, sub); err != nil {
		return false, err
	}
	s.logger.Info("Applied webhook event ", event.Type, " to subscription ", sub.ID)
	return true, nil
}

func (s *webhookService) recordPayment(ctx context.Context, event *billing.ProviderEvent, sub *subscriptions.Subscription, status string) error {
	currency := strings.ToLower(event.Currency)
	if len(currency) != 3 {
		currency = defaultCurrency
	}
	subID := sub.ID

	return s.payments.Create(ctx, &billing.Payment{
		ID:             uuid.NewString(),
		UserID:         sub.UserID,
		SubscriptionID: &subID,
		AmountCents:    event.AmountCents,
		Currency:       currency,
		Status:         status,
		Description:    "Subscription payment",
		ProviderRef:    event.InvoiceRef,
		CreatedAt:      s.now(),
	})
}
