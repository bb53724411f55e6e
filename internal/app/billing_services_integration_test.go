//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/billing"
	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cardInput(last4 string, makeDefault bool) billing.PaymentMethodInput {
	return billing.PaymentMethodInput{
		ProviderRef: "pm_" + last4,
		Brand:       "Visa",
		Last4:       last4,
		ExpMonth:    12,
		ExpYear:     2030,
		MakeDefault: makeDefault,
	}
}

func TestPaymentMethodService_DefaultHandling(t *testing.T) {
	svc := SetupSqliteServices(t)
	ctx := context.Background()
	user, _, err := svc.Auth.Register(ctx, registerInput("cards@example.com"))
	require.NoError(t, err)

	first, err := svc.PaymentMethods.Add(ctx, user.ID, cardInput("4242", false))
	require.NoError(t, err)
	assert.True(t, first.IsDefault, "first card becomes default")
	assert.Equal(t, "visa", first.Brand)

	svc.Clock.Advance(time.Second)
	second, err := svc.PaymentMethods.Add(ctx, user.ID, cardInput("1881", false))
	require.NoError(t, err)
	assert.False(t, second.IsDefault)

	_, err = svc.PaymentMethods.SetDefault(ctx, user.ID, second.ID)
	require.NoError(t, err)

	require.NoError(t, svc.PaymentMethods.Remove(ctx, user.ID, second.ID))
	methods, err := svc.PaymentMethods.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, methods, 1)
	assert.True(t, methods[0].IsDefault, "remaining card is promoted")

	err = svc.PaymentMethods.Remove(ctx, "00000000-0000-4000-8000-000000000000", first.ID)
	assert.Equal(t, http.StatusNotFound, apperr.From(err).Status)
}

func TestWebhookService_InvoiceLifecycle(t *testing.T) {
	f := setupWashFixture(t, 4)
	svc := f.svc
	ctx := context.Background()

	sub, err := svc.Subscriptions.Subscribe(ctx, f.userID, subscriptions.SubscribeInput{PlanID: f.plan.ID, ProviderSubscriptionID: "sub_123"})
	require.NoError(t, err)

	failed := &billing.ProviderEvent{ID: "evt_fail", Type: billing.EventInvoicePaymentFailed, SubscriptionRef: "sub_123", InvoiceRef: "in_1", AmountCents: 1999, Currency: "GBP"}
	paid := &billing.ProviderEvent{ID: "evt_paid", Type: billing.EventInvoicePaid, SubscriptionRef: "sub_123", InvoiceRef: "in_1", AmountCents: 1999, Currency: "gbp"}
	deleted := &billing.ProviderEvent{ID: "evt_del", Type: billing.EventSubscriptionDeleted, SubscriptionRef: "sub_123"}
	svc.Verifier.On("Verify", []byte("failed"), "sig").Return(failed, nil)
	svc.Verifier.On("Verify", []byte("paid"), "sig").Return(paid, nil)
	svc.Verifier.On("Verify", []byte("deleted"), "sig").Return(deleted, nil)

	result, err := svc.Webhooks.Handle(ctx, []byte("failed"), "sig")
	require.NoError(t, err)
	assert.True(t, result.Handled)
	current, err := svc.Subscriptions.GetByID(ctx, f.userID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, subscriptions.StatusPastDue, current.Status)

	result, err = svc.Webhooks.Handle(ctx, []byte("paid"), "sig")
	require.NoError(t, err)
	assert.True(t, result.Handled)
	current, err = svc.Subscriptions.GetByID(ctx, f.userID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, subscriptions.StatusActive, current.Status)

	result, err = svc.Webhooks.Handle(ctx, []byte("paid"), "sig")
	require.NoError(t, err)
	assert.True(t, result.Duplicate, "redelivery is ignored")

	history, err := svc.Billing.History(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	summary, err := svc.Billing.Summary(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1999), summary.TotalPaidCents)
	assert.Equal(t, 1, summary.PaymentCount)
	assert.Equal(t, "Basic", summary.PlanName)
	require.NotNil(t, summary.NextChargeAt)

	_, err = svc.Webhooks.Handle(ctx, []byte("deleted"), "sig")
	require.NoError(t, err)
	current, err = svc.Subscriptions.GetByID(ctx, f.userID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, subscriptions.StatusCancelled, current.Status)
}

func TestWebhookService_UnknownTypeAndBadSignature(t *testing.T) {
	svc := SetupSqliteServices(t)
	ctx := context.Background()

	svc.Verifier.On("Verify", []byte("other"), "sig").Return(&billing.ProviderEvent{ID: "evt_other", Type: "customer.created"}, nil)
	svc.Verifier.On("Verify", []byte("forged"), mock.Anything).Return(nil, apperr.BadRequest("Webhook signature verification failed"))

	result, err := svc.Webhooks.Handle(ctx, []byte("other"), "sig")
	require.NoError(t, err)
	assert.False(t, result.Handled)
	assert.False(t, result.Duplicate)

	_, err = svc.Webhooks.Handle(ctx, []byte("forged"), "bad")
	assert.Equal(t, http.StatusBadRequest, apperr.From(err).Status)
}

func TestPaymentService_Ownership(t *testing.T) {
	svc := SetupSqliteServices(t)
	ctx := context.Background()

	_, err := svc.Payments.GetByID(ctx, "00000000-0000-4000-8000-000000000000", "00000000-0000-4000-8000-000000000001")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

// flakySubscriptions fails the next n lifecycle writes.
type flakySubscriptions struct {
	subscriptions.SubscriptionRepository
	failures int
}

func (r *flakySubscriptions) UpdateByID(ctx context.Context, sub *subscriptions.Subscription) error {
	if r.failures > 0 {
		r.failures--
		return errors.New("connection reset by peer")
	}
	return r.SubscriptionRepository.UpdateByID(ctx, sub)
}

func TestWebhookService_FailedApplyRollsBackPayment(t *testing.T) {
	f := setupWashFixture(t, 4)
	svc := f.svc
	ctx := context.Background()

	sub, err := svc.Subscriptions.Subscribe(ctx, f.userID, subscriptions.SubscribeInput{PlanID: f.plan.ID, ProviderSubscriptionID: "sub_flaky"})
	require.NoError(t, err)

	repos := svc.DBContext.Repos
	subs := &flakySubscriptions{SubscriptionRepository: repos.Subscriptions, failures: 1}
	webhooks := NewWebhookService(svc.Verifier, repos.Tx, repos.WebhookEvents, subs, repos.Plans, repos.Payments, noopRecorder{}, svc.Clock.Now, testutil.SetupTestLogger(t))

	failed := &billing.ProviderEvent{ID: "evt_flaky", Type: billing.EventInvoicePaymentFailed, SubscriptionRef: "sub_flaky", InvoiceRef: "in_9", AmountCents: 1999, Currency: "gbp"}
	svc.Verifier.On("Verify", []byte("flaky"), "sig").Return(failed, nil)

	_, err = webhooks.Handle(ctx, []byte("flaky"), "sig")
	require.Error(t, err)

	history, err := svc.Billing.History(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, history, "the payment is rolled back with the failed update")

	result, err := webhooks.Handle(ctx, []byte("flaky"), "sig")
	require.NoError(t, err)
	assert.True(t, result.Handled)
	assert.False(t, result.Duplicate, "a failed event is not remembered")

	history, err = svc.Billing.History(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, history, 1, "redelivery records the payment once")
	assert.Equal(t, billing.PaymentFailed, history[0].Status)

	current, err := svc.Subscriptions.GetByID(ctx, f.userID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, subscriptions.StatusPastDue, current.Status)

	result, err = webhooks.Handle(ctx, []byte("flaky"), "sig")
	require.NoError(t, err)
	assert.True(t, result.Duplicate)
}

func TestWebhookService_RenewalResetsWashes(t *testing.T) {
	f := setupWashFixture(t, 4)
	svc := f.svc
	ctx := context.Background()

	sub, err := svc.Subscriptions.Subscribe(ctx, f.userID, subscriptions.SubscribeInput{PlanID: f.plan.ID, ProviderSubscriptionID: "sub_renew"})
	require.NoError(t, err)
	code, err := svc.QRCodes.Issue(ctx, f.userID)
	require.NoError(t, err)
	_, err = svc.Verifications.Verify(ctx, f.partner.ID, subscriptions.VerifyInput{Code: code.Code, LocationID: f.location.ID})
	require.NoError(t, err)

	svc.Clock.Advance(sub.CurrentPeriodEnd.Sub(svc.Clock.Now()))
	paid := &billing.ProviderEvent{ID: "evt_renew", Type: billing.EventInvoicePaid, SubscriptionRef: "sub_renew", InvoiceRef: "in_2", AmountCents: 1999, Currency: "gbp"}
	svc.Verifier.On("Verify", []byte("renew"), "sig").Return(paid, nil)

	result, err := svc.Webhooks.Handle(ctx, []byte("renew"), "sig")
	require.NoError(t, err)
	assert.True(t, result.Handled)

	current, err := svc.Subscriptions.GetByID(ctx, f.userID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, current.WashesUsed)
	assert.WithinDuration(t, sub.CurrentPeriodEnd, current.CurrentPeriodStart, time.Second)
}
