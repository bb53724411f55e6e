package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/domain/admin"
	"github.com/bella-carwash/bella-api/internal/domain/billing"
	"github.com/bella-carwash/bella-api/internal/domain/catalog"
	"github.com/bella-carwash/bella-api/internal/domain/partners"
	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
	"github.com/bella-carwash/bella-api/internal/domain/support"
	"github.com/bella-carwash/bella-api/internal/infrastructure/persistence"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"
	"github.com/bella-carwash/bella-api/internal/pkg/validators"
)

// EventRecorder receives business events for metrics.
type EventRecorder interface {
	WashVerified()
	WebhookEvent(eventType, outcome string)
}

// Transactor runs fn in one transaction. Repository calls made with the
// context passed to fn join it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type noopRecorder struct{}

func (noopRecorder) WashVerified()                {}
func (noopRecorder) WebhookEvent(string, string) {}

// Dependencies are the collaborators shared by every service.
type Dependencies struct {
	Repos      *persistence.Repositories
	Tokens     accounts.TokenIssuer
	Hasher     accounts.PasswordHasher
	CodeSender accounts.CodeSender
	Verifier   billing.EventVerifier
	Recorder   EventRecorder
	Logger     logger.Logger
	// Now defaults to time.Now in UTC.
	Now func() time.Time
}

// Services bundles one instance of every application service.
type Services struct {
	Auth              accounts.AuthService
	Users             accounts.UserService
	VerificationCodes accounts.VerificationCodeService
	PartnerAuth       partners.PartnerAuthService
	Partners          partners.PartnerService
	Locations         partners.LocationService
	Plans             catalog.PlanService
	ExtraServices     catalog.ExtraServiceService
	Postcodes         catalog.PostcodeService
	Subscriptions     subscriptions.SubscriptionService
	QRCodes           subscriptions.QRCodeService
	Verifications     subscriptions.WashVerificationService
	Payments          billing.PaymentService
	PaymentMethods    billing.PaymentMethodService
	Billing           billing.BillingService
	Webhooks          billing.WebhookService
	Tickets           support.TicketService
	Stats             admin.StatsService
}

// NewServices wires every service from deps.
func NewServices(deps Dependencies) (*Services, error) {
	if deps.Repos == nil || deps.Tokens == nil || deps.Hasher == nil || deps.Logger == nil {
		return nil, errors.New("repositories, token issuer, password hasher and logger are required")
	}
	if deps.Recorder == nil {
		deps.Recorder = noopRecorder{}
	}
	if deps.Now == nil {
		deps.Now = func() time.Time { return time.Now().UTC() }
	}

	r := deps.Repos
	return &Services{
		Auth:              NewAuthService(r.Users, deps.Hasher, deps.Tokens, deps.Now, deps.Logger),
		Users:             NewUserService(r.Users, deps.Now),
		VerificationCodes: NewVerificationCodeService(r.VerificationCodes, r.Users, deps.CodeSender, deps.Now, deps.Logger),
		PartnerAuth:       NewPartnerAuthService(r.Partners, deps.Hasher, deps.Tokens, deps.Now, deps.Logger),
		Partners:          NewPartnerService(r.Partners, deps.Now),
		Locations:         NewLocationService(r.Locations, r.Partners, deps.Now),
		Plans:             NewPlanService(r.Plans, deps.Now),
		ExtraServices:     NewExtraServiceService(r.ExtraServices, deps.Now),
		Postcodes:         NewPostcodeService(r.Coverage, r.Locations),
		Subscriptions:     NewSubscriptionService(r.Subscriptions, r.Plans, deps.Now),
		QRCodes:           NewQRCodeService(r.QRCodes, r.Subscriptions, r.Plans, deps.Now),
		Verifications:     NewWashVerificationService(r.QRCodes, r.Subscriptions, r.Plans, r.Partners, r.Locations, r.Verifications, r.Ledger, deps.Recorder, deps.Now, deps.Logger),
		Payments:          NewPaymentService(r.Payments),
		PaymentMethods:    NewPaymentMethodService(r.PaymentMethods, deps.Now),
		Billing:           NewBillingService(r.Subscriptions, r.Plans, r.Payments, r.PaymentMethods, deps.Now),
		Webhooks:          NewWebhookService(deps.Verifier, r.Tx, r.WebhookEvents, r.Subscriptions, r.Plans, r.Payments, deps.Recorder, deps.Now, deps.Logger),
		Tickets:           NewTicketService(r.Tickets, deps.Now),
		Stats:             NewStatsService(r.Users, r.Partners, r.Subscriptions, r.Tickets, r.Verifications, deps.Now),
	}, nil
}

// validate runs struct validation and reports failures as 400s.
func validate(s interface{}) error {
	if err := validators.Struct(s); err != nil {
		return apperr.Wrap(err, http.StatusBadRequest, "validation_error", err.Error())
	}
	return nil
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func randomDigits(n int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", n, v), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, apperr.ErrNotFound)
}
