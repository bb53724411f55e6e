package persistence

import (
	"fmt"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/domain/billing"
	"github.com/bella-carwash/bella-api/internal/domain/catalog"
	"github.com/bella-carwash/bella-api/internal/domain/partners"
	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
	"github.com/bella-carwash/bella-api/internal/domain/support"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"gorm.io/gorm"
)

// Repositories bundles every repository backed by one database handle.
type Repositories struct {
	Users             accounts.UserRepository
	VerificationCodes accounts.VerificationCodeRepository
	Partners          partners.PartnerRepository
	Locations         partners.LocationRepository
	Plans             catalog.PlanRepository
	ExtraServices     catalog.ExtraServiceRepository
	Coverage          catalog.CoverageRepository
	Subscriptions     subscriptions.SubscriptionRepository
	QRCodes           subscriptions.QRCodeRepository
	Verifications     subscriptions.VerificationRepository
	Ledger            subscriptions.WashLedger
	Payments          billing.PaymentRepository
	PaymentMethods    billing.PaymentMethodRepository
	WebhookEvents     billing.WebhookEventRepository
	Tickets           support.TicketRepository
	// Tx runs several repository calls as one unit of work.
	Tx *GormTransactor
}

// NewRepositories creates all GORM repositories on db.
func NewRepositories(db *gorm.DB, log logger.Logger) (*Repositories, error) {
	var (
		repos Repositories
		err   error
	)

	steps := []struct {
		name string
		fn   func() error
	}{
		{"user", func() (e error) { repos.Users, e = NewGormUserRepository(db, log); return }},
		{"verification code", func() (e error) { repos.VerificationCodes, e = NewGormVerificationCodeRepository(db, log); return }},
		{"partner", func() (e error) { repos.Partners, e = NewGormPartnerRepository(db, log); return }},
		{"location", func() (e error) { repos.Locations, e = NewGormLocationRepository(db, log); return }},
		{"plan", func() (e error) { repos.Plans, e = NewGormPlanRepository(db, log); return }},
		{"extra service", func() (e error) { repos.ExtraServices, e = NewGormExtraServiceRepository(db, log); return }},
		{"coverage", func() (e error) { repos.Coverage, e = NewGormCoverageRepository(db); return }},
		{"subscription", func() (e error) { repos.Subscriptions, e = NewGormSubscriptionRepository(db, log); return }},
		{"qr code", func() (e error) { repos.QRCodes, e = NewGormQRCodeRepository(db, log); return }},
		{"verification", func() (e error) { repos.Verifications, e = NewGormVerificationRepository(db, log); return }},
		{"wash ledger", func() (e error) { repos.Ledger, e = NewGormWashLedger(db, log); return }},
		{"payment", func() (e error) { repos.Payments, e = NewGormPaymentRepository(db, log); return }},
		{"payment method", func() (e error) { repos.PaymentMethods, e = NewGormPaymentMethodRepository(db, log); return }},
		{"webhook event", func() (e error) { repos.WebhookEvents, e = NewGormWebhookEventRepository(db); return }},
		{"ticket", func() (e error) { repos.Tickets, e = NewGormTicketRepository(db, log); return }},
		{"transactor", func() (e error) { repos.Tx, e = NewGormTransactor(db); return }},
	}

	for _, step := range steps {
		if err = step.fn(); err != nil {
			return nil, fmt.Errorf("failed to create %s repository: %w", step.name, err)
		}
	}

	return &repos, nil
}
