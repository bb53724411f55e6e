//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/bella-carwash/bella-api/internal/app"
	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/domain/admin"
	"github.com/bella-carwash/bella-api/internal/domain/billing"
	"github.com/bella-carwash/bella-api/internal/domain/catalog"
	"github.com/bella-carwash/bella-api/internal/domain/partners"
	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
	"github.com/bella-carwash/bella-api/internal/domain/support"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of accounts.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input accounts.RegisterInput) (*accounts.User, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*accounts.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email string, password string) (*accounts.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*accounts.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) CreateAdmin(ctx context.Context, input accounts.RegisterInput) (*accounts.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

// MockUserService is a mock implementation of accounts.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, update accounts.ProfileUpdate) (*accounts.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockUserService) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) List(ctx context.Context, query *accounts.UserQuery) ([]*accounts.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accounts.User), args.Error(1)
}

// MockVerificationCodeService is a mock implementation of accounts.VerificationCodeService
type MockVerificationCodeService struct {
	mock.Mock
}

func (m *MockVerificationCodeService) Send(ctx context.Context, email string, purpose string) (*accounts.VerificationCode, error) {
	args := m.Called(ctx, email, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.VerificationCode), args.Error(1)
}

func (m *MockVerificationCodeService) Confirm(ctx context.Context, email string, purpose string, code string) error {
	args := m.Called(ctx, email, purpose, code)
	return args.Error(0)
}

// MockPartnerAuthService is a mock implementation of partners.PartnerAuthService
type MockPartnerAuthService struct {
	mock.Mock
}

func (m *MockPartnerAuthService) Register(ctx context.Context, input partners.RegisterInput) (*partners.Partner, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*partners.Partner), args.String(1), args.Error(2)
}

func (m *MockPartnerAuthService) Login(ctx context.Context, email string, password string) (*partners.Partner, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*partners.Partner), args.String(1), args.Error(2)
}

// MockPartnerService is a mock implementation of partners.PartnerService
type MockPartnerService struct {
	mock.Mock
}

func (m *MockPartnerService) GetByID(ctx context.Context, partnerID string) (*partners.Partner, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partners.Partner), args.Error(1)
}

func (m *MockPartnerService) List(ctx context.Context, query *partners.PartnerQuery) ([]*partners.Partner, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partners.Partner), args.Error(1)
}

func (m *MockPartnerService) SetStatus(ctx context.Context, partnerID string, status string) (*partners.Partner, error) {
	args := m.Called(ctx, partnerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partners.Partner), args.Error(1)
}

func (m *MockPartnerService) ConnectStatus(ctx context.Context, partnerID string) (*partners.ConnectStatus, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partners.ConnectStatus), args.Error(1)
}

func (m *MockPartnerService) LinkStripeAccount(ctx context.Context, partnerID string, accountID string) (*partners.ConnectStatus, error) {
	args := m.Called(ctx, partnerID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partners.ConnectStatus), args.Error(1)
}

// MockLocationService is a mock implementation of partners.LocationService
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Create(ctx context.Context, partnerID string, input partners.LocationInput) (*partners.Location, error) {
	args := m.Called(ctx, partnerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partners.Location), args.Error(1)
}

func (m *MockLocationService) Update(ctx context.Context, partnerID string, locationID string, input partners.LocationInput) (*partners.Location, error) {
	args := m.Called(ctx, partnerID, locationID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partners.Location), args.Error(1)
}

func (m *MockLocationService) Delete(ctx context.Context, partnerID string, locationID string) error {
	args := m.Called(ctx, partnerID, locationID)
	return args.Error(0)
}

func (m *MockLocationService) GetByID(ctx context.Context, locationID string) (*partners.Location, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partners.Location), args.Error(1)
}

func (m *MockLocationService) List(ctx context.Context, query *partners.LocationQuery) ([]*partners.Location, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partners.Location), args.Error(1)
}

// MockPlanService is a mock implementation of catalog.PlanService
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) List(ctx context.Context, activeOnly bool) ([]*catalog.Plan, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Plan), args.Error(1)
}

func (m *MockPlanService) GetByID(ctx context.Context, planID string) (*catalog.Plan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Plan), args.Error(1)
}

func (m *MockPlanService) Create(ctx context.Context, input catalog.PlanInput) (*catalog.Plan, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Plan), args.Error(1)
}

func (m *MockPlanService) Update(ctx context.Context, planID string, input catalog.PlanInput) (*catalog.Plan, error) {
	args := m.Called(ctx, planID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Plan), args.Error(1)
}

func (m *MockPlanService) Delete(ctx context.Context, planID string) error {
	args := m.Called(ctx, planID)
	return args.Error(0)
}

// MockExtraServiceService is a mock implementation of catalog.ExtraServiceService
type MockExtraServiceService struct {
	mock.Mock
}

func (m *MockExtraServiceService) List(ctx context.Context, activeOnly bool) ([]*catalog.ExtraService, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.ExtraService), args.Error(1)
}

func (m *MockExtraServiceService) Create(ctx context.Context, input catalog.ExtraServiceInput) (*catalog.ExtraService, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ExtraService), args.Error(1)
}

func (m *MockExtraServiceService) Update(ctx context.Context, serviceID string, input catalog.ExtraServiceInput) (*catalog.ExtraService, error) {
	args := m.Called(ctx, serviceID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ExtraService), args.Error(1)
}

func (m *MockExtraServiceService) Delete(ctx context.Context, serviceID string) error {
	args := m.Called(ctx, serviceID)
	return args.Error(0)
}

// MockPostcodeService is a mock implementation of catalog.PostcodeService
type MockPostcodeService struct {
	mock.Mock
}

func (m *MockPostcodeService) Lookup(ctx context.Context, postcode string) (*catalog.PostcodeLookup, error) {
	args := m.Called(ctx, postcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PostcodeLookup), args.Error(1)
}

// MockSubscriptionService is a mock implementation of subscriptions.SubscriptionService
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Subscribe(ctx context.Context, userID string, input subscriptions.SubscribeInput) (*subscriptions.Subscription, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscriptions.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) List(ctx context.Context, userID string) ([]*subscriptions.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscriptions.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) GetByID(ctx context.Context, userID string, subscriptionID string) (*subscriptions.Subscription, error) {
	args := m.Called(ctx, userID, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscriptions.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) Cancel(ctx context.Context, userID string, subscriptionID string) (*subscriptions.Subscription, error) {
	args := m.Called(ctx, userID, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscriptions.Subscription), args.Error(1)
}

// MockQRCodeService is a mock implementation of subscriptions.QRCodeService
type MockQRCodeService struct {
	mock.Mock
}

func (m *MockQRCodeService) Issue(ctx context.Context, userID string) (*subscriptions.QRCode, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscriptions.QRCode), args.Error(1)
}

func (m *MockQRCodeService) Inspect(ctx context.Context, code string) (*subscriptions.QRCodeStatus, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscriptions.QRCodeStatus), args.Error(1)
}

// MockWashVerificationService is a mock implementation of subscriptions.WashVerificationService
type MockWashVerificationService struct {
	mock.Mock
}

func (m *MockWashVerificationService) Verify(ctx context.Context, partnerID string, input subscriptions.VerifyInput) (*subscriptions.WashVerification, error) {
	args := m.Called(ctx, partnerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscriptions.WashVerification), args.Error(1)
}

func (m *MockWashVerificationService) List(ctx context.Context, query *subscriptions.VerificationQuery) ([]*subscriptions.WashVerification, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscriptions.WashVerification), args.Error(1)
}

// MockPaymentService is a mock implementation of billing.PaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) List(ctx context.Context, userID string) ([]*billing.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Payment), args.Error(1)
}

func (m *MockPaymentService) GetByID(ctx context.Context, userID string, paymentID string) (*billing.Payment, error) {
	args := m.Called(ctx, userID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Payment), args.Error(1)
}

// MockPaymentMethodService is a mock implementation of billing.PaymentMethodService
type MockPaymentMethodService struct {
	mock.Mock
}

func (m *MockPaymentMethodService) List(ctx context.Context, userID string) ([]*billing.PaymentMethod, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) Add(ctx context.Context, userID string, input billing.PaymentMethodInput) (*billing.PaymentMethod, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) SetDefault(ctx context.Context, userID string, methodID string) (*billing.PaymentMethod, error) {
	args := m.Called(ctx, userID, methodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) Remove(ctx context.Context, userID string, methodID string) error {
	args := m.Called(ctx, userID, methodID)
	return args.Error(0)
}

// MockBillingService is a mock implementation of billing.BillingService
type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) Summary(ctx context.Context, userID string) (*billing.Summary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Summary), args.Error(1)
}

func (m *MockBillingService) History(ctx context.Context, userID string) ([]*billing.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Payment), args.Error(1)
}

// MockWebhookService is a mock implementation of billing.WebhookService
type MockWebhookService struct {
	mock.Mock
}

func (m *MockWebhookService) Handle(ctx context.Context, payload []byte, signature string) (*billing.WebhookResult, error) {
	args := m.Called(ctx, payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.WebhookResult), args.Error(1)
}

// MockTicketService is a mock implementation of support.TicketService
type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) Open(ctx context.Context, userID string, subject string, message string) (*support.Ticket, error) {
	args := m.Called(ctx, userID, subject, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*support.Ticket), args.Error(1)
}

func (m *MockTicketService) List(ctx context.Context, userID string) ([]*support.Ticket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*support.Ticket), args.Error(1)
}

func (m *MockTicketService) GetByID(ctx context.Context, userID string, ticketID string) (*support.Ticket, error) {
	args := m.Called(ctx, userID, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*support.Ticket), args.Error(1)
}

func (m *MockTicketService) Close(ctx context.Context, userID string, ticketID string) (*support.Ticket, error) {
	args := m.Called(ctx, userID, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*support.Ticket), args.Error(1)
}

// MockStatsService is a mock implementation of admin.StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Stats(ctx context.Context) (*admin.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Stats), args.Error(1)
}
// mockServices bundles one mock per application service
type mockServices struct {
	auth          *MockAuthService
	users         *MockUserService
	codes         *MockVerificationCodeService
	partnerAuth   *MockPartnerAuthService
	partners      *MockPartnerService
	locations     *MockLocationService
	plans         *MockPlanService
	extras        *MockExtraServiceService
	postcodes     *MockPostcodeService
	subscriptions *MockSubscriptionService
	qrCodes       *MockQRCodeService
	verifications *MockWashVerificationService
	payments      *MockPaymentService
	methods       *MockPaymentMethodService
	billing       *MockBillingService
	webhooks      *MockWebhookService
	tickets       *MockTicketService
	stats         *MockStatsService
}

func newMockServices() *mockServices {
	return &mockServices{
		auth:          new(MockAuthService),
		users:         new(MockUserService),
		codes:         new(MockVerificationCodeService),
		partnerAuth:   new(MockPartnerAuthService),
		partners:      new(MockPartnerService),
		locations:     new(MockLocationService),
		plans:         new(MockPlanService),
		extras:        new(MockExtraServiceService),
		postcodes:     new(MockPostcodeService),
		subscriptions: new(MockSubscriptionService),
		qrCodes:       new(MockQRCodeService),
		verifications: new(MockWashVerificationService),
		payments:      new(MockPaymentService),
		methods:       new(MockPaymentMethodService),
		billing:       new(MockBillingService),
		webhooks:      new(MockWebhookService),
		tickets:       new(MockTicketService),
		stats:         new(MockStatsService),
	}
}

func (m *mockServices) services() *app.Services {
	return &app.Services{
		Auth:              m.auth,
		Users:             m.users,
		VerificationCodes: m.codes,
		PartnerAuth:       m.partnerAuth,
		Partners:          m.partners,
		Locations:         m.locations,
		Plans:             m.plans,
		ExtraServices:     m.extras,
		Postcodes:         m.postcodes,
		Subscriptions:     m.subscriptions,
		QRCodes:           m.qrCodes,
		Verifications:     m.verifications,
		Payments:          m.payments,
		PaymentMethods:    m.methods,
		Billing:           m.billing,
		Webhooks:          m.webhooks,
		Tickets:           m.tickets,
		Stats:             m.stats,
	}
}
