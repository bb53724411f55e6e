package v1

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/domain/admin"
	"github.com/bella-carwash/bella-api/internal/domain/billing"
	"github.com/bella-carwash/bella-api/internal/domain/catalog"
	"github.com/bella-carwash/bella-api/internal/domain/partners"
	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
	"github.com/bella-carwash/bella-api/internal/domain/support"
	"github.com/bella-carwash/bella-api/internal/pkg/validators"
)

// RegisterRequest is the customer sign-up payload
type RegisterRequest struct {
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Phone     string `json:"phone" form:"phone"`
}

func (r RegisterRequest) toInput() accounts.RegisterInput {
	return accounts.RegisterInput{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
}

// LoginRequest is shared by customer and partner login
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Validate checks that both credentials are present
func (r *LoginRequest) Validate() error {
	return validators.Struct(r)
}

// PartnerRegisterRequest is the partner sign-up payload
type PartnerRegisterRequest struct {
	Email        string `json:"email" form:"email"`
	Password     string `json:"password" form:"password"`
	BusinessName string `json:"businessName" form:"businessName"`
	ContactName  string `json:"contactName" form:"contactName"`
	Phone        string `json:"phone" form:"phone"`
}

func (r PartnerRegisterRequest) toInput() partners.RegisterInput {
	return partners.RegisterInput{
		Email:        r.Email,
		Password:     r.Password,
		BusinessName: r.BusinessName,
		ContactName:  r.ContactName,
		Phone:        r.Phone,
	}
}

// ProfileRequest carries optional profile changes
type ProfileRequest struct {
	FirstName *string `json:"firstName" form:"firstName"`
	LastName  *string `json:"lastName" form:"lastName"`
	Phone     *string `json:"phone" form:"phone"`
}

// SendCodeRequest asks for a verification code
type SendCodeRequest struct {
	Email   string `json:"email" form:"email" validate:"required,email"`
	Purpose string `json:"purpose" form:"purpose" validate:"omitempty,oneof=email_verification password_reset"`
}

// Validate checks email and purpose
func (r *SendCodeRequest) Validate() error {
	return validators.Struct(r)
}

// ConfirmCodeRequest submits a verification code
type ConfirmCodeRequest struct {
	Email   string `json:"email" form:"email" validate:"required,email"`
	Purpose string `json:"purpose" form:"purpose" validate:"omitempty,oneof=email_verification password_reset"`
	Code    string `json:"code" form:"code" validate:"required,len=6,numeric"`
}

// Validate checks email, purpose and code shape
func (r *ConfirmCodeRequest) Validate() error {
	return validators.Struct(r)
}

// PartnerStatusRequest changes a partner's review status
type PartnerStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=pending approved suspended"`
}

// Validate checks the requested status
func (r *PartnerStatusRequest) Validate() error {
	return validators.Struct(r)
}

// PlanRequest creates or updates a plan
type PlanRequest struct {
	Name            string  `json:"name" form:"name"`
	Description     string  `json:"description" form:"description"`
	PriceCents      int64   `json:"priceCents" form:"priceCents"`
	Currency        string  `json:"currency" form:"currency"`
	Interval        string  `json:"interval" form:"interval"`
	WashesPerPeriod int     `json:"washesPerPeriod" form:"washesPerPeriod"`
	Active          *bool   `json:"active" form:"active"`
	StripePriceID   *string `json:"stripePriceId" form:"stripePriceId"`
}

func (r PlanRequest) toInput() catalog.PlanInput {
	return catalog.PlanInput{
		Name:            r.Name,
		Description:     r.Description,
		PriceCents:      r.PriceCents,
		Currency:        r.Currency,
		Interval:        r.Interval,
		WashesPerPeriod: r.WashesPerPeriod,
		Active:          r.Active,
		StripePriceID:   r.StripePriceID,
	}
}

// ExtraServiceRequest creates or updates an add-on service
type ExtraServiceRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	PriceCents  int64  `json:"priceCents" form:"priceCents"`
	Currency    string `json:"currency" form:"currency"`
	Active      *bool  `json:"active" form:"active"`
}

func (r ExtraServiceRequest) toInput() catalog.ExtraServiceInput {
	return catalog.ExtraServiceInput{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		Currency:    r.Currency,
		Active:      r.Active,
	}
}

// LocationRequest creates or updates a wash location
type LocationRequest struct {
	Name        string  `json:"name" form:"name"`
	AddressLine string  `json:"addressLine" form:"addressLine"`
	City        string  `json:"city" form:"city"`
	Postcode    string  `json:"postcode" form:"postcode"`
	Latitude    float64 `json:"latitude" form:"latitude"`
	Longitude   float64 `json:"longitude" form:"longitude"`
	Active      *bool   `json:"active" form:"active"`
}

func (r LocationRequest) toInput() partners.LocationInput {
	return partners.LocationInput{
		Name:        r.Name,
		AddressLine: r.AddressLine,
		City:        r.City,
		Postcode:    r.Postcode,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Active:      r.Active,
	}
}

// SubscribeRequest starts a subscription
type SubscribeRequest struct {
	PlanID                 string `json:"planId" form:"planId" validate:"required,uuid4"`
	ProviderSubscriptionID string `json:"stripeSubscriptionId" form:"stripeSubscriptionId" validate:"omitempty,max=255"`
}

// Validate checks the plan reference
func (r *SubscribeRequest) Validate() error {
	return validators.Struct(r)
}

// VerifyRequest is a partner's QR scan
type VerifyRequest struct {
	Code       string `json:"code" form:"code" validate:"required,len=32,hexadecimal"`
	LocationID string `json:"locationId" form:"locationId" validate:"required,uuid4"`
	Notes      string `json:"notes" form:"notes" validate:"max=500"`
}

// Validate checks the QR token and location
func (r *VerifyRequest) Validate() error {
	return validators.Struct(r)
}

// PaymentMethodRequest stores a tokenised card reference
type PaymentMethodRequest struct {
	ProviderRef string `json:"paymentMethodId" form:"paymentMethodId"`
	Brand       string `json:"brand" form:"brand"`
	Last4       string `json:"last4" form:"last4"`
	ExpMonth    int    `json:"expMonth" form:"expMonth"`
	ExpYear     int    `json:"expYear" form:"expYear"`
	MakeDefault bool   `json:"makeDefault" form:"makeDefault"`
}

func (r PaymentMethodRequest) toInput() billing.PaymentMethodInput {
	return billing.PaymentMethodInput{
		ProviderRef: r.ProviderRef,
		Brand:       r.Brand,
		Last4:       r.Last4,
		ExpMonth:    r.ExpMonth,
		ExpYear:     r.ExpYear,
		MakeDefault: r.MakeDefault,
	}
}

// TicketRequest opens a support ticket
type TicketRequest struct {
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// ConnectAccountRequest links a payment-provider connected account
type ConnectAccountRequest struct {
	AccountID string `json:"accountId" form:"accountId" validate:"required"`
}

// Validate checks that an account id is present
func (r *ConnectAccountRequest) Validate() error {
	return validators.Struct(r)
}

// UserResponse is the public view of a customer account
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Phone         string    `json:"phone,omitempty"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newUserResponse(u *accounts.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

// AuthResponse carries a signed token and the account it belongs to
type AuthResponse struct {
	Token   string           `json:"token"`
	User    *UserResponse    `json:"user,omitempty"`
	Partner *PartnerResponse `json:"partner,omitempty"`
}

// PartnerResponse is the public view of a partner business
type PartnerResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	BusinessName string    `json:"businessName"`
	ContactName  string    `json:"contactName,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newPartnerResponse(p *partners.Partner) PartnerResponse {
	return PartnerResponse{
		ID:           p.ID,
		Email:        p.Email,
		BusinessName: p.BusinessName,
		ContactName:  p.ContactName,
		Phone:        p.Phone,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
	}
}

// LocationResponse describes a wash location
type LocationResponse struct {
	ID          string    `json:"id"`
	PartnerID   string    `json:"partnerId"`
	Name        string    `json:"name"`
	AddressLine string    `json:"addressLine"`
	City        string    `json:"city"`
	Postcode    string    `json:"postcode"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newLocationResponse(l *partners.Location) LocationResponse {
	return LocationResponse{
		ID:          l.ID,
		PartnerID:   l.PartnerID,
		Name:        l.Name,
		AddressLine: l.AddressLine,
		City:        l.City,
		Postcode:    l.Postcode,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		Active:      l.Active,
		CreatedAt:   l.CreatedAt,
	}
}

func newLocationResponses(in []*partners.Location) []LocationResponse {
	out := make([]LocationResponse, 0, len(in))
	for _, l := range in {
		out = append(out, newLocationResponse(l))
	}
	return out
}

// PlanResponse describes a subscription plan
type PlanResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	PriceCents      int64  `json:"priceCents"`
	Currency        string `json:"currency"`
	Interval        string `json:"interval"`
	WashesPerPeriod int    `json:"washesPerPeriod"`
	Unlimited       bool   `json:"unlimited"`
	Active          bool   `json:"active"`
}

func newPlanResponse(p *catalog.Plan) PlanResponse {
	return PlanResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		PriceCents:      p.PriceCents,
		Currency:        p.Currency,
		Interval:        p.Interval,
		WashesPerPeriod: p.WashesPerPeriod,
		Unlimited:       p.Unlimited(),
		Active:          p.Active,
	}
}

// ExtraServiceResponse describes an add-on service
type ExtraServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency"`
	Active      bool   `json:"active"`
}

func newExtraServiceResponse(e *catalog.ExtraService) ExtraServiceResponse {
	return ExtraServiceResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		PriceCents:  e.PriceCents,
		Currency:    e.Currency,
		Active:      e.Active,
	}
}

// PostcodeResponse is the result of a coverage lookup
type PostcodeResponse struct {
	Postcode    string             `json:"postcode"`
	OutwardCode string             `json:"outwardCode"`
	Covered     bool               `json:"covered"`
	Region      string             `json:"region,omitempty"`
	Locations   []LocationResponse `json:"locations"`
}

// SubscriptionResponse describes a customer subscription
type SubscriptionResponse struct {
	ID                 string    `json:"id"`
	PlanID             string    `json:"planId"`
	Status             string    `json:"status"`
	CurrentPeriodStart time.Time `json:"currentPeriodStart"`
	CurrentPeriodEnd   time.Time `json:"currentPeriodEnd"`
	WashesUsed         int       `json:"washesUsed"`
	CancelAtPeriodEnd  bool      `json:"cancelAtPeriodEnd"`
	CreatedAt          time.Time `json:"createdAt"`
}

func newSubscriptionResponse(s *subscriptions.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:                 s.ID,
		PlanID:             s.PlanID,
		Status:             s.Status,
		CurrentPeriodStart: s.CurrentPeriodStart,
		CurrentPeriodEnd:   s.CurrentPeriodEnd,
		WashesUsed:         s.WashesUsed,
		CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
		CreatedAt:          s.CreatedAt,
	}
}

// QRCodeResponse is a freshly issued wash token
type QRCodeResponse struct {
	Code           string    `json:"code"`
	SubscriptionID string    `json:"subscriptionId"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// QRCodeStatusResponse tells a partner whether a token can be redeemed
type QRCodeStatusResponse struct {
	Code            string    `json:"code"`
	Valid           bool      `json:"valid"`
	Reason          string    `json:"reason,omitempty"`
	SubscriptionID  string    `json:"subscriptionId"`
	PlanName        string    `json:"planName"`
	WashesRemaining *int      `json:"washesRemaining"`
	ExpiresAt       time.Time `json:"expiresAt"`
}

// VerificationResponse records a redeemed wash
type VerificationResponse struct {
	ID             string    `json:"id"`
	SubscriptionID string    `json:"subscriptionId"`
	UserID         string    `json:"userId"`
	LocationID     string    `json:"locationId"`
	Notes          string    `json:"notes,omitempty"`
	VerifiedAt     time.Time `json:"verifiedAt"`
}

func newVerificationResponse(v *subscriptions.WashVerification) VerificationResponse {
	return VerificationResponse{
		ID:             v.ID,
		SubscriptionID: v.SubscriptionID,
		UserID:         v.UserID,
		LocationID:     v.LocationID,
		Notes:          v.Notes,
		VerifiedAt:     v.VerifiedAt,
	}
}

// PaymentResponse describes a charge
type PaymentResponse struct {
	ID             string    `json:"id"`
	SubscriptionID *string   `json:"subscriptionId"`
	AmountCents    int64     `json:"amountCents"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newPaymentResponses(in []*billing.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(in))
	for _, p := range in {
		out = append(out, newPaymentResponse(p))
	}
	return out
}

func newPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		SubscriptionID: p.SubscriptionID,
		AmountCents:    p.AmountCents,
		Currency:       p.Currency,
		Status:         p.Status,
		Description:    p.Description,
		CreatedAt:      p.CreatedAt,
	}
}

// PaymentMethodResponse describes a stored card
type PaymentMethodResponse struct {
	ID        string `json:"id"`
	Brand     string `json:"brand"`
	Last4     string `json:"last4"`
	ExpMonth  int    `json:"expMonth"`
	ExpYear   int    `json:"expYear"`
	IsDefault bool   `json:"isDefault"`
}

func newPaymentMethodResponse(m *billing.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:        m.ID,
		Brand:     m.Brand,
		Last4:     m.Last4,
		ExpMonth:  m.ExpMonth,
		ExpYear:   m.ExpYear,
		IsDefault: m.IsDefault,
	}
}

// BillingSummaryResponse is the customer's billing overview
type BillingSummaryResponse struct {
	SubscriptionID  *string                `json:"subscriptionId"`
	PlanName        string                 `json:"planName,omitempty"`
	Status          string                 `json:"status,omitempty"`
	NextChargeAt    *time.Time             `json:"nextChargeAt"`
	NextChargeCents int64                  `json:"nextChargeCents"`
	Currency        string                 `json:"currency"`
	TotalPaidCents  int64                  `json:"totalPaidCents"`
	PaymentCount    int                    `json:"paymentCount"`
	DefaultCard     *PaymentMethodResponse `json:"defaultCard"`
}

func newBillingSummaryResponse(s *billing.Summary) BillingSummaryResponse {
	out := BillingSummaryResponse{
		SubscriptionID:  s.SubscriptionID,
		PlanName:        s.PlanName,
		Status:          s.Status,
		NextChargeAt:    s.NextChargeAt,
		NextChargeCents: s.NextChargeCents,
		Currency:        s.Currency,
		TotalPaidCents:  s.TotalPaidCents,
		PaymentCount:    s.PaymentCount,
	}
	if s.DefaultPaymentCard != nil {
		card := newPaymentMethodResponse(s.DefaultPaymentCard)
		out.DefaultCard = &card
	}
	return out
}

// WebhookResponse acknowledges a provider event
type WebhookResponse struct {
	Received  bool   `json:"received"`
	EventID   string `json:"eventId"`
	Duplicate bool   `json:"duplicate"`
	Handled   bool   `json:"handled"`
}

// TicketResponse describes a support ticket
type TicketResponse struct {
	ID        string     `json:"id"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	ClosedAt  *time.Time `json:"closedAt"`
}

func newTicketResponse(t *support.Ticket) TicketResponse {
	return TicketResponse{
		ID:        t.ID,
		Subject:   t.Subject,
		Message:   t.Message,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		ClosedAt:  t.ClosedAt,
	}
}

// ConnectStatusResponse reports whether a partner can receive payouts
type ConnectStatusResponse struct {
	Connected bool    `json:"connected"`
	AccountID *string `json:"accountId"`
}

// StatsResponse is the admin dashboard
type StatsResponse struct {
	Users                 int64            `json:"users"`
	PartnersByStatus      map[string]int64 `json:"partnersByStatus"`
	SubscriptionsByStatus map[string]int64 `json:"subscriptionsByStatus"`
	OpenTickets           int64            `json:"openTickets"`
	WashesLast30Days      int64            `json:"washesLast30Days"`
}

func newStatsResponse(s *admin.Stats) StatsResponse {
	return StatsResponse{
		Users:                 s.Users,
		PartnersByStatus:      s.PartnersByStatus,
		SubscriptionsByStatus: s.SubscriptionByStatus,
		OpenTickets:           s.OpenTickets,
		WashesLast30Days:      s.WashesLast30Days,
	}
}
