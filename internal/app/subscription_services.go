package app

import (
	"context"
	"errors"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/catalog"
	"github.com/bella-carwash/bella-api/internal/domain/partners"
	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"github.com/google/uuid"
)

// QR code status reasons shown to partners.
const (
	ReasonUsed                 = "used"
	ReasonExpired              = "expired"
	ReasonSubscriptionInactive = "subscription_inactive"
	ReasonAllowanceExhausted   = "allowance_exhausted"
)

// subscriptionService implements subscriptions.SubscriptionService
type subscriptionService struct {
	subs  subscriptions.SubscriptionRepository
	plans catalog.PlanRepository
	now   func() time.Time
}

// NewSubscriptionService creates a new instance of SubscriptionService
func NewSubscriptionService(subs subscriptions.SubscriptionRepository, plans catalog.PlanRepository, now func() time.Time) subscriptions.SubscriptionService {
	return &subscriptionService{subs: subs, plans: plans, now: now}
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID string, input subscriptions.SubscribeInput) (*subscriptions.Subscription, error) {
	if err := validate(&input); err != nil {
		return nil, err
	}

	plan, err := s.plans.GetByID(ctx, input.PlanID)
	if err != nil {
		return nil, err
	}
	if !plan.Active {
		return nil, apperr.BadRequest("Plan is not available")
	}

	current, err := s.subs.GetCurrentByUser(ctx, userID)
	switch {
	case err == nil:
		if current, err = s.settle(ctx, current); err != nil {
			return nil, err
		}
		if current.Status != subscriptions.StatusCancelled {
			return nil, apperr.Conflict("User already has an active subscription")
		}
	case !isNotFound(err):
		return nil, err
	}

	now := s.now()
	sub := &subscriptions.Subscription{
		ID:                 uuid.NewString(),
		UserID:             userID,
		PlanID:             plan.ID,
		Status:             subscriptions.StatusActive,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   plan.PeriodEnd(now),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if input.ProviderSubscriptionID != "" {
		ref := input.ProviderSubscriptionID
		sub.StripeSubscriptionID = &ref
	}

	// The store holds one current subscription per user, so a concurrent
	// Subscribe that passed the check above loses here.
	if err := s.subs.Create(ctx, sub); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.Conflict("User already has an active subscription")
		}
		return nil, err
	}
	return sub, nil
}

func (s *subscriptionService) List(ctx context.Context, userID string) ([]*subscriptions.Subscription, error) {
	subs, err := s.subs.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i, sub := range subs {
		if subs[i], err = s.settle(ctx, sub); err != nil {
			return nil, err
		}
	}
	return subs, nil
}

func (s *subscriptionService) GetByID(ctx context.Context, userID, subscriptionID string) (*subscriptions.Subscription, error) {
	sub, err := s.subs.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.UserID != userID {
		return nil, apperr.NotFound("Subscription not found")
	}
	return s.settle(ctx, sub)
}

func (s *subscriptionService) Cancel(ctx context.Context, userID, subscriptionID string) (*subscriptions.Subscription, error) {
	sub, err := s.GetByID(ctx, userID, subscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.Status == subscriptions.StatusCancelled {
		return nil, apperr.Conflict("Subscription is already cancelled")
	}
	if sub.CancelAtPeriodEnd {
		return sub, nil
	}

	sub.CancelAtPeriodEnd = true
	sub.UpdatedAt = s.now()
	if err := s.subs.UpdateByID(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// settle cancels a subscription whose final period has ended.
func (s *subscriptionService) settle(ctx context.Context, sub *subscriptions.Subscription) (*subscriptions.Subscription, error) {
	now := s.now()
	if sub.Status == subscriptions.StatusCancelled || !sub.CancelAtPeriodEnd || now.Before(sub.CurrentPeriodEnd) {
		return sub, nil
	}

	sub.Status = subscriptions.StatusCancelled
	sub.UpdatedAt = now
	if err := s.subs.UpdateByID(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// washesRemaining returns nil for unlimited plans.
func washesRemaining(plan *catalog.Plan, sub *subscriptions.Subscription) *int {
	if plan.Unlimited() {
		return nil
	}
	remaining := plan.WashesPerPeriod - sub.WashesUsed
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// qrCodeService implements subscriptions.QRCodeService
type qrCodeService struct {
	codes subscriptions.QRCodeRepository
	subs  subscriptions.SubscriptionRepository
	plans catalog.PlanRepository
	now   func() time.Time
}

// NewQRCodeService creates a new instance of QRCodeService
func NewQRCodeService(codes subscriptions.QRCodeRepository, subs subscriptions.SubscriptionRepository, plans catalog.PlanRepository, now func() time.Time) subscriptions.QRCodeService {
	return &qrCodeService{codes: codes, subs: subs, plans: plans, now: now}
}

func (s *qrCodeService) Issue(ctx context.Context, userID string) (*subscriptions.QRCode, error) {
	sub, err := s.subs.GetCurrentByUser(ctx, userID)
	if isNotFound(err) {
		return nil, apperr.BadRequest("No active subscription")
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !sub.ActiveAt(now) {
		return nil, apperr.BadRequest("No active subscription")
	}

	plan, err := s.plans.GetByID(ctx, sub.PlanID)
	if err != nil {
		return nil, err
	}
	if remaining := washesRemaining(plan, sub); remaining != nil && *remaining == 0 {
		return nil, apperr.BadRequest("Wash allowance used up for this period")
	}

	token, err := randomHex(16)
	if err != nil {
		return nil, err
	}

	code := &subscriptions.QRCode{
		ID:             uuid.NewString(),
		Code:           token,
		SubscriptionID: sub.ID,
		UserID:         userID,
		ExpiresAt:      now.Add(subscriptions.QRCodeTTL),
		CreatedAt:      now,
	}
	if err := s.codes.Create(ctx, code); err != nil {
		return nil, err
	}
	return code, nil
}

func (s *qrCodeService) Inspect(ctx context.Context, code string) (*subscriptions.QRCodeStatus, error) {
	qr, err := s.codes.GetByCode(ctx, code)
	if isNotFound(err) {
		return nil, apperr.NotFound("QR code not found")
	}
	if err != nil {
		return nil, err
	}

	sub, err := s.subs.GetByID(ctx, qr.SubscriptionID)
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.GetByID(ctx, sub.PlanID)
	if err != nil {
		return nil, err
	}

	status := &subscriptions.QRCodeStatus{
		Code:            qr.Code,
		SubscriptionID:  sub.ID,
		PlanName:        plan.Name,
		WashesRemaining: washesRemaining(plan, sub),
		ExpiresAt:       qr.ExpiresAt,
	}
	status.Reason = redeemBlocker(qr, sub, plan, s.now())
	status.Valid = status.Reason == ""
	return status, nil
}

// redeemBlocker returns why qr cannot be redeemed now, or "" when it can.
func redeemBlocker(qr *subscriptions.QRCode, sub *subscriptions.Subscription, plan *catalog.Plan, now time.Time) string {
	switch {
	case qr.UsedAt != nil:
		return ReasonUsed
	case !now.Before(qr.ExpiresAt):
		return ReasonExpired
	case !sub.ActiveAt(now):
		return ReasonSubscriptionInactive
	}
	if remaining := washesRemaining(plan, sub); remaining != nil && *remaining == 0 {
		return ReasonAllowanceExhausted
	}
	return ""
}

// washVerificationService implements subscriptions.WashVerificationService
type washVerificationService struct {
	codes         subscriptions.QRCodeRepository
	subs          subscriptions.SubscriptionRepository
	plans         catalog.PlanRepository
	partners      partners.PartnerRepository
	locations     partners.LocationRepository
	verifications subscriptions.VerificationRepository
	ledger        subscriptions.WashLedger
	recorder      EventRecorder
	now           func() time.Time
	logger        logger.Logger
}

// NewWashVerificationService creates a new instance of WashVerificationService
func NewWashVerificationService(
	codes subscriptions.QRCodeRepository,
	subs subscriptions.SubscriptionRepository,
	plans catalog.PlanRepository,
	partnerRepo partners.PartnerRepository,
	locations partners.LocationRepository,
	verifications subscriptions.VerificationRepository,
	ledger subscriptions.WashLedger,
	recorder EventRecorder,
	now func() time.Time,
	logger logger.Logger,
) subscriptions.WashVerificationService {
	return &washVerificationService{
		codes:         codes,
		subs:          subs,
		plans:         plans,
		partners:      partnerRepo,
		locations:     locations,
		verifications: verifications,
		ledger:        ledger,
		recorder:      recorder,
		now:           now,
		logger:        logger,
	}
}

func (s *washVerificationService) Verify(ctx context.Context, partnerID string, input subscriptions.VerifyInput) (*subscriptions.WashVerification, error) {
	if err := validate(&input); err != nil {
		return nil, err
	}

	partner, err := s.partners.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner.Status != partners.StatusApproved {
		return nil, apperr.Forbidden("Partner account is not approved")
	}

	location, err := s.locations.GetByID(ctx, input.LocationID)
	if err != nil {
		return nil, err
	}
	if location.PartnerID != partnerID {
		return nil, apperr.Forbidden("Location belongs to another partner")
	}
	if !location.Active {
		return nil, apperr.BadRequest("Location is not active")
	}

	qr, err := s.codes.GetByCode(ctx, input.Code)
	if isNotFound(err) {
		return nil, apperr.NotFound("QR code not found")
	}
	if err != nil {
		return nil, err
	}
	sub, err := s.subs.GetByID(ctx, qr.SubscriptionID)
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.GetByID(ctx, sub.PlanID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch redeemBlocker(qr, sub, plan, now) {
	case ReasonUsed:
		return nil, apperr.Conflict("QR code has already been used")
	case ReasonExpired:
		return nil, apperr.BadRequest("QR code has expired")
	case ReasonSubscriptionInactive:
		return nil, apperr.BadRequest("Subscription is not active")
	case ReasonAllowanceExhausted:
		return nil, apperr.BadRequest("Wash allowance used up for this period")
	}

	verification := &subscriptions.WashVerification{
		ID:             uuid.NewString(),
		QRCodeID:       qr.ID,
		SubscriptionID: sub.ID,
		UserID:         sub.UserID,
		PartnerID:      partnerID,
		LocationID:     location.ID,
		Notes:          input.Notes,
		VerifiedAt:     now,
	}
	if err := s.ledger.RecordWash(ctx, qr, sub, verification); err != nil {
		return nil, err
	}

	s.recorder.WashVerified()
	s.logger.Info("Partner ", partnerID, " verified wash for subscription ", sub.ID)
	return verification, nil
}

func (s *washVerificationService) List(ctx context.Context, query *subscriptions.VerificationQuery) ([]*subscriptions.WashVerification, error) {
	if err := validate(query); err != nil {
		return nil, err
	}
	return s.verifications.List(ctx, query)
}
