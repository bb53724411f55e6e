package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/domain/partners"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"
	"github.com/bella-carwash/bella-api/internal/pkg/validators"

	"github.com/google/uuid"
)

// partnerAuthService implements partners.PartnerAuthService
type partnerAuthService struct {
	partners partners.PartnerRepository
	hasher   accounts.PasswordHasher
	tokens   accounts.TokenIssuer
	now      func() time.Time
	logger   logger.Logger
}

// NewPartnerAuthService creates a new instance of PartnerAuthService
func NewPartnerAuthService(repo partners.PartnerRepository, hasher accounts.PasswordHasher, tokens accounts.TokenIssuer, now func() time.Time, logger logger.Logger) partners.PartnerAuthService {
	return &partnerAuthService{partners: repo, hasher: hasher, tokens: tokens, now: now, logger: logger}
}

func (s *partnerAuthService) Register(ctx context.Context, input partners.RegisterInput) (*partners.Partner, string, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validate(&input); err != nil {
		return nil, "", err
	}

	if _, err := s.partners.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", apperr.Conflict("A partner with this email already exists")
	} else if !isNotFound(err) {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	now := s.now()
	partner := &partners.Partner{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hash,
		BusinessName: strings.TrimSpace(input.BusinessName),
		ContactName:  strings.TrimSpace(input.ContactName),
		Phone:        strings.TrimSpace(input.Phone),
		Status:       partners.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.partners.Create(ctx, partner); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, "", apperr.Conflict("A partner with this email already exists")
		}
		return nil, "", err
	}
	s.logger.Info("Registered partner ", partner.ID, " pending approval")

	token, err := s.issue(partner)
	if err != nil {
		return nil, "", err
	}
	return partner, token, nil
}

func (s *partnerAuthService) Login(ctx context.Context, email, password string) (*partners.Partner, string, error) {
	partner, err := s.partners.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if isNotFound(err) {
		return nil, "", errInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := s.hasher.Compare(partner.PasswordHash, password); err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", err
	}
	if partner.Status == partners.StatusSuspended {
		return nil, "", apperr.Forbidden("Partner account is suspended")
	}

	token, err := s.issue(partner)
	if err != nil {
		return nil, "", err
	}
	return partner, token, nil
}

func (s *partnerAuthService) issue(partner *partners.Partner) (string, error) {
	return s.tokens.Issue(accounts.Principal{ID: partner.ID, Kind: accounts.KindPartner, Email: partner.Email})
}

// partnerService implements partners.PartnerService
type partnerService struct {
	partners partners.PartnerRepository
	now      func() time.Time
}

// NewPartnerService creates a new instance of PartnerService
func NewPartnerService(repo partners.PartnerRepository, now func() time.Time) partners.PartnerService {
	return &partnerService{partners: repo, now: now}
}

func (s *partnerService) GetByID(ctx context.Context, partnerID string) (*partners.Partner, error) {
	return s.partners.GetByID(ctx, partnerID)
}

func (s *partnerService) List(ctx context.Context, query *partners.PartnerQuery) ([]*partners.Partner, error) {
	if err := validate(query); err != nil {
		return nil, err
	}
	return s.partners.List(ctx, query)
}

func (s *partnerService) SetStatus(ctx context.Context, partnerID, status string) (*partners.Partner, error) {
	switch status {
	case partners.StatusPending, partners.StatusApproved, partners.StatusSuspended:
	default:
		return nil, apperr.BadRequest("Status must be one of pending, approved, suspended")
	}

	partner, err := s.partners.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	partner.Status = status
	partner.UpdatedAt = s.now()

	if err := s.partners.UpdateByID(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (s *partnerService) ConnectStatus(ctx context.Context, partnerID string) (*partners.ConnectStatus, error) {
	partner, err := s.partners.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return connectStatus(partner), nil
}

func (s *partnerService) LinkStripeAccount(ctx context.Context, partnerID, accountID string) (*partners.ConnectStatus, error) {
	accountID = strings.TrimSpace(accountID)
	if !strings.HasPrefix(accountID, "acct_") || len(accountID) > 255 {
		return nil, apperr.BadRequest("accountId must be a connected account id (acct_...)")
	}

	partner, err := s.partners.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	partner.StripeAccountID = &accountID
	partner.UpdatedAt = s.now()

	if err := s.partners.UpdateByID(ctx, partner); err != nil {
		return nil, err
	}
	return connectStatus(partner), nil
}

func connectStatus(p *partners.Partner) *partners.ConnectStatus {
	return &partners.ConnectStatus{
		PartnerID:       p.ID,
		Connected:       p.StripeAccountID != nil && *p.StripeAccountID != "",
		StripeAccountID: p.StripeAccountID,
	}
}

// locationService implements partners.LocationService
type locationService struct {
	locations partners.LocationRepository
	partners  partners.PartnerRepository
	now       func() time.Time
}

// NewLocationService creates a new instance of LocationService
func NewLocationService(locations partners.LocationRepository, partnerRepo partners.PartnerRepository, now func() time.Time) partners.LocationService {
	return &locationService{locations: locations, partners: partnerRepo, now: now}
}

func (s *locationService) Create(ctx context.Context, partnerID string, input partners.LocationInput) (*partners.Location, error) {
	if err := validate(&input); err != nil {
		return nil, err
	}
	if _, err := s.partners.GetByID(ctx, partnerID); err != nil {
		return nil, err
	}

	now := s.now()
	location := &partners.Location{
		ID:        uuid.NewString(),
		PartnerID: partnerID,
		Active:    true,
		CreatedAt: now,
	}
	applyLocationInput(location, input)
	location.UpdatedAt = now

	if err := s.locations.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationService) Update(ctx context.Context, partnerID, locationID string, input partners.LocationInput) (*partners.Location, error) {
	if err := validate(&input); err != nil {
		return nil, err
	}

	location, err := s.owned(ctx, partnerID, locationID)
	if err != nil {
		return nil, err
	}
	applyLocationInput(location, input)
	location.UpdatedAt = s.now()

	if err := s.locations.UpdateByID(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationService) Delete(ctx context.Context, partnerID, locationID string) error {
	if _, err := s.owned(ctx, partnerID, locationID); err != nil {
		return err
	}
	return s.locations.DeleteByID(ctx, locationID)
}

func (s *locationService) GetByID(ctx context.Context, locationID string) (*partners.Location, error) {
	return s.locations.GetByID(ctx, locationID)
}

func (s *locationService) List(ctx context.Context, query *partners.LocationQuery) ([]*partners.Location, error) {
	if err := validate(query); err != nil {
		return nil, err
	}
	return s.locations.List(ctx, query)
}

func (s *locationService) owned(ctx context.Context, partnerID, locationID string) (*partners.Location, error) {
	location, err := s.locations.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if location.PartnerID != partnerID {
		return nil, apperr.Forbidden("Location belongs to another partner")
	}
	return location, nil
}

func applyLocationInput(l *partners.Location, in partners.LocationInput) {
	l.Name = strings.TrimSpace(in.Name)
	l.AddressLine = strings.TrimSpace(in.AddressLine)
	l.City = strings.TrimSpace(in.City)
	// input already passed the postcode tag
	l.Postcode, _ = validators.NormalizePostcode(in.Postcode)
	l.Latitude = in.Latitude
	l.Longitude = in.Longitude
	if in.Active != nil {
		l.Active = *in.Active
	}
}
