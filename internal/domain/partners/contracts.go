package partners

import (
	"context"
)

// RegisterInput carries the fields needed to sign up as a partner.
type RegisterInput struct {
	Email        string `validate:"required,email,max=255"`
	Password     string `validate:"required,min=8,max=72"`
	BusinessName string `validate:"required,min=1,max=255"`
	ContactName  string `validate:"max=255"`
	Phone        string `validate:"omitempty,max=32"`
}

// PartnerAuthService registers and authenticates partners.
type PartnerAuthService interface {
	Register(ctx context.Context, input RegisterInput) (*Partner, string, error)
	Login(ctx context.Context, email, password string) (*Partner, string, error)
}

// PartnerService manages partner records and their payout account link.
type PartnerService interface {
	GetByID(ctx context.Context, partnerID string) (*Partner, error)
	List(ctx context.Context, query *PartnerQuery) ([]*Partner, error)
	SetStatus(ctx context.Context, partnerID, status string) (*Partner, error)
	ConnectStatus(ctx context.Context, partnerID string) (*ConnectStatus, error)
	LinkStripeAccount(ctx context.Context, partnerID, accountID string) (*ConnectStatus, error)
}

// LocationService manages partner-owned locations.
type LocationService interface {
	Create(ctx context.Context, partnerID string, input LocationInput) (*Location, error)
	Update(ctx context.Context, partnerID, locationID string, input LocationInput) (*Location, error)
	Delete(ctx context.Context, partnerID, locationID string) error
	GetByID(ctx context.Context, locationID string) (*Location, error)
	List(ctx context.Context, query *LocationQuery) ([]*Location, error)
}

// PartnerRepository defines the interface for Partner-related operations
type PartnerRepository interface {
	Create(ctx context.Context, partner *Partner) error
	GetByID(ctx context.Context, partnerID string) (*Partner, error)
	GetByEmail(ctx context.Context, email string) (*Partner, error)
	List(ctx context.Context, query *PartnerQuery) ([]*Partner, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	UpdateByID(ctx context.Context, partner *Partner) error
}

// LocationRepository defines the interface for Location-related operations
type LocationRepository interface {
	Create(ctx context.Context, location *Location) error
	GetByID(ctx context.Context, locationID string) (*Location, error)
	List(ctx context.Context, query *LocationQuery) ([]*Location, error)
	UpdateByID(ctx context.Context, location *Location) error
	DeleteByID(ctx context.Context, locationID string) error
}
