package catalog

import (
	"context"
)

// PlanService manages subscription plans.
type PlanService interface {
	List(ctx context.Context, activeOnly bool) ([]*Plan, error)
	GetByID(ctx context.Context, planID string) (*Plan, error)
	Create(ctx context.Context, input PlanInput) (*Plan, error)
	Update(ctx context.Context, planID string, input PlanInput) (*Plan, error)
	// Delete deactivates the plan; existing subscriptions keep referencing it.
	Delete(ctx context.Context, planID string) error
}

// ExtraServiceService manages add-on services.
type ExtraServiceService interface {
	List(ctx context.Context, activeOnly bool) ([]*ExtraService, error)
	Create(ctx context.Context, input ExtraServiceInput) (*ExtraService, error)
	Update(ctx context.Context, serviceID string, input ExtraServiceInput) (*ExtraService, error)
	Delete(ctx context.Context, serviceID string) error
}

// PostcodeService answers coverage questions for a postcode.
type PostcodeService interface {
	Lookup(ctx context.Context, postcode string) (*PostcodeLookup, error)
}

// PlanRepository defines the interface for Plan-related operations
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, planID string) (*Plan, error)
	List(ctx context.Context, activeOnly bool) ([]*Plan, error)
	UpdateByID(ctx context.Context, plan *Plan) error
}

// ExtraServiceRepository defines the interface for ExtraService-related operations
type ExtraServiceRepository interface {
	Create(ctx context.Context, service *ExtraService) error
	GetByID(ctx context.Context, serviceID string) (*ExtraService, error)
	List(ctx context.Context, activeOnly bool) ([]*ExtraService, error)
	UpdateByID(ctx context.Context, service *ExtraService) error
}

// CoverageRepository stores served postcode districts.
type CoverageRepository interface {
	GetByOutwardCode(ctx context.Context, outwardCode string) (*CoverageArea, error)
	Upsert(ctx context.Context, area *CoverageArea) error
}
