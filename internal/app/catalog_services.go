package app

import (
	"context"
	"strings"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/catalog"
	"github.com/bella-carwash/bella-api/internal/domain/partners"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/validators"

	"github.com/google/uuid"
)

const defaultCurrency = "gbp"

func currencyOrDefault(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return defaultCurrency
	}
	return c
}

// planService implements catalog.PlanService
type planService struct {
	plans catalog.PlanRepository
	now   func() time.Time
}

// NewPlanService creates a new instance of PlanService
func NewPlanService(plans catalog.PlanRepository, now func() time.Time) catalog.PlanService {
	return &planService{plans: plans, now: now}
}

func (s *planService) List(ctx context.Context, activeOnly bool) ([]*catalog.Plan, error) {
	return s.plans.List(ctx, activeOnly)
}

func (s *planService) GetByID(ctx context.Context, planID string) (*catalog.Plan, error) {
	return s.plans.GetByID(ctx, planID)
}

func (s *planService) Create(ctx context.Context, input catalog.PlanInput) (*catalog.Plan, error) {
	if err := validate(&input); err != nil {
		return nil, err
	}

	now := s.now()
	plan := &catalog.Plan{ID: uuid.NewString(), Active: true, CreatedAt: now}
	applyPlanInput(plan, input)
	plan.UpdatedAt = now

	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) Update(ctx context.Context, planID string, input catalog.PlanInput) (*catalog.Plan, error) {
	if err := validate(&input); err != nil {
		return nil, err
	}

	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	applyPlanInput(plan, input)
	plan.UpdatedAt = s.now()

	if err := s.plans.UpdateByID(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) Delete(ctx context.Context, planID string) error {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	plan.Active = false
	plan.UpdatedAt = s.now()
	return s.plans.UpdateByID(ctx, plan)
}

func applyPlanInput(p *catalog.Plan, in catalog.PlanInput) {
	p.Name = strings.TrimSpace(in.Name)
	p.Description = strings.TrimSpace(in.Description)
	p.PriceCents = in.PriceCents
	p.Currency = currencyOrDefault(in.Currency)
	p.Interval = in.Interval
	p.WashesPerPeriod = in.WashesPerPeriod
	p.StripePriceID = in.StripePriceID
	if in.Active != nil {
		p.Active = *in.Active
	}
}

// extraServiceService implements catalog.ExtraServiceService
type extraServiceService struct {
	services catalog.ExtraServiceRepository
	now      func() time.Time
}

// NewExtraServiceService creates a new instance of ExtraServiceService
func NewExtraServiceService(services catalog.ExtraServiceRepository, now func() time.Time) catalog.ExtraServiceService {
	return &extraServiceService{services: services, now: now}
}

func (s *extraServiceService) List(ctx context.Context, activeOnly bool) ([]*catalog.ExtraService, error) {
	return s.services.List(ctx, activeOnly)
}

func (s *extraServiceService) Create(ctx context.Context, input catalog.ExtraServiceInput) (*catalog.ExtraService, error) {
	if err := validate(&input); err != nil {
		return nil, err
	}

	now := s.now()
	service := &catalog.ExtraService{ID: uuid.NewString(), Active: true, CreatedAt: now}
	applyExtraServiceInput(service, input)
	service.UpdatedAt = now

	if err := s.services.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *extraServiceService) Update(ctx context.Context, serviceID string, input catalog.ExtraServiceInput) (*catalog.ExtraService, error) {
	if err := validate(&input); err != nil {
		return nil, err
	}

	service, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	applyExtraServiceInput(service, input)
	service.UpdatedAt = s.now()

	if err := s.services.UpdateByID(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *extraServiceService) Delete(ctx context.Context, serviceID string) error {
	service, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		return err
	}
	service.Active = false
	service.UpdatedAt = s.now()
	return s.services.UpdateByID(ctx, service)
}

func applyExtraServiceInput(e *catalog.ExtraService, in catalog.ExtraServiceInput) {
	e.Name = strings.TrimSpace(in.Name)
	e.Description = strings.TrimSpace(in.Description)
	e.PriceCents = in.PriceCents
	e.Currency = currencyOrDefault(in.Currency)
	if in.Active != nil {
		e.Active = *in.Active
	}
}

// postcodeService implements catalog.PostcodeService
type postcodeService struct {
	coverage  catalog.CoverageRepository
	locations partners.LocationRepository
}

// NewPostcodeService creates a new instance of PostcodeService
func NewPostcodeService(coverage catalog.CoverageRepository, locations partners.LocationRepository) catalog.PostcodeService {
	return &postcodeService{coverage: coverage, locations: locations}
}

// Lookup normalises postcode and reports whether its district is served,
// together with the active locations inside that district.
func (s *postcodeService) Lookup(ctx context.Context, postcode string) (*catalog.PostcodeLookup, error) {
	normalized, ok := validators.NormalizePostcode(postcode)
	if !ok {
		return nil, apperr.BadRequest("Invalid postcode")
	}
	outward := validators.OutwardCode(normalized)

	lookup := &catalog.PostcodeLookup{Postcode: normalized, OutwardCode: outward}

	area, err := s.coverage.GetByOutwardCode(ctx, outward)
	switch {
	case err == nil:
		lookup.Covered = area.Active
		lookup.Region = area.Region
	case !isNotFound(err):
		return nil, err
	}

	locations, err := s.locations.List(ctx, &partners.LocationQuery{
		PostcodePrefix: outward + " ",
		ActiveOnly:     true,
		Limit:          50,
	})
	if err != nil {
		return nil, err
	}
	lookup.Locations = locations
	return lookup, nil
}
