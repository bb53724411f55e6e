package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/bella-carwash/bella-api/internal/domain/catalog"
	"github.com/bella-carwash/bella-api/internal/infrastructure/persistence/models"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormPlanRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPlanRepository creates a new GORM-based PlanRepository implementation
func NewGormPlanRepository(db *gorm.DB, logger logger.Logger) (catalog.PlanRepository, error) {
	return &gormPlanRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPlanRepository) Create(ctx context.Context, plan *catalog.Plan) error {
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PlanModel{}
	model.FromDomain(plan)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, "create", "plan")
	}

	r.logger.Info("Created plan with id ", plan.ID)
	return nil
}

func (r *gormPlanRepository) GetByID(ctx context.Context, planID string) (*catalog.Plan, error) {
	var model models.PlanModel
	if err := conn(ctx, r.db).Where("id = ?", planID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "plan")
	}
	return model.ToDomain(), nil
}

func (r *gormPlanRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.Plan, error) {
	dbQuery := conn(ctx, r.db).Model(&models.PlanModel{})
	if activeOnly {
		dbQuery = dbQuery.Where("active = ?", true)
	}

	var modelList []*models.PlanModel
	if err := dbQuery.Order("price_cents asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch plans: %w", err)
	}

	plans := make([]*catalog.Plan, len(modelList))
	for i, model := range modelList {
		plans[i] = model.ToDomain()
	}
	return plans, nil
}

func (r *gormPlanRepository) UpdateByID(ctx context.Context, plan *catalog.Plan) error {
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PlanModel{}
	model.FromDomain(plan)

	if err := conn(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err, "update", "plan")
	}

	r.logger.Info("Updated plan with id ", plan.ID)
	return nil
}

type gormExtraServiceRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormExtraServiceRepository creates a new GORM-based ExtraServiceRepository implementation
func NewGormExtraServiceRepository(db *gorm.DB, logger logger.Logger) (catalog.ExtraServiceRepository, error) {
	return &gormExtraServiceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormExtraServiceRepository) Create(ctx context.Context, service *catalog.ExtraService) error {
	if err := service.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ExtraServiceModel{}
	model.FromDomain(service)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, "create", "extra service")
	}

	r.logger.Info("Created extra service with id ", service.ID)
	return nil
}

func (r *gormExtraServiceRepository) GetByID(ctx context.Context, serviceID string) (*catalog.ExtraService, error) {
	var model models.ExtraServiceModel
	if err := conn(ctx, r.db).Where("id = ?", serviceID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "extra service")
	}
	return model.ToDomain(), nil
}

func (r *gormExtraServiceRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.ExtraService, error) {
	dbQuery := conn(ctx, r.db).Model(&models.ExtraServiceModel{})
	if activeOnly {
		dbQuery = dbQuery.Where("active = ?", true)
	}

	var modelList []*models.ExtraServiceModel
	if err := dbQuery.Order("name asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch extra services: %w", err)
	}

	services := make([]*catalog.ExtraService, len(modelList))
	for i, model := range modelList {
		services[i] = model.ToDomain()
	}
	return services, nil
}

func (r *gormExtraServiceRepository) UpdateByID(ctx context.Context, service *catalog.ExtraService) error {
	if err := service.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ExtraServiceModel{}
	model.FromDomain(service)

	if err := conn(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err, "update", "extra service")
	}

	r.logger.Info("Updated extra service with id ", service.ID)
	return nil
}

type gormCoverageRepository struct {
	db *gorm.DB
}

// NewGormCoverageRepository creates a new GORM-based CoverageRepository implementation
func NewGormCoverageRepository(db *gorm.DB) (catalog.CoverageRepository, error) {
	return &gormCoverageRepository{db: db}, nil
}

func (r *gormCoverageRepository) GetByOutwardCode(ctx context.Context, outwardCode string) (*catalog.CoverageArea, error) {
	var model models.CoverageAreaModel
	if err := conn(ctx, r.db).Where("outward_code = ?", strings.ToUpper(outwardCode)).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "postcode area")
	}
	return model.ToDomain(), nil
}

func (r *gormCoverageRepository) Upsert(ctx context.Context, area *catalog.CoverageArea) error {
	model := &models.CoverageAreaModel{}
	model.FromDomain(area)
	model.OutwardCode = strings.ToUpper(model.OutwardCode)

	err := conn(ctx, r.db).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model).Error
	if err != nil {
		return translateError(err, "upsert", "postcode area")
	}
	return nil
}
