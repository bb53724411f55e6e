package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/bella-carwash/bella-api/internal/domain/partners"
	"github.com/bella-carwash/bella-api/internal/infrastructure/persistence/models"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPartnerRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPartnerRepository creates a new GORM-based PartnerRepository implementation
func NewGormPartnerRepository(db *gorm.DB, logger logger.Logger) (partners.PartnerRepository, error) {
	return &gormPartnerRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPartnerRepository) Create(ctx context.Context, partner *partners.Partner) error {
	if err := partner.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PartnerModel{}
	model.FromDomain(partner)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, "create", "partner")
	}

	r.logger.Info("Created partner with id ", partner.ID)
	return nil
}

func (r *gormPartnerRepository) GetByID(ctx context.Context, partnerID string) (*partners.Partner, error) {
	var model models.PartnerModel
	if err := conn(ctx, r.db).Where("id = ?", partnerID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "partner")
	}
	return model.ToDomain(), nil
}

func (r *gormPartnerRepository) GetByEmail(ctx context.Context, email string) (*partners.Partner, error) {
	var model models.PartnerModel
	if err := conn(ctx, r.db).Where("email = ?", strings.ToLower(email)).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "partner")
	}
	return model.ToDomain(), nil
}

func (r *gormPartnerRepository) List(ctx context.Context, query *partners.PartnerQuery) ([]*partners.Partner, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := conn(ctx, r.db).Model(&models.PartnerModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	var modelList []*models.PartnerModel
	if err := paginate(dbQuery.Order("business_name asc"), query.Limit, query.Offset).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch partners: %w", err)
	}

	result := make([]*partners.Partner, len(modelList))
	for i, model := range modelList {
		result[i] = model.ToDomain()
	}
	return result, nil
}

func (r *gormPartnerRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := countByStatus(conn(ctx, r.db), &models.PartnerModel{})
	if err != nil {
		return nil, fmt.Errorf("failed to count partners: %w", err)
	}
	return counts, nil
}

func (r *gormPartnerRepository) UpdateByID(ctx context.Context, partner *partners.Partner) error {
	if err := partner.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PartnerModel{}
	model.FromDomain(partner)

	if err := conn(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err, "update", "partner")
	}

	r.logger.Info("Updated partner with id ", partner.ID)
	return nil
}

type gormLocationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLocationRepository creates a new GORM-based LocationRepository implementation
func NewGormLocationRepository(db *gorm.DB, logger logger.Logger) (partners.LocationRepository, error) {
	return &gormLocationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormLocationRepository) Create(ctx context.Context, location *partners.Location) error {
	if err := location.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.LocationModel{}
	model.FromDomain(location)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, "create", "location")
	}

	r.logger.Info("Created location with id ", location.ID)
	return nil
}

func (r *gormLocationRepository) GetByID(ctx context.Context, locationID string) (*partners.Location, error) {
	var model models.LocationModel
	if err := conn(ctx, r.db).Where("id = ?", locationID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "location")
	}
	return model.ToDomain(), nil
}

func (r *gormLocationRepository) List(ctx context.Context, query *partners.LocationQuery) ([]*partners.Location, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := conn(ctx, r.db).Model(&models.LocationModel{})
	if query.PartnerID != "" {
		dbQuery = dbQuery.Where("partner_id = ?", query.PartnerID)
	}
	if query.PostcodePrefix != "" {
		dbQuery = dbQuery.Where("postcode LIKE ?", strings.ToUpper(query.PostcodePrefix)+"%")
	}
	if query.ActiveOnly {
		dbQuery = dbQuery.Where("active = ?", true)
	}

	var modelList []*models.LocationModel
	if err := paginate(dbQuery.Order("name asc"), query.Limit, query.Offset).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}

	result := make([]*partners.Location, len(modelList))
	for i, model := range modelList {
		result[i] = model.ToDomain()
	}
	return result, nil
}

func (r *gormLocationRepository) UpdateByID(ctx context.Context, location *partners.Location) error {
	if err := location.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.LocationModel{}
	model.FromDomain(location)

	if err := conn(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err, "update", "location")
	}

	r.logger.Info("Updated location with id ", location.ID)
	return nil
}

func (r *gormLocationRepository) DeleteByID(ctx context.Context, locationID string) error {
	result := conn(ctx, r.db).Where("id = ?", locationID).Delete(&models.LocationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete location: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "delete", "location")
	}

	r.logger.Info("Deleted location with id ", locationID)
	return nil
}
