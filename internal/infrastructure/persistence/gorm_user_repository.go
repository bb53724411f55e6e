package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/infrastructure/persistence/models"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (accounts.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *accounts.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, "create", "user")
	}

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	var model models.UserModel
	if err := conn(ctx, r.db).Where("id = ?", userID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "user")
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*accounts.User, error) {
	var model models.UserModel
	if err := conn(ctx, r.db).Where("email = ?", strings.ToLower(email)).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "user")
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) List(ctx context.Context, query *accounts.UserQuery) ([]*accounts.User, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := conn(ctx, r.db).Model(&models.UserModel{})
	if query.Search != "" {
		like := "%" + strings.ToLower(query.Search) + "%"
		dbQuery = dbQuery.Where("LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like, like)
	}

	var modelList []*models.UserModel
	if err := paginate(dbQuery.Order("created_at desc"), query.Limit, query.Offset).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	users := make([]*accounts.User, len(modelList))
	for i, model := range modelList {
		users[i] = model.ToDomain()
	}
	return users, nil
}

func (r *gormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *accounts.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := conn(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err, "update", "user")
	}

	r.logger.Info("Updated user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) DeleteByID(ctx context.Context, userID string) error {
	result := conn(ctx, r.db).Where("id = ?", userID).Delete(&models.UserModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "delete", "user")
	}

	r.logger.Info("Deleted user with id ", userID)
	return nil
}

type gormVerificationCodeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormVerificationCodeRepository creates a new GORM-based VerificationCodeRepository implementation
func NewGormVerificationCodeRepository(db *gorm.DB, logger logger.Logger) (accounts.VerificationCodeRepository, error) {
	return &gormVerificationCodeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormVerificationCodeRepository) Create(ctx context.Context, code *accounts.VerificationCode) error {
	if err := code.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.VerificationCodeModel{}
	model.FromDomain(code)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, "create", "verification code")
	}

	r.logger.Debug("Created verification code for ", code.Email, " purpose ", code.Purpose)
	return nil
}

func (r *gormVerificationCodeRepository) Latest(ctx context.Context, email, purpose string) (*accounts.VerificationCode, error) {
	var model models.VerificationCodeModel
	err := conn(ctx, r.db).
		Where("email = ? AND purpose = ?", strings.ToLower(email), purpose).
		Order("created_at desc").
		First(&model).Error
	if err != nil {
		return nil, translateError(err, "fetch", "verification code")
	}
	return model.ToDomain(), nil
}

func (r *gormVerificationCodeRepository) UpdateByID(ctx context.Context, code *accounts.VerificationCode) error {
	model := &models.VerificationCodeModel{}
	model.FromDomain(code)

	if err := conn(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err, "update", "verification code")
	}
	return nil
}
