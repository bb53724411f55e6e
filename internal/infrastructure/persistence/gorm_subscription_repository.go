package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
	"github.com/bella-carwash/bella-api/internal/infrastructure/persistence/models"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSubscriptionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSubscriptionRepository creates a new GORM-based SubscriptionRepository implementation
func NewGormSubscriptionRepository(db *gorm.DB, logger logger.Logger) (subscriptions.SubscriptionRepository, error) {
	return &gormSubscriptionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSubscriptionRepository) Create(ctx context.Context, sub *subscriptions.Subscription) error {
	if err := sub.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SubscriptionModel{}
	model.FromDomain(sub)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, "create", "subscription")
	}

	r.logger.Info("Created subscription with id ", sub.ID)
	return nil
}

func (r *gormSubscriptionRepository) GetByID(ctx context.Context, subscriptionID string) (*subscriptions.Subscription, error) {
	var model models.SubscriptionModel
	if err := conn(ctx, r.db).Where("id = ?", subscriptionID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "subscription")
	}
	return model.ToDomain(), nil
}

func (r *gormSubscriptionRepository) GetByProviderID(ctx context.Context, stripeSubscriptionID string) (*subscriptions.Subscription, error) {
	var model models.SubscriptionModel
	if err := conn(ctx, r.db).Where("stripe_subscription_id = ?", stripeSubscriptionID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "subscription")
	}
	return model.ToDomain(), nil
}

func (r *gormSubscriptionRepository) GetCurrentByUser(ctx context.Context, userID string) (*subscriptions.Subscription, error) {
	var model models.SubscriptionModel
	err := conn(ctx, r.db).
		Where("user_id = ? AND status IN ?", userID, []string{subscriptions.StatusActive, subscriptions.StatusPastDue}).
		Order("created_at desc").
		First(&model).Error
	if err != nil {
		return nil, translateError(err, "fetch", "subscription")
	}
	return model.ToDomain(), nil
}

func (r *gormSubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]*subscriptions.Subscription, error) {
	var modelList []*models.SubscriptionModel
	if err := conn(ctx, r.db).Where("user_id = ?", userID).Order("created_at desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch subscriptions: %w", err)
	}

	result := make([]*subscriptions.Subscription, len(modelList))
	for i, model := range modelList {
		result[i] = model.ToDomain()
	}
	return result, nil
}

func (r *gormSubscriptionRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := countByStatus(conn(ctx, r.db), &models.SubscriptionModel{})
	if err != nil {
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return counts, nil
}

// lifecycleColumns are written by UpdateByID. The wash counter is owned by
// RecordWash and RenewPeriod.
var lifecycleColumns = []string{"status", "cancel_at_period_end", "stripe_subscription_id", "updated_at"}

func (r *gormSubscriptionRepository) UpdateByID(ctx context.Context, sub *subscriptions.Subscription) error {
	if err := sub.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SubscriptionModel{}
	model.FromDomain(sub)

	result := conn(ctx, r.db).
		Model(&models.SubscriptionModel{ID: sub.ID}).
		Select(lifecycleColumns).
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error, "update", "subscription")
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("subscription %w", apperr.ErrNotFound)
	}

	r.logger.Info("Updated subscription with id ", sub.ID)
	return nil
}

// RenewPeriod moves sub into its next billing period and resets the wash
// counter. It only moves forward: a period start at or before the stored one
// is a conflict.
func (r *gormSubscriptionRepository) RenewPeriod(ctx context.Context, sub *subscriptions.Subscription) error {
	sub.WashesUsed = 0
	if err := sub.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SubscriptionModel{}
	model.FromDomain(sub)

	result := conn(ctx, r.db).
		Model(&models.SubscriptionModel{ID: sub.ID}).
		Where("current_period_start < ?", sub.CurrentPeriodStart).
		Select(append([]string{"current_period_start", "current_period_end", "washes_used"}, lifecycleColumns...)).
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error, "renew", "subscription")
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("subscription period already renewed: %w", apperr.ErrConflict)
	}

	r.logger.Info("Renewed subscription ", sub.ID, " until ", sub.CurrentPeriodEnd.Format(time.RFC3339))
	return nil
}

type gormQRCodeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormQRCodeRepository creates a new GORM-based QRCodeRepository implementation
func NewGormQRCodeRepository(db *gorm.DB, logger logger.Logger) (subscriptions.QRCodeRepository, error) {
	return &gormQRCodeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormQRCodeRepository) Create(ctx context.Context, code *subscriptions.QRCode) error {
	if err := code.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.QRCodeModel{}
	model.FromDomain(code)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, "create", "qr code")
	}

	r.logger.Info("Issued qr code ", code.ID, " for subscription ", code.SubscriptionID)
	return nil
}

func (r *gormQRCodeRepository) GetByCode(ctx context.Context, code string) (*subscriptions.QRCode, error) {
	var model models.QRCodeModel
	if err := conn(ctx, r.db).Where("code = ?", code).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "qr code")
	}
	return model.ToDomain(), nil
}

type gormVerificationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormVerificationRepository creates a new GORM-based VerificationRepository implementation
func NewGormVerificationRepository(db *gorm.DB, logger logger.Logger) (subscriptions.VerificationRepository, error) {
	return &gormVerificationRepository{
		db:     db,
		logger: logger,
	}, nil
}

// NewGormWashLedger creates a WashLedger writing to the same tables as the
// verification repository.
func NewGormWashLedger(db *gorm.DB, logger logger.Logger) (subscriptions.WashLedger, error) {
	return &gormVerificationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormVerificationRepository) List(ctx context.Context, query *subscriptions.VerificationQuery) ([]*subscriptions.WashVerification, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := conn(ctx, r.db).Model(&models.WashVerificationModel{}).Where("partner_id = ?", query.PartnerID)
	if query.LocationID != "" {
		dbQuery = dbQuery.Where("location_id = ?", query.LocationID)
	}
	if !query.Since.IsZero() {
		dbQuery = dbQuery.Where("verified_at >= ?", query.Since)
	}

	var modelList []*models.WashVerificationModel
	if err := paginate(dbQuery.Order("verified_at desc"), query.Limit, query.Offset).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch verifications: %w", err)
	}

	result := make([]*subscriptions.WashVerification, len(modelList))
	for i, model := range modelList {
		result[i] = model.ToDomain()
	}
	return result, nil
}

func (r *gormVerificationRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.WashVerificationModel{}).Where("verified_at >= ?", since).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count verifications: %w", err)
	}
	return count, nil
}

// RecordWash marks code used, advances the subscription's wash counter and
// stores verification in one transaction. It fails with a conflict when the
// code or the counter changed since they were read.
func (r *gormVerificationRepository) RecordWash(ctx context.Context, code *subscriptions.QRCode, sub *subscriptions.Subscription, verification *subscriptions.WashVerification) error {
	if err := verification.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	usedAt := verification.VerifiedAt
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.QRCodeModel{}).
			Where("id = ? AND used_at IS NULL", code.ID).
			Update("used_at", usedAt)
		if result.Error != nil {
			return fmt.Errorf("failed to consume qr code: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("qr code already used: %w", apperr.ErrConflict)
		}

		result = tx.Model(&models.SubscriptionModel{}).
			Where("id = ? AND washes_used = ?", sub.ID, sub.WashesUsed).
			Updates(map[string]interface{}{
				"washes_used": sub.WashesUsed + 1,
				"updated_at":  usedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update wash counter: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("subscription changed concurrently: %w", apperr.ErrConflict)
		}

		model := &models.WashVerificationModel{}
		model.FromDomain(verification)
		if err := tx.Create(model).Error; err != nil {
			return translateError(err, "create", "verification")
		}
		return nil
	})
	if err != nil {
		return err
	}

	code.UsedAt = &usedAt
	sub.WashesUsed++
	sub.UpdatedAt = usedAt
	r.logger.Info("Recorded wash ", verification.ID, " for subscription ", sub.ID)
	return nil
}
