package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/billing"
	"github.com/bella-carwash/bella-api/internal/infrastructure/persistence/models"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormPaymentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPaymentRepository creates a new GORM-based PaymentRepository implementation
func NewGormPaymentRepository(db *gorm.DB, logger logger.Logger) (billing.PaymentRepository, error) {
	return &gormPaymentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPaymentRepository) Create(ctx context.Context, payment *billing.Payment) error {
	if err := payment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PaymentModel{}
	model.FromDomain(payment)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, "create", "payment")
	}

	r.logger.Info("Recorded payment ", payment.ID, " status ", payment.Status)
	return nil
}

func (r *gormPaymentRepository) GetByID(ctx context.Context, paymentID string) (*billing.Payment, error) {
	var model models.PaymentModel
	if err := conn(ctx, r.db).Where("id = ?", paymentID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "payment")
	}
	return model.ToDomain(), nil
}

func (r *gormPaymentRepository) ListByUser(ctx context.Context, userID string) ([]*billing.Payment, error) {
	var modelList []*models.PaymentModel
	if err := conn(ctx, r.db).Where("user_id = ?", userID).Order("created_at desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	payments := make([]*billing.Payment, len(modelList))
	for i, model := range modelList {
		payments[i] = model.ToDomain()
	}
	return payments, nil
}

type gormPaymentMethodRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPaymentMethodRepository creates a new GORM-based PaymentMethodRepository implementation
func NewGormPaymentMethodRepository(db *gorm.DB, logger logger.Logger) (billing.PaymentMethodRepository, error) {
	return &gormPaymentMethodRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPaymentMethodRepository) Create(ctx context.Context, method *billing.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PaymentMethodModel{}
	model.FromDomain(method)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, "create", "payment method")
	}

	r.logger.Info("Added payment method ", method.ID, " for user ", method.UserID)
	return nil
}

func (r *gormPaymentMethodRepository) GetByID(ctx context.Context, methodID string) (*billing.PaymentMethod, error) {
	var model models.PaymentMethodModel
	if err := conn(ctx, r.db).Where("id = ?", methodID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "payment method")
	}
	return model.ToDomain(), nil
}

func (r *gormPaymentMethodRepository) ListByUser(ctx context.Context, userID string) ([]*billing.PaymentMethod, error) {
	var modelList []*models.PaymentMethodModel
	err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("is_default desc").
		Order("created_at desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment methods: %w", err)
	}

	methods := make([]*billing.PaymentMethod, len(modelList))
	for i, model := range modelList {
		methods[i] = model.ToDomain()
	}
	return methods, nil
}

func (r *gormPaymentMethodRepository) SetDefault(ctx context.Context, userID, methodID string) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PaymentMethodModel{}).
			Where("user_id = ? AND id <> ?", userID, methodID).
			Update("is_default", false).Error; err != nil {
			return fmt.Errorf("failed to clear default payment method: %w", err)
		}

		result := tx.Model(&models.PaymentMethodModel{}).
			Where("user_id = ? AND id = ?", userID, methodID).
			Update("is_default", true)
		if result.Error != nil {
			return fmt.Errorf("failed to set default payment method: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return translateError(gorm.ErrRecordNotFound, "update", "payment method")
		}
		return nil
	})
}

func (r *gormPaymentMethodRepository) DeleteByID(ctx context.Context, methodID string) error {
	result := conn(ctx, r.db).Where("id = ?", methodID).Delete(&models.PaymentMethodModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete payment method: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "delete", "payment method")
	}

	r.logger.Info("Removed payment method ", methodID)
	return nil
}

type gormWebhookEventRepository struct {
	db *gorm.DB
}

// NewGormWebhookEventRepository creates a new GORM-based WebhookEventRepository implementation
func NewGormWebhookEventRepository(db *gorm.DB) (billing.WebhookEventRepository, error) {
	return &gormWebhookEventRepository{db: db}, nil
}

func (r *gormWebhookEventRepository) CreateIfAbsent(ctx context.Context, event *billing.WebhookEvent) (bool, error) {
	model := &models.WebhookEventModel{}
	model.FromDomain(event)

	result := conn(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model)
	if result.Error != nil {
		return false, translateError(result.Error, "record", "webhook event")
	}
	return result.RowsAffected == 1, nil
}

func (r *gormWebhookEventRepository) MarkProcessed(ctx context.Context, eventID string) error {
	err := conn(ctx, r.db).
		Model(&models.WebhookEventModel{}).
		Where("id = ?", eventID).
		Update("processed_at", time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to mark webhook event processed: %w", err)
	}
	return nil
}
