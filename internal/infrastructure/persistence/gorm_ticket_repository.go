package persistence

import (
	"context"
	"fmt"

	"github.com/bella-carwash/bella-api/internal/domain/support"
	"github.com/bella-carwash/bella-api/internal/infrastructure/persistence/models"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTicketRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTicketRepository creates a new GORM-based TicketRepository implementation
func NewGormTicketRepository(db *gorm.DB, logger logger.Logger) (support.TicketRepository, error) {
	return &gormTicketRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTicketRepository) Create(ctx context.Context, ticket *support.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TicketModel{}
	model.FromDomain(ticket)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, "create", "ticket")
	}

	r.logger.Info("Opened support ticket with id ", ticket.ID)
	return nil
}

func (r *gormTicketRepository) GetByID(ctx context.Context, ticketID string) (*support.Ticket, error) {
	var model models.TicketModel
	if err := conn(ctx, r.db).Where("id = ?", ticketID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "ticket")
	}
	return model.ToDomain(), nil
}

func (r *gormTicketRepository) ListByUser(ctx context.Context, userID string) ([]*support.Ticket, error) {
	var modelList []*models.TicketModel
	if err := conn(ctx, r.db).Where("user_id = ?", userID).Order("created_at desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tickets: %w", err)
	}

	tickets := make([]*support.Ticket, len(modelList))
	for i, model := range modelList {
		tickets[i] = model.ToDomain()
	}
	return tickets, nil
}

func (r *gormTicketRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := countByStatus(conn(ctx, r.db), &models.TicketModel{})
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}
	return counts, nil
}

func (r *gormTicketRepository) UpdateByID(ctx context.Context, ticket *support.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TicketModel{}
	model.FromDomain(ticket)

	if err := conn(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err, "update", "ticket")
	}

	r.logger.Info("Updated support ticket with id ", ticket.ID)
	return nil
}
