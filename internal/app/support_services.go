package app

import (
	"context"
	"strings"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/support"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"

	"github.com/google/uuid"
)

// ticketService implements support.TicketService
type ticketService struct {
	tickets support.TicketRepository
	now     func() time.Time
}

// NewTicketService creates a new instance of TicketService
func NewTicketService(tickets support.TicketRepository, now func() time.Time) support.TicketService {
	return &ticketService{tickets: tickets, now: now}
}

func (s *ticketService) Open(ctx context.Context, userID, subject, message string) (*support.Ticket, error) {
	now := s.now()
	ticket := &support.Ticket{
		ID:        uuid.NewString(),
		UserID:    userID,
		Subject:   strings.TrimSpace(subject),
		Message:   strings.TrimSpace(message),
		Status:    support.StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validate(ticket); err != nil {
		return nil, err
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *ticketService) List(ctx context.Context, userID string) ([]*support.Ticket, error) {
	return s.tickets.ListByUser(ctx, userID)
}

func (s *ticketService) GetByID(ctx context.Context, userID, ticketID string) (*support.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != userID {
		return nil, apperr.NotFound("Ticket not found")
	}
	return ticket, nil
}

func (s *ticketService) Close(ctx context.Context, userID, ticketID string) (*support.Ticket, error) {
	ticket, err := s.GetByID(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == support.StatusClosed {
		return nil, apperr.Conflict("Ticket is already closed")
	}

	now := s.now()
	ticket.Status = support.StatusClosed
	ticket.ClosedAt = &now
	ticket.UpdatedAt = now
	if err := s.tickets.UpdateByID(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
