package support

import (
	"context"
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/validators"
)

// Ticket statuses.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Ticket entity
type Ticket struct {
	ID        string `validate:"required,uuid4"`
	UserID    string `validate:"required,uuid4"`
	Subject   string `validate:"required,min=3,max=200"`
	Message   string `validate:"required,min=1,max=5000"`
	Status    string `validate:"required,oneof=open closed"`
	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
	ClosedAt  *time.Time
}

// Validate for validating Ticket struct
func (t *Ticket) Validate() error {
	return validators.Struct(t)
}

// TicketService manages a customer's support tickets.
type TicketService interface {
	Open(ctx context.Context, userID, subject, message string) (*Ticket, error)
	List(ctx context.Context, userID string) ([]*Ticket, error)
	GetByID(ctx context.Context, userID, ticketID string) (*Ticket, error)
	Close(ctx context.Context, userID, ticketID string) (*Ticket, error)
}

// TicketRepository defines the interface for Ticket-related operations
type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID string) (*Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]*Ticket, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	UpdateByID(ctx context.Context, ticket *Ticket) error
}
