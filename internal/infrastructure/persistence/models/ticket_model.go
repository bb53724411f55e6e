package models

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/support"
)

// TicketModel is the GORM database model for support tickets
type TicketModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"not null;index;type:varchar(36)"`
	Subject   string    `gorm:"not null;type:varchar(200)"`
	Message   string    `gorm:"not null;type:text"`
	Status    string    `gorm:"not null;index;type:varchar(20)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
	ClosedAt  *time.Time
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return "support_tickets"
}

// ToDomain converts GORM model to domain entity
func (m *TicketModel) ToDomain() *support.Ticket {
	return &support.Ticket{
		ID:        m.ID,
		UserID:    m.UserID,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		ClosedAt:  m.ClosedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TicketModel) FromDomain(t *support.Ticket) {
	m.ID = t.ID
	m.UserID = t.UserID
	m.Subject = t.Subject
	m.Message = t.Message
	m.Status = t.Status
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
	m.ClosedAt = t.ClosedAt
}
