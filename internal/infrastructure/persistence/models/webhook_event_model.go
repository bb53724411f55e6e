package models

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/billing"
)

// WebhookEventModel is the GORM database model for received provider events
type WebhookEventModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(255)"`
	Type        string    `gorm:"not null;type:varchar(100)"`
	ReceivedAt  time.Time `gorm:"not null"`
	ProcessedAt *time.Time
}

// TableName specifies the table name for GORM
func (WebhookEventModel) TableName() string {
	return "webhook_events"
}

// ToDomain converts GORM model to domain entity
func (m *WebhookEventModel) ToDomain() *billing.WebhookEvent {
	return &billing.WebhookEvent{
		ID:          m.ID,
		Type:        m.Type,
		ReceivedAt:  m.ReceivedAt,
		ProcessedAt: m.ProcessedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *WebhookEventModel) FromDomain(e *billing.WebhookEvent) {
	m.ID = e.ID
	m.Type = e.Type
	m.ReceivedAt = e.ReceivedAt
	m.ProcessedAt = e.ProcessedAt
}
