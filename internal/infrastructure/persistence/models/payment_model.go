package models

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/billing"
)

// PaymentModel is the GORM database model for payments
type PaymentModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	UserID         string    `gorm:"not null;index;type:varchar(36)"`
	SubscriptionID *string   `gorm:"index;type:varchar(36)"`
	AmountCents    int64     `gorm:"not null"`
	Currency       string    `gorm:"not null;type:varchar(3)"`
	Status         string    `gorm:"not null;type:varchar(20)"`
	Description    string    `gorm:"type:varchar(255)"`
	ProviderRef    string    `gorm:"index;type:varchar(255)"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts GORM model to domain entity
func (m *PaymentModel) ToDomain() *billing.Payment {
	return &billing.Payment{
		ID:             m.ID,
		UserID:         m.UserID,
		SubscriptionID: m.SubscriptionID,
		AmountCents:    m.AmountCents,
		Currency:       m.Currency,
		Status:         m.Status,
		Description:    m.Description,
		ProviderRef:    m.ProviderRef,
		CreatedAt:      m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PaymentModel) FromDomain(p *billing.Payment) {
	m.ID = p.ID
	m.UserID = p.UserID
	m.SubscriptionID = p.SubscriptionID
	m.AmountCents = p.AmountCents
	m.Currency = p.Currency
	m.Status = p.Status
	m.Description = p.Description
	m.ProviderRef = p.ProviderRef
	m.CreatedAt = p.CreatedAt
}
