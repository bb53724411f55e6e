package models

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
)

// SubscriptionModel is the GORM database model for customer subscriptions
type SubscriptionModel struct {
	ID                   string    `gorm:"primaryKey;type:varchar(36)"`
	UserID               string    `gorm:"not null;index;type:varchar(36)"`
	PlanID               string    `gorm:"not null;index;type:varchar(36)"`
	Status               string    `gorm:"not null;index;type:varchar(20)"`
	CurrentPeriodStart   time.Time `gorm:"not null"`
	CurrentPeriodEnd     time.Time `gorm:"not null"`
	WashesUsed           int       `gorm:"not null"`
	CancelAtPeriodEnd    bool      `gorm:"not null"`
	StripeSubscriptionID *string   `gorm:"type:varchar(255);index"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToDomain converts GORM model to domain entity
func (m *SubscriptionModel) ToDomain() *subscriptions.Subscription {
	return &subscriptions.Subscription{
		ID:                   m.ID,
		UserID:               m.UserID,
		PlanID:               m.PlanID,
		Status:               m.Status,
		CurrentPeriodStart:   m.CurrentPeriodStart,
		CurrentPeriodEnd:     m.CurrentPeriodEnd,
		WashesUsed:           m.WashesUsed,
		CancelAtPeriodEnd:    m.CancelAtPeriodEnd,
		StripeSubscriptionID: m.StripeSubscriptionID,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SubscriptionModel) FromDomain(s *subscriptions.Subscription) {
	m.ID = s.ID
	m.UserID = s.UserID
	m.PlanID = s.PlanID
	m.Status = s.Status
	m.CurrentPeriodStart = s.CurrentPeriodStart
	m.CurrentPeriodEnd = s.CurrentPeriodEnd
	m.WashesUsed = s.WashesUsed
	m.CancelAtPeriodEnd = s.CancelAtPeriodEnd
	m.StripeSubscriptionID = s.StripeSubscriptionID
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}
