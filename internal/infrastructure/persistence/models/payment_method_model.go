package models

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/billing"
)

// PaymentMethodModel is the GORM database model for stored card references
type PaymentMethodModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `gorm:"not null;index;type:varchar(36)"`
	Brand       string    `gorm:"not null;type:varchar(32)"`
	Last4       string    `gorm:"not null;type:varchar(4)"`
	ExpMonth    int       `gorm:"not null"`
	ExpYear     int       `gorm:"not null"`
	IsDefault   bool      `gorm:"not null"`
	ProviderRef string    `gorm:"not null;type:varchar(255)"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// ToDomain converts GORM model to domain entity
func (m *PaymentMethodModel) ToDomain() *billing.PaymentMethod {
	return &billing.PaymentMethod{
		ID:          m.ID,
		UserID:      m.UserID,
		Brand:       m.Brand,
		Last4:       m.Last4,
		ExpMonth:    m.ExpMonth,
		ExpYear:     m.ExpYear,
		IsDefault:   m.IsDefault,
		ProviderRef: m.ProviderRef,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PaymentMethodModel) FromDomain(pm *billing.PaymentMethod) {
	m.ID = pm.ID
	m.UserID = pm.UserID
	m.Brand = pm.Brand
	m.Last4 = pm.Last4
	m.ExpMonth = pm.ExpMonth
	m.ExpYear = pm.ExpYear
	m.IsDefault = pm.IsDefault
	m.ProviderRef = pm.ProviderRef
	m.CreatedAt = pm.CreatedAt
}
