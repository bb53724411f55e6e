package models

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/partners"
)

// PartnerModel is the GORM database model for car-wash partners
type PartnerModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	Email           string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	PasswordHash    string    `gorm:"not null;type:varchar(255)"`
	BusinessName    string    `gorm:"not null;type:varchar(255)"`
	ContactName     string    `gorm:"type:varchar(255)"`
	Phone           string    `gorm:"type:varchar(32)"`
	Status          string    `gorm:"not null;index;type:varchar(20)"`
	StripeAccountID *string   `gorm:"type:varchar(255)"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (PartnerModel) TableName() string {
	return "partners"
}

// ToDomain converts GORM model to domain entity
func (m *PartnerModel) ToDomain() *partners.Partner {
	return &partners.Partner{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		BusinessName:    m.BusinessName,
		ContactName:     m.ContactName,
		Phone:           m.Phone,
		Status:          m.Status,
		StripeAccountID: m.StripeAccountID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PartnerModel) FromDomain(p *partners.Partner) {
	m.ID = p.ID
	m.Email = p.Email
	m.PasswordHash = p.PasswordHash
	m.BusinessName = p.BusinessName
	m.ContactName = p.ContactName
	m.Phone = p.Phone
	m.Status = p.Status
	m.StripeAccountID = p.StripeAccountID
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
