package models

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/catalog"
)

// ExtraServiceModel is the GORM database model for add-on services
type ExtraServiceModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Name        string    `gorm:"not null;type:varchar(100)"`
	Description string    `gorm:"type:text"`
	PriceCents  int64     `gorm:"not null"`
	Currency    string    `gorm:"not null;type:varchar(3)"`
	Active      bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ExtraServiceModel) TableName() string {
	return "extra_services"
}

// ToDomain converts GORM model to domain entity
func (m *ExtraServiceModel) ToDomain() *catalog.ExtraService {
	return &catalog.ExtraService{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		PriceCents:  m.PriceCents,
		Currency:    m.Currency,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ExtraServiceModel) FromDomain(s *catalog.ExtraService) {
	m.ID = s.ID
	m.Name = s.Name
	m.Description = s.Description
	m.PriceCents = s.PriceCents
	m.Currency = s.Currency
	m.Active = s.Active
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}
