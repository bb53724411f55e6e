package models

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/partners"
)

// LocationModel is the GORM database model for partner locations
type LocationModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	PartnerID   string    `gorm:"not null;index;type:varchar(36)"`
	Name        string    `gorm:"not null;type:varchar(255)"`
	AddressLine string    `gorm:"not null;type:varchar(255)"`
	City        string    `gorm:"not null;type:varchar(100)"`
	Postcode    string    `gorm:"not null;index;type:varchar(8)"`
	Latitude    float64
	Longitude   float64
	Active      bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (LocationModel) TableName() string {
	return "locations"
}

// ToDomain converts GORM model to domain entity
func (m *LocationModel) ToDomain() *partners.Location {
	return &partners.Location{
		ID:          m.ID,
		PartnerID:   m.PartnerID,
		Name:        m.Name,
		AddressLine: m.AddressLine,
		City:        m.City,
		Postcode:    m.Postcode,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *LocationModel) FromDomain(l *partners.Location) {
	m.ID = l.ID
	m.PartnerID = l.PartnerID
	m.Name = l.Name
	m.AddressLine = l.AddressLine
	m.City = l.City
	m.Postcode = l.Postcode
	m.Latitude = l.Latitude
	m.Longitude = l.Longitude
	m.Active = l.Active
	m.CreatedAt = l.CreatedAt
	m.UpdatedAt = l.UpdatedAt
}
