package models

import (
	"github.com/bella-carwash/bella-api/internal/domain/catalog"
)

// CoverageAreaModel is the GORM database model for served postcode districts
type CoverageAreaModel struct {
	OutwardCode string `gorm:"primaryKey;type:varchar(4)"`
	Region      string `gorm:"type:varchar(100)"`
	Active      bool   `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CoverageAreaModel) TableName() string {
	return "postcodes"
}

// ToDomain converts GORM model to domain entity
func (m *CoverageAreaModel) ToDomain() *catalog.CoverageArea {
	return &catalog.CoverageArea{
		OutwardCode: m.OutwardCode,
		Region:      m.Region,
		Active:      m.Active,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CoverageAreaModel) FromDomain(a *catalog.CoverageArea) {
	m.OutwardCode = a.OutwardCode
	m.Region = a.Region
	m.Active = a.Active
}
