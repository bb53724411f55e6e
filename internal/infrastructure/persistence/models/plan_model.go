package models

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/catalog"
)

// PlanModel is the GORM database model for subscription plans
type PlanModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	Name            string    `gorm:"not null;type:varchar(100)"`
	Description     string    `gorm:"type:text"`
	PriceCents      int64     `gorm:"not null"`
	Currency        string    `gorm:"not null;type:varchar(3)"`
	Interval        string    `gorm:"column:billing_interval;not null;type:varchar(10)"`
	WashesPerPeriod int       `gorm:"not null"`
	Active          bool      `gorm:"not null;index"`
	StripePriceID   *string   `gorm:"type:varchar(255)"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return "plans"
}

// ToDomain converts GORM model to domain entity
func (m *PlanModel) ToDomain() *catalog.Plan {
	return &catalog.Plan{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		PriceCents:      m.PriceCents,
		Currency:        m.Currency,
		Interval:        m.Interval,
		WashesPerPeriod: m.WashesPerPeriod,
		Active:          m.Active,
		StripePriceID:   m.StripePriceID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PlanModel) FromDomain(p *catalog.Plan) {
	m.ID = p.ID
	m.Name = p.Name
	m.Description = p.Description
	m.PriceCents = p.PriceCents
	m.Currency = p.Currency
	m.Interval = p.Interval
	m.WashesPerPeriod = p.WashesPerPeriod
	m.Active = p.Active
	m.StripePriceID = p.StripePriceID
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
