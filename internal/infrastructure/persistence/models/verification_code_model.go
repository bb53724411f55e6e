package models

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
)

// VerificationCodeModel is the GORM database model for one-time email codes
type VerificationCodeModel struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	Email      string    `gorm:"not null;index:idx_verification_codes_lookup;type:varchar(255)"`
	Purpose    string    `gorm:"not null;index:idx_verification_codes_lookup;type:varchar(32)"`
	Code       string    `gorm:"not null;type:varchar(6)"`
	Attempts   int       `gorm:"not null;default:0"`
	ExpiresAt  time.Time `gorm:"not null"`
	ConsumedAt *time.Time
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (VerificationCodeModel) TableName() string {
	return "verification_codes"
}

// ToDomain converts GORM model to domain entity
func (m *VerificationCodeModel) ToDomain() *accounts.VerificationCode {
	return &accounts.VerificationCode{
		ID:         m.ID,
		Email:      m.Email,
		Purpose:    m.Purpose,
		Code:       m.Code,
		Attempts:   m.Attempts,
		ExpiresAt:  m.ExpiresAt,
		ConsumedAt: m.ConsumedAt,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *VerificationCodeModel) FromDomain(c *accounts.VerificationCode) {
	m.ID = c.ID
	m.Email = c.Email
	m.Purpose = c.Purpose
	m.Code = c.Code
	m.Attempts = c.Attempts
	m.ExpiresAt = c.ExpiresAt
	m.ConsumedAt = c.ConsumedAt
	m.CreatedAt = c.CreatedAt
}
