package models

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
)

// QRCodeModel is the GORM database model for issued QR codes
type QRCodeModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	Code           string    `gorm:"not null;uniqueIndex;type:varchar(32)"`
	SubscriptionID string    `gorm:"not null;index;type:varchar(36)"`
	UserID         string    `gorm:"not null;index;type:varchar(36)"`
	ExpiresAt      time.Time `gorm:"not null"`
	UsedAt         *time.Time
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (QRCodeModel) TableName() string {
	return "qr_codes"
}

// ToDomain converts GORM model to domain entity
func (m *QRCodeModel) ToDomain() *subscriptions.QRCode {
	return &subscriptions.QRCode{
		ID:             m.ID,
		Code:           m.Code,
		SubscriptionID: m.SubscriptionID,
		UserID:         m.UserID,
		ExpiresAt:      m.ExpiresAt,
		UsedAt:         m.UsedAt,
		CreatedAt:      m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *QRCodeModel) FromDomain(q *subscriptions.QRCode) {
	m.ID = q.ID
	m.Code = q.Code
	m.SubscriptionID = q.SubscriptionID
	m.UserID = q.UserID
	m.ExpiresAt = q.ExpiresAt
	m.UsedAt = q.UsedAt
	m.CreatedAt = q.CreatedAt
}
