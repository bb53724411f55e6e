package models

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
)

// WashVerificationModel is the GORM database model for redeemed washes
type WashVerificationModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	QRCodeID       string    `gorm:"not null;uniqueIndex;type:varchar(36)"`
	SubscriptionID string    `gorm:"not null;index;type:varchar(36)"`
	UserID         string    `gorm:"not null;index;type:varchar(36)"`
	PartnerID      string    `gorm:"not null;index;type:varchar(36)"`
	LocationID     string    `gorm:"not null;index;type:varchar(36)"`
	Notes          string    `gorm:"type:varchar(500)"`
	VerifiedAt     time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (WashVerificationModel) TableName() string {
	return "wash_verifications"
}

// ToDomain converts GORM model to domain entity
func (m *WashVerificationModel) ToDomain() *subscriptions.WashVerification {
	return &subscriptions.WashVerification{
		ID:             m.ID,
		QRCodeID:       m.QRCodeID,
		SubscriptionID: m.SubscriptionID,
		UserID:         m.UserID,
		PartnerID:      m.PartnerID,
		LocationID:     m.LocationID,
		Notes:          m.Notes,
		VerifiedAt:     m.VerifiedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *WashVerificationModel) FromDomain(v *subscriptions.WashVerification) {
	m.ID = v.ID
	m.QRCodeID = v.QRCodeID
	m.SubscriptionID = v.SubscriptionID
	m.UserID = v.UserID
	m.PartnerID = v.PartnerID
	m.LocationID = v.LocationID
	m.Notes = v.Notes
	m.VerifiedAt = v.VerifiedAt
}
