package models

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
)

// UserModel is the GORM database model for customer accounts
type UserModel struct {
	ID               string    `gorm:"primaryKey;type:varchar(36)"`
	Email            string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	PasswordHash     string    `gorm:"not null;type:varchar(255)"`
	FirstName        string    `gorm:"type:varchar(100)"`
	LastName         string    `gorm:"type:varchar(100)"`
	Phone            string    `gorm:"type:varchar(32)"`
	Role             string    `gorm:"not null;type:varchar(20);default:customer"`
	EmailVerified    bool      `gorm:"not null;default:false"`
	StripeCustomerID *string   `gorm:"type:varchar(255);index"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *accounts.User {
	return &accounts.User{
		ID:               m.ID,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Phone:            m.Phone,
		Role:             m.Role,
		EmailVerified:    m.EmailVerified,
		StripeCustomerID: m.StripeCustomerID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *accounts.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.Phone = u.Phone
	m.Role = u.Role
	m.EmailVerified = u.EmailVerified
	m.StripeCustomerID = u.StripeCustomerID
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}
