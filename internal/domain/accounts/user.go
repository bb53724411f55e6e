package accounts

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/validators"
)

// Roles a customer account can hold.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User entity
type User struct {
	ID               string `validate:"required,uuid4"`
	Email            string `validate:"required,email,max=255"`
	PasswordHash     string `validate:"required"`
	FirstName        string `validate:"max=100"`
	LastName         string `validate:"max=100"`
	Phone            string `validate:"omitempty,max=32"`
	Role             string `validate:"required,oneof=customer admin"`
	EmailVerified    bool
	StripeCustomerID *string
	CreatedAt        time.Time `validate:"required"`
	UpdatedAt        time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.Struct(u)
}

// FullName joins first and last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// UserQuery filters user listings.
type UserQuery struct {
	Search string `validate:"max=255"`
	Limit  int    `validate:"min=0,max=200"`
	Offset int    `validate:"min=0"`
}

// NewUserQuery returns a query with default paging.
func NewUserQuery() *UserQuery {
	return &UserQuery{Limit: 50}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	return validators.Struct(q)
}
