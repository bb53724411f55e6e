package accounts

import (
	"context"
)

// RegisterInput carries the fields needed to open a customer account.
type RegisterInput struct {
	Email     string `validate:"required,email,max=255"`
	Password  string `validate:"required,min=8,max=72"`
	FirstName string `validate:"max=100"`
	LastName  string `validate:"max=100"`
	Phone     string `validate:"omitempty,max=32"`
}

// ProfileUpdate carries the mutable profile fields. Nil fields are left untouched.
type ProfileUpdate struct {
	FirstName *string `validate:"omitempty,max=100"`
	LastName  *string `validate:"omitempty,max=100"`
	Phone     *string `validate:"omitempty,max=32"`
}

// AuthService registers and authenticates customers.
type AuthService interface {
	// Register creates the account and returns it with an access token.
	Register(ctx context.Context, input RegisterInput) (*User, string, error)
	// Login checks credentials and returns the account with an access token.
	Login(ctx context.Context, email, password string) (*User, string, error)
	// CreateAdmin creates an administrator account. It is not exposed over HTTP.
	CreateAdmin(ctx context.Context, input RegisterInput) (*User, error)
}

// UserService manages customer profiles.
type UserService interface {
	GetByID(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error)
	DeleteByID(ctx context.Context, userID string) error
	List(ctx context.Context, query *UserQuery) ([]*User, error)
}

// VerificationCodeService issues and confirms one-time email codes.
type VerificationCodeService interface {
	// Send issues a fresh code, replacing any earlier one for the same email and purpose.
	Send(ctx context.Context, email, purpose string) (*VerificationCode, error)
	// Confirm consumes a matching code.
	Confirm(ctx context.Context, email, purpose, code string) error
}

// CodeSender delivers verification codes out of band.
type CodeSender interface {
	SendCode(ctx context.Context, email, purpose, code string) error
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	Count(ctx context.Context) (int64, error)
	UpdateByID(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, userID string) error
}

// VerificationCodeRepository defines persistence for one-time codes.
type VerificationCodeRepository interface {
	Create(ctx context.Context, code *VerificationCode) error
	// Latest returns the newest code for email and purpose.
	Latest(ctx context.Context, email, purpose string) (*VerificationCode, error)
	UpdateByID(ctx context.Context, code *VerificationCode) error
}
