package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"github.com/google/uuid"
)

var errInvalidCredentials = apperr.Unauthorized("Invalid email or password")

// authService implements accounts.AuthService
type authService struct {
	users  accounts.UserRepository
	hasher accounts.PasswordHasher
	tokens accounts.TokenIssuer
	now    func() time.Time
	logger logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(users accounts.UserRepository, hasher accounts.PasswordHasher, tokens accounts.TokenIssuer, now func() time.Time, logger logger.Logger) accounts.AuthService {
	return &authService{users: users, hasher: hasher, tokens: tokens, now: now, logger: logger}
}

func (s *authService) Register(ctx context.Context, input accounts.RegisterInput) (*accounts.User, string, error) {
	user, err := s.create(ctx, input, accounts.RoleCustomer)
	if err != nil {
		return nil, "", err
	}

	token, err := s.issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) CreateAdmin(ctx context.Context, input accounts.RegisterInput) (*accounts.User, error) {
	return s.create(ctx, input, accounts.RoleAdmin)
}

func (s *authService) create(ctx context.Context, input accounts.RegisterInput, role string) (*accounts.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validate(&input); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperr.Conflict("An account with this email already exists")
	} else if !isNotFound(err) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &accounts.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Phone:        strings.TrimSpace(input.Phone),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.Conflict("An account with this email already exists")
		}
		return nil, err
	}

	s.logger.Info("Registered ", role, " account ", user.ID)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*accounts.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if isNotFound(err) {
		return nil, "", errInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", err
	}

	token, err := s.issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) issue(user *accounts.User) (string, error) {
	kind := accounts.KindUser
	if user.Role == accounts.RoleAdmin {
		kind = accounts.KindAdmin
	}
	return s.tokens.Issue(accounts.Principal{ID: user.ID, Kind: kind, Email: user.Email})
}

// userService implements accounts.UserService
type userService struct {
	users accounts.UserRepository
	now   func() time.Time
}

// NewUserService creates a new instance of UserService
func NewUserService(users accounts.UserRepository, now func() time.Time) accounts.UserService {
	return &userService{users: users, now: now}
}

func (s *userService) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, update accounts.ProfileUpdate) (*accounts.User, error) {
	if err := validate(&update); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		user.LastName = strings.TrimSpace(*update.LastName)
	}
	if update.Phone != nil {
		user.Phone = strings.TrimSpace(*update.Phone)
	}
	user.UpdatedAt = s.now()

	if err := s.users.UpdateByID(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteByID(ctx context.Context, userID string) error {
	return s.users.DeleteByID(ctx, userID)
}

func (s *userService) List(ctx context.Context, query *accounts.UserQuery) ([]*accounts.User, error) {
	if err := validate(query); err != nil {
		return nil, err
	}
	return s.users.List(ctx, query)
}

// verificationCodeService implements accounts.VerificationCodeService
type verificationCodeService struct {
	codes  accounts.VerificationCodeRepository
	users  accounts.UserRepository
	sender accounts.CodeSender
	now    func() time.Time
	logger logger.Logger
}

// NewVerificationCodeService creates a new instance of VerificationCodeService
func NewVerificationCodeService(codes accounts.VerificationCodeRepository, users accounts.UserRepository, sender accounts.CodeSender, now func() time.Time, logger logger.Logger) accounts.VerificationCodeService {
	return &verificationCodeService{codes: codes, users: users, sender: sender, now: now, logger: logger}
}

func (s *verificationCodeService) Send(ctx context.Context, email, purpose string) (*accounts.VerificationCode, error) {
	if purpose == "" {
		purpose = accounts.PurposeEmailVerification
	}

	digits, err := randomDigits(6)
	if err != nil {
		return nil, err
	}

	now := s.now()
	code := &accounts.VerificationCode{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Code:      digits,
		Purpose:   purpose,
		ExpiresAt: now.Add(accounts.VerificationCodeTTL),
		CreatedAt: now,
	}
	if err := validate(code); err != nil {
		return nil, err
	}

	if err := s.codes.Create(ctx, code); err != nil {
		return nil, err
	}
	if s.sender != nil {
		if err := s.sender.SendCode(ctx, code.Email, code.Purpose, code.Code); err != nil {
			return nil, fmt.Errorf("failed to deliver verification code: %w", err)
		}
	}
	return code, nil
}

func (s *verificationCodeService) Confirm(ctx context.Context, email, purpose, code string) error {
	if purpose == "" {
		purpose = accounts.PurposeEmailVerification
	}
	email = strings.ToLower(strings.TrimSpace(email))

	latest, err := s.codes.Latest(ctx, email, purpose)
	if isNotFound(err) {
		return apperr.BadRequest("Invalid or expired verification code")
	}
	if err != nil {
		return err
	}

	now := s.now()
	if !latest.Usable(now) {
		return apperr.BadRequest("Invalid or expired verification code")
	}

	if latest.Code != strings.TrimSpace(code) {
		latest.Attempts++
		if err := s.codes.UpdateByID(ctx, latest); err != nil {
			return err
		}
		return apperr.BadRequest("Invalid or expired verification code")
	}

	latest.ConsumedAt = &now
	if err := s.codes.UpdateByID(ctx, latest); err != nil {
		return err
	}

	if purpose == accounts.PurposeEmailVerification {
		user, err := s.users.GetByEmail(ctx, email)
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		user.EmailVerified = true
		user.UpdatedAt = now
		if err := s.users.UpdateByID(ctx, user); err != nil {
			return err
		}
		s.logger.Info("Verified email for user ", user.ID)
	}
	return nil
}
