package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "bella-api"

// Claims is the JWT payload carried by access tokens.
type Claims struct {
	Kind  string `json:"kind"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 access tokens.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer creates a token issuer. secret must not be empty.
func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid token ttl %s", ttl)
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token for p.
func (i *JWTIssuer) Issue(p accounts.Principal) (string, error) {
	now := i.now()
	claims := Claims{
		Kind:  p.Kind,
		Email: p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Parse validates token and returns its principal.
func (i *JWTIssuer) Parse(token string) (*accounts.Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid token: %w", apperr.ErrUnauthorized)
	}

	switch claims.Kind {
	case accounts.KindUser, accounts.KindPartner, accounts.KindAdmin:
	default:
		return nil, fmt.Errorf("unknown principal kind %q: %w", claims.Kind, apperr.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject: %w", apperr.ErrUnauthorized)
	}

	return &accounts.Principal{ID: claims.Subject, Kind: claims.Kind, Email: claims.Email}, nil
}
