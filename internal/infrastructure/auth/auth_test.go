//go:build unit
// +build unit

package auth

import (
	"testing"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewJWTIssuer(testSecret, time.Hour)
	require.NoError(t, err)

	principal := accounts.Principal{ID: "user-1", Kind: accounts.KindPartner, Email: "p@example.com"}
	token, err := issuer.Issue(principal)
	require.NoError(t, err)

	parsed, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, principal, *parsed)
}

func TestJWTIssuer_Rejects(t *testing.T) {
	issuer, err := NewJWTIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	token, err := issuer.Issue(accounts.Principal{ID: "user-1", Kind: accounts.KindUser})
	require.NoError(t, err)

	other, err := NewJWTIssuer("another-secret-another-secret", time.Hour)
	require.NoError(t, err)

	expired, err := NewJWTIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	tests := []struct {
		name   string
		issuer *JWTIssuer
		token  string
	}{
		{"wrong secret", other, token},
		{"expired", expired, token},
		{"garbage", issuer, "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.issuer.Parse(tt.token)
			assert.ErrorIs(t, err, apperr.ErrUnauthorized)
		})
	}
}

func TestNewJWTIssuer_EmptySecret(t *testing.T) {
	_, err := NewJWTIssuer("", time.Hour)
	assert.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, hasher.Compare(hash, "s3cret-pass"))
	assert.ErrorIs(t, hasher.Compare(hash, "wrong"), apperr.ErrUnauthorized)
}
