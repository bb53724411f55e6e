//go:build integration
// +build integration

package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/billing"
	"github.com/bella-carwash/bella-api/internal/infrastructure/auth"
	"github.com/bella-carwash/bella-api/internal/infrastructure/persistence"
	"github.com/bella-carwash/bella-api/internal/pkg/config"
	"github.com/bella-carwash/bella-api/internal/pkg/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestClock is a settable clock shared by all services under test.
type TestClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *TestClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *TestClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// MockEventVerifier is a mock implementation of billing.EventVerifier
type MockEventVerifier struct {
	mock.Mock
}

func (m *MockEventVerifier) Verify(payload []byte, signature string) (*billing.ProviderEvent, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.ProviderEvent), args.Error(1)
}

// MockCodeSender captures delivered verification codes keyed by email/purpose
type MockCodeSender struct {
	mu    sync.Mutex
	Codes map[string]string
}

func (m *MockCodeSender) SendCode(_ context.Context, email, purpose, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Codes[email+"/"+purpose] = code
	return nil
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	*Services
	DBContext *persistence.TestContext
	Tokens    *auth.JWTIssuer
	Clock     *TestClock
	Verifier  *MockEventVerifier
	Sender    *MockCodeSender
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	dbContext := persistence.SetupTestDB(t, dbType)

	tokens, err := auth.NewJWTIssuer("integration-test-secret-value", time.Hour)
	require.NoError(t, err)

	clock := &TestClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	verifier := &MockEventVerifier{}
	sender := &MockCodeSender{Codes: map[string]string{}}

	services, err := NewServices(Dependencies{
		Repos:      dbContext.Repos,
		Tokens:     tokens,
		Hasher:     auth.NewBcryptHasher(bcrypt.MinCost),
		CodeSender: sender,
		Verifier:   verifier,
		Logger:     testutil.SetupTestLogger(t),
		Now:        clock.Now,
	})
	require.NoError(t, err)

	return &TestServices{
		Services:  services,
		DBContext: dbContext,
		Tokens:    tokens,
		Clock:     clock,
		Verifier:  verifier,
		Sender:    sender,
	}
}

// SetupSqliteServices is SetupTestServices on an in-memory SQLite database
func SetupSqliteServices(t *testing.T) *TestServices {
	t.Helper()
	return SetupTestServices(t, config.SqliteDbType)
}
