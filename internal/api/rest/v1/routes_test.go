//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/bella-carwash/bella-api/internal/api/rest/middleware"
	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/infrastructure/auth"
	"github.com/bella-carwash/bella-api/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	router *gin.Engine
	mocks  *mockServices
	tokens *auth.JWTIssuer
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	tokens, err := auth.NewJWTIssuer("handler-test-secret-value", time.Hour)
	require.NoError(t, err)

	log := testutil.SetupTestLogger(t)
	mocks := newMockServices()

	r := gin.New()
	r.Use(middleware.ErrorHandler(false, log), middleware.Recovery(log), middleware.RawBody(BasePath+"/webhooks"))
	SetupRoutes(r, mocks.services(), tokens)
	r.NoRoute(middleware.NotFound)

	return &testAPI{router: r, mocks: mocks, tokens: tokens}
}

// bearer returns an Authorization header for a principal of the given kind.
func (a *testAPI) bearer(t *testing.T, id, kind string) map[string]string {
	t.Helper()
	token, err := a.tokens.Issue(accounts.Principal{ID: id, Kind: kind, Email: kind + "@example.com"})
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

// TestSetupRoutes_RoutesRegistered verifies that every route group is mounted
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	api := newTestAPI(t)

	registered := map[string]bool{}
	for _, route := range api.router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/auth/me",
		"POST /api/partner-auth/register",
		"POST /api/partner-auth/login",
		"GET /api/partner-auth/me",
		"GET /api/admin/stats",
		"GET /api/admin/users",
		"GET /api/admin/partners",
		"PATCH /api/admin/partners/:id/status",
		"GET /api/users/me",
		"PUT /api/users/me",
		"DELETE /api/users/me",
		"GET /api/plans",
		"GET /api/plans/:id",
		"POST /api/plans",
		"PUT /api/plans/:id",
		"DELETE /api/plans/:id",
		"GET /api/subscriptions",
		"POST /api/subscriptions",
		"GET /api/subscriptions/:id",
		"POST /api/subscriptions/:id/cancel",
		"GET /api/partners",
		"GET /api/partners/:id",
		"GET /api/partners/me/locations",
		"GET /api/locations",
		"GET /api/locations/:id",
		"POST /api/locations",
		"PUT /api/locations/:id",
		"DELETE /api/locations/:id",
		"POST /api/verifications",
		"GET /api/verifications",
		"POST /api/verification/send",
		"POST /api/verification/confirm",
		"POST /api/qr-codes",
		"GET /api/qr-codes/:code",
		"GET /api/payments",
		"GET /api/payments/:id",
		"GET /api/payment-methods",
		"POST /api/payment-methods",
		"PUT /api/payment-methods/:id/default",
		"DELETE /api/payment-methods/:id",
		"GET /api/billing/summary",
		"GET /api/billing/history",
		"POST /api/support/tickets",
		"GET /api/support/tickets",
		"GET /api/support/tickets/:id",
		"POST /api/support/tickets/:id/close",
		"POST /api/webhooks/stripe",
		"GET /api/postcodes/:postcode",
		"GET /api/extra-services",
		"POST /api/extra-services",
		"PUT /api/extra-services/:id",
		"DELETE /api/extra-services/:id",
		"GET /api/stripe-connect/status",
		"POST /api/stripe-connect/account",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route %s should be registered", route)
	}
}

func TestSetupRoutes_AccessControl(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name    string
		method  string
		url     string
		headers map[string]string
		status  int
	}{
		{"user route without token", http.MethodGet, "/api/users/me", nil, http.StatusUnauthorized},
		{"admin route as customer", http.MethodGet, "/api/admin/stats", api.bearer(t, "u1", accounts.KindUser), http.StatusForbidden},
		{"plan create as partner", http.MethodPost, "/api/plans", api.bearer(t, "p1", accounts.KindPartner), http.StatusForbidden},
		{"verifications as customer", http.MethodGet, "/api/verifications", api.bearer(t, "u1", accounts.KindUser), http.StatusForbidden},
		{"stripe connect as customer", http.MethodGet, "/api/stripe-connect/status", api.bearer(t, "u1", accounts.KindUser), http.StatusForbidden},
		{"qr inspect without token", http.MethodGet, "/api/qr-codes/abc", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.PerformRequest(t, api.router, tt.method, tt.url, nil, tt.headers)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
