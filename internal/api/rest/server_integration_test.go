//go:build integration
// +build integration

package rest

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/bella-carwash/bella-api/internal/app"
	"github.com/bella-carwash/bella-api/internal/domain/billing"
	"github.com/bella-carwash/bella-api/internal/infrastructure/metrics"
	"github.com/bella-carwash/bella-api/internal/infrastructure/ratelimit"
	"github.com/bella-carwash/bella-api/internal/pkg/config"
	"github.com/bella-carwash/bella-api/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStack struct {
	router  *gin.Engine
	svc     *app.TestServices
	metrics *metrics.Metrics
}

func setupStack(t *testing.T, maxRequests int) *testStack {
	t.Helper()
	return setupStackWith(t, maxRequests, nil)
}

func setupStackWith(t *testing.T, maxRequests int, configure func(*config.ServerSettings)) *testStack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := app.SetupSqliteServices(t)
	m := metrics.New()

	uploads := t.TempDir()
	testutil.CreateTestFile(t, uploads, "logo.txt", []byte("bella"))

	settings := config.ServerSettings{
		Port:           "0",
		Environment:    config.EnvTest,
		FrontendURL:    "https://bella.example.com/",
		UploadsDir:     uploads,
		BodyLimitBytes: 1 << 20,
	}
	if configure != nil {
		configure(&settings)
	}

	router := NewRouter(Deps{
		Server:   settings,
		Services: svc.Services,
		Tokens:   svc.Tokens,
		Limiter:  ratelimit.NewMemoryStore(maxRequests, time.Minute),
		Metrics:  m,
		Logger:   testutil.SetupTestLogger(t),
	})
	return &testStack{router: router, svc: svc, metrics: m}
}

func TestRouter_Health(t *testing.T) {
	stack := setupStack(t, 100)

	w := testutil.PerformRequest(t, stack.router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := testutil.DecodeJSON(t, w)
	assert.Equal(t, "OK", body["status"])
	_, err := time.Parse(time.RFC3339, body["timestamp"].(string))
	assert.NoError(t, err)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRouter_CORS(t *testing.T) {
	stack := setupStack(t, 100)

	w := testutil.PerformRequest(t, stack.router, http.MethodGet, "/health", nil, map[string]string{"Origin": "https://bella.example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://bella.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = testutil.PerformRequest(t, stack.router, http.MethodGet, "/health", nil, map[string]string{"Origin": "http://localhost:5173"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutil.PerformRequest(t, stack.router, http.MethodGet, "/health", nil, map[string]string{"Origin": "https://evil.example.com"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	body := testutil.DecodeJSON(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "CORS policy: Origin https://evil.example.com not allowed", body["error"].(map[string]interface{})["message"])

	w = testutil.PerformRequest(t, stack.router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_NotFound(t *testing.T) {
	stack := setupStack(t, 100)

	w := testutil.PerformRequest(t, stack.router, http.MethodGet, "/api/does-not-exist", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := testutil.DecodeJSON(t, w)
	assert.Equal(t, "Not found - /api/does-not-exist", body["error"].(map[string]interface{})["message"])
}

func TestRouter_RateLimit(t *testing.T) {
	stack := setupStack(t, 3)

	for i := 0; i < 3; i++ {
		w := testutil.PerformRequest(t, stack.router, http.MethodGet, "/health", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := testutil.PerformRequest(t, stack.router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Too many requests from this IP, please try again later.",
		testutil.DecodeJSON(t, w)["error"].(map[string]interface{})["message"])
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRouter_RateLimitKeysOnSocketAddress(t *testing.T) {
	stack := setupStack(t, 3)

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		w := testutil.PerformRequest(t, stack.router, http.MethodGet, "/health", nil,
			map[string]string{"X-Forwarded-For": "198.51.100." + strconv.Itoa(i+1)})
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 200, 429, 429}, codes)
}

func TestRouter_RateLimitHonoursTrustedProxy(t *testing.T) {
	// httptest requests come from 192.0.2.1
	stack := setupStackWith(t, 1, func(s *config.ServerSettings) {
		s.TrustedProxies = []string{"192.0.2.0/24"}
	})

	for i := 0; i < 3; i++ {
		w := testutil.PerformRequest(t, stack.router, http.MethodGet, "/health", nil,
			map[string]string{"X-Forwarded-For": "198.51.100." + strconv.Itoa(i+1)})
		assert.Equal(t, http.StatusOK, w.Code, "each forwarded client has its own allowance")
	}

	w := testutil.PerformRequest(t, stack.router, http.MethodGet, "/health", nil,
		map[string]string{"X-Forwarded-For": "198.51.100.1"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func gunzipJSON(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(body))
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

func TestRouter_ErrorsAreRenderedUnderCompression(t *testing.T) {
	stack := setupStack(t, 100)

	tests := []struct {
		name    string
		path    string
		headers map[string]string
		status  int
		message string
	}{
		{
			name:    "disallowed origin",
			path:    "/health",
			headers: map[string]string{"Origin": "https://evil.example.com"},
			status:  http.StatusForbidden,
			message: "CORS policy: Origin https://evil.example.com not allowed",
		},
		{
			name:    "missing token",
			path:    "/api/auth/me",
			status:  http.StatusUnauthorized,
			message: "Authentication required",
		},
		{
			name:    "unknown route",
			path:    "/api/nope",
			status:  http.StatusNotFound,
			message: "Not found - /api/nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{"Accept-Encoding": "gzip"}
			for k, v := range tt.headers {
				headers[k] = v
			}

			w := testutil.PerformRequest(t, stack.router, http.MethodGet, tt.path, nil, headers)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

			body := gunzipJSON(t, w.Body.Bytes())
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["error"].(map[string]interface{})["message"])
		})
	}
}

func TestRouter_ErrorStatusIsMetered(t *testing.T) {
	stack := setupStack(t, 100)

	w := testutil.PerformRequest(t, stack.router, http.MethodGet, "/api/auth/me", nil, map[string]string{"Accept-Encoding": "gzip"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.PerformRequest(t, stack.router, http.MethodGet, "/metrics", nil, nil)
	assert.Contains(t, w.Body.String(), `route="/api/auth/me",status="401"`)
	assert.NotContains(t, w.Body.String(), `route="/api/auth/me",status="200"`)
}

func TestRouter_UploadsAndMetrics(t *testing.T) {
	stack := setupStack(t, 100)

	w := testutil.PerformRequest(t, stack.router, http.MethodGet, "/uploads/logo.txt", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bella", w.Body.String())

	testutil.PerformRequest(t, stack.router, http.MethodGet, "/api/plans", nil, nil)

	w = testutil.PerformRequest(t, stack.router, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/api/plans"`)
}

func TestRouter_WebhookReceivesRawBody(t *testing.T) {
	stack := setupStack(t, 100)
	raw := []byte("{\n  \"id\": \"evt_raw\",\n  \"type\": \"customer.created\"\n}")

	stack.svc.Verifier.On("Verify", raw, "t=1,v1=sig").
		Return(&billing.ProviderEvent{ID: "evt_raw", Type: "customer.created"}, nil)

	w := testutil.PerformRequest(t, stack.router, http.MethodPost, "/api/webhooks/stripe", raw, map[string]string{"Stripe-Signature": "t=1,v1=sig"})
	assert.Equal(t, http.StatusOK, w.Code)
	body := testutil.DecodeJSON(t, w)
	assert.Equal(t, true, body["received"])
	assert.Equal(t, false, body["handled"])
	stack.svc.Verifier.AssertExpectations(t)
}

func TestRouter_RegisterAndMe(t *testing.T) {
	stack := setupStack(t, 100)

	w := testutil.PerformRequest(t, stack.router, http.MethodPost, "/api/auth/register", map[string]string{
		"email": "Jane@Example.com", "password": "correct-horse", "firstName": "Jane",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token := testutil.DecodeJSON(t, w)["data"].(map[string]interface{})["token"].(string)

	w = testutil.PerformRequest(t, stack.router, http.MethodGet, "/api/users/me", nil, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jane@example.com", testutil.DecodeJSON(t, w)["data"].(map[string]interface{})["email"])
}

func TestServer_ShutdownClosesDatabase(t *testing.T) {
	stack := setupStack(t, 100)
	db := stack.svc.DBContext.DB

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := NewServer(config.ServerSettings{Port: "0"}, stack.router, db, testutil.SetupTestLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "database client is closed after shutdown")
}

func TestServer_ListenFailure(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	port := occupied.Addr().(*net.TCPAddr).Port
	server := NewServer(config.ServerSettings{Port: strconv.Itoa(port)}, http.NotFoundHandler(), nil, testutil.SetupTestLogger(t))
	server.httpServer.Addr = "127.0.0.1:" + strconv.Itoa(port)

	assert.Error(t, server.Run(context.Background()))
}
