//go:build unit
// +build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RequestCounters(t *testing.T) {
	m := New()

	done := m.RequestStarted()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpInFlight))
	done("get", "/health", http.StatusOK, 10*time.Millisecond)

	assert.Equal(t, float64(0), testutil.ToFloat64(m.httpInFlight))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/health", "200")))
}

func TestMetrics_DomainCounters(t *testing.T) {
	m := New()

	m.RateLimited()
	m.WashVerified()
	m.WashVerified()
	m.WebhookEvent("invoice.paid", "handled")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.rateLimited))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.washes))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.webhookEvents.WithLabelValues("invoice.paid", "handled")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.WashVerified()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bella_api_washes_verified_total 1")
}
