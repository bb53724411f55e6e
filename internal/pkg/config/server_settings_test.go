//go:build unit
// +build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerSettings_AllowedOrigins(t *testing.T) {
	tests := []struct {
		name        string
		frontendURL string
		expected    []string
	}{
		{
			name:        "frontend url with trailing slash",
			frontendURL: "https://bella.example.com/",
			expected: []string{
				"https://bella.example.com",
				"http://localhost:5173",
				"http://localhost:3000",
				"https://bella-six-ashy.vercel.app",
			},
		},
		{
			name:        "frontend url unset",
			frontendURL: "",
			expected: []string{
				"http://localhost:5173",
				"http://localhost:3000",
				"https://bella-six-ashy.vercel.app",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &ServerSettings{FrontendURL: tt.frontendURL}
			assert.Equal(t, tt.expected, s.AllowedOrigins())
		})
	}
}

func TestServerSettings_Validate(t *testing.T) {
	valid := ServerSettings{Port: "3001", Environment: EnvDevelopment, UploadsDir: "uploads", BodyLimitBytes: 10 << 20}
	require.NoError(t, valid.Validate())

	badPort := valid
	badPort.Port = "http"
	require.Error(t, badPort.Validate())

	badURL := valid
	badURL.FrontendURL = "not a url"
	require.Error(t, badURL.Validate())

	proxies := valid
	proxies.TrustedProxies = []string{"10.0.0.0/8", "192.0.2.10"}
	require.NoError(t, proxies.Validate())

	badProxy := valid
	badProxy.TrustedProxies = []string{"load-balancer"}
	require.Error(t, badProxy.Validate())
}

func TestRateLimitSettings_Window(t *testing.T) {
	s := RateLimitSettings{WindowMS: 900000, MaxRequests: 1000}
	require.NoError(t, s.Validate())
	assert.Equal(t, 15*time.Minute, s.Window())

	s.MaxRequests = 0
	assert.Error(t, s.Validate())
}
