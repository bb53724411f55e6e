package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ServerSettings holds the HTTP listener and request handling settings.
type ServerSettings struct {
	Port           string `mapstructure:"port" validate:"required,numeric"`
	Environment    string `mapstructure:"environment" validate:"required"`
	FrontendURL    string `mapstructure:"frontend_url" validate:"omitempty,url"`
	UploadsDir     string `mapstructure:"uploads_dir" validate:"required"`
	BodyLimitBytes int64  `mapstructure:"body_limit_bytes" validate:"min=1"`
	// TrustedProxies lists the proxy IPs or CIDRs whose X-Forwarded-For is honoured.
	// Empty means the client IP is always the socket peer.
	TrustedProxies []string `mapstructure:"trusted_proxies" validate:"dive,cidr|ip"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}
	return nil
}

// IsProduction reports whether the process runs with the production environment name.
func (s *ServerSettings) IsProduction() bool {
	return s.Environment == EnvProduction
}

// AllowedOrigins returns the CORS allow-list: the frontend URL without its trailing
// slash (omitted when unset) followed by the fixed local and deployment origins.
func (s *ServerSettings) AllowedOrigins() []string {
	origins := make([]string, 0, len(defaultAllowedOrigins)+1)
	if frontend := strings.TrimSuffix(strings.TrimSpace(s.FrontendURL), "/"); frontend != "" {
		origins = append(origins, frontend)
	}
	return append(origins, defaultAllowedOrigins...)
}
