package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// RateLimitSettings configures the per-client request ceiling.
type RateLimitSettings struct {
	WindowMS    int64  `mapstructure:"window_ms" validate:"min=1000"`
	MaxRequests int    `mapstructure:"max_requests" validate:"min=1"`
	RedisURL    string `mapstructure:"redis_url"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}
	return nil
}

// Window returns the limiter window as a duration.
func (s *RateLimitSettings) Window() time.Duration {
	return time.Duration(s.WindowMS) * time.Millisecond
}
