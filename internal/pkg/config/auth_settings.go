package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds token signing and webhook verification secrets.
type AuthSettings struct {
	JWTSecret           string        `mapstructure:"jwt_secret" validate:"required,min=16"`
	TokenTTL            time.Duration `mapstructure:"token_ttl" validate:"min=1m"`
	StripeWebhookSecret string        `mapstructure:"stripe_webhook_secret"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}
