package validators

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	shared     *validator.Validate
	sharedOnce sync.Once
)

// Struct validates s with the shared validator and flattens field errors into a
// single message.
func Struct(s interface{}) error {
	sharedOnce.Do(func() { shared = New() })

	err := shared.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
