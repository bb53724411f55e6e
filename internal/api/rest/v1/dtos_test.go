//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   VerifyRequest
		shouldErr bool
	}{
		{"Valid", VerifyRequest{Code: "0123456789abcdef0123456789abcdef", LocationID: testLocationID}, false},
		{"Short code", VerifyRequest{Code: "0123", LocationID: testLocationID}, true},
		{"Non-hex code", VerifyRequest{Code: "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", LocationID: testLocationID}, true},
		{"Missing location", VerifyRequest{Code: "0123456789abcdef0123456789abcdef"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestConfirmCodeRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ConfirmCodeRequest
		shouldErr bool
	}{
		{"Valid", ConfirmCodeRequest{Email: "a@example.com", Code: "123456"}, false},
		{"Valid with purpose", ConfirmCodeRequest{Email: "a@example.com", Code: "123456", Purpose: "password_reset"}, false},
		{"Unknown purpose", ConfirmCodeRequest{Email: "a@example.com", Code: "123456", Purpose: "other"}, true},
		{"Letters in code", ConfirmCodeRequest{Email: "a@example.com", Code: "12a456"}, true},
		{"Bad email", ConfirmCodeRequest{Email: "nope", Code: "123456"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
