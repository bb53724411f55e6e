//go:build unit
// +build unit

package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error passes through", Conflict("email taken"), http.StatusConflict, "conflict"},
		{"wrapped app error", fmt.Errorf("register: %w", Forbidden("nope")), http.StatusForbidden, "forbidden"},
		{"not found sentinel", fmt.Errorf("plan 1: %w", ErrNotFound), http.StatusNotFound, "not_found"},
		{"invalid sentinel", fmt.Errorf("postcode: %w", ErrInvalid), http.StatusBadRequest, "bad_request"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := Wrap(ErrNotFound, http.StatusNotFound, "not_found", "subscription missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "subscription missing: not found", err.Error())
}
