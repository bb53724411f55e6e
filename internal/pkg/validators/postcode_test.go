//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePostcode(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"sw1a1aa", "SW1A 1AA", true},
		{"  M1  1AE ", "M1 1AE", true},
		{"EC1A 1BB", "EC1A 1BB", true},
		{"B33 8TH", "B33 8TH", true},
		{"12345", "", false},
		{"", "", false},
		{"SW1A 1A", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizePostcode(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutwardCode(t *testing.T) {
	assert.Equal(t, "SW1A", OutwardCode("SW1A 1AA"))
	assert.Equal(t, "M1", OutwardCode("M1 1AE"))
}

func TestPostcodeTag(t *testing.T) {
	type address struct {
		Postcode string `validate:"required,postcode"`
	}

	v := New()
	assert.NoError(t, v.Struct(address{Postcode: "sw1a 1aa"}))
	assert.Error(t, v.Struct(address{Postcode: "nowhere"}))
}
