package partners

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/validators"
)

// Location is a car-wash site run by a partner.
type Location struct {
	ID          string  `validate:"required,uuid4"`
	PartnerID   string  `validate:"required,uuid4"`
	Name        string  `validate:"required,min=1,max=255"`
	AddressLine string  `validate:"required,max=255"`
	City        string  `validate:"required,max=100"`
	Postcode    string  `validate:"required,postcode"`
	Latitude    float64 `validate:"min=-90,max=90"`
	Longitude   float64 `validate:"min=-180,max=180"`
	Active      bool
	CreatedAt   time.Time `validate:"required"`
	UpdatedAt   time.Time
}

// Validate for validating Location struct
func (l *Location) Validate() error {
	return validators.Struct(l)
}

// LocationQuery filters location listings.
type LocationQuery struct {
	PartnerID      string `validate:"omitempty,uuid4"`
	PostcodePrefix string `validate:"max=8"`
	ActiveOnly     bool
	Limit          int `validate:"min=0,max=200"`
	Offset         int `validate:"min=0"`
}

// Validate for validating LocationQuery struct
func (q *LocationQuery) Validate() error {
	return validators.Struct(q)
}

// LocationInput carries the writable fields of a location.
type LocationInput struct {
	Name        string  `validate:"required,min=1,max=255"`
	AddressLine string  `validate:"required,max=255"`
	City        string  `validate:"required,max=100"`
	Postcode    string  `validate:"required,postcode"`
	Latitude    float64 `validate:"min=-90,max=90"`
	Longitude   float64 `validate:"min=-180,max=180"`
	Active      *bool
}
