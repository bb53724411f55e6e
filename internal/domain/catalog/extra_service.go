package catalog

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/validators"
)

// ExtraService is an add-on (wax, interior valet, ...) sold on top of a plan.
type ExtraService struct {
	ID          string `validate:"required,uuid4"`
	Name        string `validate:"required,min=1,max=100"`
	Description string `validate:"max=2000"`
	PriceCents  int64  `validate:"min=0"`
	Currency    string `validate:"required,len=3,lowercase"`
	Active      bool
	CreatedAt   time.Time `validate:"required"`
	UpdatedAt   time.Time
}

// Validate for validating ExtraService struct
func (s *ExtraService) Validate() error {
	return validators.Struct(s)
}

// ExtraServiceInput carries the writable fields of an extra service.
type ExtraServiceInput struct {
	Name        string `validate:"required,min=1,max=100"`
	Description string `validate:"max=2000"`
	PriceCents  int64  `validate:"min=0"`
	Currency    string `validate:"omitempty,len=3"`
	Active      *bool
}
