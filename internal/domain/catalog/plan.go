package catalog

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/validators"
)

// Billing intervals.
const (
	IntervalMonth = "month"
	IntervalYear  = "year"
)

// Plan is a subscription tier. WashesPerPeriod of zero means unlimited washes.
type Plan struct {
	ID              string `validate:"required,uuid4"`
	Name            string `validate:"required,min=1,max=100"`
	Description     string `validate:"max=2000"`
	PriceCents      int64  `validate:"min=0"`
	Currency        string `validate:"required,len=3,lowercase"`
	Interval        string `validate:"required,oneof=month year"`
	WashesPerPeriod int    `validate:"min=0"`
	Active          bool
	StripePriceID   *string
	CreatedAt       time.Time `validate:"required"`
	UpdatedAt       time.Time
}

// Validate for validating Plan struct
func (p *Plan) Validate() error {
	return validators.Struct(p)
}

// Unlimited reports whether the plan has no wash allowance.
func (p *Plan) Unlimited() bool {
	return p.WashesPerPeriod == 0
}

// PeriodEnd returns the end of a billing period starting at start.
func (p *Plan) PeriodEnd(start time.Time) time.Time {
	if p.Interval == IntervalYear {
		return start.AddDate(1, 0, 0)
	}
	return start.AddDate(0, 1, 0)
}

// PlanInput carries the writable fields of a plan.
type PlanInput struct {
	Name            string `validate:"required,min=1,max=100"`
	Description     string `validate:"max=2000"`
	PriceCents      int64  `validate:"min=0"`
	Currency        string `validate:"omitempty,len=3"`
	Interval        string `validate:"required,oneof=month year"`
	WashesPerPeriod int    `validate:"min=0"`
	Active          *bool
	StripePriceID   *string
}
