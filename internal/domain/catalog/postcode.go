package catalog

import (
	"github.com/bella-carwash/bella-api/internal/domain/partners"
)

// CoverageArea marks a postcode district (outward code) as served.
type CoverageArea struct {
	OutwardCode string
	Region      string
	Active      bool
}

// PostcodeLookup is the answer to "do you wash cars near me".
type PostcodeLookup struct {
	Postcode    string
	OutwardCode string
	Covered     bool
	Region      string
	Locations   []*partners.Location
}
