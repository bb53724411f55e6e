package validators

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var postcodePattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]?[0-9][A-Z]{2}$`)

// NormalizePostcode uppercases a UK-style postcode and puts a single space before
// the three-character inward code. ok is false when the input is not a postcode.
func NormalizePostcode(raw string) (normalized string, ok bool) {
	compact := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	if !postcodePattern.MatchString(compact) {
		return "", false
	}
	return compact[:len(compact)-3] + " " + compact[len(compact)-3:], true
}

// OutwardCode returns the district part of a normalized postcode ("SW1A 1AA" -> "SW1A").
func OutwardCode(normalized string) string {
	if i := strings.IndexByte(normalized, ' '); i > 0 {
		return normalized[:i]
	}
	return normalized
}

// PostcodeValidation is registered as the "postcode" tag.
func PostcodeValidation(fl validator.FieldLevel) bool {
	_, ok := NormalizePostcode(fl.Field().String())
	return ok
}

// New returns a validator with the project's custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	// registration only fails on empty tags or nil funcs
	_ = v.RegisterValidation("postcode", PostcodeValidation)
	return v
}
