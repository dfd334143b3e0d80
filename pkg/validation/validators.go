package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// slugRegex is the only accepted slug shape: lowercase letters, digits and
// hyphens. Slugs are public lookup keys and are matched exactly.
var slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// RegisterValidators registers custom validators to the validator instance
// and switches reported field names to their json tags so validation errors
// match the wire format the client submitted.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("slug", ValidSlug)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidSlug validates that a string is a URL-safe slug
func ValidSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// IsValidSlug reports whether s satisfies the slug pattern. Exported for
// callers outside the validator pipeline (seeding, usecases).
func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}
