package cart

import (
	"strings"
	"unicode"

	"shiprates/internal/pkg/errs"
)

// ErrPostalCodeIsRequired is returned when a postal code is empty after
// normalization.
var ErrPostalCodeIsRequired = errs.NewValueIsRequiredError("postalCode")

// postalCodeSignificantLength is how many leading characters identify a
// delivery zone. ZIP+4 suffixes and carrier routing segments beyond this
// prefix never affect routing.
const postalCodeSignificantLength = 5

// PostalCode is an immutable, normalized postal code. Normalization trims the
// input, drops embedded whitespace, and keeps only the first five significant
// characters, so "33172-1234" and " 331 72 " both normalize to "33172".
// Normalization is idempotent.
type PostalCode struct {
	value string
}

// NewPostalCode creates a normalized PostalCode.
// Returns ErrPostalCodeIsRequired if nothing significant remains.
func NewPostalCode(raw string) (PostalCode, error) {
	normalized := normalizePostalCode(raw)
	if normalized == "" {
		return PostalCode{}, ErrPostalCodeIsRequired
	}
	return PostalCode{value: normalized}, nil
}

// String returns the normalized form.
func (p PostalCode) String() string {
	return p.value
}

// IsZero reports whether the postal code is unset.
func (p PostalCode) IsZero() bool {
	return p.value == ""
}

func normalizePostalCode(raw string) string {
	var b strings.Builder
	taken := 0
	for _, r := range strings.TrimSpace(raw) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
		taken++
		if taken >= postalCodeSignificantLength {
			break
		}
	}
	return b.String()
}
