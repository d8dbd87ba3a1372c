package cart

import (
	"errors"
	"strings"

	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

var (
	// ErrAddressIsNotConstructed indicates that an Address was not created via NewAddress.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

	// ErrCountryIsRequired indicates an empty destination country.
	ErrCountryIsRequired = errs.NewValueIsRequiredError("country")
)

// Address is the shipping destination. The country code is normalized to
// upper case at construction so comparisons are case-insensitive, and the
// postal code is normalized per PostalCode rules.
type Address struct { //nolint:recvcheck //using for validation
	country    string
	postalCode PostalCode
	province   string
	city       string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated destination address.
// Province and city are informational and may be empty.
func NewAddress(country string, postalCode string, province string, city string) (Address, error) {
	address := Address{
		province: province,
		city:     city,
		guard:    guard.NewConstructorGuard(),
	}

	postal, postalErr := NewPostalCode(postalCode)
	if postalErr == nil {
		address.postalCode = postal
	}

	if err := errors.Join(address.setCountry(country), postalErr); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Country returns the upper-cased ISO country code.
func (a Address) Country() string {
	return a.country
}

// PostalCode returns the normalized postal code.
func (a Address) PostalCode() PostalCode {
	return a.postalCode
}

// Province returns the destination province or state, if supplied.
func (a Address) Province() string {
	return a.province
}

// City returns the destination city, if supplied.
func (a Address) City() string {
	return a.city
}

// IsInCountry reports whether the destination lies in the given country,
// compared case-insensitively.
func (a Address) IsInCountry(country string) bool {
	return a.country == strings.ToUpper(strings.TrimSpace(country))
}

func (a *Address) setCountry(country string) error {
	normalized := strings.ToUpper(strings.TrimSpace(country))
	if normalized == "" {
		return ErrCountryIsRequired
	}

	a.country = normalized
	return nil
}
