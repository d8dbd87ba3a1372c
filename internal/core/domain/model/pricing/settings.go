package pricing

import (
	"errors"
	"strings"

	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/packing"
	"shiprates/internal/pkg/guard"
)

// ErrSettingsAreNotConstructed indicates that Settings were not created via
// NewSettings.
var ErrSettingsAreNotConstructed = errors.New("Settings must be created via NewSettings constructor")

// Settings is the immutable configuration snapshot a quote runs against:
// the home country, the local-delivery zip set, the box catalog, the fee and
// lead-time tables, the priority surcharge, the carrier service allow-list,
// and the shipper address handed to the carrier contract.
type Settings struct { //nolint:recvcheck //using for validation
	homeCountry     string
	localZips       map[string]struct{}
	boxTypes        []packing.BoxType
	handlingFees    HandlingFeeTable
	leadTimes       LeadTimeTable
	priorityFee     kernel.Money
	allowedServices map[string]struct{}
	shipperAddress  cart.Address

	guard guard.ConstructorGuard
}

// NewSettings creates a Settings snapshot. The home country defaults to "US"
// when empty; zip and service lists are copied into sets.
func NewSettings(
	homeCountry string,
	localZips []string,
	boxTypes []packing.BoxType,
	handlingFees HandlingFeeTable,
	leadTimes LeadTimeTable,
	priorityFee kernel.Money,
	allowedServices []string,
	shipperAddress cart.Address,
) (Settings, error) {
	if err := shipperAddress.Validate(); err != nil {
		return Settings{}, err
	}

	homeCountry = strings.ToUpper(strings.TrimSpace(homeCountry))
	if homeCountry == "" {
		homeCountry = "US"
	}

	zipSet := make(map[string]struct{}, len(localZips))
	for _, raw := range localZips {
		if zip, err := cart.NewPostalCode(raw); err == nil {
			zipSet[zip.String()] = struct{}{}
		}
	}

	serviceSet := make(map[string]struct{}, len(allowedServices))
	for _, code := range allowedServices {
		if code != "" {
			serviceSet[code] = struct{}{}
		}
	}

	return Settings{
		homeCountry:     homeCountry,
		localZips:       zipSet,
		boxTypes:        boxTypes,
		handlingFees:    handlingFees,
		leadTimes:       leadTimes,
		priorityFee:     priorityFee,
		allowedServices: serviceSet,
		shipperAddress:  shipperAddress,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the settings were created through the constructor.
func (s Settings) Validate() error {
	return s.guard.Validate(ErrSettingsAreNotConstructed)
}

// HomeCountry returns the upper-cased home country code.
func (s Settings) HomeCountry() string {
	return s.homeCountry
}

// IsLocalZip reports whether a normalized postal code is in the
// local-delivery zone.
func (s Settings) IsLocalZip(postalCode cart.PostalCode) bool {
	_, ok := s.localZips[postalCode.String()]
	return ok
}

// BoxTypes returns the box catalog.
func (s Settings) BoxTypes() []packing.BoxType {
	return s.boxTypes
}

// HandlingFees returns the per-order handling-fee table.
func (s Settings) HandlingFees() HandlingFeeTable {
	return s.handlingFees
}

// LeadTimes returns the SKU lead-time table.
func (s Settings) LeadTimes() LeadTimeTable {
	return s.leadTimes
}

// PriorityFee returns the flat priority surcharge.
func (s Settings) PriorityFee() kernel.Money {
	return s.priorityFee
}

// IsAllowedService reports whether a carrier service code is on the
// configured allow-list. Codes outside the list are routine filtering, not
// errors.
func (s Settings) IsAllowedService(serviceCode string) bool {
	_, ok := s.allowedServices[serviceCode]
	return ok
}

// ShipperAddress returns the origin address handed to the carrier contract.
func (s Settings) ShipperAddress() cart.Address {
	return s.shipperAddress
}
