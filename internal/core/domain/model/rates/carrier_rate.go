package rates

import (
	"errors"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

var (
	// ErrCarrierRateIsNotConstructed indicates that a CarrierRate was not
	// created via NewCarrierRate.
	ErrCarrierRateIsNotConstructed = errors.New("CarrierRate must be created via NewCarrierRate constructor")

	// ErrServiceCodeIsRequired indicates an empty carrier service identifier.
	ErrServiceCodeIsRequired = errs.NewValueIsRequiredError("serviceCode")
)

// CarrierRate is one service offering parsed out of a carrier response:
// the service identifier and display name, the total charge in cents, and the
// transit time in business days. It is ephemeral, produced once per request
// by the carrier adapter.
type CarrierRate struct { //nolint:recvcheck //using for validation
	serviceCode string
	serviceName string
	totalCharge kernel.Money
	transitDays int

	guard guard.ConstructorGuard
}

// NewCarrierRate creates a CarrierRate. Transit times below one business day
// are clamped to one; a carrier never delivers same-day through this contract.
func NewCarrierRate(serviceCode, serviceName string, totalCharge kernel.Money, transitDays int) (CarrierRate, error) {
	if serviceCode == "" {
		return CarrierRate{}, ErrServiceCodeIsRequired
	}

	if serviceName == "" {
		serviceName = serviceCode
	}

	if transitDays < 1 {
		transitDays = 1
	}

	return CarrierRate{
		serviceCode: serviceCode,
		serviceName: serviceName,
		totalCharge: totalCharge,
		transitDays: transitDays,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the rate was created through the constructor.
func (r CarrierRate) Validate() error {
	return r.guard.Validate(ErrCarrierRateIsNotConstructed)
}

// ServiceCode returns the carrier service identifier, e.g. "FEDEX_GROUND".
func (r CarrierRate) ServiceCode() string {
	return r.serviceCode
}

// ServiceName returns the display name of the service.
func (r CarrierRate) ServiceName() string {
	return r.serviceName
}

// TotalCharge returns the carrier's base charge.
func (r CarrierRate) TotalCharge() kernel.Money {
	return r.totalCharge
}

// TransitDays returns the transit time in business days, at least one.
func (r CarrierRate) TransitDays() int {
	return r.transitDays
}
