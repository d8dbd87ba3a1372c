package pricing

import (
	"shiprates/internal/core/domain/model/kernel"
)

// groundServices is the fixed set of carrier service codes billed at the
// ground handling fee; every other service class pays the air fee.
func groundServices() map[string]struct{} {
	return map[string]struct{}{
		"FEDEX_GROUND":         {},
		"GROUND_HOME_DELIVERY": {},
	}
}

// IsGroundService reports whether a carrier service code belongs to the
// ground service class.
func IsGroundService(serviceCode string) bool {
	_, ok := groundServices()[serviceCode]
	return ok
}

// HandlingFeeTable is the per-order handling fee, split by service class:
// one fee for ground services and one for everything else.
type HandlingFeeTable struct {
	ground kernel.Money
	other  kernel.Money
}

// NewHandlingFeeTable creates a handling-fee table.
func NewHandlingFeeTable(ground, other kernel.Money) HandlingFeeTable {
	return HandlingFeeTable{ground: ground, other: other}
}

// FeeFor returns the per-order handling fee for a carrier service code.
func (t HandlingFeeTable) FeeFor(serviceCode string) kernel.Money {
	if IsGroundService(serviceCode) {
		return t.ground
	}
	return t.other
}

// Ground returns the ground-class fee.
func (t HandlingFeeTable) Ground() kernel.Money {
	return t.ground
}

// Other returns the fee for every non-ground service class.
func (t HandlingFeeTable) Other() kernel.Money {
	return t.other
}
