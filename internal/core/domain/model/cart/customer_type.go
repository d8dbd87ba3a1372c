package cart

// CustomerType is the customer classification carried as a side-channel
// signal on cart item properties. It decides which international pricing path
// applies when the destination is outside the home country.
type CustomerType int

const (
	// Standard is the default when no recognized signal is present.
	Standard CustomerType = iota

	// InternationalMilitary marks carts shipped to military mail addresses.
	InternationalMilitary

	// FreightForwarding marks carts handed to a freight forwarder with
	// deferred invoicing.
	FreightForwarding

	// FedexOwnAccount marks customers shipping on their own carrier account.
	FedexOwnAccount
)

// customerTypeSignals maps the recognized property values to customer types.
// Anything else in the property map is ignored.
func customerTypeSignals() map[string]CustomerType {
	return map[string]CustomerType{
		"international_military": InternationalMilitary,
		"freight_forwarding":     FreightForwarding,
		"fedex_own_account":      FedexOwnAccount,
	}
}

// ParseCustomerType maps a raw property value to a CustomerType.
// Unrecognized values yield (Standard, false).
func ParseCustomerType(raw string) (CustomerType, bool) {
	ct, ok := customerTypeSignals()[raw]
	if !ok {
		return Standard, false
	}
	return ct, true
}

// String returns the wire spelling of the customer type.
func (c CustomerType) String() string {
	switch c {
	case InternationalMilitary:
		return "international_military"
	case FreightForwarding:
		return "freight_forwarding"
	case FedexOwnAccount:
		return "fedex_own_account"
	default:
		return "standard"
	}
}
