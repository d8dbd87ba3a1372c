package rates

import (
	"shiprates/internal/core/domain/model/cart"
)

// RouteType identifies one of the four mutually exclusive pricing paths.
// Local delivery and freight forwarding short-circuit the quote: no packing
// and no carrier call happen on those paths.
type RouteType int

const (
	// RouteUnknown represents an invalid or undefined route.
	// This value (0) helps catch uninitialized RouteType values.
	RouteUnknown RouteType = iota

	// RouteLocalDelivery covers home-country destinations whose postal code
	// is in the configured local-delivery zone.
	RouteLocalDelivery

	// RouteDomestic covers all other home-country destinations.
	RouteDomestic

	// RouteInternationalMilitary covers international carts flagged with the
	// military customer signal.
	RouteInternationalMilitary

	// RouteFreightForwarding covers every remaining international cart.
	RouteFreightForwarding
)

// String returns the wire spelling of the route type.
func (r RouteType) String() string {
	switch r {
	case RouteLocalDelivery:
		return "local_delivery"
	case RouteDomestic:
		return "domestic"
	case RouteInternationalMilitary:
		return "international_military"
	case RouteFreightForwarding:
		return "freight_forwarding"
	default:
		return "unknown"
	}
}

// RouteDecision is the classifier's output: the selected pricing path plus
// the derived customer type and international flag. It is a pure function of
// destination and cart item properties and has no independent lifecycle.
type RouteDecision struct {
	routeType     RouteType
	customerType  cart.CustomerType
	international bool
}

// NewRouteDecision creates a RouteDecision.
func NewRouteDecision(routeType RouteType, customerType cart.CustomerType, international bool) RouteDecision {
	return RouteDecision{
		routeType:     routeType,
		customerType:  customerType,
		international: international,
	}
}

// RouteType returns the selected pricing path.
func (d RouteDecision) RouteType() RouteType {
	return d.routeType
}

// CustomerType returns the customer type derived from the cart items.
func (d RouteDecision) CustomerType() cart.CustomerType {
	return d.customerType
}

// International reports whether the destination is outside the home country.
func (d RouteDecision) International() bool {
	return d.international
}
