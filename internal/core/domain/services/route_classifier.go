package services

import (
	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/pricing"
	"shiprates/internal/core/domain/model/rates"
)

// RouteClassifier selects the pricing path for a cart. Classification is a
// total function: every cart maps to exactly one of the four route types.
type RouteClassifier struct{}

// NewRouteClassifier creates a RouteClassifier.
func NewRouteClassifier() RouteClassifier {
	return RouteClassifier{}
}

// Classify evaluates the routing rules in fixed priority order, first match
// wins:
//
//  1. Home-country destination with a local-delivery zip: local delivery.
//  2. Any other home-country destination: domestic.
//  3. International destination with the military customer signal on any
//     item: international military.
//  4. Every remaining international destination: freight forwarding.
//
// Country comparison is case-insensitive (the address normalizes its country
// at construction) and zip membership runs on the normalized postal code.
func (RouteClassifier) Classify(c cart.Cart, settings pricing.Settings) rates.RouteDecision {
	destination := c.Destination()
	customerType := c.CustomerType()

	if destination.IsInCountry(settings.HomeCountry()) {
		if settings.IsLocalZip(destination.PostalCode()) {
			return rates.NewRouteDecision(rates.RouteLocalDelivery, customerType, false)
		}
		return rates.NewRouteDecision(rates.RouteDomestic, customerType, false)
	}

	if customerType == cart.InternationalMilitary {
		return rates.NewRouteDecision(rates.RouteInternationalMilitary, customerType, true)
	}

	return rates.NewRouteDecision(rates.RouteFreightForwarding, customerType, true)
}
