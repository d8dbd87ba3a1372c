package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/packing"
	"shiprates/internal/core/domain/model/pricing"
	"shiprates/internal/core/domain/model/rates"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/core/ports"
)

// ErrCarrierUnavailable marks an upstream carrier failure. It is distinct
// from a successful quote with zero offers: downstream consumers must never
// conflate "no options available" with "the carrier could not be asked".
var ErrCarrierUnavailable = errors.New("carrier rate service unavailable")

// ShippingOptionResponse is the read model returned to the transport layer.
// Price is the total in minor currency units, serialized as a plain cent
// string the checkout consumes verbatim.
type ShippingOptionResponse struct {
	Name        string
	Code        string
	Price       string
	Description string
	Currency    string
	DeliveryMin time.Time
	DeliveryMax time.Time
}

// GetShippingOptionsQueryHandler runs the full quote: classify the route,
// short-circuit the two non-carrier paths, otherwise pack the cart, obtain
// carrier rates, and assemble priced offers.
//
// The handler is pure per request apart from the injected clock and the two
// outbound ports; identical inputs produce identical offers.
type GetShippingOptionsQueryHandler struct {
	settings   ports.SettingsProvider
	carrier    ports.CarrierRateClient
	clock      ports.Clock
	classifier services.RouteClassifier
	assembler  services.RateAssembler
}

// NewGetShippingOptionsQueryHandler creates the quote handler.
func NewGetShippingOptionsQueryHandler(
	settings ports.SettingsProvider,
	carrier ports.CarrierRateClient,
	clock ports.Clock,
) GetShippingOptionsQueryHandler {
	return GetShippingOptionsQueryHandler{
		settings:   settings,
		carrier:    carrier,
		clock:      clock,
		classifier: services.NewRouteClassifier(),
		assembler:  services.NewRateAssembler(services.NewSchedule()),
	}
}

// Handle quotes the cart. An empty response is a valid "no shippable
// options" outcome; errors are reserved for configuration problems and
// upstream failures.
func (h GetShippingOptionsQueryHandler) Handle(
	ctx context.Context,
	query GetShippingOptionsQuery,
) ([]ShippingOptionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	settings, err := h.settings.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading rate settings: %w", err)
	}

	c := query.Cart()
	now := h.clock.Now()

	decision := h.classifier.Classify(c, settings)
	switch decision.RouteType() {
	case rates.RouteLocalDelivery:
		return toResponses([]rates.PricedOffer{h.assembler.LocalDeliveryOffer(c, now)}), nil
	case rates.RouteFreightForwarding:
		return toResponses([]rates.PricedOffer{h.assembler.FreightForwardingOffer(c, now)}), nil
	}

	shippable := c.ShippableItems()
	if len(shippable) == 0 {
		return []ShippingOptionResponse{}, nil
	}

	boxes, err := packing.Pack(shippable, settings.BoxTypes())
	if err != nil {
		return nil, err
	}

	carrierRates, err := h.carrier.GetRates(ctx, buildRateRequest(query.QuoteID(), boxes, settings, c, now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCarrierUnavailable, err)
	}

	return toResponses(h.assembler.Assemble(carrierRates, c, settings, now)), nil
}

func buildRateRequest(
	quoteID kernel.UUID,
	boxes []*packing.PackedBox,
	settings pricing.Settings,
	c cart.Cart,
	now time.Time,
) ports.RateRequest {
	packages := make([]ports.Package, 0, len(boxes))
	for _, box := range boxes {
		boxType := box.BoxType()
		packages = append(packages, ports.Package{
			WeightLb: box.TotalWeight().Pounds(),
			LengthIn: boxType.Length(),
			WidthIn:  boxType.Width(),
			HeightIn: boxType.Height(),
		})
	}

	return ports.RateRequest{
		QuoteID:     quoteID,
		Origin:      settings.ShipperAddress(),
		Destination: c.Destination(),
		Packages:    packages,
		QuotedAt:    now,
	}
}

func toResponses(offers []rates.PricedOffer) []ShippingOptionResponse {
	responses := make([]ShippingOptionResponse, 0, len(offers))
	for _, offer := range offers {
		responses = append(responses, ShippingOptionResponse{
			Name:        offer.Name,
			Code:        offer.Code,
			Price:       offer.Price.String(),
			Description: offer.Description,
			Currency:    offer.Currency,
			DeliveryMin: offer.Window.Min,
			DeliveryMax: offer.Window.Max,
		})
	}

	return responses
}
