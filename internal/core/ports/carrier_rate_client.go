package ports

import (
	"context"
	"time"

	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/rates"
)

// Package is one physical box handed to the carrier contract: its gross
// weight in pounds and its declared dimensions in inches.
type Package struct {
	WeightLb float64
	LengthIn float64
	WidthIn  float64
	HeightIn float64
}

// RateRequest carries everything the carrier needs to quote a shipment.
// QuotedAt is the request's time reference, used to resolve dated transit
// commitments to business days; QuoteID correlates the carrier exchange with
// the originating quote.
type RateRequest struct {
	QuoteID     kernel.UUID
	Origin      cart.Address
	Destination cart.Address
	Packages    []Package
	QuotedAt    time.Time
}

// CarrierRateClient is the outbound contract to the carrier's rate-quoting
// API. Implementations own transport, credentials, and the mapping from the
// carrier's wire format to parsed CarrierRate values; the quote-time
// reference is passed in so transit commitments can be resolved to business
// days deterministically.
//
// A nil-error, empty-slice response means the carrier offered nothing for
// this shipment; callers must not treat it as a failure.
type CarrierRateClient interface {
	GetRates(ctx context.Context, request RateRequest) ([]rates.CarrierRate, error)
}
