package queries

import (
	"errors"

	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/guard"
)

// ErrGetShippingOptionsQueryIsNotConstructed indicates the query was not
// created via NewGetShippingOptionsQuery.
var ErrGetShippingOptionsQueryIsNotConstructed = errors.New(
	"GetShippingOptionsQuery must be created via NewGetShippingOptionsQuery constructor",
)

// GetShippingOptionsQuery represents a request to quote shipping options for
// a checkout cart. Each query gets its own quote ID, used to correlate the
// carrier exchange with the originating request.
type GetShippingOptionsQuery struct { //nolint:recvcheck //using for validation
	quoteID kernel.UUID
	cart    cart.Cart

	guard guard.ConstructorGuard
}

// NewGetShippingOptionsQuery creates the query. The cart must be constructed.
func NewGetShippingOptionsQuery(c cart.Cart) (GetShippingOptionsQuery, error) {
	if err := c.Validate(); err != nil {
		return GetShippingOptionsQuery{}, err
	}

	return GetShippingOptionsQuery{
		quoteID: kernel.NewUUID(),
		cart:    c,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShippingOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingOptionsQueryIsNotConstructed)
}

// QuoteID returns the correlation identifier for this quote.
func (q GetShippingOptionsQuery) QuoteID() kernel.UUID {
	return q.quoteID
}

// Cart returns the cart to quote.
func (q GetShippingOptionsQuery) Cart() cart.Cart {
	return q.cart
}
