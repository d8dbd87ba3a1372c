package cart

import (
	"errors"

	"shiprates/internal/pkg/guard"
)

// ErrCartIsNotConstructed indicates that a Cart was not created via NewCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart is the full quote input: a destination, the cart lines, and the
// checkout's currency and locale. A cart with no shippable items is valid;
// it simply yields no offers.
type Cart struct { //nolint:recvcheck //using for validation
	destination Address
	items       []Item
	currency    string
	locale      string

	guard guard.ConstructorGuard
}

// NewCart creates a Cart. The destination must be constructed; items may be
// empty. Currency defaults to USD when the checkout omits it.
func NewCart(destination Address, items []Item, currency string, locale string) (Cart, error) {
	if err := destination.Validate(); err != nil {
		return Cart{}, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Cart{}, err
		}
	}

	if currency == "" {
		currency = "USD"
	}

	return Cart{
		destination: destination,
		items:       items,
		currency:    currency,
		locale:      locale,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the cart was created through the constructor.
func (c Cart) Validate() error {
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// Destination returns the shipping destination.
func (c Cart) Destination() Address {
	return c.destination
}

// Items returns all cart lines, shippable or not.
func (c Cart) Items() []Item {
	return c.items
}

// ShippableItems returns only the lines that participate in packing.
func (c Cart) ShippableItems() []Item {
	shippable := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		if item.RequiresShipping() {
			shippable = append(shippable, item)
		}
	}
	return shippable
}

// Currency returns the checkout currency code.
func (c Cart) Currency() string {
	return c.currency
}

// Locale returns the checkout locale, if supplied.
func (c Cart) Locale() string {
	return c.locale
}

// CustomerType scans the items for the first recognized customer-type signal.
// Item order decides ties; absence of any signal yields Standard.
func (c Cart) CustomerType() CustomerType {
	for _, item := range c.items {
		if ct, ok := item.CustomerType(); ok {
			return ct
		}
	}
	return Standard
}
