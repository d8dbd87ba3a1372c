package cart

import (
	"errors"
	"fmt"
	"strconv"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed indicates that an Item was not created via NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrSkuIsRequired indicates an empty SKU identifier.
	ErrSkuIsRequired = errs.NewValueIsRequiredError("sku")
)

// Property keys recognized on the cart item property map. Everything else in
// the map is carried by upstream systems for their own purposes and ignored
// here.
const (
	propCustomerType = "customer_type"
	propLength       = "length"
	propWidth        = "width"
	propHeight       = "height"
)

// Item is one line of the checkout cart, with the loosely structured property
// map already parsed into typed values. Quantity expands into that many unit
// entries during packing; unit weight is normalized to pounds at construction.
//
// An item with requiresShipping false never contributes to packing or weight
// totals.
type Item struct { //nolint:recvcheck //using for validation
	sku              string
	name             string
	quantity         int
	unitWeight       kernel.Weight
	price            kernel.Money
	requiresShipping bool
	dimensions       *Dimensions
	customerType     CustomerType
	hasCustomerType  bool

	guard guard.ConstructorGuard
}

// NewItem creates an Item from the raw cart line fields. The unit weight is
// given in grams, as the checkout sends it. The properties map is scanned for
// a customer-type signal and for dimension overrides; an incomplete or
// non-positive set of dimension overrides leaves the item dimension-less
// rather than failing the whole item.
func NewItem(
	sku string,
	name string,
	quantity int,
	weightGrams float64,
	price kernel.Money,
	requiresShipping bool,
	properties map[string]string,
) (Item, error) {
	item := Item{
		name:             name,
		price:            price,
		requiresShipping: requiresShipping,
		guard:            guard.NewConstructorGuard(),
	}

	weight, weightErr := kernel.NewWeightFromGrams(weightGrams)
	if weightErr == nil {
		item.unitWeight = weight
	}

	if err := errors.Join(item.setSku(sku), item.setQuantity(quantity), weightErr); err != nil {
		return Item{}, err
	}

	item.applyProperties(properties)
	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Sku returns the SKU identifier.
func (i Item) Sku() string {
	return i.sku
}

// Name returns the display name of the item.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of units in this cart line.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitWeight returns the weight of a single unit.
func (i Item) UnitWeight() kernel.Weight {
	return i.unitWeight
}

// TotalWeight returns the weight of the whole line, or zero when the item
// does not require shipping.
func (i Item) TotalWeight() kernel.Weight {
	if !i.requiresShipping {
		return kernel.Weight{}
	}
	return i.unitWeight.MultiplyBy(i.quantity)
}

// Price returns the unit price of the item.
func (i Item) Price() kernel.Money {
	return i.price
}

// RequiresShipping reports whether the item participates in packing.
func (i Item) RequiresShipping() bool {
	return i.requiresShipping
}

// Dimensions returns the parsed dimension override, or nil when the item has
// no complete set of dimensions.
func (i Item) Dimensions() *Dimensions {
	return i.dimensions
}

// CustomerType returns the customer-type signal carried on this item, if any.
func (i Item) CustomerType() (CustomerType, bool) {
	return i.customerType, i.hasCustomerType
}

func (i *Item) setSku(sku string) error {
	if sku == "" {
		return ErrSkuIsRequired
	}

	i.sku = sku
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	i.quantity = quantity
	return nil
}

// applyProperties extracts the recognized side-channel signals. Malformed
// values degrade to absence instead of failing the item.
func (i *Item) applyProperties(properties map[string]string) {
	if raw, ok := properties[propCustomerType]; ok {
		if ct, recognized := ParseCustomerType(raw); recognized {
			i.customerType = ct
			i.hasCustomerType = true
		}
	}

	length, lengthOK := parsePositiveFloat(properties[propLength])
	width, widthOK := parsePositiveFloat(properties[propWidth])
	height, heightOK := parsePositiveFloat(properties[propHeight])
	if lengthOK && widthOK && heightOK {
		if dims, err := NewDimensions(length, width, height); err == nil {
			i.dimensions = &dims
		}
	}
}

func parsePositiveFloat(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
