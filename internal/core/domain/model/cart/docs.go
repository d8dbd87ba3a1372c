// Package cart models the incoming checkout cart: the destination address,
// the items to ship, and the typed values extracted from each item's loosely
// structured property map. All parsing of that side channel (customer-type
// signals, dimension overrides) happens here, once, at construction, so the
// rest of the domain only ever sees strongly typed values.
package cart
