// Package rates holds the rating-side domain model: the route decision that
// selects a pricing path, the parsed carrier rate, the priced offer returned
// to the checkout, and the transit-time parser that turns carrier free text
// into business days.
package rates
