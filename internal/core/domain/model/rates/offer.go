package rates

import (
	"time"

	"shiprates/internal/core/domain/model/kernel"
)

// DateWindow is a delivery-date range. Carrier-backed offers always collapse
// Min and Max to the same computed date; the freight-forwarding offer is the
// one case where the two differ.
type DateWindow struct {
	Min time.Time
	Max time.Time
}

// NewDateWindow creates a window from two dates.
func NewDateWindow(minDate, maxDate time.Time) DateWindow {
	return DateWindow{Min: minDate, Max: maxDate}
}

// NewPointDateWindow creates a window collapsed to a single date.
func NewPointDateWindow(date time.Time) DateWindow {
	return DateWindow{Min: date, Max: date}
}

// PricedOffer is the externally visible result of the quote: a named,
// priced, dated shipping option. Price is carried as integer cents and
// serialized to the checkout as a plain cent string.
type PricedOffer struct {
	Name        string
	Code        string
	Price       kernel.Money
	Description string
	Currency    string
	Window      DateWindow
}
