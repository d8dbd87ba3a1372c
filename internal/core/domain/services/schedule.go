package services

import (
	"time"

	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/pricing"
)

// priorityLeadTimeReduction is how many business days the priority variant
// shaves off the standard lead time, floored at one day.
const priorityLeadTimeReduction = 2

// Schedule implements the business-day arithmetic behind ship and delivery
// dates. A business day is any day that is not Saturday or Sunday, evaluated
// in UTC to avoid timezone drift.
type Schedule struct{}

// NewSchedule creates a Schedule.
func NewSchedule() Schedule {
	return Schedule{}
}

// MaxLeadTime returns the maximum lead time over all cart items, each
// resolved against the lead-time table with its default fallback. An empty
// item set yields the default, and the result never drops below the default
// even if every per-SKU value resolves to zero or less.
func (Schedule) MaxLeadTime(items []cart.Item, table pricing.LeadTimeTable) int {
	maxDays := table.Default()
	for _, item := range items {
		if days := table.DaysFor(item.Sku()); days > maxDays {
			maxDays = days
		}
	}
	return maxDays
}

// PriorityLeadTime compresses a standard lead time for the priority variant:
// two business days faster, never below one.
func (Schedule) PriorityLeadTime(standardDays int) int {
	if days := standardDays - priorityLeadTimeReduction; days > 1 {
		return days
	}
	return 1
}

// AddBusinessDays advances the date one calendar day at a time, counting only
// non-weekend days, until n business days have been counted. n <= 0 returns
// the input unchanged.
func (Schedule) AddBusinessDays(date time.Time, n int) time.Time {
	date = date.UTC()
	for counted := 0; counted < n; {
		date = date.AddDate(0, 0, 1)
		if !isWeekend(date) {
			counted++
		}
	}
	return date
}

// NextBusinessDay advances at least one calendar day, then continues until
// the date lands on a non-weekend day.
func (Schedule) NextBusinessDay(date time.Time) time.Time {
	date = date.UTC().AddDate(0, 0, 1)
	for isWeekend(date) {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// ShipDate computes the fulfillment date: the next business day when there is
// no lead time, otherwise the lead time counted out in business days.
func (s Schedule) ShipDate(leadDays int, from time.Time) time.Time {
	if leadDays <= 0 {
		return s.NextBusinessDay(from)
	}
	return s.AddBusinessDays(from, leadDays)
}

// DeliveryDate computes the delivery date from a ship date and the carrier's
// transit time. A non-positive transit time leaves the ship date unchanged.
func (s Schedule) DeliveryDate(shipDate time.Time, transitDays int) time.Time {
	if transitDays <= 0 {
		return shipDate
	}
	return s.AddBusinessDays(shipDate, transitDays)
}

// BusinessDaysBetween counts the business days strictly after from up to and
// including to. A to before from counts zero.
func (Schedule) BusinessDaysBetween(from, to time.Time) int {
	from = from.UTC()
	to = to.UTC()

	days := 0
	for date := from.AddDate(0, 0, 1); !date.After(to); date = date.AddDate(0, 0, 1) {
		if !isWeekend(date) {
			days++
		}
	}
	return days
}

func isWeekend(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
