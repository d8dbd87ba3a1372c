package services

import (
	"time"

	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/pricing"
	"shiprates/internal/core/domain/model/rates"
)

// Offer shapes for the two synthesized, non-carrier routes, and the suffixes
// applied to the priority variant of every carrier-backed offer.
const (
	localDeliveryName = "Local Delivery"
	localDeliveryCode = "LOCAL_DELIVERY"

	freightForwardingName = "Freight Forwarding"
	freightForwardingCode = "FREIGHT_FORWARDING"
	freightForwardingDesc = "Billed separately by your freight forwarder"

	prioritySuffixName = " Priority"
	prioritySuffixCode = "_PRIORITY"
	priorityDesc       = "Expedited processing"

	freightWindowMinDays = 14
	freightWindowMaxDays = 21
)

// RateAssembler combines parsed carrier rates, the fee tables, and the
// schedule arithmetic into the final priced offers. Every carrier rate that
// survives the allow-list yields exactly two offers: the standard one and a
// priority variant at a flat surcharge with a compressed lead time.
type RateAssembler struct {
	schedule Schedule
}

// NewRateAssembler creates a RateAssembler.
func NewRateAssembler(schedule Schedule) RateAssembler {
	return RateAssembler{schedule: schedule}
}

// Assemble prices the carrier rates for the given cart. Rates whose service
// code is not on the settings allow-list are silently dropped. The returned
// slice is non-nil; empty means no offers, which is a valid outcome.
func (a RateAssembler) Assemble(
	carrierRates []rates.CarrierRate,
	c cart.Cart,
	settings pricing.Settings,
	now time.Time,
) []rates.PricedOffer {
	leadDays := a.schedule.MaxLeadTime(c.Items(), settings.LeadTimes())
	priorityDays := a.schedule.PriorityLeadTime(leadDays)

	offers := make([]rates.PricedOffer, 0, 2*len(carrierRates))
	for _, rate := range carrierRates {
		if rate.Validate() != nil || !settings.IsAllowedService(rate.ServiceCode()) {
			continue
		}

		standardPrice := rate.TotalCharge().Add(settings.HandlingFees().FeeFor(rate.ServiceCode()))

		standardShip := a.schedule.ShipDate(leadDays, now)
		offers = append(offers, rates.PricedOffer{
			Name:     rate.ServiceName(),
			Code:     rate.ServiceCode(),
			Price:    standardPrice,
			Currency: c.Currency(),
			Window: rates.NewPointDateWindow(
				a.schedule.DeliveryDate(standardShip, rate.TransitDays()),
			),
		})

		priorityShip := a.schedule.ShipDate(priorityDays, now)
		offers = append(offers, rates.PricedOffer{
			Name:        rate.ServiceName() + prioritySuffixName,
			Code:        rate.ServiceCode() + prioritySuffixCode,
			Price:       standardPrice.Add(settings.PriorityFee()),
			Description: priorityDesc,
			Currency:    c.Currency(),
			Window: rates.NewPointDateWindow(
				a.schedule.DeliveryDate(priorityShip, rate.TransitDays()),
			),
		})
	}

	return offers
}

// LocalDeliveryOffer synthesizes the zero-priced next-business-day offer for
// the local-delivery route; no packing or carrier call backs it.
func (a RateAssembler) LocalDeliveryOffer(c cart.Cart, now time.Time) rates.PricedOffer {
	return rates.PricedOffer{
		Name:     localDeliveryName,
		Code:     localDeliveryCode,
		Currency: c.Currency(),
		Window:   rates.NewPointDateWindow(a.schedule.NextBusinessDay(now)),
	}
}

// FreightForwardingOffer synthesizes the zero-priced deferred-invoicing offer
// for the freight-forwarding route. Its 14 to 21 business-day window is the
// only offer where the window's min and max differ.
func (a RateAssembler) FreightForwardingOffer(c cart.Cart, now time.Time) rates.PricedOffer {
	return rates.PricedOffer{
		Name:        freightForwardingName,
		Code:        freightForwardingCode,
		Description: freightForwardingDesc,
		Currency:    c.Currency(),
		Window: rates.NewDateWindow(
			a.schedule.AddBusinessDays(now, freightWindowMinDays),
			a.schedule.AddBusinessDays(now, freightWindowMaxDays),
		),
	}
}
