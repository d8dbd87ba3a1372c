package pricing

// LeadTimeTable maps SKUs to fulfillment lead times in business days, with a
// default for SKUs the table does not know.
type LeadTimeTable struct {
	defaultDays int
	bySku       map[string]int
}

// NewLeadTimeTable creates a lead-time table. A negative default is treated
// as zero; the bySku map is copied.
func NewLeadTimeTable(defaultDays int, bySku map[string]int) LeadTimeTable {
	if defaultDays < 0 {
		defaultDays = 0
	}

	copied := make(map[string]int, len(bySku))
	for sku, days := range bySku {
		copied[sku] = days
	}

	return LeadTimeTable{defaultDays: defaultDays, bySku: copied}
}

// Default returns the fallback lead time.
func (t LeadTimeTable) Default() int {
	return t.defaultDays
}

// DaysFor returns the lead time for a SKU, falling back to the default when
// the SKU is absent.
func (t LeadTimeTable) DaysFor(sku string) int {
	if days, ok := t.bySku[sku]; ok {
		return days
	}
	return t.defaultDays
}
