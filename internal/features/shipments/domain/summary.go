package domain

// Summary holds dashboard metrics derived from a shipment collection.
type Summary struct {
	// Total is the number of shipments summarized.
	Total int `json:"total"`
	// Counts holds the number of shipments per display status. Every status is present.
	Counts map[DisplayStatus]int `json:"counts"`
	// OutForDelivery is the number of shipments out for delivery.
	OutForDelivery int `json:"out_for_delivery"`
	// Delayed is the number of shipments in Exception.
	Delayed int `json:"delayed"`
	// Revenue is the sum of all shipment amounts.
	Revenue float64 `json:"revenue"`
	// Unmapped is the number of shipments whose status has no display label.
	Unmapped int `json:"unmapped"`
}

// Summarize tallies shipments by display status. Shipments with an unknown
// backend status are counted in Unmapped and nowhere else.
func Summarize(shipments []Shipment) Summary {
	summary := Summary{
		Total:  len(shipments),
		Counts: make(map[DisplayStatus]int, len(DisplayStatuses())),
	}
	for _, status := range DisplayStatuses() {
		summary.Counts[status] = 0
	}

	for _, s := range shipments {
		summary.Revenue += s.AmountValue

		display, err := ToDisplay(s.Status)
		if err != nil {
			summary.Unmapped++
			continue
		}
		summary.Counts[display]++
	}

	summary.OutForDelivery = summary.Counts[DisplayOutForDelivery]
	summary.Delayed = summary.Counts[DisplayException]

	return summary
}
