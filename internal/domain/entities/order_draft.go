package entities

import "github.com/shopspring/decimal"

// CartLine is a cart selection as sent by the storefront, or the single line of
// a "buy now" request.
type CartLine struct {
	ProductID       string            `json:"product_id"`
	ProductLine     string            `json:"product_line"`
	Quantity        int               `json:"quantity"`
	UnitPrice       int64             `json:"unit_price"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
}

// OrderDraft is a normalized order-creation request. It carries the single
// down-payment fraction the order will be charged under.
//
// AdvisoryTotal is the client-side sum; the backend total wins once the order
// is created.
type OrderDraft struct {
	Lines         []OrderLine     `json:"lines"`
	Note          string          `json:"note,omitempty"`
	ProductLine   string          `json:"product_line"`
	DPFraction    decimal.Decimal `json:"dp_fraction"`
	AdvisoryTotal int64           `json:"advisory_total"`
	BuyNow        bool            `json:"buy_now,omitempty"`
}

// ProductIDs returns the distinct product ids in line order.
func (d OrderDraft) ProductIDs() []string {
	seen := make(map[string]bool, len(d.Lines))
	ids := make([]string, 0, len(d.Lines))
	for _, l := range d.Lines {
		if seen[l.ProductID] {
			continue
		}
		seen[l.ProductID] = true
		ids = append(ids, l.ProductID)
	}
	return ids
}

// TotalDiscrepancy is reported when the backend total differs from the
// client-side sum of the submitted lines.
type TotalDiscrepancy struct {
	AdvisoryTotal int64 `json:"advisory_total"`
	BackendTotal  int64 `json:"backend_total"`
}

// OrderSubmission is the result of submitting a draft to the backend.
type OrderSubmission struct {
	Order       Order             `json:"order"`
	Discrepancy *TotalDiscrepancy `json:"discrepancy,omitempty"`
}
