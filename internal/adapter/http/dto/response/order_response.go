package response

import "konveksi_checkout/internal/domain/entities"

type OrderLineResponse struct {
	ProductID       string            `json:"product_id"`
	ProductLine     string            `json:"product_line,omitempty"`
	Quantity        int               `json:"quantity"`
	UnitPrice       int64             `json:"unit_price"`
	Subtotal        int64             `json:"subtotal"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
}

type OrderResponse struct {
	ID               string              `json:"id"`
	Lines            []OrderLineResponse `json:"lines"`
	Total            int64               `json:"total"`
	DPStatus         string              `json:"dp_status"`
	SettlementStatus string              `json:"settlement_status"`
	ProductLine      string              `json:"product_line,omitempty"`
	DPFraction       string              `json:"dp_fraction"`
	DPPaidAmount     int64               `json:"dp_paid_amount,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineResponse{
			ProductID:       l.ProductID,
			ProductLine:     l.ProductLine,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			Subtotal:        l.Subtotal(),
			SelectedOptions: l.SelectedOptions,
		})
	}
	return OrderResponse{
		ID:               o.ID,
		Lines:            lines,
		Total:            o.Total,
		DPStatus:         string(o.DPStatus),
		SettlementStatus: string(o.SettlementStatus),
		ProductLine:      o.ProductLine,
		DPFraction:       o.DPFraction.String(),
		DPPaidAmount:     o.DPPaidAmount,
	}
}

// OrderSubmissionResponse is returned after a checkout. Discrepancy is set
// when the backend total differs from the sum the shopper saw.
type OrderSubmissionResponse struct {
	Order       OrderResponse              `json:"order"`
	Discrepancy *entities.TotalDiscrepancy `json:"discrepancy,omitempty"`
}

func FromOrderSubmission(s entities.OrderSubmission) OrderSubmissionResponse {
	return OrderSubmissionResponse{Order: FromOrder(s.Order), Discrepancy: s.Discrepancy}
}
