package request

import (
	"strings"

	"konveksi_checkout/internal/domain/entities"
)

type CartLineRequest struct {
	ProductID       string            `json:"product_id" binding:"required"`
	ProductLine     string            `json:"product_line"`
	Quantity        int               `json:"quantity"`
	UnitPrice       int64             `json:"unit_price"`
	SelectedOptions map[string]string `json:"selected_options"`
}

func (r CartLineRequest) ToEntity() entities.CartLine {
	var opts map[string]string
	if len(r.SelectedOptions) > 0 {
		opts = make(map[string]string, len(r.SelectedOptions))
		for k, v := range r.SelectedOptions {
			opts[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	return entities.CartLine{
		ProductID:       strings.TrimSpace(r.ProductID),
		ProductLine:     strings.TrimSpace(r.ProductLine),
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		SelectedOptions: opts,
	}
}

// CartCheckoutRequest is the cart selection the shopper wants to order.
type CartCheckoutRequest struct {
	Lines []CartLineRequest `json:"lines" binding:"required,dive"`
	Note  string            `json:"note"`
}

func (r CartCheckoutRequest) CartLines() []entities.CartLine {
	out := make([]entities.CartLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		out = append(out, l.ToEntity())
	}
	return out
}

// BuyNowRequest orders a single product straight from its page, bypassing the
// cart.
type BuyNowRequest struct {
	Line CartLineRequest `json:"line" binding:"required"`
	Note string          `json:"note"`
}
