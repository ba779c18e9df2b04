package entities

import "github.com/shopspring/decimal"

// SettlementFlag is the paid/unpaid flag the backend keeps for the down payment
// and for the full settlement of an order.
type SettlementFlag string

const (
	SettlementUnpaid SettlementFlag = "UNPAID"
	SettlementPaid   SettlementFlag = "PAID"
)

// OrderLine is one production line of an order. Prices are in the smallest
// currency unit.
type OrderLine struct {
	ProductID       string            `json:"product_id"`
	ProductLine     string            `json:"product_line,omitempty"`
	Quantity        int               `json:"quantity"`
	UnitPrice       int64             `json:"unit_price"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
}

// Subtotal returns UnitPrice × Quantity.
func (l OrderLine) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Order is the authoritative production order as returned by the order backend.
//
// Lifecycle:
//   - DP path:   UNPAID/UNPAID -> PAID/UNPAID -> PAID/PAID
//   - Full path: UNPAID/UNPAID -> */PAID in a single transaction
//
// Once SettlementStatus is PAID the order is terminal for payment purposes.
// A locally cached copy of an Order is never used for payment decisions.
type Order struct {
	ID               string               `json:"id"`
	Lines            []OrderLine          `json:"lines"`
	Total            int64                `json:"total"`
	DPStatus         SettlementFlag       `json:"dp_status"`
	SettlementStatus SettlementFlag       `json:"settlement_status"`
	ProductLine      string               `json:"product_line,omitempty"`
	DPFraction       decimal.Decimal      `json:"dp_fraction"`
	DPPaidAmount     int64                `json:"dp_paid_amount,omitempty"`
	Transactions     []PaymentTransaction `json:"transactions,omitempty"`
}

func (o Order) IsSettled() bool {
	return o.SettlementStatus == SettlementPaid
}

func (o Order) IsDownPaymentRecorded() bool {
	return o.DPStatus == SettlementPaid
}

// LinesTotal is the client-side sum of the order lines.
func (o Order) LinesTotal() int64 {
	var sum int64
	for _, l := range o.Lines {
		sum += l.Subtotal()
	}
	return sum
}

// RecordedDownPayment returns the down payment amount the backend recorded as
// paid. It prefers the explicit dp_paid_amount and falls back to the settled DP
// transactions. ok is false when the backend reported neither.
func (o Order) RecordedDownPayment() (amount int64, ok bool) {
	if o.DPPaidAmount > 0 {
		return o.DPPaidAmount, true
	}
	for _, tx := range o.Transactions {
		if tx.Kind == PaymentKindDP && tx.GatewayStatus == GatewayStatusSettled {
			amount += tx.Amount
			ok = true
		}
	}
	return amount, ok
}

// IsKindConfirmed reports whether the backend already reflects the effect of a
// payment of the given kind.
func (o Order) IsKindConfirmed(kind PaymentKind) bool {
	switch kind {
	case PaymentKindDP:
		return o.IsDownPaymentRecorded() || o.IsSettled()
	case PaymentKindFull, PaymentKindRemainder:
		return o.IsSettled()
	}
	return false
}
