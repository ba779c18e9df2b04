package response

import (
	"time"

	"konveksi_checkout/internal/domain/entities"
)

type PaymentActionResponse struct {
	Kind        string `json:"kind"`
	Enabled     bool   `json:"enabled"`
	Reason      string `json:"reason,omitempty"`
	Amount      int64  `json:"amount"`
	AmountKnown bool   `json:"amount_known"`
}

type PaymentActionsResponse struct {
	OrderID          string                  `json:"order_id"`
	Actions          []PaymentActionResponse `json:"actions"`
	Reason           string                  `json:"reason,omitempty"`
	SettlementStatus string                  `json:"settlement_status,omitempty"`
	DPStatus         string                  `json:"dp_status,omitempty"`
}

func FromPaymentActions(order entities.Order, a entities.PaymentActions) PaymentActionsResponse {
	out := PaymentActionsResponse{
		OrderID:          a.OrderID,
		Actions:          make([]PaymentActionResponse, 0, len(a.Actions)),
		Reason:           a.Reason,
		SettlementStatus: string(order.SettlementStatus),
		DPStatus:         string(order.DPStatus),
	}
	for _, act := range a.Actions {
		out.Actions = append(out.Actions, PaymentActionResponse{
			Kind:        string(act.Kind),
			Enabled:     act.Enabled,
			Reason:      act.Reason,
			Amount:      act.Amount,
			AmountKnown: act.AmountKnown,
		})
	}
	return out
}

// PaymentSessionResponse tells the storefront which gateway session to open.
// The outcome arrives later through the gateway routes.
type PaymentSessionResponse struct {
	OrderID      string    `json:"order_id"`
	Kind         string    `json:"kind"`
	SessionToken string    `json:"session_token"`
	Amount       int64     `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromPaymentSession(s entities.PaymentSession) PaymentSessionResponse {
	return PaymentSessionResponse{
		OrderID:      s.OrderID,
		Kind:         string(s.Kind),
		SessionToken: s.SessionToken,
		Amount:       s.Amount,
		CreatedAt:    s.CreatedAt,
	}
}
