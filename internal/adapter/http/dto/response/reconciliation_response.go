package response

import (
	"time"

	"konveksi_checkout/internal/domain/entities"
)

type PendingTransactionResponse struct {
	Kind           string    `json:"kind"`
	TransactionRef string    `json:"transaction_ref,omitempty"`
	Amount         int64     `json:"amount"`
	GatewayStatus  string    `json:"gateway_status"`
	MarkedAt       time.Time `json:"marked_at"`
}

type ReconciliationResponse struct {
	OrderID      string                      `json:"order_id,omitempty"`
	HasDraft     bool                        `json:"has_draft"`
	Pending      *PendingTransactionResponse `json:"pending,omitempty"`
	PriorPending *PendingTransactionResponse `json:"prior_pending,omitempty"`
	LastOutcome  *entities.GatewayOutcome    `json:"last_outcome,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
	ExpiresAt    time.Time                   `json:"expires_at"`
}

// FromReconciliationRecord omits the session token; it is only meaningful to
// the gateway relay.
func FromReconciliationRecord(r entities.ReconciliationRecord) ReconciliationResponse {
	return ReconciliationResponse{
		OrderID:      r.OrderID,
		HasDraft:     r.Draft != nil,
		Pending:      fromPendingTransaction(r.Pending),
		PriorPending: fromPendingTransaction(r.PriorPending),
		LastOutcome:  r.LastOutcome,
		CreatedAt:    r.CreatedAt,
		ExpiresAt:    r.ExpiresAt,
	}
}

func fromPendingTransaction(p *entities.PendingTransaction) *PendingTransactionResponse {
	if p == nil {
		return nil
	}
	return &PendingTransactionResponse{
		Kind:           string(p.Kind),
		TransactionRef: p.TransactionRef,
		Amount:         p.Amount,
		GatewayStatus:  string(p.GatewayStatus),
		MarkedAt:       p.MarkedAt,
	}
}

type ConfirmationResponse struct {
	Status string                  `json:"status"`
	Order  *OrderResponse          `json:"order,omitempty"`
	Record *ReconciliationResponse `json:"record,omitempty"`
}

func FromConfirmation(c entities.Confirmation) ConfirmationResponse {
	out := ConfirmationResponse{Status: string(c.Status)}
	if c.Order != nil {
		o := FromOrder(*c.Order)
		out.Order = &o
	}
	if c.Record != nil {
		r := FromReconciliationRecord(*c.Record)
		out.Record = &r
	}
	return out
}
