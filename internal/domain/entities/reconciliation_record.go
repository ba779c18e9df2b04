package entities

import "time"

// PendingTransaction marks a payment whose settlement has not been observed on
// the backend yet.
//
// Outcome is empty while the gateway surface is still open and records the
// gateway verdict that left the marker in place afterwards.
type PendingTransaction struct {
	Kind           PaymentKind   `json:"kind"`
	SessionToken   string        `json:"session_token"`
	TransactionRef string        `json:"transaction_ref,omitempty"`
	Amount         int64         `json:"amount"`
	GatewayStatus  GatewayStatus `json:"gateway_status"`
	Outcome        OutcomeKind   `json:"outcome,omitempty"`
	MarkedAt       time.Time     `json:"marked_at"`
}

// ReachedGateway reports whether the gateway answered for this marker. Such a
// payment may still settle and must not be discarded by a later attempt.
func (p *PendingTransaction) ReachedGateway() bool {
	return p != nil && p.Outcome != ""
}

// ReconciliationRecord is the per-shopper checkout state that survives reloads
// and navigation away to the gateway. It is a cache, never the source of truth.
//
// PriorPending holds an earlier marker that reached the gateway while a newer
// session for the same order is open.
type ReconciliationRecord struct {
	OrderID      string              `json:"order_id,omitempty"`
	Draft        *OrderDraft         `json:"draft,omitempty"`
	Pending      *PendingTransaction `json:"pending,omitempty"`
	PriorPending *PendingTransaction `json:"prior_pending,omitempty"`
	LastOutcome  *GatewayOutcome     `json:"last_outcome,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	ExpiresAt    time.Time           `json:"expires_at"`
}

func (r ReconciliationRecord) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}

func (r ReconciliationRecord) HasPending() bool {
	return r.Pending != nil || r.PriorPending != nil
}

// ConfirmationStatus is what the confirmation view shows.
type ConfirmationStatus string

const (
	ConfirmationNone      ConfirmationStatus = "none"
	ConfirmationConfirmed ConfirmationStatus = "confirmed"
	ConfirmationAwaiting  ConfirmationStatus = "awaiting_confirmation"
	ConfirmationUnpaid    ConfirmationStatus = "unpaid"
)

// Confirmation is the confirmation view verdict, always based on a fresh fetch
// of the order when one is known.
type Confirmation struct {
	Status ConfirmationStatus    `json:"status"`
	Order  *Order                `json:"order,omitempty"`
	Record *ReconciliationRecord `json:"record,omitempty"`
}
