package entities

import "time"

// PaymentKind is the kind of payment attempted against an order.
type PaymentKind string

const (
	PaymentKindDP        PaymentKind = "DP"
	PaymentKindFull      PaymentKind = "FULL"
	PaymentKindRemainder PaymentKind = "REMAINDER"
)

// PaymentKinds lists every kind in display order.
var PaymentKinds = []PaymentKind{PaymentKindDP, PaymentKindFull, PaymentKindRemainder}

func (k PaymentKind) Valid() bool {
	switch k {
	case PaymentKindDP, PaymentKindFull, PaymentKindRemainder:
		return true
	}
	return false
}

// GatewayStatus is the status of a transaction as last reported by the gateway.
// It is advisory; settlement is only trusted once the backend reflects it.
type GatewayStatus string

const (
	GatewayStatusPending   GatewayStatus = "PENDING"
	GatewayStatusSettled   GatewayStatus = "SETTLED"
	GatewayStatusFailed    GatewayStatus = "FAILED"
	GatewayStatusCancelled GatewayStatus = "CANCELLED"
)

// PaymentTransaction is one attempt to pay an order.
type PaymentTransaction struct {
	ID             string        `json:"id,omitempty"`
	OrderID        string        `json:"order_id"`
	Kind           PaymentKind   `json:"kind"`
	Amount         int64         `json:"amount"`
	GatewayStatus  GatewayStatus `json:"gateway_status"`
	TransactionRef string        `json:"transaction_ref,omitempty"`
	CreatedAt      time.Time     `json:"created_at,omitempty"`
}

// PaymentSession is what the backend hands out for a new transaction: the token
// used to open the gateway surface.
type PaymentSession struct {
	OrderID      string      `json:"order_id"`
	Kind         PaymentKind `json:"kind"`
	SessionToken string      `json:"session_token"`
	Amount       int64       `json:"amount"`
	CreatedAt    time.Time   `json:"created_at"`
}
