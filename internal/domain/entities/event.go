package entities

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated   = "order.created"
	EventCartUpdated    = "cart.updated"
	EventPaymentOutcome = "payment.outcome"
)

// Event is the envelope published to checkout listeners.
type Event struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Subject       string          `json:"subject,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type OrderCreatedPayload struct {
	OrderID     string `json:"order_id"`
	Total       int64  `json:"total"`
	ProductLine string `json:"product_line"`
	BuyNow      bool   `json:"buy_now"`
}

type CartUpdatedPayload struct {
	OrderID    string   `json:"order_id"`
	ProductIDs []string `json:"removed_product_ids"`
}

type PaymentOutcomePayload struct {
	OrderID string              `json:"order_id"`
	Kind    PaymentKind         `json:"kind"`
	Outcome GatewayOutcome      `json:"outcome"`
	Status  PaymentResultStatus `json:"status"`
}

// Principal identifies the shopper behind a request. BearerToken is forwarded
// untouched to the order backend.
type Principal struct {
	Subject     string `json:"subject"`
	BearerToken string `json:"-"`
}
