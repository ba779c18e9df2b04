package request

import (
	"errors"
	"strings"

	"konveksi_checkout/internal/domain/entities"
)

var ErrUnknownSessionEvent = errors.New("unknown session event")

// GatewayNotificationRequest is the Mercado Pago webhook body. Older
// notifications carry only ?topic=payment&id=... in the query string.
type GatewayNotificationRequest struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ResolvePaymentID returns the provider payment id, or "" when the
// notification is not about a payment.
func (r GatewayNotificationRequest) ResolvePaymentID(queryTopic, queryID string) string {
	topic := strings.TrimSpace(r.Type)
	if topic == "" {
		topic = strings.TrimSpace(queryTopic)
	}
	if topic != "" && !strings.EqualFold(topic, "payment") {
		return ""
	}
	if id := strings.TrimSpace(r.Data.ID); id != "" {
		return id
	}
	return strings.TrimSpace(queryID)
}

// SessionEventRequest relays the gateway's browser callback for one session.
type SessionEventRequest struct {
	Event          string `json:"event" binding:"required"`
	TransactionRef string `json:"transaction_ref"`
	Reason         string `json:"reason"`
}

func (r SessionEventRequest) ToOutcome() (entities.GatewayOutcome, error) {
	ref := strings.TrimSpace(r.TransactionRef)
	reason := strings.TrimSpace(r.Reason)
	switch strings.ToLower(strings.TrimSpace(r.Event)) {
	case "success":
		return entities.OutcomeSucceeded(ref), nil
	case "pending":
		return entities.OutcomePendingManual(ref), nil
	case "error":
		return entities.OutcomeFailed(reason), nil
	case "close", "closed":
		return entities.OutcomeDismissed(reason), nil
	}
	return entities.GatewayOutcome{}, ErrUnknownSessionEvent
}
