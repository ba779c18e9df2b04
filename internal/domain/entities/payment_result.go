package entities

// PaymentResultStatus is the coordinator's verdict after a gateway outcome was
// reconciled with the backend.
type PaymentResultStatus string

const (
	PaymentConfirmed            PaymentResultStatus = "confirmed"
	PaymentAwaitingConfirmation PaymentResultStatus = "awaiting_confirmation"
	PaymentFailed               PaymentResultStatus = "failed"
	PaymentCancelled            PaymentResultStatus = "cancelled"
)

// Advice tells the shopper what to do next.
//   - AdviceRetry: nothing happened, paying again is safe.
//   - AdviceCheckStatus: something may have happened, check the order first.
type Advice string

const (
	AdviceNone        Advice = "none"
	AdviceRetry       Advice = "retry"
	AdviceCheckStatus Advice = "check_status"
)

type PaymentResult struct {
	OrderID string              `json:"order_id"`
	Kind    PaymentKind         `json:"kind"`
	Status  PaymentResultStatus `json:"status"`
	Outcome GatewayOutcome      `json:"outcome"`
	Advice  Advice              `json:"advice"`
	Message string              `json:"message"`
	Order   *Order              `json:"order,omitempty"`
}
