package entities

const (
	ReasonAlreadySettled         = "already settled"
	ReasonDownPaymentRecorded    = "down payment already recorded"
	ReasonDownPaymentNotRecorded = "down payment not yet recorded"
)

// PaymentAction is one payment option for an order. A disabled action always
// carries the reason it was disabled.
type PaymentAction struct {
	Kind        PaymentKind `json:"kind"`
	Enabled     bool        `json:"enabled"`
	Reason      string      `json:"reason,omitempty"`
	Amount      int64       `json:"amount"`
	AmountKnown bool        `json:"amount_known"`
}

// PaymentActions is the resolver verdict for one authoritative order state.
// Actions is empty when the order is settled; Reason then explains why.
type PaymentActions struct {
	OrderID string          `json:"order_id"`
	Actions []PaymentAction `json:"actions"`
	Reason  string          `json:"reason,omitempty"`
}

func (a PaymentActions) Lookup(kind PaymentKind) (PaymentAction, bool) {
	for _, act := range a.Actions {
		if act.Kind == kind {
			return act, true
		}
	}
	return PaymentAction{}, false
}

func (a PaymentActions) IsEnabled(kind PaymentKind) bool {
	act, ok := a.Lookup(kind)
	return ok && act.Enabled
}

func (a PaymentActions) EnabledKinds() []PaymentKind {
	out := make([]PaymentKind, 0, len(a.Actions))
	for _, act := range a.Actions {
		if act.Enabled {
			out = append(out, act.Kind)
		}
	}
	return out
}

// DisabledReason returns why kind cannot be paid, or "" when it can.
func (a PaymentActions) DisabledReason(kind PaymentKind) string {
	if len(a.Actions) == 0 {
		return a.Reason
	}
	act, ok := a.Lookup(kind)
	if !ok {
		return "unknown payment kind"
	}
	if act.Enabled {
		return ""
	}
	return act.Reason
}
