package entities

// OutcomeKind is the terminal outcome of one gateway session. Exactly one
// outcome is delivered per session.
type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomePending OutcomeKind = "pending"
	OutcomeError   OutcomeKind = "error"
	OutcomeClosed  OutcomeKind = "closed"
)

func (k OutcomeKind) Valid() bool {
	switch k {
	case OutcomeSuccess, OutcomePending, OutcomeError, OutcomeClosed:
		return true
	}
	return false
}

// GatewayOutcome is the single value delivered on a session's result channel.
// TransactionRef is set for success and pending, Reason for error and closed.
type GatewayOutcome struct {
	Kind           OutcomeKind `json:"kind"`
	TransactionRef string      `json:"transaction_ref,omitempty"`
	Reason         string      `json:"reason,omitempty"`
}

func OutcomeSucceeded(ref string) GatewayOutcome {
	return GatewayOutcome{Kind: OutcomeSuccess, TransactionRef: ref}
}

func OutcomePendingManual(ref string) GatewayOutcome {
	return GatewayOutcome{Kind: OutcomePending, TransactionRef: ref}
}

func OutcomeFailed(reason string) GatewayOutcome {
	return GatewayOutcome{Kind: OutcomeError, Reason: reason}
}

func OutcomeDismissed(reason string) GatewayOutcome {
	return GatewayOutcome{Kind: OutcomeClosed, Reason: reason}
}

// GatewayStatus maps the outcome onto the advisory transaction status.
func (o GatewayOutcome) GatewayStatus() GatewayStatus {
	switch o.Kind {
	case OutcomeSuccess:
		return GatewayStatusSettled
	case OutcomeError:
		return GatewayStatusFailed
	case OutcomeClosed:
		return GatewayStatusCancelled
	}
	return GatewayStatusPending
}
