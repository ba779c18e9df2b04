package interfaces

import (
	"context"
	"errors"

	"konveksi_checkout/internal/domain/entities"
)

var (
	// ErrUnknownPaymentSession: no open session carries the given token, either
	// because it was never opened here or because its waiter already gave up.
	ErrUnknownPaymentSession = errors.New("unknown payment session")
	// ErrOutcomeAlreadyDelivered: the session already received its outcome.
	ErrOutcomeAlreadyDelivered = errors.New("payment outcome already delivered")
)

// IPaymentGateway is the provider side of the payment surface (Mercado Pago).
//
// The gateway reports back through two channels: the provider webhook, which
// carries only a provider payment id (LookupPayment resolves it), and the
// browser relay of the checkout callbacks. Both end in Deliver, which hands the
// outcome to the session opened by IPaymentSurface.Open.
type IPaymentGateway interface {
	LookupPayment(ctx context.Context, providerPaymentID string) (sessionToken string, outcome entities.GatewayOutcome, err error)
	Deliver(sessionToken string, outcome entities.GatewayOutcome) error
}
