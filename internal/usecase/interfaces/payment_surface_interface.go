package interfaces

import (
	"context"
	"errors"

	"konveksi_checkout/internal/domain/entities"
)

// ErrPaymentSurfaceUnavailable is returned by Open when the gateway client could
// not be loaded or reached. No session was opened.
var ErrPaymentSurfaceUnavailable = errors.New("payment surface unavailable")

// IPaymentSurface abstracts the external, asynchronously completing payment
// sheet (Mercado Pago checkout).
//
// Open is not a request/response call: the returned channel yields exactly one
// GatewayOutcome and is then closed. Cancelling ctx stops waiting; it does not
// cancel anything the gateway may already have recorded.
type IPaymentSurface interface {
	Open(ctx context.Context, session entities.PaymentSession) (<-chan entities.GatewayOutcome, error)
}
