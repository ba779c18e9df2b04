package interfaces

import (
	"context"

	"konveksi_checkout/internal/domain/entities"
)

// ICartService removes purchased lines from the shopper's cart once a payment
// is confirmed by the backend.

type ICartService interface {
	RemoveLines(ctx context.Context, principal entities.Principal, productIDs []string) error
}
