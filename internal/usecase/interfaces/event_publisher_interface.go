package interfaces

import (
	"context"

	"konveksi_checkout/internal/domain/entities"
)

// IEventPublisher delivers checkout events (order created, cart updated,
// payment outcome) to explicit listeners.

type IEventPublisher interface {
	Publish(ctx context.Context, event entities.Event) error
}
