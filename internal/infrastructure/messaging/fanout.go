package messaging

import (
	"context"
	"errors"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"
)

// FanOut publishes every event to all of its publishers and joins their errors.
type FanOut []interfaces.IEventPublisher

var _ interfaces.IEventPublisher = FanOut(nil)

func (f FanOut) Publish(ctx context.Context, ev entities.Event) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
