package usecase

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const eventProducer = "checkout-api"

// eventEmitter publishes checkout events. Publishing is best effort: a failed
// publish is logged and never fails the checkout step that produced it.
type eventEmitter struct {
	publisher interfaces.IEventPublisher
	now       func() time.Time
}

func (e eventEmitter) emit(ctx context.Context, eventType, orderID, subject string, payload any) {
	if e.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[checkout][events] payload marshal failed event_type=%s order_id=%s err=%v", eventType, orderID, err)
		return
	}
	now := time.Now
	if e.now != nil {
		now = e.now
	}
	ev := entities.Event{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		OccurredAt:    now().UTC(),
		Producer:      eventProducer,
		CorrelationID: orderID,
		Subject:       subject,
		Payload:       body,
	}
	if err := e.publisher.Publish(ctx, ev); err != nil {
		log.Printf("[checkout][events] publish failed event_type=%s order_id=%s err=%v", eventType, orderID, err)
	}
}
