package messaging

import (
	"context"
	"log"
	"sync"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"
)

const defaultSubscriberBuffer = 16

// Broker delivers checkout events to in-process subscribers. A subscriber that
// does not keep up loses events rather than blocking the publisher.
type Broker struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]subscription
}

type subscription struct {
	filter func(entities.Event) bool
	ch     chan entities.Event
}

var _ interfaces.IEventPublisher = (*Broker)(nil)

func NewBroker() *Broker {
	return &Broker{subs: make(map[int]subscription)}
}

// Subscribe registers a listener. A nil filter receives every event. The
// returned cancel func closes the channel.
func (b *Broker) Subscribe(filter func(entities.Event) bool) (<-chan entities.Event, func()) {
	ch := make(chan entities.Event, defaultSubscriberBuffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = subscription{filter: filter, ch: ch}
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

func (b *Broker) Publish(_ context.Context, ev entities.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, s := range b.subs {
		if s.filter != nil && !s.filter(ev) {
			continue
		}
		select {
		case s.ch <- ev:
		default:
			log.Printf("[checkout][broker] subscriber %d full, dropped event_type=%s event_id=%s", id, ev.EventType, ev.EventID)
		}
	}
	return nil
}

// BySubject keeps the events of one shopper.
func BySubject(subject string) func(entities.Event) bool {
	return func(ev entities.Event) bool { return ev.Subject == subject }
}
