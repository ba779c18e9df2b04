package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
)

const natsSubjectPrefix = "checkout."

type natsConn interface {
	Publish(subj string, data []byte) error
	FlushTimeout(timeout time.Duration) error
	Close()
}

// NatsPublisher publishes each event on checkout.<event_type>.
type NatsPublisher struct {
	nc natsConn
}

var _ interfaces.IEventPublisher = (*NatsPublisher)(nil)

func NewNatsPublisher(url string) (*NatsPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("Checkout API"),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("[checkout][nats] disconnected err=%v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("[checkout][nats] reconnected url=%s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.Printf("[checkout][nats] connected url=%s", url)
	return &NatsPublisher{nc: nc}, nil
}

func (p *NatsPublisher) Publish(ctx context.Context, ev entities.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.nc.Publish(natsSubjectPrefix+ev.EventType, data); err != nil {
		log.Printf("[checkout][nats] publish failed event_type=%s order_id=%s err=%v", ev.EventType, ev.CorrelationID, err)
		return err
	}
	return p.nc.FlushTimeout(2 * time.Second)
}

func (p *NatsPublisher) Close() {
	p.nc.Close()
}
