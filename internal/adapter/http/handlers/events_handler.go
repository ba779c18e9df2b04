package handlers

import (
	"log"
	"net/http"
	"time"

	"konveksi_checkout/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const defaultKeepAlive = 25 * time.Second

// EventSubscriber is satisfied by the in-process event broker.
type EventSubscriber interface {
	Subscribe(filter func(entities.Event) bool) (<-chan entities.Event, func())
}

// EventsHandler streams the shopper's checkout events (order created, cart
// updated, payment outcome) as server-sent events.
type EventsHandler struct {
	subscriber EventSubscriber
	keepAlive  time.Duration
}

func NewEventsHandler(subscriber EventSubscriber) *EventsHandler {
	return &EventsHandler{subscriber: subscriber, keepAlive: defaultKeepAlive}
}

// Stream godoc
// @Summary      Stream checkout events
// @Tags         checkout
// @Produce      text/event-stream
// @Security     Bearer
// @Success      200
// @Router       /checkout/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	events, cancel := h.subscriber.Subscribe(func(ev entities.Event) bool {
		return ev.Subject == principal.Subject
	})
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()
	log.Printf("[checkout][events] stream open subject=%s", principal.Subject)

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()
	for {
		select {
		case <-c.Request.Context().Done():
			log.Printf("[checkout][events] stream closed subject=%s", principal.Subject)
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent(ev.EventType, ev)
			c.Writer.Flush()
		case t := <-ticker.C:
			c.SSEvent("ping", t.UTC().Format(time.RFC3339))
			c.Writer.Flush()
		}
	}
}
