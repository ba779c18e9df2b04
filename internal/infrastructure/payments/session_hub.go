package payments

import (
	"context"
	"log"
	"sync"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"
)

type openSession struct {
	orderID   string
	ch        chan entities.GatewayOutcome
	delivered bool
}

// SessionHub routes gateway outcomes to the waiter of the matching session
// token. Each registered session receives at most one outcome; later
// deliveries for the same token are rejected.
type SessionHub struct {
	mu       sync.Mutex
	sessions map[string]*openSession
}

func NewSessionHub() *SessionHub {
	return &SessionHub{sessions: make(map[string]*openSession)}
}

// Register opens a session. The session is forgotten once ctx is done; the
// returned channel is then never written to.
func (h *SessionHub) Register(ctx context.Context, session entities.PaymentSession) (<-chan entities.GatewayOutcome, error) {
	if session.SessionToken == "" {
		return nil, interfaces.ErrUnknownPaymentSession
	}
	s := &openSession{orderID: session.OrderID, ch: make(chan entities.GatewayOutcome, 1)}

	h.mu.Lock()
	h.sessions[session.SessionToken] = s
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.forget(session.SessionToken, s)
	}()
	return s.ch, nil
}

func (h *SessionHub) Deliver(sessionToken string, outcome entities.GatewayOutcome) error {
	h.mu.Lock()
	s, ok := h.sessions[sessionToken]
	if !ok {
		h.mu.Unlock()
		return interfaces.ErrUnknownPaymentSession
	}
	if s.delivered {
		h.mu.Unlock()
		return interfaces.ErrOutcomeAlreadyDelivered
	}
	s.delivered = true
	h.mu.Unlock()

	s.ch <- outcome
	close(s.ch)
	log.Printf("[payment][hub] outcome delivered order_id=%s outcome=%s", s.orderID, outcome.Kind)
	return nil
}

// Waiting reports whether a session with the token still awaits its outcome.
func (h *SessionHub) Waiting(sessionToken string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[sessionToken]
	return ok && !s.delivered
}

func (h *SessionHub) forget(sessionToken string, s *openSession) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cur, ok := h.sessions[sessionToken]; ok && cur == s {
		delete(h.sessions, sessionToken)
	}
}
