package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// paymentGetter is the part of the SDK payment client used here.
type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway opens checkout sessions and turns Mercado Pago payment
// notifications into session outcomes. The backend creates the provider
// preference and stores the session token as its external reference.
type MercadoPagoGateway struct {
	client   paymentGetter
	hub      *SessionHub
	mockMode bool
}

var (
	_ interfaces.IPaymentSurface = (*MercadoPagoGateway)(nil)
	_ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)
)

func NewMercadoPagoGateway(accessToken string, hub *SessionHub) (*MercadoPagoGateway, error) {
	if hub == nil {
		hub = NewSessionHub()
	}
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{hub: hub, mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), hub: hub}, nil
}

func (g *MercadoPagoGateway) Open(ctx context.Context, session entities.PaymentSession) (<-chan entities.GatewayOutcome, error) {
	if g == nil || g.hub == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return nil, interfaces.ErrPaymentSurfaceUnavailable
	}
	log.Printf("[payment][gateway] open session order_id=%s kind=%s amount=%d", session.OrderID, session.Kind, session.Amount)

	ch, err := g.hub.Register(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrPaymentSurfaceUnavailable, err)
	}

	if g.mockMode {
		ref := "mock-" + uuid.NewString()
		log.Printf("[payment][gateway] mock approve order_id=%s ref=%s", session.OrderID, ref)
		if err := g.hub.Deliver(session.SessionToken, entities.OutcomeSucceeded(ref)); err != nil {
			log.Printf("[payment][gateway] mock deliver failed order_id=%s err=%v", session.OrderID, err)
		}
	}
	return ch, nil
}

func (g *MercadoPagoGateway) Deliver(sessionToken string, outcome entities.GatewayOutcome) error {
	if g == nil || g.hub == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}
	return g.hub.Deliver(sessionToken, outcome)
}

// LookupPayment fetches a provider payment and maps its status onto a session
// outcome. The session token is the payment's external reference.
func (g *MercadoPagoGateway) LookupPayment(ctx context.Context, providerPaymentID string) (string, entities.GatewayOutcome, error) {
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", entities.GatewayOutcome{}, ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return "", entities.GatewayOutcome{}, fmt.Errorf("invalid provider payment id %q", providerPaymentID)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_payment_id=%d err=%v", id, err)
		return "", entities.GatewayOutcome{}, err
	}
	outcome := mapPaymentStatus(resp)
	log.Printf("[payment][gateway] lookup provider_payment_id=%d provider_status=%s outcome=%s", resp.ID, resp.Status, outcome.Kind)
	return resp.ExternalReference, outcome, nil
}

func mapPaymentStatus(resp *payment.Response) entities.GatewayOutcome {
	ref := strconv.Itoa(resp.ID)
	switch strings.ToLower(resp.Status) {
	case "approved", "authorized":
		return entities.OutcomeSucceeded(ref)
	case "rejected", "refunded", "charged_back":
		return entities.OutcomeFailed(resp.StatusDetail)
	case "cancelled":
		return entities.OutcomeDismissed(resp.StatusDetail)
	default:
		// pending, in_process and in_mediation all wait on the shopper or the
		// provider.
		return entities.OutcomePendingManual(ref)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
