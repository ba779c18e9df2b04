package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"
)

var (
	ErrInvalidSessionToken = validationErrorf("invalid session token")
	ErrInvalidOutcome      = validationErrorf("invalid outcome")
	ErrUnknownSession      = errors.New("payment session not found")
	ErrOutcomeDelivered    = errors.New("payment session already has an outcome")
)

// IGatewayCallbackUseCase feeds gateway reports into the open payment sessions.
//   - HandleNotification: provider webhook carrying a provider payment id.
//   - RelayOutcome: the storefront relaying the checkout callback it received.

type IGatewayCallbackUseCase interface {
	HandleNotification(ctx context.Context, providerPaymentID string) error
	RelayOutcome(ctx context.Context, sessionToken string, outcome entities.GatewayOutcome) error
}

type GatewayCallbackUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IGatewayCallbackUseCase = (*GatewayCallbackUseCase)(nil)

func NewGatewayCallbackUseCase(gateway interfaces.IPaymentGateway) *GatewayCallbackUseCase {
	return &GatewayCallbackUseCase{gateway: gateway}
}

// HandleNotification never fails for sessions that are no longer open here:
// the provider would otherwise keep retrying a notification nobody waits for.
func (u *GatewayCallbackUseCase) HandleNotification(ctx context.Context, providerPaymentID string) error {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	log.Printf("[payment][callback] notification provider_payment_id=%s", providerPaymentID)
	if providerPaymentID == "" {
		return validationErrorf("provider payment id is required")
	}
	if u.gateway == nil {
		log.Printf("[payment][callback] payment gateway not configured")
		return ErrGatewayUnavailable
	}

	token, outcome, err := u.gateway.LookupPayment(ctx, providerPaymentID)
	if err != nil {
		log.Printf("[payment][callback] lookup failed provider_payment_id=%s err=%v", providerPaymentID, err)
		return ErrGatewayUnavailable
	}
	if token == "" {
		log.Printf("[payment][callback] payment without session reference provider_payment_id=%s", providerPaymentID)
		return nil
	}

	if err := u.gateway.Deliver(token, outcome); err != nil {
		log.Printf("[payment][callback] notification not delivered provider_payment_id=%s err=%v", providerPaymentID, err)
	}
	return nil
}

func (u *GatewayCallbackUseCase) RelayOutcome(ctx context.Context, sessionToken string, outcome entities.GatewayOutcome) error {
	sessionToken = strings.TrimSpace(sessionToken)
	if sessionToken == "" {
		return ErrInvalidSessionToken
	}
	if !outcome.Kind.Valid() {
		return ErrInvalidOutcome
	}
	if u.gateway == nil {
		log.Printf("[payment][callback] payment gateway not configured")
		return ErrGatewayUnavailable
	}

	err := u.gateway.Deliver(sessionToken, outcome)
	switch {
	case err == nil:
		log.Printf("[payment][callback] relay delivered outcome=%s ref=%s", outcome.Kind, outcome.TransactionRef)
		return nil
	case errors.Is(err, interfaces.ErrUnknownPaymentSession):
		return ErrUnknownSession
	case errors.Is(err, interfaces.ErrOutcomeAlreadyDelivered):
		return ErrOutcomeDelivered
	default:
		log.Printf("[payment][callback] relay failed err=%v", err)
		return err
	}
}
