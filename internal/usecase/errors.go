package usecase

import (
	"errors"
	"fmt"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"
)

var (
	// ErrValidation: malformed input. Raised locally, never sent to the backend.
	ErrValidation = errors.New("validation error")
	// ErrConflict: the action is illegal for the current authoritative status.
	ErrConflict = errors.New("conflict")
	// ErrNetwork: transient backend failure, eligible for a user-initiated retry.
	ErrNetwork = errors.New("network error")
	// ErrGatewayUnavailable: the gateway client could not be loaded.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	// ErrUserCancelled: the shopper closed the payment surface. Informational.
	ErrUserCancelled = errors.New("payment cancelled by user")

	ErrOrderNotFound     = errors.New("order not found")
	ErrPaymentInProgress = errors.New("a payment for this order is already in progress")
	ErrInvalidPrincipal  = errors.New("missing shopper identity")
)

// ConflictError carries the refreshed resolver verdict so the caller can show
// why the action is no longer available instead of retrying blindly.
type ConflictError struct {
	OrderID string
	Kind    entities.PaymentKind
	Reason  string
	Actions entities.PaymentActions
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s payment for order %s not allowed: %s", e.Kind, e.OrderID, e.Reason)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// classifyBackendError maps an IOrderBackend failure onto the checkout error
// taxonomy. Conflicts are returned unchanged so the caller can refresh state.
func classifyBackendError(err error) error {
	if err == nil {
		return nil
	}
	var be *interfaces.BackendError
	if errors.As(err, &be) {
		switch {
		case be.IsConflict():
			return err
		case be.IsValidation():
			return fmt.Errorf("%w: %s", ErrValidation, be.Message)
		case be.IsNotFound():
			return ErrOrderNotFound
		}
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

func isBackendConflict(err error) bool {
	var be *interfaces.BackendError
	return errors.As(err, &be) && be.IsConflict()
}
