package interfaces

import (
	"context"
	"fmt"
	"net/http"

	"konveksi_checkout/internal/domain/entities"
)

// IOrderBackend abstracts the opaque order REST service.
//
// The backend is the only source of truth for order totals and settlement flags
// and the sole arbiter of whether a transaction may be created.
//   - POST /orders        => CreateOrder()
//   - GET  /orders/{id}   => GetOrder()
//   - POST /transactions  => CreateTransaction()

type IOrderBackend interface {
	CreateOrder(ctx context.Context, principal entities.Principal, draft entities.OrderDraft) (entities.Order, error)
	GetOrder(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error)
	CreateTransaction(ctx context.Context, principal entities.Principal, orderID string, kind entities.PaymentKind) (entities.PaymentSession, error)
}

// BackendError is returned by IOrderBackend implementations when the backend
// answered with a non-2xx status. Transport failures are returned as-is.
type BackendError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *BackendError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend responded %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

func (e *BackendError) IsConflict() bool {
	return e.StatusCode == http.StatusConflict
}

func (e *BackendError) IsValidation() bool {
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
}

func (e *BackendError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
