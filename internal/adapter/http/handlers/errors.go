package handlers

import (
	"errors"
	"net/http"

	response "konveksi_checkout/internal/adapter/http/dto/response"
	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase"
	"konveksi_checkout/internal/usecase/interfaces"
	"konveksi_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// retryDetails marks failures where nothing happened and trying again is safe.
var retryDetails = gin.H{"advice": entities.AdviceRetry}

func mapCheckoutError(err error) *pkg.AppError {
	var conflict *usecase.ConflictError
	var backendErr *interfaces.BackendError
	switch {
	case errors.As(err, &conflict):
		return pkg.NewDomainError("PAYMENT_NOT_ALLOWED", "Payment not allowed for the current order state", err, http.StatusConflict).
			WithDetails(gin.H{
				"reason":  conflict.Reason,
				"kind":    conflict.Kind,
				"actions": response.FromPaymentActions(entities.Order{}, conflict.Actions),
			})
	case errors.Is(err, usecase.ErrPaymentInProgress):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_PROGRESS", "A payment for this order is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict), errors.As(err, &backendErr) && backendErr.IsConflict():
		return pkg.NewDomainError("ORDER_CONFLICT", "The order changed, reload it and try again", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPrincipal):
		return errUnauthorized
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownSession):
		return pkg.NewDomainErrorSimple("PAYMENT_SESSION_NOT_FOUND", "Payment session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOutcomeDelivered):
		return pkg.NewDomainErrorSimple("PAYMENT_SESSION_COMPLETED", "Payment session already has an outcome", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway unavailable", err, http.StatusServiceUnavailable).WithDetails(retryDetails)
	case errors.Is(err, usecase.ErrNetwork):
		return pkg.NewDomainError("ORDER_SERVICE_UNAVAILABLE", "Order service unavailable", err, http.StatusServiceUnavailable).WithDetails(retryDetails)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
