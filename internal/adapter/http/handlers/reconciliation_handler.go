package handlers

import (
	"log"
	"net/http"

	response "konveksi_checkout/internal/adapter/http/dto/response"
	"konveksi_checkout/internal/usecase"
	"konveksi_checkout/pkg"

	"github.com/gin-gonic/gin"
)

type ReconciliationHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewReconciliationHandler(uc usecase.IReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{usecase: uc}
}

// GetReconciliation godoc
// @Summary      Load the shopper's checkout record
// @Tags         checkout
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.ReconciliationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkout/reconciliation [get]
func (h *ReconciliationHandler) GetReconciliation(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	rec, found, err := h.usecase.Load(c.Request.Context(), principal)
	if err != nil {
		log.Printf("[checkout][handler] reconciliation load failed subject=%s err=%v", principal.Subject, err)
		writeError(c, mapCheckoutError(err))
		return
	}
	if !found {
		writeError(c, pkg.NewDomainErrorSimple("RECONCILIATION_NOT_FOUND", "No checkout in progress", http.StatusNotFound))
		return
	}

	c.JSON(http.StatusOK, response.FromReconciliationRecord(rec))
}

// ClearReconciliation godoc
// @Summary      Discard the shopper's checkout record
// @Tags         checkout
// @Security     Bearer
// @Success      204
// @Router       /checkout/reconciliation [delete]
func (h *ReconciliationHandler) ClearReconciliation(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	if err := h.usecase.Clear(c.Request.Context(), principal); err != nil {
		log.Printf("[checkout][handler] reconciliation clear failed subject=%s err=%v", principal.Subject, err)
		writeError(c, mapCheckoutError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// GetConfirmation godoc
// @Summary      Confirmation view
// @Description  Re-fetches the order; a pending marker alone never reads as paid.
// @Tags         checkout
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.ConfirmationResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /checkout/confirmation [get]
func (h *ReconciliationHandler) GetConfirmation(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	confirmation, err := h.usecase.Confirm(c.Request.Context(), principal)
	if err != nil {
		log.Printf("[checkout][handler] confirmation failed subject=%s err=%v", principal.Subject, err)
		writeError(c, mapCheckoutError(err))
		return
	}
	log.Printf("[checkout][handler] confirmation subject=%s status=%s", principal.Subject, confirmation.Status)

	c.JSON(http.StatusOK, response.FromConfirmation(confirmation))
}
