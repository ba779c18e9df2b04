package handlers

import (
	"log"
	"net/http"

	request "konveksi_checkout/internal/adapter/http/dto/request"
	response "konveksi_checkout/internal/adapter/http/dto/response"
	"konveksi_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the payment options of an order and starts gateway
// sessions for them.
type PaymentHandler struct {
	resolver    usecase.IPaymentStateResolver
	coordinator usecase.IGatewayCoordinatorUseCase
}

func NewPaymentHandler(resolver usecase.IPaymentStateResolver, coordinator usecase.IGatewayCoordinatorUseCase) *PaymentHandler {
	return &PaymentHandler{resolver: resolver, coordinator: coordinator}
}

// GetPaymentActions godoc
// @Summary      List the payment options for an order
// @Description  Always computed from a fresh fetch of the order.
// @Tags         payments
// @Produce      json
// @Security     Bearer
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  response.PaymentActionsResponse
// @Failure      404       {object}  pkg.HTTPError
// @Failure      503       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/payment-actions [get]
func (h *PaymentHandler) GetPaymentActions(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	orderID := c.Param("order_id")

	order, actions, err := h.resolver.ResolveFresh(c.Request.Context(), principal, orderID)
	if err != nil {
		log.Printf("[payment][handler] resolve failed order_id=%s err=%v", orderID, err)
		writeError(c, mapCheckoutError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentActions(order, actions))
}

// StartPayment godoc
// @Summary      Start a payment for an order
// @Description  Creates the transaction and opens a gateway session. The outcome
// @Description  is delivered through the gateway routes and shown by the
// @Description  confirmation view.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path      string                       true  "Order ID"
// @Param        body      body      request.StartPaymentRequest  true  "Payment kind (DP, FULL, REMAINDER)"
// @Success      202       {object}  response.PaymentSessionResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Failure      503       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/payments [post]
func (h *PaymentHandler) StartPayment(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	orderID := c.Param("order_id")

	var req request.StartPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
		writeError(c, errInvalidRequest)
		return
	}
	kind := req.ResolveKind()
	log.Printf("[payment][handler] start order_id=%s kind=%s", orderID, kind)

	session, err := h.coordinator.StartPayment(c.Request.Context(), principal, orderID, kind)
	if err != nil {
		log.Printf("[payment][handler] start failed order_id=%s kind=%s err=%v", orderID, kind, err)
		writeError(c, mapCheckoutError(err))
		return
	}
	log.Printf("[payment][handler] session opened order_id=%s kind=%s amount=%d", orderID, kind, session.Amount)

	c.JSON(http.StatusAccepted, response.FromPaymentSession(session))
}
