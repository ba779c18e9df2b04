package handlers

import (
	"log"
	"net/http"

	request "konveksi_checkout/internal/adapter/http/dto/request"
	"konveksi_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

// GatewayHandler receives payment outcomes from the provider webhook and from
// the storefront relaying the gateway's browser callbacks.
type GatewayHandler struct {
	usecase usecase.IGatewayCallbackUseCase
}

func NewGatewayHandler(uc usecase.IGatewayCallbackUseCase) *GatewayHandler {
	return &GatewayHandler{usecase: uc}
}

// ReceiveNotification godoc
// @Summary      Mercado Pago webhook
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Param        body  body      request.GatewayNotificationRequest  false  "Notification"
// @Success      200   {object}  map[string]string
// @Failure      503   {object}  pkg.HTTPError
// @Router       /gateway/notifications [post]
func (h *GatewayHandler) ReceiveNotification(c *gin.Context) {
	var req request.GatewayNotificationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[payment][webhook] invalid payload err=%v", err)
			writeError(c, errInvalidRequest)
			return
		}
	}

	topic := c.Query("type")
	if topic == "" {
		topic = c.Query("topic")
	}
	id := c.Query("data.id")
	if id == "" {
		id = c.Query("id")
	}
	paymentID := req.ResolvePaymentID(topic, id)
	if paymentID == "" {
		log.Printf("[payment][webhook] ignored type=%s action=%s", req.Type, req.Action)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err := h.usecase.HandleNotification(c.Request.Context(), paymentID); err != nil {
		log.Printf("[payment][webhook] failed provider_payment_id=%s err=%v", paymentID, err)
		writeError(c, mapCheckoutError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// RelaySessionEvent godoc
// @Summary      Relay a gateway browser callback
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Param        token  path      string                       true  "Session token"
// @Param        body   body      request.SessionEventRequest  true  "success, pending, error or close"
// @Success      202    {object}  map[string]string
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Router       /gateway/sessions/{token}/events [post]
func (h *GatewayHandler) RelaySessionEvent(c *gin.Context) {
	token := c.Param("token")

	var req request.SessionEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	outcome, err := req.ToOutcome()
	if err != nil {
		log.Printf("[payment][relay] unknown event=%q", req.Event)
		writeError(c, errInvalidRequest)
		return
	}

	if err := h.usecase.RelayOutcome(c.Request.Context(), token, outcome); err != nil {
		log.Printf("[payment][relay] failed outcome=%s err=%v", outcome.Kind, err)
		writeError(c, mapCheckoutError(err))
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
