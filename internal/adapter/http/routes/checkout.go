package routes

import (
	"konveksi_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
	PathGateway  = "/gateway"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkout *handlers.CheckoutHandler, reconciliation *handlers.ReconciliationHandler, events *handlers.EventsHandler) {
	g := rg.Group(PathCheckout)
	{
		g.POST("/cart", checkout.CheckoutCart)
		g.POST("/buy-now", checkout.BuyNow)
		g.GET("/reconciliation", reconciliation.GetReconciliation)
		g.DELETE("/reconciliation", reconciliation.ClearReconciliation)
		g.GET("/confirmation", reconciliation.GetConfirmation)
		g.GET("/events", events.Stream)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, payments *handlers.PaymentHandler) {
	g := rg.Group(PathOrders)
	{
		g.GET("/:order_id/payment-actions", payments.GetPaymentActions)
		g.POST("/:order_id/payments", payments.StartPayment)
	}
}

// Gateway routes are called by the provider and by the gateway's browser
// callbacks, so they carry no shopper token. The session token identifies the
// payment.
func addGatewayRoutes(rg *gin.RouterGroup, gateway *handlers.GatewayHandler) {
	g := rg.Group(PathGateway)
	{
		g.POST("/notifications", gateway.ReceiveNotification)
		g.POST("/sessions/:token/events", gateway.RelaySessionEvent)
	}
}
