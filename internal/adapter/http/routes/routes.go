package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "konveksi_checkout/docs"
	"konveksi_checkout/internal/adapter/http/handlers"
	"konveksi_checkout/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything mounted under /v1.
type Handlers struct {
	Checkout       *handlers.CheckoutHandler
	Payments       *handlers.PaymentHandler
	Reconciliation *handlers.ReconciliationHandler
	Gateway        *handlers.GatewayHandler
	Events         *handlers.EventsHandler
	// AuthSecret verifies shopper bearer tokens.
	AuthSecret     []byte
}

// Run wires the service from cfg and serves until SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h, cleanup, err := buildHandlers(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: NewRouter(h)}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[checkout][http] listening port=%s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Printf("[checkout][http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGatewayRoutes(v1, h.Gateway)

	// Shopper routes
	shopper := v1.Group("", handlers.RequireShopper(h.AuthSecret))
	addCheckoutRoutes(shopper, h.Checkout, h.Reconciliation, h.Events)
	addPaymentRoutes(shopper, h.Payments)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
