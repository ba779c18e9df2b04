package routes

import (
	"context"
	"fmt"
	"log"

	"konveksi_checkout/internal/adapter/http/handlers"
	"konveksi_checkout/internal/adapter/persistence/redisstore"
	"konveksi_checkout/internal/adapter/persistence/repository"
	"konveksi_checkout/internal/config"
	"konveksi_checkout/internal/infrastructure/backend"
	"konveksi_checkout/internal/infrastructure/cache"
	"konveksi_checkout/internal/infrastructure/database"
	"konveksi_checkout/internal/infrastructure/messaging"
	"konveksi_checkout/internal/infrastructure/payments"
	"konveksi_checkout/internal/usecase"
	"konveksi_checkout/internal/usecase/interfaces"
)

// buildHandlers is the composition root. cleanup closes every connection it
// opened and is safe to call once Run returns.
func buildHandlers(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (Handlers, func(), error) {
		cleanup()
		return Handlers{}, func() {}, err
	}

	store, closeStore, err := newReconciliationStore(ctx, cfg)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, closeStore)

	orders, err := backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)
	if err != nil {
		return fail(err)
	}

	policy, err := usecase.NewDownPaymentPolicy(cfg.DPFractionDefault, cfg.DPFractionByLine)
	if err != nil {
		return fail(err)
	}

	broker := messaging.NewBroker()
	publisher, closePublisher, err := newEventPublisher(cfg, broker)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, closePublisher)

	hub := payments.NewSessionHub()
	var surface interfaces.IPaymentSurface
	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, hub)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		surface = mpGateway
		gateway = mpGateway
	}

	reconciliation := usecase.NewReconciliationUseCase(store, orders, orders, publisher, cfg.ReconciliationTTL)
	drafts := usecase.NewOrderDraftUseCase(policy, cfg.MaxLineQuantity, orders, reconciliation, publisher)
	resolver := usecase.NewPaymentStateResolver(policy, orders, reconciliation)
	coordinator := usecase.NewGatewayCoordinatorUseCase(orders, surface, resolver, reconciliation, publisher, usecase.CoordinatorOptions{
		SessionTimeout:  cfg.PaymentSessionTimeout,
		ConfirmAttempts: cfg.ConfirmPollAttempts,
		ConfirmInterval: cfg.ConfirmPollInterval,
	})
	callbacks := usecase.NewGatewayCallbackUseCase(gateway)

	return Handlers{
		Checkout:       handlers.NewCheckoutHandler(drafts),
		Payments:       handlers.NewPaymentHandler(resolver, coordinator),
		Reconciliation: handlers.NewReconciliationHandler(reconciliation),
		Gateway:        handlers.NewGatewayHandler(callbacks),
		Events:         handlers.NewEventsHandler(broker),
		AuthSecret:     []byte(cfg.JWTSecret),
	}, cleanup, nil
}

func newReconciliationStore(ctx context.Context, cfg config.Config) (interfaces.IReconciliationStore, func(), error) {
	switch cfg.ReconciliationStore {
	case config.StoreRedis:
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return redisstore.NewReconciliationRedisStore(rdb), func() { _ = rdb.Close() }, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		return repository.NewReconciliationDynamoRepository(ddb, cfg.ReconciliationTable), func() {}, nil
	}
}

// newEventPublisher always publishes to the in-process broker that feeds the
// event stream, plus the configured external sink.
func newEventPublisher(cfg config.Config, broker *messaging.Broker) (interfaces.IEventPublisher, func(), error) {
	switch cfg.EventsSink {
	case config.SinkKafka:
		kp := messaging.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		return messaging.FanOut{broker, kp}, func() { _ = kp.Close() }, nil
	case config.SinkNats:
		np, err := messaging.NewNatsPublisher(cfg.NatsURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect nats: %w", err)
		}
		return messaging.FanOut{broker, np}, np.Close, nil
	default:
		return broker, func() {}, nil
	}
}
