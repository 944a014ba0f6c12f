package app

import (
	"context"

	"delivery_payments/internal/adapter/persistence/repository"
	appconfig "delivery_payments/internal/config"
	"delivery_payments/internal/infrastructure/cache"
	"delivery_payments/internal/infrastructure/database"
	"delivery_payments/internal/infrastructure/events"
	"delivery_payments/internal/infrastructure/metrics"
	"delivery_payments/internal/infrastructure/orders"
	"delivery_payments/internal/infrastructure/payments"
	"delivery_payments/internal/usecase"
	"delivery_payments/internal/usecase/interfaces"
	"delivery_payments/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// App holds the wired reconciliation engine and the resources to release on shutdown.
type App struct {
	UseCase *usecase.PaymentTransactionUseCase
	Metrics *metrics.PrometheusMetrics

	redis     *redis.Client
	publisher *events.KafkaEventPublisher
}

// Build connects the stores and gateways described by cfg. Redis and Kafka are
// optional: without them webhook dedupe and event publishing are off.
func Build(ctx context.Context, cfg *appconfig.Config, reg prometheus.Registerer) (*App, error) {
	log := logger.Component(ctx, "app")

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	if cfg.DynamoDB.Endpoint != "" {
		if err := database.EnsureTransactionsTable(ctx, ddb, cfg.DynamoDB.TransactionsTable); err != nil {
			log.Warn().Err(err).Str("table", cfg.DynamoDB.TransactionsTable).Msg("could not ensure transactions table")
		}
	}
	repo := repository.NewPaymentTransactionDynamoRepository(ddb, cfg.DynamoDB.TransactionsTable)

	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPago)
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured")
		mp = &payments.MercadoPagoGateway{}
	}
	webpay := payments.NewWebpayGateway(cfg.Webpay)
	if !webpay.Configured() {
		log.Warn().Msg("Webpay gateway not configured")
	}

	a := &App{Metrics: metrics.NewPrometheusMetrics(reg)}

	opts := []usecase.Option{
		usecase.WithMetrics(a.Metrics),
		usecase.WithFreshnessWindow(cfg.Reconcile.FreshnessWindow),
		usecase.WithRejectedRetryWindow(cfg.Reconcile.RejectedRetryWindow),
		usecase.WithOrderClaimTTL(cfg.Reconcile.OrderClaimTTL),
	}
	if a.redis = database.ConnectRedis(ctx, cfg.Redis); a.redis != nil {
		opts = append(opts, usecase.WithWebhookDeduper(cache.NewRedisWebhookDeduper(a.redis, cfg.Redis.DedupTTL)))
	}
	if a.publisher = events.NewKafkaEventPublisher(cfg.Kafka); a.publisher != nil {
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("publishing transaction events to kafka")
		opts = append(opts, usecase.WithEventPublisher(a.publisher))
	}

	var orderCreator interfaces.IOrderCreator
	if cfg.Orders.BaseURL != "" {
		orderCreator = orders.NewHTTPOrderClient(cfg.Orders)
	} else {
		log.Warn().Msg("ORDERS_SERVICE_URL not set; authorized payments will wait for manual order linkage")
	}

	a.UseCase = usecase.NewPaymentTransactionUseCase(
		repo,
		orderCreator,
		cfg.Server.PublicBaseURL,
		[]usecase.GatewayBinding{
			{Gateway: webpay, Normalizer: payments.WebpayNormalizer{}, AutoCreateOrder: true},
			{Gateway: mp, Normalizer: payments.MercadoPagoNormalizer{}},
		},
		opts...,
	)
	return a, nil
}

func (a *App) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logger.Logger.Warn().Err(err).Msg("kafka writer close failed")
		}
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
}
