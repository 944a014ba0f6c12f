package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "delivery_payments/docs"
	"delivery_payments/internal/adapter/http/handlers"
	"delivery_payments/internal/app"
	appconfig "delivery_payments/internal/config"
	"delivery_payments/internal/infrastructure/metrics"
	"delivery_payments/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const requestIDHeader = "X-Request-ID"

// Run will start the server
func Run() {
	cfg := appconfig.Load()
	logger.Init("delivery-payments", cfg.Server.IsDevelopment())
	logger.SetLevel(cfg.Server.LogLevel)
	if !cfg.Server.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.Build(ctx, cfg, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to wire the application")
	}
	defer application.Close()

	router := NewRouter(
		handlers.NewPaymentTransactionHandler(application.UseCase, cfg.Server.FrontendReturnURL, cfg.Reconcile.FreshnessWindow),
		handlers.NewWebhookHandler(application.UseCase),
		application.Metrics,
	)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      c.Handler(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Logger.Info().Str("port", cfg.Server.Port).Str("metrics_endpoint", "/metrics").Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to startup the application")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Logger.Info().Msg("HTTP server stopped")
}

// NewRouter registers every route. m may be nil.
func NewRouter(paymentHandler *handlers.PaymentTransactionHandler, webhookHandler *handlers.WebhookHandler, m *metrics.PrometheusMetrics) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)
	if m != nil {
		router.Use(m.Middleware())
	}

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, webhookHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestContext())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error(c.Request.Context()).Interface("panic", recovered).Msg("Recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// requestContext carries the request id into the request context and logs one
// line per request.
func requestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))
		c.Header(requestIDHeader, id)

		c.Next()

		logger.Info(c.Request.Context()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
