package metrics

import (
	"strconv"
	"time"

	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics holds the service counters. Register it once per registry.
type PrometheusMetrics struct {
	statusResolved   *prometheus.CounterVec
	orderLinkage     *prometheus.CounterVec
	webhookProcessed *prometheus.CounterVec
	requestCounter   *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
}

var _ interfaces.IReconciliationMetrics = (*PrometheusMetrics)(nil)

func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		statusResolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_status_resolutions_total",
				Help: "Status resolutions by payment method, source and resulting status",
			},
			[]string{"payment_method", "source", "status"},
		),
		orderLinkage: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_order_linkage_total",
				Help: "Order creation attempts after authorization by outcome",
			},
			[]string{"payment_method", "outcome"},
		),
		webhookProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_webhooks_total",
				Help: "Provider notifications by outcome",
			},
			[]string{"payment_method", "outcome"},
		),
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_service_requests_total",
				Help: "Total number of HTTP requests to the payment service",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_service_request_duration_seconds",
				Help:    "Duration of payment service HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
	}

	reg.MustRegister(m.statusResolved, m.orderLinkage, m.webhookProcessed, m.requestCounter, m.requestLatency)
	return m
}

func (m *PrometheusMetrics) StatusResolved(method entities.PaymentMethod, source string, status entities.TransactionStatus) {
	m.statusResolved.WithLabelValues(string(method), source, string(status)).Inc()
}

func (m *PrometheusMetrics) OrderLinkage(method entities.PaymentMethod, outcome string) {
	m.orderLinkage.WithLabelValues(string(method), outcome).Inc()
}

func (m *PrometheusMetrics) WebhookProcessed(method entities.PaymentMethod, outcome string) {
	m.webhookProcessed.WithLabelValues(string(method), outcome).Inc()
}

// Middleware records request count and latency per route template.
func (m *PrometheusMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.requestCounter.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestLatency.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}
