package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server      ServerConfig
	DynamoDB    DynamoDBConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Webpay      WebpayConfig
	MercadoPago MercadoPagoConfig
	Orders      OrdersConfig
	Reconcile   ReconcileConfig
}

type ServerConfig struct {
	Port string
	Env  string
	// PublicBaseURL is this service's externally reachable URL; gateway return
	// and notification URLs are built under it.
	PublicBaseURL     string
	FrontendReturnURL string
	AllowedOrigins    []string
	LogLevel          string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
}

type DynamoDBConfig struct {
	Region            string
	Endpoint          string
	AccessKeyID       string
	SecretAccessKey   string
	TransactionsTable string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	DedupTTL time.Duration
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type WebpayConfig struct {
	BaseURL      string
	CommerceCode string
	APIKey       string
	Timeout      time.Duration
}

type MercadoPagoConfig struct {
	AccessToken string
	Timeout     time.Duration
}

type OrdersConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type ReconcileConfig struct {
	FreshnessWindow     time.Duration
	RejectedRetryWindow time.Duration
	OrderClaimTTL       time.Duration
}

func (c ServerConfig) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development"
}

// Load reads the configuration from the environment. A .env file is loaded
// beforehand by godotenv/autoload in the entrypoints.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              getenvDefault("PORT", "8080"),
			Env:               getenvDefault("APP_ENV", "development"),
			PublicBaseURL:     strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
			FrontendReturnURL: os.Getenv("FRONTEND_RETURN_URL"),
			AllowedOrigins:    splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
			LogLevel:          getenvDefault("LOG_LEVEL", "info"),
			ReadTimeout:       getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:      getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		DynamoDB: DynamoDBConfig{
			Region:            getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:          os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:       getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:   getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			TransactionsTable: getenvDefault("PAYMENT_TRANSACTIONS_TABLE", "payment_transactions"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
			DedupTTL: getDuration("WEBHOOK_DEDUP_TTL", 10*time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getenvDefault("KAFKA_TRANSACTIONS_TOPIC", "payment-transactions"),
		},
		Webpay: WebpayConfig{
			BaseURL:      strings.TrimRight(os.Getenv("WEBPAY_BASE_URL"), "/"),
			CommerceCode: os.Getenv("WEBPAY_COMMERCE_CODE"),
			APIKey:       os.Getenv("WEBPAY_API_KEY"),
			Timeout:      getDuration("WEBPAY_TIMEOUT", 5*time.Second),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			Timeout:     getDuration("MERCADOPAGO_TIMEOUT", 5*time.Second),
		},
		Orders: OrdersConfig{
			BaseURL: strings.TrimRight(os.Getenv("ORDERS_SERVICE_URL"), "/"),
			APIKey:  os.Getenv("ORDERS_SERVICE_API_KEY"),
			Timeout: getDuration("ORDERS_SERVICE_TIMEOUT", 5*time.Second),
		},
		Reconcile: ReconcileConfig{
			FreshnessWindow:     getDuration("TRANSACTION_FRESHNESS_WINDOW", 10*time.Minute),
			RejectedRetryWindow: getDuration("REJECTED_RETRY_WINDOW", 30*time.Minute),
			OrderClaimTTL:       getDuration("ORDER_CLAIM_TTL", 5*time.Minute),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

// getDuration accepts Go durations ("90s") or plain seconds ("90").
func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
