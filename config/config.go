package config

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is shared by every service; each main only reads the keys it needs.
type Config struct {
	Service        string
	HTTPAddr       string
	PublicURL      string
	BackendURL     string
	BackendTimeout time.Duration
	CatalogSource  string

	RedisHost  string
	RedisPort  string
	SessionTTL time.Duration

	KafkaBroker string
	KafkaTopic  string
	KafkaGroup  string

	StorefrontURL string
	DashboardURL  string
	FrontendDir   string

	LogLevel string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load(service, defaultAddr string) *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", defaultAddr)
	v.SetDefault("PUBLIC_URL", "http://localhost:8080")
	v.SetDefault("BACKEND_URL", "http://localhost:5555")
	v.SetDefault("BACKEND_TIMEOUT", "10s")
	v.SetDefault("CATALOG_SOURCE", "static")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("SESSION_TTL", "720h")
	v.SetDefault("KAFKA_BROKER", "localhost:9092")
	v.SetDefault("KAFKA_TOPIC", "foodcourt-orders")
	v.SetDefault("KAFKA_GROUP", "foodcourt-events")
	v.SetDefault("STOREFRONT_SVC_URL", "http://localhost:8081")
	v.SetDefault("DASHBOARD_SVC_URL", "http://localhost:8082")
	v.SetDefault("FRONTEND_DIR", "./frontend")
	v.SetDefault("LOG_LEVEL", "info")

	return &Config{
		Service:        service,
		HTTPAddr:       v.GetString("HTTP_ADDR"),
		PublicURL:      v.GetString("PUBLIC_URL"),
		BackendURL:     v.GetString("BACKEND_URL"),
		BackendTimeout: v.GetDuration("BACKEND_TIMEOUT"),
		CatalogSource:  v.GetString("CATALOG_SOURCE"),
		RedisHost:      v.GetString("REDIS_HOST"),
		RedisPort:      v.GetString("REDIS_PORT"),
		SessionTTL:     v.GetDuration("SESSION_TTL"),
		KafkaBroker:    v.GetString("KAFKA_BROKER"),
		KafkaTopic:     v.GetString("KAFKA_TOPIC"),
		KafkaGroup:     v.GetString("KAFKA_GROUP"),
		StorefrontURL:  v.GetString("STOREFRONT_SVC_URL"),
		DashboardURL:   v.GetString("DASHBOARD_SVC_URL"),
		FrontendDir:    v.GetString("FRONTEND_DIR"),
		LogLevel:       v.GetString("LOG_LEVEL"),
	}
}

func NewLogger(cfg *Config) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = level
	}

	logger, err := zapCfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.With(zap.String("service", cfg.Service))
}

func MustInitRedis(cfg *Config, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	return client
}

func NewKafkaReader(cfg *Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroup,
	})
}

func NewKafkaWriter(cfg *Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
}
