package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type AppConfig struct {
	Port         string
	Env          string
	LogLevel     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// RateLimit is requests per second per company on write routes.
	RateLimit float64
	RateBurst int
}

type DatabaseConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr       string
	MaxRetries int
}

type KafkaConfig struct {
	Broker             string
	ConsumerGroup      string
	OutboxPollInterval time.Duration
	MaxRetries         int
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// a missing .env is fine in containers
	_ = godotenv.Load()

	cfg := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	rateLimit, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	rateBurst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}
	pollInterval, err := time.ParseDuration(getEnv("OUTBOX_POLL_INTERVAL", "3s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OUTBOX_POLL_INTERVAL: %w", err)
	}
	maxRetries, err := strconv.Atoi(getEnv("CONNECT_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONNECT_MAX_RETRIES: %w", err)
	}

	cfg.App = AppConfig{
		Port:         getEnv("PORT", "3000"),
		Env:          getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		RateLimit:    rateLimit,
		RateBurst:    rateBurst,
	}

	cfg.Database = DatabaseConfig{
		Host:       getEnv("DB_HOST", "localhost"),
		Port:       dbPort,
		User:       getEnv("DB_USER", "postgres"),
		Password:   getEnv("DB_PASSWORD", ""),
		Name:       getEnv("DB_NAME", "go_salon"),
		SSLMode:    getEnv("DB_SSLMODE", "disable"),
		MaxRetries: maxRetries,
	}

	cfg.Redis = RedisConfig{
		Addr:       getEnv("REDIS_ADDR", "localhost:6379"),
		MaxRetries: maxRetries,
	}

	cfg.Kafka = KafkaConfig{
		Broker:             getEnv("KAFKA_BROKER", ""),
		ConsumerGroup:      getEnv("KAFKA_CONSUMER_GROUP", "go-salon-payroll"),
		OutboxPollInterval: pollInterval,
		MaxRetries:         maxRetries,
	}

	return cfg, nil
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

func (c KafkaConfig) RequireBroker() error {
	if strings.TrimSpace(c.Broker) == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
