package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	AppEnv  string
	AppPort string

	LogLevel string

	CORSOrigin string

	SecretKey  string
	SessionTTL time.Duration

	StorageDriver string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	RedisURL      string

	CatalogSeed int64

	PaymentLatency  time.Duration
	PaymentOutcome  string
	DeliveryLatency time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("Environment variables not loaded properly: %v", err)
	}

	return cfg
}

// FromEnv reads the configuration from the process environment without
// loading .env files.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		AppPort:        getEnv("APP_PORT", "8080"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:3000"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		StorageDriver:  getEnv("STORAGE_DRIVER", DriverMemory),
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         getEnv("DB_PORT", "5432"),
		RedisURL:       os.Getenv("REDIS_URL"),
		PaymentOutcome: getEnv("PAYMENT_OUTCOME", "success"),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.PaymentLatency, err = getDuration("PAYMENT_LATENCY", 1500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.DeliveryLatency, err = getDuration("DELIVERY_LATENCY", 800*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.CatalogSeed, err = getInt64("CATALOG_SEED", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 10); err != nil {
		return nil, err
	}
	burst, err := getInt64("RATE_LIMIT_BURST", 20)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitBurst = int(burst)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.AppEnv == "production" && c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required in production")
	}

	switch c.StorageDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the postgres driver")
		}
	case DriverRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	switch c.PaymentOutcome {
	case "success", "decline", "timeout":
	default:
		return fmt.Errorf("unknown PAYMENT_OUTCOME %q", c.PaymentOutcome)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit values must be positive")
	}

	return nil
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
