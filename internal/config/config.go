package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is assembled from the environment. A .env file in the working
// directory is honored when present.
type Config struct {
	HTTPAddr string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// RedisAddr empty disables the insights cache.
	RedisAddr        string
	InsightsCacheTTL time.Duration

	// KafkaBrokers empty disables event publishing.
	KafkaBrokers []string
	KafkaTopic   string

	RateLimit float64
	RateBurst int
}

func Load() *Config {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),

		DBHost: getenv("DB_HOST", "127.0.0.1"),
		DBPort: getenv("DB_PORT", "3306"),
		DBUser: getenv("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBName: getenv("DB_NAME", "finance_tracker"),

		JWTSecret:       getenv("JWT_SECRET", "dev-secret-change-me"),
		AccessTokenTTL:  getenvDuration("ACCESS_TOKEN_TTL", 30*time.Minute),
		RefreshTokenTTL: getenvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),

		RedisAddr:        os.Getenv("REDIS_ADDR"),
		InsightsCacheTTL: getenvDuration("INSIGHTS_CACHE_TTL", 5*time.Minute),

		KafkaTopic: getenv("KAFKA_TOPIC", "transaction-events"),

		RateLimit: getenvFloat("RATE_LIMIT", 20),
		RateBurst: getenvInt("RATE_BURST", 40),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	if cfg.JWTSecret == "dev-secret-change-me" {
		log.Warn().Msg("JWT_SECRET not set, using insecure development secret")
	}
	return cfg
}

// DSN builds the MySQL connection string. parseTime makes the driver return
// DATE columns as time.Time.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid duration, using default")
		return fallback
	}
	return d
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid integer, using default")
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid number, using default")
		return fallback
	}
	return f
}
