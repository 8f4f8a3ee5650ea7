package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Port         string
	Env          string
	StoreBackend string // redis | dynamodb | memory
	RedisURL     string
	DynamoTable  string
	JWTSecret    string
	TokenTTL     time.Duration
	StoreTimeout time.Duration

	// Behavior flags. Both default off to match the original storefront:
	// reviews may reference missing products and order status updates are
	// persisted without checking transition legality.
	StrictProductCheck      bool
	EnforceOrderTransitions bool
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		StoreBackend:            getEnv("STORE_BACKEND", "redis"),
		RedisURL:                getEnv("REDIS_URL", "redis://localhost:6379"),
		DynamoTable:             getEnv("DYNAMO_TABLE", "storefront-kv"),
		JWTSecret:               getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:                getDuration("TOKEN_TTL", 24*time.Hour),
		StoreTimeout:            getDuration("STORE_TIMEOUT", 3*time.Second),
		StrictProductCheck:      getBool("STRICT_PRODUCT_CHECK", false),
		EnforceOrderTransitions: getBool("ENFORCE_ORDER_TRANSITIONS", false),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
