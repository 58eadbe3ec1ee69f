package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/nearbyprices/price-service/pkg/logging"
)

// config holds the service configuration, sourced from the environment
// (optionally seeded from a .env file).
type config struct {
	Port          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MongoURI      string
	MongoDB       string
	CacheTTL      time.Duration
	LogLevel      logging.LogLevel
	LogPretty     bool
}

// loadConfig reads configuration from the environment with defaults
// matching a local development setup.
func loadConfig() config {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	return config{
		Port:          getEnv("PORT", "3000"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "nearbyPrices"),
		CacheTTL:      getEnvDuration("CACHE_TTL", time.Hour),
		LogLevel:      logging.LogLevel(getEnv("LOG_LEVEL", "info")),
		LogPretty:     getEnvBool("LOG_PRETTY", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
