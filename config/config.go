package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Admin API key gating the admin route group. Empty means admin routes
	// reject every request (fail closed), not that they are open.
	AdminAPIKey string
	// Connection pool tuning for the Postgres store. Pool exhaustion
	// surfaces to callers as a storage error rather than unbounded queuing.
	DBMaxConns              int
	DBMinConns              int
	DBConnectTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:                    getEnv("PORT", "8080"),
		DBUrl:                   getEnv("DATABASE_URL", ""),
		FrontendURL:             strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		AdminAPIKey:             getEnv("ADMIN_API_KEY", ""),
		DBMaxConns:              getEnvInt("DB_MAX_CONNS", 25),
		DBMinConns:              getEnvInt("DB_MIN_CONNS", 5),
		DBConnectTimeoutSeconds: getEnvInt("DB_CONNECT_TIMEOUT_SECONDS", 5),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Falling back to the in-memory store; data will not survive a restart.")
	}
	if cfg.AdminAPIKey == "" {
		log.Println("WARNING: ADMIN_API_KEY is missing. Admin routes will reject every request.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
