package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"
)

type Config struct {
	Port          string
	StoreDriver   string
	DBPath        string
	MigrationsDir string
	MongoURI      string
	MongoDatabase string
	SessionSecret string
	CORSOrigins   []string
	LogLevel      string
}

func Load() Config {
	return Config{
		Port:          getEnv("PORT", "3000"),
		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", StoreSQLite)),
		DBPath:        getEnv("DB_PATH", "./data/timers.db"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "./migrations"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "timers"),
		SessionSecret: getEnv("SESSION_SECRET", "change-this-secret"),
		CORSOrigins:   getEnvList("CORS_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
