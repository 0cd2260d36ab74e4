// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL (currency reference data, optional)
	PostgresDSN string

	// Engine
	RefreshInterval time.Duration
	FeedSize        int

	// Export
	ExportDir          string
	SpreadsheetTitle   string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "travelledger"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),

		RefreshInterval: time.Duration(getEnvAsInt("REFRESH_INTERVAL", 60)) * time.Second,
		FeedSize:        getEnvAsInt("FEED_SIZE", 10),

		ExportDir:          getEnv("EXPORT_DIR", "."),
		SpreadsheetTitle:   getEnv("GOOGLE_SPREADSHEET_TITLE", "Travel Ledger Summary"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRefreshToken: getEnv("GOOGLE_REFRESH_TOKEN", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
