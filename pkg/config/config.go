package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	FBIAPIKey   string // reserved for a future FBI CDE integration, unused today
	FrontendDir string

	// Optional upstream base-URL overrides, mainly for local testing.
	OpenMeteoURL string
	NWSURL       string
	AmberFeedURL string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "5002"),
		FBIAPIKey:    getEnv("FBI_API_KEY", ""),
		FrontendDir:  getEnv("FRONTEND_DIR", "./web"),
		OpenMeteoURL: getEnv("OPEN_METEO_URL", ""),
		NWSURL:       getEnv("NWS_API_URL", ""),
		AmberFeedURL: getEnv("AMBER_FEED_URL", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
