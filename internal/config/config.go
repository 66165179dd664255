package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultLoadLimit = 10

type Config struct {
	LogLevel string

	// Defaults applied to new search criteria
	DefaultSearchMode string
	DefaultVideoKind  string
	DefaultLoadLimit  int
}

// Load reads configuration from the environment. Values from a .env file in
// the working directory are used for variables that are not already set.
func Load() *Config {
	_ = godotenv.Load()

	loadLimit, _ := strconv.Atoi(getEnvOrDefault("DEFAULT_LOAD_LIMIT", strconv.Itoa(defaultLoadLimit)))
	if loadLimit <= 0 {
		loadLimit = defaultLoadLimit
	}

	return &Config{
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		DefaultSearchMode: getEnvOrDefault("DEFAULT_SEARCH_MODE", "channel"),
		DefaultVideoKind:  getEnvOrDefault("DEFAULT_VIDEO_KIND", "broadcast"),
		DefaultLoadLimit:  loadLimit,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
