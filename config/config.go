package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"car_rental_app_go/logger"

	"github.com/joho/godotenv"
)

const (
	// DefaultSearchRetentionDays is how long an idle visitor's saved search is kept
	DefaultSearchRetentionDays = 30
	// DefaultCleanupSchedule runs the retention job every night at 03:00
	DefaultCleanupSchedule = "0 3 * * *"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	LogLevel    string
	// Other
	AllowedOrigins []string
	AppURL         string
	SecureCookies  bool
	// Search sync
	SearchRetentionDays int
	CleanupSchedule     string
	Timezone            string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	defaultLevel := "debug"
	if environment == "production" {
		defaultLevel = "info"
	}

	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		DBPath:              getEnv("DB_PATH", "db/app.db"),
		Environment:         environment,
		LogLevel:            getEnv("LOG_LEVEL", defaultLevel),
		AllowedOrigins:      strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AppURL:              getEnv("APP_URL", "http://localhost:8080"),
		SecureCookies:       getEnvBool("SECURE_COOKIES", environment == "production"),
		SearchRetentionDays: getEnvInt("SEARCH_RETENTION_DAYS", DefaultSearchRetentionDays),
		CleanupSchedule:     getEnv("CLEANUP_SCHEDULE", DefaultCleanupSchedule),
		Timezone:            getEnv("TIMEZONE", "UTC"),
	}
}

// Location returns the configured timezone, UTC when unknown
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsProduction reports whether the app runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		logger.Debugf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		logger.Warnf("Invalid value for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
