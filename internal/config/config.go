package config

import (
	"os"
	"strconv"
	"time"
)

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	AppHost            string
	AppScheme          string
	Port               string
	Timezone           string
	ShutdownTimeoutSec int
	MetricsEnabled     bool
	SwaggerEnabled     bool
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:            getEnv("APP_HOST", "localhost:8080"),
		AppScheme:          getEnv("APP_SCHEME", "http"),
		Port:               getEnv("PORT", "8080"),
		Timezone:           getEnv("APP_TIMEZONE", "Local"),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		SwaggerEnabled:     getEnvBool("SWAGGER_ENABLED", true),
	}
}

// Location resolves Timezone to a *time.Location.
// Unknown names fall back to time.Local so a typo never stops the page from rendering.
func (c *AppConfig) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ShutdownTimeout returns the graceful shutdown bound.
func (c *AppConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
