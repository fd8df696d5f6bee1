package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mercadito/retail-api/pkg/database"
)

// Config collects every runtime setting of the service. Values come from the
// environment, optionally seeded from a .env file in the working directory.
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	HTTPPort       string
	JaegerEndpoint string
	Database       database.Config
}

// IsDevelopment reports whether the service runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads configuration from the environment. A missing .env file is not
// an error; exported variables alone are enough.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ServiceName:    getEnv("SERVICE_NAME", "retail-api"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "retaildb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
