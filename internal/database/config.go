package database

import (
	"fmt"
	"strings"

	"github.com/openscholar/review-service/internal/config"
)

// Config holds database connection configuration.
type Config struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Host:     config.GetEnv("DB_HOST", "localhost"),
		User:     config.GetEnv("DB_USER", "postgres"),
		Password: config.GetEnv("DB_PASSWORD", "postgres"),
		DBName:   config.GetEnv("DB_NAME", "review_service"),
		Port:     config.GetEnv("DB_PORT", "5432"),
		SSLMode:  config.GetEnv("DB_SSLMODE", "disable"),
		TimeZone: config.GetEnv("DB_TIMEZONE", "UTC"),
	}
}

// BuildDSN constructs a PostgreSQL DSN string from configuration.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
}

// SanitizeError removes the password from connection error messages.
func SanitizeError(err error, cfg Config) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if cfg.Password != "" {
		msg = strings.ReplaceAll(msg, cfg.Password, "***")
	}
	return fmt.Errorf("failed to connect to database: %s", msg)
}
