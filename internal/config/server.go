package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// ServerConfig holds the HTTP listener settings for the review API.
type ServerConfig struct {
	// Host to bind to. Empty means all interfaces.
	Host string
	// Port, with or without a leading colon.
	Port string
	// ReadTimeout bounds reading the entire request, body included.
	ReadTimeout time.Duration
	// WriteTimeout bounds writing the response.
	WriteTimeout time.Duration
	// IdleTimeout bounds keep-alive waits between requests.
	IdleTimeout time.Duration
}

// LoadServerConfigFromEnv loads server configuration from environment variables.
func LoadServerConfigFromEnv() ServerConfig {
	return ServerConfig{
		Host:         GetEnv("SERVER_HOST", ""),
		Port:         GetEnv("SERVER_PORT", ":8080"),
		ReadTimeout:  GetEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: GetEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  GetEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
	}
}

// Address returns the listen address in the host:port form http.Server expects.
func (c ServerConfig) Address() string {
	port := strings.TrimPrefix(c.Port, ":")
	if c.Host == "" {
		return ":" + port
	}
	return net.JoinHostPort(c.Host, port)
}

// Validate validates server configuration.
func (c ServerConfig) Validate() error {
	timeouts := map[string]time.Duration{
		"SERVER_READ_TIMEOUT":  c.ReadTimeout,
		"SERVER_WRITE_TIMEOUT": c.WriteTimeout,
		"SERVER_IDLE_TIMEOUT":  c.IdleTimeout,
	}
	for name, d := range timeouts {
		if d <= 0 {
			return fmt.Errorf("%s must be greater than 0", name)
		}
	}
	return nil
}
