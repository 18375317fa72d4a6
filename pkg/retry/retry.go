// Package retry provides retry logic with exponential backoff for operations.
package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Config holds retry strategy configuration.
type Config struct {
	// MaxAttempts is the maximum number of attempts (including the first one).
	MaxAttempts int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the delay between attempts.
	MaxDelay time.Duration
	// Multiplier is the exponential backoff multiplier.
	Multiplier float64
	// RetryableErrors is a list of error substrings to retry on.
	// If empty, every error is considered retryable.
	RetryableErrors []string
}

// DefaultConfig returns default retry configuration.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     5,
		InitialDelay:    1 * time.Second,
		MaxDelay:        30 * time.Second,
		Multiplier:      2.0,
		RetryableErrors: []string{},
	}
}

// PostgresConfig returns retry configuration suited for PostgreSQL connections.
func PostgresConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryableErrors = []string{
		"connection refused",
		"connection reset",
		"i/o timeout",
		"server closed the connection",
		"too many connections",
		"database system is starting up",
		"network is unreachable",
		"dial tcp",
		"connection timed out",
	}
	return cfg
}

// Do executes a function with retry logic.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	_, err := DoWithResult(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// DoWithResult executes a function with retry logic and returns its result.
func DoWithResult[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T

	if cfg.MaxAttempts <= 0 {
		return zero, fmt.Errorf("MaxAttempts must be greater than 0")
	}

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsRetryableError(err, cfg) {
			return zero, err
		}

		if attempt == cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(withJitter(backoffDelay(attempt, cfg))):
		}
	}

	return zero, lastErr
}

// backoffDelay computes the exponential backoff delay for an attempt.
func backoffDelay(attempt int, cfg Config) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	delay := float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	return time.Duration(delay)
}

// withJitter adds ±10% random jitter to a delay.
func withJitter(delay time.Duration) time.Duration {
	//nolint:gosec // math/rand is sufficient for jitter, no security requirement
	jitter := float64(delay) * 0.1 * (rand.Float64()*2 - 1)
	return delay + time.Duration(jitter)
}

// IsRetryableError checks whether an error should trigger a retry.
func IsRetryableError(err error, cfg Config) bool {
	if err == nil {
		return false
	}
	if len(cfg.RetryableErrors) == 0 {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range cfg.RetryableErrors {
		if strings.Contains(msg, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}
