package retry

import (
	"context"
	"fmt"
	"math"
	"time"

	"contractor_pro/pkg/logger"
)

// Config holds retry strategy configuration
type Config struct {
	MaxAttempts       int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	BackoffMultiplier float64
}

// DefaultConfig returns the defaults used for collection writes
func DefaultConfig() *Config {
	return &Config{
		MaxAttempts:       3,
		InitialBackoff:    100 * time.Millisecond,
		MaxBackoff:        2 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// Do runs fn until it succeeds, the attempts are exhausted or ctx is done.
// Backoff grows exponentially between attempts.
func Do(ctx context.Context, cfg *Config, log logger.Logger, op string, fn func(ctx context.Context) error) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return fmt.Errorf("operation '%s' canceled after %d attempts: %w", op, attempt-1, lastErr)
			}
			return err
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt < attempts {
			backoff := calculateBackoff(attempt-1, cfg)
			log.WithFields(map[string]interface{}{
				"operation":    op,
				"attempt":      attempt,
				"max_attempts": attempts,
				"backoff":      backoff.String(),
			}).WithError(err).Warnf("operation failed, retrying")

			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return fmt.Errorf("operation '%s' canceled after %d attempts: %w", op, attempt, lastErr)
			case <-timer.C:
			}
		}
	}

	return fmt.Errorf("operation '%s' failed after %d attempts: %w", op, attempts, lastErr)
}

func calculateBackoff(attemptNum int, cfg *Config) time.Duration {
	mult := cfg.BackoffMultiplier
	if mult <= 0 {
		mult = 2.0
	}
	backoff := time.Duration(float64(cfg.InitialBackoff) * math.Pow(mult, float64(attemptNum)))
	if cfg.MaxBackoff > 0 && backoff > cfg.MaxBackoff {
		backoff = cfg.MaxBackoff
	}
	return backoff
}
