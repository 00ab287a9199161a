package restclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultMaxAttempts       = 10
	DefaultBackoffMultiplier = time.Second
	DefaultBackoffMin        = 5 * time.Second
	DefaultBackoffMax        = 20 * time.Second
)

// BackoffFunc returns the wait after the given number of completed attempts.
type BackoffFunc func(attempt int) time.Duration

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// RetryPolicy decides how often and how long an operation is retried.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     BackoffFunc
	Retryable   func(err error) bool
	Sleep       SleepFunc
	Logger      *slog.Logger
}

// DefaultRetryPolicy retries rate limited calls up to 10 times, waiting
// between 5 and 20 seconds.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		Backoff:     ExponentialBackoff(DefaultBackoffMultiplier, DefaultBackoffMin, DefaultBackoffMax),
		Retryable:   IsRateLimited,
		Sleep:       SleepContext,
	}
}

// ExponentialBackoff returns multiplier * 2^(attempt-1) clamped to [floor, ceiling].
func ExponentialBackoff(multiplier, floor, ceiling time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		if attempt < 1 {
			attempt = 1
		}

		wait := ceiling
		// past 2^32 the product overflows and the ceiling applies anyway
		if attempt <= 32 {
			if exp := multiplier * time.Duration(uint64(1)<<(attempt-1)); exp >= 0 && exp < ceiling {
				wait = exp
			}
		}

		if wait < floor {
			wait = floor
		}

		return wait
	}
}

// IsRateLimited reports whether err is the rate limit signal.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimitReached)
}

// SleepContext waits for d, returning early with ctx's error on cancellation.
func SleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
	}
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	def := DefaultRetryPolicy()

	if p.MaxAttempts <= 0 {
		p.MaxAttempts = def.MaxAttempts
	}

	if p.Backoff == nil {
		p.Backoff = def.Backoff
	}

	if p.Retryable == nil {
		p.Retryable = def.Retryable
	}

	if p.Sleep == nil {
		p.Sleep = def.Sleep
	}

	if p.Logger == nil {
		p.Logger = slog.Default()
	}

	return p
}

// Retry runs op until it succeeds, fails with a non-retryable error or the
// attempts run out. On exhaustion the last error is returned as is.
func Retry[T any](ctx context.Context, policy RetryPolicy, op func(ctx context.Context, attempt int) (T, error)) (T, error) {
	policy = policy.withDefaults()

	var (
		result T
		err    error
	)

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		policy.Logger.DebugContext(ctx, "starting attempt", slog.Int("attempt", attempt))

		result, err = op(ctx, attempt)
		if err == nil || !policy.Retryable(err) {
			return result, err
		}

		if attempt == policy.MaxAttempts {
			break
		}

		wait := policy.Backoff(attempt)
		policy.Logger.DebugContext(ctx, "retrying with exponential backoff",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", wait),
			slog.Int("next_attempt", attempt+1),
			slog.String("error", err.Error()))

		if sleepErr := policy.Sleep(ctx, wait); sleepErr != nil {
			return result, errors.Join(err, sleepErr)
		}
	}

	policy.Logger.WarnContext(ctx, "retry exceeded",
		slog.Int("attempts", policy.MaxAttempts),
		slog.String("error", err.Error()))

	return result, err
}
