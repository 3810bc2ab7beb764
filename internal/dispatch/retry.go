package dispatch

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// RetryPolicy defines how Send retries transient endpoint failures.
// The zero value disables retries.
type RetryPolicy struct {
	// MaxRetries is the maximum number of retry attempts (not including initial call).
	MaxRetries int
	// BaseDelay is the initial delay before the first retry.
	BaseDelay time.Duration
	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration
	// UseJitter scales each delay by a random factor in [0.5, 1.5).
	UseJitter bool
	// OnRetry, when set, is called before each backoff wait. attempt counts
	// retries from 1.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// DefaultRetryPolicy retries rate limits and server errors twice.
var DefaultRetryPolicy = RetryPolicy{
	MaxRetries: 2,
	BaseDelay:  500 * time.Millisecond,
	MaxDelay:   8 * time.Second,
	UseJitter:  true,
}

// retry calls fn until it succeeds, returns a permanent error, the
// attempts are exhausted or ctx is done.
func retry(ctx context.Context, policy RetryPolicy, fn func() error) error {
	var lastErr error
	attempts := max(policy.MaxRetries, 0) + 1

	for attempt := range attempts {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isRetryable(err) {
			return err
		}

		if attempt < attempts-1 {
			delay := backoff(attempt, policy)
			if policy.OnRetry != nil {
				policy.OnRetry(attempt+1, delay, err)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return lastErr
}

// backoff returns BaseDelay * 2^attempt, capped at MaxDelay.
func backoff(attempt int, policy RetryPolicy) time.Duration {
	base, limit := policy.BaseDelay, policy.MaxDelay
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	if limit <= 0 {
		limit = 30 * time.Second
	}

	delay := base
	for range attempt {
		delay *= 2
		if delay > limit {
			delay = limit
			break
		}
	}
	if policy.UseJitter {
		delay = time.Duration(float64(delay) * (0.5 + rand.Float64()))
	}
	return min(delay, limit)
}

// isRetryable reports whether err is worth another attempt: rate limits,
// server errors and transport failures are; cancellations, client errors
// and empty replies are not.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, ErrEmptyResponse) || errors.Is(err, ErrEmptyPrompt) {
		return false
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return retryableStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return retryableStatus(reqErr.HTTPStatusCode)
	}
	return true
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
