package prompting

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ThrottlingMarker is the substring a rate-limited API call carries in its
// error message. Failures without it are not retried.
const ThrottlingMarker = "(ThrottlingException)"

// Classification is the retry verdict for a failed call.
type Classification int

const (
	// Terminal failures propagate to the caller immediately.
	Terminal Classification = iota
	// Retryable failures are retried with backoff until the attempt
	// ceiling is reached.
	Retryable
)

// Classifier decides whether a failure is worth retrying.
type Classifier func(error) Classification

// ClassifyThrottling is the default Classifier: only throttled calls are
// retryable, everything else is terminal.
func ClassifyThrottling(err error) Classification {
	if err != nil && strings.Contains(err.Error(), ThrottlingMarker) {
		return Retryable
	}
	return Terminal
}

// RetryConfig controls the Retrier. It is a struct rather than a bare
// parameter so the attempt ceiling is visible at call sites.
type RetryConfig struct {
	// MaxAttempts bounds how many times the wrapped call may run,
	// first try included.
	MaxAttempts int
}

// DefaultRetryConfig allows two retries after the first attempt.
var DefaultRetryConfig = RetryConfig{MaxAttempts: 3}

// Retrier wraps fallible calls with bounded retry and linearly growing
// backoff. The zero value is not usable; construct with NewRetrier.
type Retrier struct {
	cfg      RetryConfig
	classify Classifier
	sleep    func(ctx context.Context, d time.Duration) error
	log      *slog.Logger
}

// RetrierOption customizes a Retrier.
type RetrierOption func(*Retrier)

// WithClassifier replaces the default throttling classifier.
func WithClassifier(c Classifier) RetrierOption {
	return func(r *Retrier) {
		if c != nil {
			r.classify = c
		}
	}
}

// WithRetryLogger lets the caller supply their own logger.
func WithRetryLogger(log *slog.Logger) RetrierOption {
	return func(r *Retrier) {
		if log != nil {
			r.log = log
		}
	}
}

// withSleep swaps the wait primitive; tests use it to observe backoff
// without sleeping.
func withSleep(fn func(ctx context.Context, d time.Duration) error) RetrierOption {
	return func(r *Retrier) { r.sleep = fn }
}

// NewRetrier builds a Retrier. A non-positive MaxAttempts falls back to
// DefaultRetryConfig.
func NewRetrier(cfg RetryConfig, opts ...RetrierOption) *Retrier {
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultRetryConfig
	}
	r := &Retrier{
		cfg:      cfg,
		classify: ClassifyThrottling,
		sleep:    sleepContext,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do runs fn, retrying throttled failures. The wait after a retryable
// failure on attempt i is (i+1)*2 seconds; no wait follows the final
// attempt or a terminal failure. Whatever error ends the loop is returned
// to the caller unchanged, never replaced with a synthetic one.
func (r *Retrier) Do(ctx context.Context, fn func() error) error {
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if r.classify(err) == Terminal || attempt == r.cfg.MaxAttempts-1 {
			return err
		}
		wait := backoffDelay(attempt)
		r.log.Warn(fmt.Sprintf("Rate limited. Waiting %d seconds...", int(wait/time.Second)))
		if serr := r.sleep(ctx, wait); serr != nil {
			return serr
		}
	}
	return nil // unreachable, MaxAttempts is always >= 1
}

// Retry runs fn through r and returns its result exactly as produced.
func Retry[T any](ctx context.Context, r *Retrier, fn func() (T, error)) (T, error) {
	var out T
	err := r.Do(ctx, func() error {
		v, err := fn()
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

// backoffDelay is deliberately linear, not exponential: the second wait is
// 4s, the third 6s. Uncapped and jitter-free.
func backoffDelay(attempt int) time.Duration {
	return time.Duration(attempt+1) * 2 * time.Second
}

// sleepContext blocks for d or until ctx is done, whichever comes first.
// A cancellation during the wait aborts the retry loop.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
