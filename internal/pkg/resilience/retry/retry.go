// Package retry runs an operation again when it fails with a transient error.
//
// It is a thin layer over retry-go with exponential backoff. Errors wrapped
// with Permanent, and context errors, stop the loop at once.
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithOnRetry(func(n uint, err error) { ... }),
//	)
//	err := r.Execute(ctx, func() error { return store.SaveTx(ctx, rec) })
package retry

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation with a retry policy.
type Retry interface {
	// Execute calls operation until it succeeds, the attempts run out, ctx is
	// done, or the error is not retryable. Only the last error is returned.
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
	onRetry  func(n uint, err error)
	retryIf  func(err error) bool
}

type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a policy with 3 attempts and a backoff starting at 1s, capped
// at 5s.
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    1 * time.Second,
		maxDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) retryable(err error) bool {
	if !retry.IsRecoverable(err) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if r.cfg.retryIf != nil {
		return r.cfg.retryIf(err)
	}
	return true
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(r.retryable),
		retry.Context(ctx),
	}
	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(r.cfg.onRetry))
	}

	return retry.Do(operation, options...)
}

// Permanent marks err as not worth retrying. Execute returns it unwrapped.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return retry.Unrecoverable(err)
}

// WithAttempts sets the total number of calls, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the backoff base.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the wait between two calls.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithOnRetry registers fn to be called after each failed call with a
// retryable error, the last one included. n starts at 0.
func WithOnRetry(fn func(n uint, err error)) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

// WithRetryIf restricts retries to the errors fn accepts. Context errors are
// never retried.
func WithRetryIf(fn func(err error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}
