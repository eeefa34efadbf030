// Package http builds the retrying HTTP clients used by walletd.
//
// Clients are retryablehttp clients whose internal logging is routed to the
// walletd logger at debug level.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gabapcia/walletcore/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
	userAgent    string
	checkRetry   retryablehttp.CheckRetry
}

type Option func(*config)

// leveledLogger forwards retryablehttp messages to the walletd logger.
// Messages from the client carry no request context.
type leveledLogger struct{}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, kv ...any) { logger.Debug(context.Background(), msg, kv...) }
func (leveledLogger) Warn(msg string, kv ...any)  { logger.Debug(context.Background(), msg, kv...) }
func (leveledLogger) Info(msg string, kv ...any)  { logger.Debug(context.Background(), msg, kv...) }
func (leveledLogger) Debug(msg string, kv ...any) { logger.Debug(context.Background(), msg, kv...) }

// NewClient returns a client with a 5s request timeout and 2 retries waiting
// between 1s and 5s.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
		userAgent:    "walletd",
		checkRetry:   retryablehttp.DefaultRetryPolicy,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{}
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.CheckRetry = cfg.checkRetry

	if ua := cfg.userAgent; ua != "" {
		client.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, _ int) {
			req.Header.Set("User-Agent", ua)
		}
	}

	return client
}

// WithTimeout bounds a single attempt. Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is sent again.
// Default: 2.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithUserAgent sets the User-Agent header of every attempt. An empty value
// keeps the Go default. Default: "walletd".
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// WithCheckRetry replaces the policy deciding whether a response or error is
// retried. Default: retryablehttp.DefaultRetryPolicy.
func WithCheckRetry(fn retryablehttp.CheckRetry) Option {
	return func(c *config) {
		c.checkRetry = fn
	}
}

// NoRetryOnServerError retries transport failures only. A response, whatever
// its status, ends the loop.
func NoRetryOnServerError(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if resp != nil {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}
