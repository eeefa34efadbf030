package connectivity

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gabapcia/walletcore/internal/pkg/logger"
	transporthttp "github.com/gabapcia/walletcore/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

var ErrProbeAlreadyStarted = errors.New("probe already started")

// NetworkSetter receives the outcome of each probe.
type NetworkSetter interface {
	SetNetworkState(s NetworkState)
}

// Probe periodically requests a URL and reports the result as the network
// state. Any response below 500 counts as connected.
type Probe struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc func()

	url      string
	interval time.Duration
	client   *retryablehttp.Client
	target   NetworkSetter
}

type probeConfig struct {
	interval time.Duration
	client   *retryablehttp.Client
}

type ProbeOption func(*probeConfig)

// WithInterval sets the delay between probes. Default: 10 seconds.
func WithInterval(d time.Duration) ProbeOption {
	return func(c *probeConfig) {
		c.interval = d
	}
}

// WithHTTPClient replaces the default client.
func WithHTTPClient(client *retryablehttp.Client) ProbeOption {
	return func(c *probeConfig) {
		c.client = client
	}
}

func NewProbe(url string, target NetworkSetter, opts ...ProbeOption) *Probe {
	cfg := probeConfig{
		interval: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.client == nil {
		cfg.client = transporthttp.NewClient(
			transporthttp.WithTimeout(3*time.Second),
			transporthttp.WithRetryMax(1),
			transporthttp.WithUserAgent("walletd-probe"),
			transporthttp.WithCheckRetry(transporthttp.NoRetryOnServerError),
		)
	}

	return &Probe{
		url:      url,
		interval: cfg.interval,
		client:   cfg.client,
		target:   target,
	}
}

// Check runs one probe and stores its result.
func (p *Probe) Check(ctx context.Context) NetworkState {
	state := p.check(ctx)
	p.target.SetNetworkState(state)
	return state
}

func (p *Probe) check(ctx context.Context) NetworkState {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		logger.Warn(ctx, "connectivity probe request invalid", "probe.url", p.url, "error", err)
		return NetworkDisconnected
	}

	resp, err := p.client.Do(req)
	if err != nil {
		logger.Debug(ctx, "connectivity probe failed", "probe.url", p.url, "error", err)
		return NetworkDisconnected
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		logger.Debug(ctx, "connectivity probe failed", "probe.url", p.url, "probe.status", resp.StatusCode)
		return NetworkDisconnected
	}

	return NetworkConnected
}

// Start probes once right away and then every interval until ctx is done
// or Close is called.
func (p *Probe) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isStarted {
		return ErrProbeAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.closeFunc = func() {
		cancel()
		<-done
	}

	go func() {
		defer close(done)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			p.Check(ctx)

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	p.isStarted = true
	return nil
}

func (p *Probe) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closeFunc != nil {
		p.closeFunc()
	}
	p.isStarted = false
	p.closeFunc = nil
}
