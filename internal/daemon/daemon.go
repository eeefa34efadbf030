// Package daemon composes the long-running parts of walletd: the
// connectivity probe, the periodic sync and the on-demand sync used by the
// CLI.
package daemon

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/walletcore/internal/connectivity"
	"github.com/gabapcia/walletcore/internal/eventbus"
	"github.com/gabapcia/walletcore/internal/pkg/logger"
	"github.com/gabapcia/walletcore/internal/pkg/x/chflow"
	"github.com/gabapcia/walletcore/internal/syncctl"

	"golang.org/x/sync/errgroup"
)

var ErrDaemonAlreadyStarted = errors.New("daemon already started")

// Prober keeps the network state current.
type Prober interface {
	Start(ctx context.Context) error
	Close()
	Check(ctx context.Context) connectivity.NetworkState
}

type Daemon struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc func()

	bus      *eventbus.Bus
	subID    eventbus.SubscriberID
	bridge   syncctl.Bridge
	ctrl     *syncctl.Controller
	outcomes *syncctl.Notifier
	probe    Prober
	interval time.Duration
}

type config struct {
	probe       Prober
	interval    time.Duration
	listener    syncctl.Listener
	syncOptions []syncctl.Option
}

type Option func(*config)

// WithProbe sets the prober that updates the network state. Without one the
// network state is left to the caller.
func WithProbe(p Prober) Option {
	return func(c *config) {
		c.probe = p
	}
}

// WithInterval sets the delay between periodic syncs. Default: 5 minutes.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithListener receives every session outcome in addition to Sync callers.
func WithListener(l syncctl.Listener) Option {
	return func(c *config) {
		c.listener = l
	}
}

// WithSyncOptions configures the underlying sync controller.
func WithSyncOptions(opts ...syncctl.Option) Option {
	return func(c *config) {
		c.syncOptions = append(c.syncOptions, opts...)
	}
}

// New builds the daemon and its sync controller on loop. Call Destroy to
// release the controller.
func New(ctx context.Context, loop syncctl.Loop, bus *eventbus.Bus, conn syncctl.Connectivity, bridge syncctl.Bridge, opts ...Option) *Daemon {
	cfg := config{
		interval: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	outcomes := syncctl.NewNotifier(cfg.listener)

	d := &Daemon{
		bus:      bus,
		subID:    eventbus.NewSubscriberID(),
		bridge:   bridge,
		ctrl:     syncctl.New(ctx, loop, bus, conn, outcomes, cfg.syncOptions...),
		outcomes: outcomes,
		probe:    cfg.probe,
		interval: cfg.interval,
	}

	eventbus.Subscribe(bus, d.subID, func(e connectivity.NetworkStateChanged) {
		logger.Info(ctx, "network state changed", "network.state", e.State.String())
	})
	eventbus.Subscribe(bus, d.subID, func(e connectivity.ProxyStateChanged) {
		logger.Info(ctx, "proxy state changed", "proxy.state", e.State.String())
	})

	return d
}

// Start launches the probe and the periodic sync. The first sync starts
// right away.
func (d *Daemon) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isStarted {
		return ErrDaemonAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	if d.probe != nil {
		if err := d.probe.Start(ctx); err != nil {
			cancel()
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.syncEvery(gctx)
		return nil
	})

	d.closeFunc = func() {
		cancel()
		_ = g.Wait()
		if d.probe != nil {
			d.probe.Close()
		}
	}

	d.isStarted = true
	logger.Info(ctx, "daemon started", "sync.interval", d.interval.String())
	return nil
}

func (d *Daemon) syncEvery(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		if err := d.ctrl.Start(d.bridge); err != nil {
			logger.Warn(ctx, "periodic sync not started", "error", err)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Close stops the probe and the periodic sync, and abandons the session in
// progress. Sync callers still waiting get ErrSyncAbandoned.
func (d *Daemon) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closeFunc != nil {
		d.closeFunc()
	}
	d.ctrl.Reset()
	d.outcomes.Abandon()

	d.isStarted = false
	d.closeFunc = nil
}

// Sync runs a session and waits for its outcome. If a session is already
// running, Sync waits for that one instead. Outside of Start, the network
// is probed once first.
func (d *Daemon) Sync(ctx context.Context) (received, cancelled int, err error) {
	d.mu.Lock()
	probeOnce := !d.isStarted && d.probe != nil
	d.mu.Unlock()

	if probeOnce {
		d.probe.Check(ctx)
	}

	outcome, release := d.outcomes.Next()
	defer release()

	if err := d.ctrl.Start(d.bridge); err != nil {
		return 0, 0, err
	}

	o, ok := chflow.Receive(ctx, outcome)
	if !ok {
		return 0, 0, ctx.Err()
	}
	return o.Received, o.Cancelled, o.Err()
}

// State returns the phase of the sync controller.
func (d *Daemon) State() syncctl.State {
	return d.ctrl.State()
}

// Destroy closes the daemon and releases the controller and the bus
// subscriptions.
func (d *Daemon) Destroy() {
	d.Close()
	d.bus.Unsubscribe(d.subID)
	d.ctrl.Destroy()
}
