package syncctl

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/gabapcia/walletcore/internal/connectivity"
	"github.com/gabapcia/walletcore/internal/eventbus"
	"github.com/gabapcia/walletcore/internal/pkg/logger"
	"github.com/gabapcia/walletcore/internal/pkg/x/looper"
	"github.com/gabapcia/walletcore/internal/wallet"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var ErrControllerDestroyed = errors.New("sync controller destroyed")

// Controller is the sync session state machine.
type Controller struct {
	ctx    context.Context
	cancel context.CancelFunc

	loop      Loop
	bus       *eventbus.Bus
	subID     eventbus.SubscriberID
	conn      Connectivity
	listener  Listener
	cfg       config
	destroyed atomic.Bool
	state     atomic.Int32

	sessions metric.Int64Counter
	attempts metric.Int64Counter

	// Fields below are only touched from the loop.
	isReset   bool
	bridge    Bridge
	sessionID string
	startedAt time.Time

	retries    int
	attempt    uint64
	awaiting   bool
	hasPending bool
	pendingID  wallet.ID
	early      []wallet.BaseNodeSyncComplete

	received  int
	broadcast int
	cancelled int

	deadline looper.CancelFunc
	step     looper.CancelFunc
}

// New creates a controller and subscribes it to bus. Call Destroy to
// release the subscription.
func New(ctx context.Context, loop Loop, bus *eventbus.Bus, conn Connectivity, listener Listener, opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithCancel(ctx)

	meter := otel.Meter("github.com/gabapcia/walletcore/internal/syncctl")
	sessions, _ := meter.Int64Counter("walletcore.sync.sessions",
		metric.WithDescription("Finished sync sessions by outcome."))
	attempts, _ := meter.Int64Counter("walletcore.sync.attempts",
		metric.WithDescription("Base node sync requests issued."))

	c := &Controller{
		ctx:      ctx,
		cancel:   cancel,
		loop:     loop,
		bus:      bus,
		subID:    eventbus.NewSubscriberID(),
		conn:     conn,
		listener: listener,
		cfg:      cfg,
		sessions: sessions,
		attempts: attempts,
		isReset:  true,
	}

	c.subscribe()
	return c
}

func (c *Controller) subscribe() {
	eventbus.Subscribe(c.bus, c.subID, func(e wallet.BaseNodeSyncComplete) {
		c.post(func() {
			if c.State() == StateRunning && c.awaiting {
				c.onSyncComplete(e)
			}
		})
	})
	eventbus.Subscribe(c.bus, c.subID, func(wallet.TxReceived) {
		c.post(func() {
			if c.counting() {
				c.received++
			}
		})
	})
	eventbus.Subscribe(c.bus, c.subID, func(wallet.TxBroadcast) {
		c.post(func() {
			if c.counting() {
				c.broadcast++
			}
		})
	})
	eventbus.Subscribe(c.bus, c.subID, func(wallet.TxCancelled) {
		c.post(func() {
			if c.counting() {
				c.cancelled++
			}
		})
	})
}

// State returns the current phase. It is safe to call from any goroutine.
func (c *Controller) State() State {
	return State(c.state.Load())
}

func (c *Controller) setState(s State) {
	c.state.Store(int32(s))
}

func (c *Controller) counting() bool {
	s := c.State()
	return s == StateRunning || s == StateReceiving
}

// post runs fn on the loop unless the controller is destroyed by then.
func (c *Controller) post(fn func()) bool {
	if c.destroyed.Load() {
		return false
	}
	return c.loop.Post(func() {
		if !c.destroyed.Load() {
			fn()
		}
	})
}

func (c *Controller) after(d time.Duration, fn func()) looper.CancelFunc {
	return c.loop.PostDelayed(d, func() {
		if !c.destroyed.Load() {
			fn()
		}
	})
}

// Start begins a session using b. A session already in progress is left
// untouched.
func (c *Controller) Start(b Bridge) error {
	if !c.post(func() { c.start(b) }) {
		return ErrControllerDestroyed
	}
	return nil
}

func (c *Controller) start(b Bridge) {
	if s := c.State(); s != StateIdle {
		logger.Debug(c.ctx, "sync session already running", "sync.session_id", c.sessionID, "sync.state", s.String())
		return
	}

	c.bridge = b
	c.isReset = false
	c.received, c.broadcast, c.cancelled = 0, 0, 0
	c.retries = 0
	c.clearPending()
	c.sessionID = uuid.NewString()
	c.startedAt = c.cfg.now()
	c.setState(StateRunning)

	logger.Info(c.ctx, "sync session started", "sync.session_id", c.sessionID)
	c.cfg.onStage(StageChecking)

	c.checkNetwork()
}

func (c *Controller) timedOut() bool {
	return c.cfg.now().After(c.startedAt.Add(c.cfg.timeout))
}

func (c *Controller) checkNetwork() {
	if c.conn.NetworkState() != connectivity.NetworkConnected {
		logger.Warn(c.ctx, "sync check failed: no network connection", "sync.session_id", c.sessionID)
		c.step = c.after(c.cfg.minDisplay, func() { c.fail(NetworkConnectionError) })
		return
	}

	c.checkProxy()
}

func (c *Controller) checkProxy() {
	c.step = nil

	if c.timedOut() {
		c.fail(BaseNodeConnectionError)
		return
	}

	proxy := c.conn.ProxyState()
	if !proxy.Running {
		logger.Warn(c.ctx, "sync check failed: proxy not running", "sync.session_id", c.sessionID)
		c.step = c.after(c.cfg.minDisplay, func() { c.fail(BaseNodeConnectionError) })
		return
	}

	if !proxy.Bootstrapped() {
		logger.Debug(c.ctx, "proxy still bootstrapping",
			"sync.session_id", c.sessionID,
			"proxy.bootstrap_progress", proxy.BootstrapProgress,
		)
		c.step = c.after(c.cfg.bootstrapPoll, c.checkProxy)
		return
	}

	c.syncWithBaseNode()
}

func (c *Controller) clearPending() {
	c.awaiting = false
	c.hasPending = false
	c.pendingID = wallet.ID{}
	c.early = nil
}

func (c *Controller) stopDeadline() {
	if c.deadline != nil {
		c.deadline()
		c.deadline = nil
	}
}

func (c *Controller) stopTimers() {
	c.stopDeadline()
	if c.step != nil {
		c.step()
		c.step = nil
	}
}

func (c *Controller) syncWithBaseNode() {
	if c.timedOut() {
		c.fail(BaseNodeConnectionError)
		return
	}

	c.retries++
	c.attempt++
	c.clearPending()
	c.awaiting = true

	attempt := c.attempt
	logger.Debug(c.ctx, "sync with base node", "sync.session_id", c.sessionID, "sync.attempt", c.retries)
	c.attempts.Add(c.ctx, 1)

	c.stopDeadline()
	remaining := c.startedAt.Add(c.cfg.timeout).Sub(c.cfg.now())
	c.deadline = c.after(remaining, func() {
		if c.awaiting && c.attempt == attempt {
			logger.Warn(c.ctx, "base node sync timed out", "sync.session_id", c.sessionID)
			c.fail(BaseNodeConnectionError)
		}
	})

	b := c.bridge
	go func() {
		id, err := b.SyncWithBaseNode(c.ctx)
		c.post(func() { c.onSyncRequested(attempt, id, err) })
	}()
}

// onSyncRequested records the id of the request issued by attempt and
// replays any result that reached the loop before it.
func (c *Controller) onSyncRequested(attempt uint64, id wallet.ID, err error) {
	if attempt != c.attempt || !c.awaiting || c.State() != StateRunning {
		return
	}

	if err != nil {
		logger.Error(c.ctx, "base node sync request failed", "sync.session_id", c.sessionID, "error", err)
		c.fail(BaseNodeConnectionError)
		return
	}

	c.pendingID = id
	c.hasPending = true
	logger.Debug(c.ctx, "base node sync requested", "sync.session_id", c.sessionID, "sync.request_id", id.String())

	early := c.early
	c.early = nil
	for _, e := range early {
		if e.RequestID == id {
			c.onSyncComplete(e)
			return
		}
	}
}

func (c *Controller) onSyncComplete(e wallet.BaseNodeSyncComplete) {
	if !c.hasPending {
		c.early = append(c.early, e)
		return
	}

	if e.RequestID != c.pendingID {
		logger.Debug(c.ctx, "sync result ignored",
			"sync.session_id", c.sessionID,
			"sync.request_id", e.RequestID.String(),
			"sync.pending_id", c.pendingID.String(),
			"error", wallet.ErrStaleCallbackIgnored,
		)
		return
	}

	c.awaiting = false
	c.stopDeadline()

	if !e.Success {
		if c.retries >= c.cfg.maxRetries {
			c.fail(BaseNodeConnectionError)
			return
		}
		c.syncWithBaseNode()
		return
	}

	logger.Info(c.ctx, "base node sync succeeded", "sync.session_id", c.sessionID, "sync.attempt", c.retries)
	c.setState(StateReceiving)
	c.step = c.after(c.cfg.minDisplay, func() { c.report(0) })
}

// report shows the stages from i onward, skipping those with nothing to
// report. Counters are read as each stage comes up.
func (c *Controller) report(i int) {
	stages := [...]struct {
		stage Stage
		count int
	}{
		{StageReceivingTxs, c.received},
		{StageCompletingTxs, c.broadcast},
		{StageUpdatingTxs, c.cancelled},
	}

	for ; i < len(stages); i++ {
		if stages[i].count == 0 {
			continue
		}
		c.cfg.onStage(stages[i].stage)
		next := i + 1
		c.step = c.after(c.cfg.minDisplay, func() { c.report(next) })
		return
	}

	c.cfg.onStage(StageUpToDate)
	c.step = c.after(c.cfg.completionDelay, c.complete)
}

func (c *Controller) complete() {
	c.step = nil
	c.setState(StateIdle)
	c.sessions.Add(c.ctx, 1, metric.WithAttributes(attribute.String("outcome", "success")))

	logger.Info(c.ctx, "sync session completed",
		"sync.session_id", c.sessionID,
		"sync.received", c.received,
		"sync.cancelled", c.cancelled,
	)
	c.listener.UpdateHasCompleted(c.received, c.cancelled)
}

func (c *Controller) fail(reason FailureReason) {
	c.stopTimers()
	c.clearPending()
	c.setState(StateIdle)
	c.sessions.Add(c.ctx, 1, metric.WithAttributes(attribute.String("outcome", reason.String())))

	logger.Warn(c.ctx, "sync session failed",
		"sync.session_id", c.sessionID,
		"sync.reason", reason.String(),
		"error", reason.Err(),
	)
	c.listener.UpdateHasFailed(reason)
}

// Reset abandons the current session without reporting it. It does nothing
// if no session ran since the last reset.
func (c *Controller) Reset() {
	c.post(func() {
		if c.isReset {
			return
		}

		c.stopTimers()
		c.clearPending()
		c.retries = 0
		c.setState(StateIdle)
		c.isReset = true
	})
}

// Destroy unsubscribes from the bus and stops every pending timer. No
// listener call is made after Destroy returns, except one already running
// on the loop.
func (c *Controller) Destroy() {
	if !c.destroyed.CompareAndSwap(false, true) {
		return
	}

	c.bus.Unsubscribe(c.subID)
	c.cancel()
	c.loop.Post(func() {
		c.stopTimers()
		c.clearPending()
		c.setState(StateIdle)
	})
}
