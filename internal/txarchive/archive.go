// Package txarchive keeps a persistent history of every transaction state the
// wallet reports, along with the time of the last successful base node sync.
//
// Events are taken from the bus and written by a single background worker,
// so bus delivery never waits on storage. Repeated notifications for the
// same transaction state are written once.
package txarchive

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/walletcore/internal/eventbus"
	"github.com/gabapcia/walletcore/internal/pkg/logger"
	"github.com/gabapcia/walletcore/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletcore/internal/pkg/x/chflow"
	"github.com/gabapcia/walletcore/internal/wallet"

	lru "github.com/hashicorp/golang-lru/v2"
)

var ErrArchiveAlreadyStarted = errors.New("archive already started")

const (
	defaultQueueSize = 64
	defaultSeenSize  = 1024
)

// seenKey identifies one transaction state.
type seenKey struct {
	kind   wallet.TxKind
	id     wallet.ID
	status wallet.TxStatus
}

// item is a unit of work for the worker: either a record or a sync time.
type item struct {
	rec      *Record
	syncedAt time.Time
}

type Archive struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc func()

	bus   *eventbus.Bus
	subID eventbus.SubscriberID
	store Store
	retry retry.Retry
	now   func() time.Time
	seen  *lru.Cache[seenKey, struct{}]
	queue chan item
}

type config struct {
	retry     retry.Retry
	queueSize int
	seenSize  int
	now       func() time.Time
}

type Option func(*config)

// WithRetry sets the retry policy for store writes. Default: 3 attempts
// with a backoff from 200ms to 2s, logging each failure.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithQueueSize sets how many pending writes are buffered before new events
// are dropped. Default: 64.
func WithQueueSize(n int) Option {
	return func(c *config) {
		c.queueSize = n
	}
}

// WithSeenSize sets how many transaction states are remembered for
// deduplication. Default: 1024.
func WithSeenSize(n int) Option {
	return func(c *config) {
		c.seenSize = n
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

func New(bus *eventbus.Bus, store Store, opts ...Option) (*Archive, error) {
	cfg := config{
		queueSize: defaultQueueSize,
		seenSize:  defaultSeenSize,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.retry == nil {
		cfg.retry = retry.New(
			retry.WithDelay(200*time.Millisecond),
			retry.WithMaxDelay(2*time.Second),
			retry.WithOnRetry(func(n uint, err error) {
				logger.Warn(context.Background(), "tx archive write failed, retrying", "retry.attempt", n+1, "error", err)
			}),
		)
	}

	seen, err := lru.New[seenKey, struct{}](cfg.seenSize)
	if err != nil {
		return nil, err
	}

	return &Archive{
		bus:   bus,
		subID: eventbus.NewSubscriberID(),
		store: store,
		retry: cfg.retry,
		now:   cfg.now,
		seen:  seen,
		queue: make(chan item, cfg.queueSize),
	}, nil
}

// Start subscribes to the bus and launches the writer.
func (a *Archive) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.isStarted {
		return ErrArchiveAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	a.closeFunc = func() {
		a.bus.Unsubscribe(a.subID)
		cancel()
		<-done
	}

	go func() {
		defer close(done)
		a.run(ctx)
	}()

	a.subscribe(ctx)

	a.isStarted = true
	return nil
}

// Close unsubscribes and waits for the write in progress. Queued writes are
// discarded.
func (a *Archive) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closeFunc != nil {
		a.closeFunc()
	}
	a.isStarted = false
	a.closeFunc = nil
}

func subscribeTx[T any](a *Archive, ctx context.Context, event string, tx func(T) wallet.Tx) {
	eventbus.Subscribe(a.bus, a.subID, func(e T) {
		a.enqueue(ctx, item{rec: &Record{Tx: tx(e), Event: event}})
	})
}

func (a *Archive) subscribe(ctx context.Context) {
	subscribeTx(a, ctx, "received", func(e wallet.TxReceived) wallet.Tx { return e.Tx })
	subscribeTx(a, ctx, "reply_received", func(e wallet.TxReplyReceived) wallet.Tx { return e.Tx })
	subscribeTx(a, ctx, "finalized", func(e wallet.TxFinalized) wallet.Tx { return e.Tx })
	subscribeTx(a, ctx, "broadcast", func(e wallet.TxBroadcast) wallet.Tx { return e.Tx })
	subscribeTx(a, ctx, "mined", func(e wallet.TxMined) wallet.Tx { return e.Tx })
	subscribeTx(a, ctx, "cancelled", func(e wallet.TxCancelled) wallet.Tx { return e.Tx })

	eventbus.Subscribe(a.bus, a.subID, func(e wallet.BaseNodeSyncComplete) {
		if e.Success {
			a.enqueue(ctx, item{syncedAt: a.now()})
		}
	})
}

// enqueue never blocks the publisher. When the queue is full the item is
// dropped.
func (a *Archive) enqueue(ctx context.Context, it item) {
	if !chflow.TrySend(a.queue, it) {
		logger.Warn(ctx, "tx archive queue full, event dropped")
	}
}

func (a *Archive) run(ctx context.Context) {
	for {
		it, ok := chflow.Receive(ctx, a.queue)
		if !ok {
			return
		}

		if it.rec != nil {
			a.saveTx(ctx, *it.rec)
			continue
		}
		a.saveSyncTime(ctx, it.syncedAt)
	}
}

func (a *Archive) saveTx(ctx context.Context, rec Record) {
	key := seenKey{kind: rec.Tx.Kind, id: rec.Tx.ID, status: rec.Tx.Status}
	if a.seen.Contains(key) {
		logger.Debug(ctx, "tx state already archived", "tx.id", rec.Tx.ID.String(), "tx.status", rec.Tx.Status.String())
		return
	}

	rec.ArchivedAt = a.now()
	err := a.retry.Execute(ctx, func() error {
		return a.store.SaveTx(ctx, rec)
	})
	if err != nil {
		logger.Error(ctx, "tx archive write failed", "tx.id", rec.Tx.ID.String(), "tx.event", rec.Event, "error", err)
		return
	}

	a.seen.Add(key, struct{}{})
}

func (a *Archive) saveSyncTime(ctx context.Context, t time.Time) {
	err := a.retry.Execute(ctx, func() error {
		return a.store.SaveLastSyncTime(ctx, t)
	})
	if err != nil {
		logger.Error(ctx, "last sync time write failed", "error", err)
	}
}

// Txs returns up to limit archived records, newest first.
func (a *Archive) Txs(ctx context.Context, limit int) ([]Record, error) {
	return a.store.ListTxs(ctx, limit)
}

// LastSyncTime returns the time of the last successful base node sync, or
// ErrNoSyncRecorded.
func (a *Archive) LastSyncTime(ctx context.Context) (time.Time, error) {
	return a.store.LastSyncTime(ctx)
}
