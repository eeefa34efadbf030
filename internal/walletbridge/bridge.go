// Package walletbridge owns the engine wallet instance and exposes every
// wallet operation in terms of the domain model.
//
// At most one Bridge exists per process. It is built explicitly, handed to
// its consumers, and torn down with Close, which waits for in-flight engine
// notifications before freeing the wallet so a notification never observes a
// destroyed instance.
package walletbridge

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/gabapcia/walletcore/internal/ffi"
	"github.com/gabapcia/walletcore/internal/pkg/logger"
	"github.com/gabapcia/walletcore/internal/wallet"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultMinimumFee is the smallest fee accepted by SendTx.
const DefaultMinimumFee wallet.MicroTari = 100

// instance guards the one-bridge-per-process rule.
var instance atomic.Bool

// CallbacksFactory builds the receiver of engine notifications for b. It is
// called before the engine wallet is created, so the receiver is registered
// before first use.
type CallbacksFactory func(b *Bridge) ffi.Callbacks

// Publisher receives bridge-originated domain events.
type Publisher interface {
	Publish(event any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(any) {}

// Bridge is the sole owner of the engine wallet.
type Bridge struct {
	engine ffi.Engine

	mu       sync.RWMutex
	wallet   *ffi.Wallet
	closed   bool
	inflight sync.WaitGroup
	ready    chan struct{}

	ownedConfig *ffi.CommsConfig
	ownKey      wallet.PublicKey

	minFee    wallet.MicroTari
	publisher Publisher
	tracer    trace.Tracer
}

type config struct {
	minFee    wallet.MicroTari
	publisher Publisher
	tracer    trace.Tracer
}

// Option configures a Bridge.
type Option func(*config)

// WithMinimumFee overrides DefaultMinimumFee.
func WithMinimumFee(fee wallet.MicroTari) Option {
	return func(c *config) {
		c.minFee = fee
	}
}

// WithPublisher sets where bridge events such as ContactAddedOrUpdated go.
func WithPublisher(p Publisher) Option {
	return func(c *config) {
		c.publisher = p
	}
}

// WithTracer overrides the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		c.tracer = t
	}
}

// New creates the engine wallet from commsConfig, which stays owned by the
// caller, and registers the receiver built by newCallbacks. The directory of
// logPath must be writable, otherwise wallet.ErrFilesystemUnavailable is
// returned. It fails with wallet.ErrBridgeInitFailed when the engine reports
// an error or when another Bridge is still open.
func New(ctx context.Context, engine ffi.Engine, commsConfig *ffi.CommsConfig, logPath string, newCallbacks CallbacksFactory, opts ...Option) (*Bridge, error) {
	if err := ffi.CheckWritableDir(filepath.Dir(logPath)); err != nil {
		return nil, err
	}

	if !instance.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("%w: another instance is open", wallet.ErrBridgeInitFailed)
	}

	b, err := newBridge(ctx, engine, commsConfig, logPath, newCallbacks, opts...)
	if err != nil {
		instance.Store(false)
		return nil, err
	}

	return b, nil
}

func newBridge(ctx context.Context, engine ffi.Engine, commsConfig *ffi.CommsConfig, logPath string, newCallbacks CallbacksFactory, opts ...Option) (*Bridge, error) {
	cfg := config{
		minFee:    DefaultMinimumFee,
		publisher: nopPublisher{},
		tracer:    otel.Tracer("github.com/gabapcia/walletcore/internal/walletbridge"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Bridge{
		engine:    engine,
		ready:     make(chan struct{}),
		minFee:    cfg.minFee,
		publisher: cfg.publisher,
		tracer:    cfg.tracer,
	}
	defer close(b.ready)

	var next ffi.Callbacks = nopCallbacks{engine: engine}
	if newCallbacks != nil {
		next = newCallbacks(b)
	}

	w, err := ffi.CreateWallet(engine, commsConfig, logPath, &gate{b: b, next: next})
	if err != nil {
		b.closed = true
		return nil, errors.Join(wallet.ErrBridgeInitFailed, err)
	}

	pk, err := w.PublicKey()
	if err == nil {
		b.ownKey, err = copyPublicKey(pk)
		pk.Destroy()
	}
	if err != nil {
		b.closed = true
		w.Destroy()
		return nil, errors.Join(wallet.ErrBridgeInitFailed, err)
	}

	b.wallet = w
	logger.Info(ctx, "wallet bridge opened", "wallet.public_key", b.ownKey.Hex, "wallet.log_path", logPath)

	return b, nil
}

// Engine returns the foreign surface the wallet runs on. Callback receivers
// use it to wrap the transient tokens they are handed.
func (b *Bridge) Engine() ffi.Engine {
	return b.engine
}

// Close destroys the engine wallet and any default handle the bridge created.
// It waits for notifications already being delivered and refuses new ones.
// Close must not be called from inside a notification. Calling it twice is a
// no-op.
func (b *Bridge) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	b.inflight.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.wallet.Destroy()
	b.wallet = nil
	b.ownedConfig.Destroy()
	b.ownedConfig = nil

	instance.Store(false)
}

// with runs fn against the live wallet, or fails with ErrBridgeClosed.
func (b *Bridge) with(fn func(w *ffi.Wallet) error) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed || b.wallet == nil {
		return wallet.ErrBridgeClosed
	}
	return fn(b.wallet)
}

// acquireNotification admits one notification, blocking until construction
// has finished. It returns false once the bridge is closing.
func (b *Bridge) acquireNotification() bool {
	<-b.ready

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed || b.wallet == nil {
		return false
	}
	b.inflight.Add(1)
	return true
}

func (b *Bridge) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return b.tracer.Start(ctx, "walletbridge."+name)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func copyPublicKey(pk *ffi.PublicKey) (wallet.PublicKey, error) {
	hex, err := pk.Hex()
	if err != nil {
		return wallet.PublicKey{}, err
	}

	emoji, err := pk.EmojiID()
	if err != nil {
		return wallet.PublicKey{}, err
	}

	return wallet.PublicKey{Hex: hex, EmojiID: emoji}, nil
}
