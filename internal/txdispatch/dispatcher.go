// Package txdispatch receives engine notifications on engine-owned threads
// and republishes them as domain events from the serialized loop.
//
// Record-bearing notifications are fully handled on the calling thread:
// fields are copied out and the transient record is destroyed before the
// callback returns. Only the resulting immutable event crosses onto the loop.
package txdispatch

import (
	"context"

	"github.com/gabapcia/walletcore/internal/ffi"
	"github.com/gabapcia/walletcore/internal/pkg/logger"
	"github.com/gabapcia/walletcore/internal/wallet"
	"github.com/gabapcia/walletcore/internal/walletbridge"
)

// Bridge is the part of the wallet bridge the dispatcher depends on.
type Bridge interface {
	Engine() ffi.Engine
	PublicKey(ctx context.Context) (wallet.PublicKey, error)
}

// Poster hands work to the serialized consumption context.
type Poster interface {
	Post(fn func()) bool
}

// Publisher delivers events to subscribers.
type Publisher interface {
	Publish(event any)
}

// loopPublisher publishes every event from the loop.
type loopPublisher struct {
	loop Poster
	bus  Publisher
}

func (p loopPublisher) Publish(event any) {
	p.loop.Post(func() { p.bus.Publish(event) })
}

// OnLoop returns a publisher that forwards each event to bus from loop.
func OnLoop(loop Poster, bus Publisher) walletbridge.Publisher {
	return loopPublisher{loop: loop, bus: bus}
}

// Dispatcher implements ffi.Callbacks.
type Dispatcher struct {
	ctx    context.Context
	bridge Bridge
	out    walletbridge.Publisher
}

var _ ffi.Callbacks = (*Dispatcher)(nil)

// New creates a dispatcher. ctx is used for logging only.
func New(ctx context.Context, b Bridge, loop Poster, bus Publisher) *Dispatcher {
	return &Dispatcher{
		ctx:    ctx,
		bridge: b,
		out:    OnLoop(loop, bus),
	}
}

// Factory adapts New to walletbridge.CallbacksFactory.
func Factory(ctx context.Context, loop Poster, bus Publisher) walletbridge.CallbacksFactory {
	return func(b *walletbridge.Bridge) ffi.Callbacks {
		return New(ctx, b, loop, bus)
	}
}

// record turns a transient record into an event. The record is destroyed
// before anything is published, and also when any step fails.
func (d *Dispatcher) record(callback string, kind ffi.TxKind, domainKind wallet.TxKind, token ffi.Token, event func(wallet.Tx) any) {
	rec := ffi.WrapTxRecord(d.bridge.Engine(), kind, token)
	defer rec.Destroy()

	own, err := d.bridge.PublicKey(d.ctx)
	if err != nil {
		logger.Warn(d.ctx, "tx notification dropped", "callback", callback, "error", err)
		return
	}

	tx, err := walletbridge.ExtractTx(rec, domainKind, own.Hex)
	if err != nil {
		logger.Warn(d.ctx, "tx notification dropped", "callback", callback, "error", err)
		return
	}
	rec.Destroy()

	logger.Debug(d.ctx, "tx notification", "callback", callback, "tx.id", tx.ID.String(), "tx.direction", tx.Direction.String())
	d.out.Publish(event(tx))
}

func (d *Dispatcher) OnTxReceived(tx ffi.Token) {
	d.record("OnTxReceived", ffi.TxKindPendingInbound, wallet.TxKindPendingInbound, tx, func(t wallet.Tx) any {
		return wallet.TxReceived{Tx: t}
	})
}

func (d *Dispatcher) OnTxReplyReceived(tx ffi.Token) {
	d.record("OnTxReplyReceived", ffi.TxKindCompleted, wallet.TxKindCompleted, tx, func(t wallet.Tx) any {
		return wallet.TxReplyReceived{Tx: t}
	})
}

func (d *Dispatcher) OnTxFinalized(tx ffi.Token) {
	d.record("OnTxFinalized", ffi.TxKindCompleted, wallet.TxKindCompleted, tx, func(t wallet.Tx) any {
		return wallet.TxFinalized{Tx: t}
	})
}

func (d *Dispatcher) OnTxBroadcast(tx ffi.Token) {
	d.record("OnTxBroadcast", ffi.TxKindCompleted, wallet.TxKindCompleted, tx, func(t wallet.Tx) any {
		return wallet.TxBroadcast{Tx: t}
	})
}

func (d *Dispatcher) OnTxMined(tx ffi.Token) {
	d.record("OnTxMined", ffi.TxKindCompleted, wallet.TxKindCompleted, tx, func(t wallet.Tx) any {
		return wallet.TxMined{Tx: t}
	})
}

func (d *Dispatcher) OnTxCancellation(tx ffi.Token) {
	d.record("OnTxCancellation", ffi.TxKindCompleted, wallet.TxKindCancelled, tx, func(t wallet.Tx) any {
		return wallet.TxCancelled{Tx: t}
	})
}

func (d *Dispatcher) correlation(callback string, raw []byte, event func(wallet.ID) any) {
	id, err := wallet.IDFromBytes(raw)
	if err != nil {
		logger.Warn(d.ctx, "correlation notification dropped", "callback", callback, "error", err)
		return
	}

	logger.Debug(d.ctx, "correlation notification", "callback", callback, "correlation.id", id.String())
	d.out.Publish(event(id))
}

func (d *Dispatcher) OnDirectSendResult(txID []byte, success bool) {
	d.correlation("OnDirectSendResult", txID, func(id wallet.ID) any {
		return wallet.DirectSendResult{TxID: id, Success: success}
	})
}

func (d *Dispatcher) OnStoreAndForwardSendResult(txID []byte, success bool) {
	d.correlation("OnStoreAndForwardSendResult", txID, func(id wallet.ID) any {
		return wallet.StoreAndForwardSendResult{TxID: id, Success: success}
	})
}

func (d *Dispatcher) OnBaseNodeSyncComplete(requestID []byte, success bool) {
	d.correlation("OnBaseNodeSyncComplete", requestID, func(id wallet.ID) any {
		return wallet.BaseNodeSyncComplete{RequestID: id, Success: success}
	})
}
