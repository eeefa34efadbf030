package walletbridge

import "github.com/gabapcia/walletcore/internal/ffi"

// gate is the receiver registered with the engine. It admits notifications
// only while the bridge is open and frees the transient record of any
// notification it turns away.
type gate struct {
	b    *Bridge
	next ffi.Callbacks
}

var _ ffi.Callbacks = (*gate)(nil)

func (g *gate) record(kind ffi.TxKind, tx ffi.Token, deliver func(ffi.Token)) {
	if !g.b.acquireNotification() {
		if tx != ffi.Null {
			g.b.engine.TxDestroy(kind, tx)
		}
		return
	}
	defer g.b.inflight.Done()

	deliver(tx)
}

func (g *gate) correlation(deliver func()) {
	if !g.b.acquireNotification() {
		return
	}
	defer g.b.inflight.Done()

	deliver()
}

func (g *gate) OnTxReceived(tx ffi.Token) {
	g.record(ffi.TxKindPendingInbound, tx, g.next.OnTxReceived)
}

func (g *gate) OnTxReplyReceived(tx ffi.Token) {
	g.record(ffi.TxKindCompleted, tx, g.next.OnTxReplyReceived)
}

func (g *gate) OnTxFinalized(tx ffi.Token) {
	g.record(ffi.TxKindCompleted, tx, g.next.OnTxFinalized)
}

func (g *gate) OnTxBroadcast(tx ffi.Token) {
	g.record(ffi.TxKindCompleted, tx, g.next.OnTxBroadcast)
}

func (g *gate) OnTxMined(tx ffi.Token) {
	g.record(ffi.TxKindCompleted, tx, g.next.OnTxMined)
}

func (g *gate) OnTxCancellation(tx ffi.Token) {
	g.record(ffi.TxKindCompleted, tx, g.next.OnTxCancellation)
}

func (g *gate) OnDirectSendResult(txID []byte, success bool) {
	g.correlation(func() { g.next.OnDirectSendResult(txID, success) })
}

func (g *gate) OnStoreAndForwardSendResult(txID []byte, success bool) {
	g.correlation(func() { g.next.OnStoreAndForwardSendResult(txID, success) })
}

func (g *gate) OnBaseNodeSyncComplete(requestID []byte, success bool) {
	g.correlation(func() { g.next.OnBaseNodeSyncComplete(requestID, success) })
}

// nopCallbacks frees every record and ignores everything else.
type nopCallbacks struct {
	engine ffi.TxAPI
}

func (n nopCallbacks) free(kind ffi.TxKind, tx ffi.Token) {
	if tx != ffi.Null {
		n.engine.TxDestroy(kind, tx)
	}
}

func (n nopCallbacks) OnTxReceived(tx ffi.Token)      { n.free(ffi.TxKindPendingInbound, tx) }
func (n nopCallbacks) OnTxReplyReceived(tx ffi.Token) { n.free(ffi.TxKindCompleted, tx) }
func (n nopCallbacks) OnTxFinalized(tx ffi.Token)     { n.free(ffi.TxKindCompleted, tx) }
func (n nopCallbacks) OnTxBroadcast(tx ffi.Token)     { n.free(ffi.TxKindCompleted, tx) }
func (n nopCallbacks) OnTxMined(tx ffi.Token)         { n.free(ffi.TxKindCompleted, tx) }
func (n nopCallbacks) OnTxCancellation(tx ffi.Token)  { n.free(ffi.TxKindCompleted, tx) }

func (nopCallbacks) OnDirectSendResult([]byte, bool)          {}
func (nopCallbacks) OnStoreAndForwardSendResult([]byte, bool) {}
func (nopCallbacks) OnBaseNodeSyncComplete([]byte, bool)      {}
