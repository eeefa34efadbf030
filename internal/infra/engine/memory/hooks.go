package memory

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/gabapcia/walletcore/internal/ffi"
)

// ErrNoWallet is returned by the simulation hooks when no wallet exists.
var ErrNoWallet = errors.New("memory engine: no wallet")

// ErrUnknownTx is returned when the hook target does not match a stored tx.
var ErrUnknownTx = errors.New("memory engine: unknown tx")

type recordNotifier func(cb ffi.Callbacks, token ffi.Token)

// raiseAsync delivers a record-bearing notification from a fresh goroutine,
// the way the engine does from its own threads. Must be called with e.mu held.
func (e *Engine) raiseAsync(ws *walletState, notify recordNotifier, kind ffi.TxKind, tx txData) {
	cb := ws.callbacks
	if cb == nil {
		return
	}

	token := e.alloc(kindTx, txRecord{kind: kind, tx: tx})
	go notify(cb, token)
}

// raise allocates a transient record and returns a function that delivers it.
// The returned function must be called without e.mu held.
func (e *Engine) raise(ws *walletState, notify recordNotifier, kind ffi.TxKind, tx txData) func() {
	cb := ws.callbacks
	if cb == nil {
		return func() {}
	}

	token := e.alloc(kindTx, txRecord{kind: kind, tx: tx})
	return func() { notify(cb, token) }
}

func (e *Engine) activeWallet() (*walletState, error) {
	if e.walletToken == ffi.Null {
		return nil, ErrNoWallet
	}
	return e.wallet, nil
}

// ReceiveTx simulates a peer sending amount to the wallet. The tx is stored
// as pending inbound and OnTxReceived fires before ReceiveTx returns.
func (e *Engine) ReceiveTx(sourceHex string, amount uint64, message string) (uint64, error) {
	source, err := hex.DecodeString(sourceHex)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	ws, err := e.activeWallet()
	if err != nil {
		e.mu.Unlock()
		return 0, err
	}

	tx := e.newTx(source, ws.publicKey, amount, 0, message, StatusPending)
	ws.inbound = append(ws.inbound, tx)
	deliver := e.raise(ws, func(cb ffi.Callbacks, t ffi.Token) { cb.OnTxReceived(t) }, ffi.TxKindPendingInbound, tx)
	e.mu.Unlock()

	deliver()
	return tx.id, nil
}

// FinalizeReceivedTx completes a pending inbound tx and fires OnTxFinalized.
func (e *Engine) FinalizeReceivedTx(id uint64) error {
	e.mu.Lock()
	ws, err := e.activeWallet()
	if err != nil {
		e.mu.Unlock()
		return err
	}

	var (
		tx    txData
		found bool
	)
	for i, candidate := range ws.inbound {
		if candidate.id == id {
			tx, found = candidate, true
			ws.inbound = append(ws.inbound[:i], ws.inbound[i+1:]...)
			break
		}
	}
	if !found {
		e.mu.Unlock()
		return ErrUnknownTx
	}

	tx.status = StatusCompleted
	ws.completed = append(ws.completed, tx)
	ws.balance += tx.amount
	deliver := e.raise(ws, func(cb ffi.Callbacks, t ffi.Token) { cb.OnTxFinalized(t) }, ffi.TxKindCompleted, tx)
	e.mu.Unlock()

	deliver()
	return nil
}

// ReplyToSentTx completes a pending outbound tx as if the recipient answered,
// firing OnTxReplyReceived.
func (e *Engine) ReplyToSentTx(id uint64) error {
	e.mu.Lock()
	ws, err := e.activeWallet()
	if err != nil {
		e.mu.Unlock()
		return err
	}

	var (
		tx    txData
		found bool
	)
	for i, candidate := range ws.outbound {
		if candidate.id == id {
			tx, found = candidate, true
			ws.outbound = append(ws.outbound[:i], ws.outbound[i+1:]...)
			break
		}
	}
	if !found {
		e.mu.Unlock()
		return ErrUnknownTx
	}

	tx.status = StatusCompleted
	ws.completed = append(ws.completed, tx)
	deliver := e.raise(ws, func(cb ffi.Callbacks, t ffi.Token) { cb.OnTxReplyReceived(t) }, ffi.TxKindCompleted, tx)
	e.mu.Unlock()

	deliver()
	return nil
}

func (e *Engine) advanceCompleted(id uint64, status int32, notify recordNotifier) error {
	e.mu.Lock()
	ws, err := e.activeWallet()
	if err != nil {
		e.mu.Unlock()
		return err
	}

	idx := -1
	for i, candidate := range ws.completed {
		if candidate.id == id && !candidate.cancelled {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.mu.Unlock()
		return ErrUnknownTx
	}

	ws.completed[idx].status = status
	deliver := e.raise(ws, notify, ffi.TxKindCompleted, ws.completed[idx])
	e.mu.Unlock()

	deliver()
	return nil
}

// BroadcastTx marks a completed tx as broadcast and fires OnTxBroadcast.
func (e *Engine) BroadcastTx(id uint64) error {
	return e.advanceCompleted(id, StatusBroadcast, func(cb ffi.Callbacks, t ffi.Token) { cb.OnTxBroadcast(t) })
}

// MineTx marks a completed tx as mined and fires OnTxMined.
func (e *Engine) MineTx(id uint64) error {
	return e.advanceCompleted(id, StatusMined, func(cb ffi.Callbacks, t ffi.Token) { cb.OnTxMined(t) })
}

// CancelTx cancels a completed tx and fires OnTxCancellation.
func (e *Engine) CancelTx(id uint64) error {
	e.mu.Lock()
	ws, err := e.activeWallet()
	if err != nil {
		e.mu.Unlock()
		return err
	}

	idx := -1
	for i, candidate := range ws.completed {
		if candidate.id == id && !candidate.cancelled {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.mu.Unlock()
		return ErrUnknownTx
	}

	ws.completed[idx].cancelled = true
	if bytes.Equal(ws.completed[idx].source, ws.publicKey) {
		ws.balance += ws.completed[idx].amount + ws.completed[idx].fee
	}
	deliver := e.raise(ws, func(cb ffi.Callbacks, t ffi.Token) { cb.OnTxCancellation(t) }, ffi.TxKindCompleted, ws.completed[idx])
	e.mu.Unlock()

	deliver()
	return nil
}

func (e *Engine) callbacks() ffi.Callbacks {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.walletToken == ffi.Null {
		return nil
	}
	return e.wallet.callbacks
}

// DeliverSendResult fires the direct or store-and-forward result for txID.
func (e *Engine) DeliverSendResult(txID uint64, direct, success bool) {
	cb := e.callbacks()
	if cb == nil {
		return
	}

	if direct {
		cb.OnDirectSendResult(EncodeID(txID), success)
		return
	}
	cb.OnStoreAndForwardSendResult(EncodeID(txID), success)
}

// DeliverSyncResult fires OnBaseNodeSyncComplete for requestID.
func (e *Engine) DeliverSyncResult(requestID uint64, success bool) {
	e.DeliverRawSyncResult(EncodeID(requestID), success)
}

// DeliverRawSyncResult fires OnBaseNodeSyncComplete with an arbitrary id
// buffer, which lets tests feed ids wider than 64 bits.
func (e *Engine) DeliverRawSyncResult(requestID []byte, success bool) {
	if cb := e.callbacks(); cb != nil {
		cb.OnBaseNodeSyncComplete(requestID, success)
	}
}

// RaiseWithNullRecord fires the named record-bearing callback with a null
// token, mimicking an engine that fails to allocate the record.
func (e *Engine) RaiseWithNullRecord(name string) {
	cb := e.callbacks()
	if cb == nil {
		return
	}

	switch name {
	case "OnTxReceived":
		cb.OnTxReceived(ffi.Null)
	case "OnTxReplyReceived":
		cb.OnTxReplyReceived(ffi.Null)
	case "OnTxFinalized":
		cb.OnTxFinalized(ffi.Null)
	case "OnTxBroadcast":
		cb.OnTxBroadcast(ffi.Null)
	case "OnTxMined":
		cb.OnTxMined(ffi.Null)
	case "OnTxCancellation":
		cb.OnTxCancellation(ffi.Null)
	}
}

// PublicKeyHex returns the wallet identity key as uppercase hex.
func (e *Engine) PublicKeyHex() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, err := e.activeWallet()
	if err != nil {
		return "", err
	}
	return hexOf(ws.publicKey), nil
}

// RandomPublicKeyHex returns the uppercase hex of a fresh peer identity.
func RandomPublicKeyHex() string {
	return hexOf(publicFromPrivate(randomBytes(keyLength)))
}
