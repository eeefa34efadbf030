package memory_test

import (
	"testing"
	"time"

	"github.com/gabapcia/walletcore/internal/ffi"
	"github.com/gabapcia/walletcore/internal/infra/engine/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncResult struct {
	id      []byte
	success bool
}

// callbacks frees every record it is handed and forwards sync results.
type callbacks struct {
	engine  *memory.Engine
	records chan string
	syncs   chan syncResult
}

func newCallbacks(e *memory.Engine) *callbacks {
	return &callbacks{
		engine:  e,
		records: make(chan string, 16),
		syncs:   make(chan syncResult, 16),
	}
}

func (c *callbacks) record(name string, kind ffi.TxKind, tx ffi.Token) {
	c.engine.TxDestroy(kind, tx)
	c.records <- name
}

func (c *callbacks) OnTxReceived(tx ffi.Token) {
	c.record("received", ffi.TxKindPendingInbound, tx)
}
func (c *callbacks) OnTxReplyReceived(tx ffi.Token) {
	c.record("reply", ffi.TxKindCompleted, tx)
}
func (c *callbacks) OnTxFinalized(tx ffi.Token) {
	c.record("finalized", ffi.TxKindCompleted, tx)
}
func (c *callbacks) OnTxBroadcast(tx ffi.Token) {
	c.record("broadcast", ffi.TxKindCompleted, tx)
}
func (c *callbacks) OnTxMined(tx ffi.Token) {
	c.record("mined", ffi.TxKindCompleted, tx)
}
func (c *callbacks) OnTxCancellation(tx ffi.Token) {
	c.record("cancelled", ffi.TxKindCompleted, tx)
}
func (c *callbacks) OnDirectSendResult([]byte, bool)          {}
func (c *callbacks) OnStoreAndForwardSendResult([]byte, bool) {}
func (c *callbacks) OnBaseNodeSyncComplete(id []byte, success bool) {
	c.syncs <- syncResult{id: id, success: success}
}

func newWallet(t *testing.T, e *memory.Engine) (*ffi.Wallet, *callbacks) {
	t.Helper()

	cfg, err := ffi.NewCommsConfig(e, ffi.CommsConfigParams{
		PublicAddress: "/memory/0",
		Transport:     ffi.TransportMemory,
		DatabaseName:  "memory",
		DatastorePath: t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(cfg.Destroy)

	cb := newCallbacks(e)
	w, err := ffi.CreateWallet(e, cfg, "", cb)
	require.NoError(t, err)
	t.Cleanup(w.Destroy)

	return w, cb
}

func TestEngine_Wallet(t *testing.T) {
	t.Run("should allow one wallet at a time", func(t *testing.T) {
		// Arrange
		e := memory.New()
		newWallet(t, e)

		cfg, err := ffi.NewCommsConfig(e, ffi.CommsConfigParams{DatabaseName: "second", DatastorePath: t.TempDir()})
		require.NoError(t, err)
		defer cfg.Destroy()

		// Act
		_, err = ffi.CreateWallet(e, cfg, "", newCallbacks(e))

		// Assert
		code, ok := ffi.CallCode(err)
		assert.True(t, ok)
		assert.Equal(t, memory.CodeWalletExists, code)
	})

	t.Run("should refuse simulation hooks without a wallet", func(t *testing.T) {
		// Arrange
		e := memory.New()

		// Act
		_, err := e.ReceiveTx(memory.RandomPublicKeyHex(), 1, "")

		// Assert
		assert.ErrorIs(t, err, memory.ErrNoWallet)
	})

	t.Run("should count calls and inject failures", func(t *testing.T) {
		// Arrange
		e := memory.New(memory.WithInitialBalance(50))
		w, _ := newWallet(t, e)
		e.FailOn("WalletGetAvailableBalance", 11)

		// Act
		_, errFailed := w.AvailableBalance()
		e.FailOn("WalletGetAvailableBalance", 0)
		bal, err := w.AvailableBalance()

		// Assert
		code, _ := ffi.CallCode(errFailed)
		assert.Equal(t, int32(11), code)
		require.NoError(t, err)
		assert.Equal(t, uint64(50), bal)
		assert.Equal(t, 2, e.Calls("WalletGetAvailableBalance"))
	})
}

func TestEngine_Hooks(t *testing.T) {
	t.Run("should move an inbound tx through every stage", func(t *testing.T) {
		// Arrange
		e := memory.New()
		w, cb := newWallet(t, e)

		// Act
		id, err := e.ReceiveTx(memory.RandomPublicKeyHex(), 1000, "hi")
		require.NoError(t, err)
		pending, errPending := w.PendingIncomingBalance()
		require.NoError(t, e.FinalizeReceivedTx(id))
		require.NoError(t, e.BroadcastTx(id))
		require.NoError(t, e.MineTx(id))
		available, errAvailable := w.AvailableBalance()

		// Assert
		require.NoError(t, errPending)
		require.NoError(t, errAvailable)
		assert.Equal(t, uint64(1000), pending)
		assert.Equal(t, uint64(1000), available)
		for _, want := range []string{"received", "finalized", "broadcast", "mined"} {
			assert.Equal(t, want, <-cb.records)
		}
		assert.Len(t, e.LiveTokens(), 1)
	})

	t.Run("should return an error for an unknown tx", func(t *testing.T) {
		// Arrange
		e := memory.New()
		newWallet(t, e)

		// Act
		err := e.MineTx(99)

		// Assert
		assert.ErrorIs(t, err, memory.ErrUnknownTx)
	})

	t.Run("should refund a cancelled outbound tx", func(t *testing.T) {
		// Arrange
		e := memory.New(memory.WithInitialBalance(5000))
		w, cb := newWallet(t, e)

		dest, err := ffi.PublicKeyFromHex(e, memory.RandomPublicKeyHex())
		require.NoError(t, err)
		defer dest.Destroy()

		id, err := w.SendTx(dest, 1000, 100, "")
		require.NoError(t, err)

		// Act
		ok, err := w.CancelPendingTx(id)

		// Assert
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "cancelled", <-cb.records)
		bal, err := w.AvailableBalance()
		require.NoError(t, err)
		assert.Equal(t, uint64(5000), bal)
	})
}

func TestEngine_Sync(t *testing.T) {
	t.Run("should report each request after the delay", func(t *testing.T) {
		// Arrange
		e := memory.New(memory.WithSyncDelay(time.Millisecond))
		w, cb := newWallet(t, e)

		peer, err := ffi.PublicKeyFromHex(e, memory.RandomPublicKeyHex())
		require.NoError(t, err)
		defer peer.Destroy()
		_, err = w.AddBaseNodePeer(peer, "/memory/base")
		require.NoError(t, err)

		// Act
		id, err := w.SyncWithBaseNode()

		// Assert
		require.NoError(t, err)
		select {
		case got := <-cb.syncs:
			assert.Equal(t, memory.EncodeID(id), got.id)
			assert.True(t, got.success)
		case <-time.After(time.Second):
			require.FailNow(t, "sync result not delivered")
		}
	})

	t.Run("should let the outcome suppress delivery", func(t *testing.T) {
		// Arrange
		e := memory.New(
			memory.WithSyncDelay(time.Millisecond),
			memory.WithSyncOutcome(func(uint64) (bool, bool) { return false, false }),
		)
		w, cb := newWallet(t, e)

		peer, err := ffi.PublicKeyFromHex(e, memory.RandomPublicKeyHex())
		require.NoError(t, err)
		defer peer.Destroy()
		_, err = w.AddBaseNodePeer(peer, "/memory/base")
		require.NoError(t, err)

		// Act
		_, err = w.SyncWithBaseNode()

		// Assert
		require.NoError(t, err)
		select {
		case <-cb.syncs:
			assert.Fail(t, "sync result delivered")
		case <-time.After(20 * time.Millisecond):
		}
	})

	t.Run("should encode ids big-endian without leading zeros", func(t *testing.T) {
		// Act & Assert
		assert.Equal(t, []byte{0x01, 0x00}, memory.EncodeID(256))
		assert.Equal(t, []byte{0x2a}, memory.EncodeID(42))
		assert.Empty(t, memory.EncodeID(0))
	})
}
