package txdispatch_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/gabapcia/walletcore/internal/eventbus"
	"github.com/gabapcia/walletcore/internal/ffi"
	"github.com/gabapcia/walletcore/internal/infra/engine/memory"
	"github.com/gabapcia/walletcore/internal/pkg/logger"
	"github.com/gabapcia/walletcore/internal/pkg/x/looper"
	"github.com/gabapcia/walletcore/internal/txdispatch"
	"github.com/gabapcia/walletcore/internal/wallet"
	"github.com/gabapcia/walletcore/internal/walletbridge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Init(logger.WithLevel("error"))
}

type harness struct {
	engine *memory.Engine
	loop   *looper.Loop
	bus    *eventbus.Bus
	bridge *walletbridge.Bridge
}

func newHarness(t *testing.T, opts ...memory.Option) *harness {
	t.Helper()

	h := &harness{
		engine: memory.New(opts...),
		loop:   looper.New(),
		bus:    eventbus.New(),
	}
	require.NoError(t, h.loop.Start(context.Background()))

	dir := t.TempDir()
	b, err := walletbridge.Open(t.Context(), h.engine, walletbridge.OpenParams{
		DatastorePath: dir,
		DatabaseName:  "dispatch",
		LogPath:       filepath.Join(dir, "wallet.log"),
		PublicAddress: "/ip4/127.0.0.1/tcp/0",
		Transport:     ffi.TransportMemory,
	}, txdispatch.Factory(context.Background(), h.loop, h.bus))
	require.NoError(t, err)
	h.bridge = b

	t.Cleanup(func() {
		b.Close()
		h.loop.Close()
	})

	return h
}

// collect subscribes to T and returns a func reading everything published
// so far, once the loop has drained.
func collect[T any](t *testing.T, h *harness) func() []T {
	var got []T
	eventbus.Subscribe(h.bus, eventbus.NewSubscriberID(), func(e T) {
		got = append(got, e)
	})

	return func() []T {
		var out []T
		require.NoError(t, h.loop.Do(t.Context(), func() {
			out = append(out, got...)
		}))
		return out
	}
}

func TestDispatcher_Records(t *testing.T) {
	t.Run("should publish an inbound tx and destroy its record", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		received := collect[wallet.TxReceived](t, h)
		source := memory.RandomPublicKeyHex()

		// Act
		id, err := h.engine.ReceiveTx(source, 1000, "hi")
		require.NoError(t, err)

		// Assert
		events := received()
		require.Len(t, events, 1)
		tx := events[0].Tx
		assert.Equal(t, wallet.IDFromUint64(id), tx.ID)
		assert.Equal(t, wallet.MicroTari(1000), tx.Amount)
		assert.Equal(t, "hi", tx.Message)
		assert.Equal(t, wallet.Inbound, tx.Direction)
		assert.Equal(t, wallet.TxKindPendingInbound, tx.Kind)
		assert.Equal(t, source, tx.Counterparty.Hex)
		assert.Len(t, h.engine.LiveTokens(), 1)
		assert.Zero(t, h.engine.DoubleFrees())
	})

	t.Run("should follow a tx through finalize, broadcast and mine", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		finalized := collect[wallet.TxFinalized](t, h)
		broadcast := collect[wallet.TxBroadcast](t, h)
		mined := collect[wallet.TxMined](t, h)

		id, err := h.engine.ReceiveTx(memory.RandomPublicKeyHex(), 500, "")
		require.NoError(t, err)

		// Act
		require.NoError(t, h.engine.FinalizeReceivedTx(id))
		require.NoError(t, h.engine.BroadcastTx(id))
		require.NoError(t, h.engine.MineTx(id))

		// Assert
		require.Len(t, finalized(), 1)
		require.Len(t, broadcast(), 1)
		m := mined()
		require.Len(t, m, 1)
		assert.Equal(t, wallet.TxStatusMined, m[0].Tx.Status)
		assert.Equal(t, wallet.Inbound, m[0].Tx.Direction)
		assert.Len(t, h.engine.LiveTokens(), 1)
	})

	t.Run("should publish outbound events with the recipient as counterparty", func(t *testing.T) {
		// Arrange
		h := newHarness(t, memory.WithInitialBalance(10_000))
		replies := collect[wallet.TxReplyReceived](t, h)
		broadcast := collect[wallet.TxBroadcast](t, h)
		cancelled := collect[wallet.TxCancelled](t, h)
		peer := memory.RandomPublicKeyHex()

		id, err := h.bridge.SendTx(t.Context(), peer, 1000, 100, "rent")
		require.NoError(t, err)
		raw, ok := id.Uint64()
		require.True(t, ok)

		// Act
		require.NoError(t, h.engine.ReplyToSentTx(raw))
		require.NoError(t, h.engine.BroadcastTx(raw))
		require.NoError(t, h.engine.CancelTx(raw))

		// Assert
		r, b, c := replies(), broadcast(), cancelled()
		require.Len(t, r, 1)
		require.Len(t, b, 1)
		require.Len(t, c, 1)
		for _, tx := range []wallet.Tx{r[0].Tx, b[0].Tx, c[0].Tx} {
			assert.Equal(t, id, tx.ID)
			assert.Equal(t, wallet.Outbound, tx.Direction)
			assert.Equal(t, peer, tx.Counterparty.Hex)
			assert.Equal(t, wallet.MicroTari(1000), tx.Amount)
		}
		assert.Equal(t, wallet.TxStatusBroadcast, b[0].Tx.Status)
		assert.Len(t, h.engine.LiveTokens(), 1)
		assert.Zero(t, h.engine.DoubleFrees())
	})

	t.Run("should drop a notification carrying a null record", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		received := collect[wallet.TxReceived](t, h)

		// Act
		h.engine.RaiseWithNullRecord("OnTxReceived")

		// Assert
		assert.Empty(t, received())
		assert.Zero(t, h.engine.DoubleFrees())
	})

	t.Run("should destroy the record when extraction fails", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		received := collect[wallet.TxReceived](t, h)
		h.engine.FailOn("TxGetMessage", 3)

		// Act
		_, err := h.engine.ReceiveTx(memory.RandomPublicKeyHex(), 1, "")
		require.NoError(t, err)

		// Assert
		assert.Empty(t, received())
		assert.Len(t, h.engine.LiveTokens(), 1)
	})
}

func TestDispatcher_Correlations(t *testing.T) {
	t.Run("should decode a sync result id", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		synced := collect[wallet.BaseNodeSyncComplete](t, h)

		// Act
		h.engine.DeliverSyncResult(42, true)

		// Assert
		events := synced()
		require.Len(t, events, 1)
		assert.Equal(t, wallet.IDFromUint64(42), events[0].RequestID)
		assert.True(t, events[0].Success)
	})

	t.Run("should keep ids wider than 64 bits intact", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		synced := collect[wallet.BaseNodeSyncComplete](t, h)
		raw := bytes.Repeat([]byte{0xff}, 32)
		want, err := wallet.IDFromBytes(raw)
		require.NoError(t, err)

		// Act
		h.engine.DeliverRawSyncResult(raw, false)

		// Assert
		events := synced()
		require.Len(t, events, 1)
		assert.Equal(t, want, events[0].RequestID)
		_, fits := events[0].RequestID.Uint64()
		assert.False(t, fits)
	})

	t.Run("should drop an id wider than 256 bits", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		synced := collect[wallet.BaseNodeSyncComplete](t, h)

		// Act
		h.engine.DeliverRawSyncResult(bytes.Repeat([]byte{0x01}, 33), true)

		// Assert
		assert.Empty(t, synced())
	})

	t.Run("should publish direct and store and forward results", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		direct := collect[wallet.DirectSendResult](t, h)
		saf := collect[wallet.StoreAndForwardSendResult](t, h)

		// Act
		h.engine.DeliverSendResult(7, true, true)
		h.engine.DeliverSendResult(8, false, false)

		// Assert
		d := direct()
		s := saf()
		require.Len(t, d, 1)
		require.Len(t, s, 1)
		assert.Equal(t, wallet.IDFromUint64(7), d[0].TxID)
		assert.True(t, d[0].Success)
		assert.Equal(t, wallet.IDFromUint64(8), s[0].TxID)
		assert.False(t, s[0].Success)
	})
}

func TestOnLoop(t *testing.T) {
	t.Run("should publish from the loop", func(t *testing.T) {
		// Arrange
		loop := looper.New()
		require.NoError(t, loop.Start(t.Context()))
		defer loop.Close()

		bus := eventbus.New()
		got := make(chan wallet.ContactAddedOrUpdated, 1)
		eventbus.Subscribe(bus, eventbus.NewSubscriberID(), func(e wallet.ContactAddedOrUpdated) {
			got <- e
		})

		// Act
		txdispatch.OnLoop(loop, bus).Publish(wallet.ContactAddedOrUpdated{Contact: wallet.Contact{Alias: "bob"}})

		// Assert
		assert.Equal(t, "bob", (<-got).Contact.Alias)
	})
}
