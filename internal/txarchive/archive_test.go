package txarchive_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/walletcore/internal/eventbus"
	"github.com/gabapcia/walletcore/internal/pkg/logger"
	retrytest "github.com/gabapcia/walletcore/internal/pkg/resilience/retry/mocks"
	"github.com/gabapcia/walletcore/internal/txarchive"
	"github.com/gabapcia/walletcore/internal/txarchive/mocks"
	"github.com/gabapcia/walletcore/internal/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Init(logger.WithLevel("error"))
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func passthrough(t *testing.T) *retrytest.Retry {
	r := retrytest.NewRetry(t)
	r.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, op func() error) error {
		return op()
	}).Maybe()
	return r
}

func startArchive(t *testing.T, bus *eventbus.Bus, store txarchive.Store, opts ...txarchive.Option) *txarchive.Archive {
	t.Helper()

	opts = append([]txarchive.Option{txarchive.WithClock(func() time.Time { return fixedNow })}, opts...)
	a, err := txarchive.New(bus, store, opts...)
	require.NoError(t, err)
	require.NoError(t, a.Start(t.Context()))
	t.Cleanup(a.Close)

	return a
}

func sampleTx(id uint64, status wallet.TxStatus) wallet.Tx {
	return wallet.Tx{
		ID:        wallet.IDFromUint64(id),
		Kind:      wallet.TxKindCompleted,
		Direction: wallet.Outbound,
		Amount:    1000,
		Fee:       100,
		Timestamp: fixedNow.Add(-time.Minute),
		Message:   "hi",
		Status:    status,
	}
}

func TestArchive(t *testing.T) {
	t.Run("should write each transaction state once", func(t *testing.T) {
		// Arrange
		bus := eventbus.New()
		store := mocks.NewStore(t)

		saved := make(chan txarchive.Record, 4)
		store.EXPECT().SaveTx(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, rec txarchive.Record) error {
			saved <- rec
			return nil
		}).Times(2)

		startArchive(t, bus, store, txarchive.WithRetry(passthrough(t)))

		// Act
		bus.Publish(wallet.TxBroadcast{Tx: sampleTx(1, wallet.TxStatusBroadcast)})
		bus.Publish(wallet.TxBroadcast{Tx: sampleTx(1, wallet.TxStatusBroadcast)})
		bus.Publish(wallet.TxMined{Tx: sampleTx(1, wallet.TxStatusMined)})

		// Assert
		first := <-saved
		second := <-saved
		assert.Equal(t, "broadcast", first.Event)
		assert.Equal(t, fixedNow, first.ArchivedAt)
		assert.Equal(t, "mined", second.Event)
		assert.Equal(t, wallet.TxStatusMined, second.Tx.Status)

		time.Sleep(20 * time.Millisecond)
		assert.Empty(t, saved)
	})

	t.Run("should write a state again after a failed write", func(t *testing.T) {
		// Arrange
		bus := eventbus.New()
		store := mocks.NewStore(t)

		done := make(chan struct{}, 2)
		store.EXPECT().SaveTx(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, txarchive.Record) error {
			done <- struct{}{}
			return errors.New("redis down")
		}).Once()
		store.EXPECT().SaveTx(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, txarchive.Record) error {
			done <- struct{}{}
			return nil
		}).Once()

		startArchive(t, bus, store, txarchive.WithRetry(passthrough(t)))

		// Act
		bus.Publish(wallet.TxReceived{Tx: sampleTx(2, wallet.TxStatusPending)})
		<-done
		bus.Publish(wallet.TxReceived{Tx: sampleTx(2, wallet.TxStatusPending)})

		// Assert
		select {
		case <-done:
		case <-time.After(time.Second):
			require.FailNow(t, "second write not attempted")
		}
	})

	t.Run("should write through the retry policy", func(t *testing.T) {
		// Arrange
		bus := eventbus.New()
		store := mocks.NewStore(t)
		r := retrytest.NewRetry(t)

		calls := make(chan struct{}, 1)
		r.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, op func() error) error {
			defer func() { calls <- struct{}{} }()
			if err := op(); err == nil {
				return nil
			}
			return op()
		}).Once()

		store.EXPECT().SaveTx(mock.Anything, mock.Anything).Return(errors.New("timeout")).Once()
		store.EXPECT().SaveTx(mock.Anything, mock.Anything).Return(nil).Once()

		startArchive(t, bus, store, txarchive.WithRetry(r))

		// Act
		bus.Publish(wallet.TxFinalized{Tx: sampleTx(3, wallet.TxStatusCompleted)})

		// Assert
		<-calls
	})

	t.Run("should record only successful syncs", func(t *testing.T) {
		// Arrange
		bus := eventbus.New()
		store := txarchive.NewMemoryStore()
		a := startArchive(t, bus, store, txarchive.WithRetry(passthrough(t)))

		// Act
		bus.Publish(wallet.BaseNodeSyncComplete{RequestID: wallet.IDFromUint64(1), Success: false})
		time.Sleep(20 * time.Millisecond)
		_, errBefore := a.LastSyncTime(t.Context())

		bus.Publish(wallet.BaseNodeSyncComplete{RequestID: wallet.IDFromUint64(2), Success: true})

		// Assert
		assert.ErrorIs(t, errBefore, txarchive.ErrNoSyncRecorded)
		assert.Eventually(t, func() bool {
			got, err := a.LastSyncTime(t.Context())
			return err == nil && got.Equal(fixedNow)
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("should refuse a second start and stop listening on close", func(t *testing.T) {
		// Arrange
		bus := eventbus.New()
		a, err := txarchive.New(bus, txarchive.NewMemoryStore())
		require.NoError(t, err)
		require.NoError(t, a.Start(t.Context()))

		// Act
		errSecond := a.Start(t.Context())
		a.Close()

		// Assert
		assert.ErrorIs(t, errSecond, txarchive.ErrArchiveAlreadyStarted)
		assert.Zero(t, eventbus.SubscriberCount[wallet.TxMined](bus))
	})
}

func TestMemoryStore(t *testing.T) {
	t.Run("should list the newest transactions first and keep the latest state", func(t *testing.T) {
		// Arrange
		s := txarchive.NewMemoryStore()
		older := sampleTx(1, wallet.TxStatusBroadcast)
		older.Timestamp = fixedNow.Add(-time.Hour)
		newer := sampleTx(2, wallet.TxStatusPending)

		require.NoError(t, s.SaveTx(t.Context(), txarchive.Record{Tx: older}))
		require.NoError(t, s.SaveTx(t.Context(), txarchive.Record{Tx: newer}))

		older.Status = wallet.TxStatusMined
		require.NoError(t, s.SaveTx(t.Context(), txarchive.Record{Tx: older}))

		// Act
		all, err := s.ListTxs(t.Context(), 0)
		require.NoError(t, err)
		one, err := s.ListTxs(t.Context(), 1)
		require.NoError(t, err)

		// Assert
		require.Len(t, all, 2)
		assert.Equal(t, newer.ID, all[0].Tx.ID)
		assert.Equal(t, wallet.TxStatusMined, all[1].Tx.Status)
		require.Len(t, one, 1)
		assert.Equal(t, newer.ID, one[0].Tx.ID)
	})
}
