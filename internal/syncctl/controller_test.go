package syncctl_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gabapcia/walletcore/internal/connectivity"
	"github.com/gabapcia/walletcore/internal/eventbus"
	"github.com/gabapcia/walletcore/internal/pkg/logger"
	"github.com/gabapcia/walletcore/internal/pkg/x/looper"
	"github.com/gabapcia/walletcore/internal/syncctl"
	"github.com/gabapcia/walletcore/internal/syncctl/mocks"
	"github.com/gabapcia/walletcore/internal/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Init(logger.WithLevel("error"))
}

const wait = 2 * time.Second

type harness struct {
	bus      *eventbus.Bus
	conn     *connectivity.Monitor
	bridge   *mocks.Bridge
	listener *mocks.Listener
	ctl      *syncctl.Controller

	mu     sync.Mutex
	stages []syncctl.Stage
}

func (h *harness) seenStages() []syncctl.Stage {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]syncctl.Stage(nil), h.stages...)
}

// newHarness wires a controller to a running loop with a reachable network
// and a fully bootstrapped proxy.
func newHarness(t *testing.T, opts ...syncctl.Option) *harness {
	t.Helper()

	h := &harness{
		bus:      eventbus.New(),
		conn:     connectivity.NewMonitor(nil),
		bridge:   mocks.NewBridge(t),
		listener: mocks.NewListener(t),
	}
	h.conn.SetNetworkState(connectivity.NetworkConnected)
	h.conn.SetProxyState(connectivity.ProxyState{Running: true, BootstrapProgress: connectivity.MaxBootstrapProgress})

	loop := looper.New()
	require.NoError(t, loop.Start(context.Background()))

	opts = append([]syncctl.Option{
		syncctl.WithMinDisplay(5 * time.Millisecond),
		syncctl.WithBootstrapPoll(5 * time.Millisecond),
		syncctl.WithCompletionDelay(5 * time.Millisecond),
		syncctl.WithStageObserver(func(s syncctl.Stage) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.stages = append(h.stages, s)
		}),
	}, opts...)

	h.ctl = syncctl.New(context.Background(), loop, h.bus, h.conn, h.listener, opts...)
	t.Cleanup(func() {
		h.ctl.Destroy()
		loop.Close()
	})

	return h
}

// failed returns a channel that receives the reason of the first failure.
func (h *harness) failed() <-chan syncctl.FailureReason {
	ch := make(chan syncctl.FailureReason, 1)
	h.listener.EXPECT().UpdateHasFailed(mock.Anything).Run(func(reason syncctl.FailureReason) {
		ch <- reason
	}).Once()
	return ch
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(wait):
		require.FailNow(t, "timed out waiting for the controller")
	}

	var zero T
	return zero
}

func TestController_Failures(t *testing.T) {
	t.Run("should fail with a network error when disconnected", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		h.conn.SetNetworkState(connectivity.NetworkDisconnected)
		failed := h.failed()

		// Act
		require.NoError(t, h.ctl.Start(h.bridge))
		reason := receive(t, failed)

		// Assert
		assert.Equal(t, syncctl.NetworkConnectionError, reason)
		assert.ErrorIs(t, reason.Err(), wallet.ErrNetworkUnavailable)
		assert.Equal(t, syncctl.StateIdle, h.ctl.State())
		h.bridge.AssertNotCalled(t, "SyncWithBaseNode", mock.Anything)
	})

	t.Run("should fail with a base node error when the proxy is not running", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		h.conn.SetProxyState(connectivity.ProxyState{})
		failed := h.failed()

		// Act
		require.NoError(t, h.ctl.Start(h.bridge))
		reason := receive(t, failed)

		// Assert
		assert.Equal(t, syncctl.BaseNodeConnectionError, reason)
		assert.ErrorIs(t, reason.Err(), wallet.ErrBaseNodeUnreachable)
		h.bridge.AssertNotCalled(t, "SyncWithBaseNode", mock.Anything)
	})

	t.Run("should fail when the session deadline passes while bootstrapping", func(t *testing.T) {
		// Arrange
		h := newHarness(t, syncctl.WithTimeout(30*time.Millisecond))
		h.conn.SetProxyState(connectivity.ProxyState{Running: true, BootstrapProgress: 40})
		failed := h.failed()

		// Act
		require.NoError(t, h.ctl.Start(h.bridge))
		reason := receive(t, failed)

		// Assert
		assert.Equal(t, syncctl.BaseNodeConnectionError, reason)
		h.bridge.AssertNotCalled(t, "SyncWithBaseNode", mock.Anything)
	})

	t.Run("should fail when the sync request itself fails", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		h.bridge.EXPECT().SyncWithBaseNode(mock.Anything).Return(wallet.ID{}, errors.New("engine error")).Once()
		failed := h.failed()

		// Act
		require.NoError(t, h.ctl.Start(h.bridge))
		reason := receive(t, failed)

		// Assert
		assert.Equal(t, syncctl.BaseNodeConnectionError, reason)
	})

	t.Run("should stop after exactly three failed attempts", func(t *testing.T) {
		// Arrange
		h := newHarness(t)

		var n atomic.Uint64
		h.bridge.EXPECT().SyncWithBaseNode(mock.Anything).RunAndReturn(func(context.Context) (wallet.ID, error) {
			id := wallet.IDFromUint64(n.Add(1))
			h.bus.Publish(wallet.BaseNodeSyncComplete{RequestID: id, Success: false})
			return id, nil
		})
		failed := h.failed()

		// Act
		require.NoError(t, h.ctl.Start(h.bridge))
		reason := receive(t, failed)
		time.Sleep(20 * time.Millisecond)

		// Assert
		assert.Equal(t, syncctl.BaseNodeConnectionError, reason)
		h.bridge.AssertNumberOfCalls(t, "SyncWithBaseNode", 3)
	})

	t.Run("should fail on the deadline even with retries left", func(t *testing.T) {
		// Arrange
		h := newHarness(t, syncctl.WithTimeout(40*time.Millisecond))
		h.bridge.EXPECT().SyncWithBaseNode(mock.Anything).Return(wallet.IDFromUint64(9), nil).Once()
		failed := h.failed()

		// Act
		start := time.Now()
		require.NoError(t, h.ctl.Start(h.bridge))
		reason := receive(t, failed)

		// Assert
		assert.Equal(t, syncctl.BaseNodeConnectionError, reason)
		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
		h.bridge.AssertNumberOfCalls(t, "SyncWithBaseNode", 1)
	})
}

func TestController_SyncResults(t *testing.T) {
	t.Run("should ignore a result for another request", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		requested := make(chan struct{})
		h.bridge.EXPECT().SyncWithBaseNode(mock.Anything).RunAndReturn(func(context.Context) (wallet.ID, error) {
			defer close(requested)
			return wallet.IDFromUint64(7), nil
		}).Once()
		h.listener.EXPECT().UpdateHasCompleted(0, 0).Maybe()

		require.NoError(t, h.ctl.Start(h.bridge))
		receive(t, requested)
		time.Sleep(10 * time.Millisecond)

		// Act
		h.bus.Publish(wallet.BaseNodeSyncComplete{RequestID: wallet.IDFromUint64(8), Success: true})
		time.Sleep(20 * time.Millisecond)

		// Assert
		assert.Equal(t, syncctl.StateRunning, h.ctl.State())

		// Act
		h.bus.Publish(wallet.BaseNodeSyncComplete{RequestID: wallet.IDFromUint64(7), Success: true})

		// Assert
		assert.Eventually(t, func() bool {
			return h.ctl.State() == syncctl.StateReceiving
		}, wait, time.Millisecond)
	})

	t.Run("should accept a result delivered before the request returned", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		id := wallet.IDFromUint64(1 << 40)
		h.bridge.EXPECT().SyncWithBaseNode(mock.Anything).RunAndReturn(func(context.Context) (wallet.ID, error) {
			h.bus.Publish(wallet.BaseNodeSyncComplete{RequestID: id, Success: true})
			return id, nil
		}).Once()

		done := make(chan struct{})
		h.listener.EXPECT().UpdateHasCompleted(0, 0).Run(func(int, int) { close(done) }).Once()

		// Act
		require.NoError(t, h.ctl.Start(h.bridge))

		// Assert
		receive(t, done)
		assert.Equal(t, syncctl.StateIdle, h.ctl.State())
	})

	t.Run("should report staged completion with session counts", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		h.bus.Publish(wallet.TxReceived{})

		h.bridge.EXPECT().SyncWithBaseNode(mock.Anything).RunAndReturn(func(context.Context) (wallet.ID, error) {
			id := wallet.IDFromUint64(3)
			h.bus.Publish(wallet.TxReceived{})
			h.bus.Publish(wallet.TxReceived{})
			h.bus.Publish(wallet.TxCancelled{})
			h.bus.Publish(wallet.BaseNodeSyncComplete{RequestID: id, Success: true})
			return id, nil
		}).Once()

		type counts struct{ received, cancelled int }
		done := make(chan counts, 1)
		h.listener.EXPECT().UpdateHasCompleted(mock.Anything, mock.Anything).Run(func(received, cancelled int) {
			done <- counts{received, cancelled}
		}).Once()

		// Act
		require.NoError(t, h.ctl.Start(h.bridge))
		got := receive(t, done)

		// Assert
		assert.Equal(t, counts{received: 2, cancelled: 1}, got)
		assert.Equal(t, []syncctl.Stage{
			syncctl.StageChecking,
			syncctl.StageReceivingTxs,
			syncctl.StageUpdatingTxs,
			syncctl.StageUpToDate,
		}, h.seenStages())
		assert.Equal(t, syncctl.StateIdle, h.ctl.State())
	})

	t.Run("should retry after a failed result and then succeed", func(t *testing.T) {
		// Arrange
		h := newHarness(t)

		var n atomic.Uint64
		h.bridge.EXPECT().SyncWithBaseNode(mock.Anything).RunAndReturn(func(context.Context) (wallet.ID, error) {
			attempt := n.Add(1)
			id := wallet.IDFromUint64(attempt)
			h.bus.Publish(wallet.BaseNodeSyncComplete{RequestID: id, Success: attempt == 2})
			return id, nil
		}).Times(2)

		done := make(chan struct{})
		h.listener.EXPECT().UpdateHasCompleted(0, 0).Run(func(int, int) { close(done) }).Once()

		// Act
		require.NoError(t, h.ctl.Start(h.bridge))

		// Assert
		receive(t, done)
	})

	t.Run("should wait for the proxy to finish bootstrapping", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		h.conn.SetProxyState(connectivity.ProxyState{Running: true, BootstrapProgress: 10})

		requested := make(chan struct{})
		h.bridge.EXPECT().SyncWithBaseNode(mock.Anything).RunAndReturn(func(context.Context) (wallet.ID, error) {
			close(requested)
			return wallet.IDFromUint64(1), nil
		}).Once()

		// Act
		require.NoError(t, h.ctl.Start(h.bridge))
		time.Sleep(20 * time.Millisecond)
		h.bridge.AssertNotCalled(t, "SyncWithBaseNode", mock.Anything)
		h.conn.SetProxyState(connectivity.ProxyState{Running: true, BootstrapProgress: connectivity.MaxBootstrapProgress})

		// Assert
		receive(t, requested)
	})
}

func TestController_Lifecycle(t *testing.T) {
	t.Run("should ignore start while a session is running", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		h.bridge.EXPECT().SyncWithBaseNode(mock.Anything).Return(wallet.IDFromUint64(1), nil).Once()

		// Act
		require.NoError(t, h.ctl.Start(h.bridge))
		require.NoError(t, h.ctl.Start(h.bridge))
		time.Sleep(20 * time.Millisecond)

		// Assert
		assert.Equal(t, syncctl.StateRunning, h.ctl.State())
		h.bridge.AssertNumberOfCalls(t, "SyncWithBaseNode", 1)
	})

	t.Run("should abandon a session on reset without reporting", func(t *testing.T) {
		// Arrange
		h := newHarness(t, syncctl.WithMinDisplay(50*time.Millisecond))
		h.conn.SetNetworkState(connectivity.NetworkDisconnected)
		require.NoError(t, h.ctl.Start(h.bridge))

		// Act
		h.ctl.Reset()
		h.ctl.Reset()
		time.Sleep(100 * time.Millisecond)

		// Assert
		assert.Equal(t, syncctl.StateIdle, h.ctl.State())
		h.listener.AssertNotCalled(t, "UpdateHasFailed", mock.Anything)
	})

	t.Run("should start a new session after reset", func(t *testing.T) {
		// Arrange
		h := newHarness(t)
		requested := make(chan struct{})
		h.bridge.EXPECT().SyncWithBaseNode(mock.Anything).RunAndReturn(func(context.Context) (wallet.ID, error) {
			close(requested)
			return wallet.IDFromUint64(1), nil
		}).Once()
		require.NoError(t, h.ctl.Start(h.bridge))
		receive(t, requested)

		h.ctl.Reset()
		h.conn.SetNetworkState(connectivity.NetworkDisconnected)
		failed := h.failed()

		// Act
		require.NoError(t, h.ctl.Start(h.bridge))

		// Assert
		assert.Equal(t, syncctl.NetworkConnectionError, receive(t, failed))
	})

	t.Run("should release the bus and refuse work once destroyed", func(t *testing.T) {
		// Arrange
		h := newHarness(t, syncctl.WithMinDisplay(20*time.Millisecond))
		h.conn.SetNetworkState(connectivity.NetworkDisconnected)
		require.NoError(t, h.ctl.Start(h.bridge))
		require.Equal(t, 1, eventbus.SubscriberCount[wallet.BaseNodeSyncComplete](h.bus))

		// Act
		h.ctl.Destroy()
		err := h.ctl.Start(h.bridge)
		time.Sleep(50 * time.Millisecond)

		// Assert
		assert.ErrorIs(t, err, syncctl.ErrControllerDestroyed)
		assert.Zero(t, eventbus.SubscriberCount[wallet.BaseNodeSyncComplete](h.bus))
		assert.Zero(t, eventbus.SubscriberCount[wallet.TxReceived](h.bus))
		h.listener.AssertNotCalled(t, "UpdateHasFailed", mock.Anything)
	})
}
