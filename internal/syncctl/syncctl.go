// Package syncctl drives one synchronization session at a time: it checks
// network connectivity and the anonymizing proxy, asks the engine to sync
// with its base node, retries failed attempts a bounded number of times and
// reports a staged completion.
//
// All session state is owned by a serialized loop. Controller methods may
// be called from any goroutine; they only post work to that loop.
package syncctl

import (
	"context"
	"time"

	"github.com/gabapcia/walletcore/internal/connectivity"
	"github.com/gabapcia/walletcore/internal/pkg/x/looper"
	"github.com/gabapcia/walletcore/internal/wallet"
)

// State is the phase of the controller.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateReceiving
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StateReceiving:
		return "RECEIVING"
	default:
		return "IDLE"
	}
}

// FailureReason is the reason reported for a failed session.
type FailureReason int

const (
	NetworkConnectionError FailureReason = iota
	BaseNodeConnectionError
)

func (r FailureReason) String() string {
	switch r {
	case NetworkConnectionError:
		return "NETWORK_CONNECTION_ERROR"
	default:
		return "BASE_NODE_CONNECTION_ERROR"
	}
}

// Err returns the error kind matching r.
func (r FailureReason) Err() error {
	switch r {
	case NetworkConnectionError:
		return wallet.ErrNetworkUnavailable
	default:
		return wallet.ErrBaseNodeUnreachable
	}
}

// Stage is the step of a session shown to observers.
type Stage int

const (
	StageChecking Stage = iota
	StageReceivingTxs
	StageCompletingTxs
	StageUpdatingTxs
	StageUpToDate
)

func (s Stage) String() string {
	switch s {
	case StageChecking:
		return "CHECKING"
	case StageReceivingTxs:
		return "RECEIVING_TXS"
	case StageCompletingTxs:
		return "COMPLETING_TXS"
	case StageUpdatingTxs:
		return "UPDATING_TXS"
	default:
		return "UP_TO_DATE"
	}
}

// Bridge issues sync requests. The result arrives later as a
// wallet.BaseNodeSyncComplete event carrying the returned id.
type Bridge interface {
	SyncWithBaseNode(ctx context.Context) (wallet.ID, error)
}

// Connectivity exposes the current network and proxy signals.
type Connectivity interface {
	NetworkState() connectivity.NetworkState
	ProxyState() connectivity.ProxyState
}

// Listener receives the outcome of every session. It is called from the
// loop.
type Listener interface {
	UpdateHasCompleted(receivedCount, cancelledCount int)
	UpdateHasFailed(reason FailureReason)
}

// Loop is the serialized context the controller runs on.
type Loop interface {
	Post(fn func()) bool
	PostDelayed(d time.Duration, fn func()) looper.CancelFunc
}
