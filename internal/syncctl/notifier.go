package syncctl

import (
	"errors"
	"sync"
)

// ErrSyncAbandoned is the outcome error of a session dropped before it
// finished, such as on daemon shutdown.
var ErrSyncAbandoned = errors.New("sync session abandoned")

// Outcome is the result of one finished session.
type Outcome struct {
	Received  int
	Cancelled int
	Failed    bool
	Reason    FailureReason
	Abandoned bool
}

// Err returns nil for a completed session, ErrSyncAbandoned for an abandoned
// one and the reason's error for a failed one.
func (o Outcome) Err() error {
	switch {
	case o.Abandoned:
		return ErrSyncAbandoned
	case o.Failed:
		return o.Reason.Err()
	default:
		return nil
	}
}

// Notifier is a Listener that hands the next outcome to every caller waiting
// on it, then forwards it to an optional downstream listener.
type Notifier struct {
	mu      sync.Mutex
	waiters map[chan Outcome]struct{}
	next    Listener
}

var _ Listener = (*Notifier)(nil)

// NewNotifier returns a Notifier forwarding to next, which may be nil.
func NewNotifier(next Listener) *Notifier {
	return &Notifier{
		waiters: make(map[chan Outcome]struct{}),
		next:    next,
	}
}

// Next returns a channel receiving the outcome of the next session to
// finish. The returned func releases the channel if the caller stops
// waiting.
func (n *Notifier) Next() (<-chan Outcome, func()) {
	ch := make(chan Outcome, 1)

	n.mu.Lock()
	n.waiters[ch] = struct{}{}
	n.mu.Unlock()

	return ch, func() {
		n.mu.Lock()
		delete(n.waiters, ch)
		n.mu.Unlock()
	}
}

func (n *Notifier) notify(o Outcome) {
	n.mu.Lock()
	waiters := n.waiters
	n.waiters = make(map[chan Outcome]struct{})
	n.mu.Unlock()

	for ch := range waiters {
		ch <- o
	}
}

// Abandon releases every current waiter with an abandoned outcome. Nothing
// is forwarded downstream.
func (n *Notifier) Abandon() {
	n.notify(Outcome{Abandoned: true})
}

func (n *Notifier) UpdateHasCompleted(receivedCount, cancelledCount int) {
	n.notify(Outcome{Received: receivedCount, Cancelled: cancelledCount})
	if n.next != nil {
		n.next.UpdateHasCompleted(receivedCount, cancelledCount)
	}
}

func (n *Notifier) UpdateHasFailed(reason FailureReason) {
	n.notify(Outcome{Failed: true, Reason: reason})
	if n.next != nil {
		n.next.UpdateHasFailed(reason)
	}
}
