// Package looper provides a serialized execution context: a single goroutine
// that runs posted functions one at a time, in the order they were posted.
//
// Any goroutine may post, including threads owned by foreign code, and
// posting never blocks on the consumer. State that is only touched from
// functions running on the loop needs no further locking.
package looper

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/walletcore/internal/pkg/logger"
)

var (
	// ErrLoopAlreadyStarted is returned by Start on a running loop.
	ErrLoopAlreadyStarted = errors.New("loop already started")

	// ErrLoopClosed is returned when work is submitted to a closed loop.
	ErrLoopClosed = errors.New("loop closed")
)

// CancelFunc cancels a delayed function. It reports whether the function was
// prevented from running. Called from the loop itself, a true result is a
// guarantee that the function will never run.
type CancelFunc func() bool

// Loop is a single-consumer, multi-producer execution context.
type Loop struct {
	mu        sync.Mutex
	isStarted bool
	isClosed  bool
	closeFunc func()

	queue []func()
	wake  chan struct{}
}

// New creates a loop. Work posted before Start is kept and runs once the
// loop starts.
func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
	}
}

// Start launches the consumer goroutine. It stops when ctx is done or Close
// is called, whichever happens first.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.isClosed {
		return ErrLoopClosed
	}

	if l.isStarted {
		return ErrLoopAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	l.closeFunc = func() {
		cancel()
		<-done
	}

	go func() {
		defer close(done)
		l.run(ctx)
	}()

	l.isStarted = true
	return nil
}

// Close stops the consumer and waits for the function in flight, if any.
// Work still queued is discarded. Close must not be called from the loop.
func (l *Loop) Close() {
	l.mu.Lock()
	closeFunc := l.closeFunc
	l.closeFunc = nil
	l.isClosed = true
	l.queue = nil
	l.mu.Unlock()

	if closeFunc != nil {
		closeFunc()
	}
}

func (l *Loop) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.wake:
		}

		for {
			l.mu.Lock()
			if len(l.queue) == 0 || l.isClosed {
				l.mu.Unlock()
				break
			}
			fn := l.queue[0]
			l.queue[0] = nil
			l.queue = l.queue[1:]
			l.mu.Unlock()

			l.exec(ctx, fn)

			if ctx.Err() != nil {
				return
			}
		}
	}
}

func (l *Loop) exec(ctx context.Context, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "loop task panicked", "panic", r)
		}
	}()

	fn()
}

// Post enqueues fn. It returns false if the loop is closed.
func (l *Loop) Post(fn func()) bool {
	l.mu.Lock()
	if l.isClosed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

const (
	timerPending int32 = iota
	timerFired
	timerCancelled
)

// PostDelayed enqueues fn after d has elapsed.
func (l *Loop) PostDelayed(d time.Duration, fn func()) CancelFunc {
	var state atomic.Int32

	timer := time.AfterFunc(d, func() {
		l.Post(func() {
			if state.CompareAndSwap(timerPending, timerFired) {
				fn()
			}
		})
	})

	return func() bool {
		timer.Stop()
		return state.CompareAndSwap(timerPending, timerCancelled)
	}
}

// Do runs fn on the loop and waits for it to return.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if !l.Post(func() {
		defer close(done)
		fn()
	}) {
		return ErrLoopClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
