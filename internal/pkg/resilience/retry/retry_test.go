package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fast(opts ...Option) Retry {
	return New(append([]Option{WithDelay(time.Millisecond), WithMaxDelay(2 * time.Millisecond)}, opts...)...)
}

func TestRetry_Execute(t *testing.T) {
	t.Run("should call once when the operation succeeds", func(t *testing.T) {
		// Arrange
		r := fast()
		calls := 0

		// Act
		err := r.Execute(t.Context(), func() error {
			calls++
			return nil
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("should retry until the operation succeeds", func(t *testing.T) {
		// Arrange
		r := fast(WithAttempts(3))
		calls := 0

		// Act
		err := r.Execute(t.Context(), func() error {
			calls++
			if calls < 2 {
				return errors.New("connection reset")
			}
			return nil
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("should return the last error when attempts run out", func(t *testing.T) {
		// Arrange
		r := fast(WithAttempts(3))
		calls := 0
		last := errors.New("third")

		// Act
		err := r.Execute(t.Context(), func() error {
			calls++
			if calls == 3 {
				return last
			}
			return errors.New("earlier")
		})

		// Assert
		assert.ErrorIs(t, err, last)
		assert.Equal(t, 3, calls)
	})

	t.Run("should stop waiting when the context is cancelled", func(t *testing.T) {
		// Arrange
		r := New(WithAttempts(5), WithDelay(100*time.Millisecond))
		calls := 0

		ctx, cancel := context.WithCancel(t.Context())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		// Act
		err := r.Execute(ctx, func() error {
			calls++
			return errors.New("redis down")
		})

		// Assert
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("should not retry a context error returned by the operation", func(t *testing.T) {
		// Arrange
		r := fast(WithAttempts(5))
		calls := 0

		// Act
		err := r.Execute(t.Context(), func() error {
			calls++
			return context.DeadlineExceeded
		})

		// Assert
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 1, calls)
	})

	t.Run("should not retry a permanent error", func(t *testing.T) {
		// Arrange
		r := fast(WithAttempts(5))
		calls := 0
		bad := errors.New("malformed record")

		// Act
		err := r.Execute(t.Context(), func() error {
			calls++
			return Permanent(bad)
		})

		// Assert
		assert.ErrorIs(t, err, bad)
		assert.Equal(t, 1, calls)
	})

	t.Run("should retry only the errors accepted by the predicate", func(t *testing.T) {
		// Arrange
		transient := errors.New("timeout")
		r := fast(WithAttempts(5), WithRetryIf(func(err error) bool {
			return errors.Is(err, transient)
		}))
		calls := 0

		// Act
		err := r.Execute(t.Context(), func() error {
			calls++
			if calls < 3 {
				return transient
			}
			return errors.New("auth failed")
		})

		// Assert
		assert.EqualError(t, err, "auth failed")
		assert.Equal(t, 3, calls)
	})

	t.Run("should report each retried failure", func(t *testing.T) {
		// Arrange
		var seen []uint
		r := fast(WithAttempts(3), WithOnRetry(func(n uint, err error) {
			seen = append(seen, n)
		}))

		// Act
		err := r.Execute(t.Context(), func() error {
			return errors.New("busy")
		})

		// Assert
		require.Error(t, err)
		assert.Equal(t, []uint{0, 1, 2}, seen)
	})
}

func TestPermanent(t *testing.T) {
	t.Run("should keep nil as nil", func(t *testing.T) {
		assert.NoError(t, Permanent(nil))
	})
}

func TestRetry_Options(t *testing.T) {
	t.Run("should use the default policy", func(t *testing.T) {
		// Act
		r, ok := New().(*retrier)

		// Assert
		require.True(t, ok)
		assert.Equal(t, uint(3), r.cfg.attempts)
		assert.Equal(t, 1*time.Second, r.cfg.delay)
		assert.Equal(t, 5*time.Second, r.cfg.maxDelay)
		assert.Nil(t, r.cfg.onRetry)
		assert.Nil(t, r.cfg.retryIf)
	})

	t.Run("should apply custom options", func(t *testing.T) {
		// Act
		r, ok := New(
			WithAttempts(5),
			WithDelay(2*time.Second),
			WithMaxDelay(10*time.Second),
		).(*retrier)

		// Assert
		require.True(t, ok)
		assert.Equal(t, uint(5), r.cfg.attempts)
		assert.Equal(t, 2*time.Second, r.cfg.delay)
		assert.Equal(t, 10*time.Second, r.cfg.maxDelay)
	})
}
