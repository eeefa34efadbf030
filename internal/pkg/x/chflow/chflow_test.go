package chflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReceive(t *testing.T) {
	t.Run("should return a buffered value", func(t *testing.T) {
		// Arrange
		ch := make(chan int, 1)
		ch <- 42

		// Act
		value, ok := Receive(t.Context(), ch)

		// Assert
		assert.True(t, ok)
		assert.Equal(t, 42, value)
	})

	t.Run("should give up when the context is done", func(t *testing.T) {
		// Arrange
		ch := make(chan int)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		// Act
		value, ok := Receive(ctx, ch)

		// Assert
		assert.False(t, ok)
		assert.Zero(t, value)
	})

	t.Run("should report a closed channel", func(t *testing.T) {
		// Arrange
		ch := make(chan string)
		close(ch)

		// Act
		value, ok := Receive(t.Context(), ch)

		// Assert
		assert.False(t, ok)
		assert.Empty(t, value)
	})
}

func TestSend(t *testing.T) {
	t.Run("should deliver when the channel has room", func(t *testing.T) {
		// Arrange
		ch := make(chan int, 1)

		// Act
		ok := Send(t.Context(), ch, 42)

		// Assert
		assert.True(t, ok)
		assert.Equal(t, 42, <-ch)
	})

	t.Run("should give up when the context is done", func(t *testing.T) {
		// Arrange
		ch := make(chan int)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		// Act
		ok := Send(ctx, ch, 42)

		// Assert
		assert.False(t, ok)
	})

	t.Run("should hand the value to a waiting receiver", func(t *testing.T) {
		// Arrange
		ch := make(chan int)
		got := make(chan int, 1)
		go func() {
			v, _ := Receive(t.Context(), ch)
			got <- v
		}()

		// Act
		ok := Send(t.Context(), ch, 99)

		// Assert
		assert.True(t, ok)
		assert.Equal(t, 99, <-got)
	})
}

func TestTrySend(t *testing.T) {
	t.Run("should deliver while the buffer has room", func(t *testing.T) {
		// Arrange
		ch := make(chan int, 1)

		// Act
		first := TrySend(ch, 1)
		second := TrySend(ch, 2)

		// Assert
		assert.True(t, first)
		assert.False(t, second)
		assert.Equal(t, 1, <-ch)
	})

	t.Run("should not block on an unbuffered channel", func(t *testing.T) {
		assert.False(t, TrySend(make(chan int), 1))
	})
}
