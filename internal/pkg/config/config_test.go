package config

import (
	"testing"
	"time"

	"github.com/gabapcia/walletcore/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		// Act
		cfg, err := Load()

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "walletcore", cfg.Wallet.DatabaseName)
		assert.Equal(t, int64(100), cfg.Wallet.MinimumFee)
		assert.Equal(t, 40*time.Second, cfg.Sync.Timeout)
		assert.Equal(t, 3, cfg.Sync.MaxRetries)
		assert.Empty(t, cfg.Redis.Addr)
	})

	t.Run("should read prefixed nested variables", func(t *testing.T) {
		// Arrange
		t.Setenv("WALLETD_LOG_LEVEL", "debug")
		t.Setenv("WALLETD_WALLET_DATABASE_NAME", "alice")
		t.Setenv("WALLETD_SYNC_TIMEOUT", "5s")
		t.Setenv("WALLETD_REDIS_ADDR", "localhost:6379")

		// Act
		cfg, err := Load()

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "alice", cfg.Wallet.DatabaseName)
		assert.Equal(t, 5*time.Second, cfg.Sync.Timeout)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	})

	t.Run("should reject invalid values", func(t *testing.T) {
		// Arrange
		t.Setenv("WALLETD_LOG_LEVEL", "verbose")

		// Act
		_, err := Load()

		// Assert
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should require a base node address with a base node key", func(t *testing.T) {
		// Arrange
		t.Setenv("WALLETD_WALLET_BASE_NODE_PUBLIC_KEY", "aa11aa11aa11aa11aa11aa11aa11aa11aa11aa11aa11aa11aa11aa11aa11aa11")

		// Act
		_, err := Load()

		// Assert
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should fail on malformed durations", func(t *testing.T) {
		t.Setenv("WALLETD_SYNC_INTERVAL", "soon")

		_, err := Load()

		assert.Error(t, err)
	})
}
