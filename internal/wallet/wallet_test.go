package wallet

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromBytes(t *testing.T) {
	t.Run("should decode big-endian unsigned bytes", func(t *testing.T) {
		// Act
		id, err := IDFromBytes([]byte{0x01, 0x00})

		// Assert
		require.NoError(t, err)
		v, ok := id.Uint64()
		assert.True(t, ok)
		assert.Equal(t, uint64(256), v)
	})

	t.Run("should treat the high bit as magnitude", func(t *testing.T) {
		// Act
		id, err := IDFromBytes([]byte{0xff})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "255", id.String())
	})

	t.Run("should decode an empty buffer as zero", func(t *testing.T) {
		id, err := IDFromBytes(nil)

		require.NoError(t, err)
		assert.True(t, id.IsZero())
	})

	t.Run("should decode ids wider than 64 bits", func(t *testing.T) {
		// Arrange
		raw := append([]byte{0x01}, bytes.Repeat([]byte{0x00}, 8)...)

		// Act
		id, err := IDFromBytes(raw)

		// Assert
		require.NoError(t, err)
		_, ok := id.Uint64()
		assert.False(t, ok)
		assert.Equal(t, "18446744073709551616", id.String())
	})

	t.Run("should reject buffers wider than 256 bits", func(t *testing.T) {
		_, err := IDFromBytes(make([]byte, 33))

		assert.ErrorIs(t, err, ErrIDTooLarge)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("should compare equal to the uint64 form", func(t *testing.T) {
		id, err := IDFromBytes([]byte{0x00, 0x00, 0x2a})

		require.NoError(t, err)
		assert.Equal(t, IDFromUint64(42), id)
	})
}

func TestMicroTari(t *testing.T) {
	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := MicroTari(-1).Uint64()

		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	})

	t.Run("should convert zero and positive amounts", func(t *testing.T) {
		v, err := MicroTari(0).Uint64()
		require.NoError(t, err)
		assert.Equal(t, uint64(0), v)

		v, err = MicroTari(1000).Uint64()
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), v)
	})

	t.Run("should format with six decimals", func(t *testing.T) {
		assert.Equal(t, "1.250000 T", MicroTari(1_250_000).String())
		assert.Equal(t, "-0.000100 T", MicroTari(-100).String())
	})
}

func TestClassifyDirection(t *testing.T) {
	const (
		walletKey = "AA11"
		peerKey   = "BB22"
	)

	t.Run("should classify records addressed to the wallet as inbound", func(t *testing.T) {
		assert.Equal(t, Inbound, ClassifyDirection(walletKey, walletKey))
	})

	t.Run("should classify records addressed to a peer as outbound", func(t *testing.T) {
		assert.Equal(t, Outbound, ClassifyDirection(peerKey, walletKey))
	})

	t.Run("should ignore hex case", func(t *testing.T) {
		assert.Equal(t, Inbound, ClassifyDirection("aa11", walletKey))
	})
}

func TestTxStatusFromCode(t *testing.T) {
	t.Run("should map every engine code", func(t *testing.T) {
		assert.Equal(t, TxStatusNullError, TxStatusFromCode(-1))
		assert.Equal(t, TxStatusCompleted, TxStatusFromCode(0))
		assert.Equal(t, TxStatusBroadcast, TxStatusFromCode(1))
		assert.Equal(t, TxStatusMined, TxStatusFromCode(2))
		assert.Equal(t, TxStatusImported, TxStatusFromCode(3))
		assert.Equal(t, TxStatusPending, TxStatusFromCode(4))
		assert.Equal(t, TxStatusUnknown, TxStatusFromCode(99))
	})

	t.Run("should render upper case names", func(t *testing.T) {
		assert.Equal(t, "MINED", TxStatusMined.String())
		assert.Equal(t, "UNKNOWN", TxStatusUnknown.String())
	})
}

func TestParseID(t *testing.T) {
	t.Run("should round trip through text", func(t *testing.T) {
		// Arrange
		raw := append([]byte{0x01}, bytes.Repeat([]byte{0x00}, 8)...)
		id, err := IDFromBytes(raw)
		require.NoError(t, err)

		// Act
		text, err := id.MarshalText()
		require.NoError(t, err)

		var parsed ID
		err = parsed.UnmarshalText(text)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("should reject non decimal input", func(t *testing.T) {
		_, err := ParseID("0xzz")

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
