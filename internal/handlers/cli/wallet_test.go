package cli

import (
	"testing"
	"time"

	clitest "github.com/gabapcia/walletcore/internal/handlers/cli/mocks"
	"github.com/gabapcia/walletcore/internal/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWhoamiCommand(t *testing.T) {
	t.Run("should print the public key and emoji id", func(t *testing.T) {
		// Arrange
		mockWallet := clitest.NewWallet(t)
		mockWallet.EXPECT().PublicKey(mock.Anything).Return(wallet.PublicKey{Hex: "abcd", EmojiID: "🐢🐢"}, nil).Once()

		// Act
		out, err := runApp(t.Context(), whoamiCommand(mockWallet), "whoami")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, out, "public key: abcd")
		assert.Contains(t, out, "emoji id:   🐢🐢")
	})
}

func TestBalanceCommand(t *testing.T) {
	t.Run("should print the three balances", func(t *testing.T) {
		// Arrange
		mockWallet := clitest.NewWallet(t)
		mockWallet.EXPECT().Balance(mock.Anything).Return(wallet.Balance{
			Available:       1_250_000,
			PendingIncoming: 1000,
		}, nil).Once()

		// Act
		out, err := runApp(t.Context(), balanceCommand(mockWallet), "balance")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, out, "available:        1.250000 T")
		assert.Contains(t, out, "pending incoming: 0.001000 T")
		assert.Contains(t, out, "pending outgoing: 0.000000 T")
	})

	t.Run("should return error when the wallet fails", func(t *testing.T) {
		// Arrange
		mockWallet := clitest.NewWallet(t)
		mockWallet.EXPECT().Balance(mock.Anything).Return(wallet.Balance{}, wallet.ErrBridgeClosed).Once()

		// Act
		_, err := runApp(t.Context(), balanceCommand(mockWallet), "balance")

		// Assert
		assert.ErrorIs(t, err, wallet.ErrBridgeClosed)
	})
}

func TestTxsCommand(t *testing.T) {
	t.Run("should list the requested kind", func(t *testing.T) {
		// Arrange
		mockWallet := clitest.NewWallet(t)
		mockWallet.EXPECT().Txs(mock.Anything, wallet.TxKindPendingInbound).Return([]wallet.Tx{
			{
				ID:        wallet.IDFromUint64(9),
				Kind:      wallet.TxKindPendingInbound,
				Direction: wallet.Inbound,
				Amount:    1000,
				Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				Message:   "hi",
				Status:    wallet.TxStatusPending,
			},
		}, nil).Once()

		// Act
		out, err := runApp(t.Context(), txsCommand(mockWallet), "txs", "--kind", "pending-inbound")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, out, "0.001000 T")
		assert.Contains(t, out, "hi")
	})

	t.Run("should reject an unknown kind", func(t *testing.T) {
		// Arrange
		mockWallet := clitest.NewWallet(t)

		// Act
		_, err := runApp(t.Context(), txsCommand(mockWallet), "txs", "--kind", "mined")

		// Assert
		assert.ErrorIs(t, err, wallet.ErrInvalidArgument)
	})
}

func TestSendCommand(t *testing.T) {
	t.Run("should send and print the new id", func(t *testing.T) {
		// Arrange
		mockWallet := clitest.NewWallet(t)
		mockWallet.EXPECT().
			SendTx(mock.Anything, "ab12", wallet.MicroTari(1000), wallet.MicroTari(100), "rent").
			Return(wallet.IDFromUint64(31), nil).
			Once()

		// Act
		out, err := runApp(t.Context(), sendCommand(mockWallet), "send", "--to", "ab12", "--amount", "1000", "--message", "rent")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "sent: tx 31\n", out)
	})

	t.Run("should return the validation error", func(t *testing.T) {
		// Arrange
		mockWallet := clitest.NewWallet(t)
		mockWallet.EXPECT().
			SendTx(mock.Anything, "ab12", wallet.MicroTari(0), wallet.MicroTari(100), "").
			Return(wallet.ID{}, wallet.ErrInvalidAmount).
			Once()

		// Act
		_, err := runApp(t.Context(), sendCommand(mockWallet), "send", "--to", "ab12", "--amount", "0")

		// Assert
		assert.ErrorIs(t, err, wallet.ErrInvalidAmount)
	})
}

func TestCancelCommand(t *testing.T) {
	t.Run("should cancel the parsed id", func(t *testing.T) {
		// Arrange
		mockWallet := clitest.NewWallet(t)
		mockWallet.EXPECT().CancelPendingTx(mock.Anything, wallet.IDFromUint64(42)).Return(nil).Once()

		// Act
		_, err := runApp(t.Context(), cancelCommand(mockWallet), "cancel", "--id", "42")

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should reject an id that is not a number", func(t *testing.T) {
		// Arrange
		mockWallet := clitest.NewWallet(t)

		// Act
		_, err := runApp(t.Context(), cancelCommand(mockWallet), "cancel", "--id", "abc")

		// Assert
		assert.ErrorIs(t, err, wallet.ErrInvalidArgument)
	})
}

func TestSignAndVerifyCommands(t *testing.T) {
	t.Run("should print the signature", func(t *testing.T) {
		// Arrange
		mockWallet := clitest.NewWallet(t)
		mockWallet.EXPECT().SignMessage(mock.Anything, "hello").Return("sig-1", nil).Once()

		// Act
		out, err := runApp(t.Context(), signCommand(mockWallet), "sign", "--message", "hello")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "sig-1\n", out)
	})

	t.Run("should print the verification result", func(t *testing.T) {
		// Arrange
		mockWallet := clitest.NewWallet(t)
		mockWallet.EXPECT().VerifyMessageSignature(mock.Anything, "ab", "hello", "sig-1").Return(true, nil).Once()
		mockWallet.EXPECT().VerifyMessageSignature(mock.Anything, "ab", "hello", "forged").Return(false, nil).Once()

		// Act
		valid, errValid := runApp(t.Context(), verifyCommand(mockWallet), "verify", "--key", "ab", "--message", "hello", "--signature", "sig-1")
		invalid, errInvalid := runApp(t.Context(), verifyCommand(mockWallet), "verify", "--key", "ab", "--message", "hello", "--signature", "forged")

		// Assert
		require.NoError(t, errValid)
		require.NoError(t, errInvalid)
		assert.Equal(t, "valid\n", valid)
		assert.Equal(t, "invalid\n", invalid)
	})
}

func TestSimulateCommand(t *testing.T) {
	t.Run("should play the transaction through every stage", func(t *testing.T) {
		// Arrange
		mockSim := clitest.NewSimulator(t)
		mockWallet := clitest.NewWallet(t)

		mockSim.EXPECT().ReceiveTx("ab", uint64(1000), "hi").Return(uint64(7), nil).Once()
		mockSim.EXPECT().FinalizeReceivedTx(uint64(7)).Return(nil).Once()
		mockSim.EXPECT().BroadcastTx(uint64(7)).Return(nil).Once()
		mockSim.EXPECT().MineTx(uint64(7)).Return(nil).Once()
		mockWallet.EXPECT().Balance(mock.Anything).Return(wallet.Balance{Available: 1000}, nil).Once()

		// Act
		out, err := runApp(t.Context(), simulateCommand(mockSim, mockWallet), "simulate", "--from", "ab", "--message", "hi")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "tx 7 mined, available balance 0.001000 T\n", out)
	})

	t.Run("should stop at the first failing stage", func(t *testing.T) {
		// Arrange
		mockSim := clitest.NewSimulator(t)
		mockWallet := clitest.NewWallet(t)

		mockSim.EXPECT().ReceiveTx("ab", uint64(5), "").Return(uint64(8), nil).Once()
		mockSim.EXPECT().FinalizeReceivedTx(uint64(8)).Return(assert.AnError).Once()

		// Act
		_, err := runApp(t.Context(), simulateCommand(mockSim, mockWallet), "simulate", "--from", "ab", "--amount", "5")

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		// Arrange
		mockSim := clitest.NewSimulator(t)
		mockWallet := clitest.NewWallet(t)

		// Act
		_, err := runApp(t.Context(), simulateCommand(mockSim, mockWallet), "simulate", "--from", "ab", "--amount", "-5")

		// Assert
		assert.ErrorIs(t, err, wallet.ErrInvalidAmount)
	})
}
