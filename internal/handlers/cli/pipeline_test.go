package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	clitest "github.com/gabapcia/walletcore/internal/handlers/cli/mocks"
	"github.com/gabapcia/walletcore/internal/txarchive"
	"github.com/gabapcia/walletcore/internal/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runApp(ctx context.Context, cmd *cli.Command, args ...string) (string, error) {
	var out bytes.Buffer
	app := &cli.Command{
		Writer:   &out,
		Commands: []*cli.Command{cmd},
	}

	err := app.Run(ctx, append([]string{"test"}, args...))
	return out.String(), err
}

func TestRunDaemonCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Arrange
		mockDaemon := clitest.NewDaemon(t)

		// Act
		cmd := runDaemonCommand(mockDaemon)

		// Assert
		assert.Equal(t, "run", cmd.Name)
		assert.Equal(t, "Starts the wallet daemon including connectivity monitoring, periodic sync and the transaction archive.", cmd.Description)
		assert.Len(t, cmd.Flags, 0)
		assert.NotNil(t, cmd.Action)
	})

	t.Run("should return error when daemon start fails", func(t *testing.T) {
		// Arrange
		mockDaemon := clitest.NewDaemon(t)
		expectedError := errors.New("daemon start error")

		mockDaemon.EXPECT().Start(mock.Anything).Return(expectedError).Once()
		// Close should not be called if Start fails

		// Act
		_, err := runApp(t.Context(), runDaemonCommand(mockDaemon), "run")

		// Assert
		assert.ErrorIs(t, err, expectedError)
	})

	t.Run("should close the daemon when the context ends", func(t *testing.T) {
		// Arrange
		mockDaemon := clitest.NewDaemon(t)
		ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
		defer cancel()

		mockDaemon.EXPECT().Start(mock.Anything).Return(nil).Once()
		mockDaemon.EXPECT().Close().Return().Once()

		// Act
		_, err := runApp(ctx, runDaemonCommand(mockDaemon), "run")

		// Assert
		assert.NoError(t, err)
	})
}

func TestSyncCommand(t *testing.T) {
	t.Run("should print the session counts", func(t *testing.T) {
		// Arrange
		mockSyncer := clitest.NewSyncer(t)
		mockSyncer.EXPECT().Sync(mock.Anything).Return(2, 1, nil).Once()

		// Act
		out, err := runApp(t.Context(), syncCommand(mockSyncer), "sync")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "up to date: 2 received, 1 cancelled\n", out)
	})

	t.Run("should surface the failure reason", func(t *testing.T) {
		// Arrange
		mockSyncer := clitest.NewSyncer(t)
		mockSyncer.EXPECT().Sync(mock.Anything).Return(0, 0, wallet.ErrBaseNodeUnreachable).Once()

		// Act
		_, err := runApp(t.Context(), syncCommand(mockSyncer), "sync")

		// Assert
		assert.ErrorIs(t, err, wallet.ErrBaseNodeUnreachable)
	})
}

func TestHistoryCommand(t *testing.T) {
	t.Run("should print the archive and the last sync", func(t *testing.T) {
		// Arrange
		mockHistory := clitest.NewHistory(t)
		synced := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

		mockHistory.EXPECT().Txs(mock.Anything, 5).Return([]txarchive.Record{
			{Tx: wallet.Tx{ID: wallet.IDFromUint64(77), Amount: 1000, Status: wallet.TxStatusMined}, Event: "mined"},
		}, nil).Once()
		mockHistory.EXPECT().LastSyncTime(mock.Anything).Return(synced, nil).Once()

		// Act
		out, err := runApp(t.Context(), historyCommand(mockHistory), "history", "--limit", "5")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, out, "last sync: 2026-02-03T04:05:06Z")
		assert.Contains(t, out, "77")
		assert.Contains(t, out, "MINED")
	})

	t.Run("should report a wallet that never synced", func(t *testing.T) {
		// Arrange
		mockHistory := clitest.NewHistory(t)
		mockHistory.EXPECT().Txs(mock.Anything, 20).Return(nil, nil).Once()
		mockHistory.EXPECT().LastSyncTime(mock.Anything).Return(time.Time{}, txarchive.ErrNoSyncRecorded).Once()

		// Act
		out, err := runApp(t.Context(), historyCommand(mockHistory), "history")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, out, "last sync: never")
	})

	t.Run("should return error when the archive fails", func(t *testing.T) {
		// Arrange
		mockHistory := clitest.NewHistory(t)
		mockHistory.EXPECT().Txs(mock.Anything, 20).Return(nil, assert.AnError).Once()

		// Act
		_, err := runApp(t.Context(), historyCommand(mockHistory), "history")

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
	})
}
