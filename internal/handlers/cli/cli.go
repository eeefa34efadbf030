package cli

import (
	"context"
	"os"
	"time"

	"github.com/gabapcia/walletcore/internal/txarchive"
	"github.com/gabapcia/walletcore/internal/wallet"

	"github.com/urfave/cli/v3"
)

// Wallet is the wallet surface the commands operate on.
type Wallet interface {
	PublicKey(ctx context.Context) (wallet.PublicKey, error)
	Balance(ctx context.Context) (wallet.Balance, error)
	Txs(ctx context.Context, kind wallet.TxKind) ([]wallet.Tx, error)
	SendTx(ctx context.Context, destinationHex string, amount, fee wallet.MicroTari, message string) (wallet.ID, error)
	CancelPendingTx(ctx context.Context, id wallet.ID) error
	SignMessage(ctx context.Context, message string) (string, error)
	VerifyMessageSignature(ctx context.Context, publicKeyHex, message, signature string) (bool, error)
}

// Syncer runs one sync session and waits for its outcome.
type Syncer interface {
	Sync(ctx context.Context) (received, cancelled int, err error)
}

// Daemon is the long running part of walletd.
type Daemon interface {
	Start(ctx context.Context) error
	Close()
}

// History reads the transaction archive.
type History interface {
	Txs(ctx context.Context, limit int) ([]txarchive.Record, error)
	LastSyncTime(ctx context.Context) (time.Time, error)
}

// Simulator drives the in-process engine the way a peer and the network
// would.
type Simulator interface {
	ReceiveTx(sourceHex string, amount uint64, message string) (uint64, error)
	FinalizeReceivedTx(id uint64) error
	BroadcastTx(id uint64) error
	MineTx(id uint64) error
}

// Deps groups the services behind the commands. Simulator may be nil, in
// which case the simulate command is not registered.
type Deps struct {
	Wallet    Wallet
	Syncer    Syncer
	Daemon    Daemon
	History   History
	Simulator Simulator
}

func commands(d Deps) []*cli.Command {
	cmds := []*cli.Command{
		runDaemonCommand(d.Daemon),
		whoamiCommand(d.Wallet),
		balanceCommand(d.Wallet),
		txsCommand(d.Wallet),
		sendCommand(d.Wallet),
		cancelCommand(d.Wallet),
		signCommand(d.Wallet),
		verifyCommand(d.Wallet),
		syncCommand(d.Syncer),
		historyCommand(d.History),
	}

	if d.Simulator != nil {
		cmds = append(cmds, simulateCommand(d.Simulator, d.Wallet))
	}

	return cmds
}

// Run initializes and executes the walletd CLI application.
//
// It registers all available commands, including:
//
//   - `run`: Starts the daemon and syncs periodically until interrupted.
//   - `whoami`, `balance`, `txs`: Read wallet state.
//   - `send`, `cancel`: Create and cancel transactions.
//   - `sign`, `verify`: Sign and verify messages with the wallet key.
//   - `sync`: Runs one base node sync session.
//   - `history`: Lists archived transactions.
//   - `simulate`: Plays an inbound transaction through the in-process engine.
func Run(ctx context.Context, d Deps) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "walletd",
		Description:           "Command-line interface for the wallet sync daemon.",
		Usage:                 "walletd [command] [flags]",
		Commands:              commands(d),
	}

	return app.Run(ctx, os.Args)
}
