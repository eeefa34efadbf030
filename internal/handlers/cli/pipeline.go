package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

// runDaemonCommand returns a CLI command that starts the daemon: the
// connectivity probe, the transaction archive and the periodic sync.
//
// Usage example:
//
//	walletd run
//
// The process runs indefinitely until it receives an interrupt (SIGINT or SIGTERM).
func runDaemonCommand(d Daemon) *cli.Command {
	return &cli.Command{
		Name:        "run",
		Description: "Starts the wallet daemon including connectivity monitoring, periodic sync and the transaction archive.",
		Usage:       "Runs the daemon. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := d.Start(ctx); err != nil {
				return err
			}
			defer d.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}
			return nil
		},
	}
}

// syncCommand returns a CLI command that runs one sync session.
//
// Usage example:
//
//	walletd sync
func syncCommand(s Syncer) *cli.Command {
	return &cli.Command{
		Name:        "sync",
		Description: "Synchronizes the wallet with its base node once.",
		Usage:       "Runs one sync session and reports the received and cancelled transaction counts.",
		Action: func(ctx context.Context, c *cli.Command) error {
			received, cancelled, err := s.Sync(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer, "up to date: %d received, %d cancelled\n", received, cancelled)
			return err
		},
	}
}

// historyCommand returns a CLI command that lists archived transactions.
//
// Usage example:
//
//	walletd history --limit 20
func historyCommand(h History) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "Lists archived transaction states, newest first, and the last successful sync.",
		Usage:       "Prints the transaction archive.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of records (0 for all)",
				Value: 20,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			recs, err := h.Txs(ctx, int(c.Int("limit")))
			if err != nil {
				return err
			}

			w := c.Root().Writer

			lastSync := "never"
			if t, err := h.LastSyncTime(ctx); err == nil {
				lastSync = t.Format(time.RFC3339)
			}
			if _, err := fmt.Fprintf(w, "last sync: %s\n", lastSync); err != nil {
				return err
			}

			table := tablewriter.NewWriter(w)
			table.SetHeader([]string{"ID", "Event", "Status", "Direction", "Amount", "Archived"})
			for _, rec := range recs {
				table.Append([]string{
					rec.Tx.ID.String(),
					rec.Event,
					rec.Tx.Status.String(),
					rec.Tx.Direction.String(),
					rec.Tx.Amount.String(),
					rec.ArchivedAt.Format(time.RFC3339),
				})
			}
			table.Render()

			return nil
		},
	}
}
