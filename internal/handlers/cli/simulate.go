package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/walletcore/internal/wallet"

	"github.com/urfave/cli/v3"
)

// simulateCommand plays an inbound transaction through every stage:
// received, finalized, broadcast and mined.
//
// Usage example:
//
//	walletd simulate --from <hex key> --amount 1000 --message "hi"
func simulateCommand(s Simulator, w Wallet) *cli.Command {
	return &cli.Command{
		Name:        "simulate",
		Description: "Simulates a peer paying this wallet, through to the transaction being mined.",
		Usage:       "Only available with the in-process engine.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "Sender public key (hex)",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "amount",
				Usage: "Amount in micro Tari",
				Value: 1000,
			},
			&cli.StringFlag{
				Name:  "message",
				Usage: "Message attached to the transaction",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			amount := c.Int("amount")
			if amount < 0 {
				return wallet.ErrInvalidAmount
			}

			id, err := s.ReceiveTx(c.String("from"), uint64(amount), c.String("message"))
			if err != nil {
				return err
			}

			steps := []func(uint64) error{s.FinalizeReceivedTx, s.BroadcastTx, s.MineTx}
			for _, step := range steps {
				if err := step(id); err != nil {
					return err
				}
			}

			bal, err := w.Balance(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer, "tx %d mined, available balance %s\n", id, bal.Available)
			return err
		},
	}
}
