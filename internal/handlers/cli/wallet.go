package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/walletcore/internal/wallet"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

// whoamiCommand prints the wallet's public key and emoji id.
//
// Usage example:
//
//	walletd whoami
func whoamiCommand(w Wallet) *cli.Command {
	return &cli.Command{
		Name:        "whoami",
		Description: "Shows the wallet's public key and emoji id.",
		Usage:       "Prints the wallet identity.",
		Action: func(ctx context.Context, c *cli.Command) error {
			pk, err := w.PublicKey(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer, "public key: %s\nemoji id:   %s\n", pk.Hex, pk.EmojiID)
			return err
		},
	}
}

// balanceCommand prints the three wallet balances.
//
// Usage example:
//
//	walletd balance
func balanceCommand(w Wallet) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Shows the available, pending incoming and pending outgoing balances.",
		Usage:       "Prints the wallet balances.",
		Action: func(ctx context.Context, c *cli.Command) error {
			bal, err := w.Balance(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer, "available:        %s\npending incoming: %s\npending outgoing: %s\n",
				bal.Available, bal.PendingIncoming, bal.PendingOutgoing)
			return err
		},
	}
}

var txKinds = map[string]wallet.TxKind{
	"completed":        wallet.TxKindCompleted,
	"pending-inbound":  wallet.TxKindPendingInbound,
	"pending-outbound": wallet.TxKindPendingOutbound,
	"cancelled":        wallet.TxKindCancelled,
}

// txsCommand lists one transaction family as a table.
//
// Usage example:
//
//	walletd txs --kind pending-inbound
func txsCommand(w Wallet) *cli.Command {
	return &cli.Command{
		Name:        "txs",
		Description: "Lists the wallet's transactions of one kind.",
		Usage:       "Prints a transaction table. Kind is one of completed, pending-inbound, pending-outbound, cancelled.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "kind",
				Usage: "Transaction kind to list",
				Value: "completed",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			kind, ok := txKinds[c.String("kind")]
			if !ok {
				return fmt.Errorf("%w: unknown kind %q", wallet.ErrInvalidArgument, c.String("kind"))
			}

			txs, err := w.Txs(ctx, kind)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(c.Root().Writer)
			table.SetHeader([]string{"ID", "Direction", "Counterparty", "Amount", "Fee", "Status", "Time", "Message"})
			for _, tx := range txs {
				table.Append([]string{
					tx.ID.String(),
					tx.Direction.String(),
					tx.Counterparty.Hex,
					tx.Amount.String(),
					tx.Fee.String(),
					tx.Status.String(),
					tx.Timestamp.Format(time.RFC3339),
					tx.Message,
				})
			}
			table.Render()

			return nil
		},
	}
}

// sendCommand sends funds to another wallet.
//
// Usage example:
//
//	walletd send --to <hex key> --amount 1000 --fee 100 --message "hi"
func sendCommand(w Wallet) *cli.Command {
	return &cli.Command{
		Name:        "send",
		Description: "Sends an amount in micro Tari to another wallet.",
		Usage:       "Creates a pending outbound transaction and prints its id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Destination public key (hex)",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "amount",
				Usage:    "Amount in micro Tari",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "fee",
				Usage: "Fee in micro Tari",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  "message",
				Usage: "Message attached to the transaction",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := w.SendTx(ctx,
				c.String("to"),
				wallet.MicroTari(c.Int("amount")),
				wallet.MicroTari(c.Int("fee")),
				c.String("message"),
			)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer, "sent: tx %s\n", id)
			return err
		},
	}
}

// cancelCommand cancels a pending transaction.
//
// Usage example:
//
//	walletd cancel --id 42
func cancelCommand(w Wallet) *cli.Command {
	return &cli.Command{
		Name:        "cancel",
		Description: "Cancels a pending transaction.",
		Usage:       "Cancels the pending transaction with the given id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Transaction id (decimal)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := wallet.ParseID(c.String("id"))
			if err != nil {
				return err
			}

			return w.CancelPendingTx(ctx, id)
		},
	}
}

// signCommand signs a message with the wallet key.
//
// Usage example:
//
//	walletd sign --message "hello"
func signCommand(w Wallet) *cli.Command {
	return &cli.Command{
		Name:        "sign",
		Description: "Signs a message with the wallet's private key.",
		Usage:       "Prints the signature of the message.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "message",
				Usage:    "Message to sign",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			sig, err := w.SignMessage(ctx, c.String("message"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, sig)
			return err
		},
	}
}

// verifyCommand checks a message signature.
//
// Usage example:
//
//	walletd verify --key <hex key> --message "hello" --signature <sig>
func verifyCommand(w Wallet) *cli.Command {
	return &cli.Command{
		Name:        "verify",
		Description: "Verifies a message signature against a public key.",
		Usage:       "Prints whether the signature is valid.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Signer public key (hex)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "message",
				Usage:    "Signed message",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "signature",
				Usage:    "Signature to verify",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			valid, err := w.VerifyMessageSignature(ctx, c.String("key"), c.String("message"), c.String("signature"))
			if err != nil {
				return err
			}

			result := "invalid"
			if valid {
				result = "valid"
			}
			_, err = fmt.Fprintln(c.Root().Writer, result)
			return err
		},
	}
}
