package walletbridge

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/walletcore/internal/ffi"
	"github.com/gabapcia/walletcore/internal/pkg/logger"
	"github.com/gabapcia/walletcore/internal/wallet"
)

// PublicKey reads the wallet identity from the engine.
func (b *Bridge) PublicKey(ctx context.Context) (key wallet.PublicKey, err error) {
	_, span := b.startSpan(ctx, "PublicKey")
	defer func() { endSpan(span, err) }()

	err = b.with(func(w *ffi.Wallet) error {
		key, err = keyOf(w.PublicKey)
		return err
	})
	return key, err
}

// Balance returns the available and pending balances.
func (b *Bridge) Balance(ctx context.Context) (bal wallet.Balance, err error) {
	_, span := b.startSpan(ctx, "Balance")
	defer func() { endSpan(span, err) }()

	err = b.with(func(w *ffi.Wallet) error {
		for _, f := range []struct {
			get func() (uint64, error)
			dst *wallet.MicroTari
		}{
			{w.AvailableBalance, &bal.Available},
			{w.PendingIncomingBalance, &bal.PendingIncoming},
			{w.PendingOutgoingBalance, &bal.PendingOutgoing},
		} {
			v, err := f.get()
			if err != nil {
				return err
			}
			if *f.dst, err = toMicroTari(v); err != nil {
				return err
			}
		}
		return nil
	})
	return bal, err
}

// ContactList returns the engine contact collection. The caller owns it.
func (b *Bridge) ContactList(ctx context.Context) (list *ffi.Contacts, err error) {
	err = b.with(func(w *ffi.Wallet) error {
		list, err = w.Contacts()
		return err
	})
	return list, err
}

// Contacts returns a copy of every stored contact.
func (b *Bridge) Contacts(ctx context.Context) (contacts []wallet.Contact, err error) {
	_, span := b.startSpan(ctx, "Contacts")
	defer func() { endSpan(span, err) }()

	list, err := b.ContactList(ctx)
	if err != nil {
		return nil, err
	}
	defer list.Destroy()

	n, err := list.Len()
	if err != nil {
		return nil, err
	}

	contacts = make([]wallet.Contact, 0, n)
	for i := range n {
		c, err := list.At(i)
		if err != nil {
			return nil, err
		}

		contact, err := copyContact(c)
		c.Destroy()
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}

	return contacts, nil
}

func copyContact(c *ffi.Contact) (wallet.Contact, error) {
	alias, err := c.Alias()
	if err != nil {
		return wallet.Contact{}, err
	}

	key, err := keyOf(c.PublicKey)
	if err != nil {
		return wallet.Contact{}, err
	}

	return wallet.Contact{Alias: alias, PublicKey: key}, nil
}

// withContact builds a transient engine contact for alias and publicKeyHex.
func (b *Bridge) withContact(alias, publicKeyHex string, fn func(w *ffi.Wallet, c *ffi.Contact) error) error {
	return b.with(func(w *ffi.Wallet) error {
		pk, err := ffi.PublicKeyFromHex(b.engine, publicKeyHex)
		if err != nil {
			return err
		}
		defer pk.Destroy()

		c, err := ffi.NewContact(b.engine, alias, pk)
		if err != nil {
			return err
		}
		defer c.Destroy()

		return fn(w, c)
	})
}

// AddUpdateContact stores c, replacing any contact with the same key, and
// publishes wallet.ContactAddedOrUpdated.
func (b *Bridge) AddUpdateContact(ctx context.Context, c wallet.Contact) (err error) {
	ctx, span := b.startSpan(ctx, "AddUpdateContact")
	defer func() { endSpan(span, err) }()

	var stored wallet.Contact
	err = b.withContact(c.Alias, c.PublicKey.Hex, func(w *ffi.Wallet, fc *ffi.Contact) error {
		if _, err := w.AddUpdateContact(fc); err != nil {
			return err
		}
		stored, err = copyContact(fc)
		return err
	})
	if err != nil {
		return err
	}

	logger.Debug(ctx, "contact stored", "contact.alias", stored.Alias, "contact.public_key", stored.PublicKey.Hex)
	b.publisher.Publish(wallet.ContactAddedOrUpdated{Contact: stored})
	return nil
}

// RemoveContact deletes the contact with c's key. It reports whether one
// was found.
func (b *Bridge) RemoveContact(ctx context.Context, c wallet.Contact) (removed bool, err error) {
	_, span := b.startSpan(ctx, "RemoveContact")
	defer func() { endSpan(span, err) }()

	err = b.withContact(c.Alias, c.PublicKey.Hex, func(w *ffi.Wallet, fc *ffi.Contact) error {
		removed, err = w.RemoveContact(fc)
		return err
	})
	return removed, err
}

// TxList returns the engine collection for kind. The caller owns it.
func (b *Bridge) TxList(ctx context.Context, kind wallet.TxKind) (list *ffi.TxList, err error) {
	err = b.with(func(w *ffi.Wallet) error {
		if kind == wallet.TxKindCancelled {
			list, err = w.CancelledTxs()
		} else {
			list, err = w.Txs(ffiKind(kind))
		}
		return err
	})
	return list, err
}

// Txs returns a copy of every transaction of kind.
func (b *Bridge) Txs(ctx context.Context, kind wallet.TxKind) (txs []wallet.Tx, err error) {
	_, span := b.startSpan(ctx, "Txs")
	defer func() { endSpan(span, err) }()

	list, err := b.TxList(ctx, kind)
	if err != nil {
		return nil, err
	}
	defer list.Destroy()

	return ExtractTxs(list, kind, b.ownKey.Hex)
}

// CompletedTxs returns completed transactions that were not cancelled.
func (b *Bridge) CompletedTxs(ctx context.Context) ([]wallet.Tx, error) {
	return b.Txs(ctx, wallet.TxKindCompleted)
}

// CancelledTxs returns cancelled transactions.
func (b *Bridge) CancelledTxs(ctx context.Context) ([]wallet.Tx, error) {
	return b.Txs(ctx, wallet.TxKindCancelled)
}

// PendingInboundTxs returns inbound transactions awaiting completion.
func (b *Bridge) PendingInboundTxs(ctx context.Context) ([]wallet.Tx, error) {
	return b.Txs(ctx, wallet.TxKindPendingInbound)
}

// PendingOutboundTxs returns outbound transactions awaiting completion.
func (b *Bridge) PendingOutboundTxs(ctx context.Context) ([]wallet.Tx, error) {
	return b.Txs(ctx, wallet.TxKindPendingOutbound)
}

func engineID(id wallet.ID) (uint64, error) {
	v, ok := id.Uint64()
	if !ok {
		return 0, fmt.Errorf("%w: tx id %s exceeds 64 bits", wallet.ErrInvalidArgument, id)
	}
	return v, nil
}

// TxRecord returns the engine record of kind with id. The caller owns it.
func (b *Bridge) TxRecord(ctx context.Context, kind wallet.TxKind, id wallet.ID) (rec *ffi.TxRecord, err error) {
	raw, err := engineID(id)
	if err != nil {
		return nil, err
	}

	err = b.with(func(w *ffi.Wallet) error {
		if kind == wallet.TxKindCancelled {
			rec, err = w.CancelledTxByID(raw)
		} else {
			rec, err = w.TxByID(ffiKind(kind), raw)
		}
		return err
	})
	return rec, err
}

// TxByID returns a copy of the transaction of kind with id.
func (b *Bridge) TxByID(ctx context.Context, kind wallet.TxKind, id wallet.ID) (tx wallet.Tx, err error) {
	_, span := b.startSpan(ctx, "TxByID")
	defer func() { endSpan(span, err) }()

	rec, err := b.TxRecord(ctx, kind, id)
	if err != nil {
		return tx, err
	}
	defer rec.Destroy()

	return ExtractTx(rec, kind, b.ownKey.Hex)
}

// CancelPendingTx cancels a pending transaction. The engine reports the
// cancellation through the usual notification.
func (b *Bridge) CancelPendingTx(ctx context.Context, id wallet.ID) (err error) {
	_, span := b.startSpan(ctx, "CancelPendingTx")
	defer func() { endSpan(span, err) }()

	raw, err := engineID(id)
	if err != nil {
		return err
	}

	return b.with(func(w *ffi.Wallet) error {
		_, err := w.CancelPendingTx(raw)
		return err
	})
}

// IsCompletedTxOutbound asks the engine whether the wallet sent the completed
// transaction with id.
func (b *Bridge) IsCompletedTxOutbound(ctx context.Context, id wallet.ID) (outbound bool, err error) {
	rec, err := b.TxRecord(ctx, wallet.TxKindCompleted, id)
	if err != nil {
		return false, err
	}
	defer rec.Destroy()

	err = b.with(func(w *ffi.Wallet) error {
		outbound, err = w.IsCompletedTxOutbound(rec)
		return err
	})
	return outbound, err
}

// SendTx sends amount to destinationHex. Arguments are checked in order,
// fee first, then amount, then destination, and the engine is only called
// once they all pass.
func (b *Bridge) SendTx(ctx context.Context, destinationHex string, amount, fee wallet.MicroTari, message string) (id wallet.ID, err error) {
	ctx, span := b.startSpan(ctx, "SendTx")
	defer func() { endSpan(span, err) }()

	if fee < b.minFee {
		return id, fmt.Errorf("%w: %s < %s", wallet.ErrFeeTooLow, fee, b.minFee)
	}

	rawAmount, err := amount.Uint64()
	if err != nil {
		return id, err
	}

	if strings.EqualFold(destinationHex, b.ownKey.Hex) {
		return id, wallet.ErrSelfSendRejected
	}

	rawFee, err := fee.Uint64()
	if err != nil {
		return id, err
	}

	err = b.with(func(w *ffi.Wallet) error {
		dest, err := ffi.PublicKeyFromHex(b.engine, destinationHex)
		if err != nil {
			return err
		}
		defer dest.Destroy()

		raw, err := w.SendTx(dest, rawAmount, rawFee, message)
		if err != nil {
			return err
		}

		id = wallet.IDFromUint64(raw)
		return nil
	})
	if err != nil {
		return id, err
	}

	logger.Info(ctx, "tx sent", "tx.id", id.String(), "tx.amount", int64(amount), "tx.fee", int64(fee))
	return id, nil
}

// SignMessage signs message with the wallet identity.
func (b *Bridge) SignMessage(ctx context.Context, message string) (signature string, err error) {
	_, span := b.startSpan(ctx, "SignMessage")
	defer func() { endSpan(span, err) }()

	err = b.with(func(w *ffi.Wallet) error {
		signature, err = w.SignMessage(message)
		return err
	})
	return signature, err
}

// VerifyMessageSignature checks signature of message against publicKeyHex.
func (b *Bridge) VerifyMessageSignature(ctx context.Context, publicKeyHex, message, signature string) (valid bool, err error) {
	_, span := b.startSpan(ctx, "VerifyMessageSignature")
	defer func() { endSpan(span, err) }()

	err = b.with(func(w *ffi.Wallet) error {
		pk, err := ffi.PublicKeyFromHex(b.engine, publicKeyHex)
		if err != nil {
			return err
		}
		defer pk.Destroy()

		valid, err = w.VerifyMessageSignature(pk, message, signature)
		return err
	})
	return valid, err
}

// ImportUTXO imports an unspent output and returns the id of the resulting
// imported transaction.
func (b *Bridge) ImportUTXO(ctx context.Context, amount wallet.MicroTari, spendingKeyHex, sourcePublicKeyHex, message string) (id wallet.ID, err error) {
	_, span := b.startSpan(ctx, "ImportUTXO")
	defer func() { endSpan(span, err) }()

	raw, err := amount.Uint64()
	if err != nil {
		return id, err
	}

	err = b.with(func(w *ffi.Wallet) error {
		key, err := ffi.PrivateKeyFromHex(b.engine, spendingKeyHex)
		if err != nil {
			return err
		}
		defer key.Destroy()

		src, err := ffi.PublicKeyFromHex(b.engine, sourcePublicKeyHex)
		if err != nil {
			return err
		}
		defer src.Destroy()

		txID, err := w.ImportUTXO(raw, key, src, message)
		if err != nil {
			return err
		}

		id = wallet.IDFromUint64(txID)
		return nil
	})
	return id, err
}

// AddBaseNodePeer registers the base node the wallet syncs against.
func (b *Bridge) AddBaseNodePeer(ctx context.Context, publicKeyHex, address string) (err error) {
	ctx, span := b.startSpan(ctx, "AddBaseNodePeer")
	defer func() { endSpan(span, err) }()

	err = b.with(func(w *ffi.Wallet) error {
		pk, err := ffi.PublicKeyFromHex(b.engine, publicKeyHex)
		if err != nil {
			return err
		}
		defer pk.Destroy()

		_, err = w.AddBaseNodePeer(pk, address)
		return err
	})
	if err == nil {
		logger.Info(ctx, "base node peer added", "base_node.public_key", publicKeyHex, "base_node.address", address)
	}
	return err
}

// SyncWithBaseNode issues one sync request and returns its correlation id.
// The outcome arrives later as a wallet.BaseNodeSyncComplete notification.
func (b *Bridge) SyncWithBaseNode(ctx context.Context) (id wallet.ID, err error) {
	ctx, span := b.startSpan(ctx, "SyncWithBaseNode")
	defer func() { endSpan(span, err) }()

	err = b.with(func(w *ffi.Wallet) error {
		raw, err := w.SyncWithBaseNode()
		if err != nil {
			return err
		}
		id = wallet.IDFromUint64(raw)
		return nil
	})
	if err == nil {
		logger.Debug(ctx, "base node sync requested", "sync.request_id", id.String())
	}
	return id, err
}

// TorIdentity returns the serialized onion service identity.
func (b *Bridge) TorIdentity(ctx context.Context) (identity []byte, err error) {
	_, span := b.startSpan(ctx, "TorIdentity")
	defer func() { endSpan(span, err) }()

	err = b.with(func(w *ffi.Wallet) error {
		bv, err := w.TorIdentity()
		if err != nil {
			return err
		}
		defer bv.Destroy()

		identity, err = bv.Bytes()
		return err
	})
	return identity, err
}
