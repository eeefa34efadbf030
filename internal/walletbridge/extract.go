package walletbridge

import (
	"fmt"
	"math"
	"time"

	"github.com/gabapcia/walletcore/internal/ffi"
	"github.com/gabapcia/walletcore/internal/wallet"
)

func toMicroTari(v uint64) (wallet.MicroTari, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("amount %d overflows", v)
	}
	return wallet.MicroTari(v), nil
}

// keyOf copies the hex and emoji forms of the key returned by get, then
// destroys that key.
func keyOf(get func() (*ffi.PublicKey, error)) (wallet.PublicKey, error) {
	pk, err := get()
	if err != nil {
		return wallet.PublicKey{}, err
	}
	defer pk.Destroy()

	return copyPublicKey(pk)
}

// ExtractTx copies every domain field out of rec. rec stays owned by the
// caller; every nested handle read on the way is destroyed before return,
// whether extraction succeeds or not.
//
// Pending inbound records are inbound and pending outbound records are
// outbound. Completed and cancelled records are classified by comparing
// their destination with ownKeyHex.
func ExtractTx(rec *ffi.TxRecord, kind wallet.TxKind, ownKeyHex string) (wallet.Tx, error) {
	var tx wallet.Tx

	id, err := rec.ID()
	if err != nil {
		return tx, err
	}

	amount, err := rec.Amount()
	if err != nil {
		return tx, err
	}

	fee, err := rec.Fee()
	if err != nil {
		return tx, err
	}

	ts, err := rec.Timestamp()
	if err != nil {
		return tx, err
	}

	message, err := rec.Message()
	if err != nil {
		return tx, err
	}

	status, err := rec.Status()
	if err != nil {
		return tx, err
	}

	switch rec.Kind() {
	case ffi.TxKindPendingInbound:
		tx.Direction = wallet.Inbound
		tx.Counterparty, err = keyOf(rec.SourcePublicKey)

	case ffi.TxKindPendingOutbound:
		tx.Direction = wallet.Outbound
		tx.Counterparty, err = keyOf(rec.DestinationPublicKey)

	default:
		var source, destination wallet.PublicKey
		if source, err = keyOf(rec.SourcePublicKey); err != nil {
			return tx, err
		}
		if destination, err = keyOf(rec.DestinationPublicKey); err != nil {
			return tx, err
		}

		tx.Direction = wallet.ClassifyDirection(destination.Hex, ownKeyHex)
		tx.Counterparty = source
		if tx.Direction == wallet.Outbound {
			tx.Counterparty = destination
		}
	}
	if err != nil {
		return tx, err
	}

	if tx.Amount, err = toMicroTari(amount); err != nil {
		return tx, err
	}
	if tx.Fee, err = toMicroTari(fee); err != nil {
		return tx, err
	}

	tx.ID = wallet.IDFromUint64(id)
	tx.Kind = kind
	tx.Timestamp = time.Unix(int64(ts), 0).UTC()
	tx.Message = message
	tx.Status = wallet.TxStatusFromCode(status)

	return tx, nil
}

// ExtractTxs copies every record of l. l stays owned by the caller.
func ExtractTxs(l *ffi.TxList, kind wallet.TxKind, ownKeyHex string) ([]wallet.Tx, error) {
	n, err := l.Len()
	if err != nil {
		return nil, err
	}

	txs := make([]wallet.Tx, 0, n)
	for i := range n {
		rec, err := l.At(i)
		if err != nil {
			return nil, err
		}

		tx, err := ExtractTx(rec, kind, ownKeyHex)
		rec.Destroy()
		if err != nil {
			return nil, err
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

func ffiKind(kind wallet.TxKind) ffi.TxKind {
	switch kind {
	case wallet.TxKindPendingInbound:
		return ffi.TxKindPendingInbound
	case wallet.TxKindPendingOutbound:
		return ffi.TxKindPendingOutbound
	default:
		return ffi.TxKindCompleted
	}
}
