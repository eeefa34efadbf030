// Package wallet holds the domain model shared by the bridge, the callback
// dispatcher and their consumers. Values in this package never refer to
// foreign engine resources.
package wallet

import (
	"fmt"
	"strings"
	"time"
)

// MicroTari is an amount in the smallest currency unit.
type MicroTari int64

// Uint64 returns the engine representation of the amount.
func (m MicroTari) Uint64() (uint64, error) {
	if m < 0 {
		return 0, ErrInvalidAmount
	}
	return uint64(m), nil
}

// String renders the amount with six decimals, e.g. "1.250000 T".
func (m MicroTari) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign, v = "-", -v
	}
	return fmt.Sprintf("%s%d.%06d T", sign, v/1_000_000, v%1_000_000)
}

// Direction tells whether the wallet sent or received a transaction.
type Direction int

const (
	Inbound Direction = iota
	Outbound
)

func (d Direction) String() string {
	if d == Outbound {
		return "OUTBOUND"
	}
	return "INBOUND"
}

// ClassifyDirection compares the counterparty of a record with the wallet's
// own key. A record whose destination is the wallet is inbound, any other
// one is outbound. A self-to-self record is therefore inbound.
func ClassifyDirection(destinationHex, walletHex string) Direction {
	if strings.EqualFold(destinationHex, walletHex) {
		return Inbound
	}
	return Outbound
}

// TxStatus is the lifecycle status reported by the engine.
type TxStatus int

const (
	TxStatusUnknown TxStatus = iota
	TxStatusNullError
	TxStatusCompleted
	TxStatusBroadcast
	TxStatusMined
	TxStatusImported
	TxStatusPending
)

// TxStatusFromCode maps a raw engine status code.
func TxStatusFromCode(code int32) TxStatus {
	switch code {
	case -1:
		return TxStatusNullError
	case 0:
		return TxStatusCompleted
	case 1:
		return TxStatusBroadcast
	case 2:
		return TxStatusMined
	case 3:
		return TxStatusImported
	case 4:
		return TxStatusPending
	default:
		return TxStatusUnknown
	}
}

func (s TxStatus) String() string {
	switch s {
	case TxStatusNullError:
		return "TX_NULL_ERROR"
	case TxStatusCompleted:
		return "COMPLETED"
	case TxStatusBroadcast:
		return "BROADCAST"
	case TxStatusMined:
		return "MINED"
	case TxStatusImported:
		return "IMPORTED"
	case TxStatusPending:
		return "PENDING"
	default:
		return "UNKNOWN"
	}
}

// TxKind is the collection a transaction was read from.
type TxKind int

const (
	TxKindCompleted TxKind = iota
	TxKindPendingInbound
	TxKindPendingOutbound
	TxKindCancelled
)

func (k TxKind) String() string {
	switch k {
	case TxKindCompleted:
		return "completed"
	case TxKindPendingInbound:
		return "pending_inbound"
	case TxKindPendingOutbound:
		return "pending_outbound"
	case TxKindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// PublicKey is a copied wallet identity.
type PublicKey struct {
	Hex     string
	EmojiID string
}

// Contact is a named peer.
type Contact struct {
	Alias     string
	PublicKey PublicKey
}

// Balance groups the three balances the engine tracks.
type Balance struct {
	Available       MicroTari
	PendingIncoming MicroTari
	PendingOutgoing MicroTari
}

// Tx is an immutable copy of an engine transaction record.
type Tx struct {
	ID           ID
	Kind         TxKind
	Direction    Direction
	Counterparty PublicKey
	Amount       MicroTari
	Fee          MicroTari
	Timestamp    time.Time
	Message      string
	Status       TxStatus
}
