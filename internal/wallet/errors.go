package wallet

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a precondition that was violated before the
// engine was reached. All argument errors below wrap it.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrFeeTooLow is returned when a send fee is below the minimum.
	ErrFeeTooLow = fmt.Errorf("%w: fee below minimum", ErrInvalidArgument)

	// ErrInvalidAmount is returned for negative amounts.
	ErrInvalidAmount = fmt.Errorf("%w: amount must not be negative", ErrInvalidArgument)

	// ErrSelfSendRejected is returned when a send targets the wallet's own key.
	ErrSelfSendRejected = fmt.Errorf("%w: destination is the wallet's own key", ErrInvalidArgument)

	// ErrEmptyDatabaseName is returned when a comms config has no database name.
	ErrEmptyDatabaseName = fmt.Errorf("%w: database name is empty", ErrInvalidArgument)

	// ErrIDTooLarge is returned when a correlation id does not fit 256 bits.
	ErrIDTooLarge = fmt.Errorf("%w: id wider than 256 bits", ErrInvalidArgument)
)

// ErrFilesystemUnavailable is returned when the wallet data directory or the
// log file location cannot be used.
var ErrFilesystemUnavailable = errors.New("filesystem unavailable")

var (
	// ErrBridgeInitFailed is returned when the wallet bridge cannot be built,
	// either because the engine failed or because one already exists.
	ErrBridgeInitFailed = errors.New("wallet bridge init failed")

	// ErrBridgeClosed is returned by every bridge operation after Close.
	ErrBridgeClosed = errors.New("wallet bridge closed")
)

// ErrStaleCallbackIgnored reports a completion whose correlation id does not
// match the pending request. It is informational and never surfaced to users.
var ErrStaleCallbackIgnored = errors.New("stale callback ignored")

var (
	// ErrNetworkUnavailable is the terminal sync failure caused by the host
	// network being down.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrBaseNodeUnreachable is the terminal sync failure caused by the base
	// node, the anonymity proxy, retries running out or the session deadline.
	ErrBaseNodeUnreachable = errors.New("base node unreachable")
)
