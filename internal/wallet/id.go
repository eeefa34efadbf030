package wallet

import (
	"fmt"

	"github.com/holiman/uint256"
)

// maxIDBytes is the widest correlation id accepted from the engine.
const maxIDBytes = 32

// ID is an unsigned engine identifier: a transaction id or a base node sync
// request id. Ids are compared by value and are usable as map keys.
type ID struct {
	v uint256.Int
}

// IDFromUint64 returns the id with value u.
func IDFromUint64(u uint64) ID {
	var id ID
	id.v.SetUint64(u)
	return id
}

// IDFromBytes decodes a big-endian unsigned buffer. An empty buffer is zero.
func IDFromBytes(b []byte) (ID, error) {
	if len(b) > maxIDBytes {
		return ID{}, ErrIDTooLarge
	}

	var id ID
	id.v.SetBytes(b)
	return id, nil
}

// Uint64 returns the value and whether it fits in 64 bits.
func (id ID) Uint64() (uint64, bool) {
	return id.v.Uint64(), id.v.IsUint64()
}

// IsZero reports whether the id is zero.
func (id ID) IsZero() bool {
	return id.v.IsZero()
}

// String renders the id in decimal.
func (id ID) String() string {
	return id.v.Dec()
}

// ParseID parses a decimal id.
func ParseID(s string) (ID, error) {
	var id ID
	if err := id.v.SetFromDecimal(s); err != nil {
		return ID{}, fmt.Errorf("%w: id %q: %w", ErrInvalidArgument, s, err)
	}
	return id, nil
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := ParseID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
