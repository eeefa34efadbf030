package ffi

import (
	"encoding/hex"
	"strings"
)

// ByteVector is an owned engine byte buffer.
type ByteVector struct {
	handle
	api ByteVectorAPI
}

// WrapByteVector takes ownership of a byte vector token.
func WrapByteVector(api ByteVectorAPI, token Token) *ByteVector {
	return &ByteVector{handle: newHandle("byte vector", token, api.ByteVectorDestroy), api: api}
}

// NewByteVector copies data into a new engine buffer.
func NewByteVector(api ByteVectorAPI, data []byte) (*ByteVector, error) {
	token, err := call("byte_vector_create", func(st *Status) Token {
		return api.ByteVectorCreate(data, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapByteVector(api, token), nil
}

// Len returns the buffer length.
func (b *ByteVector) Len() (uint32, error) {
	t, err := b.acquire()
	if err != nil {
		return 0, err
	}

	return call("byte_vector_get_length", func(st *Status) uint32 {
		return b.api.ByteVectorGetLength(t, st)
	})
}

// At returns the byte at index.
func (b *ByteVector) At(index uint32) (byte, error) {
	t, err := b.acquire()
	if err != nil {
		return 0, err
	}

	return call("byte_vector_get_at", func(st *Status) byte {
		return b.api.ByteVectorGetAt(t, index, st)
	})
}

// Bytes copies the whole buffer into Go memory.
func (b *ByteVector) Bytes() ([]byte, error) {
	n, err := b.Len()
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	for i := range n {
		if out[i], err = b.At(i); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Hex returns the buffer as an uppercase hex string.
func (b *ByteVector) Hex() (string, error) {
	data, err := b.Bytes()
	if err != nil {
		return "", err
	}

	return strings.ToUpper(hex.EncodeToString(data)), nil
}

// Borrow returns a non-owning view of the same buffer.
func (b *ByteVector) Borrow() *ByteVector {
	return &ByteVector{handle: b.borrow(), api: b.api}
}

// Destroy frees the buffer once. Safe on nil.
func (b *ByteVector) Destroy() {
	if b != nil {
		b.handle.Destroy()
	}
}
