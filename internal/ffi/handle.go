package ffi

import (
	"fmt"
	"sync"
)

// handleState is the token cell shared by an owning handle and its borrowers.
type handleState struct {
	mu    sync.Mutex
	token Token
	name  string
	free  func(Token)
}

// handle is the common core of all typed handles.
//
// Only the owning handle may free the token. Borrowed handles observe the same
// cell, so once the owner destroys the resource every borrower reads Null.
type handle struct {
	state *handleState
	owned bool
}

func newHandle(name string, token Token, free func(Token)) handle {
	return handle{
		state: &handleState{token: token, name: name, free: free},
		owned: true,
	}
}

// Token returns the current token, Null once destroyed.
func (h *handle) Token() Token {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	return h.state.token
}

// IsNull reports whether the handle no longer refers to a live resource.
func (h *handle) IsNull() bool {
	return h.Token() == Null
}

// Owned reports whether Destroy on this handle frees the resource.
func (h *handle) Owned() bool {
	return h.owned
}

// acquire returns the live token or ErrNullHandle.
func (h *handle) acquire() (Token, error) {
	t := h.Token()
	if t == Null {
		return Null, fmt.Errorf("%s: %w", h.state.name, ErrNullHandle)
	}

	return t, nil
}

// Destroy frees the foreign resource. It is a no-op on a borrowed handle and
// on a handle that was already destroyed.
func (h *handle) Destroy() {
	if !h.owned {
		return
	}

	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	if h.state.token == Null {
		return
	}

	h.state.free(h.state.token)
	h.state.token = Null
}

func (h *handle) borrow() handle {
	return handle{state: h.state, owned: false}
}

// Destroyer is implemented by every handle type.
type Destroyer interface {
	Destroy()
}

// DestroyAll destroys each non-nil handle in order.
func DestroyAll(handles ...Destroyer) {
	for _, h := range handles {
		if h != nil {
			h.Destroy()
		}
	}
}
