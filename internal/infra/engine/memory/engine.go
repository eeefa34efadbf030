// Package memory implements the wallet engine surface in process.
//
// It backs the test suites and the walletd simulate command. Every allocation
// and every destroy call is tracked per token, so leaks and double frees are
// observable, and any foreign call can be made to fail with a chosen code.
// Keys and signatures are digests, not real cryptography.
package memory

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/walletcore/internal/ffi"
)

// Engine result codes written into the status slot.
const (
	CodeNullPointer         int32 = 1
	CodeWrongType           int32 = 2
	CodeNotFound            int32 = 204
	CodeIndexOutOfBounds    int32 = 205
	CodeInvalidArgument     int32 = 301
	CodeInsufficientBalance int32 = 101
	CodeWalletExists        int32 = 420
)

// Raw engine transaction status codes.
const (
	StatusTxNullError int32 = -1
	StatusCompleted   int32 = 0
	StatusBroadcast   int32 = 1
	StatusMined       int32 = 2
	StatusImported    int32 = 3
	StatusPending     int32 = 4
)

type objectKind int

const (
	kindPrivateKey objectKind = iota
	kindPublicKey
	kindByteVector
	kindCommsConfig
	kindContact
	kindContacts
	kindTx
	kindTxs
	kindWallet
)

type object struct {
	kind  objectKind
	value any
}

type commsConfig struct {
	params     ffi.CommsConfigParams
	privateKey []byte
}

type contact struct {
	alias     string
	publicKey []byte
}

type txData struct {
	id          uint64
	source      []byte
	destination []byte
	amount      uint64
	fee         uint64
	timestamp   uint64
	message     string
	status      int32
	cancelled   bool
}

type txRecord struct {
	kind ffi.TxKind
	tx   txData
}

type txList struct {
	kind ffi.TxKind
	txs  []txData
}

type walletState struct {
	privateKey []byte
	publicKey  []byte
	logPath    string
	callbacks  ffi.Callbacks
	contacts   []contact
	inbound    []txData
	outbound   []txData
	completed  []txData
	balance    uint64
	baseNodes  map[string]string
}

// SyncOutcome decides the result delivered for a base node sync request.
type SyncOutcome func(requestID uint64) (success bool, deliver bool)

// Engine is an in-process implementation of ffi.Engine.
type Engine struct {
	mu sync.Mutex

	next     ffi.Token
	live     map[ffi.Token]object
	destroys map[ffi.Token]int
	calls    map[string]int
	failures map[string]int32

	wallet      *walletState
	walletToken ffi.Token
	nextTxID    uint64
	nextRequest uint64
	syncDelay   time.Duration
	syncOutcome SyncOutcome
	clock       func() time.Time
}

// Compile-time assertion that *Engine implements ffi.Engine.
var _ ffi.Engine = (*Engine)(nil)

// config holds the engine options.
type config struct {
	syncDelay   time.Duration
	syncOutcome SyncOutcome
	clock       func() time.Time
	balance     uint64
}

// Option configures the engine.
type Option func(*config)

// WithSyncDelay sets how long after a sync request its result is delivered.
func WithSyncDelay(d time.Duration) Option {
	return func(c *config) {
		c.syncDelay = d
	}
}

// WithSyncOutcome overrides the result delivered for each sync request.
func WithSyncOutcome(f SyncOutcome) Option {
	return func(c *config) {
		c.syncOutcome = f
	}
}

// WithClock overrides the time source used for tx timestamps.
func WithClock(f func() time.Time) Option {
	return func(c *config) {
		c.clock = f
	}
}

// WithInitialBalance seeds the available balance of the wallet.
func WithInitialBalance(v uint64) Option {
	return func(c *config) {
		c.balance = v
	}
}

// New creates an empty engine.
func New(opts ...Option) *Engine {
	cfg := config{
		syncDelay:   10 * time.Millisecond,
		syncOutcome: func(uint64) (bool, bool) { return true, true },
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		next:        0x1000,
		live:        make(map[ffi.Token]object),
		destroys:    make(map[ffi.Token]int),
		calls:       make(map[string]int),
		failures:    make(map[string]int32),
		nextTxID:    1,
		nextRequest: 1,
		syncDelay:   cfg.syncDelay,
		syncOutcome: cfg.syncOutcome,
		clock:       cfg.clock,
	}
	e.wallet = &walletState{balance: cfg.balance, baseNodes: make(map[string]string)}

	return e
}

// FailOn makes every subsequent call to method report code. Passing zero
// clears the failure.
func (e *Engine) FailOn(method string, code int32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if code == 0 {
		delete(e.failures, method)
		return
	}
	e.failures[method] = code
}

// Calls returns how many times method was invoked.
func (e *Engine) Calls(method string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.calls[method]
}

// DestroyCount returns how many times token was passed to a destroy call.
func (e *Engine) DestroyCount(token ffi.Token) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.destroys[token]
}

// IsLive reports whether token refers to an allocated, not yet freed object.
func (e *Engine) IsLive(token ffi.Token) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, ok := e.live[token]
	return ok
}

// LiveCount returns the number of allocated objects.
func (e *Engine) LiveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.live)
}

// LiveTokens returns the allocated tokens, excluding the wallet itself.
func (e *Engine) LiveTokens() []ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]ffi.Token, 0, len(e.live))
	for t, o := range e.live {
		if o.kind != kindWallet {
			out = append(out, t)
		}
	}
	return out
}

// DoubleFrees returns how many destroy calls hit a token that was not live.
func (e *Engine) DoubleFrees() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for t, c := range e.destroys {
		if _, ok := e.live[t]; ok {
			continue
		}
		if c > 1 {
			n += c - 1
		}
	}
	return n
}

// enter records a call to method and applies any injected failure. It must
// be called with e.mu held. It returns false when the call must stop.
func (e *Engine) enter(method string, st *ffi.Status) bool {
	e.calls[method]++
	if code, ok := e.failures[method]; ok {
		st.Code = code
		return false
	}
	return true
}

func (e *Engine) alloc(kind objectKind, value any) ffi.Token {
	e.next++
	t := e.next
	e.live[t] = object{kind: kind, value: value}
	return t
}

func (e *Engine) lookup(t ffi.Token, kind objectKind, st *ffi.Status) (any, bool) {
	if t == ffi.Null {
		st.Code = CodeNullPointer
		return nil, false
	}

	o, ok := e.live[t]
	if !ok {
		st.Code = CodeNullPointer
		return nil, false
	}

	if o.kind != kind {
		st.Code = CodeWrongType
		return nil, false
	}

	return o.value, true
}

func (e *Engine) free(method string, t ffi.Token, kind objectKind) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls[method]++
	e.destroys[t]++
	if o, ok := e.live[t]; ok && o.kind == kind {
		delete(e.live, t)
	}
}

func digest(parts ...[]byte) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}

func hexOf(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}
