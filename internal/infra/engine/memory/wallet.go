package memory

import (
	"bytes"
	"encoding/binary"
	"strings"
	"time"

	"github.com/gabapcia/walletcore/internal/ffi"
)

func (e *Engine) walletLookup(method string, w ffi.Token, st *ffi.Status) (*walletState, bool) {
	if !e.enter(method, st) {
		return nil, false
	}

	v, ok := e.lookup(w, kindWallet, st)
	if !ok {
		return nil, false
	}
	return v.(*walletState), true
}

func (e *Engine) WalletCreate(cfg ffi.Token, logPath string, cb ffi.Callbacks, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("WalletCreate", st) {
		return ffi.Null
	}

	v, ok := e.lookup(cfg, kindCommsConfig, st)
	if !ok {
		return ffi.Null
	}

	if e.walletToken != ffi.Null {
		st.Code = CodeWalletExists
		return ffi.Null
	}

	c := v.(*commsConfig)
	priv := clone(c.privateKey)
	if len(priv) == 0 {
		priv = randomBytes(keyLength)
	}

	w := e.wallet
	w.privateKey = priv
	w.publicKey = publicFromPrivate(priv)
	w.logPath = logPath
	w.callbacks = cb
	if w.baseNodes == nil {
		w.baseNodes = make(map[string]string)
	}

	e.walletToken = e.alloc(kindWallet, w)
	return e.walletToken
}

func (e *Engine) WalletDestroy(w ffi.Token) {
	e.free("WalletDestroy", w, kindWallet)

	e.mu.Lock()
	defer e.mu.Unlock()

	if w == e.walletToken {
		e.walletToken = ffi.Null
		e.wallet.callbacks = nil
	}
}

func (e *Engine) WalletGetPublicKey(w ffi.Token, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletGetPublicKey", w, st)
	if !ok {
		return ffi.Null
	}
	return e.alloc(kindPublicKey, clone(ws.publicKey))
}

func (e *Engine) WalletGetAvailableBalance(w ffi.Token, st *ffi.Status) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletGetAvailableBalance", w, st)
	if !ok {
		return 0
	}
	return ws.balance
}

func (e *Engine) WalletGetPendingIncomingBalance(w ffi.Token, st *ffi.Status) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletGetPendingIncomingBalance", w, st)
	if !ok {
		return 0
	}

	var total uint64
	for _, tx := range ws.inbound {
		total += tx.amount
	}
	return total
}

func (e *Engine) WalletGetPendingOutgoingBalance(w ffi.Token, st *ffi.Status) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletGetPendingOutgoingBalance", w, st)
	if !ok {
		return 0
	}

	var total uint64
	for _, tx := range ws.outbound {
		total += tx.amount + tx.fee
	}
	return total
}

func (e *Engine) WalletGetContacts(w ffi.Token, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletGetContacts", w, st)
	if !ok {
		return ffi.Null
	}
	return e.alloc(kindContacts, append([]contact(nil), ws.contacts...))
}

func (e *Engine) WalletAddUpdateContact(w, c ffi.Token, st *ffi.Status) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletAddUpdateContact", w, st)
	if !ok {
		return false
	}

	v, ok := e.lookup(c, kindContact, st)
	if !ok {
		return false
	}

	in := v.(contact)
	for i, existing := range ws.contacts {
		if bytes.Equal(existing.publicKey, in.publicKey) {
			ws.contacts[i] = contact{alias: in.alias, publicKey: clone(in.publicKey)}
			return true
		}
	}
	ws.contacts = append(ws.contacts, contact{alias: in.alias, publicKey: clone(in.publicKey)})
	return true
}

func (e *Engine) WalletRemoveContact(w, c ffi.Token, st *ffi.Status) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletRemoveContact", w, st)
	if !ok {
		return false
	}

	v, ok := e.lookup(c, kindContact, st)
	if !ok {
		return false
	}

	target := v.(contact).publicKey
	for i, existing := range ws.contacts {
		if bytes.Equal(existing.publicKey, target) {
			ws.contacts = append(ws.contacts[:i], ws.contacts[i+1:]...)
			return true
		}
	}
	return false
}

func (ws *walletState) family(kind ffi.TxKind) []txData {
	switch kind {
	case ffi.TxKindPendingInbound:
		return ws.inbound
	case ffi.TxKindPendingOutbound:
		return ws.outbound
	default:
		out := make([]txData, 0, len(ws.completed))
		for _, tx := range ws.completed {
			if !tx.cancelled {
				out = append(out, tx)
			}
		}
		return out
	}
}

func (ws *walletState) cancelled() []txData {
	out := make([]txData, 0)
	for _, tx := range ws.completed {
		if tx.cancelled {
			out = append(out, tx)
		}
	}
	return out
}

func findTx(txs []txData, id uint64) (txData, bool) {
	for _, tx := range txs {
		if tx.id == id {
			return tx, true
		}
	}
	return txData{}, false
}

func (e *Engine) WalletGetTxs(w ffi.Token, kind ffi.TxKind, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletGetTxs", w, st)
	if !ok {
		return ffi.Null
	}
	return e.alloc(kindTxs, txList{kind: kind, txs: append([]txData(nil), ws.family(kind)...)})
}

func (e *Engine) WalletGetCancelledTxs(w ffi.Token, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletGetCancelledTxs", w, st)
	if !ok {
		return ffi.Null
	}
	return e.alloc(kindTxs, txList{kind: ffi.TxKindCompleted, txs: ws.cancelled()})
}

func (e *Engine) WalletGetTxByID(w ffi.Token, kind ffi.TxKind, id uint64, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletGetTxByID", w, st)
	if !ok {
		return ffi.Null
	}

	tx, ok := findTx(ws.family(kind), id)
	if !ok {
		st.Code = CodeNotFound
		return ffi.Null
	}
	return e.alloc(kindTx, txRecord{kind: kind, tx: tx})
}

func (e *Engine) WalletGetCancelledTxByID(w ffi.Token, id uint64, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletGetCancelledTxByID", w, st)
	if !ok {
		return ffi.Null
	}

	tx, ok := findTx(ws.cancelled(), id)
	if !ok {
		st.Code = CodeNotFound
		return ffi.Null
	}
	return e.alloc(kindTx, txRecord{kind: ffi.TxKindCompleted, tx: tx})
}

func (e *Engine) WalletCancelPendingTx(w ffi.Token, id uint64, st *ffi.Status) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletCancelPendingTx", w, st)
	if !ok {
		return false
	}

	tx, ok := ws.takePending(id)
	if !ok {
		st.Code = CodeNotFound
		return false
	}

	if bytes.Equal(tx.source, ws.publicKey) {
		ws.balance += tx.amount + tx.fee
	}

	tx.cancelled = true
	ws.completed = append(ws.completed, tx)

	// The engine reports the cancellation from its own thread.
	e.raiseAsync(ws, func(cb ffi.Callbacks, token ffi.Token) { cb.OnTxCancellation(token) }, ffi.TxKindCompleted, tx)
	return true
}

func (ws *walletState) takePending(id uint64) (txData, bool) {
	for i, tx := range ws.outbound {
		if tx.id == id {
			ws.outbound = append(ws.outbound[:i], ws.outbound[i+1:]...)
			return tx, true
		}
	}
	for i, tx := range ws.inbound {
		if tx.id == id {
			ws.inbound = append(ws.inbound[:i], ws.inbound[i+1:]...)
			return tx, true
		}
	}
	return txData{}, false
}

func (e *Engine) WalletIsCompletedTxOutbound(w, tx ffi.Token, st *ffi.Status) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletIsCompletedTxOutbound", w, st)
	if !ok {
		return false
	}

	v, ok := e.lookup(tx, kindTx, st)
	if !ok {
		return false
	}

	r := v.(txRecord)
	if r.kind != ffi.TxKindCompleted {
		st.Code = CodeWrongType
		return false
	}
	return bytes.Equal(r.tx.source, ws.publicKey)
}

func (e *Engine) WalletSendTx(w, destination ffi.Token, amount, fee uint64, message string, st *ffi.Status) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletSendTx", w, st)
	if !ok {
		return 0
	}

	dest, ok := e.lookup(destination, kindPublicKey, st)
	if !ok {
		return 0
	}

	if ws.balance < amount+fee {
		st.Code = CodeInsufficientBalance
		return 0
	}
	ws.balance -= amount + fee

	tx := e.newTx(ws.publicKey, dest.([]byte), amount, fee, message, StatusPending)
	ws.outbound = append(ws.outbound, tx)
	return tx.id
}

func (e *Engine) newTx(source, destination []byte, amount, fee uint64, message string, status int32) txData {
	id := e.nextTxID
	e.nextTxID++

	return txData{
		id:          id,
		source:      clone(source),
		destination: clone(destination),
		amount:      amount,
		fee:         fee,
		timestamp:   uint64(e.clock().Unix()),
		message:     message,
		status:      status,
	}
}

func signatureDigest(publicKey, nonce []byte, message string) []byte {
	return digest([]byte("sig"), publicKey, nonce, []byte(message))
}

func (e *Engine) WalletSignMessage(w ffi.Token, message string, st *ffi.Status) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletSignMessage", w, st)
	if !ok {
		return ""
	}

	nonce := randomBytes(keyLength)
	return hexOf(signatureDigest(ws.publicKey, nonce, message)) + "|" + hexOf(nonce)
}

func (e *Engine) WalletVerifyMessageSignature(w, publicKey ffi.Token, message, signature string, st *ffi.Status) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.walletLookup("WalletVerifyMessageSignature", w, st); !ok {
		return false
	}

	pk, ok := e.lookup(publicKey, kindPublicKey, st)
	if !ok {
		return false
	}

	sig, nonce, found := strings.Cut(signature, "|")
	if !found {
		st.Code = CodeInvalidArgument
		return false
	}

	nb, err := decodeHex(nonce)
	if err != nil {
		st.Code = CodeInvalidArgument
		return false
	}
	return strings.EqualFold(sig, hexOf(signatureDigest(pk.([]byte), nb, message)))
}

func (e *Engine) WalletImportUTXO(w ffi.Token, amount uint64, spendingKey, sourcePublicKey ffi.Token, message string, st *ffi.Status) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletImportUTXO", w, st)
	if !ok {
		return 0
	}

	if _, ok := e.lookup(spendingKey, kindPrivateKey, st); !ok {
		return 0
	}

	src, ok := e.lookup(sourcePublicKey, kindPublicKey, st)
	if !ok {
		return 0
	}

	tx := e.newTx(src.([]byte), ws.publicKey, amount, 0, message, StatusImported)
	ws.completed = append(ws.completed, tx)
	ws.balance += amount
	return tx.id
}

func (e *Engine) WalletAddBaseNodePeer(w, publicKey ffi.Token, address string, st *ffi.Status) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletAddBaseNodePeer", w, st)
	if !ok {
		return false
	}

	pk, ok := e.lookup(publicKey, kindPublicKey, st)
	if !ok {
		return false
	}

	if address == "" {
		st.Code = CodeInvalidArgument
		return false
	}

	ws.baseNodes[hexOf(pk.([]byte))] = address
	return true
}

// WalletSyncWithBaseNode issues a request id and, after the configured
// delay, reports its outcome through OnBaseNodeSyncComplete. A wallet with no
// base node peer rejects the request.
func (e *Engine) WalletSyncWithBaseNode(w ffi.Token, st *ffi.Status) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletSyncWithBaseNode", w, st)
	if !ok {
		return 0
	}

	if len(ws.baseNodes) == 0 {
		st.Code = CodeNotFound
		return 0
	}

	id := e.nextRequest
	e.nextRequest++

	time.AfterFunc(e.syncDelay, func() {
		success, deliver := e.syncOutcome(id)
		if deliver {
			e.DeliverSyncResult(id, success)
		}
	})
	return id
}

func (e *Engine) WalletGetTorIdentity(w ffi.Token, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	ws, ok := e.walletLookup("WalletGetTorIdentity", w, st)
	if !ok {
		return ffi.Null
	}
	return e.alloc(kindByteVector, digest([]byte("tor"), ws.privateKey))
}

// EncodeID renders a correlation id the way the engine passes it to
// callbacks: big-endian, without leading zero bytes.
func EncodeID(id uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], id)
	return bytes.TrimLeft(buf[:], "\x00")
}
