package memory

import "github.com/gabapcia/walletcore/internal/ffi"

func (e *Engine) record(method string, kind ffi.TxKind, tx ffi.Token, st *ffi.Status) (txData, bool) {
	if !e.enter(method, st) {
		return txData{}, false
	}

	v, ok := e.lookup(tx, kindTx, st)
	if !ok {
		return txData{}, false
	}

	r := v.(txRecord)
	if r.kind != kind {
		st.Code = CodeWrongType
		return txData{}, false
	}
	return r.tx, true
}

func (e *Engine) TxGetID(kind ffi.TxKind, tx ffi.Token, st *ffi.Status) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, _ := e.record("TxGetID", kind, tx, st)
	return r.id
}

func (e *Engine) TxGetSourcePublicKey(kind ffi.TxKind, tx ffi.Token, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.record("TxGetSourcePublicKey", kind, tx, st)
	if !ok {
		return ffi.Null
	}
	return e.alloc(kindPublicKey, clone(r.source))
}

func (e *Engine) TxGetDestinationPublicKey(kind ffi.TxKind, tx ffi.Token, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.record("TxGetDestinationPublicKey", kind, tx, st)
	if !ok {
		return ffi.Null
	}
	return e.alloc(kindPublicKey, clone(r.destination))
}

func (e *Engine) TxGetAmount(kind ffi.TxKind, tx ffi.Token, st *ffi.Status) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, _ := e.record("TxGetAmount", kind, tx, st)
	return r.amount
}

func (e *Engine) TxGetFee(kind ffi.TxKind, tx ffi.Token, st *ffi.Status) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, _ := e.record("TxGetFee", kind, tx, st)
	return r.fee
}

func (e *Engine) TxGetTimestamp(kind ffi.TxKind, tx ffi.Token, st *ffi.Status) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, _ := e.record("TxGetTimestamp", kind, tx, st)
	return r.timestamp
}

func (e *Engine) TxGetMessage(kind ffi.TxKind, tx ffi.Token, st *ffi.Status) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, _ := e.record("TxGetMessage", kind, tx, st)
	return r.message
}

func (e *Engine) TxGetStatus(kind ffi.TxKind, tx ffi.Token, st *ffi.Status) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.record("TxGetStatus", kind, tx, st)
	if !ok {
		return StatusTxNullError
	}
	return r.status
}

func (e *Engine) TxDestroy(kind ffi.TxKind, tx ffi.Token) {
	e.free("TxDestroy", tx, kindTx)
}

func (e *Engine) TxsGetLength(kind ffi.TxKind, txs ffi.Token, st *ffi.Status) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("TxsGetLength", st) {
		return 0
	}

	v, ok := e.lookup(txs, kindTxs, st)
	if !ok {
		return 0
	}
	return uint32(len(v.(txList).txs))
}

func (e *Engine) TxsGetAt(kind ffi.TxKind, txs ffi.Token, index uint32, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("TxsGetAt", st) {
		return ffi.Null
	}

	v, ok := e.lookup(txs, kindTxs, st)
	if !ok {
		return ffi.Null
	}

	l := v.(txList)
	if l.kind != kind {
		st.Code = CodeWrongType
		return ffi.Null
	}
	if int(index) >= len(l.txs) {
		st.Code = CodeIndexOutOfBounds
		return ffi.Null
	}
	return e.alloc(kindTx, txRecord{kind: kind, tx: l.txs[index]})
}

func (e *Engine) TxsDestroy(kind ffi.TxKind, txs ffi.Token) {
	e.free("TxsDestroy", txs, kindTxs)
}
