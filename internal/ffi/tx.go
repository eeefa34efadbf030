package ffi

// TxEngine is the subset of the engine needed by transaction handles.
type TxEngine interface {
	TxAPI
	KeyEngine
}

// TxRecord is an owned transaction record of one TxKind.
type TxRecord struct {
	handle
	kind TxKind
	api  TxEngine
}

// WrapTxRecord takes ownership of a record token of the given kind.
func WrapTxRecord(api TxEngine, kind TxKind, token Token) *TxRecord {
	free := func(t Token) { api.TxDestroy(kind, t) }
	return &TxRecord{handle: newHandle(kind.String()+" tx", token, free), kind: kind, api: api}
}

// Kind returns the foreign family of the record.
func (r *TxRecord) Kind() TxKind {
	return r.kind
}

func txScalar[T any](r *TxRecord, op string, fn func(kind TxKind, tx Token, st *Status) T) (T, error) {
	t, err := r.acquire()
	if err != nil {
		var zero T
		return zero, err
	}

	return call(op, func(st *Status) T {
		return fn(r.kind, t, st)
	})
}

// ID returns the engine transaction id.
func (r *TxRecord) ID() (uint64, error) {
	return txScalar(r, "tx_get_id", r.api.TxGetID)
}

// Amount returns the amount in micro units.
func (r *TxRecord) Amount() (uint64, error) {
	return txScalar(r, "tx_get_amount", r.api.TxGetAmount)
}

// Fee returns the fee in micro units. Pending inbound records report zero.
func (r *TxRecord) Fee() (uint64, error) {
	return txScalar(r, "tx_get_fee", r.api.TxGetFee)
}

// Timestamp returns the unix timestamp in seconds.
func (r *TxRecord) Timestamp() (uint64, error) {
	return txScalar(r, "tx_get_timestamp", r.api.TxGetTimestamp)
}

// Message returns the attached note.
func (r *TxRecord) Message() (string, error) {
	return txScalar(r, "tx_get_message", r.api.TxGetMessage)
}

// Status returns the raw engine status code.
func (r *TxRecord) Status() (int32, error) {
	return txScalar(r, "tx_get_status", r.api.TxGetStatus)
}

// SourcePublicKey returns an owned copy of the sender key.
func (r *TxRecord) SourcePublicKey() (*PublicKey, error) {
	token, err := txScalar(r, "tx_get_source_public_key", r.api.TxGetSourcePublicKey)
	if err != nil {
		return nil, err
	}

	return WrapPublicKey(r.api, token), nil
}

// DestinationPublicKey returns an owned copy of the recipient key.
func (r *TxRecord) DestinationPublicKey() (*PublicKey, error) {
	token, err := txScalar(r, "tx_get_destination_public_key", r.api.TxGetDestinationPublicKey)
	if err != nil {
		return nil, err
	}

	return WrapPublicKey(r.api, token), nil
}

// Destroy frees the record once. Safe on nil.
func (r *TxRecord) Destroy() {
	if r != nil {
		r.handle.Destroy()
	}
}

// TxList is an owned collection of records of one TxKind.
type TxList struct {
	handle
	kind TxKind
	api  TxEngine
}

// WrapTxList takes ownership of a collection token of the given kind.
func WrapTxList(api TxEngine, kind TxKind, token Token) *TxList {
	free := func(t Token) { api.TxsDestroy(kind, t) }
	return &TxList{handle: newHandle(kind.String()+" txs", token, free), kind: kind, api: api}
}

// Kind returns the foreign family of the collection items.
func (l *TxList) Kind() TxKind {
	return l.kind
}

// Len returns the number of records.
func (l *TxList) Len() (uint32, error) {
	t, err := l.acquire()
	if err != nil {
		return 0, err
	}

	return call("txs_get_length", func(st *Status) uint32 {
		return l.api.TxsGetLength(l.kind, t, st)
	})
}

// At returns an owned copy of the record at index.
func (l *TxList) At(index uint32) (*TxRecord, error) {
	t, err := l.acquire()
	if err != nil {
		return nil, err
	}

	token, err := call("txs_get_at", func(st *Status) Token {
		return l.api.TxsGetAt(l.kind, t, index, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapTxRecord(l.api, l.kind, token), nil
}

// Destroy frees the collection once. Safe on nil.
func (l *TxList) Destroy() {
	if l != nil {
		l.handle.Destroy()
	}
}
