package ffi

// Wallet is the owned engine wallet instance.
type Wallet struct {
	handle
	api Engine
}

// CreateWallet calls the foreign wallet constructor. cb is registered with
// the engine before the call returns, so it may fire as soon as the wallet
// exists. commsConfig stays owned by the caller.
func CreateWallet(api Engine, commsConfig *CommsConfig, logPath string, cb Callbacks) (*Wallet, error) {
	ct, err := commsConfig.acquire()
	if err != nil {
		return nil, err
	}

	token, err := call("wallet_create", func(st *Status) Token {
		return api.WalletCreate(ct, logPath, cb, st)
	})
	if err != nil {
		return nil, err
	}

	return &Wallet{handle: newHandle("wallet", token, api.WalletDestroy), api: api}, nil
}

// Engine exposes the foreign surface the wallet was created on.
func (w *Wallet) Engine() Engine {
	return w.api
}

func walletScalar[T any](w *Wallet, op string, fn func(wallet Token, st *Status) T) (T, error) {
	t, err := w.acquire()
	if err != nil {
		var zero T
		return zero, err
	}

	return call(op, func(st *Status) T {
		return fn(t, st)
	})
}

// PublicKey returns an owned copy of the wallet identity key.
func (w *Wallet) PublicKey() (*PublicKey, error) {
	token, err := walletScalar(w, "wallet_get_public_key", w.api.WalletGetPublicKey)
	if err != nil {
		return nil, err
	}

	return WrapPublicKey(w.api, token), nil
}

// AvailableBalance returns the spendable balance.
func (w *Wallet) AvailableBalance() (uint64, error) {
	return walletScalar(w, "wallet_get_available_balance", w.api.WalletGetAvailableBalance)
}

// PendingIncomingBalance returns the balance of unconfirmed inbound txs.
func (w *Wallet) PendingIncomingBalance() (uint64, error) {
	return walletScalar(w, "wallet_get_pending_incoming_balance", w.api.WalletGetPendingIncomingBalance)
}

// PendingOutgoingBalance returns the balance of unconfirmed outbound txs.
func (w *Wallet) PendingOutgoingBalance() (uint64, error) {
	return walletScalar(w, "wallet_get_pending_outgoing_balance", w.api.WalletGetPendingOutgoingBalance)
}

// Contacts returns an owned contact collection.
func (w *Wallet) Contacts() (*Contacts, error) {
	token, err := walletScalar(w, "wallet_get_contacts", w.api.WalletGetContacts)
	if err != nil {
		return nil, err
	}

	return WrapContacts(w.api, token), nil
}

// AddUpdateContact stores contact. contact stays owned by the caller.
func (w *Wallet) AddUpdateContact(contact *Contact) (bool, error) {
	ct, err := contact.acquire()
	if err != nil {
		return false, err
	}

	return walletScalar(w, "wallet_add_update_contact", func(t Token, st *Status) bool {
		return w.api.WalletAddUpdateContact(t, ct, st)
	})
}

// RemoveContact deletes contact. contact stays owned by the caller.
func (w *Wallet) RemoveContact(contact *Contact) (bool, error) {
	ct, err := contact.acquire()
	if err != nil {
		return false, err
	}

	return walletScalar(w, "wallet_remove_contact", func(t Token, st *Status) bool {
		return w.api.WalletRemoveContact(t, ct, st)
	})
}

// Txs returns an owned collection of the given kind.
func (w *Wallet) Txs(kind TxKind) (*TxList, error) {
	token, err := walletScalar(w, "wallet_get_txs", func(t Token, st *Status) Token {
		return w.api.WalletGetTxs(t, kind, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapTxList(w.api, kind, token), nil
}

// CancelledTxs returns an owned collection of cancelled completed txs.
func (w *Wallet) CancelledTxs() (*TxList, error) {
	token, err := walletScalar(w, "wallet_get_cancelled_txs", w.api.WalletGetCancelledTxs)
	if err != nil {
		return nil, err
	}

	return WrapTxList(w.api, TxKindCompleted, token), nil
}

// TxByID returns an owned record of the given kind.
func (w *Wallet) TxByID(kind TxKind, id uint64) (*TxRecord, error) {
	token, err := walletScalar(w, "wallet_get_tx_by_id", func(t Token, st *Status) Token {
		return w.api.WalletGetTxByID(t, kind, id, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapTxRecord(w.api, kind, token), nil
}

// CancelledTxByID returns an owned cancelled completed record.
func (w *Wallet) CancelledTxByID(id uint64) (*TxRecord, error) {
	token, err := walletScalar(w, "wallet_get_cancelled_tx_by_id", func(t Token, st *Status) Token {
		return w.api.WalletGetCancelledTxByID(t, id, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapTxRecord(w.api, TxKindCompleted, token), nil
}

// CancelPendingTx cancels a pending tx by id.
func (w *Wallet) CancelPendingTx(id uint64) (bool, error) {
	return walletScalar(w, "wallet_cancel_pending_tx", func(t Token, st *Status) bool {
		return w.api.WalletCancelPendingTx(t, id, st)
	})
}

// IsCompletedTxOutbound asks the engine whether the wallet sent tx.
func (w *Wallet) IsCompletedTxOutbound(tx *TxRecord) (bool, error) {
	tt, err := tx.acquire()
	if err != nil {
		return false, err
	}

	return walletScalar(w, "wallet_is_completed_tx_outbound", func(t Token, st *Status) bool {
		return w.api.WalletIsCompletedTxOutbound(t, tt, st)
	})
}

// SendTx submits a transaction and returns its id.
func (w *Wallet) SendTx(destination *PublicKey, amount, fee uint64, message string) (uint64, error) {
	dt, err := destination.acquire()
	if err != nil {
		return 0, err
	}

	return walletScalar(w, "wallet_send_tx", func(t Token, st *Status) uint64 {
		return w.api.WalletSendTx(t, dt, amount, fee, message, st)
	})
}

// SignMessage signs message with the wallet key.
func (w *Wallet) SignMessage(message string) (string, error) {
	return walletScalar(w, "wallet_sign_message", func(t Token, st *Status) string {
		return w.api.WalletSignMessage(t, message, st)
	})
}

// VerifyMessageSignature checks signature of message against publicKey.
func (w *Wallet) VerifyMessageSignature(publicKey *PublicKey, message, signature string) (bool, error) {
	pt, err := publicKey.acquire()
	if err != nil {
		return false, err
	}

	return walletScalar(w, "wallet_verify_message_signature", func(t Token, st *Status) bool {
		return w.api.WalletVerifyMessageSignature(t, pt, message, signature, st)
	})
}

// ImportUTXO imports an output and returns the id of the resulting tx.
func (w *Wallet) ImportUTXO(amount uint64, spendingKey *PrivateKey, sourcePublicKey *PublicKey, message string) (uint64, error) {
	kt, err := spendingKey.acquire()
	if err != nil {
		return 0, err
	}

	pt, err := sourcePublicKey.acquire()
	if err != nil {
		return 0, err
	}

	return walletScalar(w, "wallet_import_utxo", func(t Token, st *Status) uint64 {
		return w.api.WalletImportUTXO(t, amount, kt, pt, message, st)
	})
}

// AddBaseNodePeer registers the base node the wallet syncs against.
func (w *Wallet) AddBaseNodePeer(publicKey *PublicKey, address string) (bool, error) {
	pt, err := publicKey.acquire()
	if err != nil {
		return false, err
	}

	return walletScalar(w, "wallet_add_base_node_peer", func(t Token, st *Status) bool {
		return w.api.WalletAddBaseNodePeer(t, pt, address, st)
	})
}

// SyncWithBaseNode issues one sync request and returns its correlation id.
func (w *Wallet) SyncWithBaseNode() (uint64, error) {
	return walletScalar(w, "wallet_sync_with_base_node", w.api.WalletSyncWithBaseNode)
}

// TorIdentity returns an owned byte vector with the onion service identity.
func (w *Wallet) TorIdentity() (*ByteVector, error) {
	token, err := walletScalar(w, "wallet_get_tor_identity", w.api.WalletGetTorIdentity)
	if err != nil {
		return nil, err
	}

	return WrapByteVector(w.api, token), nil
}

// Destroy frees the wallet once. Safe on nil.
func (w *Wallet) Destroy() {
	if w != nil {
		w.handle.Destroy()
	}
}
