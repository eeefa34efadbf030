package ffi

// TransportType selects the comms transport the engine binds to.
type TransportType int32

const (
	TransportMemory TransportType = iota
	TransportTCP
	TransportTor
)

// TxKind selects which foreign transaction family a record or collection
// token belongs to. The engine keeps a distinct layout for each family.
type TxKind int32

const (
	TxKindCompleted TxKind = iota
	TxKindPendingInbound
	TxKindPendingOutbound
)

// String returns a lowercase name for logging.
func (k TxKind) String() string {
	switch k {
	case TxKindCompleted:
		return "completed"
	case TxKindPendingInbound:
		return "pending_inbound"
	case TxKindPendingOutbound:
		return "pending_outbound"
	default:
		return "unknown"
	}
}

// KeyAPI is the foreign surface for private and public keys.
type KeyAPI interface {
	PrivateKeyGenerate(st *Status) Token
	PrivateKeyFromHex(hex string, st *Status) Token
	PrivateKeyCreate(bytes Token, st *Status) Token
	PrivateKeyGetBytes(key Token, st *Status) Token
	PrivateKeyDestroy(key Token)

	PublicKeyFromHex(hex string, st *Status) Token
	PublicKeyFromPrivateKey(key Token, st *Status) Token
	PublicKeyGetBytes(key Token, st *Status) Token
	PublicKeyGetEmojiID(key Token, st *Status) string
	PublicKeyDestroy(key Token)
}

// ByteVectorAPI is the foreign surface for engine-owned byte buffers.
type ByteVectorAPI interface {
	ByteVectorCreate(data []byte, st *Status) Token
	ByteVectorGetLength(bv Token, st *Status) uint32
	ByteVectorGetAt(bv Token, index uint32, st *Status) byte
	ByteVectorDestroy(bv Token)
}

// CommsConfigAPI is the foreign surface for comms configuration.
type CommsConfigAPI interface {
	CommsConfigCreate(publicAddress string, transport TransportType, databaseName, datastorePath string, discoveryTimeoutSec uint64, st *Status) Token
	CommsConfigSetPrivateKey(cfg, key Token, st *Status)
	CommsConfigDestroy(cfg Token)
}

// ContactAPI is the foreign surface for contacts and contact collections.
type ContactAPI interface {
	ContactCreate(alias string, publicKey Token, st *Status) Token
	ContactGetAlias(contact Token, st *Status) string
	ContactGetPublicKey(contact Token, st *Status) Token
	ContactDestroy(contact Token)

	ContactsGetLength(contacts Token, st *Status) uint32
	ContactsGetAt(contacts Token, index uint32, st *Status) Token
	ContactsDestroy(contacts Token)
}

// TxAPI is the foreign surface for transaction records and collections.
// Records returned by TxsGetAt are fresh allocations and are owned by the
// caller, independently of the collection they were read from.
type TxAPI interface {
	TxGetID(kind TxKind, tx Token, st *Status) uint64
	TxGetSourcePublicKey(kind TxKind, tx Token, st *Status) Token
	TxGetDestinationPublicKey(kind TxKind, tx Token, st *Status) Token
	TxGetAmount(kind TxKind, tx Token, st *Status) uint64
	TxGetFee(kind TxKind, tx Token, st *Status) uint64
	TxGetTimestamp(kind TxKind, tx Token, st *Status) uint64
	TxGetMessage(kind TxKind, tx Token, st *Status) string
	TxGetStatus(kind TxKind, tx Token, st *Status) int32
	TxDestroy(kind TxKind, tx Token)

	TxsGetLength(kind TxKind, txs Token, st *Status) uint32
	TxsGetAt(kind TxKind, txs Token, index uint32, st *Status) Token
	TxsDestroy(kind TxKind, txs Token)
}

// WalletAPI is the foreign surface of the wallet instance itself.
type WalletAPI interface {
	// WalletCreate builds the engine wallet and registers cb as the receiver
	// of every asynchronous notification. The engine may invoke cb from any
	// of its own threads until WalletDestroy returns.
	WalletCreate(commsConfig Token, logPath string, cb Callbacks, st *Status) Token
	WalletDestroy(wallet Token)

	WalletGetPublicKey(wallet Token, st *Status) Token
	WalletGetAvailableBalance(wallet Token, st *Status) uint64
	WalletGetPendingIncomingBalance(wallet Token, st *Status) uint64
	WalletGetPendingOutgoingBalance(wallet Token, st *Status) uint64

	WalletGetContacts(wallet Token, st *Status) Token
	WalletAddUpdateContact(wallet, contact Token, st *Status) bool
	WalletRemoveContact(wallet, contact Token, st *Status) bool

	WalletGetTxs(wallet Token, kind TxKind, st *Status) Token
	WalletGetCancelledTxs(wallet Token, st *Status) Token
	WalletGetTxByID(wallet Token, kind TxKind, id uint64, st *Status) Token
	WalletGetCancelledTxByID(wallet Token, id uint64, st *Status) Token
	WalletCancelPendingTx(wallet Token, id uint64, st *Status) bool
	WalletIsCompletedTxOutbound(wallet, tx Token, st *Status) bool

	WalletSendTx(wallet, destination Token, amount, fee uint64, message string, st *Status) uint64
	WalletSignMessage(wallet Token, message string, st *Status) string
	WalletVerifyMessageSignature(wallet, publicKey Token, message, signature string, st *Status) bool
	WalletImportUTXO(wallet Token, amount uint64, spendingKey, sourcePublicKey Token, message string, st *Status) uint64
	WalletAddBaseNodePeer(wallet, publicKey Token, address string, st *Status) bool
	WalletSyncWithBaseNode(wallet Token, st *Status) uint64
	WalletGetTorIdentity(wallet Token, st *Status) Token
}

// Engine is the complete foreign-function surface of the wallet engine.
type Engine interface {
	KeyAPI
	ByteVectorAPI
	CommsConfigAPI
	ContactAPI
	TxAPI
	WalletAPI
}

// Callbacks receives the engine's asynchronous notifications.
//
// Record-bearing notifications pass a transient token that the receiver owns
// and must destroy before returning. Correlation notifications pass the id as
// a big-endian unsigned byte buffer.
type Callbacks interface {
	OnTxReceived(pendingInboundTx Token)
	OnTxReplyReceived(completedTx Token)
	OnTxFinalized(completedTx Token)
	OnTxBroadcast(completedTx Token)
	OnTxMined(completedTx Token)
	OnTxCancellation(completedTx Token)
	OnDirectSendResult(txID []byte, success bool)
	OnStoreAndForwardSendResult(txID []byte, success bool)
	OnBaseNodeSyncComplete(requestID []byte, success bool)
}
