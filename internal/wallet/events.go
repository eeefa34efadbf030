package wallet

// Events published on the bus by the callback dispatcher and the bridge.
type (
	// TxReceived is a new pending inbound transaction.
	TxReceived struct{ Tx Tx }

	// TxReplyReceived is a recipient answer to an outbound transaction.
	TxReplyReceived struct{ Tx Tx }

	// TxFinalized is a completed inbound transaction.
	TxFinalized struct{ Tx Tx }

	// TxBroadcast is a completed transaction sent to the network.
	TxBroadcast struct{ Tx Tx }

	// TxMined is a transaction included in a block.
	TxMined struct{ Tx Tx }

	// TxCancelled is a cancelled transaction.
	TxCancelled struct{ Tx Tx }

	// DirectSendResult reports the outcome of a direct peer send.
	DirectSendResult struct {
		TxID    ID
		Success bool
	}

	// StoreAndForwardSendResult reports the outcome of a store and forward send.
	StoreAndForwardSendResult struct {
		TxID    ID
		Success bool
	}

	// BaseNodeSyncComplete reports the outcome of one sync request.
	BaseNodeSyncComplete struct {
		RequestID ID
		Success   bool
	}

	// ContactAddedOrUpdated is published after a contact was stored.
	ContactAddedOrUpdated struct{ Contact Contact }
)
