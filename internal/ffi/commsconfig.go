package ffi

import "github.com/gabapcia/walletcore/internal/wallet"

// CommsConfigParams are the arguments of the foreign comms config constructor.
type CommsConfigParams struct {
	PublicAddress       string
	Transport           TransportType
	DatabaseName        string
	DatastorePath       string
	DiscoveryTimeoutSec uint64
}

// CommsConfig is an owned comms configuration.
type CommsConfig struct {
	handle
	api CommsConfigAPI
}

// WrapCommsConfig takes ownership of a comms config token.
func WrapCommsConfig(api CommsConfigAPI, token Token) *CommsConfig {
	return &CommsConfig{handle: newHandle("comms config", token, api.CommsConfigDestroy), api: api}
}

// NewCommsConfig calls the foreign constructor with p. An empty database
// name fails with wallet.ErrEmptyDatabaseName and an unusable datastore path
// with wallet.ErrFilesystemUnavailable, both before the engine is reached.
func NewCommsConfig(api CommsConfigAPI, p CommsConfigParams) (*CommsConfig, error) {
	if p.DatabaseName == "" {
		return nil, wallet.ErrEmptyDatabaseName
	}
	if err := CheckWritableDir(p.DatastorePath); err != nil {
		return nil, err
	}

	token, err := call("comms_config_create", func(st *Status) Token {
		return api.CommsConfigCreate(p.PublicAddress, p.Transport, p.DatabaseName, p.DatastorePath, p.DiscoveryTimeoutSec, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapCommsConfig(api, token), nil
}

// SetPrivateKey installs the node identity key. key stays owned by the caller.
func (c *CommsConfig) SetPrivateKey(key *PrivateKey) error {
	ct, err := c.acquire()
	if err != nil {
		return err
	}

	kt, err := key.acquire()
	if err != nil {
		return err
	}

	return callNoResult("comms_config_set_private_key", func(st *Status) {
		c.api.CommsConfigSetPrivateKey(ct, kt, st)
	})
}

// Borrow returns a non-owning view of the same config.
func (c *CommsConfig) Borrow() *CommsConfig {
	return &CommsConfig{handle: c.borrow(), api: c.api}
}

// Destroy frees the config once. Safe on nil.
func (c *CommsConfig) Destroy() {
	if c != nil {
		c.handle.Destroy()
	}
}
