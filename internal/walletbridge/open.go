package walletbridge

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/gabapcia/walletcore/internal/ffi"
	"github.com/gabapcia/walletcore/internal/pkg/validator"
	"github.com/gabapcia/walletcore/internal/wallet"
)

// OpenParams describe a wallet whose comms config is built and owned by the
// bridge.
type OpenParams struct {
	DatastorePath    string            `validate:"required"`
	DatabaseName     string            // checked before validation, see Open
	LogPath          string            `validate:"required"`
	PublicAddress    string            `validate:"required"`
	Transport        ffi.TransportType `validate:"gte=0,lte=2"`
	DiscoveryTimeout time.Duration     `validate:"gte=0"`
	PrivateKeyHex    string            `validate:"omitempty,keyhex"`
}

// Open validates p, checks the datastore directory and the log location,
// builds a comms config and hands it to New. The config is destroyed by
// Close. Without PrivateKeyHex a fresh identity is generated.
func Open(ctx context.Context, engine ffi.Engine, p OpenParams, newCallbacks CallbacksFactory, opts ...Option) (*Bridge, error) {
	if p.DatabaseName == "" {
		return nil, wallet.ErrEmptyDatabaseName
	}

	if err := validator.Validate(p); err != nil {
		return nil, errors.Join(wallet.ErrInvalidArgument, err)
	}

	if err := ffi.CheckWritableDir(p.DatastorePath); err != nil {
		return nil, err
	}

	if err := ffi.CheckWritableDir(filepath.Dir(p.LogPath)); err != nil {
		return nil, err
	}

	cfg, err := buildCommsConfig(engine, p)
	if err != nil {
		return nil, err
	}

	b, err := New(ctx, engine, cfg, p.LogPath, newCallbacks, opts...)
	if err != nil {
		cfg.Destroy()
		return nil, err
	}

	b.mu.Lock()
	b.ownedConfig = cfg
	b.mu.Unlock()

	return b, nil
}

func buildCommsConfig(engine ffi.Engine, p OpenParams) (*ffi.CommsConfig, error) {
	var (
		key *ffi.PrivateKey
		err error
	)
	if p.PrivateKeyHex != "" {
		key, err = ffi.PrivateKeyFromHex(engine, p.PrivateKeyHex)
	} else {
		key, err = ffi.GeneratePrivateKey(engine)
	}
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	cfg, err := ffi.NewCommsConfig(engine, ffi.CommsConfigParams{
		PublicAddress:       p.PublicAddress,
		Transport:           p.Transport,
		DatabaseName:        p.DatabaseName,
		DatastorePath:       p.DatastorePath,
		DiscoveryTimeoutSec: uint64(p.DiscoveryTimeout / time.Second),
	})
	if err != nil {
		return nil, err
	}

	if err := cfg.SetPrivateKey(key); err != nil {
		cfg.Destroy()
		return nil, err
	}

	return cfg, nil
}
