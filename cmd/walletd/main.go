package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/walletcore/internal/connectivity"
	"github.com/gabapcia/walletcore/internal/daemon"
	"github.com/gabapcia/walletcore/internal/eventbus"
	"github.com/gabapcia/walletcore/internal/ffi"
	"github.com/gabapcia/walletcore/internal/handlers/cli"
	"github.com/gabapcia/walletcore/internal/infra/engine/memory"
	"github.com/gabapcia/walletcore/internal/infra/storage/redis"
	"github.com/gabapcia/walletcore/internal/pkg/config"
	"github.com/gabapcia/walletcore/internal/pkg/logger"
	"github.com/gabapcia/walletcore/internal/pkg/telemetry"
	"github.com/gabapcia/walletcore/internal/pkg/x/looper"
	"github.com/gabapcia/walletcore/internal/syncctl"
	"github.com/gabapcia/walletcore/internal/txarchive"
	"github.com/gabapcia/walletcore/internal/txdispatch"
	"github.com/gabapcia/walletcore/internal/wallet"
	"github.com/gabapcia/walletcore/internal/walletbridge"
)

var transports = map[string]ffi.TransportType{
	"memory": ffi.TransportMemory,
	"tcp":    ffi.TransportTCP,
	"tor":    ffi.TransportTor,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Telemetry {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithFile(cfg.Wallet.LogFile, 10, 3)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var store txarchive.Store = txarchive.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		rc, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.KeyPrefix)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rc.Close()
		store = rc
	}

	loop := looper.New()
	if err := loop.Start(ctx); err != nil {
		return err
	}
	defer loop.Close()

	bus := eventbus.New()
	// The probe goroutine sets network state, so its events go through the
	// loop like every other bus event.
	monitor := connectivity.NewMonitor(txdispatch.OnLoop(loop, bus))

	archive, err := txarchive.New(bus, store)
	if err != nil {
		return err
	}
	if err := archive.Start(ctx); err != nil {
		return err
	}
	defer archive.Close()

	// The in-process engine manages its own transport, so its proxy is
	// always ready.
	engine := memory.New()
	monitor.SetProxyState(connectivity.ProxyState{Running: true, BootstrapProgress: connectivity.MaxBootstrapProgress})

	bridge, err := walletbridge.Open(ctx, engine, walletbridge.OpenParams{
		DatastorePath:    cfg.Wallet.DatastorePath,
		DatabaseName:     cfg.Wallet.DatabaseName,
		LogPath:          cfg.Wallet.LogFile,
		PublicAddress:    cfg.Wallet.PublicAddress,
		Transport:        transports[cfg.Wallet.Transport],
		DiscoveryTimeout: cfg.Wallet.DiscoveryTimeout,
		PrivateKeyHex:    cfg.Wallet.PrivateKeyHex,
	},
		txdispatch.Factory(ctx, loop, bus),
		walletbridge.WithMinimumFee(wallet.MicroTari(cfg.Wallet.MinimumFee)),
		walletbridge.WithPublisher(txdispatch.OnLoop(loop, bus)),
	)
	if err != nil {
		return err
	}
	defer bridge.Close()

	baseNodeKey, baseNodeAddress := cfg.Wallet.BaseNodeKey, cfg.Wallet.BaseNodeAddress
	if baseNodeKey == "" {
		// Without a configured peer the in-process engine syncs against a
		// local one.
		baseNodeKey, baseNodeAddress = memory.RandomPublicKeyHex(), "/memory/base_node"
	}
	if err := bridge.AddBaseNodePeer(ctx, baseNodeKey, baseNodeAddress); err != nil {
		return err
	}

	opts := []daemon.Option{
		daemon.WithInterval(cfg.Sync.Interval),
		daemon.WithSyncOptions(
			syncctl.WithTimeout(cfg.Sync.Timeout),
			syncctl.WithMinDisplay(cfg.Sync.MinDisplay),
			syncctl.WithMaxRetries(cfg.Sync.MaxRetries),
		),
	}
	if cfg.Wallet.Transport == "memory" {
		monitor.SetNetworkState(connectivity.NetworkConnected)
	} else {
		probe := connectivity.NewProbe(cfg.Connectivity.ProbeURL, monitor,
			connectivity.WithInterval(cfg.Connectivity.ProbeInterval))
		opts = append(opts, daemon.WithProbe(probe))
	}

	d := daemon.New(ctx, loop, bus, monitor, bridge, opts...)
	defer d.Destroy()

	return cli.Run(ctx, cli.Deps{
		Wallet:    bridge,
		Syncer:    d,
		Daemon:    d,
		History:   archive,
		Simulator: engine,
	})
}
