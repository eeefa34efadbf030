// Package config loads walletd settings from the environment.
//
// Every variable is prefixed with WALLETD_, e.g. WALLETD_DATASTORE_PATH.
package config

import (
	"time"

	"github.com/gabapcia/walletcore/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

const prefix = "WALLETD"

type Wallet struct {
	DatastorePath    string        `envconfig:"DATASTORE_PATH" default:"./data" validate:"required"`
	DatabaseName     string        `envconfig:"DATABASE_NAME" default:"walletcore" validate:"required"`
	LogFile          string        `envconfig:"LOG_FILE" default:"./data/wallet.log" validate:"required"`
	PublicAddress    string        `envconfig:"PUBLIC_ADDRESS" default:"/ip4/127.0.0.1/tcp/18189" validate:"required"`
	Transport        string        `envconfig:"TRANSPORT" default:"tor" validate:"oneof=memory tcp tor"`
	DiscoveryTimeout time.Duration `envconfig:"DISCOVERY_TIMEOUT" default:"30s" validate:"gte=0"`
	PrivateKeyHex    string        `envconfig:"PRIVATE_KEY" validate:"omitempty,keyhex"`
	MinimumFee       int64         `envconfig:"MIN_FEE" default:"100" validate:"gte=0"`
	BaseNodeKey      string        `envconfig:"BASE_NODE_PUBLIC_KEY" validate:"omitempty,keyhex"`
	BaseNodeAddress  string        `envconfig:"BASE_NODE_ADDRESS" validate:"required_with=BaseNodeKey"`
}

type Sync struct {
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"40s" validate:"gt=0"`
	MinDisplay time.Duration `envconfig:"MIN_DISPLAY" default:"3s" validate:"gte=0"`
	Interval   time.Duration `envconfig:"INTERVAL" default:"5m" validate:"gt=0"`
	MaxRetries int           `envconfig:"MAX_RETRIES" default:"3" validate:"gte=1"`
}

type Connectivity struct {
	ProbeURL      string        `envconfig:"PROBE_URL" default:"https://clients3.google.com/generate_204" validate:"required,url"`
	ProbeInterval time.Duration `envconfig:"PROBE_INTERVAL" default:"10s" validate:"gt=0"`
}

type Redis struct {
	Addr      string `envconfig:"ADDR"`
	Username  string `envconfig:"USERNAME"`
	Password  string `envconfig:"PASSWORD"`
	DB        int    `envconfig:"DB" default:"0" validate:"gte=0"`
	KeyPrefix string `envconfig:"KEY_PREFIX" default:"walletcore"`
}

type Config struct {
	LogLevel     string       `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Telemetry    bool         `envconfig:"TELEMETRY" default:"false"`
	ServiceName  string       `envconfig:"SERVICE_NAME" default:"walletd" validate:"required"`
	Wallet       Wallet       `envconfig:"WALLET"`
	Sync         Sync         `envconfig:"SYNC"`
	Connectivity Connectivity `envconfig:"CONNECTIVITY"`
	Redis        Redis        `envconfig:"REDIS"`
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
