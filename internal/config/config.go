package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/neutron-org/cross-chain-query-relayer/internal/icq"
	"github.com/neutron-org/cross-chain-query-relayer/internal/registry"
)

const EnvPrefix string = "RELAYER"

// CrossChainQueryRelayerConfig describes configuration of the app
type CrossChainQueryRelayerConfig struct {
	QueryingChain QueryingChainConfig     `split_words:"true"`
	QueriedChain  QueriedChainConfig      `split_words:"true"`
	Registry      registry.RegistryConfig `split_words:"true"`

	PollInterval         time.Duration `split_words:"true" default:"1s"`
	CommandQueueCapacity int           `split_words:"true" default:"1000"`
	ResultMsgTypeURL     string        `envconfig:"RESULT_MSG_TYPE_URL"`
	StoragePath          string        `split_words:"true" default:"storage/leveldb"`
	WebserverPort        int           `split_words:"true" default:"9999"`
	TargetHeightWait     time.Duration `split_words:"true" default:"30s"`
}

// QueryingChainConfig is the chain emitting cross-chain queries and receiving their results.
type QueryingChainConfig struct {
	RPCAddr        string        `envconfig:"RPC_ADDR" required:"true"`
	Timeout        time.Duration `split_words:"true" default:"10s"`
	ConnectionID   string        `envconfig:"CONNECTION_ID" required:"true"`
	HomeDir        string        `split_words:"true" required:"true"`
	SignKeyName    string        `split_words:"true" required:"true"`
	SignKeySeed    string        `split_words:"true"`
	KeyringBackend string        `split_words:"true" default:"test"`
	ChainPrefix    string        `split_words:"true" required:"true"`
	GasPrices      string        `split_words:"true" required:"true"`
	GasAdjustment  float64       `split_words:"true" default:"1.5"`
	Debug          bool          `split_words:"true"`
}

// QueriedChainConfig is the chain whose state the queries read.
type QueriedChainConfig struct {
	RPCAddr     string        `envconfig:"RPC_ADDR" required:"true"`
	RESTAddr    string        `envconfig:"REST_ADDR" required:"true"`
	Timeout     time.Duration `split_words:"true" default:"10s"`
	ChainPrefix string        `split_words:"true" required:"true"`
	Debug       bool          `split_words:"true"`
}

func NewCrossChainQueryRelayerConfig() (CrossChainQueryRelayerConfig, error) {
	var cfg CrossChainQueryRelayerConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to init config: %w", err)
	}

	if cfg.ResultMsgTypeURL == "" {
		cfg.ResultMsgTypeURL = icq.DefaultResultMsgTypeURL
	}
	if cfg.CommandQueueCapacity <= 0 {
		return cfg, fmt.Errorf("command queue capacity must be positive, got %d", cfg.CommandQueueCapacity)
	}

	return cfg, nil
}
