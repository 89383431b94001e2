package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/relayer/v2/relayer"
	"github.com/cosmos/relayer/v2/relayer/provider"
	"github.com/cosmos/relayer/v2/relayer/chains/cosmos"
	"go.uber.org/zap"
)

const (
	outputFormat = "json"
	signMode     = "direct"
)

// ProviderConfig describes how to reach and sign for a chain.
type ProviderConfig struct {
	ChainID       string
	RPCAddr       string
	AccountPrefix string
	Timeout       time.Duration
	Debug         bool

	HomeDir        string
	KeyName        string
	KeyringBackend string
	// KeySeed is the mnemonic of KeyName. Only used with the memory keyring backend.
	KeySeed       string
	GasPrices     string
	GasAdjustment float64
}

// NewChain builds and initializes a cosmos chain provider for cfg.
func NewChain(ctx context.Context, logger *zap.Logger, cfg ProviderConfig) (*relayer.Chain, error) {
	pcfg := cosmos.CosmosProviderConfig{
		KeyDirectory:   cfg.HomeDir,
		Key:            cfg.KeyName,
		ChainName:      cfg.ChainID,
		ChainID:        cfg.ChainID,
		RPCAddr:        cfg.RPCAddr,
		AccountPrefix:  cfg.AccountPrefix,
		KeyringBackend: cfg.KeyringBackend,
		GasAdjustment:  cfg.GasAdjustment,
		GasPrices:      cfg.GasPrices,
		Debug:          cfg.Debug,
		Timeout:        cfg.Timeout.String(),
		OutputFormat:   outputFormat,
		SignModeStr:    signMode,
		Broadcast:      provider.BroadcastModeBatch,
	}

	prov, err := pcfg.NewProvider(logger, cfg.HomeDir, cfg.Debug, cfg.ChainID)
	if err != nil {
		return nil, fmt.Errorf("failed to build ChainProvider for %s: %w", cfg.ChainID, err)
	}

	if err := prov.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to Init chain provider for %s: %w", cfg.ChainID, err)
	}

	// the memory keyring starts empty, the signing key comes from the seed
	if cfg.KeyringBackend == keyring.BackendMemory && !prov.KeyExists(cfg.KeyName) {
		if cfg.KeySeed == "" {
			return nil, fmt.Errorf("key seed is required for the %s keyring backend", keyring.BackendMemory)
		}
		if _, err := prov.RestoreKey(cfg.KeyName, cfg.KeySeed, sdk.CoinType, string(hd.Secp256k1Type)); err != nil {
			return nil, fmt.Errorf("failed to restore key %s: %w", cfg.KeyName, err)
		}
	}

	return relayer.NewChain(logger, prov, cfg.Debug), nil
}
