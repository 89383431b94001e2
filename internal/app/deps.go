package app

import (
	"context"
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	nlogger "github.com/neutron-org/neutron-logger"

	"github.com/neutron-org/cross-chain-query-relayer/internal/chain"
	"github.com/neutron-org/cross-chain-query-relayer/internal/config"
	"github.com/neutron-org/cross-chain-query-relayer/internal/dispatcher"
	"github.com/neutron-org/cross-chain-query-relayer/internal/subscriber"
)

type DependencyContainer struct {
	queryingChain *chain.QueryingChain
	queriedChain  *chain.QueriedChain
	clientFinder  *chain.ClientFinder
}

func NewDefaultDependencyContainer(ctx context.Context,
	cfg config.CrossChainQueryRelayerConfig,
	logRegistry *nlogger.Registry) (*DependencyContainer, error) {
	queryingClient, err := subscriber.NewRPCClient(cfg.QueryingChain.RPCAddr, cfg.QueryingChain.Timeout)
	if err != nil {
		return nil, fmt.Errorf("could not initialize querying chain rpc client: %w", err)
	}

	queriedClient, err := subscriber.NewRPCClient(cfg.QueriedChain.RPCAddr, cfg.QueriedChain.Timeout)
	if err != nil {
		return nil, fmt.Errorf("could not initialize queried chain rpc client: %w", err)
	}

	ids, err := loadChainIDs(ctx, queryingClient, queriedClient, logRegistry.Get(AppContext))
	if err != nil {
		return nil, fmt.Errorf("cannot load chain ids: %w", err)
	}

	queryingProvider, err := chain.NewChain(ctx, logRegistry.Get(QueryingChainProviderContext), chain.ProviderConfig{
		ChainID:        ids.querying,
		RPCAddr:        cfg.QueryingChain.RPCAddr,
		AccountPrefix:  cfg.QueryingChain.ChainPrefix,
		Timeout:        cfg.QueryingChain.Timeout,
		Debug:          cfg.QueryingChain.Debug,
		HomeDir:        cfg.QueryingChain.HomeDir,
		KeyName:        cfg.QueryingChain.SignKeyName,
		KeyringBackend: cfg.QueryingChain.KeyringBackend,
		KeySeed:        cfg.QueryingChain.SignKeySeed,
		GasPrices:      cfg.QueryingChain.GasPrices,
		GasAdjustment:  cfg.QueryingChain.GasAdjustment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load querying chain: %w", err)
	}

	// the queried chain is only read from, its provider never signs
	queriedProvider, err := chain.NewChain(ctx, logRegistry.Get(QueriedChainProviderContext), chain.ProviderConfig{
		ChainID:        ids.queried,
		RPCAddr:        cfg.QueriedChain.RPCAddr,
		AccountPrefix:  cfg.QueriedChain.ChainPrefix,
		Timeout:        cfg.QueriedChain.Timeout,
		Debug:          cfg.QueriedChain.Debug,
		HomeDir:        cfg.QueryingChain.HomeDir,
		KeyringBackend: keyring.BackendTest,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load queried chain: %w", err)
	}

	restDispatcher, err := dispatcher.NewRESTDispatcher(cfg.QueriedChain.RESTAddr, cfg.QueriedChain.Timeout, logRegistry.Get(DispatcherContext))
	if err != nil {
		return nil, fmt.Errorf("cannot create rest dispatcher: %w", err)
	}

	return &DependencyContainer{
		queryingChain: chain.NewQueryingChain(queryingProvider.ChainProvider, logRegistry.Get(QueryingChainProviderContext)),
		queriedChain:  chain.NewQueriedChain(ids.queried, restDispatcher),
		clientFinder: chain.NewClientFinder(
			[]chain.ClientHost{queryingProvider.ChainProvider},
			[]chain.HeaderSource{queriedProvider.ChainProvider},
			cfg.TargetHeightWait,
			logRegistry.Get(AppContext),
		),
	}, nil
}

func (c DependencyContainer) GetQueryingChain() *chain.QueryingChain {
	return c.queryingChain
}

func (c DependencyContainer) GetQueriedChain() *chain.QueriedChain {
	return c.queriedChain
}

func (c DependencyContainer) GetClientFinder() *chain.ClientFinder {
	return c.clientFinder
}
