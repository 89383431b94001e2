package app

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	nlogger "github.com/neutron-org/neutron-logger"
	"go.uber.org/zap"

	"github.com/neutron-org/cross-chain-query-relayer/internal/config"
	"github.com/neutron-org/cross-chain-query-relayer/internal/registry"
	"github.com/neutron-org/cross-chain-query-relayer/internal/storage"
	"github.com/neutron-org/cross-chain-query-relayer/internal/subscriber"
	"github.com/neutron-org/cross-chain-query-relayer/internal/worker"
)

var (
	Version = ""
	Commit  = ""
)

const (
	AppContext                   = "app"
	SubscriberContext            = "subscriber"
	WorkerContext                = "worker"
	DispatcherContext            = "dispatcher"
	QueryingChainProviderContext = "querying_chain_provider"
	QueriedChainProviderContext  = "queried_chain_provider"
)

// retries configuration for fetching chain info
var (
	rtyAtt = retry.Attempts(uint(5))
	rtyDel = retry.Delay(time.Second * 10)
	rtyErr = retry.LastErrorOnly(true)
)

// NewDefaultSubscriber returns a subscriber on the querying chain's events for the queries
// addressed to queriedChainID.
func NewDefaultSubscriber(cfg config.CrossChainQueryRelayerConfig, logRegistry *nlogger.Registry, queriedChainID string) (*subscriber.Subscriber, error) {
	rpcClient, err := subscriber.NewRPCClient(cfg.QueryingChain.RPCAddr, cfg.QueryingChain.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create NewRPCClient: %w", err)
	}

	s, err := subscriber.NewSubscriber(
		&subscriber.Config{
			ConnectionID:   cfg.QueryingChain.ConnectionID,
			QueriedChainID: queriedChainID,
			Registry:       registry.New(&cfg.Registry),
		},
		rpcClient,
		logRegistry.Get(SubscriberContext),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create a NewSubscriber: %w", err)
	}

	return s, nil
}

// NewDefaultWorker returns a worker relaying the commands read from cmds.
func NewDefaultWorker(
	cfg config.CrossChainQueryRelayerConfig,
	logRegistry *nlogger.Registry,
	storage storage.Storage,
	deps *DependencyContainer,
	cmds <-chan worker.Command,
) *worker.Worker {
	return worker.NewWorker(
		worker.Config{
			ConnectionID:     cfg.QueryingChain.ConnectionID,
			ResultMsgTypeURL: cfg.ResultMsgTypeURL,
			PollInterval:     cfg.PollInterval,
		},
		deps.GetQueryingChain(),
		deps.GetQueriedChain(),
		deps.GetClientFinder(),
		storage,
		cmds,
		logRegistry.Get(WorkerContext),
	)
}

func NewDefaultStorage(cfg config.CrossChainQueryRelayerConfig, logger *zap.Logger) (storage.Storage, error) {
	leveldbStorage, err := storage.NewLevelDBStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create NewLevelDBStorage: %w", err)
	}

	logger.Info("dropped responses storage opened", zap.String("path", cfg.StoragePath))
	return leveldbStorage, nil
}

type chainIDs struct {
	querying string
	queried  string
}

// loadChainIDs asks both nodes which networks they run.
func loadChainIDs(ctx context.Context, queryingClient, queriedClient subscriber.RpcHttpClient, logger *zap.Logger) (*chainIDs, error) {
	var ids chainIDs
	if err := retry.Do(func() error {
		queryingStatus, err := queryingClient.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch querying chain status: %w", err)
		}

		queriedStatus, err := queriedClient.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch queried chain status: %w", err)
		}

		ids = chainIDs{
			querying: queryingStatus.NodeInfo.Network,
			queried:  queriedStatus.NodeInfo.Network,
		}
		if ids.querying == "" || ids.queried == "" {
			return fmt.Errorf("empty chain id")
		}

		return nil
	}, retry.Context(ctx), rtyAtt, rtyDel, rtyErr, retry.OnRetry(func(n uint, err error) {
		logger.Info("failed to load chain ids", zap.Uint("attempt", n), zap.Error(err))
	})); err != nil {
		return nil, err
	}

	logger.Info("loaded chain ids",
		zap.String("querying_chain_id", ids.querying),
		zap.String("queried_chain_id", ids.queried))

	return &ids, nil
}
