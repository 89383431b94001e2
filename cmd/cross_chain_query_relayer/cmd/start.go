package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	nlogger "github.com/neutron-org/neutron-logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neutron-org/cross-chain-query-relayer/internal/app"
	"github.com/neutron-org/cross-chain-query-relayer/internal/config"
	"github.com/neutron-org/cross-chain-query-relayer/internal/storage"
	"github.com/neutron-org/cross-chain-query-relayer/internal/webserver"
	"github.com/neutron-org/cross-chain-query-relayer/internal/worker"
)

const (
	mainContext = "main"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the query relayer main app",
	Run: func(cmd *cobra.Command, args []string) {
		startRelayer()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func startRelayer() {
	logRegistry, err := nlogger.NewRegistry(
		mainContext,
		app.AppContext,
		app.SubscriberContext,
		app.WorkerContext,
		app.DispatcherContext,
		app.QueryingChainProviderContext,
		app.QueriedChainProviderContext,
		webserver.ServerContext,
	)
	if err != nil {
		log.Fatalf("couldn't initialize loggers registry: %s", err)
	}
	logger := logRegistry.Get(mainContext)
	logger.Info("cross-chain-query-relayer starts...")

	cfg, err := config.NewCrossChainQueryRelayerConfig()
	if err != nil {
		logger.Fatal("cannot initialize relayer config", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	// The storage has to be shared because of the LevelDB single process restriction.
	store, err := app.NewDefaultStorage(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create NewDefaultStorage", zap.Error(err))
	}
	defer func(store storage.Storage) {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", zap.Error(err))
		}
	}(store)

	wg.Add(1)
	go func() {
		defer wg.Done()

		err := webserver.Run(ctx, logRegistry, store, cfg.WebserverPort)
		if err != nil {
			logger.Error("WebServer exited with an error", zap.Error(err))
			cancel()
		}
	}()

	deps, err := app.NewDefaultDependencyContainer(ctx, cfg, logRegistry)
	if err != nil {
		logger.Fatal("failed to initialize dependency container", zap.Error(err))
	}

	subscriber, err := app.NewDefaultSubscriber(cfg, logRegistry, deps.GetQueriedChain().ChainID())
	if err != nil {
		logger.Fatal("failed to get NewDefaultSubscriber", zap.Error(err))
	}

	cmds := make(chan worker.Command, cfg.CommandQueueCapacity)

	wg.Add(1)
	go func() {
		defer wg.Done()

		// The subscriber writes to the command queue.
		if err := subscriber.Subscribe(ctx, cmds); err != nil {
			logger.Error("Subscriber exited with an error", zap.Error(err))
			cancel()
		}
	}()

	// The worker reads from the command queue.
	w := app.NewDefaultWorker(cfg, logRegistry, store, deps, cmds)
	handle := w.Spawn(ctx)

	wg.Add(1)
	go func() {
		defer wg.Done()

		if err := handle.Wait(); err != nil {
			logger.Error("Worker stopped with a fatal error", zap.String("worker", handle.Name()), zap.Error(err))
		}
		cancel()
	}()

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		select {
		case s := <-sigs:
			logger.Info("Received termination signal, gracefully shutting down...",
				zap.String("signal", s.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	wg.Wait()
}
