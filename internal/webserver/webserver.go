package webserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	nlogger "github.com/neutron-org/neutron-logger"
	"go.uber.org/zap"

	"github.com/neutron-org/cross-chain-query-relayer/internal/storage"
)

const (
	ServerContext            = "http"
	DroppedResponsesResource = "/dropped-responses"
	PrometheusMetrics        = "/metrics"
)

func Run(ctx context.Context, logRegistry *nlogger.Registry, storage storage.Storage, port int) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           Router(logRegistry, storage),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger := logRegistry.Get(ServerContext)
	errch := make(chan error, 1)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to serve http", zap.Error(err))
			errch <- err
		}
	}()

	select {
	case err := <-errch:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down the api http")
	webserverCtx, cancelWebserverCtx := context.WithTimeout(context.Background(), time.Second*5)
	defer cancelWebserverCtx()
	if err := server.Shutdown(webserverCtx); err != nil {
		logger.Error("failed to shutdown api http gracefully", zap.Error(err))
		return nil
	}

	logger.Info("api http shut down successfully")
	return nil
}

func Router(logRegistry *nlogger.Registry, storage storage.Storage) *mux.Router {
	logger := logRegistry.Get(ServerContext)
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc(DroppedResponsesResource, droppedResponses(logger, storage)).Methods(http.MethodGet)
	router.Handle(PrometheusMetrics, NewPromWrapper(logger, storage)).Methods(http.MethodGet)
	return router
}

func droppedResponses(logger *zap.Logger, storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := storage.GetAllDroppedResponses()
		if err != nil {
			logger.Error("failed to execute GetAllDroppedResponses", zap.Error(err))
			http.Error(w, "Error processing request", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(res)
		if err != nil {
			logger.Error("failed to encode result of GetAllDroppedResponses", zap.Error(err))
			http.Error(w, "Error processing request", http.StatusInternalServerError)
		}
	}
}
