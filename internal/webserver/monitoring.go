package webserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/neutron-org/cross-chain-query-relayer/internal/metrics"
	"github.com/neutron-org/cross-chain-query-relayer/internal/storage"
)

// PromWrapper serves prometheus metrics, refreshing storage backed gauges on every scrape.
type PromWrapper struct {
	promHandler http.Handler
	storage     storage.Storage
	logger      *zap.Logger
}

func NewPromWrapper(logger *zap.Logger, storage storage.Storage) PromWrapper {
	return PromWrapper{
		promHandler: promhttp.Handler(),
		storage:     storage,
		logger:      logger,
	}
}

func (p PromWrapper) fillDroppedResponsesMetric() {
	dropped, err := p.storage.GetAllDroppedResponses()
	if err != nil {
		p.logger.Error("failed to get dropped responses from storage", zap.Error(err))
		return
	}
	metrics.SetDroppedResponsesStored(len(dropped))
}

func (p PromWrapper) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	p.fillDroppedResponsesMetric()
	p.promHandler.ServeHTTP(res, req)
}
