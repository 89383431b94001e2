package chain

import (
	"context"

	"github.com/neutron-org/cross-chain-query-relayer/internal/dispatcher"
	"github.com/neutron-org/cross-chain-query-relayer/internal/icq"
)

// QueriedChain answers cross-chain queries through its REST endpoint.
type QueriedChain struct {
	chainID    string
	dispatcher *dispatcher.RESTDispatcher
}

func NewQueriedChain(chainID string, d *dispatcher.RESTDispatcher) *QueriedChain {
	return &QueriedChain{
		chainID:    chainID,
		dispatcher: d,
	}
}

func (c *QueriedChain) ChainID() string {
	return c.chainID
}

func (c *QueriedChain) DispatchCrossChainQueries(ctx context.Context, requests []icq.QueryRequest) ([]icq.QueryResponse, error) {
	return c.dispatcher.DispatchAll(ctx, requests)
}
