package subscriber

//go:generate mockgen -source=clients.go -destination=../../testutil/mocks/subscriber/mocks.go -package=mock_subscriber

import (
	"context"
	"time"

	tmhttp "github.com/cometbft/cometbft/rpc/client/http"
	ctypes "github.com/cometbft/cometbft/rpc/core/types"
	jsonrpcclient "github.com/cometbft/cometbft/rpc/jsonrpc/client"
)

var rpcWSEndpoint = "/websocket"

type RpcHttpClient interface {
	Start() error
	Subscribe(ctx context.Context, subscriber string, query string, outCapacity ...int) (out <-chan ctypes.ResultEvent, err error)
	Status(ctx context.Context) (*ctypes.ResultStatus, error)
	Unsubscribe(ctx context.Context, subscriber, query string) error
}

// NewRPCClient creates a new tendermint RPC client with timeout.
func NewRPCClient(rpcAddr string, timeout time.Duration) (*tmhttp.HTTP, error) {
	httpClient, err := jsonrpcclient.DefaultHTTPClient(rpcAddr)
	if err != nil {
		return nil, err
	}
	httpClient.Timeout = timeout
	return tmhttp.NewWithClient(rpcAddr, rpcWSEndpoint, httpClient)
}
