package chain

//go:generate mockgen -source=types.go -destination=../../testutil/mocks/chain/mocks.go -package=mock_chain

import (
	"context"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	conntypes "github.com/cosmos/ibc-go/v8/modules/core/03-connection/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"
	"github.com/cosmos/relayer/v2/relayer/provider"
)

// The interfaces below are the parts of provider.ChainProvider the adapters rely on.

// QueryingProvider reads IBC state from and submits transactions to the querying chain.
type QueryingProvider interface {
	ChainId() string
	QueryLatestHeight(ctx context.Context) (int64, error)
	QueryConnection(ctx context.Context, height int64, connectionid string) (*conntypes.QueryConnectionResponse, error)
	Address() (string, error)
	SendMessagesToMempool(
		ctx context.Context,
		msgs []provider.RelayerMessage,
		memo string,
		asyncCtx context.Context,
		asyncCallbacks []func(*provider.RelayerTxResponse, error),
	) error
}

// ClientHost is a chain hosting light clients of other chains.
type ClientHost interface {
	ChainId() string
	QueryClientState(ctx context.Context, height int64, clientid string) (ibcexported.ClientState, error)
	MsgUpdateClient(clientId string, counterpartyHeader ibcexported.ClientMessage) (provider.RelayerMessage, error)
}

// HeaderSource is a chain providing the signed headers a light client of it is updated with.
type HeaderSource interface {
	ChainId() string
	QueryLatestHeight(ctx context.Context) (int64, error)
	QueryIBCHeader(ctx context.Context, h int64) (provider.IBCHeader, error)
	MsgUpdateClientHeader(latestHeader provider.IBCHeader, trustedHeight clienttypes.Height, trustedHeader provider.IBCHeader) (ibcexported.ClientMessage, error)
}
