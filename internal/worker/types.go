package worker

//go:generate mockgen -source=types.go -destination=../../testutil/mocks/worker/mocks.go -package=mock_worker

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	conntypes "github.com/cosmos/ibc-go/v8/modules/core/03-connection/types"

	"github.com/neutron-org/cross-chain-query-relayer/internal/icq"
)

// QueryingChain is the chain that emits query requests and receives their results.
type QueryingChain interface {
	ChainID() string
	QueryLatestHeight(ctx context.Context) (int64, error)
	QueryConnection(ctx context.Context, connectionID string, height int64) (*conntypes.ConnectionEnd, error)
	// Signer returns the address the result messages are signed with.
	Signer() (string, error)
	// SubmitAndWaitAccepted submits msgs in a single transaction and returns once the
	// transaction has passed check-tx. It doesn't wait for block inclusion.
	SubmitAndWaitAccepted(ctx context.Context, msgs []sdk.Msg) error
}

// QueriedChain is the chain whose state the queries read.
type QueriedChain interface {
	ChainID() string
	// DispatchCrossChainQueries answers every request, in order.
	DispatchCrossChainQueries(ctx context.Context, requests []icq.QueryRequest) ([]icq.QueryResponse, error)
}

// ForeignClientFinder locates the light client hosted on one chain that tracks another.
type ForeignClientFinder interface {
	Find(ctx context.Context, hostChainID, counterpartyChainID, clientID string) (ForeignClient, error)
}

// ForeignClient is a light client of the queried chain hosted on the querying chain.
type ForeignClient interface {
	ClientID() string
	// BuildUpdateClientMsgs returns the messages updating the client to target.
	BuildUpdateClientMsgs(ctx context.Context, target clienttypes.Height) ([]sdk.Msg, error)
}

// DroppedResponsesRecorder keeps track of answers that never reached the querying chain.
type DroppedResponsesRecorder interface {
	SaveDroppedResponses(dropped []icq.DroppedResponse) error
}
