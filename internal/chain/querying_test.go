package chain_test

import (
	"context"
	"errors"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	conntypes "github.com/cosmos/ibc-go/v8/modules/core/03-connection/types"
	"github.com/cosmos/relayer/v2/relayer/provider"
	"github.com/cosmos/relayer/v2/relayer/chains/cosmos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/neutron-org/cross-chain-query-relayer/internal/chain"
	mock_chain "github.com/neutron-org/cross-chain-query-relayer/testutil/mocks/chain"
)

func TestQueryingChainQueryConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prov := mock_chain.NewMockQueryingProvider(ctrl)
	prov.EXPECT().QueryConnection(gomock.Any(), int64(42), "connection-0").
		Return(&conntypes.QueryConnectionResponse{Connection: &conntypes.ConnectionEnd{ClientId: clientID}}, nil)
	prov.EXPECT().QueryConnection(gomock.Any(), int64(43), "connection-0").
		Return(&conntypes.QueryConnectionResponse{}, nil)
	prov.EXPECT().QueryConnection(gomock.Any(), int64(44), "connection-0").
		Return(nil, errors.New("rpc down"))

	c := chain.NewQueryingChain(prov, zap.NewNop())

	conn, err := c.QueryConnection(context.Background(), "connection-0", 42)
	require.NoError(t, err)
	assert.Equal(t, clientID, conn.ClientId)

	_, err = c.QueryConnection(context.Background(), "connection-0", 43)
	assert.ErrorContains(t, err, "not found")

	_, err = c.QueryConnection(context.Background(), "connection-0", 44)
	assert.ErrorContains(t, err, "rpc down")
}

func TestQueryingChainSubmitAndWaitAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	update := &clienttypes.MsgUpdateClient{ClientId: clientID}
	other := &clienttypes.MsgUpdateClient{ClientId: "07-tendermint-1"}

	prov := mock_chain.NewMockQueryingProvider(ctrl)
	prov.EXPECT().SendMessagesToMempool(gomock.Any(), gomock.Any(), "", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs []provider.RelayerMessage, _ string, _ context.Context, callbacks []func(*provider.RelayerTxResponse, error)) error {
			require.Len(t, msgs, 2)
			assert.Equal(t, sdk.Msg(update), cosmos.CosmosMsg(msgs[0]))
			assert.Equal(t, sdk.Msg(other), cosmos.CosmosMsg(msgs[1]))
			require.Len(t, callbacks, 1)
			callbacks[0](&provider.RelayerTxResponse{TxHash: "ABCD", Height: 10}, nil)
			return nil
		})

	c := chain.NewQueryingChain(prov, zap.NewNop())
	require.NoError(t, c.SubmitAndWaitAccepted(context.Background(), []sdk.Msg{update, other}))
}

func TestQueryingChainSubmitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prov := mock_chain.NewMockQueryingProvider(ctrl)
	prov.EXPECT().ChainId().Return(hostChainID)
	prov.EXPECT().SendMessagesToMempool(gomock.Any(), gomock.Any(), "", gomock.Any(), gomock.Any()).
		Return(errors.New("insufficient fees"))

	c := chain.NewQueryingChain(prov, zap.NewNop())
	err := c.SubmitAndWaitAccepted(context.Background(), []sdk.Msg{&clienttypes.MsgUpdateClient{}})
	assert.ErrorContains(t, err, "insufficient fees")

	assert.Error(t, c.SubmitAndWaitAccepted(context.Background(), nil))
}
