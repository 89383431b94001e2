package worker_test

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	conntypes "github.com/cosmos/ibc-go/v8/modules/core/03-connection/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/neutron-org/cross-chain-query-relayer/internal/icq"
	"github.com/neutron-org/cross-chain-query-relayer/internal/task"
	"github.com/neutron-org/cross-chain-query-relayer/internal/worker"
	mock_worker "github.com/neutron-org/cross-chain-query-relayer/testutil/mocks/worker"
)

const (
	queryingChainID = "chainA-1"
	queriedChainID  = "chainB-1"
	connectionID    = "connection-0"
	clientID        = "07-tendermint-0"
	relayerAddress  = "cosmos1relayer"
)

type mocks struct {
	querying *mock_worker.MockQueryingChain
	queried  *mock_worker.MockQueriedChain
	finder   *mock_worker.MockForeignClientFinder
	client   *mock_worker.MockForeignClient
	recorder *mock_worker.MockDroppedResponsesRecorder
}

func newMocks(ctrl *gomock.Controller) mocks {
	m := mocks{
		querying: mock_worker.NewMockQueryingChain(ctrl),
		queried:  mock_worker.NewMockQueriedChain(ctrl),
		finder:   mock_worker.NewMockForeignClientFinder(ctrl),
		client:   mock_worker.NewMockForeignClient(ctrl),
		recorder: mock_worker.NewMockDroppedResponsesRecorder(ctrl),
	}
	m.querying.EXPECT().ChainID().Return(queryingChainID).AnyTimes()
	m.queried.EXPECT().ChainID().Return(queriedChainID).AnyTimes()
	m.client.EXPECT().ClientID().Return(clientID).AnyTimes()
	return m
}

func newWorker(t *testing.T, m mocks, cmds <-chan worker.Command) *worker.Worker {
	cfgLogger := zap.NewProductionConfig()
	logger, err := cfgLogger.Build()
	require.NoError(t, err)

	return worker.NewWorker(worker.Config{
		ConnectionID: connectionID,
		PollInterval: time.Millisecond,
	}, m.querying, m.queried, m.finder, m.recorder, cmds, logger)
}

func queryEvent(id string, height uint64) abci.Event {
	return icq.EncodeQueryEvent(icq.QueryEvent{
		Module:       "interchainquery",
		Action:       "query",
		QueryID:      id,
		ChainID:      queriedChainID,
		ConnectionID: connectionID,
		QueryType:    "/cosmos.bank.v1beta1.Query/Balance",
		Height:       height,
		Request:      base64.StdEncoding.EncodeToString([]byte("/cosmos/bank/v1beta1/balances/cosmos1abc")),
	})
}

func answerAll(_ context.Context, requests []icq.QueryRequest) ([]icq.QueryResponse, error) {
	responses := make([]icq.QueryResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, icq.NewSuccessResponse(req, `{"balance":"`+req.ID+`"}`))
	}
	return responses, nil
}

func expectClientResolution(m mocks, latest int64) {
	m.querying.EXPECT().QueryLatestHeight(gomock.Any()).Return(latest, nil)
	m.querying.EXPECT().QueryConnection(gomock.Any(), connectionID, latest).
		Return(&conntypes.ConnectionEnd{ClientId: clientID}, nil)
	m.finder.EXPECT().Find(gomock.Any(), queryingChainID, queriedChainID, clientID).Return(m.client, nil)
}

func updateMsg() sdk.Msg {
	return &clienttypes.MsgUpdateClient{ClientId: clientID, Signer: relayerAddress}
}

func TestStepWithoutCommandIsHeartbeat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cmds := make(chan worker.Command, 1)
	w := newWorker(t, newMocks(ctrl), cmds)

	assert.NoError(t, w.Step(context.Background()))
}

func TestStepSkipsNonQueryEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cmds := make(chan worker.Command, 1)
	w := newWorker(t, newMocks(ctrl), cmds)

	cmds <- worker.EventsCmd{Height: 10, Events: []abci.Event{
		{Type: "transfer", Attributes: []abci.EventAttribute{{Key: "amount", Value: "1stake"}}},
	}}
	assert.NoError(t, w.Step(context.Background()))
}

func TestStepSubmitsUpdateBeforeResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	cmds := make(chan worker.Command, 1)
	w := newWorker(t, m, cmds)

	var submitted []sdk.Msg
	m.queried.EXPECT().DispatchCrossChainQueries(gomock.Any(), gomock.Len(3)).DoAndReturn(answerAll)
	expectClientResolution(m, 1000)
	m.client.EXPECT().BuildUpdateClientMsgs(gomock.Any(), clienttypes.NewHeight(1, 501)).Return([]sdk.Msg{updateMsg()}, nil)
	m.querying.EXPECT().Signer().Return(relayerAddress, nil)
	m.querying.EXPECT().SubmitAndWaitAccepted(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs []sdk.Msg) error {
		submitted = msgs
		return nil
	})

	cmds <- worker.EventsCmd{Height: 12, Events: []abci.Event{queryEvent("1", 500), queryEvent("2", 500), queryEvent("3", 500)}}
	require.NoError(t, w.Step(context.Background()))

	require.Len(t, submitted, 4)
	assert.Equal(t, updateMsg(), submitted[0])
	for i, msg := range submitted[1:] {
		result, ok := msg.(*icq.MsgSubmitCrossChainQueryResult)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprint(i+1), result.ID)
		assert.Equal(t, uint64(500), result.QueryHeight)
		assert.Equal(t, icq.ResultSuccess, result.Result)
		assert.Equal(t, relayerAddress, result.Sender)
		assert.Equal(t, icq.DefaultResultMsgTypeURL, result.TypeURL())
	}
}

func TestStepDropsMalformedEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	cmds := make(chan worker.Command, 1)
	w := newWorker(t, m, cmds)

	malformed := queryEvent("2", 100)
	var attrs []abci.EventAttribute
	for _, attr := range malformed.Attributes {
		if attr.Key != icq.AttributeKeyHeight {
			attrs = append(attrs, attr)
		}
	}
	malformed.Attributes = attrs

	m.queried.EXPECT().DispatchCrossChainQueries(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, requests []icq.QueryRequest) ([]icq.QueryResponse, error) {
			require.Len(t, requests, 1)
			assert.Equal(t, "1", requests[0].ID)
			return answerAll(ctx, requests)
		})
	expectClientResolution(m, 200)
	m.client.EXPECT().BuildUpdateClientMsgs(gomock.Any(), clienttypes.NewHeight(1, 101)).Return([]sdk.Msg{updateMsg()}, nil)
	m.querying.EXPECT().Signer().Return(relayerAddress, nil)
	m.querying.EXPECT().SubmitAndWaitAccepted(gomock.Any(), gomock.Len(2)).Return(nil)

	cmds <- worker.EventsCmd{Events: []abci.Event{queryEvent("1", 100), malformed}}
	require.NoError(t, w.Step(context.Background()))
}

func TestStepConnectionLookupFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	cmds := make(chan worker.Command, 1)
	w := newWorker(t, m, cmds)

	m.queried.EXPECT().DispatchCrossChainQueries(gomock.Any(), gomock.Any()).DoAndReturn(answerAll)
	m.querying.EXPECT().QueryLatestHeight(gomock.Any()).Return(int64(1000), nil)
	m.querying.EXPECT().QueryConnection(gomock.Any(), connectionID, int64(1000)).Return(nil, errors.New("connection not found"))
	m.recorder.EXPECT().SaveDroppedResponses(gomock.Any()).DoAndReturn(func(dropped []icq.DroppedResponse) error {
		require.Len(t, dropped, 1)
		assert.Equal(t, "1", dropped[0].QueryID)
		assert.Equal(t, worker.StageConnectionLookup, dropped[0].Stage)
		return nil
	})

	cmds <- worker.EventsCmd{Events: []abci.Event{queryEvent("1", 500)}}
	err := w.Step(context.Background())
	require.Error(t, err)
	assert.True(t, task.IsFatal(err))
	assert.ErrorIs(t, err, icq.ErrConnectionLookup)
}

func TestStepFatalStages(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m mocks)
		err   error
	}{
		{
			name: "latest height",
			setup: func(m mocks) {
				m.querying.EXPECT().QueryLatestHeight(gomock.Any()).Return(int64(0), errors.New("rpc down"))
			},
			err: icq.ErrConnectionLookup,
		},
		{
			name: "client resolution",
			setup: func(m mocks) {
				m.querying.EXPECT().QueryLatestHeight(gomock.Any()).Return(int64(10), nil)
				m.querying.EXPECT().QueryConnection(gomock.Any(), connectionID, int64(10)).
					Return(&conntypes.ConnectionEnd{ClientId: clientID}, nil)
				m.finder.EXPECT().Find(gomock.Any(), queryingChainID, queriedChainID, clientID).
					Return(nil, errors.New("client tracks another chain"))
			},
			err: icq.ErrClientResolution,
		},
		{
			name: "update client",
			setup: func(m mocks) {
				expectClientResolution(m, 10)
				m.client.EXPECT().BuildUpdateClientMsgs(gomock.Any(), gomock.Any()).Return(nil, errors.New("header unavailable"))
			},
			err: icq.ErrUpdateClientBuild,
		},
		{
			name: "signer",
			setup: func(m mocks) {
				expectClientResolution(m, 10)
				m.client.EXPECT().BuildUpdateClientMsgs(gomock.Any(), gomock.Any()).Return([]sdk.Msg{updateMsg()}, nil)
				m.querying.EXPECT().Signer().Return("", errors.New("key not found"))
			},
			err: icq.ErrSigner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			cmds := make(chan worker.Command, 1)
			w := newWorker(t, m, cmds)

			m.queried.EXPECT().DispatchCrossChainQueries(gomock.Any(), gomock.Any()).DoAndReturn(answerAll)
			m.recorder.EXPECT().SaveDroppedResponses(gomock.Len(1)).Return(nil)
			tt.setup(m)

			cmds <- worker.EventsCmd{Events: []abci.Event{queryEvent("1", 5)}}
			err := w.Step(context.Background())
			assert.True(t, task.IsFatal(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestStepDispatchFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	cmds := make(chan worker.Command, 1)
	w := newWorker(t, m, cmds)

	m.queried.EXPECT().DispatchCrossChainQueries(gomock.Any(), gomock.Any()).Return(nil, errors.New("rest unavailable"))
	m.recorder.EXPECT().SaveDroppedResponses(gomock.Len(2)).Return(nil)

	cmds <- worker.EventsCmd{Events: []abci.Event{queryEvent("1", 5), queryEvent("2", 5)}}
	err := w.Step(context.Background())
	require.Error(t, err)
	assert.False(t, task.IsFatal(err))
	assert.ErrorIs(t, err, icq.ErrDispatch)
}

func TestStepSubmissionFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	cmds := make(chan worker.Command, 1)
	w := newWorker(t, m, cmds)

	m.queried.EXPECT().DispatchCrossChainQueries(gomock.Any(), gomock.Any()).DoAndReturn(answerAll)
	expectClientResolution(m, 10)
	m.client.EXPECT().BuildUpdateClientMsgs(gomock.Any(), gomock.Any()).Return([]sdk.Msg{updateMsg()}, nil)
	m.querying.EXPECT().Signer().Return(relayerAddress, nil)
	m.querying.EXPECT().SubmitAndWaitAccepted(gomock.Any(), gomock.Any()).Return(errors.New("insufficient fees"))
	m.recorder.EXPECT().SaveDroppedResponses(gomock.Any()).DoAndReturn(func(dropped []icq.DroppedResponse) error {
		require.Len(t, dropped, 1)
		assert.Equal(t, worker.StageSubmission, dropped[0].Stage)
		assert.Equal(t, icq.ResultSuccess, dropped[0].Result)
		assert.Contains(t, dropped[0].Reason, "insufficient fees")
		return nil
	})

	cmds <- worker.EventsCmd{Events: []abci.Event{queryEvent("1", 5)}}
	err := w.Step(context.Background())
	require.Error(t, err)
	assert.False(t, task.IsFatal(err))
	assert.ErrorIs(t, err, icq.ErrSubmission)
}

func TestStepSplitsBatchesByHeight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	cmds := make(chan worker.Command, 1)
	w := newWorker(t, m, cmds)

	m.queried.EXPECT().DispatchCrossChainQueries(gomock.Any(), gomock.Any()).DoAndReturn(answerAll).Times(2)
	m.querying.EXPECT().QueryLatestHeight(gomock.Any()).Return(int64(50), nil).Times(2)
	m.querying.EXPECT().QueryConnection(gomock.Any(), connectionID, int64(50)).
		Return(&conntypes.ConnectionEnd{ClientId: clientID}, nil).Times(2)
	m.finder.EXPECT().Find(gomock.Any(), queryingChainID, queriedChainID, clientID).Return(m.client, nil).Times(2)
	m.querying.EXPECT().Signer().Return(relayerAddress, nil).Times(2)

	gomock.InOrder(
		m.client.EXPECT().BuildUpdateClientMsgs(gomock.Any(), clienttypes.NewHeight(1, 11)).Return([]sdk.Msg{updateMsg()}, nil),
		m.client.EXPECT().BuildUpdateClientMsgs(gomock.Any(), clienttypes.NewHeight(1, 21)).Return([]sdk.Msg{updateMsg()}, nil),
	)
	gomock.InOrder(
		m.querying.EXPECT().SubmitAndWaitAccepted(gomock.Any(), gomock.Len(3)).Return(nil),
		m.querying.EXPECT().SubmitAndWaitAccepted(gomock.Any(), gomock.Len(2)).Return(nil),
	)

	cmds <- worker.EventsCmd{Events: []abci.Event{queryEvent("1", 10), queryEvent("2", 20), queryEvent("3", 10)}}
	require.NoError(t, w.Step(context.Background()))
}

func TestStepDropsResponseWithMalformedHeight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	cmds := make(chan worker.Command, 1)
	w := newWorker(t, m, cmds)

	m.queried.EXPECT().DispatchCrossChainQueries(gomock.Any(), gomock.Any()).Return([]icq.QueryResponse{
		{ID: "1", Result: icq.ResultSuccess, Data: "a", Height: "5"},
		{ID: "2", Result: icq.ResultSuccess, Data: "b", Height: "five"},
	}, nil)
	expectClientResolution(m, 10)
	m.client.EXPECT().BuildUpdateClientMsgs(gomock.Any(), clienttypes.NewHeight(1, 6)).Return([]sdk.Msg{updateMsg()}, nil)
	m.querying.EXPECT().Signer().Return(relayerAddress, nil)
	m.recorder.EXPECT().SaveDroppedResponses(gomock.Len(1)).Return(nil)
	m.querying.EXPECT().SubmitAndWaitAccepted(gomock.Any(), gomock.Len(2)).Return(nil)

	cmds <- worker.EventsCmd{Events: []abci.Event{queryEvent("1", 5), queryEvent("2", 5)}}
	require.NoError(t, w.Step(context.Background()))
}

func TestStepCancelledMidBatchIsAbandoned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	cmds := make(chan worker.Command, 1)
	w := newWorker(t, m, cmds)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.queried.EXPECT().DispatchCrossChainQueries(gomock.Any(), gomock.Any()).DoAndReturn(answerAll)
	m.querying.EXPECT().QueryLatestHeight(gomock.Any()).DoAndReturn(func(ctx context.Context) (int64, error) {
		cancel()
		return 0, ctx.Err()
	})
	m.recorder.EXPECT().SaveDroppedResponses(gomock.Any()).Times(0)

	cmds <- worker.EventsCmd{Events: []abci.Event{queryEvent("1", 5), queryEvent("2", 6)}}
	assert.NoError(t, w.Step(ctx))
}

func TestStepCancelledDuringSubmissionIsAbandoned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	cmds := make(chan worker.Command, 1)
	w := newWorker(t, m, cmds)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.queried.EXPECT().DispatchCrossChainQueries(gomock.Any(), gomock.Any()).DoAndReturn(answerAll)
	expectClientResolution(m, 10)
	m.client.EXPECT().BuildUpdateClientMsgs(gomock.Any(), gomock.Any()).Return([]sdk.Msg{updateMsg()}, nil)
	m.querying.EXPECT().Signer().Return(relayerAddress, nil)
	m.querying.EXPECT().SubmitAndWaitAccepted(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ []sdk.Msg) error {
		cancel()
		return ctx.Err()
	})
	m.recorder.EXPECT().SaveDroppedResponses(gomock.Any()).Times(0)

	cmds <- worker.EventsCmd{Events: []abci.Event{queryEvent("1", 5)}}
	assert.NoError(t, w.Step(ctx))
}

func TestStepFatalLogsUnrelayedHeights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	cmds := make(chan worker.Command, 1)
	core, logs := observer.New(zap.InfoLevel)
	w := worker.NewWorker(worker.Config{ConnectionID: connectionID}, m.querying, m.queried, m.finder, m.recorder, cmds, zap.New(core))

	m.queried.EXPECT().DispatchCrossChainQueries(gomock.Any(), gomock.Len(1)).DoAndReturn(answerAll)
	m.querying.EXPECT().QueryLatestHeight(gomock.Any()).Return(int64(0), errors.New("rpc down"))
	m.recorder.EXPECT().SaveDroppedResponses(gomock.Len(1)).Return(nil)

	cmds <- worker.EventsCmd{Events: []abci.Event{queryEvent("1", 10), queryEvent("2", 20), queryEvent("3", 30)}}
	err := w.Step(context.Background())
	assert.True(t, task.IsFatal(err))

	entries := logs.FilterMessage("queries left unrelayed after fatal error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, []interface{}{"2", "3"}, entries[0].ContextMap()["query_ids"])
}

func TestSpawnStopsOnFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	cmds := make(chan worker.Command, 1)
	w := newWorker(t, m, cmds)

	m.queried.EXPECT().DispatchCrossChainQueries(gomock.Any(), gomock.Any()).DoAndReturn(answerAll)
	m.querying.EXPECT().QueryLatestHeight(gomock.Any()).Return(int64(0), errors.New("rpc down"))
	m.recorder.EXPECT().SaveDroppedResponses(gomock.Any()).Return(nil)

	cmds <- worker.EventsCmd{Events: []abci.Event{queryEvent("1", 5)}}
	h := w.Spawn(context.Background())

	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("worker didn't stop")
	}
	assert.ErrorIs(t, h.Err(), icq.ErrConnectionLookup)
	assert.Equal(t, "cross_chain_query:connection-0:chainA-1->chainB-1", h.Name())
}

func TestTargetHeight(t *testing.T) {
	h, err := worker.TargetHeight("chainB-1", "500")
	require.NoError(t, err)
	assert.Equal(t, clienttypes.NewHeight(1, 501), h)

	h, err = worker.TargetHeight("localnet", "7")
	require.NoError(t, err)
	assert.Equal(t, clienttypes.NewHeight(0, 8), h)

	_, err = worker.TargetHeight("chainB-1", "")
	assert.ErrorIs(t, err, icq.ErrMalformedHeight)

	h, err = worker.TargetHeight("chainB-1", "9223372036854775806")
	require.NoError(t, err)
	assert.Equal(t, clienttypes.NewHeight(1, math.MaxInt64), h)

	for _, height := range []string{"9223372036854775807", "18446744073709551615"} {
		_, err = worker.TargetHeight("chainB-1", height)
		assert.ErrorIs(t, err, icq.ErrMalformedHeight, height)
	}
}
