package dispatcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neutron-org/cross-chain-query-relayer/internal/dispatcher"
	"github.com/neutron-org/cross-chain-query-relayer/internal/icq"
)

func newServer(t *testing.T, calls *int32) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `","height":"` + r.Header.Get(dispatcher.BlockHeightHeader) + `"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDispatchSuccess(t *testing.T) {
	var calls int32
	srv := newServer(t, &calls)

	d, err := dispatcher.NewRESTDispatcher(srv.URL, time.Second, zap.NewNop())
	require.NoError(t, err)

	req := icq.QueryRequest{ID: "1", Sender: "cosmos1sender", Path: "/cosmos/bank/v1beta1/supply", Height: "100"}
	resp := d.Dispatch(context.Background(), req)

	assert.Equal(t, icq.ResultSuccess, resp.Result)
	assert.Equal(t, `{"path":"/cosmos/bank/v1beta1/supply","height":"100"}`, resp.Data)
	assert.Equal(t, "1", resp.ID)
	assert.Equal(t, "cosmos1sender", resp.Sender)
	assert.Equal(t, "100", resp.Height)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDispatchAbsolutePath(t *testing.T) {
	var calls int32
	srv := newServer(t, &calls)

	d, err := dispatcher.NewRESTDispatcher("", time.Second, zap.NewNop())
	require.NoError(t, err)

	resp := d.Dispatch(context.Background(), icq.QueryRequest{ID: "2", Path: srv.URL + "/blocks/latest", Height: "5"})
	assert.Equal(t, icq.ResultSuccess, resp.Result)
	assert.Contains(t, resp.Data, `"height":"5"`)

	resp = d.Dispatch(context.Background(), icq.QueryRequest{ID: "3", Path: "/blocks/latest", Height: "5"})
	assert.Equal(t, icq.ResultFailure, resp.Result)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDispatchUndecodablePathMakesNoCall(t *testing.T) {
	var calls int32
	srv := newServer(t, &calls)

	d, err := dispatcher.NewRESTDispatcher(srv.URL, time.Second, zap.NewNop())
	require.NoError(t, err)

	req := icq.RequestFromPacket(icq.QueryPacket{ID: "4", Sender: "cosmos1sender", Path: "not hex", Height: "10"})
	resp := d.Dispatch(context.Background(), req)

	assert.Equal(t, icq.ResultFailure, resp.Result)
	assert.Empty(t, resp.Data)
	assert.Equal(t, "4", resp.ID)
	assert.Equal(t, "10", resp.Height)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestDispatchUnreachableEndpoint(t *testing.T) {
	var calls int32
	srv := newServer(t, &calls)
	addr := srv.URL
	srv.Close()

	d, err := dispatcher.NewRESTDispatcher(addr, time.Second, zap.NewNop())
	require.NoError(t, err)

	req := icq.QueryRequest{ID: "5", Sender: "cosmos1sender", Path: "/cosmos/bank/v1beta1/supply", Height: "77"}
	resp := d.Dispatch(context.Background(), req)

	assert.Equal(t, icq.ResultFailure, resp.Result)
	assert.NotEmpty(t, resp.Data)
	assert.Contains(t, resp.Data, addr)
	assert.Equal(t, "5", resp.ID)
	assert.Equal(t, "cosmos1sender", resp.Sender)
	assert.Equal(t, "77", resp.Height)
}

func TestDispatchAll(t *testing.T) {
	var calls int32
	srv := newServer(t, &calls)

	d, err := dispatcher.NewRESTDispatcher(srv.URL+"/rest/", time.Second, zap.NewNop())
	require.NoError(t, err)

	requests := []icq.QueryRequest{
		{ID: "1", Path: "a?x=1", Height: "9"},
		{ID: "2", Height: "9"},
		{ID: "3", Path: "/b", Height: "9"},
	}
	responses, err := d.DispatchAll(context.Background(), requests)
	require.NoError(t, err)
	require.Len(t, responses, 3)

	assert.Equal(t, []string{"1", "2", "3"}, icq.QueryIDs(responses))
	assert.Equal(t, `{"path":"/rest/a","height":"9"}`, responses[0].Data)
	assert.Equal(t, icq.ResultFailure, responses[1].Result)
	assert.Equal(t, `{"path":"/rest/b","height":"9"}`, responses[2].Data)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	for _, resp := range responses {
		assert.Contains(t, []icq.ResultCode{icq.ResultSuccess, icq.ResultFailure}, resp.Result)
	}
}

func TestDispatchAllRejectsMixedHeights(t *testing.T) {
	var calls int32
	srv := newServer(t, &calls)

	d, err := dispatcher.NewRESTDispatcher(srv.URL, time.Second, zap.NewNop())
	require.NoError(t, err)

	_, err = d.DispatchAll(context.Background(), []icq.QueryRequest{
		{ID: "1", Path: "/a", Height: "9"},
		{ID: "2", Path: "/b", Height: "10"},
	})
	require.ErrorIs(t, err, icq.ErrMixedHeights)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestNewRESTDispatcherRejectsRelativeAddress(t *testing.T) {
	_, err := dispatcher.NewRESTDispatcher("localhost/rest", time.Second, zap.NewNop())
	assert.Error(t, err)
}
