package storage_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neutron-org/cross-chain-query-relayer/internal/icq"
	"github.com/neutron-org/cross-chain-query-relayer/internal/storage"
)

func TestLevelDBStorageDroppedResponses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leveldb")
	s, err := storage.NewLevelDBStorage(path)
	require.NoError(t, err)

	all, err := s.GetAllDroppedResponses()
	require.NoError(t, err)
	assert.Empty(t, all)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	responses := []icq.QueryResponse{
		{ID: "2", Sender: "cosmos1b", Result: icq.ResultFailure, Data: "unreachable", Height: "10"},
		{ID: "1", Sender: "cosmos1a", Result: icq.ResultSuccess, Data: "{}", Height: "10"},
	}
	require.NoError(t, s.SaveDroppedResponses(icq.DroppedResponses(responses, "submission", errors.New("out of gas"), now)))
	require.NoError(t, s.SaveDroppedResponses(icq.DroppedRequests(
		[]icq.QueryRequest{{ID: "1", Height: "11"}}, "dispatch", errors.New("rest down"), now.Add(time.Second))))
	require.NoError(t, s.SaveDroppedResponses(nil))

	all, err = s.GetAllDroppedResponses()
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "1", all[0].QueryID)
	assert.Equal(t, "submission", all[0].Stage)
	assert.Equal(t, icq.ResultSuccess, all[0].Result)
	assert.Equal(t, "out of gas", all[0].Reason)
	assert.True(t, now.Equal(all[0].DroppedAt))

	assert.Equal(t, "1", all[1].QueryID)
	assert.Equal(t, "dispatch", all[1].Stage)
	assert.Equal(t, icq.ResultCode(0), all[1].Result)

	assert.Equal(t, "2", all[2].QueryID)
	assert.Equal(t, "cosmos1b", all[2].Sender)

	require.NoError(t, s.Close())

	reopened, err := storage.NewLevelDBStorage(path)
	require.NoError(t, err)
	defer reopened.Close()

	all, err = reopened.GetAllDroppedResponses()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDummyStorage(t *testing.T) {
	s := storage.NewDummyStorage()
	require.NoError(t, s.SaveDroppedResponses([]icq.DroppedResponse{{QueryID: "1", Stage: "submission"}}))

	all, err := s.GetAllDroppedResponses()
	require.NoError(t, err)
	require.Len(t, all, 1)
	all[0].QueryID = "changed"

	again, err := s.GetAllDroppedResponses()
	require.NoError(t, err)
	assert.Equal(t, "1", again[0].QueryID)
	assert.NoError(t, s.Close())
}
