package storage

import (
	"sync"

	"github.com/neutron-org/cross-chain-query-relayer/internal/icq"
)

// DummyStorage keeps dropped responses in memory. Used when no storage path is configured.
type DummyStorage struct {
	mu      sync.Mutex
	dropped []icq.DroppedResponse
}

func NewDummyStorage() *DummyStorage {
	return &DummyStorage{}
}

func (s *DummyStorage) SaveDroppedResponses(dropped []icq.DroppedResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropped = append(s.dropped, dropped...)
	return nil
}

func (s *DummyStorage) GetAllDroppedResponses() ([]icq.DroppedResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]icq.DroppedResponse, 0, len(s.dropped)), s.dropped...), nil
}

func (s *DummyStorage) Close() error {
	return nil
}
