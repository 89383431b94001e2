package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/neutron-org/cross-chain-query-relayer/internal/icq"
)

const DroppedResponsesPrefix = "dropped_responses/"

// Storage keeps the record of responses that never reached the querying chain.
type Storage interface {
	SaveDroppedResponses(dropped []icq.DroppedResponse) error
	GetAllDroppedResponses() ([]icq.DroppedResponse, error)
	Close() error
}

// LevelDBStorage stores dropped responses under DroppedResponsesPrefix + query id + drop time,
// JSON encoded. Records are only ever appended and listed.
type LevelDBStorage struct {
	sync.Mutex
	db *leveldb.DB
}

func NewLevelDBStorage(path string) (*LevelDBStorage, error) {
	database, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb at %s: %w", path, err)
	}

	return &LevelDBStorage{db: database}, nil
}

// SaveDroppedResponses writes all records in a single batch.
func (s *LevelDBStorage) SaveDroppedResponses(dropped []icq.DroppedResponse) error {
	if len(dropped) == 0 {
		return nil
	}

	s.Lock()
	defer s.Unlock()

	batch := new(leveldb.Batch)
	for i, d := range dropped {
		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("failed to marshal DroppedResponse for query %s: %w", d.QueryID, err)
		}
		batch.Put(constructKey(d, i), data)
	}

	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("failed to write dropped responses: %w", err)
	}

	return nil
}

// GetAllDroppedResponses lists records ordered by query id, then drop time.
func (s *LevelDBStorage) GetAllDroppedResponses() ([]icq.DroppedResponse, error) {
	s.Lock()
	defer s.Unlock()

	iterator := s.db.NewIterator(util.BytesPrefix([]byte(DroppedResponsesPrefix)), nil)
	defer iterator.Release()

	dropped := make([]icq.DroppedResponse, 0)
	for iterator.Next() {
		var d icq.DroppedResponse
		if err := json.Unmarshal(iterator.Value(), &d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal data into DroppedResponse: %w", err)
		}
		dropped = append(dropped, d)
	}
	if err := iterator.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate over dropped responses: %w", err)
	}

	return dropped, nil
}

func (s *LevelDBStorage) Close() error {
	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("failed to close db: %w", err)
	}
	return nil
}

// constructKey makes records of the same query sort by drop time. The batch index keeps records
// dropped at the same instant apart.
func constructKey(d icq.DroppedResponse, idx int) []byte {
	key := DroppedResponsesPrefix + d.QueryID + "/" +
		fmt.Sprintf("%020d", d.DroppedAt.UnixNano()) + "/" + strconv.Itoa(idx)
	return []byte(key)
}
