package icq

import (
	"fmt"
	"math"
	"strconv"
)

// QueryEvent is the typed form of a query_request event emitted by the querying chain.
type QueryEvent struct {
	Module       string
	Action       string
	QueryID      string
	ChainID      string
	ConnectionID string
	QueryType    string
	Height       uint64
	Request      string
}

// QueryPacket is the payload of a cross_chain_query event. Path is hex encoded and Height is
// kept as the decimal text the querying chain emitted.
type QueryPacket struct {
	ChainID string
	ID      string
	Sender  string
	Path    string
	Height  string
}

// QueryRequest is a decoded query ready to be dispatched to the queried chain.
type QueryRequest struct {
	ID     string
	Sender string
	// Path is empty when the encoded path could not be decoded. Such a request is still
	// answered, with a failure response.
	Path   string
	Height string
}

// HasPath reports whether the request carries a decoded REST path.
func (r QueryRequest) HasPath() bool {
	return r.Path != ""
}

// ResultCode is the outcome of a dispatched query as understood by the querying chain.
type ResultCode int32

const (
	ResultSuccess ResultCode = 1
	ResultFailure ResultCode = 2
)

func (c ResultCode) String() string {
	switch c {
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	default:
		return fmt.Sprintf("unknown(%d)", int32(c))
	}
}

// QueryResponse is the answer to exactly one QueryRequest. Data holds the raw body on success
// and the error text on failure.
type QueryResponse struct {
	ID     string
	Sender string
	Result ResultCode
	Data   string
	Height string
}

// NewSuccessResponse answers req with data.
func NewSuccessResponse(req QueryRequest, data string) QueryResponse {
	return QueryResponse{
		ID:     req.ID,
		Sender: req.Sender,
		Result: ResultSuccess,
		Data:   data,
		Height: req.Height,
	}
}

// NewFailureResponse answers req with a failure carrying reason as data.
func NewFailureResponse(req QueryRequest, reason string) QueryResponse {
	return QueryResponse{
		ID:     req.ID,
		Sender: req.Sender,
		Result: ResultFailure,
		Data:   reason,
		Height: req.Height,
	}
}

// ParseHeight parses a decimal block height. Heights must fit an int64, as tendermint heights do.
func ParseHeight(height string) (uint64, error) {
	h, err := strconv.ParseUint(height, 10, 64)
	if err != nil {
		return 0, ErrMalformedHeight.Wrapf("%q: %s", height, err)
	}
	if h > math.MaxInt64 {
		return 0, ErrMalformedHeight.Wrapf("%q: exceeds max block height", height)
	}

	return h, nil
}

// QueryIDs returns the ids of the given responses, in order. Used for logging.
func QueryIDs(responses []QueryResponse) []string {
	ids := make([]string, 0, len(responses))
	for _, r := range responses {
		ids = append(ids, r.ID)
	}

	return ids
}

// RequestIDs returns the ids of the given requests, in order. Used for logging.
func RequestIDs(requests []QueryRequest) []string {
	ids := make([]string, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}

	return ids
}
