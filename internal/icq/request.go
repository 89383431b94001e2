package icq

import (
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"unicode/utf8"

	abci "github.com/cometbft/cometbft/abci/types"
)

// RequestFromPacket builds a request from a packet. An undecodable path leaves Path empty.
func RequestFromPacket(p QueryPacket) QueryRequest {
	return QueryRequest{
		ID:     p.ID,
		Sender: p.Sender,
		Path:   decodeHexPath(p.Path),
		Height: p.Height,
	}
}

// RequestFromQueryEvent builds a request from a query_request event. The event's request payload
// carries the base64 encoded REST path; the event has no sender.
func RequestFromQueryEvent(e QueryEvent) QueryRequest {
	return QueryRequest{
		ID:     e.QueryID,
		Path:   decodeBase64Path(e.Request),
		Height: strconv.FormatUint(e.Height, 10),
	}
}

// RequestFromEvent decodes a single ABCI event into a request. Events of other types are
// rejected with ErrParse.
func RequestFromEvent(event abci.Event) (QueryRequest, error) {
	switch event.Type {
	case EventTypeQueryRequest:
		e, err := DecodeQueryEvent(event.Attributes)
		if err != nil {
			return QueryRequest{}, err
		}
		return RequestFromQueryEvent(e), nil
	case EventTypeCrossChainQuery:
		p, err := DecodeQueryPacket(event.Attributes)
		if err != nil {
			return QueryRequest{}, err
		}
		return RequestFromPacket(p), nil
	default:
		return QueryRequest{}, ErrParse.Wrapf("unexpected event type %q", event.Type)
	}
}

// RequestsFromEvents decodes every event of a batch that is a valid query request and skips
// the rest. A query id seen twice in the batch keeps its first request only.
func RequestsFromEvents(events []abci.Event) []QueryRequest {
	var (
		requests []QueryRequest
		seen     = make(map[string]struct{})
	)
	for _, event := range events {
		req, err := RequestFromEvent(event)
		if err != nil {
			continue
		}
		if _, ok := seen[req.ID]; ok {
			continue
		}
		seen[req.ID] = struct{}{}
		requests = append(requests, req)
	}

	return requests
}

// GroupByHeight splits requests into groups sharing the same height. Groups are ordered by the
// first appearance of their height and keep the relative order of their requests.
func GroupByHeight(requests []QueryRequest) [][]QueryRequest {
	var (
		groups [][]QueryRequest
		index  = make(map[string]int)
	)
	for _, req := range requests {
		i, ok := index[req.Height]
		if !ok {
			i = len(groups)
			index[req.Height] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], req)
	}

	return groups
}

func decodeHexPath(encoded string) string {
	raw, err := hex.DecodeString(encoded)
	if err != nil || !utf8.Valid(raw) {
		return ""
	}

	return string(raw)
}

func decodeBase64Path(encoded string) string {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || !utf8.Valid(raw) {
		return ""
	}

	return string(raw)
}
