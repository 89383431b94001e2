package icq

import (
	"strconv"
	"strings"

	abci "github.com/cometbft/cometbft/abci/types"
	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"
)

const (
	// EventTypeQueryRequest is the type of the event a querying chain emits for a new cross-chain query.
	EventTypeQueryRequest = "query_request"
	// EventTypeCrossChainQuery is the type of the event carrying a QueryPacket.
	EventTypeCrossChainQuery = "cross_chain_query"
)

const (
	AttributeKeyModule       = "module"
	AttributeKeyAction       = "action"
	AttributeKeyQueryID      = "query_id"
	AttributeKeyChainID      = "chain_id"
	AttributeKeyConnectionID = "connection_id"
	AttributeKeyQueryType    = "type"
	AttributeKeyRequest      = "request"
	AttributeKeyHeight       = "height"
	AttributeKeySender       = "sender"
	AttributeKeyPath         = "path"
)

// queryEventKeys is the wire order of a query_request event's attributes.
var queryEventKeys = []string{
	AttributeKeyModule,
	AttributeKeyAction,
	AttributeKeyQueryID,
	AttributeKeyChainID,
	AttributeKeyConnectionID,
	AttributeKeyQueryType,
	AttributeKeyRequest,
	AttributeKeyHeight,
}

// QueryEventKeys returns the attribute keys of a query_request event in wire order.
func QueryEventKeys() []string {
	return append([]string(nil), queryEventKeys...)
}

// ScopedKey returns the key under which a block-level event map lists the attribute, e.g.
// "query_request.chain_id".
func ScopedKey(eventType, key string) string {
	return eventType + "." + key
}

// EncodeQueryEvent converts e into a query_request ABCI event. Attribute order is fixed.
func EncodeQueryEvent(e QueryEvent) abci.Event {
	values := map[string]string{
		AttributeKeyModule:       e.Module,
		AttributeKeyAction:       e.Action,
		AttributeKeyQueryID:      e.QueryID,
		AttributeKeyChainID:      e.ChainID,
		AttributeKeyConnectionID: e.ConnectionID,
		AttributeKeyQueryType:    e.QueryType,
		AttributeKeyRequest:      e.Request,
		AttributeKeyHeight:       strconv.FormatUint(e.Height, 10),
	}

	attrs := make([]abci.EventAttribute, 0, len(queryEventKeys))
	for _, key := range queryEventKeys {
		attrs = append(attrs, abci.EventAttribute{Key: key, Value: values[key], Index: true})
	}

	return abci.Event{Type: EventTypeQueryRequest, Attributes: attrs}
}

// DecodeQueryEvent decodes a query_request event from its attributes. For every key the first
// matching attribute is used.
func DecodeQueryEvent(attrs []abci.EventAttribute) (QueryEvent, error) {
	return decodeQueryEvent(func(key string) (string, error) {
		return findAttribute(attrs, key)
	})
}

// ExtractQueryEvent decodes a query_request event out of a block-level event map, where every
// key is scoped with the event type and may be listed several times. The first value wins.
func ExtractQueryEvent(events map[string][]string) (QueryEvent, error) {
	return decodeQueryEvent(func(key string) (string, error) {
		scoped := ScopedKey(EventTypeQueryRequest, key)
		values, ok := events[scoped]
		if !ok || len(values) == 0 {
			return "", ErrParse.Wrapf("no values for %s", scoped)
		}

		return values[0], nil
	})
}

func decodeQueryEvent(lookup func(key string) (string, error)) (QueryEvent, error) {
	raw := make(map[string]string, len(queryEventKeys))
	for _, key := range queryEventKeys {
		value, err := lookup(key)
		if err != nil {
			return QueryEvent{}, err
		}
		raw[key] = value
	}

	if err := validateChainID(raw[AttributeKeyChainID]); err != nil {
		return QueryEvent{}, err
	}

	if err := host.ConnectionIdentifierValidator(raw[AttributeKeyConnectionID]); err != nil {
		return QueryEvent{}, ErrMalformedIdentifier.Wrapf("connection id %q: %s", raw[AttributeKeyConnectionID], err)
	}

	if err := validateQueryType(raw[AttributeKeyQueryType]); err != nil {
		return QueryEvent{}, err
	}

	height, err := ParseHeight(raw[AttributeKeyHeight])
	if err != nil {
		return QueryEvent{}, err
	}

	return QueryEvent{
		Module:       raw[AttributeKeyModule],
		Action:       raw[AttributeKeyAction],
		QueryID:      raw[AttributeKeyQueryID],
		ChainID:      raw[AttributeKeyChainID],
		ConnectionID: raw[AttributeKeyConnectionID],
		QueryType:    raw[AttributeKeyQueryType],
		Height:       height,
		Request:      raw[AttributeKeyRequest],
	}, nil
}

func findAttribute(attrs []abci.EventAttribute, key string) (string, error) {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Value, nil
		}
	}

	return "", ErrAttributeMissing.Wrap(key)
}

func validateChainID(chainID string) error {
	if chainID == "" || strings.ContainsAny(chainID, " \t\r\n") {
		return ErrMalformedIdentifier.Wrapf("chain id %q", chainID)
	}

	return nil
}

func validateQueryType(queryType string) error {
	if queryType == "" || strings.ContainsAny(queryType, " \t\r\n") {
		return ErrMalformedQueryType.Wrapf("%q", queryType)
	}

	return nil
}
