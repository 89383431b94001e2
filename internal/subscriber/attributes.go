package subscriber

import (
	"github.com/cometbft/cometbft/types"

	"github.com/neutron-org/cross-chain-query-relayer/internal/icq"
)

// types of keys for building subscription queries
var (
	// eventAttr is the key of the tendermint's event attribute that contains the kind of event.
	eventAttr = types.EventTypeKey

	// requestConnectionIdAttr is the key of the query_request event's attribute that contains
	// the querying chain's connection to the queried chain.
	requestConnectionIdAttr = icq.ScopedKey(icq.EventTypeQueryRequest, icq.AttributeKeyConnectionID)
	// packetChainIdAttr is the key of the cross_chain_query event's attribute that contains the
	// queried chain's id.
	packetChainIdAttr = icq.ScopedKey(icq.EventTypeCrossChainQuery, icq.AttributeKeyChainID)
)
