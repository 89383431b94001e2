package icq

import (
	abci "github.com/cometbft/cometbft/abci/types"
)

var queryPacketKeys = []string{
	AttributeKeyChainID,
	AttributeKeyQueryID,
	AttributeKeySender,
	AttributeKeyPath,
	AttributeKeyHeight,
}

// EncodeQueryPacket converts p into a cross_chain_query ABCI event.
func EncodeQueryPacket(p QueryPacket) abci.Event {
	values := map[string]string{
		AttributeKeyChainID: p.ChainID,
		AttributeKeyQueryID: p.ID,
		AttributeKeySender:  p.Sender,
		AttributeKeyPath:    p.Path,
		AttributeKeyHeight:  p.Height,
	}

	attrs := make([]abci.EventAttribute, 0, len(queryPacketKeys))
	for _, key := range queryPacketKeys {
		attrs = append(attrs, abci.EventAttribute{Key: key, Value: values[key], Index: true})
	}

	return abci.Event{Type: EventTypeCrossChainQuery, Attributes: attrs}
}

// DecodeQueryPacket decodes a cross_chain_query event from its attributes. The path is kept
// encoded; the height must be a decimal unsigned integer.
func DecodeQueryPacket(attrs []abci.EventAttribute) (QueryPacket, error) {
	raw := make(map[string]string, len(queryPacketKeys))
	for _, key := range queryPacketKeys {
		value, err := findAttribute(attrs, key)
		if err != nil {
			return QueryPacket{}, err
		}
		raw[key] = value
	}

	if err := validateChainID(raw[AttributeKeyChainID]); err != nil {
		return QueryPacket{}, err
	}

	if _, err := ParseHeight(raw[AttributeKeyHeight]); err != nil {
		return QueryPacket{}, err
	}

	return QueryPacket{
		ChainID: raw[AttributeKeyChainID],
		ID:      raw[AttributeKeyQueryID],
		Sender:  raw[AttributeKeySender],
		Path:    raw[AttributeKeyPath],
		Height:  raw[AttributeKeyHeight],
	}, nil
}
