package icq

import (
	"fmt"
	"strings"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	ics23 "github.com/cosmos/ics23/go"
	"google.golang.org/protobuf/encoding/protowire"
)

// DefaultResultMsgTypeURL is the type url the result submission message is packed with unless
// configured otherwise.
const DefaultResultMsgTypeURL = "/ibc.applications.ibc_query.v1.MsgSubmitCrossChainQueryResult"

// field numbers of MsgSubmitCrossChainQueryResult
const (
	fieldID          protowire.Number = 1
	fieldQueryHeight protowire.Number = 2
	fieldResult      protowire.Number = 3
	fieldData        protowire.Number = 4
	fieldSender      protowire.Number = 5
	fieldProofSpecs  protowire.Number = 6
)

// MsgSubmitCrossChainQueryResult submits the result of a cross-chain query to the querying chain.
// Proof specs are never filled by the relayer: the result is verified against the light client
// update sent in the same transaction.
type MsgSubmitCrossChainQueryResult struct {
	ID          string
	QueryHeight uint64
	Result      ResultCode
	Data        []byte
	Sender      string
	ProofSpecs  []*ics23.ProofSpec

	typeURL string
}

// NewMsgSubmitCrossChainQueryResult builds the submission message for resp, signed by signer and
// packed under typeURL. An empty typeURL selects DefaultResultMsgTypeURL.
func NewMsgSubmitCrossChainQueryResult(resp QueryResponse, signer, typeURL string) (*MsgSubmitCrossChainQueryResult, error) {
	height, err := ParseHeight(resp.Height)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", resp.ID, err)
	}

	if typeURL == "" {
		typeURL = DefaultResultMsgTypeURL
	}

	return &MsgSubmitCrossChainQueryResult{
		ID:          resp.ID,
		QueryHeight: height,
		Result:      resp.Result,
		Data:        []byte(resp.Data),
		Sender:      signer,
		ProofSpecs:  []*ics23.ProofSpec{},
		typeURL:     typeURL,
	}, nil
}

// TypeURL returns the url the message is packed with.
func (m *MsgSubmitCrossChainQueryResult) TypeURL() string {
	if m.typeURL == "" {
		return DefaultResultMsgTypeURL
	}

	return m.typeURL
}

func (m *MsgSubmitCrossChainQueryResult) Reset() {
	*m = MsgSubmitCrossChainQueryResult{typeURL: m.typeURL}
}

func (m *MsgSubmitCrossChainQueryResult) String() string {
	return fmt.Sprintf("id: %s, query_height: %d, result: %s, data: %q, sender: %s",
		m.ID, m.QueryHeight, m.Result, m.Data, m.Sender)
}

func (*MsgSubmitCrossChainQueryResult) ProtoMessage() {}

func (m *MsgSubmitCrossChainQueryResult) XXX_MessageName() string {
	return strings.TrimPrefix(m.TypeURL(), "/")
}

// ValidateBasic performs stateless checks of the message.
func (m *MsgSubmitCrossChainQueryResult) ValidateBasic() error {
	if m.ID == "" {
		return ErrAttributeMissing.Wrap(AttributeKeyQueryID)
	}
	if m.Sender == "" {
		return ErrSigner.Wrap("empty sender")
	}
	if m.Result != ResultSuccess && m.Result != ResultFailure {
		return fmt.Errorf("invalid result code %d", m.Result)
	}

	return nil
}

// Marshal encodes the message in protobuf wire format. Default values are omitted.
func (m *MsgSubmitCrossChainQueryResult) Marshal() ([]byte, error) {
	var b []byte
	if m.ID != "" {
		b = protowire.AppendTag(b, fieldID, protowire.BytesType)
		b = protowire.AppendString(b, m.ID)
	}
	if m.QueryHeight != 0 {
		b = protowire.AppendTag(b, fieldQueryHeight, protowire.VarintType)
		b = protowire.AppendVarint(b, m.QueryHeight)
	}
	if m.Result != 0 {
		b = protowire.AppendTag(b, fieldResult, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.Result))
	}
	if len(m.Data) > 0 {
		b = protowire.AppendTag(b, fieldData, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Data)
	}
	if m.Sender != "" {
		b = protowire.AppendTag(b, fieldSender, protowire.BytesType)
		b = protowire.AppendString(b, m.Sender)
	}
	for _, spec := range m.ProofSpecs {
		bz, err := spec.Marshal()
		if err != nil {
			return nil, fmt.Errorf("failed to marshal proof spec: %w", err)
		}
		b = protowire.AppendTag(b, fieldProofSpecs, protowire.BytesType)
		b = protowire.AppendBytes(b, bz)
	}

	return b, nil
}

// Unmarshal decodes the protobuf wire format produced by Marshal. Unknown fields are skipped.
func (m *MsgSubmitCrossChainQueryResult) Unmarshal(b []byte) error {
	m.Reset()
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == fieldID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.ID, b = v, b[n:]
		case num == fieldQueryHeight && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.QueryHeight, b = v, b[n:]
		case num == fieldResult && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Result, b = ResultCode(v), b[n:]
		case num == fieldData && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Data, b = append([]byte(nil), v...), b[n:]
		case num == fieldSender && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Sender, b = v, b[n:]
		case num == fieldProofSpecs && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			spec := &ics23.ProofSpec{}
			if err := spec.Unmarshal(v); err != nil {
				return fmt.Errorf("failed to unmarshal proof spec: %w", err)
			}
			m.ProofSpecs, b = append(m.ProofSpecs, spec), b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}

	return nil
}

// ToAny packs the message into the envelope submitted to the querying chain.
func (m *MsgSubmitCrossChainQueryResult) ToAny() (*codectypes.Any, error) {
	bz, err := m.Marshal()
	if err != nil {
		return nil, err
	}

	return &codectypes.Any{TypeUrl: m.TypeURL(), Value: bz}, nil
}
