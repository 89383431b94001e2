package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	sdk "github.com/cosmos/cosmos-sdk/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	tmclient "github.com/cosmos/ibc-go/v8/modules/light-clients/07-tendermint"
	"github.com/cosmos/relayer/v2/relayer/chains/cosmos"
	"go.uber.org/zap"

	"github.com/neutron-org/cross-chain-query-relayer/internal/worker"
)

// latestClientStateHeight makes QueryClientState read the latest committed state.
const latestClientStateHeight = 0

// heightPollDelay is how often the counterparty height is checked while waiting for a target.
var heightPollDelay = time.Second

// ClientFinder resolves light clients between the chains it knows about.
type ClientFinder struct {
	hosts          map[string]ClientHost
	counterparties map[string]HeaderSource
	targetWait     time.Duration
	logger         *zap.Logger
}

// NewClientFinder creates a ClientFinder. targetWait bounds how long an update waits for the
// counterparty to produce the target block.
func NewClientFinder(hosts []ClientHost, counterparties []HeaderSource, targetWait time.Duration, logger *zap.Logger) *ClientFinder {
	f := &ClientFinder{
		hosts:          make(map[string]ClientHost, len(hosts)),
		counterparties: make(map[string]HeaderSource, len(counterparties)),
		targetWait:     targetWait,
		logger:         logger,
	}
	for _, h := range hosts {
		f.hosts[h.ChainId()] = h
	}
	for _, c := range counterparties {
		f.counterparties[c.ChainId()] = c
	}
	return f
}

// Find returns the tendermint client clientID hosted on hostChainID, after checking that it
// tracks counterpartyChainID.
func (f *ClientFinder) Find(ctx context.Context, hostChainID, counterpartyChainID, clientID string) (worker.ForeignClient, error) {
	host, ok := f.hosts[hostChainID]
	if !ok {
		return nil, fmt.Errorf("unknown host chain %s", hostChainID)
	}
	counterparty, ok := f.counterparties[counterpartyChainID]
	if !ok {
		return nil, fmt.Errorf("unknown counterparty chain %s", counterpartyChainID)
	}

	clientState, err := queryTendermintClientState(ctx, host, clientID)
	if err != nil {
		return nil, err
	}
	if clientState.ChainId != counterpartyChainID {
		return nil, fmt.Errorf("client %s on %s tracks %s, not %s", clientID, hostChainID, clientState.ChainId, counterpartyChainID)
	}

	return &TendermintClient{
		clientID:     clientID,
		host:         host,
		counterparty: counterparty,
		targetWait:   f.targetWait,
		logger:       f.logger.With(zap.String("client_id", clientID), zap.String("host_chain_id", hostChainID)),
	}, nil
}

// TendermintClient is a 07-tendermint light client of counterparty hosted on host.
type TendermintClient struct {
	clientID     string
	host         ClientHost
	counterparty HeaderSource
	targetWait   time.Duration
	logger       *zap.Logger
}

func (c *TendermintClient) ClientID() string {
	return c.clientID
}

// BuildUpdateClientMsgs returns a MsgUpdateClient moving the client to target. No messages are
// returned when the client is already at or past target.
//
// The update is trusted from the client's latest height: the trusted validators are taken
// from the counterparty header at trustedHeight+1, the NextValidators committed to by the
// trusted header.
func (c *TendermintClient) BuildUpdateClientMsgs(ctx context.Context, target clienttypes.Height) ([]sdk.Msg, error) {
	if revision := clienttypes.ParseChainID(c.counterparty.ChainId()); target.RevisionNumber != revision {
		return nil, fmt.Errorf("target %s is not in the current revision %d of %s", target, revision, c.counterparty.ChainId())
	}

	clientState, err := queryTendermintClientState(ctx, c.host, c.clientID)
	if err != nil {
		return nil, err
	}
	trustedHeight := clientState.LatestHeight
	if trustedHeight.GTE(target) {
		c.logger.Debug("client is already past the target height",
			zap.String("trusted_height", trustedHeight.String()),
			zap.String("target_height", target.String()))
		return nil, nil
	}

	if err := c.waitForHeight(ctx, int64(target.RevisionHeight)); err != nil {
		return nil, err
	}

	latestHeader, err := c.counterparty.QueryIBCHeader(ctx, int64(target.RevisionHeight))
	if err != nil {
		return nil, fmt.Errorf("failed to get header at %d: %w", target.RevisionHeight, err)
	}

	trustedHeader, err := c.counterparty.QueryIBCHeader(ctx, int64(trustedHeight.RevisionHeight)+1)
	if err != nil {
		return nil, fmt.Errorf("failed to get trusted header at %d, please ensure it has not been pruned by the connected node: %w",
			trustedHeight.RevisionHeight+1, err)
	}

	header, err := c.counterparty.MsgUpdateClientHeader(latestHeader, trustedHeight, trustedHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to build update header: %w", err)
	}

	relayerMsg, err := c.host.MsgUpdateClient(c.clientID, header)
	if err != nil {
		return nil, fmt.Errorf("failed to build MsgUpdateClient: %w", err)
	}

	msg := cosmos.CosmosMsg(relayerMsg)
	if msg == nil {
		return nil, fmt.Errorf("unexpected update client message of type %T", relayerMsg)
	}

	c.logger.Debug("built client update",
		zap.String("trusted_height", trustedHeight.String()),
		zap.String("target_height", target.String()))

	return []sdk.Msg{msg}, nil
}

// waitForHeight blocks until the counterparty has produced the block at height or targetWait
// runs out.
func (c *TendermintClient) waitForHeight(ctx context.Context, height int64) error {
	attempts := uint(c.targetWait/heightPollDelay) + 1
	return retry.Do(func() error {
		latest, err := c.counterparty.QueryLatestHeight(ctx)
		if err != nil {
			return err
		}
		if latest < height {
			return fmt.Errorf("%s is at height %d, waiting for %d", c.counterparty.ChainId(), latest, height)
		}
		return nil
	},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(heightPollDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
}

func queryTendermintClientState(ctx context.Context, host ClientHost, clientID string) (*tmclient.ClientState, error) {
	clientState, err := host.QueryClientState(ctx, latestClientStateHeight, clientID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch client state for ClientId=%s: %w", clientID, err)
	}

	tmClientState, ok := clientState.(*tmclient.ClientState)
	if !ok {
		return nil, fmt.Errorf("expected client state of type *tmclient.ClientState, got %T", clientState)
	}

	return tmClientState, nil
}
