package chain

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	conntypes "github.com/cosmos/ibc-go/v8/modules/core/03-connection/types"
	"github.com/cosmos/relayer/v2/relayer/provider"
	"github.com/cosmos/relayer/v2/relayer/chains/cosmos"
	"go.uber.org/zap"

	"github.com/neutron-org/cross-chain-query-relayer/internal/metrics"
)

const txInclusionAction = "tx_inclusion"

// QueryingChain is the chain the relayer watches for cross-chain queries and answers on.
type QueryingChain struct {
	provider QueryingProvider
	logger   *zap.Logger
}

func NewQueryingChain(prov QueryingProvider, logger *zap.Logger) *QueryingChain {
	return &QueryingChain{
		provider: prov,
		logger:   logger,
	}
}

func (c *QueryingChain) ChainID() string {
	return c.provider.ChainId()
}

func (c *QueryingChain) QueryLatestHeight(ctx context.Context) (int64, error) {
	return c.provider.QueryLatestHeight(ctx)
}

// QueryConnection returns the connection end with id connectionID as of height.
func (c *QueryingChain) QueryConnection(ctx context.Context, connectionID string, height int64) (*conntypes.ConnectionEnd, error) {
	res, err := c.provider.QueryConnection(ctx, height, connectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query connection %s: %w", connectionID, err)
	}
	if res.Connection == nil {
		return nil, fmt.Errorf("connection %s not found", connectionID)
	}
	return res.Connection, nil
}

// Signer returns the address of the provider's signing key.
func (c *QueryingChain) Signer() (string, error) {
	return c.provider.Address()
}

// SubmitAndWaitAccepted puts msgs into a single transaction and broadcasts it. It returns once
// the transaction is accepted into the mempool, the inclusion outcome is only logged.
func (c *QueryingChain) SubmitAndWaitAccepted(ctx context.Context, msgs []sdk.Msg) error {
	if len(msgs) == 0 {
		return fmt.Errorf("no messages to submit")
	}

	relayerMsgs := make([]provider.RelayerMessage, 0, len(msgs))
	for _, msg := range msgs {
		relayerMsgs = append(relayerMsgs, cosmos.CosmosMessage{Msg: msg})
	}

	start := time.Now()
	callbacks := []func(*provider.RelayerTxResponse, error){
		func(res *provider.RelayerTxResponse, err error) {
			c.onInclusion(start, len(msgs), res, err)
		},
	}
	if err := c.provider.SendMessagesToMempool(ctx, relayerMsgs, "", ctx, callbacks); err != nil {
		return fmt.Errorf("failed to send %d messages to %s mempool: %w", len(msgs), c.ChainID(), err)
	}

	return nil
}

func (c *QueryingChain) onInclusion(start time.Time, numMsgs int, res *provider.RelayerTxResponse, err error) {
	if err != nil {
		metrics.RecordFailedActionDuration(txInclusionAction, time.Since(start).Seconds())
		c.logger.Error("transaction was not included in a block", zap.Int("num_msgs", numMsgs), zap.Error(err))
		return
	}

	if res.Code != 0 {
		metrics.RecordFailedActionDuration(txInclusionAction, time.Since(start).Seconds())
		c.logger.Error("transaction failed",
			zap.String("tx_hash", res.TxHash),
			zap.Int64("height", res.Height),
			zap.String("codespace", res.Codespace),
			zap.Uint32("code", res.Code),
			zap.String("data", res.Data))
		return
	}

	metrics.RecordActionDuration(txInclusionAction, time.Since(start).Seconds())
	c.logger.Info("transaction included",
		zap.String("tx_hash", res.TxHash),
		zap.Int64("height", res.Height),
		zap.Int("num_msgs", numMsgs))
}
