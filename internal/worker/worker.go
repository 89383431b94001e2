package worker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"go.uber.org/zap"

	"github.com/neutron-org/cross-chain-query-relayer/internal/icq"
	"github.com/neutron-org/cross-chain-query-relayer/internal/metrics"
	"github.com/neutron-org/cross-chain-query-relayer/internal/task"
)

// stages of a batch, used in logs, metrics and dropped response records
const (
	StageDispatch         = "dispatch"
	StageConnectionLookup = "connection_lookup"
	StageClientResolution = "client_resolution"
	StageTargetHeight     = "target_height"
	StageUpdateClient     = "update_client"
	StageSigner           = "signer"
	StageBuildResult      = "build_result"
	StageSubmission       = "submission"
)

// Config holds the parameters of a single worker.
type Config struct {
	// ConnectionID is the querying chain's connection to the queried chain.
	ConnectionID string
	// ResultMsgTypeURL is the type url result messages are submitted with.
	ResultMsgTypeURL string
	PollInterval     time.Duration
}

// Worker relays cross-chain queries from a querying chain to a queried chain and submits the
// results back together with an update of the queried chain's light client.
type Worker struct {
	cfg      Config
	querying QueryingChain
	queried  QueriedChain
	clients  ForeignClientFinder
	recorder DroppedResponsesRecorder
	cmds     <-chan Command
	logger   *zap.Logger
}

func NewWorker(
	cfg Config,
	querying QueryingChain,
	queried QueriedChain,
	clients ForeignClientFinder,
	recorder DroppedResponsesRecorder,
	cmds <-chan Command,
	logger *zap.Logger,
) *Worker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.ResultMsgTypeURL == "" {
		cfg.ResultMsgTypeURL = icq.DefaultResultMsgTypeURL
	}

	return &Worker{
		cfg:      cfg,
		querying: querying,
		queried:  queried,
		clients:  clients,
		recorder: recorder,
		cmds:     cmds,
		logger:   logger,
	}
}

// Name identifies the worker by its chains and connection.
func (w *Worker) Name() string {
	return fmt.Sprintf("cross_chain_query:%s:%s->%s", w.cfg.ConnectionID, w.querying.ChainID(), w.queried.ChainID())
}

// Spawn runs the worker as a background task ticking every PollInterval.
func (w *Worker) Spawn(ctx context.Context) *task.Handle {
	return task.Spawn(ctx, w.Name(), w.cfg.PollInterval, w.logger, w.Step)
}

// Step handles at most one pending command. It never blocks waiting for a command. The returned
// error is classified with task.Fatal or task.Ignore.
func (w *Worker) Step(ctx context.Context) error {
	select {
	case cmd := <-w.cmds:
		metrics.SetCommandQueueNumElements(len(w.cmds))
		return w.handle(ctx, cmd)
	default:
		return nil
	}
}

func (w *Worker) handle(ctx context.Context, cmd Command) error {
	eventsCmd, ok := cmd.(EventsCmd)
	if !ok {
		w.logger.Debug("ignoring unsupported command", zap.String("command", fmt.Sprintf("%T", cmd)))
		return nil
	}

	requests := icq.RequestsFromEvents(eventsCmd.Events)
	if skipped := len(eventsCmd.Events) - len(requests); skipped > 0 {
		metrics.AddSkippedEvents(skipped)
	}
	if len(requests) == 0 {
		return nil
	}

	w.logger.Debug("received cross-chain queries",
		zap.Int64("tx_height", eventsCmd.Height),
		zap.Strings("query_ids", icq.RequestIDs(requests)))

	var ignored []error
	batches := icq.GroupByHeight(requests)
	for i, batch := range batches {
		if ctx.Err() != nil {
			w.logger.Info("batch abandoned on shutdown", zap.Strings("query_ids", remainingIDs(batches[i:])))
			return nil
		}
		err := w.relay(ctx, batch)
		if err == nil {
			continue
		}
		if task.IsFatal(err) {
			metrics.IncWorkerFatalStops()
			if rest := batches[i+1:]; len(rest) > 0 {
				w.logger.Error("queries left unrelayed after fatal error",
					zap.Strings("query_ids", remainingIDs(rest)), zap.Error(err))
			}
			return err
		}
		ignored = append(ignored, err)
	}

	return task.Ignore(errors.Join(ignored...))
}

// relay handles requests sharing a single height.
func (w *Worker) relay(ctx context.Context, requests []icq.QueryRequest) error {
	logger := w.logger.With(
		zap.Strings("query_ids", icq.RequestIDs(requests)),
		zap.String("query_height", requests[0].Height),
	)

	start := time.Now()
	responses, err := w.queried.DispatchCrossChainQueries(ctx, requests)
	if err != nil {
		if ctx.Err() != nil {
			logger.Info("batch abandoned on shutdown", zap.String("stage", StageDispatch))
			return nil
		}
		err = fmt.Errorf("%w: %w", icq.ErrDispatch, err)
		logger.Warn("failed to dispatch cross-chain queries", zap.String("stage", StageDispatch), zap.Error(err))
		metrics.RecordFailedActionDuration(StageDispatch, time.Since(start).Seconds())
		w.drop(logger, StageDispatch, icq.DroppedRequests(requests, StageDispatch, err, time.Now()))
		return task.Ignore(err)
	}
	metrics.RecordActionDuration(StageDispatch, time.Since(start).Seconds())

	if len(responses) == 0 {
		return nil
	}

	start = time.Now()
	latest, err := w.querying.QueryLatestHeight(ctx)
	if err != nil {
		return w.fatal(ctx, logger, StageConnectionLookup, responses,
			fmt.Errorf("%w: failed to get latest height of %s: %w", icq.ErrConnectionLookup, w.querying.ChainID(), err))
	}

	conn, err := w.querying.QueryConnection(ctx, w.cfg.ConnectionID, latest)
	if err != nil {
		return w.fatal(ctx, logger, StageConnectionLookup, responses,
			fmt.Errorf("%w: connection %s at height %d: %w", icq.ErrConnectionLookup, w.cfg.ConnectionID, latest, err))
	}

	client, err := w.clients.Find(ctx, w.querying.ChainID(), w.queried.ChainID(), conn.ClientId)
	if err != nil {
		return w.fatal(ctx, logger, StageClientResolution, responses,
			fmt.Errorf("%w: client %s: %w", icq.ErrClientResolution, conn.ClientId, err))
	}
	metrics.RecordActionDuration(StageClientResolution, time.Since(start).Seconds())

	target, err := TargetHeight(w.queried.ChainID(), responses[0].Height)
	if err != nil {
		return w.fatal(ctx, logger, StageTargetHeight, responses, err)
	}

	start = time.Now()
	updateMsgs, err := client.BuildUpdateClientMsgs(ctx, target)
	if err != nil {
		return w.fatal(ctx, logger, StageUpdateClient, responses,
			fmt.Errorf("%w: client %s to %s: %w", icq.ErrUpdateClientBuild, client.ClientID(), target, err))
	}
	metrics.RecordActionDuration(StageUpdateClient, time.Since(start).Seconds())

	signer, err := w.querying.Signer()
	if err != nil {
		return w.fatal(ctx, logger, StageSigner, responses, fmt.Errorf("%w: %w", icq.ErrSigner, err))
	}

	msgs := make([]sdk.Msg, 0, len(updateMsgs)+len(responses))
	msgs = append(msgs, updateMsgs...)

	delivered := make([]icq.QueryResponse, 0, len(responses))
	for _, resp := range responses {
		msg, err := icq.NewMsgSubmitCrossChainQueryResult(resp, signer, w.cfg.ResultMsgTypeURL)
		if err != nil {
			logger.Error("failed to build query result message",
				zap.String("stage", StageBuildResult),
				zap.String("query_id", resp.ID),
				zap.Error(err))
			w.drop(logger, StageBuildResult, icq.DroppedResponses([]icq.QueryResponse{resp}, StageBuildResult, err, time.Now()))
			continue
		}
		msgs = append(msgs, msg)
		delivered = append(delivered, resp)
	}

	if len(delivered) == 0 {
		return task.Ignore(fmt.Errorf("no result messages built for queries %v", icq.QueryIDs(responses)))
	}

	start = time.Now()
	if err := w.querying.SubmitAndWaitAccepted(ctx, msgs); err != nil {
		if ctx.Err() != nil {
			logger.Info("batch abandoned on shutdown", zap.String("stage", StageSubmission), zap.Error(err))
			return nil
		}
		err = fmt.Errorf("%w: %w", icq.ErrSubmission, err)
		logger.Warn("failed to submit query results",
			zap.String("stage", StageSubmission),
			zap.Strings("submitted_query_ids", icq.QueryIDs(delivered)),
			zap.Error(err))
		metrics.IncFailedTxSubmit()
		metrics.RecordFailedActionDuration(StageSubmission, time.Since(start).Seconds())
		w.drop(logger, StageSubmission, icq.DroppedResponses(delivered, StageSubmission, err, time.Now()))
		return task.Ignore(err)
	}
	metrics.IncSuccessTxSubmit()
	metrics.RecordActionDuration(StageSubmission, time.Since(start).Seconds())

	logger.Info("query results submitted",
		zap.Strings("submitted_query_ids", icq.QueryIDs(delivered)),
		zap.String("client_id", client.ClientID()),
		zap.String("update_height", target.String()))

	return nil
}

// fatal stops the worker on err unless ctx is done, in which case the batch is abandoned.
func (w *Worker) fatal(ctx context.Context, logger *zap.Logger, stage string, responses []icq.QueryResponse, err error) error {
	if ctx.Err() != nil {
		logger.Info("batch abandoned on shutdown", zap.String("stage", stage), zap.Error(err))
		return nil
	}
	logger.Error("cross-chain query worker stopped", zap.String("stage", stage), zap.Error(err))
	w.drop(logger, stage, icq.DroppedResponses(responses, stage, err, time.Now()))
	return task.Fatal(err)
}

func (w *Worker) drop(logger *zap.Logger, stage string, dropped []icq.DroppedResponse) {
	metrics.AddDroppedResponses(stage, len(dropped))
	if err := w.recorder.SaveDroppedResponses(dropped); err != nil {
		logger.Error("failed to save dropped responses", zap.String("stage", stage), zap.Error(err))
	}
}

// TargetHeight returns the height the queried chain's light client has to be updated to for
// results queried at height: the header of the next block commits the state at height.
func TargetHeight(queriedChainID, height string) (clienttypes.Height, error) {
	h, err := icq.ParseHeight(height)
	if err != nil {
		return clienttypes.ZeroHeight(), err
	}

	if h == math.MaxInt64 {
		return clienttypes.ZeroHeight(), icq.ErrMalformedHeight.Wrapf("%d: no next block", h)
	}

	return clienttypes.NewHeight(clienttypes.ParseChainID(queriedChainID), h+1), nil
}

func remainingIDs(batches [][]icq.QueryRequest) []string {
	var ids []string
	for _, batch := range batches {
		ids = append(ids, icq.RequestIDs(batch)...)
	}
	return ids
}
