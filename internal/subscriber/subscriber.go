package subscriber

import (
	"context"
	"fmt"
	"time"

	abci "github.com/cometbft/cometbft/abci/types"
	ctypes "github.com/cometbft/cometbft/rpc/core/types"
	"github.com/cometbft/cometbft/types"
	"go.uber.org/zap"

	"github.com/neutron-org/cross-chain-query-relayer/internal/icq"
	"github.com/neutron-org/cross-chain-query-relayer/internal/metrics"
	"github.com/neutron-org/cross-chain-query-relayer/internal/registry"
	"github.com/neutron-org/cross-chain-query-relayer/internal/worker"
)

var (
	unsubscribeTimeout = time.Second * 5
	// number of recent transactions remembered to drop deliveries repeated across subscriptions
	seenTxsCapacity = 1000
)

// Config contains configurable values for subscriber.
type Config struct {
	// ConnectionID is the querying chain's connection to the queried chain.
	ConnectionID string
	// QueriedChainID is the chain id of the chain the queries are dispatched to.
	QueriedChainID string
	// Registry is the watch list. Queries not matching it are never relayed.
	Registry *registry.Registry
}

// NewSubscriber creates a new Subscriber instance ready to subscribe on the querying chain's
// cross-chain query events.
func NewSubscriber(cfg *Config, rpcClient RpcHttpClient, logger *zap.Logger) (*Subscriber, error) {
	if err := rpcClient.Start(); err != nil {
		return nil, fmt.Errorf("could not start tendermint rpcClient: %w", err)
	}

	return &Subscriber{
		rpcClient:      rpcClient,
		connectionID:   cfg.ConnectionID,
		queriedChainID: cfg.QueriedChainID,
		registry:       cfg.Registry,
		seenTxs:        newTxSet(seenTxsCapacity),
		logger:         logger,
	}, nil
}

// Subscriber is responsible for subscribing on the querying chain's cross-chain query events.
// It filters incoming transactions in accordance with the target connection, the queried chain
// and the Registry configuration, and feeds the matching events to the worker as commands.
type Subscriber struct {
	rpcClient RpcHttpClient // Used to subscribe to events

	connectionID   string
	queriedChainID string
	registry       *registry.Registry
	seenTxs        *txSet
	logger         *zap.Logger
}

// Subscribe blocks until ctx is done or a subscription channel gets closed. Every observed
// transaction carrying relevant events becomes a worker.EventsCmd sent to cmds.
func (s *Subscriber) Subscribe(ctx context.Context, cmds chan<- worker.Command) error {
	requestEvents, err := s.rpcClient.Subscribe(ctx, s.subscriberName(), s.subscribeQueryRequests())
	if err != nil {
		return fmt.Errorf("could not subscribe to query request events: %w", err)
	}

	packetEvents, err := s.rpcClient.Subscribe(ctx, s.subscriberName(), s.subscribeQueryPackets())
	if err != nil {
		return fmt.Errorf("could not subscribe to query packet events: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			s.unsubscribe()
			return nil
		case event, ok := <-requestEvents:
			if !ok {
				return fmt.Errorf("query request events channel closed")
			}
			s.processEvent(ctx, event, cmds)
		case event, ok := <-packetEvents:
			if !ok {
				return fmt.Errorf("query packet events channel closed")
			}
			s.processEvent(ctx, event, cmds)
		}
	}
}

func (s *Subscriber) unsubscribe() {
	ctx, cancel := context.WithTimeout(context.Background(), unsubscribeTimeout)
	defer cancel()

	if err := s.rpcClient.Unsubscribe(ctx, s.subscriberName(), s.subscribeQueryRequests()); err != nil {
		s.logger.Error("failed to Unsubscribe from tm events",
			zap.Error(err), zap.String("query", s.subscribeQueryRequests()))
	}

	if err := s.rpcClient.Unsubscribe(ctx, s.subscriberName(), s.subscribeQueryPackets()); err != nil {
		s.logger.Error("failed to Unsubscribe from tm events",
			zap.Error(err), zap.String("query", s.subscribeQueryPackets()))
	}
}

func (s *Subscriber) processEvent(ctx context.Context, event ctypes.ResultEvent, cmds chan<- worker.Command) {
	data, ok := event.Data.(types.EventDataTx)
	if !ok {
		s.logger.Debug("skipping event with unexpected data", zap.String("type", fmt.Sprintf("%T", event.Data)))
		return
	}

	// a transaction matching both subscriptions is delivered on each of them
	txKey := fmt.Sprintf("%d/%d/%X", data.Height, data.Index, types.Tx(data.Tx).Hash())
	if !s.seenTxs.add(txKey) {
		s.logger.Debug("skipping already processed transaction", zap.String("tx", txKey))
		return
	}

	if qe, err := icq.ExtractQueryEvent(event.Events); err == nil {
		s.logger.Debug("observed cross-chain query",
			zap.String("query_id", qe.QueryID),
			zap.String("chain_id", qe.ChainID),
			zap.Uint64("height", qe.Height),
		)
	}

	events := s.filterEvents(data.Result.Events)
	if len(events) == 0 {
		return
	}

	cmd := worker.EventsCmd{Height: data.Height, Events: events}
	select {
	case cmds <- cmd:
		metrics.SetCommandQueueNumElements(len(cmds))
	case <-ctx.Done():
	}
}

// filterEvents keeps the cross-chain query events targeting the subscriber's queried chain and
// watched by the registry. Events failing to decode are passed through, the worker skips them.
func (s *Subscriber) filterEvents(events []abci.Event) []abci.Event {
	var out []abci.Event
	for _, event := range events {
		switch event.Type {
		case icq.EventTypeQueryRequest:
			qe, err := icq.DecodeQueryEvent(event.Attributes)
			if err != nil {
				out = append(out, event)
				continue
			}
			if qe.ConnectionID != s.connectionID || qe.ChainID != s.queriedChainID {
				continue
			}
			if !s.registry.IsWatched("", qe.QueryID) {
				continue
			}
			out = append(out, event)
		case icq.EventTypeCrossChainQuery:
			packet, err := icq.DecodeQueryPacket(event.Attributes)
			if err != nil {
				out = append(out, event)
				continue
			}
			if packet.ChainID != s.queriedChainID {
				continue
			}
			if !s.registry.IsWatched(packet.Sender, packet.ID) {
				s.logger.Debug("skipping unwatched query",
					zap.String("query_id", packet.ID), zap.String("sender", packet.Sender))
				continue
			}
			out = append(out, event)
		}
	}
	return out
}

// subscriberName returns the subscriber name.
// Note: it doesn't matter what we return here because Tendermint will override it with
// remote IP anyway.
func (s *Subscriber) subscriberName() string {
	return s.queriedChainID + "-rpcClient"
}

// subscribeQueryRequests returns a query to filter out query_request events sent over the
// target connection.
func (s *Subscriber) subscribeQueryRequests() string {
	return fmt.Sprintf("%s='%s' AND %s='%s'",
		eventAttr, types.EventTx,
		requestConnectionIdAttr, s.connectionID,
	)
}

// subscribeQueryPackets returns a query to filter out cross_chain_query events addressed to
// the queried chain.
func (s *Subscriber) subscribeQueryPackets() string {
	return fmt.Sprintf("%s='%s' AND %s='%s'",
		eventAttr, types.EventTx,
		packetChainIdAttr, s.queriedChainID,
	)
}

// txSet remembers the last capacity keys added to it.
type txSet struct {
	capacity int
	keys     map[string]struct{}
	order    []string
}

func newTxSet(capacity int) *txSet {
	return &txSet{capacity: capacity, keys: make(map[string]struct{}, capacity)}
}

// add returns false if key is already in the set.
func (s *txSet) add(key string) bool {
	if _, ok := s.keys[key]; ok {
		return false
	}
	if len(s.order) == s.capacity {
		delete(s.keys, s.order[0])
		s.order = s.order[1:]
	}
	s.keys[key] = struct{}{}
	s.order = append(s.order, key)
	return true
}
