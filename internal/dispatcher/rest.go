package dispatcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/neutron-org/cross-chain-query-relayer/internal/icq"
	"github.com/neutron-org/cross-chain-query-relayer/internal/metrics"
)

// BlockHeightHeader pins a cosmos REST query to the state at the given height.
const BlockHeightHeader = "x-cosmos-block-height"

const restQueryMethod = "rest_query"

// RESTDispatcher answers cross-chain queries with height-pinned GET requests to the queried
// chain's REST endpoint.
type RESTDispatcher struct {
	base   *url.URL
	client *http.Client
	logger *zap.Logger
}

// NewRESTDispatcher returns a dispatcher resolving relative query paths against restAddr. An
// empty restAddr only allows absolute query paths.
func NewRESTDispatcher(restAddr string, timeout time.Duration, logger *zap.Logger) (*RESTDispatcher, error) {
	var base *url.URL
	if restAddr != "" {
		u, err := url.Parse(restAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rest address %s: %w", restAddr, err)
		}
		if !u.IsAbs() {
			return nil, fmt.Errorf("rest address %s must be absolute", restAddr)
		}
		base = u
	}

	return &RESTDispatcher{
		base:   base,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}, nil
}

// Dispatch answers req. It never fails: every failure is folded into a failure response.
func (d *RESTDispatcher) Dispatch(ctx context.Context, req icq.QueryRequest) icq.QueryResponse {
	start := time.Now()

	if !req.HasPath() {
		d.logger.Debug("query path could not be decoded, answering with failure",
			zap.String("query_id", req.ID))
		metrics.AddFailedRequest(restQueryMethod, time.Since(start).Seconds())
		return icq.NewFailureResponse(req, "")
	}

	body, err := d.get(ctx, req)
	if err != nil {
		d.logger.Info("query dispatch failed",
			zap.String("query_id", req.ID),
			zap.String("path", req.Path),
			zap.String("height", req.Height),
			zap.Error(err))
		metrics.AddFailedRequest(restQueryMethod, time.Since(start).Seconds())
		return icq.NewFailureResponse(req, err.Error())
	}

	metrics.AddSuccessRequest(restQueryMethod, time.Since(start).Seconds())
	return icq.NewSuccessResponse(req, body)
}

// DispatchAll answers every request in order. All requests must share one height; a batch
// mixing heights is rejected before any query is made.
func (d *RESTDispatcher) DispatchAll(ctx context.Context, requests []icq.QueryRequest) ([]icq.QueryResponse, error) {
	for _, req := range requests {
		if req.Height != requests[0].Height {
			return nil, icq.ErrMixedHeights.Wrapf("query %s at %s, query %s at %s",
				requests[0].ID, requests[0].Height, req.ID, req.Height)
		}
	}

	responses := make([]icq.QueryResponse, 0, len(requests))
	for _, req := range requests {
		resp := d.Dispatch(ctx, req)
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("dispatch of query %s interrupted: %w", req.ID, err)
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

func (d *RESTDispatcher) get(ctx context.Context, req icq.QueryRequest) (string, error) {
	target, err := d.resolve(req.Path)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build http request: %w", err)
	}
	httpReq.Header.Set(BlockHeightHeader, req.Height)

	res, err := d.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		d.logger.Debug("rest query answered with non-OK status",
			zap.String("query_id", req.ID),
			zap.Int("status", res.StatusCode))
	}

	return string(body), nil
}

func (d *RESTDispatcher) resolve(path string) (string, error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse query path: %w", err)
	}
	if u.IsAbs() {
		return u.String(), nil
	}
	if d.base == nil {
		return "", fmt.Errorf("relative query path %s without a rest address", path)
	}

	target := *d.base
	target.Path = strings.TrimRight(d.base.Path, "/") + "/" + strings.TrimLeft(u.Path, "/")
	target.RawPath = ""
	target.RawQuery = u.RawQuery

	return target.String(), nil
}
