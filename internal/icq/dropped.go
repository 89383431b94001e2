package icq

import "time"

// DroppedResponse describes a query answer that never reached the querying chain. Dropped
// responses are kept for operators only; they are never resubmitted.
type DroppedResponse struct {
	QueryID string `json:"query_id"`
	Sender  string `json:"sender"`
	Height  string `json:"height"`
	// Result is zero when the query was dropped before it was answered.
	Result    ResultCode `json:"result"`
	Stage     string     `json:"stage"`
	Reason    string     `json:"reason"`
	DroppedAt time.Time  `json:"dropped_at"`
}

// DroppedRequests describes requests that were dropped at stage because of reason.
func DroppedRequests(requests []QueryRequest, stage string, reason error, at time.Time) []DroppedResponse {
	out := make([]DroppedResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, DroppedResponse{
			QueryID:   r.ID,
			Sender:    r.Sender,
			Height:    r.Height,
			Stage:     stage,
			Reason:    reason.Error(),
			DroppedAt: at,
		})
	}

	return out
}

// DroppedResponses describes answered queries that were dropped at stage because of reason.
func DroppedResponses(responses []QueryResponse, stage string, reason error, at time.Time) []DroppedResponse {
	out := make([]DroppedResponse, 0, len(responses))
	for _, r := range responses {
		out = append(out, DroppedResponse{
			QueryID:   r.ID,
			Sender:    r.Sender,
			Height:    r.Height,
			Result:    r.Result,
			Stage:     stage,
			Reason:    reason.Error(),
			DroppedAt: at,
		})
	}

	return out
}
