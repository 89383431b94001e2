package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelMethod = "method"
	labelType   = "type"
	labelStage  = "stage"
	typeSuccess = "success"
	typeFailed  = "failed"
)

var (
	queryResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "icq_query_responses",
		Help: "The total number of dispatched queries by result (counter)",
	}, []string{labelType})

	requestTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "icq_request_time",
		Help:    "A histogram of REST query durations",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30},
	}, []string{labelMethod, labelType})

	actionDurations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "icq_action_durations",
		Help:    "A histogram of worker stage durations",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30},
	}, []string{labelMethod, labelType})

	submittedTxCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "icq_submitted_txs",
		Help: "The total number of submitted result txs (counter)",
	}, []string{labelType})

	droppedResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "icq_dropped_responses",
		Help: "The total number of responses that were never delivered, by failing stage (counter)",
	}, []string{labelStage})

	droppedResponsesStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "icq_dropped_responses_stored",
		Help: "The total number of dropped responses in the storage",
	})

	skippedEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "icq_skipped_events",
		Help: "The total number of observed events that did not decode into a query request (counter)",
	})

	workerStops = promauto.NewCounter(prometheus.CounterOpts{
		Name: "icq_worker_fatal_stops",
		Help: "The total number of workers stopped by a fatal error (counter)",
	})

	commandQueueNumElements = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "icq_command_queue_num_elements",
		Help: "The total number of commands waiting in the worker's queue",
	})
)

// AddSuccessRequest records a REST query answered with a body.
func AddSuccessRequest(message string, dur float64) {
	queryResponses.With(prometheus.Labels{
		labelType: typeSuccess,
	}).Inc()
	requestTime.With(prometheus.Labels{
		labelMethod: message,
		labelType:   typeSuccess,
	}).Observe(dur)
}

// AddFailedRequest records a query answered with a failure response.
func AddFailedRequest(message string, dur float64) {
	queryResponses.With(prometheus.Labels{
		labelType: typeFailed,
	}).Inc()
	requestTime.With(prometheus.Labels{
		labelMethod: message,
		labelType:   typeFailed,
	}).Observe(dur)
}

func RecordActionDuration(action string, dur float64) {
	actionDurations.With(prometheus.Labels{
		labelMethod: action,
		labelType:   typeSuccess,
	}).Observe(dur)
}

func RecordFailedActionDuration(action string, dur float64) {
	actionDurations.With(prometheus.Labels{
		labelMethod: action,
		labelType:   typeFailed,
	}).Observe(dur)
}

func IncSuccessTxSubmit() {
	submittedTxCounter.With(prometheus.Labels{
		labelType: typeSuccess,
	}).Inc()
}

func IncFailedTxSubmit() {
	submittedTxCounter.With(prometheus.Labels{
		labelType: typeFailed,
	}).Inc()
}

func AddDroppedResponses(stage string, n int) {
	droppedResponses.With(prometheus.Labels{
		labelStage: stage,
	}).Add(float64(n))
}

func SetDroppedResponsesStored(size int) {
	droppedResponsesStored.Set(float64(size))
}

func AddSkippedEvents(n int) {
	skippedEvents.Add(float64(n))
}

func IncWorkerFatalStops() {
	workerStops.Inc()
}

func SetCommandQueueNumElements(numElements int) {
	commandQueueNumElements.Set(float64(numElements))
}
