package logstore

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks operational statistics for the log service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// RPC-level counters
	Appends   prometheus.Counter // entries accepted by the Log RPC
	Retrieves prometheus.Counter // RetrieveLogs calls served
	Streams   prometheus.Counter // StreamLogs subscriptions opened

	// Committer counters
	Commits          prometheus.Counter   // successful commit batches
	CommitErrors     prometheus.Counter   // failed commit attempts
	CommittedEntries prometheus.Counter   // entries made durable
	BatchSize        prometheus.Histogram // entries per commit batch

	// Stream progress
	StreamSends prometheus.Counter // entries pushed to subscribers

	// Queue depth at the last observation
	QueueDepth prometheus.Gauge
}

// NewMetrics creates a metrics instance and registers its collectors with
// reg. Pass nil to keep the collectors unregistered (tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Appends: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logstore",
			Name:      "appends_total",
			Help:      "Entries accepted into the uncommitted queue.",
		}),
		Retrieves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logstore",
			Name:      "retrieves_total",
			Help:      "RetrieveLogs calls served.",
		}),
		Streams: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logstore",
			Name:      "streams_total",
			Help:      "StreamLogs subscriptions opened.",
		}),
		Commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logstore",
			Name:      "commits_total",
			Help:      "Commit batches flushed to disk.",
		}),
		CommitErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logstore",
			Name:      "commit_errors_total",
			Help:      "Commit attempts that failed.",
		}),
		CommittedEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logstore",
			Name:      "committed_entries_total",
			Help:      "Entries made durable.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "logstore",
			Name:      "commit_batch_size",
			Help:      "Entries per commit batch.",
			Buckets:   prometheus.LinearBuckets(1, 1, MaxCommitBatch),
		}),
		StreamSends: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logstore",
			Name:      "stream_sends_total",
			Help:      "Entries pushed to stream subscribers.",
		}),
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "logstore",
			Name:      "queue_depth",
			Help:      "Uncommitted queue depth at the last observation.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.Appends, m.Retrieves, m.Streams,
			m.Commits, m.CommitErrors, m.CommittedEntries, m.BatchSize,
			m.StreamSends, m.QueueDepth,
		)
	}
	return m
}

// ObserveAppend records one accepted entry and the resulting queue depth
func (m *Metrics) ObserveAppend(queueDepth int) {
	if m == nil {
		return
	}
	m.Appends.Inc()
	m.QueueDepth.Set(float64(queueDepth))
}

// ObserveCommit records the outcome of one commit attempt
func (m *Metrics) ObserveCommit(entries int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.CommitErrors.Inc()
		return
	}
	m.Commits.Inc()
	m.CommittedEntries.Add(float64(entries))
	m.BatchSize.Observe(float64(entries))
}

// ObserveRetrieve records one RetrieveLogs call
func (m *Metrics) ObserveRetrieve() {
	if m == nil {
		return
	}
	m.Retrieves.Inc()
}

// ObserveStreamOpen records one StreamLogs subscription
func (m *Metrics) ObserveStreamOpen() {
	if m == nil {
		return
	}
	m.Streams.Inc()
}

// ObserveStreamSend records one entry pushed to a subscriber
func (m *Metrics) ObserveStreamSend() {
	if m == nil {
		return
	}
	m.StreamSends.Inc()
}
