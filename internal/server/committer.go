package server

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ehrlich-b/logstore"
	"github.com/ehrlich-b/logstore/internal/wal"
)

const (
	commitBackoffInitial = 50 * time.Millisecond
	commitBackoffMax     = 5 * time.Second
)

// Committer is the background task that flushes the uncommitted queue to
// disk in bounded batches. It wakes on a notification edge from the Log
// handler and on a fallback ticker, and it retries failed commits with
// capped backoff instead of giving up.
type Committer struct {
	store    *wal.Store
	notify   <-chan struct{}
	logger   *zap.Logger
	metrics  *logstore.Metrics
	interval time.Duration
	maxBatch int
}

// NewCommitter creates a committer for store. notify is typically
// Server.Notify(); a nil channel degrades to ticker-only operation.
func NewCommitter(store *wal.Store, notify <-chan struct{}, logger *zap.Logger, metrics *logstore.Metrics) *Committer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Committer{
		store:    store,
		notify:   notify,
		logger:   logger,
		metrics:  metrics,
		interval: logstore.CommitInterval,
		maxBatch: logstore.MaxCommitBatch,
	}
}

// Run drains the queue until ctx is canceled. It always returns ctx.Err().
func (c *Committer) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Best-effort final drain so a clean shutdown does not strand
			// acknowledged entries in memory.
			flushCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			c.drain(flushCtx)
			cancel()
			return ctx.Err()
		case <-c.notify:
		case <-ticker.C:
		}
		c.drain(ctx)
	}
}

// drain commits batches until the queue is empty or ctx is canceled
func (c *Committer) drain(ctx context.Context) {
	backoff := commitBackoffInitial
	for {
		n := c.store.UncommittedCount()
		if n == 0 {
			return
		}
		if n > c.maxBatch {
			n = c.maxBatch
		}

		err := c.store.Commit(n)
		c.metrics.ObserveCommit(n, err)
		if err != nil {
			c.logger.Error("commit failed; retrying",
				zap.Int("entries", n),
				zap.Duration("backoff", backoff),
				zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > commitBackoffMax {
				backoff = commitBackoffMax
			}
			continue
		}

		backoff = commitBackoffInitial
		c.logger.Debug("batch committed",
			zap.Int("entries", n),
			zap.Int("committed_total", c.store.CommittedCount()))
	}
}
