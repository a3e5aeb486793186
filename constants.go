package logstore

import "time"

// Service-wide defaults. Daemon flags override these.
const (
	// DefaultAddr is the log service bind and dial address.
	DefaultAddr = "[::1]:50001"

	// DefaultDir is the directory holding the log file.
	DefaultDir = "store/logs"

	// LogFileName is the name of the append-only file inside the log
	// directory.
	LogFileName = "log"

	// MaxCommitBatch bounds how many queued entries a single commit pass
	// flushes to disk.
	MaxCommitBatch = 5

	// StreamBufferSize is the capacity of the per-subscriber channel used by
	// StreamLogs. A full channel applies backpressure to the streamer.
	StreamBufferSize = 5

	// DefaultConnectAttempts and DefaultConnectPause shape the cache node's
	// startup dial loop.
	DefaultConnectAttempts = 5
	DefaultConnectPause    = 5 * time.Second

	// CommitInterval is the committer's fallback tick when no append
	// notification arrives.
	CommitInterval = 100 * time.Millisecond
)
