// Package server exposes a wal.Store over gRPC and runs the background
// committer that moves queued entries to disk.
package server

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/ehrlich-b/logstore"
	api "github.com/ehrlich-b/logstore/api/v1"
	"github.com/ehrlich-b/logstore/internal/wal"
)

// Server implements the Log RPC surface. Acknowledgement of Log is
// queue-level: the entry is durable only once the committer flushes it.
type Server struct {
	api.UnimplementedLogServer

	store   *wal.Store
	logger  *zap.Logger
	metrics *logstore.Metrics
	notify  chan struct{}
}

// New creates a log server around store. metrics may be nil.
func New(store *wal.Store, logger *zap.Logger, metrics *logstore.Metrics) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		store:   store,
		logger:  logger,
		metrics: metrics,
		notify:  make(chan struct{}, 1),
	}
}

// Notify returns the edge the committer drains on. The channel carries at
// most one pending signal; coalescing is fine because the committer drains
// the whole queue per wakeup.
func (s *Server) Notify() <-chan struct{} {
	return s.notify
}

// Register registers the Log service on g
func (s *Server) Register(g *grpc.Server) {
	api.RegisterLogServer(g, s)
}

// Log implements api.LogServer
func (s *Server) Log(ctx context.Context, in *api.LogEntry) (*api.LogAck, error) {
	s.store.Append(in.GetEntry())
	s.metrics.ObserveAppend(s.store.UncommittedCount())
	s.logger.Debug("entry queued", zap.Int("bytes", len(in.GetEntry())))

	select {
	case s.notify <- struct{}{}:
	default:
	}
	return &api.LogAck{}, nil
}

// RetrieveLogs implements api.LogServer
func (s *Server) RetrieveLogs(ctx context.Context, in *api.RetrieveRequest) (*api.LogEntries, error) {
	entries, err := s.store.ReadAll()
	if err != nil {
		return nil, logstore.ToStatus(err)
	}
	s.metrics.ObserveRetrieve()
	return &api.LogEntries{Entries: entries}, nil
}

// StreamLogs implements api.LogServer. A producer task probes the index
// from zero and pushes entries into a bounded channel; the stream closes
// once the probe runs past the committed count. The stream does not tail
// entries committed after its probe passes the end.
func (s *Server) StreamLogs(in *api.StreamRequest, stream grpc.ServerStreamingServer[api.LogEntry]) error {
	s.metrics.ObserveStreamOpen()

	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	type result struct {
		entry []byte
		err   error
	}
	ch := make(chan result, logstore.StreamBufferSize)

	go func() {
		defer close(ch)
		for idx := 0; ; idx++ {
			entry, err := s.store.Get(idx)
			if err != nil {
				if errors.Is(err, wal.ErrOutOfRange) {
					return
				}
				select {
				case ch <- result{err: err}:
				case <-ctx.Done():
				}
				return
			}
			select {
			case ch <- result{entry: entry}:
			case <-ctx.Done():
				return
			}
		}
	}()

	for r := range ch {
		if r.err != nil {
			return logstore.ToStatus(r.err)
		}
		if err := stream.Send(&api.LogEntry{Entry: r.entry}); err != nil {
			// Subscriber is gone; the deferred cancel unblocks the producer.
			return err
		}
		s.metrics.ObserveStreamSend()
	}
	return nil
}
