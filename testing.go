package logstore

import (
	"context"
	"io"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	api "github.com/ehrlich-b/logstore/api/v1"
)

// FakeLogClient provides an in-process implementation of api.LogClient for
// testing cache nodes without a running log service. It tracks method calls
// for verification.
type FakeLogClient struct {
	mu      sync.Mutex
	entries [][]byte

	logCalls      int
	retrieveCalls int
	streamCalls   int

	logErr error // injected Log failure, if any
}

var _ api.LogClient = (*FakeLogClient)(nil)

// NewFakeLogClient creates a fake log client pre-populated with the given
// committed entries.
func NewFakeLogClient(entries ...[]byte) *FakeLogClient {
	f := &FakeLogClient{}
	for _, e := range entries {
		p := make([]byte, len(e))
		copy(p, e)
		f.entries = append(f.entries, p)
	}
	return f
}

// FailLogWith makes subsequent Log calls return err
func (f *FakeLogClient) FailLogWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logErr = err
}

// Log implements api.LogClient
func (f *FakeLogClient) Log(ctx context.Context, in *api.LogEntry, opts ...grpc.CallOption) (*api.LogAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logCalls++
	if f.logErr != nil {
		return nil, f.logErr
	}
	p := make([]byte, len(in.GetEntry()))
	copy(p, in.GetEntry())
	f.entries = append(f.entries, p)
	return &api.LogAck{}, nil
}

// RetrieveLogs implements api.LogClient
func (f *FakeLogClient) RetrieveLogs(ctx context.Context, in *api.RetrieveRequest, opts ...grpc.CallOption) (*api.LogEntries, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.retrieveCalls++
	out := &api.LogEntries{Entries: make([][]byte, len(f.entries))}
	copy(out.Entries, f.entries)
	return out, nil
}

// StreamLogs implements api.LogClient. The returned stream yields the
// entries committed at call time and then io.EOF.
func (f *FakeLogClient) StreamLogs(ctx context.Context, in *api.StreamRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[api.LogEntry], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.streamCalls++
	entries := make([][]byte, len(f.entries))
	copy(entries, f.entries)
	return &fakeLogStream{ctx: ctx, entries: entries}, nil
}

// Entries returns a copy of the entries logged so far
func (f *FakeLogClient) Entries() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.entries))
	copy(out, f.entries)
	return out
}

// LogCalls returns how many times Log was invoked
func (f *FakeLogClient) LogCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logCalls
}

// RetrieveCalls returns how many times RetrieveLogs was invoked
func (f *FakeLogClient) RetrieveCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.retrieveCalls
}

// StreamCalls returns how many times StreamLogs was invoked
func (f *FakeLogClient) StreamCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.streamCalls
}

// fakeLogStream replays a snapshot of entries and then reports io.EOF
type fakeLogStream struct {
	ctx     context.Context
	entries [][]byte
	next    int
}

func (s *fakeLogStream) Recv() (*api.LogEntry, error) {
	if err := s.ctx.Err(); err != nil {
		return nil, err
	}
	if s.next >= len(s.entries) {
		return nil, io.EOF
	}
	e := s.entries[s.next]
	s.next++
	return &api.LogEntry{Entry: e}, nil
}

func (s *fakeLogStream) Header() (metadata.MD, error) { return nil, nil }
func (s *fakeLogStream) Trailer() metadata.MD         { return nil }
func (s *fakeLogStream) CloseSend() error             { return nil }
func (s *fakeLogStream) Context() context.Context     { return s.ctx }
func (s *fakeLogStream) SendMsg(m any) error          { return nil }

func (s *fakeLogStream) RecvMsg(m any) error {
	entry, err := s.Recv()
	if err != nil {
		return err
	}
	if out, ok := m.(*api.LogEntry); ok {
		out.Entry = entry.Entry
	}
	return nil
}
