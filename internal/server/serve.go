package server

import (
	"context"
	"errors"
	"net"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/ehrlich-b/logstore"
	"github.com/ehrlich-b/logstore/internal/wal"
)

// Config configures a log service instance
type Config struct {
	Addr    string            // bind address, default logstore.DefaultAddr
	Dir     string            // log directory, default logstore.DefaultDir
	Logger  *zap.Logger       // default nop
	Metrics *logstore.Metrics // may be nil
}

func (c *Config) withDefaults() {
	if c.Addr == "" {
		c.Addr = logstore.DefaultAddr
	}
	if c.Dir == "" {
		c.Dir = logstore.DefaultDir
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// ListenAndServe opens the store, binds the gRPC listener, and runs the
// server together with the background committer until ctx is canceled.
func ListenAndServe(ctx context.Context, cfg Config) error {
	cfg.withDefaults()

	store, err := wal.Open(cfg.Dir, cfg.Logger)
	if err != nil {
		return err
	}
	defer store.Close()

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return logstore.ConfigError("LISTEN", err.Error())
	}

	srv := New(store, cfg.Logger, cfg.Metrics)
	grpcServer := grpc.NewServer()
	srv.Register(grpcServer)

	committer := NewCommitter(store, srv.Notify(), cfg.Logger, cfg.Metrics)

	cfg.Logger.Info("log service listening",
		zap.String("addr", lis.Addr().String()),
		zap.String("dir", cfg.Dir),
		zap.Int("committed", store.CommittedCount()))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return committer.Run(ctx)
	})
	g.Go(func() error {
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		<-ctx.Done()
		grpcServer.GracefulStop()
		return nil
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return err
}
