package cache

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ehrlich-b/logstore"
)

// DialConfig shapes the startup connection loop
type DialConfig struct {
	Attempts int           // default logstore.DefaultConnectAttempts
	Pause    time.Duration // base pause between attempts, default logstore.DefaultConnectPause
}

func (c *DialConfig) withDefaults() {
	if c.Attempts <= 0 {
		c.Attempts = logstore.DefaultConnectAttempts
	}
	if c.Pause <= 0 {
		c.Pause = logstore.DefaultConnectPause
	}
}

// Dial connects to the log service, retrying with jittered pauses. The wait
// between attempts is cancellable through ctx. After the final failure it
// returns an internal error.
func Dial(ctx context.Context, addr string, cfg DialConfig, logger *zap.Logger) (*grpc.ClientConn, error) {
	cfg.withDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err == nil {
			probeCtx, cancel := context.WithTimeout(ctx, cfg.Pause)
			ready := waitReady(probeCtx, conn)
			cancel()
			if ready {
				return conn, nil
			}
			conn.Close()
		}

		if attempt == cfg.Attempts {
			break
		}
		pause := cfg.Pause + jitter(cfg.Pause)
		logger.Warn("connection to log storage failed; retrying",
			zap.String("addr", addr),
			zap.Int("attempt", attempt),
			zap.Duration("pause", pause))
		select {
		case <-ctx.Done():
			return nil, logstore.NewError("DIAL", logstore.ErrCodeAbort, ctx.Err().Error())
		case <-time.After(pause):
		}
	}

	return nil, logstore.InternalError("DIAL", "Log client: connection to log store failed")
}

// waitReady forces a connection attempt and blocks until the conn is ready
// or ctx expires
func waitReady(ctx context.Context, conn *grpc.ClientConn) bool {
	conn.Connect()
	for {
		s := conn.GetState()
		if s == connectivity.Ready {
			return true
		}
		if !conn.WaitForStateChange(ctx, s) {
			return false
		}
	}
}

// jitter returns a random duration in [0, base/5)
func jitter(base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(base / 5)))
}
