// Command cached runs a cache node: it replays the log service's entries
// into an in-memory map, then serves an interactive command loop.
//
// A case-insensitive MASTER argument selects the primary role; otherwise
// the node is a read-only replica.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ehrlich-b/logstore"
	api "github.com/ehrlich-b/logstore/api/v1"
	"github.com/ehrlich-b/logstore/internal/cache"
	"github.com/ehrlich-b/logstore/internal/logging"
	"github.com/ehrlich-b/logstore/internal/shell"
)

func main() {
	var (
		logAddr = flag.String("log-addr", logstore.DefaultAddr, "Address of the log service")
		verbose = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	logConfig := logging.DefaultConfig()
	if *verbose {
		logConfig.Level = zapcore.DebugLevel
	}
	logger := logging.NewLogger(logConfig)
	logging.SetDefault(logger)
	defer logger.Sync()

	role := cache.ParseRole(flag.Args())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := cache.Dial(ctx, *logAddr, cache.DialConfig{}, logger)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		os.Exit(1)
	}
	defer conn.Close()

	store, err := cache.New(ctx, api.NewLogClient(conn), logger)
	if err != nil {
		logger.Error("replay failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("cache ready",
		zap.String("role", role.String()),
		zap.Int("keys", store.Len()))

	if err := shell.New(store, role, os.Stdout).Run(ctx); err != nil {
		logger.Error("shell failed", zap.Error(err))
		os.Exit(1)
	}
}
