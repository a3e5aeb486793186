// Command logd runs the log service: a gRPC server over one append-only
// log file plus the background committer.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/ehrlich-b/logstore"
	"github.com/ehrlich-b/logstore/internal/logging"
	"github.com/ehrlich-b/logstore/internal/server"
)

func main() {
	var (
		addr        = flag.String("addr", logstore.DefaultAddr, "Bind address for the log service")
		dir         = flag.String("dir", logstore.DefaultDir, "Directory holding the log file")
		metricsAddr = flag.String("metrics-addr", "", "Optional bind address for Prometheus metrics")
		verbose     = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	logConfig := logging.DefaultConfig()
	if *verbose {
		logConfig.Level = zapcore.DebugLevel
	}
	logger := logging.NewLogger(logConfig)
	logging.SetDefault(logger)
	defer logger.Sync()

	registry := prometheus.NewRegistry()
	metrics := logstore.NewMetrics(registry)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx, server.Config{
			Addr:    *addr,
			Dir:     *dir,
			Logger:  logger,
			Metrics: metrics,
		})
	})

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: *metricsAddr, Handler: mux}

		g.Go(func() error {
			logger.Info("metrics listening", zap.String("addr", *metricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("log service failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("log service stopped")
}
