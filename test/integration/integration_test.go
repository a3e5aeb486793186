//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	dynaport "github.com/travisjeffery/go-dynaport"

	api "github.com/ehrlich-b/logstore/api/v1"
	"github.com/ehrlich-b/logstore/internal/cache"
	"github.com/ehrlich-b/logstore/internal/server"
)

// startLogService runs a full log service on a free port and returns its
// address plus a stop function.
func startLogService(t *testing.T, dir string) (string, context.CancelFunc) {
	t.Helper()

	ports := dynaport.Get(1)
	addr := fmt.Sprintf("127.0.0.1:%d", ports[0])

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx, server.Config{
			Addr: addr,
			Dir:  dir,
		})
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("log service did not shut down")
		}
	})
	return addr, cancel
}

func dialCache(t *testing.T, ctx context.Context, addr string) api.LogClient {
	t.Helper()
	conn, err := cache.Dial(ctx, addr, cache.DialConfig{
		Attempts: 10,
		Pause:    200 * time.Millisecond,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return api.NewLogClient(conn)
}

func TestWriteThenReplayAcrossNodes(t *testing.T) {
	addr, _ := startLogService(t, t.TempDir())
	ctx := context.Background()

	client := dialCache(t, ctx, addr)
	primary, err := cache.New(ctx, client, nil)
	require.NoError(t, err)
	require.Equal(t, 0, primary.Len())

	_, _, err = primary.Set(ctx, []byte("k"), []byte("v"))
	require.NoError(t, err)
	_, _, err = primary.Delete(ctx, []byte("k"))
	require.NoError(t, err)
	_, _, err = primary.Set(ctx, []byte("k"), []byte("w"))
	require.NoError(t, err)

	// A fresh node replays whatever the committer has flushed so far; keep
	// replaying until the full history is durable.
	require.Eventually(t, func() bool {
		replica, err := cache.New(ctx, client, nil)
		if err != nil {
			return false
		}
		v, ok := replica.Get([]byte("k"))
		return ok && bytes.Equal(v, []byte("w")) && replica.Len() == 1
	}, 5*time.Second, 50*time.Millisecond)
}

func TestDurabilityAcrossServiceRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	addr, stop := startLogService(t, dir)
	client := dialCache(t, ctx, addr)

	primary, err := cache.New(ctx, client, nil)
	require.NoError(t, err)
	_, _, err = primary.Set(ctx, []byte("durable"), []byte("yes"))
	require.NoError(t, err)

	// Wait for the entry to land on disk before stopping the service.
	require.Eventually(t, func() bool {
		node, err := cache.New(ctx, client, nil)
		if err != nil {
			return false
		}
		_, ok := node.Get([]byte("durable"))
		return ok
	}, 5*time.Second, 50*time.Millisecond)
	stop()

	// Restart over the same directory; the rebuilt index must serve the
	// same history.
	addr2, _ := startLogService(t, dir)
	client2 := dialCache(t, ctx, addr2)

	replica, err := cache.New(ctx, client2, nil)
	require.NoError(t, err)
	v, ok := replica.Get([]byte("durable"))
	require.True(t, ok)
	require.Equal(t, []byte("yes"), v)
}

func TestReplicaSeesEmptyLog(t *testing.T) {
	addr, _ := startLogService(t, t.TempDir())
	ctx := context.Background()

	client := dialCache(t, ctx, addr)
	replica, err := cache.New(ctx, client, nil)
	require.NoError(t, err)
	require.Equal(t, 0, replica.Len())
}
