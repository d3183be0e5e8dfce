package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mediateca/mediateca/internal/tv"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunner_StartsAndStops(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	runner := NewRunner(srv, nil, 0, testLogger())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx)
	}()

	// Give the listener time to start
	time.Sleep(50 * time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for runner to stop")
	}
}

func TestRunner_RefreshLoop(t *testing.T) {
	channelPath := filepath.Join(t.TempDir(), "channels.json")
	doc := `[{"name": "Canal Uno", "logo": "", "country": "ES", "streams": ["https://stream.example/uno.m3u8"]}]`
	require.NoError(t, os.WriteFile(channelPath, []byte(doc), 0o644))

	source := tv.NewSource(tv.NewFetcher(channelPath), testLogger())

	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	runner := NewRunner(srv, source, 20*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return len(source.List("")) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for runner to stop")
	}
}

func TestNewRunner_DefaultLogger(t *testing.T) {
	runner := NewRunner(&http.Server{}, nil, 0, nil)
	require.NotNil(t, runner)
	require.NotNil(t, runner.logger)
}
