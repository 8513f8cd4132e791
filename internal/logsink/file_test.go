package logsink

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestConfigEnabled(t *testing.T) {
	if (Config{}).Enabled() {
		t.Fatal("empty path should not enable the sink")
	}
	if !(Config{Path: "/tmp/app.jsonl"}).Enabled() {
		t.Fatal("a configured path should enable the sink")
	}
}

func TestCloseFlushesQueuedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.jsonl")
	h, err := New(context.Background(), Config{Path: path, FlushEvery: time.Hour})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger := slog.New(h)
	logger.Info("scanned", "upc", "19396850255")
	logger.Info("matched", "item", "100002")

	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, `"msg":"scanned"`) || !strings.Contains(got, `"msg":"matched"`) {
		t.Fatalf("queued records should survive Close, got: %s", got)
	}
}

func TestHandleAfterCloseErrsWithoutPanic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.jsonl")
	h, err := New(context.Background(), Config{Path: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "late", 0)
	if err := h.Handle(context.Background(), r); err == nil {
		t.Fatal("Handle after Close should report the closed sink")
	}
}

func TestCloseRacesConcurrentHandlers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.jsonl")
	h, err := New(context.Background(), Config{Path: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger := slog.New(h)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				logger.Info("burst", "n", j)
			}
		}()
	}

	// closing mid-burst must not panic even while handlers are sending
	time.Sleep(time.Millisecond)
	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	wg.Wait()
}
