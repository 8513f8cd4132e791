// Package logsink is a buffered JSONL slog handler writing to a local file.
// Records are queued on a channel and flushed on a ticker so request
// handling never blocks on disk.
package logsink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Config struct {
	Path       string
	FlushEvery time.Duration // default 2s
}

func (c Config) Enabled() bool { return c.Path != "" }

type Handler struct {
	cfg    Config
	file   *os.File
	ch     chan []byte
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	ticker *time.Ticker
}

func New(ctx context.Context, cfg Config) (*Handler, error) {
	if cfg.Path == "" {
		return nil, errors.New("log file path is required")
	}
	if cfg.FlushEvery <= 0 {
		cfg.FlushEvery = 2 * time.Second
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	h := &Handler{
		cfg:    cfg,
		file:   f,
		ch:     make(chan []byte, 1024),
		ctx:    ctx,
		cancel: cancel,
		ticker: time.NewTicker(cfg.FlushEvery),
	}
	h.wg.Add(1)
	go h.loop()
	return h, nil
}

// Close flushes and stops the writer. The channel is never closed; loggers
// on other goroutines may still be mid-Handle, and cancellation alone is
// enough to unblock them.
func (h *Handler) Close() error {
	h.cancel()
	h.wg.Wait()
	h.ticker.Stop()
	return h.file.Close()
}

// slog.Handler

func (h *Handler) Enabled(context.Context, slog.Level) bool { return true } // ignore levels

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	ev := make(map[string]any, r.NumAttrs()+3)
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	ev["ts"] = ts.UTC().Format(time.RFC3339Nano)
	ev["level"] = r.Level.String()
	ev["msg"] = r.Message

	r.Attrs(func(a slog.Attr) bool {
		a.Value = a.Value.Resolve()
		if a.Value.Kind() == slog.KindGroup {
			m := map[string]any{}
			// only goes one level deep
			for _, aa := range a.Value.Group() {
				aa.Value = aa.Value.Resolve()
				m[aa.Key] = aa.Value.Any()
			}
			ev[a.Key] = m
		} else {
			ev[a.Key] = a.Value.Any()
		}
		return true
	})

	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ev); err != nil {
		return err
	}

	if h.ctx.Err() != nil {
		return h.ctx.Err()
	}
	select {
	case h.ch <- append([]byte{}, b.Bytes()...):
		return nil
	case <-h.ctx.Done():
		return h.ctx.Err()
	}
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &withAttrs{Handler: h, attrs: attrs}
}

func (h *Handler) WithGroup(string) slog.Handler { return h } // no-op for simplicity

func (h *Handler) loop() {
	defer h.wg.Done()
	var buf []byte
	flush := func() {
		if len(buf) == 0 {
			return
		}
		_, _ = h.file.Write(buf)
		buf = buf[:0]
	}

	for {
		select {
		case <-h.ctx.Done():
			// take whatever was queued before shutdown
			for {
				select {
				case line := <-h.ch:
					buf = append(buf, line...)
				default:
					flush()
					return
				}
			}
		case line := <-h.ch:
			buf = append(buf, line...)
		case <-h.ticker.C:
			flush()
		}
	}
}

type withAttrs struct {
	slog.Handler
	attrs []slog.Attr
}

func (w *withAttrs) Handle(ctx context.Context, r slog.Record) error {
	r2 := r
	for _, a := range w.attrs {
		r2.AddAttrs(a)
	}
	return w.Handler.Handle(ctx, r2)
}
