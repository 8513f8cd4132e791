package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"

	"binscan/internal/catalog"
	"binscan/internal/config"
	"binscan/internal/logsink"
	"binscan/internal/lookup"
	"binscan/internal/sheets"
)

func main() {
	var serve bool
	var addr string
	var query string
	var mode string
	var refresh bool
	var help bool

	flag.BoolVar(&serve, "serve", false, "Run HTTP server mode")
	flag.StringVar(&addr, "addr", ":8080", "Address to bind in server mode")
	flag.StringVar(&query, "q", "", "One-shot lookup: scanned barcode or item number")
	flag.StringVar(&mode, "type", "upc", "Lookup type: upc or item")
	flag.BoolVar(&refresh, "refresh", false, "Bypass the catalog cache")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&help, "h", false, "Show help message")
	flag.Parse()

	if help {
		showHelp()
		return
	}

	// .env is for development; production sets variables directly.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if sinkCfg := (logsink.Config{Path: cfg.Log.File}); sinkCfg.Enabled() {
		sink := lo.Must(logsink.New(context.Background(), sinkCfg))
		defer sink.Close()
		slog.SetDefault(slog.New(sink))
	}

	cache, err := buildCache(cfg)
	if err != nil {
		log.Fatalf("failed to build catalog cache: %v", err)
	}

	if serve {
		if err := runServer(cache, addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	if query == "" {
		fmt.Println("Error: provide -q to look up a code (or use -serve for server mode)")
		showHelp()
		os.Exit(1)
	}

	if err := runLookup(cache, mode, query, refresh); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func buildCache(cfg *config.Config) (*catalog.Cache, error) {
	var fetcher catalog.Fetcher
	if cfg.Mocks.Enable {
		slog.Info("serving mock catalog, no sheet will be contacted")
		fetcher = sheets.Mock{}
	} else {
		client, err := sheets.NewFromConfig(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		fetcher = client
	}
	return catalog.NewCache(fetcher, cfg.Cache.TTL), nil
}

func runServer(cache *catalog.Cache, addr string) error {
	mux := http.NewServeMux()

	lookup.NewHandler(cache).Register(mux)

	ro := &readyOnce{}
	ro.Add(cache)
	mux.Handle("/ready", ro)
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    addr,
		Handler: WithMiddleware(mux),
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Serving binscan", "address", addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		slog.Info("Shutdown signal received", "signal", sig)
		// kubernetes gives 30 seconds of grace; leave some slack
		ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}

func runLookup(cache *catalog.Cache, mode, query string, refresh bool) error {
	ctx := context.Background()

	// Reject bad input before touching the sheet; a typo'd flag should not
	// cost a fetch.
	if mode != "upc" && mode != "item" {
		return fmt.Errorf("type must be upc or item, got %q", mode)
	}

	searched := query
	if mode == "upc" {
		core, ok := catalog.NormalizeUPC(query)
		if !ok {
			return fmt.Errorf("not a recognizable UPC: %s", query)
		}
		searched = core
	}

	rows, err := cache.GetRows(ctx, refresh)
	if err != nil {
		return err
	}

	var row catalog.Row
	var found bool
	if mode == "upc" {
		row, found = catalog.FindByUPC(rows, searched)
	} else {
		row, found = catalog.FindByItem(rows, searched)
	}

	if !found {
		fmt.Printf("no match for %s (searched %s across %d rows)\n", query, searched, len(rows))
		return nil
	}

	out := lo.Must(json.MarshalIndent(lookup.NewResult(row), "", "  "))
	fmt.Println(string(out))
	return nil
}

func showHelp() {
	fmt.Println("binscan - liquidation catalog lookup")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  binscan -q <code> [-type upc|item] [-refresh]")
	fmt.Println("  binscan -serve [-addr :8080]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -q        Scanned barcode or item number for a one-shot lookup")
	fmt.Println("  -type     Lookup type: upc (default) or item")
	fmt.Println("  -refresh  Bypass the catalog cache for this lookup")
	fmt.Println("  -serve    Run the HTTP server")
	fmt.Println("  -addr     Address to bind in server mode")
	fmt.Println("  -help, -h Show this help message")
}
