package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"binscan/internal/catalog"
)

type countingFetcher struct {
	calls int
}

func (f *countingFetcher) FetchRows(context.Context) ([][]string, error) {
	f.calls++
	return [][]string{
		{"Import Date", "Description", "Item Number", "UPC Number", "Category", "Retail Per Unit"},
		{"2026-08-01", "Cordless Drill", "100-001", "019396850255", "TOOLS", "$89.99"},
	}, nil
}

func TestRunLookupRejectsBadTypeBeforeFetching(t *testing.T) {
	fetcher := &countingFetcher{}
	cache := catalog.NewCache(fetcher, time.Minute)

	err := runLookup(cache, "bogus", "12345", false)
	if err == nil {
		t.Fatal("expected an error for an unknown lookup type")
	}
	if !strings.Contains(err.Error(), "upc or item") {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 0 {
		t.Fatalf("bad type should be rejected before any fetch, got %d fetches", fetcher.calls)
	}
}

func TestRunLookupFetchesForValidType(t *testing.T) {
	fetcher := &countingFetcher{}
	cache := catalog.NewCache(fetcher, time.Minute)

	if err := runLookup(cache, "upc", "193968502553", false); err != nil {
		t.Fatalf("runLookup: %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected exactly one fetch, got %d", fetcher.calls)
	}
}
