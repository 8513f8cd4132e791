package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHEET_TAB", "")
	t.Setenv("CACHE_TTL_SECONDS", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Sheet.Tab != "data" {
		t.Fatalf("expected default tab data, got %q", cfg.Sheet.Tab)
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Fatalf("expected default TTL 30s, got %v", cfg.Cache.TTL)
	}
}

func TestLoadTTLOverride(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "120")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Cache.TTL != 2*time.Minute {
		t.Fatalf("expected 2m TTL, got %v", cfg.Cache.TTL)
	}
}

func TestLoadTTLRejectsGarbage(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected an error for a non-integer TTL")
	}
}
