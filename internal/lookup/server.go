// Package lookup serves the point-of-sale lookup endpoint: scan or type a
// code, get back the catalog row and its discount tiers.
package lookup

import (
	"log/slog"
	"net/http"

	"binscan/internal/catalog"
)

type server struct {
	cache *catalog.Cache
}

// NewHandler returns the lookup server backed by the given catalog cache.
func NewHandler(cache *catalog.Cache) *server {
	return &server{cache: cache}
}

func (s *server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/lookup", s.handleLookup)
}

func (s *server) handleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	query := q.Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter q")
		return
	}

	mode := q.Get("type")
	if mode == "" {
		mode = "upc"
	}
	if mode != "upc" && mode != "item" {
		writeError(w, http.StatusBadRequest, "type must be upc or item")
		return
	}

	searched := query
	if mode == "upc" {
		core, ok := catalog.NormalizeUPC(query)
		if !ok {
			writeError(w, http.StatusBadRequest, "not a recognizable UPC: "+query)
			return
		}
		searched = core
	}

	forceRefresh := q.Has("refresh")
	rows, err := s.cache.GetRows(ctx, forceRefresh)
	if err != nil {
		// The only failure allowed to reach here is the upstream sheet;
		// keep the original message for diagnostics.
		slog.ErrorContext(ctx, "catalog fetch failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var (
		row   catalog.Row
		found bool
	)
	if mode == "upc" {
		row, found = catalog.FindByUPC(rows, searched)
	} else {
		row, found = catalog.FindByItem(rows, searched)
	}

	resp := response{OK: true, Found: &found, Searched: searched}
	if found {
		resp.Result = NewResult(row)
	} else if q.Has("debug") {
		resp.Debug = map[string]any{
			"rowCount": len(rows),
			"mode":     mode,
		}
		if age, ok := s.cache.Age(); ok {
			resp.Debug["snapshotAgeSeconds"] = age.Seconds()
		}
		slog.InfoContext(ctx, "lookup miss", "mode", mode, "searched", searched, "rows", len(rows))
	}
	writeJSON(w, http.StatusOK, resp)
}
