package lookup

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"binscan/internal/catalog"
	"binscan/internal/pricing"
)

// Result is the per-request view of one matched row with derived pricing.
// Built per lookup, discarded after the response.
type Result struct {
	Description  string  `json:"description"`
	ItemNumber   string  `json:"itemNumber"`
	Category     string  `json:"category"`
	Retail       float64 `json:"retail"`
	Tier1        int64   `json:"tier1"`
	Tier2        int64   `json:"tier2"`
	ApparelPrice *int64  `json:"apparelPrice,omitempty"`
	UPCNumber    string  `json:"upcNumber"`
	RetailRaw    string  `json:"retailRaw"`
}

type response struct {
	OK       bool           `json:"ok"`
	Found    *bool          `json:"found,omitempty"`
	Searched string         `json:"searched,omitempty"`
	Result   *Result        `json:"result,omitempty"`
	Error    string         `json:"error,omitempty"`
	Debug    map[string]any `json:"debug,omitempty"`
}

// NewResult derives the response view for one matched row. The CLI one-shot
// mode prints it directly.
func NewResult(row catalog.Row) *Result {
	tiers := pricing.DeriveTiers(row.RetailPerUnit, row.Category)
	return &Result{
		Description:  row.Description,
		ItemNumber:   row.ItemNumber,
		Category:     row.Category,
		Retail:       tiers.Retail.Dollars(),
		Tier1:        tiers.Tier1,
		Tier2:        tiers.Tier2,
		ApparelPrice: tiers.Apparel,
		UPCNumber:    row.UPCNumber,
		RetailRaw:    row.RetailPerUnit,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{OK: false, Error: message})
}
