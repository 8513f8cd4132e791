package sheets

import (
	"context"
	"testing"

	"binscan/internal/catalog"
)

func TestMockManifestParses(t *testing.T) {
	raw, err := Mock{}.FetchRows(context.Background())
	if err != nil {
		t.Fatalf("mock fetch returned error: %v", err)
	}

	rows := catalog.ParseRows(raw)
	if len(rows) != len(raw)-1 {
		t.Fatalf("every mock data row should survive parsing, got %d of %d", len(rows), len(raw)-1)
	}

	// the canned drill is scannable end to end
	core, ok := catalog.NormalizeUPC("193968502553")
	if !ok {
		t.Fatalf("normalize failed")
	}
	if _, ok := catalog.FindByUPC(rows, core); !ok {
		t.Fatalf("expected mock manifest to contain UPC core %s", core)
	}
}
