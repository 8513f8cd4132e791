package catalog

import "strings"

// NormalizeUPC reduces a scanned or hand-typed barcode to the 11-digit core
// used as the catalog key. Scanners disagree about check digits and leading
// zeros, so everything funnels through one canonical form:
//
//	12 digits (UPC-A)  -> drop the trailing check digit
//	13 digits (EAN-13) -> strip leading zeros, then drop the check digit if
//	                      12 remain
//	11 digits          -> already a core, unchanged
//
// Any other digit count is not a barcode we can resolve and returns ok=false.
// The function is pure; callers turn a false into a validation error.
//
// A 12-digit UPC-A that starts with 0 keeps that zero in its core, while
// stored catalog UPCs strip all leading zeros (see ParseRows). Such items
// intentionally resolve by item number, not by scan; only EAN-13 padding
// zeros are stripped here.
func NormalizeUPC(input string) (string, bool) {
	digits := digitsOnly(input)

	if len(digits) == 13 {
		digits = strings.TrimLeft(digits, "0")
	}

	switch len(digits) {
	case 12:
		return digits[:11], true
	case 11:
		return digits, true
	}
	return "", false
}

// digitsOnly strips everything that isn't 0-9.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
