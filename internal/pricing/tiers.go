package pricing

import "strings"

// Tiers is the derived price view for one catalog row. Tier1 and Tier2 are
// whole currency units. Apparel is nil for non-apparel categories; the
// bracket genuinely does not apply, it is not zero.
type Tiers struct {
	Retail  Cents
	Tier1   int64
	Tier2   int64
	Apparel *int64
}

// apparelCategories is the closed set of category labels that get the fixed
// bracket price instead of percentage tiers alone. Matched after trimming
// and upper-casing; anything else is not apparel.
var apparelCategories = map[string]bool{
	"APPAREL":         true,
	"MENS APPAREL":    true,
	"WOMENS APPAREL":  true,
	"BOYS APPAREL":    true,
	"GIRLS APPAREL":   true,
	"INFANT APPAREL":  true,
	"APPAREL & SHOES": true,
}

// apparelBracket is a monotonic step table keyed by retail price. First
// threshold the retail fits under wins.
var apparelBracket = []struct {
	upTo  Cents
	price int64
}{
	{1599, 6},
	{2299, 8},
	{2799, 10},
	{3099, 12},
	{3699, 15},
	{4499, 20},
}

const apparelBracketMax = 25

// DeriveTiers computes the discount tiers for a row's raw retail text and
// category. Pure: same inputs always produce the same output.
//
// Tier1 is 70% of retail rounded half-up to whole units. Tier2 is 50% of
// retail rounded UP; the floor price never rounds down, even at exact
// halves.
func DeriveTiers(retailRaw, category string) Tiers {
	retail := ParseMoneyOrZero(retailRaw)

	t := Tiers{
		Retail: retail,
		Tier1:  roundHalfUpUnits(int64(retail) * 7, 1000),
		Tier2:  ceilUnits(int64(retail) * 5, 1000),
	}

	if apparelCategories[strings.ToUpper(strings.TrimSpace(category))] {
		price := int64(apparelBracketMax)
		for _, step := range apparelBracket {
			if retail <= step.upTo {
				price = step.price
				break
			}
		}
		t.Apparel = &price
	}
	return t
}

// roundHalfUpUnits divides n by div rounding half away from zero.
// n is non-negative here.
func roundHalfUpUnits(n, div int64) int64 {
	return (n + div/2) / div
}

// ceilUnits divides n by div rounding up.
func ceilUnits(n, div int64) int64 {
	return (n + div - 1) / div
}
