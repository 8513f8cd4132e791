package pricing

import "strings"

// Cents is a money amount in integer cents. All tier math is integral so the
// rounding rules hold exactly; float64 would miss exact halves like 15*0.70.
type Cents int64

// Dollars returns the amount as a float for JSON output. Safe for display:
// the value is two decimals by construction.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// ParseMoneyOrZero parses sheet money text ("$1,234.56", "17.5", " 8 ") into
// cents. Currency symbols, commas, and surrounding whitespace are ignored.
// Empty or non-numeric input yields 0: a blank retail cell prices the item
// at zero rather than failing the whole lookup. Fractions beyond the cent
// round half-up.
func ParseMoneyOrZero(raw string) Cents {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	whole, frac, _ := strings.Cut(s, ".")

	var dollars int64
	for _, r := range whole {
		if r < '0' || r > '9' {
			return 0
		}
		dollars = dollars*10 + int64(r-'0')
	}

	var cents int64
	if len(frac) > 0 {
		for _, r := range frac {
			if r < '0' || r > '9' {
				return 0
			}
		}
		cents = int64(frac[0]-'0') * 10
		if len(frac) >= 2 {
			cents += int64(frac[1] - '0')
		}
		if len(frac) >= 3 && frac[2] >= '5' {
			cents++
		}
	}

	return Cents(dollars*100 + cents)
}
