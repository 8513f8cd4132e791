package catalog

import (
	"strings"

	"github.com/samber/lo"
)

// Row is one parsed catalog entry. Immutable once parsed; all fields are kept
// as the sheet's raw text except UPCNumber, which is stored digits-only with
// leading zeros stripped so it compares directly against NormalizeUPC output.
type Row struct {
	ImportDate    string
	Description   string
	ItemNumber    string
	UPCNumber     string
	Category      string
	RetailPerUnit string
}

// ParseRows converts raw sheet cells into catalog rows. raw[0] is the header
// row used to resolve column positions; the rest are data. Rows carrying
// neither an item number nor a UPC are dropped: they are separator or note
// lines, not inventory.
func ParseRows(raw [][]string) []Row {
	if len(raw) == 0 {
		return nil
	}
	cols := resolveColumns(raw[0])

	return lo.FilterMap(raw[1:], func(rec []string, _ int) (Row, bool) {
		item := strings.TrimSpace(cell(rec, cols.itemNumber))
		upcRaw := strings.TrimSpace(cell(rec, cols.upcNumber))
		if item == "" && upcRaw == "" {
			return Row{}, false
		}

		return Row{
			ImportDate:    strings.TrimSpace(cell(rec, cols.importDate)),
			Description:   strings.TrimSpace(cell(rec, cols.description)),
			ItemNumber:    item,
			UPCNumber:     strings.TrimLeft(digitsOnly(upcRaw), "0"),
			Category:      strings.TrimSpace(cell(rec, cols.category)),
			RetailPerUnit: strings.TrimSpace(cell(rec, cols.retail)),
		}, true
	})
}
