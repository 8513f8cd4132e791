package catalog

import "strings"

// columnSpec maps one semantic field to the header names it may appear under.
// Candidates are tried in order, case-insensitively, against a trimmed header
// cell. If none match, the fallback positional index is used so a sheet with
// a missing or renamed header row still parses.
type columnSpec struct {
	candidates []string
	fallback   int
}

// columnMap lists every column the parser extracts. Sheets exported from the
// liquidator's portal have drifted over the years, hence the synonyms.
var columnMap = struct {
	importDate  columnSpec
	description columnSpec
	itemNumber  columnSpec
	upcNumber   columnSpec
	category    columnSpec
	retail      columnSpec
}{
	importDate:  columnSpec{candidates: []string{"import date", "date"}, fallback: 0},
	description: columnSpec{candidates: []string{"description", "item description"}, fallback: 1},
	itemNumber:  columnSpec{candidates: []string{"item number", "item #", "item"}, fallback: 2},
	upcNumber:   columnSpec{candidates: []string{"upc number", "upc", "upc #"}, fallback: 3},
	category:    columnSpec{candidates: []string{"category description", "category"}, fallback: 4},
	retail: columnSpec{
		candidates: []string{"retail per unit", "retail/unit", "unit retail", "retail price", "retail"},
		fallback:   5,
	},
}

// columnIndexes holds the resolved position of each field for one sheet.
// Resolved once per parse, not per row.
type columnIndexes struct {
	importDate  int
	description int
	itemNumber  int
	upcNumber   int
	category    int
	retail      int
}

func resolveColumns(header []string) columnIndexes {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	find := func(spec columnSpec) int {
		for _, want := range spec.candidates {
			for i, h := range normalized {
				if h == want {
					return i
				}
			}
		}
		return spec.fallback
	}

	return columnIndexes{
		importDate:  find(columnMap.importDate),
		description: find(columnMap.description),
		itemNumber:  find(columnMap.itemNumber),
		upcNumber:   find(columnMap.upcNumber),
		category:    find(columnMap.category),
		retail:      find(columnMap.retail),
	}
}

// cell returns row[i] or "" when the row is too short. Sheets trim trailing
// empty cells, so short rows are normal, not an error.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
