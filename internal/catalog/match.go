package catalog

// FindByUPC returns the first row whose stored UPC equals the given 11-digit
// core. Exact equality only; the catalog is small enough that a linear scan
// beats maintaining an index across snapshot replacements.
func FindByUPC(rows []Row, core string) (Row, bool) {
	for _, row := range rows {
		if row.UPCNumber == core {
			return row, true
		}
	}
	return Row{}, false
}

// FindByItem returns the first row whose item number matches the query after
// both sides are reduced to digits. Item numbers show up with dashes and
// spaces depending on who typed them into the sheet.
func FindByItem(rows []Row, query string) (Row, bool) {
	want := digitsOnly(query)
	if want == "" {
		return Row{}, false
	}
	for _, row := range rows {
		if digitsOnly(row.ItemNumber) == want {
			return row, true
		}
	}
	return Row{}, false
}
