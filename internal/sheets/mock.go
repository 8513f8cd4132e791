package sheets

import "context"

// Mock serves a small canned manifest so the server runs without Google
// credentials. Enabled with MOCKS_ENABLE=true; the e2e tests lean on it.
type Mock struct{}

func (Mock) FetchRows(_ context.Context) ([][]string, error) {
	return [][]string{
		{"Import Date", "Description", "Item Number", "UPC Number", "Category Description", "Retail Per Unit"},
		{"2026-08-01", "Cordless Drill 20V", "100001", "019396850255", "TOOLS", "$89.99"},
		{"2026-08-01", "Mens Crewneck Tee 3pk", "100002", "085271234561", "MENS APPAREL", "$15.99"},
		{"2026-08-01", "Womens Rain Jacket", "100003", "085279876542", "WOMENS APPAREL", "$44.99"},
		{"2026-08-01", "Stand Mixer 5qt", "100004", "073502198743", "SMALL APPLIANCES", "$249.00"},
		{"2026-08-01", "Throw Pillow 2pk", "100005", "", "HOME DECOR", "$22.50"},
	}, nil
}
