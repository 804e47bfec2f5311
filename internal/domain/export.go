package domain

// ExportRow is a single row in the catalog export: one row per dish, in
// catalog order.
//
// SearchURL is empty when no search link can be built for the dish.
// Callers that need a joined tag string (e.g. CSV) should join Tags with "|".
type ExportRow struct {
	ID        string
	Name      string
	Tags      []string
	ImageURL  string
	SearchURL string
}
