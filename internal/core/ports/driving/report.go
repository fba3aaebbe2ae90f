package driving

import "context"

// ReportService produces the textual sales report.
type ReportService interface {
	// Generate renders the full report: one section per seller with
	// sales, ordered alphabetically. Returns the fixed "no sales"
	// message when the history is empty.
	Generate(ctx context.Context) (string, error)
}
