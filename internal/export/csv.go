// Package export writes the transaction set as downloadable files.
package export

import (
	"io"
	"strings"

	"tracker/internal/core"
)

// Filename is the suggested download name for the CSV export.
const Filename = "expense-tracker.csv"

const header = "Date,Description,Category,Type,Amount"

// WriteCSV streams the full transaction set as CSV, one row per
// transaction in the given order. Fields are written as-is without
// quoting, so a comma inside a description shifts the columns of that
// row. Exports always cover the whole set regardless of any active
// category filter.
func WriteCSV(w io.Writer, set []core.Transaction) error {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for _, t := range set {
		b.WriteString(t.Date.Format("1/2/2006"))
		b.WriteByte(',')
		b.WriteString(t.Description)
		b.WriteByte(',')
		b.WriteString(t.Category)
		b.WriteByte(',')
		b.WriteString(string(t.Type))
		b.WriteByte(',')
		b.WriteString(t.Amount.StringFixed())
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
