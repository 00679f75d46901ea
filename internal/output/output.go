// Package output serializes an assembled dataset. The destination format is
// chosen by file extension; preview mode prints to a writer and touches no
// file.
package output

import (
	"path/filepath"
	"strconv"

	"github.com/hyperifyio/varates/internal/dataset"
)

// Columns is the output header in dataset order. The last three are the
// enrichment columns, empty for Added rows.
var Columns = []string{
	"Year", "Rating", "Dependent_Group", "Dependent_Status",
	"Category", "Added_Item", "Monthly_Rate_USD",
	"Has_Spouse", "Parent_Count", "Has_Child",
}

// Record flattens one row into column-ordered cell strings. Absent values
// (Added_Item on Basic rows, inference fields on Added rows) render empty.
func Record(r dataset.Row) []string {
	return []string{
		strconv.Itoa(r.Year),
		strconv.Itoa(r.Rating),
		r.DependentGroup,
		r.DependentStatus,
		string(r.Category),
		r.AddedItem,
		FormatRate(r.MonthlyRate),
		formatBool(r.HasSpouse),
		formatInt(r.ParentCount),
		formatBool(r.HasChild),
	}
}

// FormatRate renders a monetary amount without trailing zeros, matching the
// source page's cent precision where present.
func FormatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// Write serializes rows to the path, dispatching on extension: .xlsx and
// .pdf get dedicated writers, anything else is written as CSV.
func Write(path string, rows []dataset.Row, year int) error {
	switch filepath.Ext(path) {
	case ".xlsx":
		return WriteXLSX(path, rows)
	case ".pdf":
		return WritePDF(path, rows, year)
	default:
		return WriteCSV(path, rows)
	}
}
