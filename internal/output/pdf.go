package output

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/varates/internal/dataset"
)

// pdfMaxRows bounds the row table in the PDF summary; the full dataset
// belongs in CSV/XLSX, the PDF is a human-readable digest.
const pdfMaxRows = 40

// WritePDF renders a summary document: run metadata, per-category counts,
// and the leading rows in a compact table.
func WritePDF(path string, rows []dataset.Row, year int) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.AddPage()
	pdf.CellFormat(0, 8, fmt.Sprintf("VA disability compensation rates - %d", year), "", 1, "L", false, 0, "")

	basic, added := 0, 0
	for _, r := range rows {
		if r.Category == dataset.Basic {
			basic++
		} else {
			added++
		}
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d rows extracted (%d basic, %d added)", len(rows), basic, added), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	widths := []float64{14, 14, 28, 75, 18, 60, 28, 20, 22, 18}
	pdf.SetFont("Helvetica", "B", 8)
	for i, name := range Columns {
		pdf.CellFormat(widths[i], 6, name, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for i, r := range rows {
		if i >= pdfMaxRows {
			pdf.CellFormat(0, 6, fmt.Sprintf("... and %d more rows", len(rows)-pdfMaxRows), "", 1, "L", false, 0, "")
			break
		}
		for col, cell := range Record(r) {
			pdf.CellFormat(widths[col], 6, clip(cell, 48), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf.OutputFileAndClose(path)
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
