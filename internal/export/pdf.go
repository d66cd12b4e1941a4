package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// PDF renders the list as a bordered table, one row per item.
func PDF[T any](layout Layout[T], items []T) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(60, 10, layout.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range layout.Columns {
		pdf.CellFormat(col.Width, 8, col.Header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		for _, col := range layout.Columns {
			pdf.CellFormat(col.Width, 8, col.Value(item), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
