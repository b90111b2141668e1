package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/devpost/blog-api/internal/store"
)

// RenderPDF writes the post detail as a one-page PDF document to w.
// The document carries a heading followed by a two-column label/value table.
func RenderPDF(detail *store.PostDetail, w io.Writer) error {
	if detail == nil {
		return ErrNilDetail
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Post Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Post Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	values := fieldValues(detail)
	for i, label := range fieldLabels {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(35, 8, label, "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		// MultiCell so long content wraps instead of overflowing the page.
		pdf.MultiCell(0, 8, values[i], "1", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf report: %w", err)
	}
	return nil
}
