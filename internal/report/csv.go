package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/devpost/blog-api/internal/store"
)

// RenderCSV writes the post detail as a two-line CSV document to w:
// a header line of field labels followed by one record of values.
func RenderCSV(detail *store.PostDetail, w io.Writer) error {
	if detail == nil {
		return ErrNilDetail
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(fieldLabels[:]); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	values := fieldValues(detail)
	if err := cw.Write(values[:]); err != nil {
		return fmt.Errorf("failed to write csv record: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to render csv report: %w", err)
	}
	return nil
}
