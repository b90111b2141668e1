package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/devpost/blog-api/internal/store"
)

// RenderExcel writes the post detail as an xlsx workbook to w. The single
// sheet holds a header row of field labels and one data row with the values.
func RenderExcel(detail *store.PostDetail, w io.Writer) error {
	if detail == nil {
		return ErrNilDetail
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Post"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create report sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	values := fieldValues(detail)
	for col := range fieldLabels {
		headerCell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, headerCell, fieldLabels[col]); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}

		valueCell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return fmt.Errorf("failed to address value cell: %w", err)
		}
		if err := f.SetCellValue(sheet, valueCell, values[col]); err != nil {
			return fmt.Errorf("failed to write value cell: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to render excel report: %w", err)
	}
	return nil
}
