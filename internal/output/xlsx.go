package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hyperifyio/varates/internal/dataset"
)

const sheetName = "rates"

// WriteXLSX writes the dataset as a single-sheet workbook with a bold header
// row. Numeric columns keep their native types so spreadsheet consumers can
// aggregate without re-parsing.
func WriteXLSX(path string, rows []dataset.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	for col, name := range Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(Columns), 1)
		_ = f.SetCellStyle(sheetName, "A1", last, style)
	}

	for i, r := range rows {
		rowNum := i + 2
		values := []interface{}{
			r.Year, r.Rating, r.DependentGroup, r.DependentStatus,
			string(r.Category), r.AddedItem, r.MonthlyRate,
		}
		if r.HasSpouse != nil {
			values = append(values, *r.HasSpouse, *r.ParentCount, *r.HasChild)
		} else {
			values = append(values, nil, nil, nil)
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", rowNum, err)
			}
		}
	}
	return f.SaveAs(path)
}
