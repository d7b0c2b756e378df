package serviceImp

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"pantry/pkg/units"
)

// ExportXLSX writes the open shopping list to a spreadsheet, one row per
// item plus a totals row.
func (s *shoppingSvc) ExportXLSX() ([]byte, error) {
	list, err := s.List(nil)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Shopping List"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Ingredient", "Quantity", "Unit", "Estimated Cost"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, it := range list.Items {
		dq, du := units.Display(it.Quantity, it.Ingredient.Unit)
		values := []any{it.Ingredient.Name, dq, du, it.EstimatedCost}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", row), list.TotalCost); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
