// internal/export/xlsx.go
package export

import (
	"bytes"
	"fmt"

	"github.com/tealeg/xlsx/v3"
)

// XLSXBytes renders rows into a single-sheet workbook with a bold header
// row, using the same column mapping as the CSV export.
func XLSXBytes[T any](sheetName string, columns []Column[T], rows []T) ([]byte, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("xlsx export requires at least one column")
	}
	if sheetName == "" {
		sheetName = "Export"
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, col := range columns {
		cell := headerRow.AddCell()
		cell.Value = col.Header
		cell.GetStyle().Font.Bold = true
	}

	for _, row := range rows {
		dataRow := sheet.AddRow()
		for _, col := range columns {
			dataRow.AddCell().Value = col.Value(row)
		}
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook to buffer: %w", err)
	}
	return buffer.Bytes(), nil
}
