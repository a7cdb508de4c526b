package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExcelColumn pairs a header label with a typed accessor for one export
// column. Accessors return raw values; FormatExcelValue normalizes them.
type ExcelColumn[T any] struct {
	Header string
	Value  func(T) any
}

// FormatExcelValue normalizes a cell value: enums render as their string
// value, times in fixed layouts, booleans as Yes/No, nil pointers as "".
func FormatExcelValue(v any) any {
	switch val := v.(type) {
	case nil:
		return ""
	case time.Time:
		return formatTime(val)
	case *time.Time:
		if val == nil {
			return ""
		}
		return formatTime(*val)
	case bool:
		return yesNo(val)
	case *bool:
		if val == nil {
			return ""
		}
		return yesNo(*val)
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case *int:
		if val == nil {
			return ""
		}
		return *val
	case *uint:
		if val == nil {
			return ""
		}
		return int(*val)
	case uint:
		return int(val)
	case *float64:
		if val == nil {
			return ""
		}
		return *val
	case fmt.Stringer:
		return val.String()
	default:
		return val
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(DateLayout)
	}
	return t.Format(DateTimeLayout)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// GenerateExcel renders items into a single-sheet workbook with a bold
// header row and auto-sized columns.
func GenerateExcel[T any](items []T, columns []ExcelColumn[T], sheetName string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	widths := make([]int, len(columns))

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col.Header); err != nil {
			return nil, err
		}
		widths[i] = len(col.Header)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, bold); err != nil {
		return nil, err
	}

	for rowIdx, item := range items {
		for colIdx, col := range columns {
			value := FormatExcelValue(col.Value(item))
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
			if n := len(fmt.Sprint(value)); n > widths[colIdx] {
				widths[colIdx] = n
			}
		}
	}

	for i := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		width := widths[i] + 2
		if width > 50 {
			width = 50
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width)); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

// ExcelContentType is the MIME type for xlsx downloads.
const ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
