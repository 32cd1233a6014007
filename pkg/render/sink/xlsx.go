package sink

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/tagsheet/pkg/layout"
)

// DefaultSheetName names the placement worksheet.
const DefaultSheetName = "Tags"

var xlsxHeaders = []string{
	"Page", "Slot", "Column", "Row", "X (mm)", "Y (mm)",
	"Product ID", "Name", "Code", "Base Price", "Sale Price", "Copy",
}

var xlsxColumnWidths = []float64{6, 6, 8, 6, 9, 9, 38, 28, 16, 11, 11, 6}

// XLSXOption configures spreadsheet rendering via [RenderXLSX].
type XLSXOption func(*xlsxRenderer)

type xlsxRenderer struct {
	sheetName string
}

// WithSheetName overrides the worksheet name.
func WithSheetName(name string) XLSXOption { return func(r *xlsxRenderer) { r.sheetName = name } }

// RenderXLSX writes one worksheet row per placed tag, in print order.
func RenderXLSX(s *layout.Sheet, opts ...XLSXOption) ([]byte, error) {
	r := xlsxRenderer{sheetName: DefaultSheetName}
	for _, opt := range opts {
		opt(&r)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(r.sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if r.sheetName != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("delete default sheet: %w", err)
		}
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, h := range xlsxHeaders {
		if err := setCell(f, r.sheetName, i+1, 1, h); err != nil {
			return nil, err
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(r.sheetName, name, name, xlsxColumnWidths[i]); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(xlsxHeaders), 1)
	if err := f.SetCellStyle(r.sheetName, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("set header style: %w", err)
	}

	row := 2
	for _, p := range s.Pages {
		for _, pl := range p.Placements {
			values := []any{
				p.Number, pl.Slot.Index + 1, pl.Slot.Column + 1, pl.Slot.Row + 1,
				pl.Slot.X, pl.Slot.Y,
				pl.Product.ID, pl.Product.Name, pl.Product.Code,
				pl.Product.BasePrice, pl.Product.SalePrice, pl.Copy + 1,
			}
			for col, v := range values {
				if err := setCell(f, r.sheetName, col+1, row, v); err != nil {
					return nil, err
				}
			}
			row++
		}
	}

	if err := f.SetPanes(r.sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}
