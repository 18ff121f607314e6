// Package spreadsheet - XLSX decoding
package spreadsheet

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"cashback-report/core/types"
)

// XLSXDecoder reads the first worksheet of an Excel workbook
type XLSXDecoder struct{}

// Extensions lists the file extensions the decoder handles
func (d *XLSXDecoder) Extensions() []string {
	return []string{".xlsx", ".xlsm", ".xls"}
}

// Decode parses workbook bytes into header-keyed rows.
// Raw cell values are requested so date cells surface as spreadsheet
// serial numbers, which the pipeline's date normalization expects.
func (d *XLSXDecoder) Decode(data []byte) ([]types.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no worksheets")
	}

	cells, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return []types.RawRow{}, nil
	}

	headers := cells[0]
	rows := make([]types.RawRow, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(types.RawRow)
		for i, cell := range line {
			if i >= len(headers) {
				break
			}
			header := strings.TrimSpace(headers[i])
			if header == "" || cell == "" {
				continue
			}
			row[header] = typedCell(cell)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// typedCell converts numeric-looking cells to float64, matching the row
// shape a spreadsheet JSON export would produce.
func typedCell(cell string) interface{} {
	if n, err := strconv.ParseFloat(cell, 64); err == nil {
		return n
	}
	return cell
}
