// Package spreadsheet - Delimited text decoding
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"strings"

	"cashback-report/core/types"
)

// CSVDecoder reads comma or semicolon delimited text exports
type CSVDecoder struct{}

// Extensions lists the file extensions the decoder handles
func (d *CSVDecoder) Extensions() []string {
	return []string{".csv", ".txt"}
}

// Decode parses delimited bytes into header-keyed rows
func (d *CSVDecoder) Decode(data []byte) ([]types.RawRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []types.RawRow{}, nil
	}

	headers := records[0]
	rows := make([]types.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(types.RawRow)
		for i, cell := range record {
			if i >= len(headers) {
				break
			}
			header := strings.TrimSpace(headers[i])
			cell = strings.TrimSpace(cell)
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

// detectDelimiter picks ';' when the header line carries more semicolons
// than commas. Brazilian exports commonly use semicolons.
func detectDelimiter(data []byte) rune {
	line := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		line = data[:idx]
	}
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}
