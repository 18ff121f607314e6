// Package spreadsheet decodes tabular export files into the row-mapping
// shape the ingestion pipeline consumes. The pipeline itself is
// format-agnostic; this adapter is the only place file formats exist.
package spreadsheet

import (
	"path/filepath"
	"strings"

	"cashback-report/core/types"
	"cashback-report/internal/errors"
)

// Decoder reads one file format into raw rows
type Decoder interface {
	// Decode parses file bytes into header-keyed rows
	Decode(data []byte) ([]types.RawRow, error)

	// Extensions lists the file extensions the decoder handles
	Extensions() []string
}

// decoders in registration order; first extension match wins
var decoders = []Decoder{
	&XLSXDecoder{},
	&CSVDecoder{},
}

// DecodeFile picks a decoder by file extension and decodes the bytes.
// A decode failure is fatal for the whole batch; there is no partial
// recovery from a corrupt file.
func DecodeFile(name string, data []byte) ([]types.RawRow, error) {
	ext := strings.ToLower(filepath.Ext(name))
	for _, d := range decoders {
		for _, e := range d.Extensions() {
			if e == ext {
				rows, err := d.Decode(data)
				if err != nil {
					return nil, errors.Parsing("failed to read spreadsheet", err).
						WithContext("file", name)
				}
				return rows, nil
			}
		}
	}
	return nil, errors.Newf(errors.TypeParsing, "unsupported file format: %s", ext)
}
