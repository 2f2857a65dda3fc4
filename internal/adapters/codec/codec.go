// Package codec decodes raw dataset bytes into tables and encodes tables
// back out. Two encodings are supported: xlsx workbooks (policies on a
// "Policies" sheet) and delimited text with a header row.
package codec

import (
	"bytes"
	"path/filepath"
	"strings"

	"exposure/internal/core/tabular"
	perr "exposure/internal/platform/errors"
)

// Format is a supported dataset encoding
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// zip local-file-header magic; xlsx workbooks are zip containers
var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// ParseFormat maps a user-supplied format name to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "csv", "":
		return FormatCSV, nil
	}
	return "", perr.UnsupportedEncodingf("unsupported export format %q", s)
}

// Detect picks the encoding for an input, preferring the filename extension
// and falling back to content sniffing (zip magic means a workbook)
func Detect(filename string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".csv", ".tsv", ".txt":
		return FormatCSV
	}
	if bytes.HasPrefix(data, zipMagic) {
		return FormatXLSX
	}
	return FormatCSV
}

// Decode parses data in the given format into a raw string-typed table.
// Typing is the normalizer's job, not the codec's
func Decode(format Format, data []byte) (*tabular.Table, error) {
	switch format {
	case FormatXLSX:
		return decodeXLSX(data)
	case FormatCSV:
		return decodeDelimited(data)
	}
	return nil, perr.UnsupportedEncodingf("unsupported input format %q", string(format))
}

// Encode serializes a table in the given format. Dates render as ISO
// calendar dates in both encodings; column order follows the table
func Encode(format Format, t *tabular.Table) ([]byte, error) {
	switch format {
	case FormatXLSX:
		return encodeXLSX(t)
	case FormatCSV:
		return encodeDelimited(t)
	}
	return nil, perr.UnsupportedEncodingf("unsupported export format %q", string(format))
}

// Filename returns the download filename for an export in the given format
func Filename(format Format) string {
	if format == FormatXLSX {
		return "Filtered_Policies.xlsx"
	}
	return "Filtered_Policies.csv"
}

// ContentType returns the MIME type served for the given format
func ContentType(format Format) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}
