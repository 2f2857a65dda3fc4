package codec

import (
	"bytes"
	"encoding/csv"
	"strings"

	"exposure/internal/core/tabular"
	perr "exposure/internal/platform/errors"
)

// decodeDelimited parses header-plus-rows text. The delimiter is sniffed
// from the header line: a tab wins over a comma, comma is the default
func decodeDelimited(data []byte) (*tabular.Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, perr.UnsupportedEncodingf("malformed delimited input: %v", err)
	}
	return tableFromStrings(records)
}

func encodeDelimited(t *tabular.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	cols := t.Columns()
	if err := w.Write(cols); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "write header")
	}
	row := make([]string, len(cols))
	for i := 0; i < t.Len(); i++ {
		for j, col := range cols {
			row[j] = t.Cell(i, col).Key()
		}
		if err := w.Write(row); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "flush")
	}
	return buf.Bytes(), nil
}

func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if strings.ContainsRune(string(line), '\t') {
		return '\t'
	}
	return ','
}
