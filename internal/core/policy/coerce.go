package policy

import (
	"strconv"
	"strings"
	"time"

	"exposure/internal/core/tabular"
)

// dateLayouts are tried in order when coercing string cells to dates
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// excel serial dates count days from 1899-12-30; plausible policy dates land
// well inside this window
const (
	excelSerialMin = 20000 // 1954-10-03
	excelSerialMax = 80000 // 2119-01-16
)

var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// coerceDate turns a raw cell into a date cell; anything unparseable is null
func coerceDate(c tabular.Cell) tabular.Cell {
	switch c.Kind() {
	case tabular.KindDate:
		return c
	case tabular.KindNumber:
		n, _ := c.Number()
		if n >= excelSerialMin && n <= excelSerialMax {
			return tabular.DateCell(excelEpoch.AddDate(0, 0, int(n)))
		}
		return tabular.NullCell()
	case tabular.KindString:
		s := strings.TrimSpace(c.Key())
		if s == "" || isNA(s) {
			return tabular.NullCell()
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return tabular.DateCell(t)
			}
		}
		// serial date that arrived as text
		if n, err := strconv.ParseFloat(s, 64); err == nil && n >= excelSerialMin && n <= excelSerialMax {
			return tabular.DateCell(excelEpoch.AddDate(0, 0, int(n)))
		}
		return tabular.NullCell()
	default:
		return tabular.NullCell()
	}
}

// coerceNumber turns a raw cell into a numeric cell; anything unparseable is null
func coerceNumber(c tabular.Cell) tabular.Cell {
	switch c.Kind() {
	case tabular.KindNumber:
		return c
	case tabular.KindString:
		s := strings.TrimSpace(c.Key())
		if s == "" || isNA(s) {
			return tabular.NullCell()
		}
		s = cleanNumeric(s)
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return tabular.NumberCell(n)
		}
		return tabular.NullCell()
	default:
		return tabular.NullCell()
	}
}

// cleanNumeric strips currency symbols, thousands separators, and percent
// signs so "$1,250,000" and "25%" both parse
func cleanNumeric(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	// accounting negatives: (1234) -> -1234
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	return strings.TrimSpace(s)
}

// isNA reports spreadsheet-style missing markers
func isNA(s string) bool {
	switch strings.ToUpper(s) {
	case "NA", "NAN", "NULL", "NONE", "#N/A":
		return true
	}
	return false
}
