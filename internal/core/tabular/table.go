// Package tabular provides the canonical in-memory table model shared by the
// normalizer, the filter engine, and the codecs.
//
// A Cell is a small tagged union: null, string, number, or date. Every cell
// exposes a canonical string key (Key) used for filter matching, facet
// listing, and delimited export, so equality is stable regardless of the
// source encoding. Tables are immutable by convention: transformations
// return a new Table and never touch the receiver's rows.
package tabular

import (
	"sort"
	"strconv"
	"time"
)

// Kind enumerates cell value kinds
type Kind uint8

const (
	// KindNull marks a missing or unparseable value
	KindNull Kind = iota
	// KindString is free text or a categorical value
	KindString
	// KindNumber is a float64
	KindNumber
	// KindDate is a calendar date (time component ignored)
	KindDate
)

// DateLayout is the canonical calendar date form used in keys and exports
const DateLayout = "2006-01-02"

// Cell is one table value
type Cell struct {
	kind Kind
	s    string
	n    float64
	t    time.Time
}

// NullCell returns the null cell
func NullCell() Cell { return Cell{} }

// StringCell returns a string cell; the empty string becomes null
func StringCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{kind: KindString, s: s}
}

// NumberCell returns a numeric cell
func NumberCell(f float64) Cell { return Cell{kind: KindNumber, n: f} }

// DateCell returns a date cell truncated to the calendar day
func DateCell(t time.Time) Cell {
	if t.IsZero() {
		return Cell{}
	}
	y, m, d := t.Date()
	return Cell{kind: KindDate, t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Kind returns the cell kind
func (c Cell) Kind() Kind { return c.kind }

// IsNull reports whether the cell holds no value
func (c Cell) IsNull() bool { return c.kind == KindNull }

// Number returns the numeric value when the cell is a number
func (c Cell) Number() (float64, bool) {
	if c.kind != KindNumber {
		return 0, false
	}
	return c.n, true
}

// Date returns the date value when the cell is a date
func (c Cell) Date() (time.Time, bool) {
	if c.kind != KindDate {
		return time.Time{}, false
	}
	return c.t, true
}

// Key returns the canonical string form of the cell: the string itself,
// numbers in shortest round-trip notation, dates as YYYY-MM-DD, null as ""
func (c Cell) Key() string {
	switch c.kind {
	case KindString:
		return c.s
	case KindNumber:
		return strconv.FormatFloat(c.n, 'f', -1, 64)
	case KindDate:
		return c.t.Format(DateLayout)
	default:
		return ""
	}
}

// Table is an ordered header plus rows of cells
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]Cell
}

// New returns an empty table with the given column order
func New(cols []string) *Table {
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		idx[c] = i
	}
	return &Table{cols: append([]string(nil), cols...), index: idx}
}

// Columns returns a copy of the header in canonical order
func (t *Table) Columns() []string { return append([]string(nil), t.cols...) }

// HasColumn reports whether name is present
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of name in the header
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Len returns the row count
func (t *Table) Len() int { return len(t.rows) }

// AppendRow adds a row; short rows are padded with nulls, long rows truncated
func (t *Table) AppendRow(cells []Cell) {
	row := make([]Cell, len(t.cols))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Row returns row i (shared backing array; treat as read-only)
func (t *Table) Row(i int) []Cell { return t.rows[i] }

// Cell returns the value at row i, column name; null when the column is absent
func (t *Table) Cell(i int, name string) Cell {
	j, ok := t.index[name]
	if !ok {
		return Cell{}
	}
	return t.rows[i][j]
}

// Select returns a new table containing the rows for which keep is true,
// preserving the original row order
func (t *Table) Select(keep func(i int) bool) *Table {
	out := New(t.cols)
	for i := range t.rows {
		if keep(i) {
			out.rows = append(out.rows, t.rows[i])
		}
	}
	return out
}

// WithColumn returns a new table with the named column set to vals,
// replacing it in place when present or appending it otherwise.
// vals must have one entry per row; missing entries read as null
func (t *Table) WithColumn(name string, vals []Cell) *Table {
	at, exists := t.index[name]
	cols := t.cols
	if !exists {
		cols = append(t.Columns(), name)
		at = len(cols) - 1
	}
	out := New(cols)
	out.rows = make([][]Cell, len(t.rows))
	for i, row := range t.rows {
		nr := make([]Cell, len(cols))
		copy(nr, row)
		if i < len(vals) {
			nr[at] = vals[i]
		} else {
			nr[at] = Cell{}
		}
		out.rows[i] = nr
	}
	return out
}

// Column returns all cells of the named column in row order
func (t *Table) Column(name string) []Cell {
	j, ok := t.index[name]
	if !ok {
		return nil
	}
	out := make([]Cell, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[j]
	}
	return out
}

// Distinct returns the sorted distinct non-null keys of the named column.
// Keys sort numerically when every key parses as a number, lexically otherwise
func (t *Table) Distinct(name string) []string {
	j, ok := t.index[name]
	if !ok {
		return nil
	}
	seen := map[string]struct{}{}
	out := make([]string, 0, 16)
	for _, row := range t.rows {
		k := row[j].Key()
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sortKeys(out)
	return out
}

// sortKeys sorts numerically when possible so years and bands line up the
// way a dropdown expects
func sortKeys(keys []string) {
	numeric := true
	for _, k := range keys {
		if _, err := strconv.ParseFloat(k, 64); err != nil {
			numeric = false
			break
		}
	}
	if numeric {
		sort.Slice(keys, func(a, b int) bool {
			fa, _ := strconv.ParseFloat(keys[a], 64)
			fb, _ := strconv.ParseFloat(keys[b], 64)
			return fa < fb
		})
		return
	}
	sort.Strings(keys)
}
