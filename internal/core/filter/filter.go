// Package filter evaluates multi-column set-membership selections over a
// canonical table and summarizes the surviving subset.
package filter

import (
	"exposure/internal/core/tabular"
)

// Selection maps a column name to its accepted canonical values. An absent
// column or an empty value set imposes no constraint on that column. Values
// are compared against the cell's canonical key form, so numeric constraints
// use the shortest round-trip rendering ("2023", "0.25") and dates use
// "2006-01-02"
type Selection map[string][]string

// set materializes one column's accepted values for O(1) membership checks
func (s Selection) set(col string) map[string]struct{} {
	vals := s[col]
	if len(vals) == 0 {
		return nil
	}
	m := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return m
}

// Apply returns the subset of t whose rows satisfy every constrained column,
// original row order preserved. Constraints combine by conjunction only; a
// constrained column absent from the table reads as null for every row, so a
// non-empty constraint on it matches nothing unless the constraint includes
// the empty key
func Apply(t *tabular.Table, sel Selection) *tabular.Table {
	type constraint struct {
		col    string
		accept map[string]struct{}
	}
	var active []constraint
	for col := range sel {
		if m := sel.set(col); m != nil {
			active = append(active, constraint{col: col, accept: m})
		}
	}
	if len(active) == 0 {
		return t
	}

	return t.Select(func(i int) bool {
		for _, c := range active {
			if _, ok := c.accept[t.Cell(i, c.col).Key()]; !ok {
				return false
			}
		}
		return true
	})
}

// Facet is one filterable column with its distinct selectable values
type Facet struct {
	Column string   `json:"column"`
	Values []string `json:"values"`
}

// Facets returns the distinct non-null values for each requested column, in
// the column order given. Columns missing from the table come back with an
// empty value list so callers can still render a disabled selector
func Facets(t *tabular.Table, columns []string) []Facet {
	out := make([]Facet, 0, len(columns))
	for _, col := range columns {
		f := Facet{Column: col, Values: []string{}}
		if t.HasColumn(col) {
			f.Values = t.Distinct(col)
		}
		out = append(out, f)
	}
	return out
}
