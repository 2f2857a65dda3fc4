// Package policy normalizes raw tabular input into the canonical policy
// table: enforced column types plus the derived classification columns.
//
// Cell-level problems never fail a load; a cell that cannot be parsed as its
// declared type becomes null. The only load-level failure is a missing
// required column set, reported as a MissingSchema error listing the absent
// columns. Normalization is idempotent: running it over an already-canonical
// table reproduces the table, derived columns included.
package policy

import (
	"time"

	"exposure/internal/core/band"
	"exposure/internal/core/tabular"
	perr "exposure/internal/platform/errors"
)

// Options configures the normalizer
type Options struct {
	Presence Presence
}

// Normalizer converts raw tables into canonical policy tables
type Normalizer struct {
	presence Presence
}

// New constructs a Normalizer
func New(opts Options) *Normalizer {
	return &Normalizer{presence: opts.Presence}
}

// Normalize returns a new canonical table built from raw. The input table is
// never mutated. Derived columns are recomputed from their sources,
// replacing any same-named columns already present
func (n *Normalizer) Normalize(raw *tabular.Table) (*tabular.Table, error) {
	if err := n.checkSchema(raw); err != nil {
		return nil, err
	}

	out := raw
	for _, col := range DateColumns() {
		if !out.HasColumn(col) {
			continue
		}
		out = out.WithColumn(col, mapCells(out.Column(col), coerceDate))
	}
	for _, col := range NumericColumns() {
		if !out.HasColumn(col) {
			continue
		}
		out = out.WithColumn(col, mapCells(out.Column(col), coerceNumber))
	}

	out = deriveMGAFlag(out)
	out = deriveInceptionMonth(out)
	out = deriveBand(out, ColLimitPerOccurrence, ColLimitBand, band.Limit)
	out = deriveBand(out, ColAttachmentPoint, ColAttachmentBand, band.Attachment)
	out = deriveExposedLimit(out)

	return out, nil
}

// checkSchema applies the configured column-presence policy
func (n *Normalizer) checkSchema(raw *tabular.Table) error {
	switch n.presence {
	case RequireFull:
		var missing []string
		for _, col := range SchemaColumns() {
			if !raw.HasColumn(col) {
				missing = append(missing, col)
			}
		}
		if len(missing) > 0 {
			return perr.MissingSchema(missing)
		}
	case Lenient:
		for _, col := range SchemaColumns() {
			if raw.HasColumn(col) {
				return nil
			}
		}
		return perr.MissingSchema(SchemaColumns())
	default: // RequireCore
		var missing []string
		for _, col := range CoreColumns() {
			if !raw.HasColumn(col) {
				missing = append(missing, col)
			}
		}
		if len(missing) > 0 {
			return perr.MissingSchema(missing)
		}
	}
	return nil
}

func mapCells(in []tabular.Cell, f func(tabular.Cell) tabular.Cell) []tabular.Cell {
	out := make([]tabular.Cell, len(in))
	for i, c := range in {
		out[i] = f(c)
	}
	return out
}

// deriveMGAFlag flags records placed through an MGA; a missing MGA value is
// treated as the N/A sentinel
func deriveMGAFlag(t *tabular.Table) *tabular.Table {
	if !t.HasColumn(ColMGA) {
		return t
	}
	vals := make([]tabular.Cell, t.Len())
	for i := 0; i < t.Len(); i++ {
		mga := t.Cell(i, ColMGA).Key()
		if mga == "" {
			mga = NoMGASentinel
		}
		if mga == NoMGASentinel {
			vals[i] = tabular.StringCell(FlagNoMGA)
		} else {
			vals[i] = tabular.StringCell(FlagMGA)
		}
	}
	return t.WithColumn(ColMGAFlag, vals)
}

// deriveInceptionMonth truncates Effective_Date to the first of its month
func deriveInceptionMonth(t *tabular.Table) *tabular.Table {
	if !t.HasColumn(ColEffectiveDate) {
		return t
	}
	vals := make([]tabular.Cell, t.Len())
	for i := 0; i < t.Len(); i++ {
		d, ok := t.Cell(i, ColEffectiveDate).Date()
		if !ok {
			vals[i] = tabular.NullCell()
			continue
		}
		vals[i] = tabular.DateCell(time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC))
	}
	return t.WithColumn(ColInceptionMonth, vals)
}

// deriveBand buckets a numeric source column; null propagates to a null band
func deriveBand(t *tabular.Table, src, dst string, bucket func(float64) string) *tabular.Table {
	if !t.HasColumn(src) {
		return t
	}
	vals := make([]tabular.Cell, t.Len())
	for i := 0; i < t.Len(); i++ {
		x, ok := t.Cell(i, src).Number()
		if !ok {
			vals[i] = tabular.NullCell()
			continue
		}
		vals[i] = tabular.StringCell(bucket(x))
	}
	return t.WithColumn(dst, vals)
}

// deriveExposedLimit computes Limit_Per_Occurrence * Share, null-propagating
func deriveExposedLimit(t *tabular.Table) *tabular.Table {
	if !t.HasColumn(ColLimitPerOccurrence) || !t.HasColumn(ColShare) {
		return t
	}
	vals := make([]tabular.Cell, t.Len())
	for i := 0; i < t.Len(); i++ {
		lim, okL := t.Cell(i, ColLimitPerOccurrence).Number()
		share, okS := t.Cell(i, ColShare).Number()
		if !okL || !okS {
			vals[i] = tabular.NullCell()
			continue
		}
		vals[i] = tabular.NumberCell(lim * share)
	}
	return t.WithColumn(ColExposedLimit, vals)
}
