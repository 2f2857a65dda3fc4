// Package service contains explorer workflows: filter, summarize,
// aggregate, and export a stored dataset
package service

import (
	"context"

	"exposure/internal/adapters/codec"
	"exposure/internal/core/agg"
	"exposure/internal/core/filter"
	"exposure/internal/core/policy"
	"exposure/internal/core/tabular"
	dsdomain "exposure/internal/services/datasets/domain"
	"exposure/internal/services/explorer/domain"
)

// DefaultRowLimit caps echoed rows when a query does not set its own limit
const DefaultRowLimit = 500

// TopCedentLimit bounds the top-cedents aggregate
const TopCedentLimit = 10

// Service defines the explorer service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the explorer service over a dataset reader
type Svc struct {
	datasets dsdomain.ReaderPort
}

// New constructs an explorer service
func New(datasets dsdomain.ReaderPort) *Svc {
	if datasets == nil {
		panic("explorer.Service requires a non nil dataset reader")
	}
	return &Svc{datasets: datasets}
}

// Facets returns the distinct selectable values per filterable column
func (s *Svc) Facets(ctx context.Context, id string) ([]filter.Facet, error) {
	t, err := s.datasets.Table(ctx, id)
	if err != nil {
		return nil, err
	}
	return filter.Facets(t, policy.FilterColumns()), nil
}

// Query filters the dataset and computes the KPI summary. The summary spans
// the whole matching subset even when the echoed rows are capped
func (s *Svc) Query(ctx context.Context, id string, in domain.QueryInput) (domain.QueryResult, error) {
	sub, err := s.subset(ctx, id, in.Filters)
	if err != nil {
		return domain.QueryResult{}, err
	}

	limit := in.Limit
	if limit <= 0 {
		limit = DefaultRowLimit
	}
	n := sub.Len()
	if n > limit {
		n = limit
	}

	cols := sub.Columns()
	rows := make([][]any, n)
	for i := 0; i < n; i++ {
		row := make([]any, len(cols))
		for j, col := range cols {
			row[j] = wireValue(sub.Cell(i, col))
		}
		rows[i] = row
	}

	return domain.QueryResult{
		Columns: cols,
		Rows:    rows,
		Matched: sub.Len(),
		Summary: filter.Summarize(sub),
	}, nil
}

// Aggregates computes the chart aggregates over the filtered subset
func (s *Svc) Aggregates(ctx context.Context, id string, in domain.QueryInput) (domain.AggregatesResult, error) {
	sub, err := s.subset(ctx, id, in.Filters)
	if err != nil {
		return domain.AggregatesResult{}, err
	}
	return domain.AggregatesResult{
		PremiumByUYLOB: agg.PremiumByUYLOB(sub),
		TopCedents:     agg.TopCedents(sub, TopCedentLimit),
		VenueExposure:  agg.VenueExposure(sub, s.datasets.Risk(ctx)),
		LOBByLimitBand: agg.LOBByLimitBand(sub),
	}, nil
}

// Export encodes the filtered subset in the requested format
func (s *Svc) Export(ctx context.Context, id string, in domain.ExportInput) (domain.Export, error) {
	format, err := codec.ParseFormat(in.Format)
	if err != nil {
		return domain.Export{}, err
	}
	sub, err := s.subset(ctx, id, in.Filters)
	if err != nil {
		return domain.Export{}, err
	}
	data, err := codec.Encode(format, sub)
	if err != nil {
		return domain.Export{}, err
	}
	return domain.Export{
		Filename:    codec.Filename(format),
		ContentType: codec.ContentType(format),
		Data:        data,
	}, nil
}

func (s *Svc) subset(ctx context.Context, id string, filters map[string][]string) (*tabular.Table, error) {
	t, err := s.datasets.Table(ctx, id)
	if err != nil {
		return nil, err
	}
	return filter.Apply(t, filter.Selection(filters)), nil
}

// wireValue renders a cell as a JSON value: numbers stay numeric, dates go
// out as ISO date strings, null stays null
func wireValue(c tabular.Cell) any {
	switch c.Kind() {
	case tabular.KindNumber:
		n, _ := c.Number()
		return n
	case tabular.KindNull:
		return nil
	default:
		return c.Key()
	}
}
