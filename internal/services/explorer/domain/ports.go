package domain

import (
	"context"

	"exposure/internal/core/filter"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Facets(ctx context.Context, id string) ([]filter.Facet, error)
	Query(ctx context.Context, id string, in QueryInput) (QueryResult, error)
	Aggregates(ctx context.Context, id string, in QueryInput) (AggregatesResult, error)
	Export(ctx context.Context, id string, in ExportInput) (Export, error)
}
