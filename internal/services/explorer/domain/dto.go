// Package domain holds DTOs for explorer http and service contracts
package domain

import (
	"exposure/internal/core/agg"
	"exposure/internal/core/filter"
)

// QueryInput selects a subset of a dataset. Filters map column names to
// accepted canonical values; an empty or absent set leaves the column
// unconstrained. Limit caps the rows echoed back, not the KPI computation
type QueryInput struct {
	Filters map[string][]string `json:"filters,omitempty"`
	Limit   int                 `json:"limit,omitempty" validate:"omitempty,min=0,max=10000" example:"500"`
}

// QueryResult is a filtered page plus the KPI summary over the whole subset
type QueryResult struct {
	Columns []string       `json:"columns"`
	Rows    [][]any        `json:"rows"`
	Matched int            `json:"matched"`
	Summary filter.Summary `json:"summary"`
}

// AggregatesResult bundles the chart aggregates over the filtered subset
type AggregatesResult struct {
	PremiumByUYLOB []agg.PremiumCell   `json:"premium_by_uy_lob"`
	TopCedents     []agg.CedentPremium `json:"top_cedents"`
	VenueExposure  []agg.VenueRow      `json:"venue_exposure"`
	LOBByLimitBand agg.CrossTab        `json:"lob_by_limit_band"`
}

// ExportInput selects a subset and names the output encoding
type ExportInput struct {
	Filters map[string][]string `json:"filters,omitempty"`
	Format  string              `json:"format,omitempty" validate:"omitempty,oneof=xlsx csv excel" example:"xlsx"`
}

// Export is an encoded download
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}
