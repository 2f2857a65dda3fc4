// Package domain holds dataset session types and DTOs
package domain

import (
	"time"

	"exposure/internal/core/agg"
	"exposure/internal/core/tabular"
)

// Dataset is one loaded, normalized dataset session. The table is canonical
// and treated as read-only once stored
type Dataset struct {
	ID          string
	Name        string
	ContentHash string
	LoadedAt    time.Time
	Table       *tabular.Table
}

// Meta is the wire-facing description of a dataset session
type Meta struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Rows        int       `json:"rows"`
	Columns     []string  `json:"columns"`
	ContentHash string    `json:"content_hash"`
	LoadedAt    time.Time `json:"loaded_at"`
}

// MetaOf projects a dataset into its wire description
func MetaOf(d *Dataset) Meta {
	return Meta{
		ID:          d.ID,
		Name:        d.Name,
		Rows:        d.Table.Len(),
		Columns:     d.Table.Columns(),
		ContentHash: d.ContentHash,
		LoadedAt:    d.LoadedAt,
	}
}

// RiskLookup is the venue-keyed judicial risk table
type RiskLookup = map[string]agg.RiskEntry

// StoreStats describes the in-memory session store for status endpoints
type StoreStats struct {
	Datasets   int  `json:"datasets"`
	RiskLoaded bool `json:"risk_loaded"`
}
