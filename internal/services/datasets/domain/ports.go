package domain

import (
	"context"

	"exposure/internal/core/tabular"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	// Upload decodes, normalizes, and stores an uploaded dataset.
	// Re-uploading identical bytes returns the existing session
	Upload(ctx context.Context, name string, data []byte, presence string) (Meta, error)

	// Default loads (or returns) the dataset at the configured default path
	Default(ctx context.Context) (Meta, error)

	// Get returns metadata for a stored session
	Get(ctx context.Context, id string) (Meta, error)

	// Drop removes a stored session
	Drop(ctx context.Context, id string) error

	// SetRisk replaces the judicial risk lookup from workbook bytes and
	// returns the number of venues loaded
	SetRisk(ctx context.Context, data []byte) (int, error)

	// Stats describes the session store
	Stats(ctx context.Context) StoreStats
}

// ReaderPort exposes stored tables to the explorer without exposing the
// session lifecycle
type ReaderPort interface {
	Table(ctx context.Context, id string) (*tabular.Table, error)
	Risk(ctx context.Context) RiskLookup
}
