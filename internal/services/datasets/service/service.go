// Package service contains dataset load workflows
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"exposure/internal/adapters/codec"
	"exposure/internal/core/policy"
	"exposure/internal/core/tabular"
	perr "exposure/internal/platform/errors"
	"exposure/internal/platform/logger"
	"exposure/internal/services/datasets/domain"
	"exposure/internal/services/datasets/repo"
)

// Service defines the datasets service contract
type Service interface {
	domain.ServicePort
	domain.ReaderPort
}

// Options configure the service
type Options struct {
	// DefaultPath is the dataset loaded by Default; empty disables it
	DefaultPath string

	// Presence is the column-presence policy applied on load
	Presence policy.Presence
}

// Svc implements the datasets service
type Svc struct {
	store *repo.Store
	opts  Options
	norm  *policy.Normalizer
}

// New constructs a datasets service
func New(store *repo.Store, opts Options) *Svc {
	if store == nil {
		panic("datasets.Service requires a non nil store")
	}
	return &Svc{
		store: store,
		opts:  opts,
		norm:  policy.New(policy.Options{Presence: opts.Presence}),
	}
}

// Upload decodes, normalizes, and stores an uploaded dataset
func (s *Svc) Upload(ctx context.Context, name string, data []byte, presence string) (domain.Meta, error) {
	if len(data) == 0 {
		return domain.Meta{}, perr.NoDataf("empty upload")
	}

	norm := s.norm
	if presence != "" {
		norm = policy.New(policy.Options{Presence: policy.ParsePresence(presence)})
	}

	format := codec.Detect(name, data)
	raw, err := codec.Decode(format, data)
	if err != nil {
		return domain.Meta{}, err
	}
	canon, err := norm.Normalize(raw)
	if err != nil {
		return domain.Meta{}, err
	}

	sum := sha256.Sum256(data)
	ds := s.store.Put(&domain.Dataset{
		Name:        name,
		ContentHash: hex.EncodeToString(sum[:]),
		LoadedAt:    time.Now().UTC(),
		Table:       canon,
	})

	logger.C(ctx).Info().
		Str("dataset_id", ds.ID).
		Str("name", ds.Name).
		Str("format", string(format)).
		Int("rows", ds.Table.Len()).
		Msg("dataset loaded")
	return domain.MetaOf(ds), nil
}

// Default loads the dataset at the configured default path. The load is
// content-hashed like any upload, so repeated calls reuse the session until
// the file changes on disk
func (s *Svc) Default(ctx context.Context) (domain.Meta, error) {
	if s.opts.DefaultPath == "" {
		return domain.Meta{}, perr.NoDataf("no default dataset configured")
	}
	data, err := os.ReadFile(s.opts.DefaultPath)
	if err != nil {
		return domain.Meta{}, perr.NoDataf("default dataset unavailable: %v", err)
	}
	return s.Upload(ctx, filepath.Base(s.opts.DefaultPath), data, "")
}

// Get returns metadata for a stored session
func (s *Svc) Get(ctx context.Context, id string) (domain.Meta, error) {
	ds, err := s.store.Get(id)
	if err != nil {
		return domain.Meta{}, err
	}
	return domain.MetaOf(ds), nil
}

// Drop removes a stored session
func (s *Svc) Drop(ctx context.Context, id string) error {
	return s.store.Delete(id)
}

// SetRisk replaces the judicial risk lookup from workbook bytes
func (s *Svc) SetRisk(ctx context.Context, data []byte) (int, error) {
	risk, err := codec.DecodeRiskLookup(data)
	if err != nil {
		return 0, err
	}
	s.store.SetRisk(risk)
	logger.C(ctx).Info().Int("venues", len(risk)).Msg("judicial risk lookup loaded")
	return len(risk), nil
}

// Stats describes the session store
func (s *Svc) Stats(ctx context.Context) domain.StoreStats {
	return s.store.Stats()
}

// Table returns the canonical table for a stored session
func (s *Svc) Table(ctx context.Context, id string) (*tabular.Table, error) {
	ds, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return ds.Table, nil
}

// Risk returns the current judicial risk lookup
func (s *Svc) Risk(ctx context.Context) domain.RiskLookup {
	return s.store.Risk()
}
