// Package repo provides the in-memory dataset session store.
//
// Sessions are kept per process and keyed two ways: by session id for
// lookups, and by content hash so identical uploads collapse into one
// session instead of piling up duplicates
package repo

import (
	"sync"

	"github.com/google/uuid"

	"exposure/internal/services/datasets/domain"
	perr "exposure/internal/platform/errors"
)

// Store is the in-memory session store, safe for concurrent use
type Store struct {
	mu     sync.RWMutex
	byID   map[string]*domain.Dataset
	byHash map[string]string
	risk   domain.RiskLookup
}

// NewMemory constructs an empty store
func NewMemory() *Store {
	return &Store{
		byID:   map[string]*domain.Dataset{},
		byHash: map[string]string{},
	}
}

// Put stores ds under a fresh id unless a session with the same content
// hash already exists, in which case that session is returned unchanged
func (s *Store) Put(ds *domain.Dataset) *domain.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byHash[ds.ContentHash]; ok {
		if existing, ok := s.byID[id]; ok {
			return existing
		}
	}
	ds.ID = uuid.NewString()
	s.byID[ds.ID] = ds
	s.byHash[ds.ContentHash] = ds.ID
	return ds
}

// Get returns the session for id
func (s *Store) Get(id string) (*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.byID[id]
	if !ok {
		return nil, perr.NotFoundf("dataset %q not found", id)
	}
	return ds, nil
}

// Delete removes the session for id
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ds, ok := s.byID[id]
	if !ok {
		return perr.NotFoundf("dataset %q not found", id)
	}
	delete(s.byID, id)
	delete(s.byHash, ds.ContentHash)
	return nil
}

// SetRisk replaces the judicial risk lookup
func (s *Store) SetRisk(risk domain.RiskLookup) {
	s.mu.Lock()
	s.risk = risk
	s.mu.Unlock()
}

// Risk returns the current judicial risk lookup, nil when none is loaded
func (s *Store) Risk() domain.RiskLookup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.risk
}

// Stats describes the store contents
func (s *Store) Stats() domain.StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.StoreStats{Datasets: len(s.byID), RiskLoaded: s.risk != nil}
}
