// Package memstore is an in-memory implementation of store.Store for tests.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cognicore/resolv/pkg/resolv/internalerr"
	"github.com/cognicore/resolv/pkg/resolv/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu      sync.RWMutex
	clauses map[string]map[string][]string // kb name → clause key → literals
	proofs  map[string]store.Proof
	order   []string // proof ids in insertion order
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		clauses: make(map[string]map[string][]string),
		proofs:  make(map[string]store.Proof),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertClause stores one clause of a named knowledge base.
func (s *Store) UpsertClause(ctx context.Context, kbName string, literals []string) error {
	if kbName == "" || len(literals) == 0 {
		return fmt.Errorf("%w: empty knowledge base name or clause", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clauses[kbName] == nil {
		s.clauses[kbName] = make(map[string][]string)
	}
	key := strings.Join(literals, "|")
	s.clauses[kbName][key] = append([]string(nil), literals...)
	return nil
}

// GetClauses returns every clause of a named knowledge base.
func (s *Store) GetClauses(ctx context.Context, kbName string) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.clauses[kbName]))
	for key := range s.clauses[kbName] {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([][]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, append([]string(nil), s.clauses[kbName][key]...))
	}
	return out, nil
}

// ListKnowledgeBases returns the distinct knowledge base names.
func (s *Store) ListKnowledgeBases(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.clauses))
	for name := range s.clauses {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// SaveProof stores a proof session.
func (s *Store) SaveProof(ctx context.Context, p store.Proof) error {
	if p.ID == "" {
		return fmt.Errorf("%w: proof id", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.proofs[p.ID]; !ok {
		s.order = append(s.order, p.ID)
	}
	s.proofs[p.ID] = p
	return nil
}

// GetProof returns a proof session by ID.
func (s *Store) GetProof(ctx context.Context, id string) (store.Proof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.proofs[id]
	if !ok {
		return store.Proof{}, fmt.Errorf("%w: proof %s", internalerr.ErrNotFound, id)
	}
	return p, nil
}

// ListProofs returns the most recent proof sessions, newest first.
func (s *Store) ListProofs(ctx context.Context, limit int) ([]store.Proof, error) {
	if limit <= 0 {
		limit = 20
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Proof, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.proofs[s.order[i]])
	}
	return out, nil
}
