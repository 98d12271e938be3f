// Package store defines persistence for knowledge bases and proof sessions.
package store

import (
	"context"
	"time"
)

// Store persists knowledge-base clauses and the outcomes of inference runs.
type Store interface {
	Close() error

	// Knowledge bases, keyed by name. Clauses are stored in canonical
	// textual form, one string per literal.
	UpsertClause(ctx context.Context, kbName string, literals []string) error
	GetClauses(ctx context.Context, kbName string) ([][]string, error)
	ListKnowledgeBases(ctx context.Context) ([]string, error)

	// Proof sessions.
	SaveProof(ctx context.Context, p Proof) error
	GetProof(ctx context.Context, id string) (Proof, error)
	ListProofs(ctx context.Context, limit int) ([]Proof, error)
}

// Proof records one completed inference run.
type Proof struct {
	ID         string // ULID, assigned by the caller
	KBName     string
	Query      string // query clause in canonical form
	Outcome    string // proved / not entailed / inconclusive
	Iterations int
	Derived    int
	CreatedAt  time.Time
}
