// Package resolv is a first-order-logic resolution theorem prover: it decides
// whether a knowledge base of clauses entails a query clause, by Robinson
// unification and iterative resolution refutation.
package resolv

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/resolv/pkg/resolv/clause"
	"github.com/cognicore/resolv/pkg/resolv/config"
	"github.com/cognicore/resolv/pkg/resolv/inference"
	"github.com/cognicore/resolv/pkg/resolv/inference/saturation"
	"github.com/cognicore/resolv/pkg/resolv/internalerr"
	"github.com/cognicore/resolv/pkg/resolv/store"
	"github.com/cognicore/resolv/pkg/resolv/unify"
)

// Prover is the main theorem-prover facade: a named knowledge base, an
// inference engine, and an optional store recording proof sessions.
type Prover struct {
	kbName  string
	kb      *clause.KnowledgeBase
	engine  inference.Engine
	store   store.Store
	entropy *ulid.MonotonicEntropy
}

// Options configures a Prover instance.
type Options struct {
	// Store records knowledge-base clauses and proof sessions. Optional;
	// without it the prover is purely in-memory.
	Store store.Store
	// Engine overrides the default saturation engine.
	Engine inference.Engine
	// MaxIterations bounds saturation rounds of the default engine.
	MaxIterations int
}

// New creates a Prover with the given dependencies.
func New(opts Options) *Prover {
	engine := opts.Engine
	if engine == nil {
		var eopts []saturation.Option
		if opts.MaxIterations > 0 {
			eopts = append(eopts, saturation.WithMaxIterations(opts.MaxIterations))
		}
		engine = saturation.New(eopts...)
	}
	return &Prover{
		kb:      clause.NewKnowledgeBase(),
		engine:  engine,
		store:   opts.Store,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Close cleanly shuts down the Prover.
func (p *Prover) Close() error {
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}

// LoadKnowledgeBase replaces the working knowledge base with the clauses of
// a config file, persisting them when a store is attached.
func (p *Prover) LoadKnowledgeBase(ctx context.Context, kbFile *config.KnowledgeBase) error {
	kb, err := kbFile.Build()
	if err != nil {
		return err
	}
	p.kbName = kbFile.Name
	p.kb = kb

	if p.store != nil {
		for _, lits := range kbFile.Clauses {
			if err := p.store.UpsertClause(ctx, kbFile.Name, lits); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddClause parses literal strings into a clause and adds it to the working
// knowledge base. Reports whether the clause was new.
func (p *Prover) AddClause(ctx context.Context, literals []string) (bool, error) {
	c, err := clause.Parse(literals)
	if err != nil {
		return false, err
	}
	if c.IsEmpty() {
		return false, fmt.Errorf("%w: empty clause", internalerr.ErrInvalidInput)
	}
	added := p.kb.Add(c)
	if added && p.store != nil && p.kbName != "" {
		if err := p.store.UpsertClause(ctx, p.kbName, literals); err != nil {
			return added, err
		}
	}
	return added, nil
}

// KnowledgeBase returns the current clause set snapshot.
func (p *Prover) KnowledgeBase() []clause.Clause {
	return p.kb.All()
}

// Ask decides whether the knowledge base entails the query clause, given as
// literal strings. The result is recorded as a proof session when a store
// is attached.
func (p *Prover) Ask(ctx context.Context, query []string) (inference.Result, error) {
	q, err := clause.Parse(query)
	if err != nil {
		return inference.Result{}, err
	}
	if q.IsEmpty() {
		return inference.Result{}, fmt.Errorf("%w: empty query", internalerr.ErrInvalidInput)
	}

	res, err := p.engine.Entails(ctx, p.kb, q)
	if err != nil {
		return res, err
	}

	if p.store != nil {
		proof := store.Proof{
			ID:         ulid.MustNew(ulid.Timestamp(time.Now()), p.entropy).String(),
			KBName:     p.kbName,
			Query:      q.String(),
			Outcome:    res.Outcome.String(),
			Iterations: res.Iterations,
			Derived:    res.Derived,
			CreatedAt:  time.Now().UTC(),
		}
		if err := p.store.SaveProof(ctx, proof); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Unify unifies two term strings, returning the resulting substitution.
// An empty substitution is a success; failure is an error matching
// internalerr.ErrUnify.
func (p *Prover) Unify(s1, s2 string) (unify.Substitution, error) {
	return unify.UnifyStrings(s1, s2)
}

// History returns the most recent proof sessions from the store.
func (p *Prover) History(ctx context.Context, limit int) ([]store.Proof, error) {
	if p.store == nil {
		return nil, fmt.Errorf("%w: no store attached", internalerr.ErrStoreUnavailable)
	}
	return p.store.ListProofs(ctx, limit)
}
