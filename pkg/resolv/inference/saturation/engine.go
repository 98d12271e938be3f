// Package saturation implements resolution refutation by saturating a
// working clause set until the empty clause or a fixpoint is reached.
package saturation

import (
	"context"

	"github.com/cognicore/resolv/pkg/resolv/clause"
	"github.com/cognicore/resolv/pkg/resolv/inference"
)

// DefaultMaxIterations bounds saturation rounds. First-order inputs with
// function symbols can grow the working set without limit; the bound turns
// that into an Inconclusive outcome instead of a hang.
const DefaultMaxIterations = 100

// Engine runs iterative resolution refutation. Construct with New.
type Engine struct {
	maxIterations int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxIterations overrides the saturation round bound.
func WithMaxIterations(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxIterations = n
		}
	}
}

// New creates a saturation engine.
func New(opts ...Option) *Engine {
	e := &Engine{maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Entails negates the query, unions it into a private copy of the working
// set, and resolves clause pairs until the empty clause appears (Proved),
// no round produces a new clause (NotEntailed), the iteration bound is hit
// (Inconclusive), or ctx expires.
//
// The engine owns the working set exclusively; the caller's knowledge base
// is never mutated.
func (e *Engine) Entails(ctx context.Context, kb *clause.KnowledgeBase, query clause.Clause) (inference.Result, error) {
	working := clause.NewKnowledgeBase(kb.All()...)
	working.Add(query.Negate())

	res := inference.Result{Outcome: inference.Inconclusive}

	for res.Iterations < e.maxIterations {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Iterations++

		clauses := working.All()
		var candidates []clause.Clause
		for i := 0; i < len(clauses); i++ {
			for j := i + 1; j < len(clauses); j++ {
				for _, r := range clause.Resolve(clauses[i], clauses[j]) {
					if r.IsEmpty() {
						res.Outcome = inference.Proved
						return res, nil
					}
					candidates = append(candidates, r)
				}
			}
		}

		added := 0
		for _, c := range candidates {
			if working.Add(c) {
				added++
			}
		}
		res.Derived += added

		// Fixpoint: every candidate was already in the working set.
		if added == 0 {
			res.Outcome = inference.NotEntailed
			return res, nil
		}
	}

	return res, nil
}
