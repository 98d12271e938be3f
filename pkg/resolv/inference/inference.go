package inference

import (
	"context"

	"github.com/cognicore/resolv/pkg/resolv/clause"
)

// Engine decides entailment questions against a knowledge base.
// This interface allows swapping implementations (saturation, future
// indexed or strategy-guided variants).
type Engine interface {
	// Entails reports whether kb logically entails the query clause,
	// by refutation. The knowledge base snapshot is not mutated.
	Entails(ctx context.Context, kb *clause.KnowledgeBase, query clause.Clause) (Result, error)
}

// Outcome is the user-visible verdict of an inference run.
type Outcome int

const (
	// Proved: the empty clause was derived; the query is entailed.
	Proved Outcome = iota
	// NotEntailed: saturation reached a fixpoint without a contradiction.
	NotEntailed
	// Inconclusive: the iteration bound or deadline expired first.
	Inconclusive
)

func (o Outcome) String() string {
	switch o {
	case Proved:
		return "proved"
	case NotEntailed:
		return "not entailed"
	case Inconclusive:
		return "inconclusive"
	}
	return "unknown"
}

// Result describes a completed inference run.
type Result struct {
	Outcome    Outcome
	Iterations int // saturation rounds executed
	Derived    int // distinct new clauses added to the working set
}

// Entailed is a convenience view: true only for Proved.
func (r Result) Entailed() bool { return r.Outcome == Proved }
