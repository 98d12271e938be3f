package resolv

import (
	"context"
	"errors"
	"testing"

	"github.com/cognicore/resolv/pkg/resolv/config"
	"github.com/cognicore/resolv/pkg/resolv/inference"
	"github.com/cognicore/resolv/pkg/resolv/internalerr"
	"github.com/cognicore/resolv/pkg/resolv/store/memstore"
)

func royaltyKB() *config.KnowledgeBase {
	return &config.KnowledgeBase{
		Name: "royalty",
		Clauses: [][]string{
			{"¬King(x)", "¬Greedy(x)", "Evil(x)"},
			{"King(John)"},
			{"Greedy(x)"},
		},
	}
}

func TestAskProved(t *testing.T) {
	p := New(Options{Store: memstore.New()})
	defer p.Close()
	ctx := context.Background()

	if err := p.LoadKnowledgeBase(ctx, royaltyKB()); err != nil {
		t.Fatalf("LoadKnowledgeBase failed: %v", err)
	}

	res, err := p.Ask(ctx, []string{"Evil(John)"})
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if res.Outcome != inference.Proved {
		t.Errorf("outcome = %v, want proved", res.Outcome)
	}

	history, err := p.History(ctx, 10)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected one recorded proof, got %d", len(history))
	}
	rec := history[0]
	if rec.KBName != "royalty" || rec.Query != "Evil(John)" || rec.Outcome != "proved" {
		t.Errorf("unexpected proof record: %+v", rec)
	}
	if rec.ID == "" {
		t.Error("proof should carry a ULID")
	}
}

func TestAskNotEntailed(t *testing.T) {
	p := New(Options{})
	ctx := context.Background()

	for _, c := range [][]string{{"A"}, {"B"}} {
		if _, err := p.AddClause(ctx, c); err != nil {
			t.Fatalf("AddClause failed: %v", err)
		}
	}
	res, err := p.Ask(ctx, []string{"C"})
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if res.Outcome != inference.NotEntailed {
		t.Errorf("outcome = %v, want not entailed", res.Outcome)
	}
}

func TestAddClauseDedupes(t *testing.T) {
	p := New(Options{})
	ctx := context.Background()

	added, err := p.AddClause(ctx, []string{"King(John)"})
	if err != nil || !added {
		t.Fatalf("first add = (%v, %v), want (true, nil)", added, err)
	}
	added, err = p.AddClause(ctx, []string{"King(John)"})
	if err != nil || added {
		t.Fatalf("second add = (%v, %v), want (false, nil)", added, err)
	}
	if len(p.KnowledgeBase()) != 1 {
		t.Errorf("knowledge base should hold one clause")
	}
}

func TestAskRejectsMalformedQuery(t *testing.T) {
	p := New(Options{})
	if _, err := p.Ask(context.Background(), []string{"Evil(John"}); !errors.Is(err, internalerr.ErrParse) {
		t.Errorf("malformed query should be ErrParse, got %v", err)
	}
	if _, err := p.Ask(context.Background(), nil); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("empty query should be ErrInvalidInput, got %v", err)
	}
}

func TestUnifyPassThrough(t *testing.T) {
	p := New(Options{})
	sub, err := p.Unify("Parent(x,y)", "Parent(John,Mary)")
	if err != nil {
		t.Fatalf("Unify failed: %v", err)
	}
	if len(sub) != 2 {
		t.Errorf("expected two bindings, got %v", sub)
	}
	if _, err := p.Unify("John", "Mary"); !errors.Is(err, internalerr.ErrUnify) {
		t.Errorf("failure should match ErrUnify, got %v", err)
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	p := New(Options{})
	if _, err := p.History(context.Background(), 5); !errors.Is(err, internalerr.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}
