// Package clause defines polarity-tagged literals, clauses as literal sets,
// and binary resolution between clauses.
package clause

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cognicore/resolv/pkg/resolv/term"
	"github.com/cognicore/resolv/pkg/resolv/unify"
)

// Negation markers accepted on literal text. The canonical form uses "¬";
// "~" is an ASCII convenience for shells and config files.
const (
	NegationMark      = "¬"
	NegationMarkASCII = "~"
)

// Literal is a polarity-tagged term.
type Literal struct {
	Negated bool
	Atom    term.Term
}

// ParseLiteral parses a literal's textual form, stripping an optional
// negation prefix before parsing the atom.
func ParseLiteral(s string) (Literal, error) {
	s = strings.TrimSpace(s)
	negated := false
	switch {
	case strings.HasPrefix(s, NegationMark):
		negated = true
		s = s[len(NegationMark):]
	case strings.HasPrefix(s, NegationMarkASCII):
		negated = true
		s = s[len(NegationMarkASCII):]
	}
	atom, err := term.Parse(s)
	if err != nil {
		return Literal{}, err
	}
	return Literal{Negated: negated, Atom: atom}, nil
}

// Negate returns the literal with its polarity flipped.
func (l Literal) Negate() Literal {
	return Literal{Negated: !l.Negated, Atom: l.Atom}
}

// Apply rewrites the literal's atom under the substitution.
func (l Literal) Apply(sub unify.Substitution) Literal {
	return Literal{Negated: l.Negated, Atom: sub.Resolve(l.Atom)}
}

// String renders the canonical textual form; two literals are equal iff
// their canonical forms match.
func (l Literal) String() string {
	if l.Negated {
		return NegationMark + l.Atom.String()
	}
	return l.Atom.String()
}

// Equal reports literal equality by polarity and atom structure.
func (l Literal) Equal(other Literal) bool {
	return l.Negated == other.Negated && l.Atom.Equal(other.Atom)
}

// Clause is an immutable set of literals, read as their disjunction.
// Literals are deduplicated by canonical form and kept sorted so that the
// clause's own canonical form is stable.
type Clause struct {
	lits []Literal
}

// New builds a clause from literals, deduplicating by canonical form.
func New(lits ...Literal) Clause {
	seen := make(map[string]bool, len(lits))
	kept := make([]Literal, 0, len(lits))
	for _, l := range lits {
		key := l.String()
		if !seen[key] {
			seen[key] = true
			kept = append(kept, l)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].String() < kept[j].String() })
	return Clause{lits: kept}
}

// Parse builds a clause from literal strings.
func Parse(lits []string) (Clause, error) {
	parsed := make([]Literal, 0, len(lits))
	for _, s := range lits {
		l, err := ParseLiteral(s)
		if err != nil {
			return Clause{}, fmt.Errorf("literal %q: %w", s, err)
		}
		parsed = append(parsed, l)
	}
	return New(parsed...), nil
}

// IsEmpty reports whether the clause has no literals (the contradiction).
func (c Clause) IsEmpty() bool { return len(c.lits) == 0 }

// Len returns the number of distinct literals.
func (c Clause) Len() int { return len(c.lits) }

// Literals returns a copy of the literal set.
func (c Clause) Literals() []Literal {
	out := make([]Literal, len(c.lits))
	copy(out, c.lits)
	return out
}

// Contains reports whether the clause holds a literal equal to l.
func (c Clause) Contains(l Literal) bool {
	key := l.String()
	for _, m := range c.lits {
		if m.String() == key {
			return true
		}
	}
	return false
}

// Negate flips the polarity of every literal. This is how the driver forms
// the negated query clause.
func (c Clause) Negate() Clause {
	out := make([]Literal, len(c.lits))
	for i, l := range c.lits {
		out[i] = l.Negate()
	}
	return New(out...)
}

// Apply rewrites every literal under the substitution and returns a new
// clause. The receiver is never mutated.
func (c Clause) Apply(sub unify.Substitution) Clause {
	out := make([]Literal, len(c.lits))
	for i, l := range c.lits {
		out[i] = l.Apply(sub)
	}
	return New(out...)
}

// String renders the clause as its literals joined by " ∨ ", or "□" for the
// empty clause.
func (c Clause) String() string {
	if c.IsEmpty() {
		return "□"
	}
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ∨ ")
}

// Canonical returns the clause's set-membership key: its literals in sorted
// order after canonical variable numbering, so clauses differing only in
// variable names collapse to one key.
func (c Clause) Canonical() string {
	return c.Normalize().String()
}

// Variables returns the names of all variables in the clause, in order of
// first appearance across the sorted literal set.
func (c Clause) Variables() []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range c.lits {
		out = l.Atom.Variables(seen, out)
	}
	return out
}

// Rename returns a copy of the clause with every variable renamed through f.
func (c Clause) Rename(f func(string) string) Clause {
	out := make([]Literal, len(c.lits))
	for i, l := range c.lits {
		out[i] = Literal{Negated: l.Negated, Atom: l.Atom.Rename(f)}
	}
	return New(out...)
}

// Normalize renames variables to a canonical v1, v2, ... numbering by first
// appearance. Resolution renames clauses apart with fresh variables, so
// without this step saturation would keep deriving the same clause under
// ever-new names and never reach a fixpoint.
func (c Clause) Normalize() Clause {
	mapping := make(map[string]string)
	next := 1
	return c.Rename(func(v string) string {
		if canon, ok := mapping[v]; ok {
			return canon
		}
		canon := fmt.Sprintf("v%d", next)
		next++
		mapping[v] = canon
		return canon
	})
}

// without returns the clause's literals minus the one at index i.
func (c Clause) without(i int) []Literal {
	out := make([]Literal, 0, len(c.lits)-1)
	out = append(out, c.lits[:i]...)
	out = append(out, c.lits[i+1:]...)
	return out
}

// Resolve produces every resolvent of two clauses. For each opposite-polarity
// literal pair whose atoms unify, the resolvent is the union of the remaining
// literals rewritten under the unifier. The second clause is renamed apart
// first so that a variable name shared across the two clauses cannot cause an
// accidental binding. A pair that fails to unify simply contributes nothing.
// Resolvents are normalized and deduplicated.
func Resolve(a, b Clause) []Clause {
	b = b.Rename(func(v string) string { return v + "'" })

	var out []Clause
	seen := make(map[string]bool)
	for i, la := range a.lits {
		for j, lb := range b.lits {
			if la.Negated == lb.Negated {
				continue
			}
			sub, err := unify.Unify(la.Atom, lb.Atom, nil)
			if err != nil {
				continue
			}
			rest := append(a.without(i), b.without(j)...)
			resolvent := New(rest...).Apply(sub).Normalize()
			key := resolvent.String()
			if !seen[key] {
				seen[key] = true
				out = append(out, resolvent)
			}
		}
	}
	return out
}

// KnowledgeBase is a monotonically growing clause set keyed by canonical
// form. It is owned by a single inference run and is not safe for
// concurrent use.
type KnowledgeBase struct {
	clauses map[string]Clause
	order   []Clause
}

// NewKnowledgeBase builds a knowledge base from initial clauses.
func NewKnowledgeBase(clauses ...Clause) *KnowledgeBase {
	kb := &KnowledgeBase{clauses: make(map[string]Clause)}
	for _, c := range clauses {
		kb.Add(c)
	}
	return kb
}

// Add inserts a clause, reporting whether it was genuinely new.
func (kb *KnowledgeBase) Add(c Clause) bool {
	key := c.Canonical()
	if _, ok := kb.clauses[key]; ok {
		return false
	}
	kb.clauses[key] = c
	kb.order = append(kb.order, c)
	return true
}

// Contains reports whether an equivalent clause (up to variable renaming)
// is already present.
func (kb *KnowledgeBase) Contains(c Clause) bool {
	_, ok := kb.clauses[c.Canonical()]
	return ok
}

// Len returns the number of clauses.
func (kb *KnowledgeBase) Len() int { return len(kb.order) }

// All returns a snapshot of the clause set in insertion order.
func (kb *KnowledgeBase) All() []Clause {
	out := make([]Clause, len(kb.order))
	copy(out, kb.order)
	return out
}
