// Package unify implements Robinson-style unification over first-order terms.
//
// A successful unification yields a Substitution; an empty substitution is a
// valid success (the terms were already identical) and is never used to signal
// failure. Failure is an explicit error matching internalerr.ErrUnify.
package unify

import (
	"fmt"

	"github.com/cognicore/resolv/pkg/resolv/internalerr"
	"github.com/cognicore/resolv/pkg/resolv/term"
)

// Substitution maps variable names to terms. Built incrementally during a
// unification call and discarded afterwards.
type Substitution map[string]term.Term

// Clone returns an independent copy.
func (s Substitution) Clone() Substitution {
	out := make(Substitution, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Lookup returns the binding for a variable name, if any.
func (s Substitution) Lookup(name string) (term.Term, bool) {
	t, ok := s[name]
	return t, ok
}

// Resolve rewrites t under the substitution: bound variables are chased
// through binding chains, compound arguments are rewritten recursively.
// Resolve is idempotent for acyclic substitutions.
func (s Substitution) Resolve(t term.Term) term.Term {
	switch t.Kind {
	case term.Variable:
		bound, ok := s[t.Name]
		if !ok {
			return t
		}
		// Chain through intermediate variables, e.g. {x->y, y->John}.
		if bound.Kind == term.Variable && bound.Name == t.Name {
			return bound
		}
		return s.Resolve(bound)
	case term.Compound:
		args := make([]term.Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.Resolve(arg)
		}
		return term.NewCompound(t.Name, args...)
	}
	return t
}

// occurs reports whether the variable name appears in t, chasing any
// existing bindings. Used to keep substitutions acyclic: a binding must
// never make a variable depend on itself.
func (s Substitution) occurs(name string, t term.Term) bool {
	switch t.Kind {
	case term.Variable:
		if t.Name == name {
			return true
		}
		if bound, ok := s[t.Name]; ok {
			return s.occurs(name, bound)
		}
		return false
	case term.Compound:
		for _, arg := range t.Args {
			if s.occurs(name, arg) {
				return true
			}
		}
	}
	return false
}

// Unify unifies two terms under an optional existing substitution and
// returns the extended substitution. The caller's substitution is never
// mutated. On failure the returned error matches internalerr.ErrUnify;
// arity conflicts additionally match internalerr.ErrArity.
func Unify(t1, t2 term.Term, s Substitution) (Substitution, error) {
	if s == nil {
		s = Substitution{}
	} else {
		s = s.Clone()
	}
	if err := unify(t1, t2, s); err != nil {
		return nil, err
	}
	return s, nil
}

// UnifyStrings parses both inputs and unifies them.
func UnifyStrings(s1, s2 string) (Substitution, error) {
	t1, err := term.Parse(s1)
	if err != nil {
		return nil, err
	}
	t2, err := term.Parse(s2)
	if err != nil {
		return nil, err
	}
	return Unify(t1, t2, nil)
}

func unify(t1, t2 term.Term, s Substitution) error {
	if t1.Equal(t2) {
		return nil
	}
	if t1.Kind == term.Variable {
		return unifyVar(t1, t2, s)
	}
	if t2.Kind == term.Variable {
		return unifyVar(t2, t1, s)
	}

	if t1.Kind == term.Compound && t2.Kind == term.Compound {
		if t1.Name != t2.Name {
			return fmt.Errorf("%w: %s vs %s", internalerr.ErrUnify, t1.Name, t2.Name)
		}
		if len(t1.Args) != len(t2.Args) {
			return fmt.Errorf("%w: %s/%d vs %s/%d",
				internalerr.ErrArity, t1.Name, len(t1.Args), t2.Name, len(t2.Args))
		}
		for i := range t1.Args {
			if err := unify(t1.Args[i], t2.Args[i], s); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("%w: %s vs %s", internalerr.ErrUnify, t1, t2)
}

// unifyVar binds a variable. If either side already has a binding, unify
// through the binding instead of stacking a second one.
func unifyVar(v, other term.Term, s Substitution) error {
	if bound, ok := s[v.Name]; ok {
		return unify(bound, other, s)
	}
	if other.Kind == term.Variable {
		if other.Name == v.Name {
			return nil
		}
		if bound, ok := s[other.Name]; ok {
			return unify(v, bound, s)
		}
	}
	if s.occurs(v.Name, other) {
		return fmt.Errorf("%w: occurs check: %s in %s", internalerr.ErrUnify, v.Name, other)
	}
	s[v.Name] = other
	return nil
}
