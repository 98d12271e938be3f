// Package term defines first-order terms and their textual grammar.
//
// A term is a variable (single lowercase letter, by lexical convention), a
// constant (any other atomic token), or a compound: a function or predicate
// name applied to an ordered argument list, written Name(arg1,...,argN).
// Terms are immutable once parsed.
package term

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cognicore/resolv/pkg/resolv/internalerr"
)

// Kind distinguishes the three term shapes.
type Kind int

const (
	Variable Kind = iota
	Constant
	Compound
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Constant:
		return "constant"
	case Compound:
		return "compound"
	}
	return "unknown"
}

// Term is a parsed first-order term. The zero value is not a valid term;
// construct via Parse, NewVariable, NewConstant or NewCompound.
type Term struct {
	Kind Kind
	Name string
	Args []Term // non-empty iff Kind == Compound
}

// NewVariable returns a variable term. The name is taken as given; Parse is
// the place where the single-lowercase-letter convention is applied.
func NewVariable(name string) Term {
	return Term{Kind: Variable, Name: name}
}

// NewConstant returns a constant term.
func NewConstant(name string) Term {
	return Term{Kind: Constant, Name: name}
}

// NewCompound returns a compound term with the given argument list.
func NewCompound(name string, args ...Term) Term {
	return Term{Kind: Compound, Name: name, Args: args}
}

// ParseError reports malformed term text.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s: %q", e.Msg, e.Input)
}

// Unwrap lets callers match with errors.Is(err, internalerr.ErrParse).
func (e *ParseError) Unwrap() error { return internalerr.ErrParse }

// isVariableToken applies the lexical convention: a single ASCII lowercase
// letter is a variable, everything else atomic is a constant.
func isVariableToken(tok string) bool {
	return len(tok) == 1 && tok[0] >= 'a' && tok[0] <= 'z'
}

// Parse parses the textual form of a term. Atomic tokens become variables or
// constants per the lexical convention; Name(a,b,...) becomes a compound with
// recursively parsed arguments. Whitespace around arguments is trimmed.
func Parse(s string) (Term, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Term{}, &ParseError{Input: s, Msg: "empty term"}
	}

	open := strings.IndexByte(s, '(')
	if open == -1 {
		if strings.ContainsAny(s, "),") {
			return Term{}, &ParseError{Input: s, Msg: "stray delimiter in atomic term"}
		}
		if strings.ContainsFunc(s, unicode.IsSpace) {
			return Term{}, &ParseError{Input: s, Msg: "whitespace in atomic term"}
		}
		if isVariableToken(s) {
			return NewVariable(s), nil
		}
		return NewConstant(s), nil
	}

	name := strings.TrimSpace(s[:open])
	if name == "" {
		return Term{}, &ParseError{Input: s, Msg: "missing function name"}
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return Term{}, &ParseError{Input: s, Msg: "whitespace in function name"}
	}
	if s[len(s)-1] != ')' {
		return Term{}, &ParseError{Input: s, Msg: "unbalanced parentheses"}
	}

	inner := s[open+1 : len(s)-1]
	parts, err := splitArgs(inner)
	if err != nil {
		return Term{}, &ParseError{Input: s, Msg: err.Error()}
	}

	args := make([]Term, 0, len(parts))
	for _, part := range parts {
		arg, err := Parse(part)
		if err != nil {
			return Term{}, err
		}
		args = append(args, arg)
	}
	return NewCompound(name, args...), nil
}

// splitArgs splits a compound term's argument text on top-level commas,
// respecting nesting. Depth never goes negative and ends at zero, otherwise
// the parentheses are unbalanced.
func splitArgs(inner string) ([]string, error) {
	if strings.TrimSpace(inner) == "" {
		return nil, fmt.Errorf("empty argument list")
	}

	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses")
			}
		case ',':
			if depth == 0 {
				parts = append(parts, inner[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses")
	}
	parts = append(parts, inner[start:])

	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("empty argument")
		}
	}
	return parts, nil
}

// String renders the canonical textual form: Name(a,b) with no spaces.
func (t Term) String() string {
	if t.Kind != Compound {
		return t.Name
	}
	var sb strings.Builder
	sb.WriteString(t.Name)
	sb.WriteByte('(')
	for i, arg := range t.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal reports structural equality.
func (t Term) Equal(other Term) bool {
	if t.Kind != other.Kind || t.Name != other.Name || len(t.Args) != len(other.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// IsGround reports whether the term contains no variables.
func (t Term) IsGround() bool {
	if t.Kind == Variable {
		return false
	}
	for _, arg := range t.Args {
		if !arg.IsGround() {
			return false
		}
	}
	return true
}

// Variables appends the names of all variables in t, in order of first
// appearance, skipping names already in seen.
func (t Term) Variables(seen map[string]bool, out []string) []string {
	if t.Kind == Variable {
		if !seen[t.Name] {
			seen[t.Name] = true
			out = append(out, t.Name)
		}
		return out
	}
	for _, arg := range t.Args {
		out = arg.Variables(seen, out)
	}
	return out
}

// Rename returns a copy of t with every variable renamed through f.
func (t Term) Rename(f func(string) string) Term {
	switch t.Kind {
	case Variable:
		return NewVariable(f(t.Name))
	case Compound:
		args := make([]Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = arg.Rename(f)
		}
		return Term{Kind: Compound, Name: t.Name, Args: args}
	}
	return t
}
