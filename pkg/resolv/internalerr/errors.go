package internalerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrParse marks malformed literal or term text.
	ErrParse = errors.New("parse error")

	// ErrUnify marks a failed unification attempt. An empty substitution is a
	// success; failure is always reported through this sentinel family.
	ErrUnify = errors.New("unification failure")

	// ErrArity specializes ErrUnify: same function name, differing argument counts.
	ErrArity = fmt.Errorf("%w: arity mismatch", ErrUnify)
)
