package branch

import (
	"errors"

	"github.com/katalvlaran/eqsolve/symbol"
)

var (
	// ErrNoVariables is returned by New when the variable list is empty.
	ErrNoVariables = errors.New("branch: at least one variable is required")

	// ErrInvalidName is returned when a variable name is not a valid
	// identifier (letter or underscore, then letters, digits, underscores).
	ErrInvalidName = errors.New("branch: invalid variable name")

	// ErrDuplicateVariable is returned when a variable name is declared twice.
	ErrDuplicateVariable = errors.New("branch: variable already declared")

	// ErrUnknownVariable is returned when an operation names a variable the
	// store does not hold.
	ErrUnknownVariable = errors.New("branch: unknown variable")

	// ErrLocked is returned by AddVariables once the store has forked.
	ErrLocked = errors.New("branch: variable set is locked after first fork")

	// ErrIndexOutOfRange is returned when a branch index is out of bounds.
	ErrIndexOutOfRange = errors.New("branch: branch index out of range")

	// ErrLastBranch is returned by Remove when only one branch remains.
	ErrLastBranch = errors.New("branch: cannot remove the last branch")
)

// Bindings maps variable names to their current expressions within one
// branch. An unsolved variable maps to its own symbol.Sym.
type Bindings map[string]symbol.Expr

// clone returns an independent shallow copy; expressions are immutable, so
// sharing them across branches is safe.
func (b Bindings) clone() Bindings {
	out := make(Bindings, len(b))
	for name, expr := range b {
		out[name] = expr
	}

	return out
}
