package solver

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/eqsolve/symbol"
)

var (
	// ErrBadArity is returned by Solve when an equation function does not
	// return exactly two expressions (left side, right side).
	ErrBadArity = errors.New("solver: equation must return exactly two expressions")

	// ErrUnresolved is returned BY procedure functions to signal that their
	// inputs are not numeric yet; Solve skips the procedure for that branch
	// and will try again on a later pass.
	ErrUnresolved = errors.New("solver: inputs not resolved yet")

	// ErrNoConsistentSolution reports that no branch survives: every
	// candidate assignment contradicts at least one relation. Returned
	// wrapped inside *UnsolvableError.
	ErrNoConsistentSolution = errors.New("solver: no consistent solution")
)

// Epsilon is the default relative tolerance for numeric comparisons.
const Epsilon = 1e-10

// Var declares one system variable.
type Var struct {
	// Name must be a valid identifier, unique within the system.
	Name string

	// Description is free-form documentation, retrievable via
	// System.Description.
	Description string
}

// EquationFunc returns the two sides of a relation, specialized to the
// branch behind the Context. Exactly two expressions are required.
type EquationFunc func(c *Context) []symbol.Expr

// ProcedureFunc is an imperative helper run before each solving turn. Return
// ErrUnresolved when required inputs are not numeric yet; any other non-nil
// error aborts Solve.
type ProcedureFunc func(c *Context) error

// Kind classifies a relation within one branch.
type Kind uint8

const (
	// KindUsable marks a relation that still constrains at least one
	// unresolved variable.
	KindUsable Kind = iota

	// KindRedundant marks a relation already satisfied by the branch.
	KindRedundant

	// KindContradiction marks a relation the branch provably violates.
	KindContradiction
)

func (k Kind) String() string {
	switch k {
	case KindUsable:
		return "usable"
	case KindRedundant:
		return "redundant"
	case KindContradiction:
		return "contradiction"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Relation is one classified equation instance within a branch.
type Relation struct {
	// Residual is the canonical left − right form; the relation asserts
	// Residual = 0.
	Residual symbol.Expr

	// Kind is the classification outcome.
	Kind Kind
}

// UnsolvableError reports global inconsistency. Contradictions holds, per
// pruned branch, the canonical residuals that condemned it; empty when the
// failure was detected as a stalled pass over a provably inconsistent
// relation subset rather than per-branch contradictions.
type UnsolvableError struct {
	Contradictions [][]Relation
}

func (e *UnsolvableError) Error() string {
	if len(e.Contradictions) == 0 {
		return ErrNoConsistentSolution.Error()
	}

	var b strings.Builder
	b.WriteString(ErrNoConsistentSolution.Error())
	b.WriteString(": ")
	for i, set := range e.Contradictions {
		if i > 0 {
			b.WriteString("; ")
		}
		for j, rel := range set {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(rel.Residual.String())
			b.WriteString(" != 0")
		}
	}

	return b.String()
}

// Unwrap lets errors.Is(err, ErrNoConsistentSolution) match.
func (e *UnsolvableError) Unwrap() error { return ErrNoConsistentSolution }

// Options bundles the tunable parameters of a System.
type Options struct {
	// Logger receives progress and diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger

	// Epsilon is the relative tolerance for numeric comparisons.
	Epsilon float64

	// UnitSeed seeds the unit-substitution tables; a fixed seed makes
	// dimensional checks reproducible.
	UnitSeed int64
}

// DefaultOptions returns the canonical defaults.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		Epsilon:  Epsilon,
		UnitSeed: 1,
	}
}

// Option overrides one field of Options.
type Option func(*Options)

// WithLogger installs a structured logger. A nil logger falls back to the
// no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithEpsilon overrides the relative comparison tolerance. Non-positive
// values keep the default.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// WithUnitSeed seeds the Monte-Carlo unit tables.
func WithUnitSeed(seed int64) Option {
	return func(o *Options) { o.UnitSeed = seed }
}
