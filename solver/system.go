package solver

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/eqsolve/branch"
	"github.com/katalvlaran/eqsolve/symbol"
	"github.com/katalvlaran/eqsolve/unit"
)

// System is one declarative equation system: a variable set, the relations
// and procedures over it, and the forest of solution branches.
type System struct {
	opts Options
	log  *zap.Logger

	store        *branch.Store
	descriptions map[string]string

	equations  []EquationFunc
	procedures []ProcedureFunc

	tables unit.SubTables

	// minFloat tracks the smallest nonzero magnitude seen in any relation;
	// it calibrates comparisons against zero. +Inf until first observation.
	minFloat float64

	// marks collects branch fingerprints condemned by a contradiction during
	// the current pass, with the relations that condemned them.
	marks map[uint64][]Relation

	badSolution bool
	solved      bool
}

// NewSystem creates a system over the given variables.
func NewSystem(vars []Var, opts ...Option) (*System, error) {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	store, err := branch.New(names)
	if err != nil {
		return nil, err
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	s := &System{
		opts:         options,
		log:          options.Logger,
		store:        store,
		descriptions: make(map[string]string, len(vars)),
		tables:       unit.New(options.UnitSeed),
		minFloat:     math.Inf(1),
		marks:        make(map[uint64][]Relation),
	}
	for _, v := range vars {
		s.descriptions[v.Name] = v.Description
	}

	return s, nil
}

// Equation registers a relation. Relations are consulted in registration
// order, which fixes the solve order for equal-size relation subsets.
func (s *System) Equation(fn EquationFunc) { s.equations = append(s.equations, fn) }

// Procedure registers an imperative helper, run before each solving turn.
func (s *System) Procedure(fn ProcedureFunc) { s.procedures = append(s.procedures, fn) }

// AddVariables declares additional variables. Only allowed before the first
// fork; afterwards branch.ErrLocked is returned.
func (s *System) AddVariables(vars ...Var) error {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	if err := s.store.AddVariables(names...); err != nil {
		return err
	}
	for _, v := range vars {
		s.descriptions[v.Name] = v.Description
	}

	return nil
}

// Get returns the named variable's value in the current branch. An unsolved
// variable comes back as its own symbol.
func (s *System) Get(name string) (symbol.Expr, error) { return s.store.Get(name) }

// Set binds the named variable in every branch: an external assignment is a
// given, not a branch-local deduction. Setting after Solve is almost always
// a mistake (the solved state no longer reflects the equations) and is
// logged, but still applied.
func (s *System) Set(name string, value symbol.Expr) error {
	if s.solved {
		s.log.Warn("variable set after solve; solution may no longer be consistent",
			zap.String("variable", name))
	}

	return s.store.SetAll(name, value.Simplify())
}

// ClearVariable rebinds the named variable to its own symbol in every branch.
func (s *System) ClearVariable(name string) error { return s.store.Reset(name) }

// Description returns the declared description of a variable.
func (s *System) Description(name string) (string, error) {
	if !s.store.Has(name) {
		return "", fmt.Errorf("%w: %q", branch.ErrUnknownVariable, name)
	}

	return s.descriptions[name], nil
}

// BranchCount returns the number of live branches.
func (s *System) BranchCount() int { return s.store.Len() }

// CurrentBranch returns the index of the current branch.
func (s *System) CurrentBranch() int { return s.store.Current() }

// SwitchBranch moves the cursor to branch i.
func (s *System) SwitchBranch(i int) error { return s.store.SetCurrent(i) }

// RotateBranch advances the cursor to the next branch, wrapping around.
func (s *System) RotateBranch() { s.store.Rotate() }

// DeleteCurrentBranch removes the current branch; the last branch cannot be
// removed.
func (s *System) DeleteCurrentBranch() error { return s.store.Remove(s.store.Current()) }

// AllBindings returns an independent copy of every branch's bindings.
func (s *System) AllBindings() []branch.Bindings { return s.store.Snapshot() }

// Values returns the distinct values the named variable takes across all
// branches.
func (s *System) Values(name string) ([]symbol.Expr, error) { return s.store.Values(name) }

// Solved reports whether Solve has completed on this system.
func (s *System) Solved() bool { return s.solved }

// Context is the view of one branch handed to equations and procedures.
type Context struct {
	sys *System

	// deleted is set when the running procedure removed its own branch; the
	// rest of the branch's turn is skipped.
	deleted bool
}

// Get returns the named variable's value in the branch. Unknown names panic:
// an equation referencing an undeclared variable is a programming error, not
// a runtime condition.
func (c *Context) Get(name string) symbol.Expr {
	expr, err := c.sys.store.Get(name)
	if err != nil {
		panic(err)
	}

	return expr
}

// Set binds the named variable. When the variable's current value is
// identical in every branch the write is a shared fact and propagates to all
// branches; once values have diverged the write stays local to this branch.
func (c *Context) Set(name string, value symbol.Expr) error {
	value = value.Simplify()
	if _, uniform := c.sys.store.Uniform(name); uniform {
		return c.sys.store.SetAll(name, value)
	}

	return c.sys.store.Set(name, value)
}

// Branch returns the index of the branch this context serves.
func (c *Context) Branch() int { return c.sys.store.Current() }

// Resolved reports whether every named variable is numeric (no free
// symbols) in this branch. Unknown names count as unresolved.
func (c *Context) Resolved(names ...string) bool {
	for _, name := range names {
		expr, err := c.sys.store.Get(name)
		if err != nil {
			return false
		}
		if len(symbol.FreeSymbols(expr)) > 0 {
			return false
		}
	}

	return true
}

// DeleteBranch removes this branch, ending its turn. The last remaining
// branch cannot be removed.
func (c *Context) DeleteBranch() error {
	if err := c.sys.store.Remove(c.sys.store.Current()); err != nil {
		return err
	}
	c.deleted = true

	return nil
}
