package branch

import (
	"fmt"
	"unicode"

	"github.com/katalvlaran/eqsolve/symbol"
)

// Store holds the solution branches of one system. See the package
// documentation for the lifecycle rules.
type Store struct {
	names    []string
	contexts []Bindings
	cur      int
	locked   bool
}

// New creates a store with a single root branch binding each variable to its
// own symbol. Returns ErrNoVariables, ErrInvalidName or
// ErrDuplicateVariable on a bad variable list.
func New(names []string) (*Store, error) {
	if len(names) == 0 {
		return nil, ErrNoVariables
	}

	s := &Store{
		names:    make([]string, 0, len(names)),
		contexts: []Bindings{make(Bindings, len(names))},
	}
	for _, name := range names {
		if err := s.declare(name); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// declare validates a name and binds it to its own symbol in every branch.
func (s *Store) declare(name string) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, existing := range s.names {
		if existing == name {
			return fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
		}
	}
	s.names = append(s.names, name)
	for _, ctx := range s.contexts {
		ctx[name] = symbol.S(name)
	}

	return nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}

// AddVariables declares additional variables. Only allowed while the store
// still holds its single root branch; afterwards it returns ErrLocked.
func (s *Store) AddVariables(names ...string) error {
	if s.locked {
		return ErrLocked
	}
	for _, name := range names {
		if err := s.declare(name); err != nil {
			return err
		}
	}

	return nil
}

// Names returns the declared variable names in declaration order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Has reports whether the store holds the named variable.
func (s *Store) Has(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}

	return false
}

// Len returns the number of branches.
func (s *Store) Len() int { return len(s.contexts) }

// Locked reports whether the variable set is frozen (the store has forked).
func (s *Store) Locked() bool { return s.locked }

// Current returns the index of the current branch.
func (s *Store) Current() int { return s.cur }

// SetCurrent moves the cursor to branch i.
func (s *Store) SetCurrent(i int) error {
	if i < 0 || i >= len(s.contexts) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.contexts))
	}
	s.cur = i

	return nil
}

// Rotate advances the cursor to the next branch, wrapping around.
func (s *Store) Rotate() { s.cur = (s.cur + 1) % len(s.contexts) }

// Fork appends a snapshot of branch i and returns the new branch's index.
// The first fork locks the variable set.
func (s *Store) Fork(i int) (int, error) {
	if i < 0 || i >= len(s.contexts) {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.contexts))
	}
	s.locked = true
	s.contexts = append(s.contexts, s.contexts[i].clone())

	return len(s.contexts) - 1, nil
}

// Remove drops branch i. The last remaining branch cannot be removed. When
// the cursor pointed at or past the removed slot it is pulled back one, so
// it keeps addressing the same branch where possible and never leaves range.
func (s *Store) Remove(i int) error {
	if i < 0 || i >= len(s.contexts) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.contexts))
	}
	if len(s.contexts) == 1 {
		return ErrLastBranch
	}
	s.contexts = append(s.contexts[:i], s.contexts[i+1:]...)
	if s.cur >= i && s.cur > 0 {
		s.cur--
	}

	return nil
}

// Get returns the named variable's expression in the current branch.
func (s *Store) Get(name string) (symbol.Expr, error) {
	return s.GetAt(s.cur, name)
}

// GetAt returns the named variable's expression in branch i.
func (s *Store) GetAt(i int, name string) (symbol.Expr, error) {
	if i < 0 || i >= len(s.contexts) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.contexts))
	}
	expr, ok := s.contexts[i][name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return expr, nil
}

// Set binds the named variable in the current branch only.
func (s *Store) Set(name string, value symbol.Expr) error {
	return s.SetAt(s.cur, name, value)
}

// SetAt binds the named variable in branch i only.
func (s *Store) SetAt(i int, name string, value symbol.Expr) error {
	if i < 0 || i >= len(s.contexts) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.contexts))
	}
	if _, ok := s.contexts[i][name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	s.contexts[i][name] = value

	return nil
}

// SetAll binds the named variable to the same value in every branch.
func (s *Store) SetAll(name string, value symbol.Expr) error {
	if !s.Has(name) {
		return fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	for _, ctx := range s.contexts {
		ctx[name] = value
	}

	return nil
}

// Reset rebinds the named variable to its own symbol in every branch.
func (s *Store) Reset(name string) error {
	return s.SetAll(name, symbol.S(name))
}

// Bindings returns an independent copy of branch i's bindings.
func (s *Store) Bindings(i int) (Bindings, error) {
	if i < 0 || i >= len(s.contexts) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.contexts))
	}

	return s.contexts[i].clone(), nil
}

// Snapshot returns independent copies of every branch's bindings, in branch
// order.
func (s *Store) Snapshot() []Bindings {
	out := make([]Bindings, len(s.contexts))
	for i, ctx := range s.contexts {
		out[i] = ctx.clone()
	}

	return out
}

// Uniform returns the named variable's value when it is content-identical
// across every branch, and reports whether it is.
func (s *Store) Uniform(name string) (symbol.Expr, bool) {
	first, ok := s.contexts[0][name]
	if !ok {
		return nil, false
	}
	key := first.String()
	for _, ctx := range s.contexts[1:] {
		if ctx[name].String() != key {
			return nil, false
		}
	}

	return first, true
}

// Values returns the distinct values the named variable takes across all
// branches, in branch order of first appearance.
func (s *Store) Values(name string) ([]symbol.Expr, error) {
	if !s.Has(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	seen := make(map[string]struct{}, len(s.contexts))
	out := make([]symbol.Expr, 0, len(s.contexts))
	for _, ctx := range s.contexts {
		expr := ctx[name]
		key := expr.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, expr)
	}

	return out, nil
}
