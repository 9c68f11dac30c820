package solver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/eqsolve/symbol"
)

// Solve runs the branching solver to completion. On success every branch
// holds one maximal consistent assignment; globally inconsistent systems
// return an *UnsolvableError. Re-solving an already solved system is logged
// and re-runs the full pass.
func (s *System) Solve() error {
	if s.solved {
		s.log.Warn("system already solved; running again")
	}
	s.marks = make(map[uint64][]Relation)
	s.badSolution = false

	before := s.snapshotKey()

	// Round-robin: every branch gets a turn, new forks are appended ahead of
	// the wrap-around and get theirs too.
	start := s.store.Current()
	for {
		cur := s.store.Current()
		deleted, err := s.solveBranch()
		if err != nil {
			return err
		}
		if deleted {
			// The turn removed its own branch, sliding every later branch
			// down one slot. The anchor has to slide with them, and when the
			// anchor branch itself is the one removed, the wrap point moves
			// to its successor so every survivor still gets its turn.
			next := (cur + 1) % (s.store.Len() + 1)
			if next == start {
				break // the deleted branch held the last turn of the pass
			}
			switch {
			case cur == start:
				start = cur % s.store.Len()
			case cur < start:
				start--
			}
			if cur == 0 {
				// Remove left the cursor on the successor already.
				continue
			}
		}
		s.store.Rotate()
		if s.store.Current() == start {
			break
		}
	}

	if err := s.prune(); err != nil {
		return err
	}

	// A provably inconsistent relation subset was seen and the whole pass
	// moved nothing: there is no consistent solution to converge to.
	if s.badSolution && s.snapshotKey() == before {
		return &UnsolvableError{}
	}

	s.solved = true
	s.log.Debug("solve complete", zap.Int("branches", s.store.Len()))

	return nil
}

// solveBranch gives the current branch one turn: procedures, relation
// collection, then subset search. Applying a solution recurses so the new
// facts feed straight back into the same branch. deleted reports that a
// procedure removed the branch, which ends the turn and shifts the
// rotation's indices.
func (s *System) solveBranch() (deleted bool, err error) {
	ctx := &Context{sys: s}
	if done, err := s.runProcedures(ctx); done || err != nil {
		return done, err
	}

	relations, contradicted, err := s.collectRelations(ctx)
	if err != nil || contradicted || len(relations) == 0 {
		return false, err
	}

	// Smallest subsets first: a single relation that pins a variable down
	// beats dragging the full system into the oracle.
	n := len(relations)
	for size := 1; size <= n; size++ {
		for _, combo := range combinations(n, size) {
			residuals := make([]symbol.Expr, size)
			for i, idx := range combo {
				residuals[i] = relations[idx].Residual
			}
			unknowns := sortedFreeSymbols(residuals)
			sols, err := symbol.SolveSystem(residuals, unknowns,
				symbol.WithUnitTables(s.tables.Maps()...))
			if errors.Is(err, symbol.ErrNonAlgebraic) {
				continue
			}
			if err != nil {
				return false, err
			}
			if len(sols) == 0 {
				// Provably inconsistent subset. Remember it: if the pass
				// also stalls, the system as a whole has no solution.
				s.badSolution = true

				continue
			}
			if len(unknowns) == 0 {
				// Constant residuals only; nothing to bind.
				continue
			}

			complete := completeSolutions(sols, unknowns)
			if len(complete) == 0 {
				continue
			}

			if err := s.applySolutions(complete); err != nil {
				return false, err
			}
			s.log.Debug("relation subset solved",
				zap.Ints("subset", combo),
				zap.Int("branch", s.store.Current()),
				zap.Int("forks", len(complete)-1))

			return s.solveBranch()
		}
	}

	// Nothing solvable symbolically; procedures may still conclude from the
	// facts accumulated this turn.
	return s.runProcedures(ctx)
}

// runProcedures runs every registered procedure against the current branch.
// ErrUnresolved skips; done reports that a procedure deleted the branch.
func (s *System) runProcedures(ctx *Context) (done bool, err error) {
	for _, proc := range s.procedures {
		if err := proc(ctx); err != nil && !errors.Is(err, ErrUnresolved) {
			return false, err
		}
		if ctx.deleted {
			ctx.deleted = false

			return true, nil
		}
	}

	return false, nil
}

// collectRelations evaluates every equation in the current branch and
// classifies it. Redundant relations are dropped, duplicates collapse, and
// the first contradiction marks the branch for pruning and ends its turn.
func (s *System) collectRelations(ctx *Context) ([]Relation, bool, error) {
	seen := make(map[string]struct{}, len(s.equations))
	relations := make([]Relation, 0, len(s.equations))
	for _, eq := range s.equations {
		sides := eq(ctx)
		if len(sides) != 2 {
			return nil, false, fmt.Errorf("%w: got %d", ErrBadArity, len(sides))
		}

		kind, residual := s.classify(sides[0], sides[1])
		switch kind {
		case KindRedundant:
			continue
		case KindContradiction:
			rel := Relation{Residual: residual, Kind: kind}
			s.markCurrent(rel)
			s.log.Debug("contradiction found",
				zap.Int("branch", s.store.Current()),
				zap.String("residual", residual.String()))

			return nil, true, nil
		}

		key := residual.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		relations = append(relations, Relation{Residual: residual, Kind: kind})
	}

	return relations, false, nil
}

// applySolutions installs the first solution into the current branch and
// forks one new branch per extra solution. Forks snapshot the bindings
// BEFORE the first solution lands, so siblings share history only up to
// this decision point.
func (s *System) applySolutions(sols []map[string]symbol.Expr) error {
	cur := s.store.Current()
	for _, cand := range sols[1:] {
		idx, err := s.store.Fork(cur)
		if err != nil {
			return err
		}
		for name, value := range cand {
			if err := s.store.SetAt(idx, name, value); err != nil {
				return err
			}
		}
	}
	for name, value := range sols[0] {
		if err := s.store.Set(name, value); err != nil {
			return err
		}
	}

	return nil
}

// completeSolutions keeps only fully numeric candidates: every unknown
// bound, no free symbols left in any value. Unit-carrying values count as
// numeric.
func completeSolutions(sols []map[string]symbol.Expr, unknowns []string) []map[string]symbol.Expr {
	out := make([]map[string]symbol.Expr, 0, len(sols))
	for _, sol := range sols {
		ok := true
		for _, name := range unknowns {
			value, bound := sol[name]
			if !bound || len(symbol.FreeSymbols(value)) > 0 {
				ok = false

				break
			}
		}
		if ok {
			out = append(out, sol)
		}
	}

	return out
}

// sortedFreeSymbols returns the union of free symbols over the residuals,
// sorted for deterministic oracle input.
func sortedFreeSymbols(residuals []symbol.Expr) []string {
	set := make(map[string]struct{})
	for _, r := range residuals {
		for name := range symbol.FreeSymbols(r) {
			set[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// combinations enumerates the k-subsets of {0,…,n−1} in lexicographic
// order. n is the number of usable relations, small in practice.
func combinations(n, k int) [][]int {
	var out [][]int
	combo := make([]int, k)
	var rec func(startAt, pos int)
	rec = func(startAt, pos int) {
		if pos == k {
			out = append(out, append([]int(nil), combo...))

			return
		}
		for i := startAt; i <= n-(k-pos); i++ {
			combo[pos] = i
			rec(i+1, pos+1)
		}
	}
	rec(0, 0)

	return out
}

// snapshotKey serializes every branch's bindings into one canonical string,
// used to detect a pass that made no progress at all.
func (s *System) snapshotKey() string {
	var b strings.Builder
	for _, bindings := range s.store.Snapshot() {
		names := make([]string, 0, len(bindings))
		for name := range bindings {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(name)
			b.WriteByte('=')
			b.WriteString(bindings[name].String())
			b.WriteByte(';')
		}
		b.WriteByte('|')
	}

	return b.String()
}
