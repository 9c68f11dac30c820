package solver

import (
	"errors"
	"sort"

	"github.com/mitchellh/hashstructure/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/eqsolve/branch"
)

// markCurrent condemns the current branch: its binding fingerprint joins the
// prune set together with the relation that contradicted it. Deletion is
// deferred to the end of the pass so the remaining branches keep their turns
// and indices.
func (s *System) markCurrent(rel Relation) {
	fp := s.fingerprint(s.store.Current())
	s.marks[fp] = append(s.marks[fp], rel)
}

// prune removes every branch marked during the pass. When the marks cover
// all branches the system is globally inconsistent and the contradiction
// sets are surfaced instead.
func (s *System) prune() error {
	if len(s.marks) == 0 {
		return nil
	}
	defer func() { s.marks = make(map[uint64][]Relation) }()

	if len(s.marks) >= s.store.Len() {
		return s.unsolvable()
	}

	// Backwards so removal does not shift the indices still to visit. A mark
	// whose branch changed after marking no longer matches any fingerprint
	// and is silently dropped.
	removed := 0
	for i := s.store.Len() - 1; i >= 0; i-- {
		if _, marked := s.marks[s.fingerprint(i)]; !marked {
			continue
		}
		if err := s.store.Remove(i); err != nil {
			if errors.Is(err, branch.ErrLastBranch) {
				return s.unsolvable()
			}

			return err
		}
		removed++
	}
	s.log.Debug("pruned contradictory branches",
		zap.Int("removed", removed),
		zap.Int("remaining", s.store.Len()))

	return nil
}

// unsolvable packages the accumulated contradiction sets, in deterministic
// fingerprint order.
func (s *System) unsolvable() error {
	fps := make([]uint64, 0, len(s.marks))
	for fp := range s.marks {
		fps = append(fps, fp)
	}
	sort.Slice(fps, func(i, j int) bool { return fps[i] < fps[j] })

	sets := make([][]Relation, 0, len(fps))
	for _, fp := range fps {
		sets = append(sets, s.marks[fp])
	}

	return &UnsolvableError{Contradictions: sets}
}

// fingerprint hashes branch i's bindings in canonical string form. Two
// branches binding every variable to content-identical expressions collide
// on purpose: they are the same solution candidate.
func (s *System) fingerprint(i int) uint64 {
	bindings, err := s.store.Bindings(i)
	if err != nil {
		return 0
	}
	canon := make(map[string]string, len(bindings))
	for name, expr := range bindings {
		canon[name] = expr.String()
	}
	h, err := hashstructure.Hash(canon, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}

	return h
}
