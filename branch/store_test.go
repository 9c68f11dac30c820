package branch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqsolve/branch"
	"github.com/katalvlaran/eqsolve/symbol"
)

// TestNew_RootBranch checks that the root branch binds every variable to its
// own symbol.
func TestNew_RootBranch(t *testing.T) {
	s, err := branch.New([]string{"x", "y"})
	require.NoError(t, err)

	require.Equal(t, 1, s.Len())
	require.Equal(t, 0, s.Current())
	require.False(t, s.Locked())

	x, err := s.Get("x")
	require.NoError(t, err)
	require.True(t, x.Equal(symbol.S("x")))
}

// TestNew_Validation covers the declaration errors.
func TestNew_Validation(t *testing.T) {
	_, err := branch.New(nil)
	require.ErrorIs(t, err, branch.ErrNoVariables)

	_, err = branch.New([]string{"2fast"})
	require.ErrorIs(t, err, branch.ErrInvalidName)

	_, err = branch.New([]string{"x", "x"})
	require.ErrorIs(t, err, branch.ErrDuplicateVariable)

	s, err := branch.New([]string{"x_1", "_tmp", "velocity"})
	require.NoError(t, err)
	require.Equal(t, []string{"x_1", "_tmp", "velocity"}, s.Names())
}

// TestFork_CopiesAndLocks checks fork snapshot semantics and the lock.
func TestFork_CopiesAndLocks(t *testing.T) {
	s, err := branch.New([]string{"x"})
	require.NoError(t, err)
	require.NoError(t, s.Set("x", symbol.N(2)))

	// 1) Fork copies the source branch's bindings.
	idx, err := s.Fork(0)
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	require.Equal(t, 2, s.Len())

	forked, err := s.GetAt(idx, "x")
	require.NoError(t, err)
	require.True(t, forked.Equal(symbol.N(2)))

	// 2) Divergence after the fork stays local.
	require.NoError(t, s.SetAt(idx, "x", symbol.N(-2)))
	original, err := s.GetAt(0, "x")
	require.NoError(t, err)
	require.True(t, original.Equal(symbol.N(2)))

	// 3) The variable set is now frozen.
	require.True(t, s.Locked())
	require.ErrorIs(t, s.AddVariables("y"), branch.ErrLocked)
}

// TestAddVariables_BeforeFork extends the root branch.
func TestAddVariables_BeforeFork(t *testing.T) {
	s, err := branch.New([]string{"x"})
	require.NoError(t, err)

	require.NoError(t, s.AddVariables("y", "z"))
	require.Equal(t, []string{"x", "y", "z"}, s.Names())

	y, err := s.Get("y")
	require.NoError(t, err)
	require.True(t, y.Equal(symbol.S("y")))
}

// TestRotate_WrapsAround cycles through all branches back to the start.
func TestRotate_WrapsAround(t *testing.T) {
	s, err := branch.New([]string{"x"})
	require.NoError(t, err)
	_, err = s.Fork(0)
	require.NoError(t, err)
	_, err = s.Fork(0)
	require.NoError(t, err)

	require.Equal(t, 0, s.Current())
	s.Rotate()
	require.Equal(t, 1, s.Current())
	s.Rotate()
	require.Equal(t, 2, s.Current())
	s.Rotate()
	require.Equal(t, 0, s.Current())
}

// TestRemove_ClampsCursor checks cursor adjustment on removal.
func TestRemove_ClampsCursor(t *testing.T) {
	s, err := branch.New([]string{"x"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = s.Fork(0)
		require.NoError(t, err)
	}
	require.Equal(t, 4, s.Len())

	// Removing behind the cursor pulls it back with its branch.
	require.NoError(t, s.SetCurrent(2))
	require.NoError(t, s.Remove(1))
	require.Equal(t, 1, s.Current())
	require.Equal(t, 3, s.Len())

	// Removing the current slot pulls the cursor to its predecessor.
	require.NoError(t, s.SetCurrent(2))
	require.NoError(t, s.Remove(2))
	require.Equal(t, 1, s.Current())

	// Removing ahead of the cursor leaves it alone.
	require.NoError(t, s.SetCurrent(0))
	require.NoError(t, s.Remove(1))
	require.Equal(t, 0, s.Current())
}

// TestRemove_LastBranch refuses to empty the store.
func TestRemove_LastBranch(t *testing.T) {
	s, err := branch.New([]string{"x"})
	require.NoError(t, err)

	require.ErrorIs(t, s.Remove(0), branch.ErrLastBranch)
	require.ErrorIs(t, s.Remove(5), branch.ErrIndexOutOfRange)
}

// TestSetAll_And_Reset propagate to every branch.
func TestSetAll_And_Reset(t *testing.T) {
	s, err := branch.New([]string{"x"})
	require.NoError(t, err)
	_, err = s.Fork(0)
	require.NoError(t, err)

	require.NoError(t, s.SetAll("x", symbol.N(7)))
	for i := 0; i < s.Len(); i++ {
		v, err := s.GetAt(i, "x")
		require.NoError(t, err)
		require.True(t, v.Equal(symbol.N(7)))
	}

	require.NoError(t, s.Reset("x"))
	for i := 0; i < s.Len(); i++ {
		v, err := s.GetAt(i, "x")
		require.NoError(t, err)
		require.True(t, v.Equal(symbol.S("x")))
	}

	require.ErrorIs(t, s.SetAll("nope", symbol.N(1)), branch.ErrUnknownVariable)
}

// TestUniform distinguishes uniform from diverged variables.
func TestUniform(t *testing.T) {
	s, err := branch.New([]string{"x", "y"})
	require.NoError(t, err)
	idx, err := s.Fork(0)
	require.NoError(t, err)

	// Unsolved everywhere: uniform (each branch holds the symbol x).
	v, ok := s.Uniform("x")
	require.True(t, ok)
	require.True(t, v.Equal(symbol.S("x")))

	// Diverged: not uniform.
	require.NoError(t, s.SetAt(idx, "y", symbol.N(3)))
	_, ok = s.Uniform("y")
	require.False(t, ok)
}

// TestValues collects distinct per-branch values.
func TestValues(t *testing.T) {
	s, err := branch.New([]string{"x"})
	require.NoError(t, err)
	a, err := s.Fork(0)
	require.NoError(t, err)
	b, err := s.Fork(0)
	require.NoError(t, err)

	require.NoError(t, s.SetAt(0, "x", symbol.N(2)))
	require.NoError(t, s.SetAt(a, "x", symbol.N(-2)))
	require.NoError(t, s.SetAt(b, "x", symbol.N(2))) // duplicate of branch 0

	values, err := s.Values("x")
	require.NoError(t, err)
	require.Len(t, values, 2)
	require.True(t, values[0].Equal(symbol.N(2)))
	require.True(t, values[1].Equal(symbol.N(-2)))
}

// TestSnapshot_IsIndependent mutating a snapshot must not touch the store.
func TestSnapshot_IsIndependent(t *testing.T) {
	s, err := branch.New([]string{"x"})
	require.NoError(t, err)

	snap := s.Snapshot()
	snap[0]["x"] = symbol.N(99)

	v, err := s.Get("x")
	require.NoError(t, err)
	require.True(t, v.Equal(symbol.S("x")))
}
