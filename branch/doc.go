// Package branch implements the solver's branch store: an ordered set of
// mutually exclusive variable-binding contexts over one shared variable set.
//
// Every branch binds the same variable names. An unsolved variable is bound
// to its own symbol.Sym; a solved one to a concrete expression. The store
// starts with a single root branch and grows only by Fork, which snapshots
// an existing branch — so sibling branches share history up to the fork
// point and diverge after it.
//
// One branch is always current. Rotate advances the cursor cyclically; the
// solver uses this to give every branch a fair turn. Remove drops a branch
// and clamps the cursor back into range when it pointed at or past the
// removed slot. The last remaining branch can never be removed.
//
// The variable set is extensible only while the store holds a single branch:
// after the first Fork the store locks, since retrofitting a new variable
// into diverged branches has no sound meaning.
//
// The store is not safe for concurrent use; the solver drives it from a
// single goroutine.
package branch
