// Package solver implements the branching equation solver: declare
// variables, register equations and procedures against a System, call Solve,
// then read every consistent assignment back branch by branch.
//
// # Model
//
// A System owns a branch.Store. Each branch is one mutually exclusive
// candidate assignment of the declared variables. Equations are functions of
// a *Context returning the two sides of a relation; because they read
// variables through Context.Get, a relation automatically specializes to the
// branch it is evaluated in. Procedures are imperative helpers that may read
// and write variables; one that cannot make progress yet returns
// ErrUnresolved and is silently skipped for that branch.
//
// # Solve
//
// Solve gives every branch a turn, rotating until it returns to its starting
// branch. Within a branch it:
//
//  1. runs the procedures (ErrUnresolved skips, other errors abort Solve);
//  2. collects all relations and classifies each against a relative
//     tolerance as usable, redundant, or contradictory — a contradiction
//     marks the branch for pruning and ends its turn;
//  3. tries subsets of the usable relations smallest-first in a stable
//     order, handing each to the symbol oracle; the first subset yielding a
//     fully numeric solution is applied — extra solutions fork new branches
//     first, each fork receiving the pre-application bindings plus its own
//     root — and the branch is re-solved recursively with the new facts.
//
// After the rotation, branches marked contradictory are pruned. If every
// branch is contradictory, or a provably inconsistent subset was seen and
// the pass made no progress at all, Solve returns an *UnsolvableError
// wrapping ErrNoConsistentSolution.
//
// Equations may carry physical units from the unit package: dimensionally
// mismatched relations classify as contradictions, compatible units cancel.
//
// A System is not safe for concurrent use.
package solver
