// Package route holds the types shared by every grid search: the dense
// per-search parent table, path reconstruction, the search Result and the
// Path value with its validation and composition helpers.
//
// A Path is an ordered, non-empty sequence of cells where consecutive cells
// are 4-adjacent. Reconstruct walks a Parents table backwards from the goal;
// an unrecorded parent on a non-start cell is a bookkeeping defect in the
// calling search and is reported as ErrReconstructionInconsistency.
//
// Errors:
//
//   - ErrNoPathFound: a search exhausted its frontier (normal outcome).
//   - ErrReconstructionInconsistency: the parent chain is broken or cyclic.
//   - ErrInvalidPath: a Path violates adjacency, bounds or obstacle rules.
//   - ErrJoinMismatch: Concat legs do not share the join cell.
package route
