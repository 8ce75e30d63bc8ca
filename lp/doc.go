// Package lp defines a minimal linear-programming surface for the flow
// model builder: a Problem (minimize cᵀx over equality and ≤ constraints,
// x ≥ 0), a Solution carrying the solver's status, objective and variable
// values, and the pluggable Solver interface every backend implements.
//
// The optimization engine is an external collaborator, not something this
// repository implements. The default backend, Simplex, delegates to
// gonum's dense simplex method (gonum.org/v1/gonum/optimize/convex/lp).
// Any compliant LP engine — a HiGHS or Gurobi binding, a remote service —
// can be substituted by implementing Solver, without touching the model
// construction logic in mcflow.
//
// Status taxonomy:
//
//   - StatusOptimal:    a globally optimal solution was found.
//   - StatusInfeasible: no point satisfies the constraints. A model
//     outcome, not an engine failure; Solve returns it with a nil error.
//   - StatusUnbounded:  the objective decreases without bound.
//   - StatusError:      the engine itself failed; Solve returns a non-nil
//     error alongside it.
//
// Errors (sentinel):
//
//	ErrNilProblem   — Solve received a nil Problem.
//	ErrNoVariables  — the Problem has no variables.
//	ErrBadIndex     — a constraint referenced an unknown variable index.
//	ErrSolverFailed — the backend failed numerically; wraps the cause.
package lp
