// Package mcflow builds and evaluates the minimum-cost multi-commodity
// flow model over a transport network: route every travel demand from its
// origin to its destination so that the total distance-weighted flow is
// minimal, subject to per-commodity flow conservation and aggregate link
// capacities.
//
// Model:
//
//   - Commodities. Demands are grouped by origin node — all traffic
//     leaving one origin is a single commodity. Commodities are coupled
//     only through shared link capacities.
//   - Variables. One continuous flow variable per (commodity, arc), ≥ 0.
//     Flow is splittable: the model is a linear program, not a MILP.
//   - Objective. Minimize Σ flow × arc distance over all commodities and
//     arcs.
//   - Constraints. For every commodity and every node except its origin:
//     inflow − outflow equals the demand terminating there (zero at
//     transit nodes); the origin balance is implied and omitted to keep
//     the constraint matrix full-rank. For every capacitated arc: total
//     flow across all commodities ≤ capacity.
//
// Decomposition: when no arc carries a finite capacity the commodities do
// not interact, and the optimum is reached by routing each demand along
// its shortest path. MinCostFlow detects this and runs one Dijkstra pass
// per origin instead of assembling the LP; WithForceLP() disables the
// shortcut. Both paths produce the same objective value.
//
// Guarantees: the objective value is a deterministic, globally optimal
// function of the inputs. The flow assignment achieving it need not be
// unique and is not guaranteed stable across solver backends.
//
// Errors (sentinel):
//
//	ErrNilNetwork — the network pointer is nil.
//	ErrNoNodes    — the network has an empty node set.
//	ErrInfeasible — some demand cannot be routed; wrapped with the
//	                offending origin→destination pair when connectivity is
//	                the cause, bare when a capacity cut is.
//	ErrUnbounded  — the solver reported an unbounded objective. Cannot
//	                occur for valid inputs (distances are non-negative by
//	                construction); surfaced for completeness.
//	ErrSolver     — the backend engine failed; wraps the cause.
//
// On any failure no partial objective value is reported.
package mcflow
