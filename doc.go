// Package transportopt computes the vehicle-kilometres saved by adding a
// ferry link to a fixed road network.
//
// The repository models a transportation network as a directed, weighted
// graph, expresses the routing of all origin-destination travel demand as
// a minimum-cost multi-commodity flow problem, and delegates the
// optimization itself to a pluggable linear-programming backend. The model
// is evaluated twice — once on the road-only network and once with the
// ferry link added — and the difference in total distance-weighted flow is
// the reported saving.
//
// The packages:
//
//	network/  — Node, Link, Demand and the immutable Network they form
//	lp/       — standard-form LP problems and the pluggable Solver backend
//	mcflow/   — the flow model builder & evaluator (LP or shortest-path)
//	scenario/ — two-invocation comparison, the seeded strait study, reports
//	config/   — YAML description of nodes, links and demands
//	cmd/      — the run entry point
//
// Everything is constructed fresh per run from static input data, fed to
// the solver, and discarded once the result is reported: no persistence,
// no service, no shared mutable state.
package transportopt
