// MinCostFlow — the evaluator entry point.
package mcflow

import (
	"fmt"
	"math"

	"github.com/st1ckyband1t/Transportation-Optimisation/network"
)

// MinCostFlow computes the minimum total distance-weighted flow that
// routes every demand of net from its origin to its destination, subject
// to flow conservation and aggregate link capacities.
//
// Evaluation order:
//  1. Validate inputs (ErrNilNetwork, ErrNoNodes) and group demands into
//     per-origin commodities. Zero demands short-circuit to objective 0.
//  2. Connectivity pre-check: one shortest-path pass per commodity. A
//     demand whose destination is unreachable fails fast with
//     ErrInfeasible naming the origin→destination pair, before any LP
//     work.
//  3. Uncapacitated networks (unless WithForceLP): the shortest-path
//     distances from step 2 already solve the model; route each demand
//     along its shortest path and sum distance × trips.
//  4. Otherwise: assemble the multi-commodity LP, delegate to the
//     configured lp.Solver, classify the outcome, and extract flows.
//
// The returned objective is deterministic for given inputs; the flow
// assignment achieving it may differ between backends.
func MinCostFlow(net *network.Network, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.normalize()

	// 1) Validate.
	if net == nil {
		return Result{}, ErrNilNetwork
	}
	if net.NodeCount() == 0 {
		return Result{}, ErrNoNodes
	}
	if err := cfg.Ctx.Err(); err != nil {
		return Result{}, err
	}

	commodities := groupByOrigin(net.Demands())
	if len(commodities) == 0 {
		// Nothing to route: the optimum of an empty demand set is zero
		// regardless of the link set.
		return Result{ObjectiveKm: 0, Flows: map[string]map[Arc]float64{}}, nil
	}

	// 2) Connectivity pre-check; doubles as the decomposition solve.
	adj := buildAdjacency(net)
	dists := make(map[string]map[string]float64, len(commodities))
	prevs := make(map[string]map[string]string, len(commodities))
	for _, c := range commodities {
		if err := cfg.Ctx.Err(); err != nil {
			return Result{}, err
		}
		dist, prev := shortestPaths(adj, c.origin)
		for _, dest := range c.destinations() {
			if math.IsInf(dist[dest], 1) {
				return Result{}, fmt.Errorf("%w: no route from %q to %q", ErrInfeasible, c.origin, dest)
			}
		}
		dists[c.origin], prevs[c.origin] = dist, prev
	}

	// 3) Shortest-path decomposition on uncapacitated networks.
	if !cfg.ForceLP && !net.Capacitated() {
		if cfg.Verbose {
			fmt.Printf("mcflow: uncapacitated, decomposing into %d shortest-path runs\n", len(commodities))
		}

		return solveByShortestPaths(commodities, dists, prevs, cfg), nil
	}

	// 4) Full multi-commodity LP.
	return solveByLP(net, commodities, cfg)
}

// solveByShortestPaths routes each demand along its shortest path and
// accumulates per-arc flows from the predecessor chains. Infeasibility
// was already ruled out by the caller's pre-check.
func solveByShortestPaths(commodities []*commodity, dists map[string]map[string]float64, prevs map[string]map[string]string, cfg Options) Result {
	flows := make(map[string]map[Arc]float64, len(commodities))
	var objective float64
	for _, c := range commodities {
		cf := make(map[Arc]float64)
		dist, prev := dists[c.origin], prevs[c.origin]
		for _, dest := range c.destinations() {
			trips := c.perDest[dest]
			objective += dist[dest] * trips
			for v := dest; v != c.origin; v = prev[v] {
				cf[Arc{From: prev[v], To: v}] += trips
			}
		}
		// Drop sub-threshold accumulations for parity with the LP path.
		for a, v := range cf {
			if v <= cfg.Epsilon {
				delete(cf, a)
			}
		}
		flows[c.origin] = cf
	}

	return Result{ObjectiveKm: roundKm(objective), Flows: flows}
}

// solveByLP assembles the coupled model and delegates to the backend.
func solveByLP(net *network.Network, commodities []*commodity, cfg Options) (Result, error) {
	p, err := buildProblem(net, commodities)
	if err != nil {
		return Result{}, err
	}
	if cfg.Verbose {
		fmt.Printf("mcflow: LP with %d variables, %d constraints\n", p.NumVariables(), p.NumConstraints())
	}

	sol, err := cfg.Solver.Solve(cfg.Ctx, p)
	if err != nil {
		if cfg.Ctx.Err() != nil {
			return Result{}, err // cancellation propagates as-is
		}

		return Result{}, fmt.Errorf("%w: %v", ErrSolver, err)
	}

	switch {
	case sol.IsOptimal():
		arcs := net.Links()

		return Result{
			ObjectiveKm: roundKm(sol.Objective),
			Flows:       extractFlows(sol, arcs, commodities, cfg.Epsilon),
		}, nil
	case sol.IsInfeasible():
		// Connectivity was verified up front, so the binding cut is a
		// capacity shortfall; no single demand can be blamed.
		return Result{}, fmt.Errorf("%w: aggregate link capacity cannot carry the demand", ErrInfeasible)
	case sol.IsUnbounded():
		return Result{}, ErrUnbounded
	default:
		return Result{}, fmt.Errorf("%w: backend returned status %v", ErrSolver, sol.Status)
	}
}
