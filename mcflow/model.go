// Commodity grouping and LP assembly.
package mcflow

import (
	"sort"

	"github.com/st1ckyband1t/Transportation-Optimisation/lp"
	"github.com/st1ckyband1t/Transportation-Optimisation/network"
)

// commodity is all traffic leaving one origin node. perDest aggregates
// duplicate origin-destination demands by summing their volumes.
type commodity struct {
	origin  string
	perDest map[string]float64
	total   float64
}

// destinations returns the commodity's destination IDs sorted ascending,
// for deterministic iteration.
func (c *commodity) destinations() []string {
	dests := make([]string, 0, len(c.perDest))
	for d := range c.perDest {
		dests = append(dests, d)
	}
	sort.Strings(dests)

	return dests
}

// groupByOrigin folds the demand list into per-origin commodities,
// dropping zero-volume demands. The returned slice is sorted by origin ID
// so model assembly is deterministic.
// Complexity: O(D log D).
func groupByOrigin(demands []network.Demand) []*commodity {
	byOrigin := make(map[string]*commodity)
	for _, d := range demands {
		if d.Trips == 0 {
			continue
		}
		c, ok := byOrigin[d.Origin]
		if !ok {
			c = &commodity{origin: d.Origin, perDest: make(map[string]float64)}
			byOrigin[d.Origin] = c
		}
		c.perDest[d.Destination] += d.Trips
		c.total += d.Trips
	}

	out := make([]*commodity, 0, len(byOrigin))
	for _, c := range byOrigin {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].origin < out[j].origin })

	return out
}

// buildProblem assembles the multi-commodity LP.
//
// Variable layout: commodity-major — variable k*len(arcs)+a is the flow
// of commodity k on arc a, with objective cost = arc distance.
//
// Rows:
//   - Conservation, one per (commodity, node): inflow − outflow = demand
//     terminating at the node (zero at transit nodes). The rows of each
//     weakly connected component sum to zero, so one row per component
//     is implied by the rest and omitted to keep the matrix full-rank:
//     the origin row in the commodity's own component, an arbitrary
//     representative elsewhere. The omitted foreign rows are exact, not
//     just rank bookkeeping, because the caller has already verified
//     that no demand terminates outside the origin's component.
//   - Capacity, one per capacitated arc: Σ_k flow ≤ capacity.
//
// Complexity: O(K·V·E) time in the dense worst case; the conservation
// coefficient maps hold only incident arcs, so O(K·(V + E)) in practice.
func buildProblem(net *network.Network, commodities []*commodity) (*lp.Problem, error) {
	arcs := net.Links()
	nodes := net.Nodes()
	p := lp.NewProblem()

	// Variables, commodity-major.
	varOf := func(k, a int) int { return k*len(arcs) + a }
	for range commodities {
		for a := range arcs {
			p.AddVariable(arcs[a].DistanceKm)
		}
	}

	// Incidence of each node, precomputed once: idx of arcs in and out.
	arcsOut := make(map[string][]int, len(nodes))
	arcsIn := make(map[string][]int, len(nodes))
	for a := range arcs {
		arcsOut[arcs[a].From] = append(arcsOut[arcs[a].From], a)
		arcsIn[arcs[a].To] = append(arcsIn[arcs[a].To], a)
	}

	// Weak components of the link support, shared by all commodities.
	// comp maps each node to its component root; rep picks one node per
	// component whose row is dropped when the origin lies elsewhere.
	comp := weakComponents(nodes, arcs)
	rep := make(map[string]string, len(nodes))
	for _, n := range nodes { // nodes is sorted, reps are deterministic
		if _, ok := rep[comp[n]]; !ok {
			rep[comp[n]] = n
		}
	}

	// Conservation rows.
	for k, c := range commodities {
		home := comp[c.origin]
		for _, n := range nodes {
			if n == c.origin {
				continue // implied by the remaining rows
			}
			if comp[n] != home && rep[comp[n]] == n {
				continue // implied likewise, one drop per component
			}
			coeffs := make(map[int]float64, len(arcsIn[n])+len(arcsOut[n]))
			for _, a := range arcsIn[n] {
				coeffs[varOf(k, a)] += 1
			}
			for _, a := range arcsOut[n] {
				coeffs[varOf(k, a)] -= 1
			}
			rhs := c.perDest[n] // zero for transit nodes
			if err := p.AddEquality(coeffs, rhs); err != nil {
				return nil, err
			}
		}
	}

	// Capacity rows couple the commodities on shared arcs.
	for a := range arcs {
		if !arcs[a].Capacitated {
			continue
		}
		coeffs := make(map[int]float64, len(commodities))
		for k := range commodities {
			coeffs[varOf(k, a)] = 1
		}
		if err := p.AddLessEq(coeffs, arcs[a].Capacity); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// weakComponents groups nodes by weak connectivity of the arc support
// (arc direction ignored) with path-halving union-find. Returns each
// node's component root.
// Complexity: near-linear in V + E.
func weakComponents(nodes []string, arcs []network.Link) map[string]string {
	parent := make(map[string]string, len(nodes))
	for _, n := range nodes {
		parent[n] = n
	}
	find := func(n string) string {
		for parent[n] != n {
			parent[n] = parent[parent[n]]
			n = parent[n]
		}

		return n
	}
	for i := range arcs {
		ra, rb := find(arcs[i].From), find(arcs[i].To)
		if ra != rb {
			parent[ra] = rb
		}
	}

	comp := make(map[string]string, len(nodes))
	for _, n := range nodes {
		comp[n] = find(n)
	}

	return comp
}

// extractFlows turns the solver's variable values back into per-commodity
// arc flows, dropping values at or below eps and aggregating parallel
// arcs under one Arc key.
func extractFlows(sol *lp.Solution, arcs []network.Link, commodities []*commodity, eps float64) map[string]map[Arc]float64 {
	flows := make(map[string]map[Arc]float64, len(commodities))
	for k, c := range commodities {
		cf := make(map[Arc]float64)
		for a := range arcs {
			v := sol.Value(k*len(arcs) + a)
			if v <= eps {
				continue
			}
			cf[Arc{From: arcs[a].From, To: arcs[a].To}] += v
		}
		flows[c.origin] = cf
	}

	return flows
}
