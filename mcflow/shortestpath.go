// Float64 Dijkstra over a Network, used for the uncapacitated
// decomposition and for the connectivity pre-check of the LP path.
//
// Implementation notes:
//   - Min-heap priority queue with the "lazy decrease-key" strategy:
//     improved distances push duplicate heap entries; stale entries are
//     skipped on pop via the visited map.
//   - Distances are float64 kilometres; unreachable nodes report +Inf.
//   - Negative distances cannot occur: network.AddLink rejects them.
package mcflow

import (
	"container/heap"
	"math"

	"github.com/st1ckyband1t/Transportation-Optimisation/network"
)

// outArc is one adjacency entry: the head node and the arc length.
type outArc struct {
	to string
	km float64
}

// buildAdjacency converts the arc list into an outgoing adjacency map.
// Parallel arcs keep only the shortest — the others can never lie on a
// shortest path and the LP path does not use this structure for flows.
// Complexity: O(V + E).
func buildAdjacency(net *network.Network) map[string][]outArc {
	adj := make(map[string][]outArc, net.NodeCount())
	for _, id := range net.Nodes() {
		adj[id] = nil
	}
	best := make(map[Arc]float64)
	for _, l := range net.Links() {
		key := Arc{From: l.From, To: l.To}
		if prev, seen := best[key]; seen && prev <= l.DistanceKm {
			continue
		}
		best[key] = l.DistanceKm
	}
	for key, km := range best {
		adj[key.From] = append(adj[key.From], outArc{to: key.To, km: km})
	}

	return adj
}

// shortestPaths computes the minimal distance from origin to every node,
// together with the predecessor map for path reconstruction.
//
// Returns:
//   - dist: node ID → minimal distance in km (math.Inf(1) if unreachable).
//   - prev: node ID → predecessor on one shortest path ("" for the origin
//     and for unreachable nodes).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func shortestPaths(adj map[string][]outArc, origin string) (map[string]float64, map[string]string) {
	dist := make(map[string]float64, len(adj))
	prev := make(map[string]string, len(adj))
	visited := make(map[string]bool, len(adj))
	for id := range adj {
		dist[id] = math.Inf(1)
		prev[id] = ""
	}
	dist[origin] = 0

	pq := make(pathPQ, 0, len(adj))
	heap.Init(&pq)
	heap.Push(&pq, &pathItem{id: origin, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*pathItem)
		u := item.id
		if visited[u] {
			continue // stale entry under lazy decrease-key
		}
		visited[u] = true

		for _, a := range adj[u] {
			nd := dist[u] + a.km
			if nd >= dist[a.to] {
				continue
			}
			dist[a.to] = nd
			prev[a.to] = u
			heap.Push(&pq, &pathItem{id: a.to, dist: nd})
		}
	}

	return dist, prev
}

// pathItem is one (node, tentative distance) entry in the priority queue.
type pathItem struct {
	id   string
	dist float64
}

// pathPQ is a min-heap of *pathItem ordered by distance ascending.
type pathPQ []*pathItem

func (pq pathPQ) Len() int            { return len(pq) }
func (pq pathPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq pathPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(*pathItem)) }
func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
