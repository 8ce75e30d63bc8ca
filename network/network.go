// Construction and query methods for Network.
//
// Accessor determinism: Nodes() returns IDs sorted lexicographically
// ascending; Links() and Demands() preserve insertion order. Evaluators
// rely on these orderings for reproducible model assembly.
package network

import (
	"fmt"
	"sort"
)

// NewNetwork creates an empty Network.
// Complexity: O(1).
func NewNetwork() *Network {
	return &Network{
		nodes: make(map[string]Node),
	}
}

// AddNode registers a node with the given ID.
// Returns ErrEmptyNodeID if id is empty. Adding an existing node is a
// no-op (idempotent).
// Complexity: O(1) amortized.
func (n *Network) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, exists := n.nodes[id]; exists {
		return nil // no-op for existing node
	}
	n.nodes[id] = Node{ID: id}

	return nil
}

// AddLink registers a directed arc from→to with the given distance in
// kilometres. Missing endpoint nodes are registered implicitly.
//
// Options:
//   - WithCapacity(c):     bound aggregate flow on the arc to c trips.
//   - WithBidirectional(): also register the opposing arc to→from with
//     identical distance and capacity.
//
// Validation (fail fast, in order): empty endpoint → ErrEmptyNodeID;
// from == to → ErrSelfLink; km < 0 → ErrNegativeDistance; capacity < 0 →
// ErrNegativeCapacity. On any error no arc is registered.
// Complexity: O(1) amortized.
func (n *Network) AddLink(from, to string, km float64, opts ...LinkOption) error {
	var lc linkConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLink, from)
	}
	if km < 0 {
		return fmt.Errorf("%w: %q→%q km=%g", ErrNegativeDistance, from, to, km)
	}
	if lc.capacitated && lc.capacity < 0 {
		return fmt.Errorf("%w: %q→%q cap=%g", ErrNegativeCapacity, from, to, lc.capacity)
	}

	// Endpoints are registered implicitly, as in any edge-first build.
	_ = n.AddNode(from)
	_ = n.AddNode(to)

	n.links = append(n.links, Link{
		From:        from,
		To:          to,
		DistanceKm:  km,
		Capacity:    lc.capacity,
		Capacitated: lc.capacitated,
	})
	if lc.bidirectional {
		n.links = append(n.links, Link{
			From:        to,
			To:          from,
			DistanceKm:  km,
			Capacity:    lc.capacity,
			Capacitated: lc.capacitated,
		})
	}

	return nil
}

// AddDemand registers a travel demand of trips from origin to destination.
//
// Unlike link endpoints, demand endpoints must already exist in the node
// set: a demand naming an unknown node is malformed input, not an implicit
// declaration. Returns ErrNodeNotFound naming the missing endpoint,
// ErrSelfLink for origin == destination, ErrNegativeTrips for trips < 0.
// A zero-volume demand is legal and contributes nothing to the objective.
// Complexity: O(1) amortized.
func (n *Network) AddDemand(origin, destination string, trips float64) error {
	if origin == "" || destination == "" {
		return ErrEmptyNodeID
	}
	if origin == destination {
		return fmt.Errorf("%w: demand %q→%q", ErrSelfLink, origin, destination)
	}
	if _, ok := n.nodes[origin]; !ok {
		return fmt.Errorf("%w: demand origin %q", ErrNodeNotFound, origin)
	}
	if _, ok := n.nodes[destination]; !ok {
		return fmt.Errorf("%w: demand destination %q", ErrNodeNotFound, destination)
	}
	if trips < 0 {
		return fmt.Errorf("%w: %q→%q trips=%g", ErrNegativeTrips, origin, destination, trips)
	}

	n.demands = append(n.demands, Demand{Origin: origin, Destination: destination, Trips: trips})

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (n *Network) HasNode(id string) bool {
	_, ok := n.nodes[id]

	return ok
}

// Nodes returns all node IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (n *Network) Nodes() []string {
	ids := make([]string, 0, len(n.nodes))
	for id := range n.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Links returns a copy of the arc list in insertion order.
// Complexity: O(E).
func (n *Network) Links() []Link {
	out := make([]Link, len(n.links))
	copy(out, n.links)

	return out
}

// Demands returns a copy of the demand list in insertion order.
// Complexity: O(D).
func (n *Network) Demands() []Demand {
	out := make([]Demand, len(n.demands))
	copy(out, n.demands)

	return out
}

// NodeCount returns the number of registered nodes.
func (n *Network) NodeCount() int { return len(n.nodes) }

// LinkCount returns the number of registered directed arcs.
func (n *Network) LinkCount() int { return len(n.links) }

// Capacitated reports whether any arc carries a finite capacity. When
// false, demands do not compete for links and the min-cost flow model
// decomposes into independent shortest-path problems.
// Complexity: O(E).
func (n *Network) Capacitated() bool {
	for i := range n.links {
		if n.links[i].Capacitated {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of the Network. The copy can be extended
// (scenario variants) without mutating the receiver.
// Complexity: O(V + E + D).
func (n *Network) Clone() *Network {
	c := &Network{
		nodes:   make(map[string]Node, len(n.nodes)),
		links:   make([]Link, len(n.links)),
		demands: make([]Demand, len(n.demands)),
	}
	for id, node := range n.nodes {
		c.nodes[id] = node
	}
	copy(c.links, n.links)
	copy(c.demands, n.demands)

	return c
}

// WithExtraLink returns a clone of the Network with one additional link
// registered via AddLink(from, to, km, opts...). The receiver is left
// untouched; this is how a study derives its augmented scenario from the
// baseline.
func (n *Network) WithExtraLink(from, to string, km float64, opts ...LinkOption) (*Network, error) {
	c := n.Clone()
	if err := c.AddLink(from, to, km, opts...); err != nil {
		return nil, err
	}

	return c, nil
}
