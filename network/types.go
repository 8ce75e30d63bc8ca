// This file declares Node, Link, Demand, Network, their construction
// options, and the sentinel errors shared by the package.
package network

import "errors"

// Sentinel errors for network construction.
var (
	// ErrEmptyNodeID indicates an empty string was used as a node ID.
	ErrEmptyNodeID = errors.New("network: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrSelfLink indicates a link whose endpoints are the same node.
	ErrSelfLink = errors.New("network: self-referencing link not allowed")

	// ErrNegativeDistance indicates a link with a distance below zero.
	ErrNegativeDistance = errors.New("network: link distance must be non-negative")

	// ErrNegativeCapacity indicates a link with a capacity below zero.
	ErrNegativeCapacity = errors.New("network: link capacity must be non-negative")

	// ErrNegativeTrips indicates a demand with a volume below zero.
	ErrNegativeTrips = errors.New("network: demand volume must be non-negative")
)

// Node is a named location: an origin, a destination, or a transit point.
// Identity is the ID string; there is no other payload.
type Node struct {
	// ID uniquely identifies this Node within its Network.
	ID string
}

// Link is a single directed arc between two nodes.
//
// DistanceKm is the cost of carrying one trip across the arc. Capacity
// bounds the total flow of all commodities on the arc and applies only
// when Capacitated is true; an uncapacitated arc carries any volume.
type Link struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// DistanceKm is the length of the arc in kilometres. Never negative.
	DistanceKm float64

	// Capacity is the maximum aggregate flow across all commodities,
	// in trips. Meaningful only when Capacitated is true.
	Capacity float64

	// Capacitated reports whether Capacity is in force for this arc.
	Capacitated bool
}

// Demand is an origin-destination pair with an associated travel volume.
type Demand struct {
	// Origin is the node the trips start from.
	Origin string

	// Destination is the node the trips must reach.
	Destination string

	// Trips is the demand volume. Never negative.
	Trips float64
}

// LinkOption configures a single AddLink call.
type LinkOption func(*linkConfig)

// linkConfig collects per-link settings before the arc(s) are registered.
type linkConfig struct {
	capacity      float64
	capacitated   bool
	bidirectional bool
}

// WithCapacity bounds the aggregate flow on the link to c trips.
// Negative capacities are rejected by AddLink with ErrNegativeCapacity.
func WithCapacity(c float64) LinkOption {
	return func(lc *linkConfig) {
		lc.capacity = c
		lc.capacitated = true
	}
}

// WithBidirectional registers the opposing arc To→From as well, with the
// same distance and capacity settings. This mirrors a two-way road
// segment: the two arcs are independent (capacity applies per direction).
func WithBidirectional() LinkOption {
	return func(lc *linkConfig) { lc.bidirectional = true }
}

// Network is the in-memory transport network: the node set, the directed
// arcs connecting it, and the travel demands to route over it.
//
// A Network is built by a single goroutine and must not be mutated once
// handed to an evaluator; concurrent reads are safe after construction.
type Network struct {
	nodes   map[string]Node
	links   []Link
	demands []Demand
}
