// Package network defines the transport-network model: named Nodes,
// distance-weighted Links between them, and the travel Demands that must
// be routed across them.
//
// A Network is built once from static input data and then treated as
// read-only for the remainder of the run. Two scenarios of the same study
// differ only in their link sets, so a Network can be cloned and extended
// (WithExtraLink) without touching the original.
//
// Conventions:
//
//   - A Link is a single directed arc From→To with a non-negative distance
//     in kilometres and an optional aggregate capacity in trips. Road
//     segments that carry traffic both ways are added with
//     WithBidirectional(), which registers the two opposing arcs in one
//     call.
//   - A Demand is an (origin, destination, trips) triple. Both endpoints
//     must already exist in the node set when the demand is added.
//   - Endpoints of a Link are registered implicitly; AddNode exists for
//     declaring isolated or transit nodes up front.
//
// Errors (sentinel):
//
//	ErrEmptyNodeID      — node ID is the empty string.
//	ErrNodeNotFound     — demand references a node that does not exist.
//	ErrSelfLink         — link endpoints are the same node.
//	ErrNegativeDistance — link distance below zero.
//	ErrNegativeCapacity — link capacity below zero.
//	ErrNegativeTrips    — demand volume below zero.
//
// Validation happens at construction time, so a Network that was built
// without error is structurally sound input for the flow model builder.
package network
