// The seeded strait study: a seven-node corridor where nodes 2 and 6 face
// each other across a strait, and all cross-strait traffic drives the
// long way around through nodes 3, 4 and 5.
package scenario

import "github.com/st1ckyband1t/Transportation-Optimisation/network"

// Ferry endpoints and the per-direction capacity of the proposed service.
const (
	FerryFrom = "2"
	FerryTo   = "6"

	// FerryCapacity is the trips the ferry can carry per direction. The
	// uncapped model routes implausible volumes over the water; 2000 per
	// direction keeps it honest.
	FerryCapacity = 2000
)

// straitRoad is one two-way road segment of the corridor.
type straitRoad struct {
	from, to string
	km       float64
}

// straitRoads is the road skeleton: 1—2—3—4—5—6—7, with the 25 km
// 4—5 segment being the long detour around the strait.
var straitRoads = []straitRoad{
	{"1", "2", 3.5},
	{"2", "3", 3.0},
	{"3", "4", 5.0},
	{"4", "5", 25.0},
	{"5", "6", 4.0},
	{"6", "7", 2.5},
}

// straitDemands is the daily origin-destination trip table. Traffic
// originates at nodes 1, 4 and 5 only.
var straitDemands = []network.Demand{
	{Origin: "1", Destination: "2", Trips: 900},
	{Origin: "1", Destination: "3", Trips: 750},
	{Origin: "1", Destination: "4", Trips: 40},
	{Origin: "1", Destination: "5", Trips: 10},
	{Origin: "1", Destination: "6", Trips: 600},
	{Origin: "1", Destination: "7", Trips: 550},

	{Origin: "4", Destination: "5", Trips: 150},
	{Origin: "4", Destination: "6", Trips: 1400},
	{Origin: "4", Destination: "7", Trips: 1250},
	{Origin: "4", Destination: "1", Trips: 100},
	{Origin: "4", Destination: "2", Trips: 2000},
	{Origin: "4", Destination: "3", Trips: 1100},

	{Origin: "5", Destination: "6", Trips: 3300},
	{Origin: "5", Destination: "7", Trips: 2440},
	{Origin: "5", Destination: "4", Trips: 200},
	{Origin: "5", Destination: "1", Trips: 110},
	{Origin: "5", Destination: "2", Trips: 4000},
	{Origin: "5", Destination: "3", Trips: 2200},
}

// Strait returns the road-only baseline network of the study.
// Its minimum total driving distance is 399,250 vehicle-km.
func Strait() *network.Network {
	n := network.NewNetwork()
	for _, r := range straitRoads {
		// Static literal data; construction cannot fail.
		_ = n.AddLink(r.from, r.to, r.km, network.WithBidirectional())
	}
	for _, d := range straitDemands {
		_ = n.AddDemand(d.Origin, d.Destination, d.Trips)
	}

	return n
}

// StraitFerry returns the study network with the ferry added: a
// zero-kilometre crossing between nodes 2 and 6 (no driving happens on
// the water), capped at FerryCapacity trips per direction. Its minimum
// total driving distance is 280,770 vehicle-km.
func StraitFerry() *network.Network {
	alt, _ := Strait().WithExtraLink(FerryFrom, FerryTo, 0,
		network.WithBidirectional(),
		network.WithCapacity(FerryCapacity),
	)

	return alt
}
