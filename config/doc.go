// Package config loads a scenario study from a YAML file: the node set,
// the links with their distances and optional capacities, the travel
// demands, and the extra links that define the alternative scenario.
//
// Schema:
//
//	nodes:                 # optional; link endpoints register implicitly
//	  - "1"
//	links:
//	  - {from: "1", to: "2", km: 3.5, bidirectional: true}
//	  - {from: "5", to: "6", km: 4.0, bidirectional: true, capacity: 1200}
//	demands:
//	  - {origin: "1", destination: "2", trips: 900}
//	extra_links:           # the alternative scenario = links + extra_links
//	  - {from: "2", to: "6", km: 0, bidirectional: true, capacity: 2000}
//
// Validation is two-layered: struct tags (go-playground/validator) reject
// malformed shapes before any network is built, and the network
// constructors re-check the semantic rules (unknown demand endpoints,
// negative distances) so a hand-built File gets the same scrutiny.
package config
