package network_test

import (
	"fmt"

	"github.com/st1ckyband1t/Transportation-Optimisation/network"
)

// ExampleNetwork_AddLink builds a three-node corridor with one two-way
// road and a one-way shortcut, then inspects the resulting arc set.
func ExampleNetwork_AddLink() {
	n := network.NewNetwork()
	_ = n.AddLink("A", "B", 3.5, network.WithBidirectional())
	_ = n.AddLink("A", "C", 7.0)

	fmt.Println(n.Nodes())
	fmt.Println(n.LinkCount())
	// Output:
	// [A B C]
	// 3
}

// ExampleNetwork_WithExtraLink derives an augmented scenario network
// without touching the baseline.
func ExampleNetwork_WithExtraLink() {
	base := network.NewNetwork()
	_ = base.AddLink("A", "B", 10, network.WithBidirectional())

	alt, _ := base.WithExtraLink("A", "B", 0, network.WithCapacity(2000))
	fmt.Println(base.LinkCount(), alt.LinkCount())
	// Output:
	// 2 3
}
