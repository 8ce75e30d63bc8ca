package scenario_test

import (
	"fmt"

	"github.com/st1ckyband1t/Transportation-Optimisation/scenario"
)

// ExampleCompare runs the seeded strait study: the ferry saves 118,480
// vehicle-kilometres per day, a 29.68% reduction.
func ExampleCompare() {
	cmp, _ := scenario.Compare(
		scenario.Scenario{Name: "without ferry", Net: scenario.Strait()},
		scenario.Scenario{Name: "with ferry", Net: scenario.StraitFerry()},
	)

	fmt.Printf("baseline:    %.2f km\n", cmp.Baseline.ObjectiveKm)
	fmt.Printf("with ferry:  %.2f km\n", cmp.Alternative.ObjectiveKm)
	fmt.Printf("saved:       %.2f km (%.2f%%)\n", cmp.SavedKm, cmp.SavedPct)
	// Output:
	// baseline:    399250.00 km
	// with ferry:  280770.00 km
	// saved:       118480.00 km (29.68%)
}
