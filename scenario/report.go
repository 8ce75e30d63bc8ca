// Text report rendering for a Comparison.
package scenario

import (
	"fmt"
	"io"
	"sort"

	"github.com/st1ckyband1t/Transportation-Optimisation/mcflow"
)

// WriteReport renders the comparison as a plain-text report: per-scenario
// totals with their aggregate arc flows, followed by the distance
// reduction. Arc rows are sorted by (from, to) for stable output.
func (c Comparison) WriteReport(w io.Writer) {
	writeResult(w, c.BaselineName, c.Baseline)
	fmt.Fprintln(w)
	writeResult(w, c.AlternativeName, c.Alternative)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Distance reduction: %.2f km (%.2f%%)\n", c.SavedKm, c.SavedPct)
}

func writeResult(w io.Writer, name string, res mcflow.Result) {
	fmt.Fprintf(w, "Scenario: %s\n", name)
	fmt.Fprintf(w, "Total driving distance: %.2f km\n", res.ObjectiveKm)

	totals := res.ArcTotals()
	arcs := make([]mcflow.Arc, 0, len(totals))
	for a := range totals {
		arcs = append(arcs, a)
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].From != arcs[j].From {
			return arcs[i].From < arcs[j].From
		}

		return arcs[i].To < arcs[j].To
	})

	fmt.Fprintln(w, "Arc flows:")
	for _, a := range arcs {
		fmt.Fprintf(w, "  %s -> %s: %.2f", a.From, a.To, totals[a])
		// Per-commodity breakdown, origins sorted.
		for _, origin := range res.Commodities() {
			if v := res.Flows[origin][a]; v > 0 {
				fmt.Fprintf(w, "  [from %s: %.2f]", origin, v)
			}
		}
		fmt.Fprintln(w)
	}
}
