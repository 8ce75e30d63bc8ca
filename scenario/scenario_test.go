// Package scenario_test pins the seeded strait study to the values the
// model must reproduce, and exercises Compare in both execution modes.
package scenario_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/st1ckyband1t/Transportation-Optimisation/mcflow"
	"github.com/st1ckyband1t/Transportation-Optimisation/scenario"
)

// ------------------------------------------------------------------------
// 1. Seeded study: the numbers the repository exists to reproduce.
// ------------------------------------------------------------------------

func TestStrait_BaselineObjective(t *testing.T) {
	res, err := scenario.Evaluate(scenario.Scenario{Name: "without ferry", Net: scenario.Strait()})
	require.NoError(t, err)
	require.InDelta(t, 399250.0, res.ObjectiveKm, 1e-6)
}

func TestStrait_FerryObjective(t *testing.T) {
	res, err := scenario.Evaluate(scenario.Scenario{Name: "with ferry", Net: scenario.StraitFerry()})
	require.NoError(t, err)
	require.InDelta(t, 280770.0, res.ObjectiveKm, 1e-6)

	// The ferry may never carry more than its per-direction capacity.
	require.LessOrEqual(t, res.FlowOn(scenario.FerryFrom, scenario.FerryTo), scenario.FerryCapacity+1e-6)
	require.LessOrEqual(t, res.FlowOn(scenario.FerryTo, scenario.FerryFrom), scenario.FerryCapacity+1e-6)
	// And it must actually be used — otherwise it saved nothing.
	require.Greater(t, res.FlowOn(scenario.FerryFrom, scenario.FerryTo), 0.0)
}

func TestStrait_BaselineAgreesUnderForceLP(t *testing.T) {
	// The road-only network is uncapacitated, so the decomposition path
	// answers; forcing the full LP must not change the objective.
	fast, err := scenario.Evaluate(scenario.Scenario{Net: scenario.Strait()})
	require.NoError(t, err)
	forced, err := scenario.Evaluate(scenario.Scenario{Net: scenario.Strait()}, mcflow.WithForceLP())
	require.NoError(t, err)
	require.InDelta(t, fast.ObjectiveKm, forced.ObjectiveKm, 1e-6)
}

func TestCompare_Strait(t *testing.T) {
	cmp, err := scenario.Compare(
		scenario.Scenario{Name: "without ferry", Net: scenario.Strait()},
		scenario.Scenario{Name: "with ferry", Net: scenario.StraitFerry()},
	)
	require.NoError(t, err)

	require.InDelta(t, 118480.0, cmp.SavedKm, 1e-6)
	require.InDelta(t, 29.68, cmp.SavedPct, 0.01)
	// Monotonicity: adding a link cannot increase the optimum.
	require.GreaterOrEqual(t, cmp.SavedKm, 0.0)
	require.Equal(t, cmp.SavedKm, cmp.Baseline.ObjectiveKm-cmp.Alternative.ObjectiveKm)
}

func TestCompare_ParallelMatchesSequential(t *testing.T) {
	base := scenario.Scenario{Name: "without ferry", Net: scenario.Strait()}
	alt := scenario.Scenario{Name: "with ferry", Net: scenario.StraitFerry()}

	seq, err := scenario.Compare(base, alt)
	require.NoError(t, err)
	par, err := scenario.Compare(base, alt, scenario.WithParallel())
	require.NoError(t, err)

	require.Equal(t, seq.Baseline.ObjectiveKm, par.Baseline.ObjectiveKm)
	require.Equal(t, seq.Alternative.ObjectiveKm, par.Alternative.ObjectiveKm)
	require.Equal(t, seq.SavedKm, par.SavedKm)
}

// ------------------------------------------------------------------------
// 2. Failure behavior.
// ------------------------------------------------------------------------

func TestEvaluate_NilNetwork(t *testing.T) {
	_, err := scenario.Evaluate(scenario.Scenario{Name: "broken"})
	require.ErrorIs(t, err, scenario.ErrNilNetwork)
	require.Contains(t, err.Error(), "broken")
}

func TestCompare_FailurePropagates(t *testing.T) {
	base := scenario.Scenario{Name: "without ferry", Net: scenario.Strait()}
	_, err := scenario.Compare(base, scenario.Scenario{Name: "broken"})
	require.ErrorIs(t, err, scenario.ErrNilNetwork)
	require.Contains(t, err.Error(), "broken")
}

// ------------------------------------------------------------------------
// 3. Report rendering.
// ------------------------------------------------------------------------

func TestComparison_WriteReport(t *testing.T) {
	cmp, err := scenario.Compare(
		scenario.Scenario{Name: "without ferry", Net: scenario.Strait()},
		scenario.Scenario{Name: "with ferry", Net: scenario.StraitFerry()},
	)
	require.NoError(t, err)

	var sb strings.Builder
	cmp.WriteReport(&sb)
	out := sb.String()

	require.Contains(t, out, "Scenario: without ferry")
	require.Contains(t, out, "Scenario: with ferry")
	require.Contains(t, out, "Total driving distance: 399250.00 km")
	require.Contains(t, out, "Total driving distance: 280770.00 km")
	require.Contains(t, out, "Distance reduction: 118480.00 km (29.68%)")
}
