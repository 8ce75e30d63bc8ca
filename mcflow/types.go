// This file declares the evaluator's sentinel errors, functional options,
// and the Result type returned to callers.
package mcflow

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/st1ckyband1t/Transportation-Optimisation/lp"
)

// Sentinel errors returned by MinCostFlow.
var (
	// ErrNilNetwork indicates a nil *network.Network was passed in.
	ErrNilNetwork = errors.New("mcflow: network is nil")

	// ErrNoNodes indicates the network has an empty node set.
	ErrNoNodes = errors.New("mcflow: network has no nodes")

	// ErrInfeasible indicates some demand cannot be routed given the link
	// connectivity or capacities. Retrying cannot help: the model is static.
	ErrInfeasible = errors.New("mcflow: model is infeasible")

	// ErrUnbounded indicates the solver reported an unbounded objective.
	ErrUnbounded = errors.New("mcflow: model is unbounded")

	// ErrSolver indicates the backend engine itself failed; the cause is
	// wrapped and can be unwrapped with errors.Is/As.
	ErrSolver = errors.New("mcflow: solver error")

	// ErrBadEpsilon indicates a non-positive Epsilon option value.
	ErrBadEpsilon = errors.New("mcflow: Epsilon must be positive")
)

// defaultEpsilon is the flow significance threshold: solver values at or
// below it are reported as zero flow.
const defaultEpsilon = 1e-6

// Arc identifies a directed link by its endpoints. Parallel arcs are
// aggregated under one key in flow reports.
type Arc struct {
	From, To string
}

// Result is the evaluator's output: the optimal objective and the flow
// assignment that achieves it.
type Result struct {
	// ObjectiveKm is the minimal total distance-weighted flow, in
	// vehicle-kilometres. Rounded to 1e-9 to prevent FP drift between
	// solution paths.
	ObjectiveKm float64

	// Flows maps each commodity (keyed by its origin node) to the trips
	// it routes across each arc. Flows at or below the configured Epsilon
	// are omitted.
	Flows map[string]map[Arc]float64
}

// ArcTotals aggregates the per-commodity flows into total trips per arc.
func (r Result) ArcTotals() map[Arc]float64 {
	totals := make(map[Arc]float64)
	for _, flows := range r.Flows {
		for a, v := range flows {
			totals[a] += v
		}
	}

	return totals
}

// FlowOn returns the total trips routed across the arc from→to by all
// commodities.
func (r Result) FlowOn(from, to string) float64 {
	var total float64
	for _, flows := range r.Flows {
		total += flows[Arc{From: from, To: to}]
	}

	return total
}

// Commodities returns the commodity origins present in the result,
// sorted lexicographically ascending.
func (r Result) Commodities() []string {
	origins := make([]string, 0, len(r.Flows))
	for o := range r.Flows {
		origins = append(origins, o)
	}
	sort.Strings(origins)

	return origins
}

// Options configures a MinCostFlow evaluation.
//
//	Solver  – the LP backend used when the model needs capacity coupling.
//	ForceLP – solve the LP even when the decomposition applies.
//	Epsilon – flow significance threshold (must be > 0; default 1e-6).
//	Verbose – print model dimensions and solve outcome to stdout.
//	Ctx     – context consulted before and between the blocking phases.
type Options struct {
	Solver  lp.Solver
	ForceLP bool
	Epsilon float64
	Verbose bool
	Ctx     context.Context
}

// Option is a functional option for configuring MinCostFlow.
type Option func(*Options)

// WithSolver substitutes the LP backend. Any engine implementing
// lp.Solver is compliant; the default is lp.NewSimplex().
func WithSolver(s lp.Solver) Option {
	return func(o *Options) { o.Solver = s }
}

// WithForceLP always assembles the multi-commodity LP, even on
// uncapacitated networks where the shortest-path decomposition applies.
func WithForceLP() Option {
	return func(o *Options) { o.ForceLP = true }
}

// WithEpsilon sets the flow significance threshold: solver values at or
// below eps are reported as zero. Must be positive; non-positive values
// cause ErrBadEpsilon via panic, as option constructors fail early.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// WithVerbose prints model dimensions and the solve outcome to stdout.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithContext attaches ctx to the evaluation; cancellation is honored
// between the blocking phases.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// DefaultOptions returns the evaluator defaults: simplex backend,
// automatic decomposition, Epsilon 1e-6, quiet, background context.
func DefaultOptions() Options {
	return Options{
		Epsilon: defaultEpsilon,
	}
}

// normalize fills the zero-value gaps left by direct struct construction.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = defaultEpsilon
	}
	if o.Solver == nil {
		o.Solver = lp.NewSimplex()
	}
}

// roundKm rounds an objective value to 1e-9 so that the LP path and the
// shortest-path decomposition report bit-identical totals.
func roundKm(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
