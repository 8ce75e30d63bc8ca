package scenario

import (
	"errors"

	"github.com/st1ckyband1t/Transportation-Optimisation/mcflow"
	"github.com/st1ckyband1t/Transportation-Optimisation/network"
)

// Sentinel errors for scenario evaluation.
var (
	// ErrNilNetwork indicates a Scenario without a network.
	ErrNilNetwork = errors.New("scenario: network is nil")

	// ErrPool indicates the parallel worker pool could not be created.
	ErrPool = errors.New("scenario: worker pool unavailable")
)

// Scenario is a named network to evaluate.
type Scenario struct {
	// Name labels the scenario in reports ("without ferry", ...).
	Name string

	// Net is the network to route all demands over.
	Net *network.Network
}

// Comparison is the outcome of evaluating a baseline and an alternative
// scenario over identical demands.
type Comparison struct {
	// BaselineName and AlternativeName echo the scenario labels.
	BaselineName    string
	AlternativeName string

	// Baseline and Alternative carry the full evaluation results,
	// including per-arc flows.
	Baseline    mcflow.Result
	Alternative mcflow.Result

	// SavedKm is baseline objective − alternative objective. When the
	// alternative only adds links, it is ≥ 0: extending the network
	// cannot worsen the optimum.
	SavedKm float64

	// SavedPct is SavedKm as a percentage of the baseline objective
	// (zero when the baseline objective is zero).
	SavedPct float64
}

// Options configures Compare.
type Options struct {
	// Parallel runs the two solves concurrently on a worker pool.
	Parallel bool

	// Eval is forwarded to each mcflow.MinCostFlow call.
	Eval []mcflow.Option
}

// Option is a functional option for Compare.
type Option func(*Options)

// WithParallel runs the baseline and alternative solves concurrently.
// The two evaluations share no state, so this is purely a wall-clock
// optimization.
func WithParallel() Option {
	return func(o *Options) { o.Parallel = true }
}

// WithEvalOptions forwards evaluator options (solver choice, epsilon,
// context, verbosity) to both scenario solves.
func WithEvalOptions(opts ...mcflow.Option) Option {
	return func(o *Options) { o.Eval = append(o.Eval, opts...) }
}
