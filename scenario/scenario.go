package scenario

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/st1ckyband1t/Transportation-Optimisation/mcflow"
)

// Evaluate routes all demands of the scenario's network at minimum total
// distance. It is a thin wrapper over mcflow.MinCostFlow that guards the
// scenario shape.
func Evaluate(s Scenario, opts ...mcflow.Option) (mcflow.Result, error) {
	if s.Net == nil {
		return mcflow.Result{}, fmt.Errorf("%w: scenario %q", ErrNilNetwork, s.Name)
	}

	return mcflow.MinCostFlow(s.Net, opts...)
}

// Compare evaluates the baseline and the alternative scenario and reports
// the kilometres saved by the alternative.
//
// The two solves are independent (no shared mutable state); with
// WithParallel() they run concurrently on a two-worker pool. Ordering of
// the solves never affects the result.
//
// If either evaluation fails, the error is returned as-is and no
// Comparison is produced: a partial saving must never be reported.
func Compare(baseline, alternative Scenario, opts ...Option) (Comparison, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		baseRes, altRes mcflow.Result
		baseErr, altErr error
	)

	if cfg.Parallel {
		pool, err := ants.NewPool(2)
		if err != nil {
			return Comparison{}, fmt.Errorf("%w: %v", ErrPool, err)
		}
		defer pool.Release()

		var wg sync.WaitGroup
		wg.Add(2)
		if err = pool.Submit(func() {
			defer wg.Done()
			baseRes, baseErr = Evaluate(baseline, cfg.Eval...)
		}); err != nil {
			wg.Done()
			baseErr = fmt.Errorf("%w: %v", ErrPool, err)
		}
		if err = pool.Submit(func() {
			defer wg.Done()
			altRes, altErr = Evaluate(alternative, cfg.Eval...)
		}); err != nil {
			wg.Done()
			altErr = fmt.Errorf("%w: %v", ErrPool, err)
		}
		wg.Wait()
	} else {
		baseRes, baseErr = Evaluate(baseline, cfg.Eval...)
		altRes, altErr = Evaluate(alternative, cfg.Eval...)
	}

	if baseErr != nil {
		return Comparison{}, fmt.Errorf("scenario %q: %w", baseline.Name, baseErr)
	}
	if altErr != nil {
		return Comparison{}, fmt.Errorf("scenario %q: %w", alternative.Name, altErr)
	}

	saved := baseRes.ObjectiveKm - altRes.ObjectiveKm
	pct := 0.0
	if baseRes.ObjectiveKm != 0 {
		pct = saved / baseRes.ObjectiveKm * 100
	}

	return Comparison{
		BaselineName:    baseline.Name,
		AlternativeName: alternative.Name,
		Baseline:        baseRes,
		Alternative:     altRes,
		SavedKm:         saved,
		SavedPct:        pct,
	}, nil
}
