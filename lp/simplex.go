// Simplex is the default Solver backend. It converts the Problem to the
// dense standard form gonum's simplex accepts (equalities only, slack
// columns for ≤ rows, x ≥ 0) and delegates the optimization.
package lp

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	convexlp "gonum.org/v1/gonum/optimize/convex/lp"
)

// Simplex solves Problems with gonum's dense simplex method.
// The zero value is ready to use.
type Simplex struct {
	// Tol is the convergence tolerance handed to the engine.
	// Zero selects gonum's default.
	Tol float64
}

// NewSimplex returns a Simplex backend with default tolerance.
func NewSimplex() *Simplex {
	return &Simplex{}
}

// Solve implements Solver.
//
// Steps:
//  1. Validate the problem and check ctx before the (uninterruptible)
//     engine call.
//  2. Convert to standard form: one slack column per ≤ row; equality rows
//     with negative rhs are negated so the engine sees b ≥ 0.
//  3. Run the engine and classify the outcome: infeasible and unbounded
//     are model outcomes carried in Solution.Status with a nil error;
//     anything else the engine reports becomes ErrSolverFailed.
//
// Complexity: the conversion is O(rows × cols); the solve is the engine's.
func (s *Simplex) Solve(ctx context.Context, p *Problem) (*Solution, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if p.NumVariables() == 0 {
		return nil, ErrNoVariables
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Count slack columns.
	nVars := p.NumVariables()
	nSlack := 0
	for i := range p.rows {
		if p.rows[i].kind == rowLe {
			nSlack++
		}
	}
	nCols := nVars + nSlack
	nRows := len(p.rows)

	// Degenerate but legal: no constraints at all. With x ≥ 0 the optimum
	// is x = 0 unless some cost is negative, in which case the objective
	// is unbounded below. The engine rejects empty matrices, so settle it
	// here.
	if nRows == 0 {
		for _, cost := range p.costs {
			if cost < 0 {
				return &Solution{Status: StatusUnbounded}, nil
			}
		}

		return &Solution{Status: StatusOptimal, X: make([]float64, nVars)}, nil
	}

	c := make([]float64, nCols)
	copy(c, p.costs)

	a := mat.NewDense(nRows, nCols, nil)
	b := make([]float64, nRows)
	slack := nVars
	for i, r := range p.rows {
		sign := 1.0
		if r.kind == rowEq && r.rhs < 0 {
			sign = -1.0 // normalize equality rows to b ≥ 0
		}
		for j, v := range r.coeffs {
			a.Set(i, j, sign*v)
		}
		b[i] = sign * r.rhs
		if r.kind == rowLe {
			a.Set(i, slack, 1)
			slack++
		}
	}

	opt, x, err := convexlp.Simplex(c, a, b, s.Tol, nil)
	switch {
	case err == nil:
		return &Solution{Status: StatusOptimal, Objective: opt, X: x[:nVars]}, nil
	case errors.Is(err, convexlp.ErrInfeasible):
		return &Solution{Status: StatusInfeasible}, nil
	case errors.Is(err, convexlp.ErrUnbounded):
		return &Solution{Status: StatusUnbounded}, nil
	default:
		return &Solution{Status: StatusError}, fmt.Errorf("%w: %v", ErrSolverFailed, err)
	}
}
