package lp

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for problem construction and solving.
var (
	// ErrNilProblem indicates a nil *Problem was passed to a Solver.
	ErrNilProblem = errors.New("lp: problem is nil")

	// ErrNoVariables indicates the Problem has no decision variables.
	ErrNoVariables = errors.New("lp: problem has no variables")

	// ErrBadIndex indicates a constraint referenced a variable index that
	// was never created with AddVariable.
	ErrBadIndex = errors.New("lp: variable index out of range")

	// ErrSolverFailed indicates the backend engine failed; it wraps the
	// engine's own error for inspection.
	ErrSolverFailed = errors.New("lp: solver failed")
)

// Status is the outcome classification of a solve.
type Status int

const (
	// StatusOptimal means a globally optimal solution was found.
	StatusOptimal Status = iota

	// StatusInfeasible means no point satisfies the constraint set.
	StatusInfeasible

	// StatusUnbounded means the objective decreases without bound.
	StatusUnbounded

	// StatusError means the engine failed before classifying the model.
	StatusError
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "error"
	}
}

// Solution carries the result of a solve: the status, the objective value
// at the optimum, and the primal values of the original variables (slack
// columns introduced for ≤ rows are stripped).
type Solution struct {
	Status    Status
	Objective float64
	X         []float64
}

// IsOptimal reports whether the solve reached a proven optimum.
func (s *Solution) IsOptimal() bool { return s.Status == StatusOptimal }

// IsInfeasible reports whether the model admits no feasible point.
func (s *Solution) IsInfeasible() bool { return s.Status == StatusInfeasible }

// IsUnbounded reports whether the objective is unbounded below.
func (s *Solution) IsUnbounded() bool { return s.Status == StatusUnbounded }

// Value returns the solution value of variable idx, or 0 when idx is out
// of range.
func (s *Solution) Value(idx int) float64 {
	if idx < 0 || idx >= len(s.X) {
		return 0
	}

	return s.X[idx]
}

// Solver is the pluggable backend contract. Solve blocks until the engine
// finishes or reports a failure; implementations should honor ctx where
// their engine allows and must not mutate p.
type Solver interface {
	Solve(ctx context.Context, p *Problem) (*Solution, error)
}

// rowKind discriminates constraint rows.
type rowKind int

const (
	rowEq rowKind = iota // Σ coeff·x = rhs
	rowLe                // Σ coeff·x ≤ rhs
)

// row is one linear constraint in sparse form.
type row struct {
	coeffs map[int]float64
	rhs    float64
	kind   rowKind
}

// Problem is a linear program in the form
//
//	minimize    cᵀx
//	subject to  Σ aᵢⱼ·xⱼ  =  bᵢ   (equality rows)
//	            Σ aᵢⱼ·xⱼ  ≤  bᵢ   (upper-bound rows)
//	            x ≥ 0
//
// Variables are created with AddVariable, which returns the column index
// used to reference the variable in constraint rows.
type Problem struct {
	costs []float64
	rows  []row
}

// NewProblem creates an empty Problem.
func NewProblem() *Problem {
	return &Problem{}
}

// AddVariable appends a non-negative decision variable with the given
// objective cost and returns its column index.
func (p *Problem) AddVariable(cost float64) int {
	p.costs = append(p.costs, cost)

	return len(p.costs) - 1
}

// NumVariables returns the number of decision variables.
func (p *Problem) NumVariables() int { return len(p.costs) }

// NumConstraints returns the number of constraint rows.
func (p *Problem) NumConstraints() int { return len(p.rows) }

// AddEquality appends the constraint Σ coeffs[j]·x[j] = rhs.
// Returns ErrBadIndex if any referenced variable does not exist.
func (p *Problem) AddEquality(coeffs map[int]float64, rhs float64) error {
	return p.addRow(coeffs, rhs, rowEq)
}

// AddLessEq appends the constraint Σ coeffs[j]·x[j] ≤ rhs.
// Returns ErrBadIndex if any referenced variable does not exist.
func (p *Problem) AddLessEq(coeffs map[int]float64, rhs float64) error {
	return p.addRow(coeffs, rhs, rowLe)
}

func (p *Problem) addRow(coeffs map[int]float64, rhs float64, kind rowKind) error {
	for j := range coeffs {
		if j < 0 || j >= len(p.costs) {
			return fmt.Errorf("%w: %d (have %d variables)", ErrBadIndex, j, len(p.costs))
		}
	}

	// Copy the coefficient map so later caller mutations cannot corrupt
	// the stored row.
	c := make(map[int]float64, len(coeffs))
	for j, v := range coeffs {
		c[j] = v
	}
	p.rows = append(p.rows, row{coeffs: c, rhs: rhs, kind: kind})

	return nil
}
