// Package lp adapts github.com/draffensperger/golp's lp_solve bindings
// to the incrementally-built sparse models internal/solver assembles.
package lp

import (
	"fmt"

	"github.com/draffensperger/golp"
)

// Status mirrors golp's solve outcome, narrowed to what callers need.
type Status int

const (
	StatusOptimal Status = iota
	StatusFeasible
	StatusInfeasible
	StatusOther
)

// Result is the solved model's outcome.
type Result struct {
	Status         Status
	Solution       []float64
	ObjectiveValue float64
}

// Solver wraps a golp.LP sized for a known variable count. Bounds and
// integrality are set per-column up front; constraints and the
// objective are supplied as dense rows, matching golp's own API.
type Solver struct {
	lp      *golp.LP
	numVars int
}

// New creates a solver over numVars decision/auxiliary variables.
func New(numVars int) (*Solver, error) {
	if numVars <= 0 {
		return nil, fmt.Errorf("lp: numVars must be positive, got %d", numVars)
	}
	return &Solver{lp: golp.NewLP(0, numVars), numVars: numVars}, nil
}

// SetBounds sets the lower/upper bound for variable idx (0-based).
func (s *Solver) SetBounds(idx int, lower, upper float64) error {
	if idx < 0 || idx >= s.numVars {
		return fmt.Errorf("lp: variable index %d out of range [0,%d)", idx, s.numVars)
	}
	s.lp.SetBounds(idx, lower, upper)
	return nil
}

// SetInt marks variable idx as integer-valued.
func (s *Solver) SetInt(idx int, isInt bool) error {
	if idx < 0 || idx >= s.numVars {
		return fmt.Errorf("lp: variable index %d out of range [0,%d)", idx, s.numVars)
	}
	s.lp.SetInt(idx, isInt)
	return nil
}

// SetObjective sets the dense objective row. The model builder always
// minimizes (every sub-term is a nonnegative penalty or gram count).
func (s *Solver) SetObjective(coeffs []float64) error {
	if len(coeffs) != s.numVars {
		return fmt.Errorf("lp: objective row length %d != numVars %d", len(coeffs), s.numVars)
	}
	s.lp.SetObjFn(coeffs)
	s.lp.SetMinimize()
	return nil
}

// AddConstraint adds one dense-row constraint: Σ coeffs[i]*x_i op rhs.
func (s *Solver) AddConstraint(coeffs []float64, operator string, rhs float64) error {
	if len(coeffs) != s.numVars {
		return fmt.Errorf("lp: constraint row length %d != numVars %d", len(coeffs), s.numVars)
	}
	var ct golp.ConstraintType
	switch operator {
	case "<=":
		ct = golp.LE
	case ">=":
		ct = golp.GE
	case "=":
		ct = golp.EQ
	default:
		return fmt.Errorf("lp: unknown constraint operator %q", operator)
	}
	s.lp.AddConstraint(coeffs, ct, rhs)
	return nil
}

// Solve hands the assembled model to lp_solve and interprets its
// terminal status. golp's lp_solve binding has no wall-clock knob of
// its own; the solver driver enforces the budget by racing this call
// against a timer in a goroutine.
func (s *Solver) Solve() (*Result, error) {
	switch s.lp.Solve() {
	case golp.OPTIMAL:
		return &Result{
			Status:         StatusOptimal,
			Solution:       s.lp.Variables(),
			ObjectiveValue: s.lp.Objective(),
		}, nil
	case golp.SUBOPTIMAL:
		return &Result{
			Status:         StatusFeasible,
			Solution:       s.lp.Variables(),
			ObjectiveValue: s.lp.Objective(),
		}, nil
	case golp.INFEASIBLE, golp.UNBOUNDED, golp.NOMEMORY:
		return &Result{Status: StatusInfeasible}, nil
	default:
		return &Result{Status: StatusOther}, nil
	}
}

// Close releases the underlying lp_solve handle.
func (s *Solver) Close() {
	s.lp.Delete()
}
