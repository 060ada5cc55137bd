package solver

import (
	"time"

	"nutrient-solver/internal/solver/lp"
)

// Solve is the core's single entry point: a pure function from a
// Request to a Solution. It never retains state between calls.
func Solve(req Request) (Solution, error) {
	if err := validateRequest(req); err != nil {
		return Solution{}, err
	}

	m := newModel()
	m.buildDecisionVariables(req.Ingredients)
	m.buildCalorieBand(req.Targets)
	m.buildMacroConstraints(req.Constraints)

	worstUlProx := m.buildULProximity(req.MicroTargets, req.MicroULs)
	m.buildULCaps(req.MicroULs)
	worstPct, sumPct, microCount := m.buildMicroCoverage(req.MicroTargets)
	ratioWitness := m.buildMacroRatio(req.MacroRatio, req.Targets)

	terms := m.composeObjective(&req, worstUlProx, worstPct, sumPct, microCount, ratioWitness)
	weights, err := lexWeights(terms, req.OverflowBoundLog2)
	if err != nil {
		return Solution{}, err
	}

	objective := make(map[int]float64)
	for k, term := range terms {
		w := weights[k]
		for idx, c := range term.expr.coef {
			objective[idx] += w * c
		}
	}

	timeout := req.TimeoutSecs
	if timeout <= 0 {
		timeout = DefaultTimeoutSeconds
	}

	result, err := runBounded(m, objective, timeout)
	if err != nil {
		return Solution{}, err
	}
	if result == nil || (result.Status != lp.StatusOptimal && result.Status != lp.StatusFeasible) {
		return infeasibleSolution(), nil
	}

	status := StatusOptimal
	if result.Status == lp.StatusFeasible {
		status = StatusFeasible
	}
	return materialize(req, m, result.Solution, status, result.ObjectiveValue), nil
}

// runBounded solves the assembled model against lp_solve, racing the
// call against the caller's wall-clock budget. A timeout with no
// feasible incumbent yet is reported the same way as any other
// infeasibility (spec.md §4.4, §7).
func runBounded(m *model, objective map[int]float64, timeoutSecs int) (*lp.Result, error) {
	s, err := lp.New(len(m.vars))
	if err != nil {
		return nil, err
	}
	defer s.Close()

	for idx, v := range m.vars {
		if err := s.SetBounds(idx, v.lower, v.upper); err != nil {
			return nil, err
		}
		if err := s.SetInt(idx, v.integer); err != nil {
			return nil, err
		}
	}

	denseObj := make([]float64, len(m.vars))
	for idx, c := range objective {
		denseObj[idx] = c
	}
	if err := s.SetObjective(denseObj); err != nil {
		return nil, err
	}

	for _, c := range m.constraints {
		row := make([]float64, len(m.vars))
		for idx, coef := range c.coef {
			row[idx] = coef
		}
		if err := s.AddConstraint(row, string(c.op), c.rhs); err != nil {
			return nil, err
		}
	}

	type outcome struct {
		res *lp.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := s.Solve()
		done <- outcome{res, err}
	}()

	select {
	case o := <-done:
		return o.res, o.err
	case <-time.After(time.Duration(timeoutSecs) * time.Second):
		return &lp.Result{Status: lp.StatusInfeasible}, nil
	}
}

func infeasibleSolution() Solution {
	return Solution{
		Status:      StatusInfeasible,
		Ingredients: []IngredientResult{},
		MealMicros:  map[string]float64{},
	}
}

// materialize recomputes realized macros and micros from the float
// per-100g densities (not the scaled integer coefficients) to avoid
// compounding rounding in user-visible totals, per spec.md §4.4.
func materialize(req Request, m *model, x []float64, status Status, objectiveValue float64) Solution {
	sol := Solution{
		Status:         status,
		MealMicros:     map[string]float64{},
		ObjectiveValue: objectiveValue,
	}

	for i, in := range req.Ingredients {
		grams := x[m.xIdx[i]]
		gramsInt := int(grams + 0.5)
		ratio := grams / 100.0

		ir := IngredientResult{
			IngredientID: in.Ingredient.ID,
			Grams:        gramsInt,
			Macros: MacroVector{
				CaloriesKcal: in.Ingredient.Per100g.CaloriesKcal * ratio,
				ProteinG:     in.Ingredient.Per100g.ProteinG * ratio,
				FatG:         in.Ingredient.Per100g.FatG * ratio,
				CarbsG:       in.Ingredient.Per100g.CarbsG * ratio,
				FiberG:       in.Ingredient.Per100g.FiberG * ratio,
			},
		}
		sol.Ingredients = append(sol.Ingredients, ir)

		sol.MealMacros.CaloriesKcal += ir.Macros.CaloriesKcal
		sol.MealMacros.ProteinG += ir.Macros.ProteinG
		sol.MealMacros.FatG += ir.Macros.FatG
		sol.MealMacros.CarbsG += ir.Macros.CarbsG
		sol.MealMacros.FiberG += ir.Macros.FiberG

		for key, density := range in.Ingredient.Micros100g {
			sol.MealMicros[key] += density * ratio
		}
	}

	return sol
}
