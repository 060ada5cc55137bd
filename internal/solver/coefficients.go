package solver

import "math"

// linExpr is a sparse linear expression Σ coef[idx]*x_idx + constant,
// used by the model builder before it is handed to the LP adapter.
type linExpr struct {
	coef     map[int]float64
	constant float64
}

func newLinExpr() linExpr {
	return linExpr{coef: make(map[int]float64)}
}

// addTerm returns a copy of e with c added to x_idx's coefficient; e
// itself (and any expression sharing its map) is left unchanged.
func (e linExpr) addTerm(idx int, c float64) linExpr {
	if c == 0 {
		return e
	}
	out := linExpr{coef: make(map[int]float64, len(e.coef)+1), constant: e.constant}
	for k, v := range e.coef {
		out.coef[k] = v
	}
	out.coef[idx] += c
	return out
}

func (e linExpr) addConst(c float64) linExpr {
	e.constant += c
	return e
}

// scaled returns a copy of e with every coefficient and the constant
// multiplied by f.
func (e linExpr) scaled(f float64) linExpr {
	out := newLinExpr()
	for idx, c := range e.coef {
		out.coef[idx] = c * f
	}
	out.constant = e.constant * f
	return out
}

// plus returns e1 + e2 as a fresh expression.
func (e1 linExpr) plus(e2 linExpr) linExpr {
	out := newLinExpr()
	for idx, c := range e1.coef {
		out.coef[idx] += c
	}
	for idx, c := range e2.coef {
		out.coef[idx] += c
	}
	out.constant = e1.constant + e2.constant
	return out
}

// singleVar returns a linExpr that is exactly coefficient*x_idx.
func singleVar(idx int, coefficient float64) linExpr {
	e := newLinExpr()
	e.coef[idx] = coefficient
	return e
}

// coefficientLayer precomputes integer per-gram coefficients for one
// ingredient, at scale S_MACRO for calories/macros and S_MICRO for
// every micronutrient key present on the ingredient.
//
// c_{i,n} = round(d_{i,n} * S / 100)
type coefficientLayer struct {
	macro map[MacroKey]int64
	cal   int64
	micro map[string]int64
}

func buildCoefficients(ing Ingredient) coefficientLayer {
	cl := coefficientLayer{
		macro: make(map[MacroKey]int64, 4),
		micro: make(map[string]int64, len(ing.Micros100g)),
	}
	cl.cal = roundScale(ing.Per100g.CaloriesKcal, ScaleMacro)
	cl.macro[MacroProtein] = roundScale(ing.Per100g.ProteinG, ScaleMacro)
	cl.macro[MacroFat] = roundScale(ing.Per100g.FatG, ScaleMacro)
	cl.macro[MacroCarbs] = roundScale(ing.Per100g.CarbsG, ScaleMacro)
	cl.macro[MacroFiber] = roundScale(ing.Per100g.FiberG, ScaleMacro)
	for key, density := range ing.Micros100g {
		cl.micro[key] = roundScale(density, ScaleMicro)
	}
	return cl
}

// roundScale computes round(density * scale / 100) as an integer
// per-gram coefficient.
func roundScale(density float64, scale int) int64 {
	return int64(math.Round(density * float64(scale) / 100.0))
}
