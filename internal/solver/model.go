package solver

import "math"

// op is a constraint relational operator.
type op string

const (
	opLE op = "<="
	opGE op = ">="
	opEQ op = "="
)

// lpVar is a decision or auxiliary variable declaration, ready for the
// lp adapter.
type lpVar struct {
	lower, upper float64
	integer      bool
}

// lpConstraint is a single linear constraint over variable indices.
type lpConstraint struct {
	coef map[int]float64
	op   op
	rhs  float64
}

// model accumulates variables and constraints while the builder walks
// the request; it holds no reference to any LP engine.
type model struct {
	vars        []lpVar
	constraints []lpConstraint

	xIdx []int // per-ingredient decision variable index

	totals      map[string]linExpr // "calories", macro keys, micro keys
	maxPossible map[string]float64 // per-key Σ_i max_g_i * c_{i,key}, at that key's scale

	// objective sub-terms collected per priority, built incrementally
	// by the component-design steps below.
	microPctShort   []linExpr         // pct_short_n witnesses (micros coverage)
	microUlProx     []linExpr         // ul_prox_n witnesses
	activeMacros    map[MacroKey]bool // macros governed by any active constraint
	ratioWitnesses  []linExpr         // pct_dev_m (ratio) + pct_loose_c (soft constraint), shared bound PctScale
	totalGramsExpr  linExpr
	totalGramsBound float64
}

func newModel() *model {
	return &model{
		totals:       make(map[string]linExpr),
		maxPossible:  make(map[string]float64),
		activeMacros: make(map[MacroKey]bool),
	}
}

func (m *model) newVar(lower, upper float64, integer bool) int {
	m.vars = append(m.vars, lpVar{lower: lower, upper: upper, integer: integer})
	return len(m.vars) - 1
}

// addConstraint normalizes a constraint of the form expr op rhs,
// folding the expression's constant term into rhs.
func (m *model) addConstraint(e linExpr, o op, rhs float64) {
	m.constraints = append(m.constraints, lpConstraint{coef: e.coef, op: o, rhs: rhs - e.constant})
}

func (m *model) total(key string) linExpr {
	if e, ok := m.totals[key]; ok {
		return e
	}
	// Out-of-range reference: key unknown to any ingredient produces a
	// zero-expression total (spec.md §7).
	return newLinExpr()
}

// buildDecisionVariables declares one bounded integer variable per
// ingredient and assembles the memoized per-nutrient total expressions.
func (m *model) buildDecisionVariables(inputs []IngredientInput) {
	m.xIdx = make([]int, len(inputs))

	totalCal := newLinExpr()
	totalMacro := map[MacroKey]linExpr{
		MacroProtein: newLinExpr(),
		MacroFat:     newLinExpr(),
		MacroCarbs:   newLinExpr(),
		MacroFiber:   newLinExpr(),
	}
	totalMicro := map[string]linExpr{}
	maxCal := 0.0
	maxMacro := map[MacroKey]float64{}
	maxMicro := map[string]float64{}

	for i, in := range inputs {
		idx := m.newVar(float64(in.MinG), float64(in.MaxG), true)
		m.xIdx[i] = idx

		c := buildCoefficients(in.Ingredient)
		totalCal = totalCal.addTerm(idx, float64(c.cal))
		maxCal += float64(in.MaxG) * float64(c.cal)

		for k, v := range c.macro {
			totalMacro[k] = totalMacro[k].addTerm(idx, float64(v))
			maxMacro[k] += float64(in.MaxG) * float64(v)
		}
		for k, v := range c.micro {
			e, ok := totalMicro[k]
			if !ok {
				e = newLinExpr()
			}
			totalMicro[k] = e.addTerm(idx, float64(v))
			maxMicro[k] += float64(in.MaxG) * float64(v)
		}
	}

	m.totals["calories"] = totalCal
	m.maxPossible["calories"] = maxCal
	for k, v := range totalMacro {
		m.totals[string(k)] = v
		m.maxPossible[string(k)] = maxMacro[k]
	}
	for k, v := range totalMicro {
		m.totals[k] = v
		m.maxPossible[k] = maxMicro[k]
	}

	m.totalGramsExpr = newLinExpr()
	m.totalGramsBound = 0
	for i, in := range inputs {
		m.totalGramsExpr = m.totalGramsExpr.addTerm(m.xIdx[i], 1)
		m.totalGramsBound += float64(in.MaxG)
	}
}

// buildCalorieBand emits the hard calorie-band constraint via an
// auxiliary deviation variable (spec.md §4.2).
func (m *model) buildCalorieBand(t Targets) {
	tol := float64(t.CalTolerance) * ScaleMacro
	devIdx := m.newVar(-tol, tol, true)
	// T_cal - cal_dev = target*S_MACRO
	e := m.total("calories").addTerm(devIdx, -1)
	m.addConstraint(e, opEQ, float64(t.MealCaloriesKcal)*ScaleMacro)
}

// buildMacroConstraints applies each MacroConstraint, hard or soft,
// and records which macros become excluded from the ratio objective.
func (m *model) buildMacroConstraints(cs []MacroConstraint) {
	for _, c := range cs {
		if c.Mode == ModeNone {
			continue
		}
		m.activeMacros[c.Nutrient] = true

		key := string(c.Nutrient)
		T := m.total(key)
		g := float64(c.Grams) * ScaleMacro
		devBound := math.Max(m.maxPossible[key], g)

		switch c.Mode {
		case ModeGTE:
			if c.Hard {
				m.addConstraint(T, opGE, g)
				continue
			}
			m.addSoftDeviation(T, g, g, gteDirection)
		case ModeLTE:
			if c.Hard {
				m.addConstraint(T, opLE, g)
				continue
			}
			m.addSoftDeviation(T, g, devBound, lteDirection)
		case ModeEQ:
			if c.Hard {
				m.addConstraint(T, opEQ, g)
				continue
			}
			m.addSoftDeviation(T, g, devBound, eqDirection)
		}
	}
}

type deviationDirection int

const (
	gteDirection deviationDirection = iota
	lteDirection
	eqDirection
)

// addSoftDeviation emits the raw deviation variable and its normalized
// percentage witness for a loose MacroConstraint, per the table in
// spec.md §4.2, then registers the pct witness for the shared
// macro-ratio/loose-macro minimax term.
func (m *model) addSoftDeviation(T linExpr, g, normDenom float64, dir deviationDirection) {
	penIdx := m.newVar(0, normDenom, true)
	switch dir {
	case gteDirection:
		// pen >= g - T  <=>  pen + T >= g
		m.addConstraint(T.addTerm(penIdx, 1), opGE, g)
	case lteDirection:
		// pen >= T - g  <=>  T - pen <= g
		m.addConstraint(T.addTerm(penIdx, -1), opLE, g)
	case eqDirection:
		// pen >= T - g  and  pen >= g - T
		m.addConstraint(T.addTerm(penIdx, -1), opLE, g)
		m.addConstraint(T.addTerm(penIdx, 1), opGE, g)
	}

	pctIdx := m.newVar(0, PctScale, true)
	// pct*normDenom >= pen*PctScale
	m.addConstraint(singleVar(pctIdx, normDenom).addTerm(penIdx, -PctScale), opGE, 0)

	m.ratioWitnesses = append(m.ratioWitnesses, singleVar(pctIdx, 1))
}

// buildULCaps adds one hard cap per positive MicroUL whose nutrient is
// actually tracked by at least one ingredient.
func (m *model) buildULCaps(uls map[string]float64) {
	for key, ulVal := range uls {
		if ulVal <= 0 {
			continue
		}
		T := m.total(key)
		if len(T.coef) == 0 {
			continue // identically-zero total: no-op per spec.md §4.2
		}
		ulScaled := math.Round(ulVal * ScaleMicro)
		m.addConstraint(T, opLE, ulScaled)
	}
}

// buildMicroCoverage emits the shortfall/pct_short ladder for each
// positive MicroTarget and the worst_pct minimax witness.
func (m *model) buildMicroCoverage(targets map[string]float64) (worstPct *linExpr, sumPct linExpr, n int) {
	sumPct = newLinExpr()
	for key, targetVal := range targets {
		if targetVal <= 0 {
			continue // dropped silently per spec.md §7
		}
		targetScaled := math.Round(targetVal * ScaleMicro)
		if targetScaled <= 0 {
			continue
		}
		T := m.total(key)

		shortIdx := m.newVar(0, targetScaled, true)
		// shortfall >= target_scaled - T  <=>  shortfall + T >= target_scaled
		m.addConstraint(T.addTerm(shortIdx, 1), opGE, targetScaled)

		pctIdx := m.newVar(0, MicroPct, true)
		// pct_short*target_scaled >= shortfall*MicroPct
		m.addConstraint(singleVar(pctIdx, targetScaled).addTerm(shortIdx, -MicroPct), opGE, 0)

		m.microPctShort = append(m.microPctShort, singleVar(pctIdx, 1))
		sumPct = sumPct.plus(singleVar(pctIdx, 1))
		n++
	}
	if n == 0 {
		return nil, sumPct, 0
	}
	worstIdx := m.newVar(0, MicroPct, true)
	for _, pct := range m.microPctShort {
		m.addConstraint(singleVar(worstIdx, 1).plus(pct.scaled(-1)), opGE, 0)
	}
	w := singleVar(worstIdx, 1)
	return &w, sumPct, n
}

// buildULProximity emits the excess/ul_prox ladder for every nutrient
// carrying both a positive target and a positive, larger UL.
func (m *model) buildULProximity(targets, uls map[string]float64) *linExpr {
	for key, targetVal := range targets {
		if targetVal <= 0 {
			continue
		}
		ulVal, ok := uls[key]
		if !ok || ulVal <= 0 {
			continue
		}
		targetScaled := math.Round(targetVal * ScaleMicro)
		ulScaled := math.Round(ulVal * ScaleMicro)
		headroom := ulScaled - targetScaled
		if headroom <= 0 {
			continue
		}
		T := m.total(key)

		excessIdx := m.newVar(0, headroom, true)
		// excess >= T - target_scaled  <=>  T - excess <= target_scaled
		m.addConstraint(T.addTerm(excessIdx, -1), opLE, targetScaled)

		proxIdx := m.newVar(0, 100, true)
		// ul_prox*headroom >= excess*100
		m.addConstraint(singleVar(proxIdx, headroom).addTerm(excessIdx, -100), opGE, 0)

		m.microUlProx = append(m.microUlProx, singleVar(proxIdx, 1))
	}
	if len(m.microUlProx) == 0 {
		return nil
	}
	worstIdx := m.newVar(0, 100, true)
	for _, prox := range m.microUlProx {
		m.addConstraint(singleVar(worstIdx, 1).plus(prox.scaled(-1)), opGE, 0)
	}
	w := singleVar(worstIdx, 1)
	return &w
}

// macroRatioCalMultiplier returns the kcal-per-gram constant for a
// ratio-eligible macro, per the standard 4/4/9 accounting. Fiber is
// intentionally absent: it contributes no distinct calories in the
// ratio objective (it is a subset of carbs in that accounting).
func macroRatioCalMultiplier(k MacroKey) float64 {
	switch k {
	case MacroCarbs:
		return 4
	case MacroProtein:
		return 4
	case MacroFat:
		return 9
	}
	return 0
}

// buildMacroRatio emits the macro-ratio minimax sub-objective, folding
// its witnesses together with any loose-MacroConstraint pct witnesses
// into one combined minimax term (spec.md §4.3).
func (m *model) buildMacroRatio(r *MacroRatio, targets Targets) *linExpr {
	if r == nil {
		return m.ratioWitnessOnly()
	}

	pinned := map[MacroKey]float64{
		MacroCarbs:   r.PinnedCarbG,
		MacroProtein: r.PinnedProteinG,
		MacroFat:     r.PinnedFatG,
	}
	pcts := map[MacroKey]int{
		MacroCarbs:   r.CarbPct,
		MacroProtein: r.ProteinPct,
		MacroFat:     r.FatPct,
	}

	dayCal := map[MacroKey]linExpr{}
	dayTotal := newLinExpr()
	for _, k := range []MacroKey{MacroCarbs, MacroProtein, MacroFat} {
		mult := macroRatioCalMultiplier(k)
		e := m.total(string(k)).scaled(mult).addConst(pinned[k] * mult * ScaleMacro)
		dayCal[k] = e
		dayTotal = dayTotal.plus(e)
	}

	calDenom := float64(targets.MealCaloriesKcal)*ScaleMacro + r.PinnedCalories

	for _, k := range []MacroKey{MacroCarbs, MacroProtein, MacroFat} {
		if m.activeMacros[k] {
			continue // any active constraint excludes from ratio (spec.md §9, Open Question 2)
		}
		targetPct := float64(pcts[k])
		absDiffExpr := dayCal[k].scaled(100).plus(dayTotal.scaled(-targetPct))

		absIdx := m.newVar(0, ratioAbsBound(calDenom), true)
		// absIdx >= absDiffExpr
		m.addConstraint(singleVar(absIdx, 1).plus(absDiffExpr.scaled(-1)), opGE, 0)
		// absIdx >= -absDiffExpr
		m.addConstraint(singleVar(absIdx, 1).plus(absDiffExpr), opGE, 0)

		pctDevIdx := m.newVar(0, PctScale, true)
		// pctDev*calDenom >= absIdx*PctScale
		m.addConstraint(singleVar(pctDevIdx, calDenom).addTerm(absIdx, -PctScale), opGE, 0)

		m.ratioWitnesses = append(m.ratioWitnesses, singleVar(pctDevIdx, 1))
	}

	return m.ratioWitnessOnly()
}

// ratioAbsBound is a generous implementation bound for the raw
// abs-value auxiliary variable; it does not participate in the
// lex-weight chain (only the normalized pct_dev witness does), so it
// need not be tight — just large enough that the true optimum is never
// clipped.
func ratioAbsBound(calDenom float64) float64 {
	b := calDenom * 2
	if b < 1 {
		b = 1e9
	}
	return b
}

// ratioWitnessOnly folds every collected pct witness (ratio deviations
// plus loose-MacroConstraint deviations) into one shared minimax
// witness, or returns nil if none were collected.
func (m *model) ratioWitnessOnly() *linExpr {
	if len(m.ratioWitnesses) == 0 {
		return nil
	}
	worstIdx := m.newVar(0, PctScale, true)
	for _, w := range m.ratioWitnesses {
		m.addConstraint(singleVar(worstIdx, 1).plus(w.scaled(-1)), opGE, 0)
	}
	w := singleVar(worstIdx, 1)
	return &w
}

// buildDiversity emits the max_gram minimax witness for
// INGREDIENT_DIVERSITY (spec.md §9, Open Question 1: target is total
// grams of the single largest serving, not calorie mass).
func (m *model) buildDiversity(inputs []IngredientInput) linExpr {
	maxOfMaxG := 0.0
	for _, in := range inputs {
		if float64(in.MaxG) > maxOfMaxG {
			maxOfMaxG = float64(in.MaxG)
		}
	}
	maxGramIdx := m.newVar(0, maxOfMaxG, true)
	for _, idx := range m.xIdx {
		m.addConstraint(singleVar(maxGramIdx, 1).addTerm(idx, -1), opGE, 0)
	}
	return singleVar(maxGramIdx, 1)
}
