package solver

import "math/big"

// objectiveTerm is one tier of the lexicographic chain: a linear
// expression e_k bounded above by M_k.
type objectiveTerm struct {
	expr  linExpr
	bound float64
}

// composeObjective builds the ordered list of objective sub-terms for
// the user's priority list, per spec.md §4.3's composition rules.
func (m *model) composeObjective(req *Request, worstUlProx, worstPct *linExpr, sumPct linExpr, microCount int, ratioWitness *linExpr) []objectiveTerm {
	var terms []objectiveTerm

	prios := req.Priorities
	if prios == nil {
		prios = DefaultPriorities
	}
	for _, p := range NormalizePriorities(prios) {
		switch p {
		case PriorityMicros:
			if worstUlProx != nil {
				terms = append(terms, objectiveTerm{expr: *worstUlProx, bound: 100})
			}
			strategy := req.Strategy
			if strategy == "" {
				strategy = StrategyDepth
			}
			worstTerm := func() {
				if worstPct != nil {
					terms = append(terms, objectiveTerm{expr: *worstPct, bound: MicroPct})
				}
			}
			sumTerm := func() {
				if microCount > 0 {
					terms = append(terms, objectiveTerm{expr: sumPct, bound: float64(microCount) * MicroPct})
				}
			}
			if strategy == StrategyBreadth {
				sumTerm()
				worstTerm()
			} else {
				worstTerm()
				sumTerm()
			}
		case PriorityMacroRatio:
			if ratioWitness != nil {
				terms = append(terms, objectiveTerm{expr: *ratioWitness, bound: PctScale})
			}
		case PriorityIngredientDiversity:
			diversity := m.buildDiversity(req.Ingredients)
			maxOfMaxG := 0.0
			for _, in := range req.Ingredients {
				if float64(in.MaxG) > maxOfMaxG {
					maxOfMaxG = float64(in.MaxG)
				}
			}
			terms = append(terms, objectiveTerm{expr: diversity, bound: maxOfMaxG})
		case PriorityTotalWeight:
			terms = append(terms, objectiveTerm{expr: m.totalGramsExpr, bound: m.totalGramsBound})
		}
	}

	return terms
}

// lexWeights computes the weight chain w_{K-1}=1, w_k = M_{k+1}*w_{k+1}
// + 1 over the terms in priority order, and asserts the resulting
// weighted sum stays strictly below 2^(OverflowBoundLog2). It uses
// math/big to detect overflow precisely rather than relying on
// wrap-around in a fixed-width integer, matching the "hard invariant"
// spec.md §4.3 demands: silent wrap-around must never happen.
func lexWeights(terms []objectiveTerm, boundLog2 int) ([]float64, error) {
	K := len(terms)
	if K == 0 {
		return nil, nil
	}
	if boundLog2 <= 0 {
		boundLog2 = OverflowBoundLog2
	}

	bound := new(big.Int).Lsh(big.NewInt(1), uint(boundLog2))

	weights := make([]*big.Int, K)
	weights[K-1] = big.NewInt(1)
	for k := K - 2; k >= 0; k-- {
		mNext := big.NewInt(int64(terms[k+1].bound))
		w := new(big.Int).Mul(mNext, weights[k+1])
		w.Add(w, big.NewInt(1))
		weights[k] = w
	}

	total := big.NewInt(0)
	for k := 0; k < K; k++ {
		mk := big.NewInt(int64(terms[k].bound))
		total.Add(total, new(big.Int).Mul(mk, weights[k]))
	}
	if total.Cmp(bound) >= 0 {
		return nil, ErrWeightOverflow
	}

	out := make([]float64, K)
	for k, w := range weights {
		wf, _ := new(big.Float).SetInt(w).Float64()
		out[k] = wf
	}
	return out, nil
}
