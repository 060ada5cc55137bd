package solver

import "testing"

// baselineIngredients is the 9 whole-food baseline meal spec.md §8's
// concrete end-to-end scenarios are built against: white rice,
// broccoli, carrots, zucchini, avocado oil, black beans, yellow split
// peas, 80/20 ground beef, and chicken thigh, each with the gram bounds
// spec.md gives.
func baselineIngredients() []IngredientInput {
	return []IngredientInput{
		{
			Ingredient: Ingredient{
				ID: 101, Label: "white rice", Category: "grain",
				Per100g: MacroVector{CaloriesKcal: 130, ProteinG: 2.7, FatG: 0.3, CarbsG: 28, FiberG: 0.4},
				Micros100g: map[string]float64{
					"iron_mg": 0.2, "magnesium_mg": 12, "potassium_mg": 35,
					"zinc_mg": 0.5, "manganese_mg": 0.5, "selenium_mcg": 7.5,
					"thiamin_mg": 0.02, "niacin_mg": 0.4, "folate_mcg": 3,
				},
			},
			MinG: 0, MaxG: 400,
		},
		{
			Ingredient: Ingredient{
				ID: 102, Label: "broccoli", Category: "vegetable",
				Per100g: MacroVector{CaloriesKcal: 35, ProteinG: 2.4, FatG: 0.4, CarbsG: 7, FiberG: 3.3},
				Micros100g: map[string]float64{
					"vitamin_c_mg": 65, "calcium_mg": 40, "iron_mg": 0.7,
					"magnesium_mg": 21, "potassium_mg": 293, "folate_mcg": 63,
					"vitamin_k_mcg": 102, "manganese_mg": 0.2,
				},
			},
			MinG: 200, MaxG: 400,
		},
		{
			Ingredient: Ingredient{
				ID: 103, Label: "carrots", Category: "vegetable",
				Per100g: MacroVector{CaloriesKcal: 35, ProteinG: 0.8, FatG: 0.2, CarbsG: 8, FiberG: 3},
				Micros100g: map[string]float64{
					"vitamin_a_mcg": 852, "vitamin_c_mg": 3, "potassium_mg": 235, "calcium_mg": 30,
				},
			},
			MinG: 150, MaxG: 300,
		},
		{
			Ingredient: Ingredient{
				ID: 104, Label: "zucchini", Category: "vegetable",
				Per100g: MacroVector{CaloriesKcal: 17, ProteinG: 1.2, FatG: 0.3, CarbsG: 3.1, FiberG: 1},
				Micros100g: map[string]float64{
					"vitamin_c_mg": 9, "potassium_mg": 261, "magnesium_mg": 18,
					"folate_mcg": 19, "vitamin_a_mcg": 10,
				},
			},
			MinG: 250, MaxG: 500,
		},
		{
			Ingredient: Ingredient{
				ID: 105, Label: "avocado oil", Category: "fat",
				Per100g: MacroVector{CaloriesKcal: 884, ProteinG: 0, FatG: 100, CarbsG: 0, FiberG: 0},
				Micros100g: map[string]float64{"vitamin_e_mg": 7},
			},
			MinG: 0, MaxG: 100,
		},
		{
			Ingredient: Ingredient{
				ID: 106, Label: "black beans", Category: "legume",
				Per100g: MacroVector{CaloriesKcal: 132, ProteinG: 8.9, FatG: 0.5, CarbsG: 24, FiberG: 8.7},
				Micros100g: map[string]float64{
					"iron_mg": 2.1, "magnesium_mg": 70, "potassium_mg": 355,
					"folate_mcg": 149, "zinc_mg": 1.1, "calcium_mg": 27,
				},
			},
			MinG: 150, MaxG: 400,
		},
		{
			Ingredient: Ingredient{
				ID: 107, Label: "yellow split peas", Category: "legume",
				Per100g: MacroVector{CaloriesKcal: 118, ProteinG: 8.3, FatG: 0.4, CarbsG: 21, FiberG: 8.3},
				Micros100g: map[string]float64{
					"iron_mg": 1.5, "magnesium_mg": 33, "potassium_mg": 296,
					"folate_mcg": 65, "zinc_mg": 1.0,
				},
			},
			MinG: 60, MaxG: 150,
		},
		{
			Ingredient: Ingredient{
				ID: 108, Label: "80/20 ground beef", Category: "protein",
				Per100g: MacroVector{CaloriesKcal: 254, ProteinG: 26, FatG: 17, CarbsG: 0, FiberG: 0},
				Micros100g: map[string]float64{
					"iron_mg": 2.3, "zinc_mg": 5.3, "vitamin_b12_mcg": 2.4,
					"selenium_mcg": 18, "niacin_mg": 4.4, "phosphorus_mg": 178, "potassium_mg": 270,
				},
			},
			MinG: 0, MaxG: 1000,
		},
		{
			Ingredient: Ingredient{
				ID: 109, Label: "chicken thigh", Category: "protein",
				Per100g: MacroVector{CaloriesKcal: 209, ProteinG: 26, FatG: 10.9, CarbsG: 0, FiberG: 0},
				Micros100g: map[string]float64{
					"iron_mg": 1.3, "zinc_mg": 2.2, "selenium_mcg": 20, "niacin_mg": 6.7,
					"vitamin_b6_mg": 0.33, "phosphorus_mg": 196, "potassium_mg": 240,
				},
			},
			MinG: 0, MaxG: 1000,
		},
	}
}

// defaultTargets is spec.md §8's baseline calorie band.
func defaultTargets() Targets {
	return Targets{MealCaloriesKcal: 2780, CalTolerance: 50}
}

func totalGrams(sol Solution) int {
	total := 0
	for _, ing := range sol.Ingredients {
		total += ing.Grams
	}
	return total
}

// Scenario 1: default Targets alone.
func TestBaselineScenarioDefaultTargets(t *testing.T) {
	sol, err := Solve(Request{
		Ingredients: baselineIngredients(),
		Targets:     defaultTargets(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sol.Status != StatusOptimal && sol.Status != StatusFeasible {
		t.Fatalf("expected a feasible solve, got status %v", sol.Status)
	}
	if diff := sol.MealMacros.CaloriesKcal - 2780; diff > 51 || diff < -51 {
		t.Fatalf("|realized-target| > 51: realized %v", sol.MealMacros.CaloriesKcal)
	}
}

// Scenario 2: a hard protein floor.
func TestBaselineScenarioHardProteinFloor(t *testing.T) {
	sol, err := Solve(Request{
		Ingredients: baselineIngredients(),
		Targets:     defaultTargets(),
		Constraints: []MacroConstraint{
			{Nutrient: MacroProtein, Mode: ModeGTE, Grams: 130, Hard: true},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sol.Status != StatusOptimal && sol.Status != StatusFeasible {
		t.Fatalf("expected a feasible solve, got status %v", sol.Status)
	}
	if sol.MealMacros.ProteinG < 129 {
		t.Fatalf("expected realized protein >= 129g, got %v", sol.MealMacros.ProteinG)
	}
}

// Scenario 3: four micro targets with no UL - minimax must not starve
// any one of them relative to the other three.
func TestBaselineScenarioMicroTargetsNoneStarved(t *testing.T) {
	sol, err := Solve(Request{
		Ingredients:  baselineIngredients(),
		Targets:      defaultTargets(),
		MicroTargets: map[string]float64{"iron_mg": 10.0, "calcium_mg": 800, "magnesium_mg": 500, "vitamin_c_mg": 200},
		Priorities:   []Priority{PriorityMicros, PriorityTotalWeight},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sol.Status != StatusOptimal && sol.Status != StatusFeasible {
		t.Fatalf("expected a feasible solve, got status %v", sol.Status)
	}
	targets := map[string]float64{"iron_mg": 10.0, "calcium_mg": 800, "magnesium_mg": 500, "vitamin_c_mg": 200}
	for key, target := range targets {
		if got := sol.MealMicros[key]; got < 0.05*target {
			t.Fatalf("%s realized %v is below 5%% of its target %v; a nutrient was starved", key, got, target)
		}
	}
}

// Scenario 4: re-solving with a UL derived from the unconstrained
// iron result must strictly reduce realized iron and keep it under
// the new cap.
func TestBaselineScenarioULForcesLowerRealizedIron(t *testing.T) {
	micros := map[string]float64{"iron_mg": 10.0, "calcium_mg": 800, "magnesium_mg": 500, "vitamin_c_mg": 200}

	first, err := Solve(Request{
		Ingredients:  baselineIngredients(),
		Targets:      defaultTargets(),
		MicroTargets: micros,
		Priorities:   []Priority{PriorityMicros, PriorityTotalWeight},
	})
	if err != nil {
		t.Fatalf("unexpected error on first solve: %v", err)
	}
	iron1 := first.MealMicros["iron_mg"]
	if iron1 <= 0 {
		t.Fatalf("expected a positive realized iron on the first solve, got %v", iron1)
	}

	second, err := Solve(Request{
		Ingredients:  baselineIngredients(),
		Targets:      defaultTargets(),
		MicroTargets: micros,
		MicroULs:     map[string]float64{"iron_mg": 0.85 * iron1},
		Priorities:   []Priority{PriorityMicros, PriorityTotalWeight},
	})
	if err != nil {
		t.Fatalf("unexpected error on second solve: %v", err)
	}
	iron2 := second.MealMicros["iron_mg"]
	if iron2 > 0.85*iron1+0.1 {
		t.Fatalf("realized iron %v exceeds the 0.85*I1 UL (%v) plus slack", iron2, 0.85*iron1)
	}
	if iron2 >= iron1 {
		t.Fatalf("expected the UL re-solve to strictly reduce realized iron: I1=%v, I2=%v", iron1, iron2)
	}
}

// Scenario 5: priority-list order is not cosmetic. Ranking MICROS
// above TOTAL_WEIGHT must not lose aggregate grams relative to the
// reverse order, since TOTAL_WEIGHT only wins ties MICROS leaves open.
func TestBaselineScenarioPriorityOrderMonotonicity(t *testing.T) {
	micros := map[string]float64{"iron_mg": 10.0, "calcium_mg": 800, "magnesium_mg": 500, "vitamin_c_mg": 200}

	microsFirst, err := Solve(Request{
		Ingredients:  baselineIngredients(),
		Targets:      defaultTargets(),
		MicroTargets: micros,
		Priorities:   []Priority{PriorityMicros, PriorityTotalWeight},
	})
	if err != nil {
		t.Fatalf("unexpected error (MICROS first): %v", err)
	}

	weightFirst, err := Solve(Request{
		Ingredients:  baselineIngredients(),
		Targets:      defaultTargets(),
		MicroTargets: micros,
		Priorities:   []Priority{PriorityTotalWeight, PriorityMicros},
	})
	if err != nil {
		t.Fatalf("unexpected error (TOTAL_WEIGHT first): %v", err)
	}

	if totalGrams(microsFirst) < totalGrams(weightFirst) {
		t.Fatalf("expected MICROS-first total grams (%d) >= TOTAL_WEIGHT-first total grams (%d)",
			totalGrams(microsFirst), totalGrams(weightFirst))
	}
}

// Scenario 6: a higher target fat share must realize strictly more
// fat than a lower one, when MACRO_RATIO outranks TOTAL_WEIGHT.
func TestBaselineScenarioMacroRatioMonotonicity(t *testing.T) {
	highFat, err := Solve(Request{
		Ingredients: baselineIngredients(),
		Targets:     defaultTargets(),
		MacroRatio:  &MacroRatio{CarbPct: 30, ProteinPct: 20, FatPct: 50},
		Priorities:  []Priority{PriorityMacroRatio, PriorityTotalWeight},
	})
	if err != nil {
		t.Fatalf("unexpected error (high-fat ratio): %v", err)
	}

	lowFat, err := Solve(Request{
		Ingredients: baselineIngredients(),
		Targets:     defaultTargets(),
		MacroRatio:  &MacroRatio{CarbPct: 60, ProteinPct: 25, FatPct: 15},
		Priorities:  []Priority{PriorityMacroRatio, PriorityTotalWeight},
	})
	if err != nil {
		t.Fatalf("unexpected error (low-fat ratio): %v", err)
	}

	if highFat.MealMacros.FatG <= lowFat.MealMacros.FatG {
		t.Fatalf("expected realized fat under the high-fat ratio (%v) to strictly exceed the low-fat ratio (%v)",
			highFat.MealMacros.FatG, lowFat.MealMacros.FatG)
	}
}

// Scenario 7: all 20 canonical micro targets, a macro ratio, a soft
// macro constraint, and all four priority tiers together must still
// pass the overflow pre-flight and return a feasible solution.
func TestBaselineScenarioFullStackStaysUnderOverflowBound(t *testing.T) {
	allMicros := map[string]float64{
		"calcium_mg": 1000, "iron_mg": 8, "magnesium_mg": 400, "phosphorus_mg": 700,
		"potassium_mg": 3400, "zinc_mg": 11, "copper_mg": 0.9, "manganese_mg": 2.3,
		"selenium_mcg": 55, "vitamin_c_mg": 90, "thiamin_mg": 1.2, "riboflavin_mg": 1.3,
		"niacin_mg": 16, "vitamin_b6_mg": 1.3, "folate_mcg": 400, "vitamin_b12_mcg": 2.4,
		"vitamin_a_mcg": 900, "vitamin_d_mcg": 15, "vitamin_e_mg": 15, "vitamin_k_mcg": 120,
	}

	sol, err := Solve(Request{
		Ingredients:  baselineIngredients(),
		Targets:      defaultTargets(),
		MicroTargets: allMicros,
		MacroRatio:   &MacroRatio{CarbPct: 40, ProteinPct: 30, FatPct: 30},
		Constraints: []MacroConstraint{
			{Nutrient: MacroFiber, Mode: ModeGTE, Grams: 25, Hard: false},
		},
		Priorities: []Priority{
			PriorityMicros, PriorityMacroRatio, PriorityIngredientDiversity, PriorityTotalWeight,
		},
	})
	if err != nil {
		t.Fatalf("expected the overflow pre-flight to pass and the solve to succeed, got error: %v", err)
	}
	if sol.Status != StatusOptimal && sol.Status != StatusFeasible {
		t.Fatalf("expected a feasible solve with the full priority/constraint stack, got status %v", sol.Status)
	}
}
