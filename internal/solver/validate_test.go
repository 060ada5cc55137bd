package solver

import "testing"

func TestValidateRequestBounds(t *testing.T) {
	req := Request{
		Ingredients: []IngredientInput{
			{Ingredient: Ingredient{ID: 1}, MinG: 10, MaxG: 5},
		},
		Targets: Targets{MealCaloriesKcal: 500, CalTolerance: 10},
	}
	if err := validateRequest(req); err != ErrInvalidBounds {
		t.Errorf("expected ErrInvalidBounds, got %v", err)
	}
}

func TestValidateRequestNegativeMinG(t *testing.T) {
	req := Request{
		Ingredients: []IngredientInput{
			{Ingredient: Ingredient{ID: 1}, MinG: -1, MaxG: 5},
		},
	}
	if err := validateRequest(req); err != ErrInvalidBounds {
		t.Errorf("expected ErrInvalidBounds, got %v", err)
	}
}

func TestValidateRequestNegativeTolerance(t *testing.T) {
	req := Request{
		Ingredients: []IngredientInput{
			{Ingredient: Ingredient{ID: 1}, MinG: 0, MaxG: 100},
		},
		Targets: Targets{MealCaloriesKcal: 500, CalTolerance: -1},
	}
	if err := validateRequest(req); err != ErrInvalidTolerance {
		t.Errorf("expected ErrInvalidTolerance, got %v", err)
	}
}

func TestValidateRequestBadRatioSum(t *testing.T) {
	req := Request{
		Ingredients: []IngredientInput{
			{Ingredient: Ingredient{ID: 1}, MinG: 0, MaxG: 100},
		},
		Targets:    Targets{MealCaloriesKcal: 500, CalTolerance: 0},
		MacroRatio: &MacroRatio{CarbPct: 50, ProteinPct: 30, FatPct: 30},
	}
	if err := validateRequest(req); err != ErrInvalidRatioSum {
		t.Errorf("expected ErrInvalidRatioSum, got %v", err)
	}
}

func TestValidateRequestValid(t *testing.T) {
	req := Request{
		Ingredients: []IngredientInput{
			{Ingredient: Ingredient{ID: 1}, MinG: 0, MaxG: 100},
		},
		Targets:    Targets{MealCaloriesKcal: 500, CalTolerance: 10},
		MacroRatio: &MacroRatio{CarbPct: 50, ProteinPct: 30, FatPct: 20},
	}
	if err := validateRequest(req); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestNormalizePrioritiesDropsUnknownAndDuplicates(t *testing.T) {
	in := []Priority{"BOGUS", PriorityMicros, PriorityMicros, PriorityTotalWeight}
	got := NormalizePriorities(in)
	want := []Priority{PriorityMicros, PriorityTotalWeight}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestNormalizePrioritiesAllUnknownFallsBackToTotalWeight(t *testing.T) {
	got := NormalizePriorities([]Priority{"NOPE", "ALSO_NOPE"})
	if len(got) != 1 || got[0] != PriorityTotalWeight {
		t.Fatalf("expected fallback to [TOTAL_WEIGHT], got %v", got)
	}
}
