package solver

import "testing"

func TestRoundScale(t *testing.T) {
	tests := []struct {
		name    string
		density float64
		scale   int
		want    int64
	}{
		{"zero density", 0, ScaleMacro, 0},
		{"macro scale rounds to nearest integer", 4.0, ScaleMacro, 4},
		{"macro scale rounds half away from zero", 4.5, ScaleMacro, 5},
		{"micro scale carries two extra digits", 1.23, ScaleMicro, 123},
		{"negative density rounds away from zero", -2.5, ScaleMacro, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundScale(tt.density, tt.scale)
			if got != tt.want {
				t.Errorf("roundScale(%v, %d) = %d, want %d", tt.density, tt.scale, got, tt.want)
			}
		})
	}
}

func TestBuildCoefficients(t *testing.T) {
	ing := Ingredient{
		ID:    1,
		Label: "white rice",
		Per100g: MacroVector{
			CaloriesKcal: 130,
			ProteinG:     2.7,
			FatG:         0.3,
			CarbsG:       28.2,
			FiberG:       0.4,
		},
		Micros100g: map[string]float64{
			"iron_mg":      0.2,
			"magnesium_mg": 12,
		},
	}

	cl := buildCoefficients(ing)

	if cl.cal != 130 {
		t.Errorf("cal coefficient = %d, want 130", cl.cal)
	}
	if cl.macro[MacroProtein] != 3 {
		t.Errorf("protein coefficient = %d, want 3", cl.macro[MacroProtein])
	}
	if cl.macro[MacroCarbs] != 28 {
		t.Errorf("carbs coefficient = %d, want 28", cl.macro[MacroCarbs])
	}
	if got := cl.micro["iron_mg"]; got != 20 {
		t.Errorf("iron coefficient = %d, want 20", got)
	}
	if got := cl.micro["magnesium_mg"]; got != 1200 {
		t.Errorf("magnesium coefficient = %d, want 1200", got)
	}
	if len(cl.micro) != 2 {
		t.Errorf("expected 2 micro coefficients, got %d", len(cl.micro))
	}
}

func TestLinExprAlgebra(t *testing.T) {
	e := singleVar(0, 2).addTerm(1, 3).addConst(5)
	if e.coef[0] != 2 || e.coef[1] != 3 || e.constant != 5 {
		t.Fatalf("unexpected expr: %+v", e)
	}

	scaled := e.scaled(2)
	if scaled.coef[0] != 4 || scaled.coef[1] != 6 || scaled.constant != 10 {
		t.Fatalf("unexpected scaled expr: %+v", scaled)
	}

	sum := e.plus(scaled)
	if sum.coef[0] != 6 || sum.coef[1] != 9 || sum.constant != 15 {
		t.Fatalf("unexpected summed expr: %+v", sum)
	}

	// addTerm with a zero coefficient is a no-op, not a stored zero entry.
	untouched := newLinExpr().addTerm(7, 0)
	if _, ok := untouched.coef[7]; ok {
		t.Fatalf("expected addTerm(idx, 0) to skip storing a zero coefficient")
	}
}
