// Package solver computes an integer-valued serving plan for a single
// meal drawn from a user-selected set of whole-food ingredients.
package solver

// Fixed-point scales. S_MACRO covers calories and the four tracked
// macronutrients; S_MICRO covers the 20 canonical micronutrient keys,
// which need sub-milligram precision.
const (
	ScaleMacro = 100
	ScaleMicro = 10_000

	// PctScale is the basis-point scale (0.01%) soft macro constraints
	// are normalized to before entering the lex-weight chain.
	PctScale = 10_000

	// MicroPct is the coarser 1% scale the micros tier uses, deliberately
	// coarser than PctScale so the full 20-key chain stays inside int64.
	MicroPct = 100

	// DefaultTimeoutSeconds is the solver driver's wall-clock budget
	// when the caller does not specify one.
	DefaultTimeoutSeconds = 5

	// OverflowBoundLog2 bounds the lex-weight chain; 2^62 leaves one
	// bit of headroom under int64's sign bit for chain arithmetic.
	OverflowBoundLog2 = 62
)

// MacroKey identifies one of the four tracked macronutrients.
type MacroKey string

const (
	MacroProtein MacroKey = "protein"
	MacroFat     MacroKey = "fat"
	MacroCarbs   MacroKey = "carbs"
	MacroFiber   MacroKey = "fiber"
)

// MacroVector holds per-100g macro densities (or realized gram totals,
// depending on context) for the four tracked macros plus calories.
type MacroVector struct {
	CaloriesKcal float64
	ProteinG     float64
	FatG         float64
	CarbsG       float64
	FiberG       float64
}

// Ingredient is a candidate food: immutable input to the solver.
type Ingredient struct {
	ID       int64
	Label    string
	Category string
	// Per100g is the macro vector per 100 grams of this ingredient.
	Per100g MacroVector
	// Micros100g maps canonical micronutrient key to per-100g amount
	// in the nutrient's canonical unit.
	Micros100g map[string]float64
}

// IngredientInput pairs an Ingredient with the integer gram bounds that
// form the solver's decision-variable domain. Invariant: 0 <= MinG <= MaxG.
type IngredientInput struct {
	Ingredient Ingredient
	MinG       int
	MaxG       int
}

// Targets is the calorie band for the meal. Invariant: CalTolerance >= 0.
type Targets struct {
	MealCaloriesKcal int
	CalTolerance     int
}

// MacroMode is the enforcement mode of a MacroConstraint.
type MacroMode string

const (
	ModeGTE  MacroMode = "gte"
	ModeLTE  MacroMode = "lte"
	ModeEQ   MacroMode = "eq"
	ModeNone MacroMode = "none"
)

// MacroConstraint binds one tracked macro to a gram target, either as
// a hard feasibility-region constraint or a soft objective term.
type MacroConstraint struct {
	Nutrient MacroKey
	Mode     MacroMode
	Grams    int
	Hard     bool
}

// MacroRatio is a target calorie-split across carb/protein/fat, plus
// grams of each macro already committed outside this meal.
type MacroRatio struct {
	CarbPct    int
	ProteinPct int
	FatPct     int

	PinnedCarbG    float64
	PinnedProteinG float64
	PinnedFatG     float64
	// PinnedCalories is additional calorie intake from outside the
	// meal, used as a constant in the ratio's denominator.
	PinnedCalories float64
}

// MicroStrategy selects how the micros tier composes its worst-case
// and average-coverage sub-terms.
type MicroStrategy string

const (
	StrategyDepth   MicroStrategy = "depth"
	StrategyBreadth MicroStrategy = "breadth"
)

// Priority is one tier of the user-ordered soft-goal hierarchy.
type Priority string

const (
	PriorityMicros             Priority = "MICROS"
	PriorityMacroRatio         Priority = "MACRO_RATIO"
	PriorityIngredientDiversity Priority = "INGREDIENT_DIVERSITY"
	PriorityTotalWeight        Priority = "TOTAL_WEIGHT"
)

var knownPriorities = map[Priority]bool{
	PriorityMicros:              true,
	PriorityMacroRatio:          true,
	PriorityIngredientDiversity: true,
	PriorityTotalWeight:         true,
}

// DefaultPriorities is used when the caller supplies no priority list
// at all (nil). An empty or entirely unknown list is normalized to
// TOTAL_WEIGHT alone instead, see NormalizePriorities.
var DefaultPriorities = []Priority{
	PriorityMicros, PriorityMacroRatio, PriorityIngredientDiversity, PriorityTotalWeight,
}

// NormalizePriorities drops unknown entries and duplicates (keeping
// first occurrence order), falling back to TOTAL_WEIGHT alone when
// nothing valid remains.
func NormalizePriorities(in []Priority) []Priority {
	seen := make(map[Priority]bool, len(in))
	out := make([]Priority, 0, len(in))
	for _, p := range in {
		if !knownPriorities[p] || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	if len(out) == 0 {
		return []Priority{PriorityTotalWeight}
	}
	return out
}

// Request is the solver's single entry point input.
type Request struct {
	Ingredients  []IngredientInput
	Targets      Targets
	MicroTargets map[string]float64
	MicroULs     map[string]float64
	MacroRatio   *MacroRatio
	Constraints  []MacroConstraint
	Priorities   []Priority
	Strategy     MicroStrategy
	TimeoutSecs  int
	// OverflowBoundLog2 overrides the package's OverflowBoundLog2 default
	// for this solve when positive, letting a caller (or a test) exercise
	// the pre-flight guard at a smaller bound without recompiling.
	OverflowBoundLog2 int
}

// Status is the terminal state of a Solution.
type Status string

const (
	StatusOptimal    Status = "optimal"
	StatusFeasible   Status = "feasible"
	StatusInfeasible Status = "infeasible"
)

// IngredientResult is one ingredient's realized serving.
type IngredientResult struct {
	IngredientID int64
	Grams        int
	Macros       MacroVector
}

// Solution is the solver's output value.
type Solution struct {
	Status          Status
	Ingredients     []IngredientResult
	MealMacros      MacroVector
	MealMicros      map[string]float64
	ObjectiveValue  float64
}
