// Package ingredient joins the stored nutrition catalog (USDA nutrient
// IDs, as persisted on a domain.FoodItem) to the solver's Ingredient
// shape, mirroring the USDA-ID lookup original_source/ builds once at
// load time rather than per request.
package ingredient

import (
	"nutrient-solver/internal/catalog/dri"
	"nutrient-solver/internal/domain"
	"nutrient-solver/internal/solver"
)

// macroUSDAIDs lists, per tracked macro, the USDA nutrient IDs to try
// in preference order — Atwater General energy (2047) before raw
// Energy (1008) when both are present on a food record.
var macroUSDAIDs = map[string][]int{
	"calories_kcal": {2047, 1008},
	"protein_g":     {1003},
	"fat_g":         {1004},
	"carbs_g":       {1005},
	"fiber_g":       {1079},
}

// usdaIDToMicro is the reverse of dri.Registry's usda_id field, built
// once at package init.
var usdaIDToMicro = func() map[int]string {
	out := make(map[int]string, len(dri.Registry))
	for key, info := range dri.Registry {
		out[info.USDAID] = key
	}
	return out
}()

func extractMacro(nutrients map[int]float64, ids []int) float64 {
	for _, id := range ids {
		if v, ok := nutrients[id]; ok {
			return v
		}
	}
	return 0
}

func extractMicros(nutrients map[int]float64) map[string]float64 {
	micros := make(map[string]float64)
	for id, amount := range nutrients {
		if key, ok := usdaIDToMicro[id]; ok {
			micros[key] = amount
		}
	}
	return micros
}

// FromUSDANutrients builds a solver.Ingredient from a catalog entry's
// raw USDA-nutrient-ID map, the representation the read-only Ingredient
// store persists per food.
func FromUSDANutrients(id int64, label, category string, nutrients map[int]float64) solver.Ingredient {
	return solver.Ingredient{
		ID:       id,
		Label:    label,
		Category: category,
		Per100g: solver.MacroVector{
			CaloriesKcal: extractMacro(nutrients, macroUSDAIDs["calories_kcal"]),
			ProteinG:     extractMacro(nutrients, macroUSDAIDs["protein_g"]),
			FatG:         extractMacro(nutrients, macroUSDAIDs["fat_g"]),
			CarbsG:       extractMacro(nutrients, macroUSDAIDs["carbs_g"]),
			FiberG:       extractMacro(nutrients, macroUSDAIDs["fiber_g"]),
		},
		Micros100g: extractMicros(nutrients),
	}
}

// FromFoodItem adapts a domain.FoodItem — the mongo-backed catalog
// record a caller already looked up by ID — into a solver.Ingredient.
// FoodItem stores macros/micros directly rather than as a raw USDA-ID
// map, so this is a straight field copy rather than an ID lookup.
func FromFoodItem(id int64, food *domain.FoodItem) solver.Ingredient {
	micros := make(map[string]float64, len(food.Micros))
	for key, density := range food.Micros {
		if _, known := dri.Registry[key]; known {
			micros[key] = density
		}
	}

	return solver.Ingredient{
		ID:       id,
		Label:    food.Name["en"],
		Category: food.Category,
		Per100g: solver.MacroVector{
			CaloriesKcal: food.Calories,
			ProteinG:     food.Macros.Protein,
			FatG:         food.Macros.Fat,
			CarbsG:       food.Macros.Carbohydrates,
			FiberG:       food.Macros.Fiber,
		},
		Micros100g: micros,
	}
}
