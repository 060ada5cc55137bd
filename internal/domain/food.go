package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"nutrient-solver/internal/dto/request"
)

// MacroNutrients represents macronutrient values
type MacroNutrients struct {
	Protein       float64 `bson:"protein" json:"protein"` // grams per 100g
	Carbohydrates float64 `bson:"carbohydrates" json:"carbohydrates"`
	Fat           float64 `bson:"fat" json:"fat"`
	Fiber         float64 `bson:"fiber" json:"fiber"`
	Sugar         float64 `bson:"sugar,omitempty" json:"sugar,omitempty"`
}

// MicroNutrients holds per-100g micronutrient densities keyed by the
// canonical keys in internal/catalog/dri.Registry (e.g. "calcium_mg",
// "vitamin_c_mg"). A key absent here is simply absent from the
// ingredient's density, not zero by assertion — see solver.Ingredient.
type MicroNutrients map[string]float64

// ServingSize represents a serving size for a food item
type ServingSize struct {
	Unit           string  `bson:"unit" json:"unit"`                                   // "gram", "kg", "box", "cup", "ml", "piece"
	Amount         float64 `bson:"amount" json:"amount"`                               // e.g., 100, 1, 250
	Description    string  `bson:"description,omitempty" json:"description,omitempty"` // "1 medium banana"
	GramEquivalent float64 `bson:"gramEquivalent" json:"gramEquivalent"`               // Convert to grams
}

// FoodItem is a catalog entry: one food, its macro/micro densities per
// 100g, and its known serving sizes. It is the stored counterpart of
// the solver's Ingredient value — internal/catalog/ingredient.FromFoodItem
// joins the two at the boundary spec.md §6 describes.
type FoodItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         map[string]string  `bson:"name" json:"name"` // Multi-language support
	SearchTerms  []string           `bson:"searchTerms" json:"searchTerms"`
	Description  map[string]string  `bson:"description,omitempty" json:"description,omitempty"`
	Category     string             `bson:"category" json:"category"` // "protein", "vegetable", "fruit", "dairy", "grain"
	Macros       MacroNutrients     `bson:"macros" json:"macros"`
	Micros       MicroNutrients     `bson:"micros" json:"micros"`
	ServingSizes []ServingSize      `bson:"servingSizes" json:"servingSizes"`
	Calories     float64            `bson:"calories" json:"calories"` // Base calories per 100g
	Source       string             `bson:"source" json:"source"`     // "curated" or "imported"
	ImageURL     string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func micronutrientsFromRequest(in request.MicroNutrientsRequest) MicroNutrients {
	if in == nil {
		return nil
	}
	out := make(MicroNutrients, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// FoodItemFromRequest builds a catalog entry from an inbound create
// request. There is no per-user ownership in this catalog — food
// items are a shared reference table the solver's catalog layer reads
// from, not per-account data (see spec.md §1's scope boundary).
func FoodItemFromRequest(req *request.CreateFoodRequest) *FoodItem {
	servingSizes := make([]ServingSize, len(req.ServingSizes))
	for i, servingSize := range req.ServingSizes {
		servingSizes[i] = ServingSize{
			Unit:           servingSize.Unit,
			Amount:         servingSize.Amount,
			Description:    servingSize.Description,
			GramEquivalent: servingSize.GramEquivalent,
		}
	}

	return &FoodItem{
		Name:        req.Name,
		SearchTerms: req.SearchTerms,
		Description: req.Description,
		Category:    req.Category,
		Macros: MacroNutrients{
			Protein:       req.Macros.Protein,
			Carbohydrates: req.Macros.Carbohydrates,
			Fat:           req.Macros.Fat,
			Fiber:         req.Macros.Fiber,
			Sugar:         req.Macros.Sugar,
		},
		Micros:       micronutrientsFromRequest(req.Micros),
		ServingSizes: servingSizes,
		Calories:     req.Calories,
		Source:       "curated",
		ImageURL:     req.ImageURL,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}
