package validator

import (
	"context"
	"fmt"

	"nutrient-solver/internal/catalog/dri"
	"nutrient-solver/internal/pkg/logger"
	"nutrient-solver/internal/solver"
)

// SolverValidator checks a solver.Request's shape before it reaches
// the solver core. It is distinct from solver.validateRequest: that
// function guards against programming-time misuse (malformed bounds,
// a ratio that doesn't sum to 100) and is part of the core's own
// invariants, while this validator enforces request-shape rules a
// caller-facing service wants enforced before even attempting a solve
// (e.g. a non-empty ingredient list, recognized micro keys).
type SolverValidator struct {
	logger         logger.Logger
	maxIngredients int
	maxTimeoutSecs int
}

// NewSolverValidator creates a solver request validator with default rules.
func NewSolverValidator(logger logger.Logger, maxTimeoutSecs int) *SolverValidator {
	return &SolverValidator{
		logger:         logger,
		maxIngredients: 200,
		maxTimeoutSecs: maxTimeoutSecs,
	}
}

// ValidateRequest runs the numbered checks below, wrapping the first
// failure with the step it failed at.
func (v *SolverValidator) ValidateRequest(ctx context.Context, req *solver.Request) error {
	// 1. Ingredient list must be non-empty and within size bounds.
	if err := v.validateIngredients(req); err != nil {
		return fmt.Errorf("ingredient list validation failed: %w", err)
	}

	// 2. Calorie target must be positive.
	if req.Targets.MealCaloriesKcal <= 0 {
		return fmt.Errorf("calorie target validation failed: meal calorie target must be positive, got %d", req.Targets.MealCaloriesKcal)
	}

	// 3. Micro target/UL keys must be canonical.
	if err := v.validateMicroKeys(req); err != nil {
		return fmt.Errorf("micro key validation failed: %w", err)
	}

	// 4. Timeout, if supplied, must fit the configured ceiling.
	if req.TimeoutSecs > v.maxTimeoutSecs {
		return fmt.Errorf("timeout validation failed: requested timeout %ds exceeds maximum %ds", req.TimeoutSecs, v.maxTimeoutSecs)
	}

	return nil
}

func (v *SolverValidator) validateIngredients(req *solver.Request) error {
	if len(req.Ingredients) == 0 {
		return fmt.Errorf("at least one ingredient is required")
	}
	if len(req.Ingredients) > v.maxIngredients {
		return fmt.Errorf("ingredient count %d exceeds maximum %d", len(req.Ingredients), v.maxIngredients)
	}
	seen := make(map[int64]bool, len(req.Ingredients))
	for _, in := range req.Ingredients {
		if seen[in.Ingredient.ID] {
			return fmt.Errorf("duplicate ingredient ID %d", in.Ingredient.ID)
		}
		seen[in.Ingredient.ID] = true
	}
	return nil
}

func (v *SolverValidator) validateMicroKeys(req *solver.Request) error {
	for key := range req.MicroTargets {
		if _, known := dri.Registry[key]; !known {
			v.logger.Warn(context.Background(), "unrecognized micro target key, request rejected", logger.String("key", key))
			return fmt.Errorf("micro target key '%s' is not a recognized canonical nutrient key", key)
		}
	}
	for key := range req.MicroULs {
		if _, known := dri.Registry[key]; !known {
			return fmt.Errorf("micro UL key '%s' is not a recognized canonical nutrient key", key)
		}
	}
	return nil
}
