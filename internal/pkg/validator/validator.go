package validator

import "nutrient-solver/internal/pkg/logger"

// Validator provides centralized validation for all entities
type Validator struct {
	Food   *FoodValidator
	Solver *SolverValidator
}

// New creates a new validator instance with all validators. solverMaxTimeoutSecs
// comes from config.SolverConfig.MaxTimeoutSeconds.
func New(logger logger.Logger, solverMaxTimeoutSecs int) *Validator {
	return &Validator{
		Food:   NewFoodValidator(logger),
		Solver: NewSolverValidator(logger, solverMaxTimeoutSecs),
	}
}
