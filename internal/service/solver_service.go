package service

import (
	"context"
	"fmt"

	"nutrient-solver/internal/pkg/logger"
	"nutrient-solver/internal/pkg/validator"
	"nutrient-solver/internal/solver"
)

// SolverService is the caller-facing entry point to the meal solver:
// it validates a request's shape, logs the attempt, calls the pure
// solver core, and logs the outcome.
type SolverService struct {
	validator         *validator.SolverValidator
	logger            logger.Logger
	defaultTimeoutSecs int
	overflowBoundLog2  int
}

// NewSolverService creates a solver service. maxTimeoutSecs,
// defaultTimeoutSecs, and overflowBoundLog2 come from
// config.SolverConfig's fields of the same name.
func NewSolverService(log logger.Logger, maxTimeoutSecs, defaultTimeoutSecs, overflowBoundLog2 int) *SolverService {
	return &SolverService{
		validator:          validator.NewSolverValidator(log, maxTimeoutSecs),
		logger:             log,
		defaultTimeoutSecs: defaultTimeoutSecs,
		overflowBoundLog2:  overflowBoundLog2,
	}
}

// Solve validates req, calls the solver core, and returns its Solution.
func (s *SolverService) Solve(ctx context.Context, req *solver.Request) (solver.Solution, error) {
	if req.TimeoutSecs <= 0 {
		req.TimeoutSecs = s.defaultTimeoutSecs
	}
	if req.OverflowBoundLog2 <= 0 {
		req.OverflowBoundLog2 = s.overflowBoundLog2
	}

	s.logger.Info(ctx, "solving meal request",
		logger.Int("ingredient_count", len(req.Ingredients)),
		logger.Int("meal_calories_kcal", req.Targets.MealCaloriesKcal),
	)

	if err := s.validator.ValidateRequest(ctx, req); err != nil {
		s.logger.Error(ctx, "solver request validation failed", logger.Error(err))
		return solver.Solution{}, fmt.Errorf("validation failed: %w", err)
	}

	sol, err := solver.Solve(*req)
	if err != nil {
		s.logger.Error(ctx, "solver engine failed", logger.Error(err))
		return solver.Solution{}, fmt.Errorf("solve failed: %w", err)
	}

	s.logger.Info(ctx, "solve completed",
		logger.String("status", string(sol.Status)),
		logger.Float64("objective_value", sol.ObjectiveValue),
	)
	return sol, nil
}
