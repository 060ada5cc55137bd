package rest

import (
	"go.mongodb.org/mongo-driver/mongo"

	"nutrient-solver/internal/pkg/logger"
	"nutrient-solver/internal/service"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Health *HealthHandler
	Food   *FoodHandler
	Solver *SolverHandler
}

// NewHandlers creates a new handlers instance
func NewHandlers(
	foodService *service.FoodService,
	solverService *service.SolverService,
	db *mongo.Client,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(db, log),
		Food:   NewFoodHandler(foodService, log),
		Solver: NewSolverHandler(solverService, log),
	}
}
