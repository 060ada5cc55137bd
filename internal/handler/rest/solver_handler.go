package rest

import (
	"github.com/gin-gonic/gin"

	"nutrient-solver/internal/handler/middleware"
	"nutrient-solver/internal/pkg/logger"
	"nutrient-solver/internal/service"
	"nutrient-solver/internal/solver"
)

// SolverHandler exposes the single-meal ILP solver over HTTP. It binds
// a solver.Request directly rather than a bespoke DTO: the request
// shape already is the caller contract spec.md §2 describes, and the
// service layer (not this handler) owns request-shape validation.
type SolverHandler struct {
	solverService  *service.SolverService
	logger         logger.Logger
	responseHelper *middleware.ResponseHelper
}

func NewSolverHandler(solverService *service.SolverService, log logger.Logger) *SolverHandler {
	return &SolverHandler{
		solverService:  solverService,
		logger:         log,
		responseHelper: middleware.NewResponseHelper(),
	}
}

// Solve handles POST /meals/solve: bind a solver.Request, run it
// through the solver service, and return the resulting Solution.
func (h *SolverHandler) Solve(c *gin.Context) {
	ctx := middleware.GetContext(c)

	var req solver.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "Failed to bind solve request", logger.Error(err))
		h.responseHelper.BadRequest(c, gin.H{"details": err.Error()}, "Invalid request body")
		return
	}

	sol, err := h.solverService.Solve(ctx, &req)
	if err != nil {
		h.logger.Error(ctx, "Solve failed", logger.Error(err))
		h.responseHelper.BadRequest(c, gin.H{"details": err.Error()}, "Solve failed")
		return
	}

	h.logger.Info(ctx, "Solve completed", logger.String("status", string(sol.Status)))
	h.responseHelper.Success(c, sol, "Solve completed")
}
