package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"nutrient-solver/internal/domain"
	"nutrient-solver/internal/dto/request"
	"nutrient-solver/internal/pkg/logger"
	"nutrient-solver/internal/pkg/validator"
)

// FoodRepository defines the interface for food data operations used by FoodService
type FoodRepository interface {
	Create(ctx context.Context, food *domain.FoodItem) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodItem, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*domain.FoodItem, error)
	GetByCategory(ctx context.Context, category string, limit, offset int) ([]*domain.FoodItem, error)
	Update(ctx context.Context, food *domain.FoodItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// FoodService handles food catalog business logic
type FoodService struct {
	foodRepo  FoodRepository
	validator *validator.FoodValidator
	logger    logger.Logger
}

// NewFoodService creates a new food service
func NewFoodService(foodRepo FoodRepository, log logger.Logger) *FoodService {
	return &FoodService{
		foodRepo:  foodRepo,
		validator: validator.NewFoodValidator(log),
		logger:    log,
	}
}

// CreateFood creates a new catalog entry with validation
func (s *FoodService) CreateFood(ctx context.Context, req *request.CreateFoodRequest) error {
	s.logger.Info(ctx, "Creating food", logger.String("food_name", req.Name.Get("en")))

	if err := s.validator.ValidateCreateRequest(ctx, req); err != nil {
		s.logger.Error(ctx, "Food validation failed", logger.Error(err))
		return fmt.Errorf("validation failed: %w", err)
	}

	foodDB := domain.FoodItemFromRequest(req)

	if err := s.foodRepo.Create(ctx, foodDB); err != nil {
		s.logger.Error(ctx, "Failed to create food", logger.Error(err))
		return fmt.Errorf("failed to create food: %w", err)
	}

	s.logger.Info(ctx, "Food created successfully", logger.String("food_id", foodDB.ID.Hex()))
	return nil
}

// SearchFood searches the catalog by free-text query
func (s *FoodService) SearchFood(ctx context.Context, req *request.SearchFoodRequest) ([]*domain.FoodItem, error) {
	s.logger.Info(ctx, "Searching food", logger.String("query", req.Query))
	foods, err := s.foodRepo.Search(ctx, req.Query, req.Limit, req.Offset)
	if err != nil {
		s.logger.Error(ctx, "Failed to search food", logger.Error(err))
		return nil, fmt.Errorf("failed to search food: %w", err)
	}
	s.logger.Info(ctx, "Food search successful", logger.Int("total_foods", len(foods)))
	return foods, nil
}

// GetFoodByID retrieves a single catalog entry by ID
func (s *FoodService) GetFoodByID(ctx context.Context, id string) (*domain.FoodItem, error) {
	s.logger.Info(ctx, "Getting food by ID", logger.String("food_id", id))
	foodID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		s.logger.Error(ctx, "Failed to convert food ID to object ID", logger.Error(err))
		return nil, fmt.Errorf("failed to convert food ID to object ID: %w", err)
	}
	food, err := s.foodRepo.GetByID(ctx, foodID)
	if err != nil {
		s.logger.Error(ctx, "Failed to get food by ID", logger.Error(err))
		return nil, fmt.Errorf("failed to get food by ID: %w", err)
	}
	s.logger.Info(ctx, "Food retrieved successfully", logger.String("food_id", food.ID.Hex()))
	return food, nil
}
