package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"nutrient-solver/internal/domain"
)

// FoodRepository defines the interface for food catalog data operations
type FoodRepository interface {
	Create(ctx context.Context, food *domain.FoodItem) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodItem, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*domain.FoodItem, error)
	GetByCategory(ctx context.Context, category string, limit, offset int) ([]*domain.FoodItem, error)
	Update(ctx context.Context, food *domain.FoodItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
