package repository

import (
	"context"
	"errors"

	"cryofood/internal/domain/entity"
)

// ErrFoodItemNotFound is returned when no item has the requested id.
var ErrFoodItemNotFound = errors.New("food item not found")

// FoodItemRepository is the inventory store.
type FoodItemRepository interface {
	// Create stores the item and sets item.ID to the assigned id.
	Create(ctx context.Context, item *entity.FoodItem) error

	// List returns every item ordered by id.
	List(ctx context.Context) ([]*entity.FoodItem, error)

	FindByID(ctx context.Context, id int64) (*entity.FoodItem, error)

	Delete(ctx context.Context, id int64) error
}
