package usecase

import (
	"context"

	"cryofood/internal/domain/entity"
)

// AddItemInput describes a new inventory item.
type AddItemInput struct {
	Name     string
	Category *string
}

// InventoryUsecase manages the stored food items.
type InventoryUsecase interface {
	ListItems(ctx context.Context, cred Credential) ([]*entity.FoodItem, error)
	AddItem(ctx context.Context, cred Credential, input AddItemInput) (*entity.FoodItem, error)
	RemoveItem(ctx context.Context, cred Credential, id int64) error
}
