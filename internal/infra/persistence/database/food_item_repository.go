package database

import (
	"context"

	"cryofood/internal/domain/entity"
	"cryofood/internal/domain/repository"
	"cryofood/internal/errors"
	"cryofood/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// foodItemRepository implements repository.FoodItemRepository using GORM.
type foodItemRepository struct {
	db *gorm.DB
}

func NewFoodItemRepository(db *gorm.DB) repository.FoodItemRepository {
	return &foodItemRepository{db: db}
}

func (repo *foodItemRepository) Create(ctx context.Context, item *entity.FoodItem) error {
	m := fromFoodItemDomain(item)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create food item")
	}

	item.ID = m.ID
	item.CreatedAt = m.CreatedAt

	return nil
}

func (repo *foodItemRepository) List(ctx context.Context) ([]*entity.FoodItem, error) {
	var models []*model.FoodItemModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list food items")
	}

	items := make([]*entity.FoodItem, 0, len(models))
	for _, m := range models {
		items = append(items, toFoodItemDomain(m))
	}

	return items, nil
}

func (repo *foodItemRepository) FindByID(ctx context.Context, id int64) (*entity.FoodItem, error) {
	var m model.FoodItemModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find food item by id")
	}

	return toFoodItemDomain(&m), nil
}

func (repo *foodItemRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FoodItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete food item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFoodItemNotFound
	}

	return nil
}

func toFoodItemDomain(m *model.FoodItemModel) *entity.FoodItem {
	return &entity.FoodItem{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
	}
}

func fromFoodItemDomain(item *entity.FoodItem) *model.FoodItemModel {
	return &model.FoodItemModel{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		CreatedAt: item.CreatedAt,
	}
}
