package repository

import (
	"context"

	"cryofood/internal/domain/entity"
	"cryofood/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockFoodItemRepository is a mock of repository.FoodItemRepository.
type MockFoodItemRepository struct {
	mock.Mock
}

var _ repository.FoodItemRepository = (*MockFoodItemRepository)(nil)

func NewMockFoodItemRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFoodItemRepository {
	m := &MockFoodItemRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFoodItemRepository) Create(ctx context.Context, item *entity.FoodItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockFoodItemRepository) List(ctx context.Context) ([]*entity.FoodItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*entity.FoodItem)

	return items, args.Error(1)
}

func (m *MockFoodItemRepository) FindByID(ctx context.Context, id int64) (*entity.FoodItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*entity.FoodItem)

	return item, args.Error(1)
}

func (m *MockFoodItemRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
