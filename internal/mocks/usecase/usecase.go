// Package usecase provides testify mocks for the use case interfaces.
package usecase

import (
	"context"

	"cryofood/internal/domain/entity"
	"cryofood/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthorizer is a mock of usecase.Authorizer.
type MockAuthorizer struct {
	mock.Mock
}

var _ usecase.Authorizer = (*MockAuthorizer)(nil)

func NewMockAuthorizer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthorizer {
	m := &MockAuthorizer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthorizer) Authorize(ctx context.Context, identifier, secret string) (bool, error) {
	args := m.Called(ctx, identifier, secret)

	return args.Bool(0), args.Error(1)
}

// MockInventoryUsecase is a mock of usecase.InventoryUsecase.
type MockInventoryUsecase struct {
	mock.Mock
}

var _ usecase.InventoryUsecase = (*MockInventoryUsecase)(nil)

func NewMockInventoryUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInventoryUsecase {
	m := &MockInventoryUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockInventoryUsecase) ListItems(ctx context.Context, cred usecase.Credential) ([]*entity.FoodItem, error) {
	args := m.Called(ctx, cred)
	items, _ := args.Get(0).([]*entity.FoodItem)

	return items, args.Error(1)
}

func (m *MockInventoryUsecase) AddItem(ctx context.Context, cred usecase.Credential, input usecase.AddItemInput) (*entity.FoodItem, error) {
	args := m.Called(ctx, cred, input)
	item, _ := args.Get(0).(*entity.FoodItem)

	return item, args.Error(1)
}

func (m *MockInventoryUsecase) RemoveItem(ctx context.Context, cred usecase.Credential, id int64) error {
	return m.Called(ctx, cred, id).Error(0)
}
