package repository

import (
	"context"

	"cryofood/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager runs the callback against Factory when one is set,
// and records the call either way.
type MockTransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

var _ repository.TransactionManager = (*MockTransactionManager)(nil)

func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if m.Factory != nil {
		if err := fn(m.Factory); err != nil {
			return err
		}
	}

	return args.Error(0)
}

// MockRepositoryFactory hands out fixed repositories.
type MockRepositoryFactory struct {
	AccountRepo  repository.AccountRepository
	FoodItemRepo repository.FoodItemRepository
}

var _ repository.RepositoryFactory = (*MockRepositoryFactory)(nil)

func (f *MockRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return f.AccountRepo
}

func (f *MockRepositoryFactory) NewFoodItemRepository() repository.FoodItemRepository {
	return f.FoodItemRepo
}
