// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"cryofood/internal/domain/entity"
	"cryofood/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

var _ repository.AccountRepository = (*MockAccountRepository)(nil)

// NewMockAccountRepository asserts the recorded expectations when t finishes.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error) {
	args := m.Called(ctx, identifier)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]*entity.Account)

	return accounts, args.Error(1)
}

func (m *MockAccountRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateSecretHash(ctx context.Context, identifier, secretHash string) error {
	return m.Called(ctx, identifier, secretHash).Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, identifier string) error {
	return m.Called(ctx, identifier).Error(0)
}
