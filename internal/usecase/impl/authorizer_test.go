package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryofood/internal/domain/entity"
	"cryofood/internal/domain/repository"
	"cryofood/internal/errors"
	mockRepo "cryofood/internal/mocks/repository"
	mockService "cryofood/internal/mocks/service"
	"cryofood/internal/usecase"
)

type authorizerFixtures struct {
	authorizer  usecase.Authorizer
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockService.MockPasswordHasher
}

func createTestAuthorizer(t *testing.T) authorizerFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	hasher.On("Hash", dummySecret).Return("dummy-hash", nil).Once()

	authz, err := NewAuthorizer(AuthorizerParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})
	require.NoError(t, err)

	return authorizerFixtures{authorizer: authz, accountRepo: accountRepo, hasher: hasher}
}

func TestAuthorizer_ValidCredential(t *testing.T) {
	fx := createTestAuthorizer(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByIdentifier", ctx, "alice").
		Return(&entity.Account{Identifier: "alice", SecretHash: "alice-hash"}, nil)
	fx.hasher.On("Check", "pw", "alice-hash").Return(true)

	ok, err := fx.authorizer.Authorize(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorizer_WrongSecret(t *testing.T) {
	fx := createTestAuthorizer(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByIdentifier", ctx, "alice").
		Return(&entity.Account{Identifier: "alice", SecretHash: "alice-hash"}, nil)
	fx.hasher.On("Check", "nope", "alice-hash").Return(false)

	ok, err := fx.authorizer.Authorize(ctx, "alice", "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorizer_UnknownIdentifierRunsDummyCheck(t *testing.T) {
	fx := createTestAuthorizer(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByIdentifier", ctx, "ghost").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Check", "pw", "dummy-hash").Return(false).Once()

	ok, err := fx.authorizer.Authorize(ctx, "ghost", "pw")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorizer_EmptyFields(t *testing.T) {
	testCases := []struct {
		name       string
		identifier string
		secret     string
	}{
		{name: "empty identifier", identifier: "", secret: "pw"},
		{name: "empty secret", identifier: "alice", secret: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestAuthorizer(t)
			fx.hasher.On("Check", tc.secret, "dummy-hash").Return(false).Once()

			ok, err := fx.authorizer.Authorize(context.Background(), tc.identifier, tc.secret)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, fx.accountRepo.Calls)
		})
	}
}

func TestAuthorizer_StorageFault(t *testing.T) {
	fx := createTestAuthorizer(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByIdentifier", ctx, "alice").Return(nil, errors.New("disk I/O error"))

	ok, err := fx.authorizer.Authorize(ctx, "alice", "pw")
	assert.False(t, ok)
	require.Error(t, err)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", errorCode(err))
}

func TestNewAuthorizer_HashFailure(t *testing.T) {
	hasher := mockService.NewMockPasswordHasher(t)
	hasher.On("Hash", dummySecret).Return("", errors.New("rng failure"))

	_, err := NewAuthorizer(AuthorizerParams{
		AccountRepo: mockRepo.NewMockAccountRepository(t),
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})
	assert.Error(t, err)
}
