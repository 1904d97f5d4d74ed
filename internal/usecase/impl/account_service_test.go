package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cryofood/internal/domain/entity"
	domainerrors "cryofood/internal/domain/errors"
	"cryofood/internal/domain/repository"
	"cryofood/internal/domain/service"
	"cryofood/internal/errors"
	"cryofood/internal/infra/auth"
	mockRepo "cryofood/internal/mocks/repository"
	mockUsecase "cryofood/internal/mocks/usecase"
	"cryofood/internal/usecase"
)

type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	authorizer  *mockUsecase.MockAuthorizer
	accountRepo *mockRepo.MockAccountRepository
	hasher      service.PasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	authz := mockUsecase.NewMockAuthorizer(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	srv := NewAccountService(AccountServiceParams{
		Authorizer:  authz,
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{service: srv, authorizer: authz, accountRepo: accountRepo, hasher: hasher}
}

func (fx accountServiceFixtures) allow(ctx context.Context) {
	fx.authorizer.On("Authorize", ctx, adminCred.Identifier, adminCred.Secret).Return(true, nil)
}

func (fx accountServiceFixtures) deny(ctx context.Context) {
	fx.authorizer.On("Authorize", ctx, adminCred.Identifier, adminCred.Secret).Return(false, nil)
}

func TestAccountService_CheckCredential(t *testing.T) {
	ctx := context.Background()

	fx := createTestAccountService(t)
	fx.allow(ctx)
	assert.NoError(t, fx.service.CheckCredential(ctx, adminCred))

	fx = createTestAccountService(t)
	fx.deny(ctx)
	assert.ErrorIs(t, fx.service.CheckCredential(ctx, adminCred), domainerrors.ErrAuthorizationFailed)
}

func TestAccountService_ListAccounts(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	fx.allow(ctx)

	fx.accountRepo.On("List", ctx).Return([]*entity.Account{
		{Identifier: "admin"},
		{Identifier: "bob"},
	}, nil)

	ids, err := fx.service.ListAccounts(ctx, adminCred)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "bob"}, ids)
}

func TestAccountService_RejectedCredentialHasNoSideEffect(t *testing.T) {
	ctx := context.Background()

	operations := map[string]func(usecase.AccountUsecase) error{
		"list": func(s usecase.AccountUsecase) error {
			_, err := s.ListAccounts(ctx, adminCred)

			return err
		},
		"add":    func(s usecase.AccountUsecase) error { return s.AddAccount(ctx, adminCred, "bob", "pw") },
		"rotate": func(s usecase.AccountUsecase) error { return s.RotatePassword(ctx, adminCred, "bob", "pw") },
		"delete": func(s usecase.AccountUsecase) error { return s.DeleteAccount(ctx, adminCred, "bob") },
	}

	for name, op := range operations {
		t.Run(name, func(t *testing.T) {
			fx := createTestAccountService(t)
			fx.deny(ctx)

			err := op(fx.service)
			assert.ErrorIs(t, err, domainerrors.ErrAuthorizationFailed)
			assert.Empty(t, fx.accountRepo.Calls)
		})
	}
}

func TestAccountService_AddAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	fx.allow(ctx)

	fx.accountRepo.On("Create", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.Identifier == "bob" && fx.hasher.Check("bobpw", a.SecretHash)
	})).Return(nil)

	assert.NoError(t, fx.service.AddAccount(ctx, adminCred, "bob", "bobpw"))
}

func TestAccountService_AddAccountDuplicate(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	fx.allow(ctx)

	fx.accountRepo.On("Create", ctx, mock.Anything).Return(repository.ErrAccountExists)

	err := fx.service.AddAccount(ctx, adminCred, "bob", "bobpw")
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_AddAccountValidation(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	fx.allow(ctx)

	assert.ErrorIs(t, fx.service.AddAccount(ctx, adminCred, "", "pw"), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, fx.service.AddAccount(ctx, adminCred, "bob", ""), domainerrors.ErrValidationFailed)
}

func TestAccountService_AddAccountStorageFault(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	fx.allow(ctx)

	fx.accountRepo.On("Create", ctx, mock.Anything).Return(errors.New("database is locked"))

	err := fx.service.AddAccount(ctx, adminCred, "bob", "bobpw")
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", errorCode(err))
}

func TestAccountService_RotatePassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	fx.allow(ctx)

	fx.accountRepo.On("UpdateSecretHash", ctx, "bob", mock.MatchedBy(func(hash string) bool {
		return fx.hasher.Check("fresh", hash)
	})).Return(nil)

	assert.NoError(t, fx.service.RotatePassword(ctx, adminCred, "bob", "fresh"))
}

func TestAccountService_RotatePasswordUnknownTarget(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	fx.allow(ctx)

	fx.accountRepo.On("UpdateSecretHash", ctx, "ghost", mock.Anything).Return(repository.ErrAccountNotFound)

	err := fx.service.RotatePassword(ctx, adminCred, "ghost", "fresh")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_DeleteAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	fx.allow(ctx)

	fx.accountRepo.On("Delete", ctx, "bob").Return(nil)

	assert.NoError(t, fx.service.DeleteAccount(ctx, adminCred, "bob"))
}

func TestAccountService_DeleteAccountSelf(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	fx.allow(ctx)

	err := fx.service.DeleteAccount(ctx, adminCred, adminCred.Identifier)
	assert.ErrorIs(t, err, domainerrors.ErrSelfDeletion)
	fx.accountRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAccountService_DeleteAccountUnknownTarget(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	fx.allow(ctx)

	fx.accountRepo.On("Delete", ctx, "ghost").Return(repository.ErrAccountNotFound)

	assert.ErrorIs(t, fx.service.DeleteAccount(ctx, adminCred, "ghost"), domainerrors.ErrAccountNotFound)
}

func TestAccountService_AuthorizerFaultPropagates(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	fault := domainerrors.NewDatabaseExecuteError(errors.New("disk I/O error"), "")

	fx.authorizer.On("Authorize", ctx, adminCred.Identifier, adminCred.Secret).Return(false, fault)

	_, err := fx.service.ListAccounts(ctx, adminCred)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", errorCode(err))
}
