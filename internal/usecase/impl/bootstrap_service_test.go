package impl

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cryofood/config"
	"cryofood/internal/domain/entity"
	"cryofood/internal/domain/repository"
	"cryofood/internal/errors"
	"cryofood/internal/infra/auth"
	mockRepo "cryofood/internal/mocks/repository"
	"cryofood/internal/usecase"
)

type bootstrapFixtures struct {
	service     usecase.BootstrapUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
}

func createTestBootstrapService(t *testing.T) bootstrapFixtures {
	return createTestBootstrapServiceWithLogger(t, newDiscardLogger())
}

func createTestBootstrapServiceWithLogger(t *testing.T, logger *slog.Logger) bootstrapFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.Factory = &mockRepo.MockRepositoryFactory{AccountRepo: accountRepo}
	txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)

	srv := NewBootstrapService(BootstrapServiceParams{
		TxManager: txManager,
		Hasher:    auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Config: &config.Config{
			Bootstrap: &config.BootstrapConfig{Identifier: "admin", Secret: "admin"},
		},
		Logger: logger,
	})

	return bootstrapFixtures{service: srv, txManager: txManager, accountRepo: accountRepo}
}

func TestBootstrapService_EmptyStoreCreatesDefault(t *testing.T) {
	fx := createTestBootstrapService(t)
	ctx := context.Background()
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	fx.accountRepo.On("Count", ctx).Return(int64(0), nil)
	fx.accountRepo.On("Create", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.Identifier == "admin" && hasher.Check("admin", a.SecretHash)
	})).Return(nil)

	created, err := fx.service.EnsureDefaultAccount(ctx)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestBootstrapService_PopulatedStoreIsNoop(t *testing.T) {
	fx := createTestBootstrapService(t)
	ctx := context.Background()

	fx.accountRepo.On("Count", ctx).Return(int64(2), nil)

	created, err := fx.service.EnsureDefaultAccount(ctx)
	require.NoError(t, err)
	assert.False(t, created)
	fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBootstrapService_LostRaceIsNoop(t *testing.T) {
	fx := createTestBootstrapService(t)
	ctx := context.Background()

	fx.accountRepo.On("Count", ctx).Return(int64(0), nil)
	fx.accountRepo.On("Create", ctx, mock.Anything).Return(repository.ErrAccountExists)

	created, err := fx.service.EnsureDefaultAccount(ctx)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestBootstrapService_CountFault(t *testing.T) {
	fx := createTestBootstrapService(t)
	ctx := context.Background()

	fx.accountRepo.On("Count", ctx).Return(int64(0), errors.New("no such table: accounts"))

	_, err := fx.service.EnsureDefaultAccount(ctx)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", errorCode(err))
}

func TestBootstrapService_LogsCreationOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	fx := createTestBootstrapServiceWithLogger(t, logger)
	ctx := context.Background()

	fx.accountRepo.On("Count", ctx).Return(int64(0), nil).Once()
	fx.accountRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	fx.accountRepo.On("Count", ctx).Return(int64(1), nil).Once()

	created, err := fx.service.EnsureDefaultAccount(ctx)
	require.NoError(t, err)
	require.True(t, created)

	created, err = fx.service.EnsureDefaultAccount(ctx)
	require.NoError(t, err)
	require.False(t, created)

	assert.Equal(t, 1, strings.Count(buf.String(), "created default account"))
	assert.Contains(t, buf.String(), "identifier=admin")
	assert.NotContains(t, buf.String(), "secret")
}
