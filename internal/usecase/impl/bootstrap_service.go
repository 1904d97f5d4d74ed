package impl

import (
	"context"
	"log/slog"

	"cryofood/config"
	"cryofood/internal/domain/entity"
	domainerrors "cryofood/internal/domain/errors"
	"cryofood/internal/domain/repository"
	"cryofood/internal/domain/service"
	"cryofood/internal/errors"
	"cryofood/internal/usecase"

	"go.uber.org/fx"
)

type bootstrapService struct {
	txManager  repository.TransactionManager
	hasher     service.PasswordHasher
	identifier string
	secret     string
	logger     *slog.Logger
}

// BootstrapServiceParams holds dependencies for BootstrapService, injected by Fx.
type BootstrapServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

func NewBootstrapService(params BootstrapServiceParams) usecase.BootstrapUsecase {
	return &bootstrapService{
		txManager:  params.TxManager,
		hasher:     params.Hasher,
		identifier: params.Config.Bootstrap.Identifier,
		secret:     params.Config.Bootstrap.Secret,
		logger:     params.Logger,
	}
}

// EnsureDefaultAccount counts and inserts in one transaction. Losing an insert
// race to another process is treated as already seeded.
func (srv *bootstrapService) EnsureDefaultAccount(ctx context.Context) (bool, error) {
	hash, err := srv.hasher.Hash(srv.secret)
	if err != nil {
		return false, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	created := false
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		count, err := accountRepo.Count(ctx)
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to count accounts")
		}
		if count > 0 {
			return nil
		}

		err = accountRepo.Create(ctx, &entity.Account{Identifier: srv.identifier, SecretHash: hash})
		if errors.Is(err, repository.ErrAccountExists) {
			return nil
		}
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create default account")
		}
		created = true

		return nil
	})
	if err != nil {
		return false, err
	}

	if created {
		srv.logger.Warn("Credential store was empty, created default account",
			slog.String("identifier", srv.identifier),
		)
	}

	return created, nil
}
