package impl

import (
	"context"
	"log/slog"

	deliverycontext "cryofood/internal/delivery/context"
	"cryofood/internal/domain/entity"
	domainerrors "cryofood/internal/domain/errors"
	"cryofood/internal/domain/repository"
	"cryofood/internal/domain/service"
	"cryofood/internal/errors"
	"cryofood/internal/usecase"

	"go.uber.org/fx"
)

type accountService struct {
	authorizer  usecase.Authorizer
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Authorizer  usecase.Authorizer
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		authorizer:  params.Authorizer,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) CheckCredential(ctx context.Context, cred usecase.Credential) error {
	return requireAuthorized(ctx, srv.authorizer, srv.logger, cred)
}

func (srv *accountService) ListAccounts(ctx context.Context, cred usecase.Credential) ([]string, error) {
	if err := requireAuthorized(ctx, srv.authorizer, srv.logger, cred); err != nil {
		return nil, err
	}

	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list accounts")
	}

	identifiers := make([]string, 0, len(accounts))
	for _, account := range accounts {
		identifiers = append(identifiers, account.Identifier)
	}

	return identifiers, nil
}

func (srv *accountService) AddAccount(ctx context.Context, cred usecase.Credential, identifier, secret string) error {
	if err := requireAuthorized(ctx, srv.authorizer, srv.logger, cred); err != nil {
		return err
	}
	if identifier == "" || secret == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("identifier and secret are required")
	}

	hash, err := srv.hasher.Hash(secret)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	err = srv.accountRepo.Create(ctx, &entity.Account{Identifier: identifier, SecretHash: hash})
	if errors.Is(err, repository.ErrAccountExists) {
		return domainerrors.ErrAccountAlreadyExists.WrapMessage(identifier)
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created",
		slog.String("by", cred.Identifier),
		slog.String("identifier", identifier),
	)

	return nil
}

func (srv *accountService) RotatePassword(ctx context.Context, cred usecase.Credential, identifier, newSecret string) error {
	if err := requireAuthorized(ctx, srv.authorizer, srv.logger, cred); err != nil {
		return err
	}
	if identifier == "" || newSecret == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("identifier and secret are required")
	}

	hash, err := srv.hasher.Hash(newSecret)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	err = srv.accountRepo.UpdateSecretHash(ctx, identifier, hash)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound.WrapMessage(identifier)
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to rotate account secret")
	}

	srv.log(ctx).Info("Account secret rotated",
		slog.String("by", cred.Identifier),
		slog.String("identifier", identifier),
	)

	return nil
}

// DeleteAccount checks the credential first so every rejected caller takes the same path.
func (srv *accountService) DeleteAccount(ctx context.Context, cred usecase.Credential, identifier string) error {
	if err := requireAuthorized(ctx, srv.authorizer, srv.logger, cred); err != nil {
		return err
	}
	if identifier == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("identifier is required")
	}
	if identifier == cred.Identifier {
		return domainerrors.ErrSelfDeletion.WrapMessage(identifier)
	}

	err := srv.accountRepo.Delete(ctx, identifier)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound.WrapMessage(identifier)
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted",
		slog.String("by", cred.Identifier),
		slog.String("identifier", identifier),
	)

	return nil
}
