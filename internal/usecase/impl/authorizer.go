// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "cryofood/internal/delivery/context"
	domainerrors "cryofood/internal/domain/errors"
	"cryofood/internal/domain/repository"
	"cryofood/internal/domain/service"
	"cryofood/internal/errors"
	"cryofood/internal/usecase"

	"go.uber.org/fx"
)

// dummySecret is hashed once so unknown identifiers cost one bcrypt comparison
// like a wrong secret does.
const dummySecret = "cryofood-unknown-account"

type authorizer struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	dummyHash   string
	logger      *slog.Logger
}

// AuthorizerParams holds dependencies for the Authorizer, injected by Fx.
type AuthorizerParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

func NewAuthorizer(params AuthorizerParams) (usecase.Authorizer, error) {
	dummyHash, err := params.Hasher.Hash(dummySecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare dummy hash")
	}

	return &authorizer{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		dummyHash:   dummyHash,
		logger:      params.Logger,
	}, nil
}

func (a *authorizer) Authorize(ctx context.Context, identifier, secret string) (bool, error) {
	if identifier == "" || secret == "" {
		a.hasher.Check(secret, a.dummyHash)

		return false, nil
	}

	account, err := a.accountRepo.FindByIdentifier(ctx, identifier)
	if errors.Is(err, repository.ErrAccountNotFound) {
		a.hasher.Check(secret, a.dummyHash)

		return false, nil
	}
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to load account for authorization")
	}

	return a.hasher.Check(secret, account.SecretHash), nil
}

// requireAuthorized turns a rejected credential into ErrAuthorizationFailed.
func requireAuthorized(ctx context.Context, authz usecase.Authorizer, logger *slog.Logger, cred usecase.Credential) error {
	ok, err := authz.Authorize(ctx, cred.Identifier, cred.Secret)
	if err != nil {
		return err
	}
	if !ok {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Credential rejected", slog.String("identifier", cred.Identifier))

		return domainerrors.ErrAuthorizationFailed
	}

	return nil
}
