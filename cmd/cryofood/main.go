package main

import (
	"context"
	"log/slog"
	"os"

	"cryofood/config"
	"cryofood/internal/delivery"
	"cryofood/internal/delivery/http"
	httpmiddleware "cryofood/internal/delivery/http/middleware"
	"cryofood/internal/delivery/http/router/handler"
	"cryofood/internal/delivery/middleware"
	"cryofood/internal/infra/auth"
	logs "cryofood/internal/infra/log"
	"cryofood/internal/infra/persistence/database"
	"cryofood/internal/infra/pubsub"
	"cryofood/internal/usecase"
	"cryofood/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bootstrapAccounts,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		database.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			database.NewAccountRepository,
			database.NewFoodItemRepository,
			database.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthorizer,
			impl.NewAccountService,
			impl.NewBootstrapService,
			impl.NewInventoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewFoodHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrapAccounts seeds the default account once the database hook has
// migrated the schema. Hooks run in registration order.
func bootstrapAccounts(lc fx.Lifecycle, bootstrap usecase.BootstrapUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := bootstrap.EnsureDefaultAccount(ctx); err != nil {
				return errors.Wrap(err, "failed to bootstrap default account")
			}

			return nil
		},
	})
}

// startServer begins serving once every earlier start hook has succeeded.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
