package cli

import (
	"context"
	"log/slog"

	"pocketratings/config"
	"pocketratings/internal/delivery"
	"pocketratings/internal/delivery/http"
	"pocketratings/internal/delivery/http/middleware"
	"pocketratings/internal/delivery/http/router/handler"
	"pocketratings/internal/infra/auth"
	"pocketratings/internal/infra/cache"
	logs "pocketratings/internal/infra/log"
	"pocketratings/internal/infra/persistence/database"
	"pocketratings/internal/infra/persistence/gormrepo"
	"pocketratings/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// coreOptions assembles everything below the delivery layer. Admin commands populate use cases from it.
func coreOptions(opts *RootOptions) fx.Option {
	return fx.Options(
		injectInfra(opts),
		injectRepo(),
		injectService(),
		injectUsecase(),
	)
}

// serverOptions adds the HTTP delivery on top of coreOptions.
func serverOptions(opts *RootOptions) fx.Option {
	return fx.Options(
		coreOptions(opts),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(startServer),
	)
}

func injectInfra(opts *RootOptions) fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			database.New,
		),
		fx.Decorate(opts.applyToConfig),
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		gormrepo.NewTransactionManager,
		gormrepo.NewCategoryRepository,
		gormrepo.NewProductRepository,
		gormrepo.NewLocationRepository,
		gormrepo.NewPurchaseRepository,
		gormrepo.NewReviewRepository,
		gormrepo.NewUserRepository,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
		auth.NewJWTService,
		cache.NewProductListCache,
		cache.NewReviewListCache,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewCategoryService,
		impl.NewProductService,
		impl.NewLocationService,
		impl.NewPurchaseService,
		impl.NewReviewService,
		impl.NewUserService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewUserHandler,
		handler.NewCategoryHandler,
		handler.NewProductHandler,
		handler.NewLocationHandler,
		handler.NewPurchaseHandler,
		handler.NewReviewHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// startServer runs every delivery in the background. A delivery that fails stops the application with exit code 1.
func startServer(lc fx.Lifecycle, params startServerParams) {
	serveCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(serveCtx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
					}
				}()
			}

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}
