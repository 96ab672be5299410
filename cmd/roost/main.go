package main

import (
	"context"
	"log/slog"
	"os"

	"roost/config"
	"roost/internal/delivery"
	"roost/internal/delivery/http"
	"roost/internal/delivery/http/middleware"
	"roost/internal/delivery/http/router/handler"
	logs "roost/internal/infra/log"
	"roost/internal/infra/persistence/sqlite"
	"roost/internal/infra/remote"
	"roost/internal/usecase/impl"
	"roost/internal/usecase/watch"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// .env is optional; local runs use it for configuration overrides
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
		watch.NewHub,
		remote.NewSourceClient,
		remote.NewDirectionsClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewLocationRepository,
			sqlite.NewRouteRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSyncService,
			impl.NewSearchService,
			impl.NewRouteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewRouteHandler,
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

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
