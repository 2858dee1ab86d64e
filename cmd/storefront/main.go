package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"sitesnap/config"
	"sitesnap/internal/app"
	"sitesnap/internal/delivery"
	"sitesnap/internal/delivery/api"
	"sitesnap/internal/delivery/api/router/handler"
	"sitesnap/internal/delivery/middleware"
	logs "sitesnap/internal/infra/log"
	"sitesnap/internal/infra/metrics"
	"sitesnap/internal/usecase/impl"

	"gocloud.dev/blob"
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
		injectHandler(),
		injectDelivery(),
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
		newBucket,
		app.NewMetrics,
		func(m *metrics.Metrics) middleware.HTTPMetrics { return m },
		fx.Annotate(
			func(m *metrics.Metrics) http.Handler { return m.Handler() },
			fx.ResultTags(`name:"metricsHandler"`),
		),
	)
}

// newBucket opens the store bucket and closes it on shutdown.
func newBucket(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (*blob.Bucket, error) {
	bucket, err := app.NewBucket(ctx, cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

func injectRepo() fx.Option {
	return fx.Provide(
		app.NewStore,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		app.NewTokenStore,
		app.NewAPIClient,
		app.NewBackend,
		app.NewQRCodeService,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewSession,
		app.NewCatalog,
		app.NewStorefront,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewStorefrontHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
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
