package main

import (
	"context"
	"log/slog"
	"os"

	"dealerdesk/config"
	"dealerdesk/internal/delivery"
	"dealerdesk/internal/delivery/http"
	"dealerdesk/internal/delivery/http/middleware"
	"dealerdesk/internal/delivery/http/router/handler"
	"dealerdesk/internal/domain/repository"
	"dealerdesk/internal/infra/identity"
	logs "dealerdesk/internal/infra/log"
	"dealerdesk/internal/infra/marketplace"
	"dealerdesk/internal/infra/persistence/file"
	"dealerdesk/internal/infra/persistence/postgres"
	"dealerdesk/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newSessionRepository,
		),
	)
}

// newSessionRepository prefers the Postgres store and falls back to the file
// store when no database is configured.
func newSessionRepository(db *gorm.DB, cfg *config.Config, logger *slog.Logger) repository.SessionRepository {
	if db != nil {
		return postgres.NewSessionRepository(db, logger)
	}

	return file.NewSessionRepository(cfg, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewClient,
			marketplace.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAccountingStore,
			impl.NewSalesStore,
			impl.NewProfileStore,
			impl.NewAnalyticsStore,
			impl.NewHRStore,
			impl.NewInventoryStore,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewGuardMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewAccountingHandler,
			handler.NewSalesHandler,
			handler.NewProfileHandler,
			handler.NewAnalyticsHandler,
			handler.NewHRHandler,
			handler.NewInventoryHandler,
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
