package main

import (
	"context"
	"log/slog"
	"os"

	"referidos/config"
	"referidos/internal/delivery"
	"referidos/internal/delivery/http"
	httpmiddleware "referidos/internal/delivery/http/middleware"
	"referidos/internal/delivery/http/router/handler"
	"referidos/internal/infra/auth"
	"referidos/internal/infra/codegen"
	logs "referidos/internal/infra/log"
	"referidos/internal/infra/notification"
	"referidos/internal/infra/persistence/postgres"
	"referidos/internal/infra/qrcode"
	"referidos/internal/infra/report"
	"referidos/internal/infra/storage"
	"referidos/internal/usecase/impl"

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
			postgres.NewSocioRepository,
			postgres.NewCuponRepository,
			postgres.NewArtistaRepository,
			postgres.NewPagoRepository,
			postgres.NewConfigRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			codegen.NewGenerator,
			notification.NewHTTPMailer,
			storage.NewBlobStorage,
			report.NewExcelReportService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSocioService,
			impl.NewCuponService,
			impl.NewArtistaService,
			impl.NewLedgerService,
			impl.NewConfigService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSocioHandler,
			handler.NewCuponHandler,
			handler.NewArtistaHandler,
			handler.NewPagoHandler,
			handler.NewConfigHandler,
			handler.NewPortalHandler,
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
