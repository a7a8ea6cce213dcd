package main

import (
	"context"
	"log/slog"
	"os"

	"servicedesk/config"
	"servicedesk/internal/delivery"
	"servicedesk/internal/delivery/api"
	"servicedesk/internal/delivery/api/middleware"
	"servicedesk/internal/delivery/api/router/handler"
	"servicedesk/internal/domain/service"
	"servicedesk/internal/infra/auth"
	"servicedesk/internal/infra/directory"
	logs "servicedesk/internal/infra/log"
	"servicedesk/internal/infra/messaging"
	"servicedesk/internal/infra/metrics"
	"servicedesk/internal/infra/persistence/postgres"
	"servicedesk/internal/infra/pubsub"
	"servicedesk/internal/infra/qrcode"
	"servicedesk/internal/infra/storage"
	"servicedesk/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
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
		storage.New,
		messaging.New,
		pubsub.NewEventPublisher,
		metrics.NewRecorder,
		func(recorder *metrics.Recorder) service.Metrics { return recorder },
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewComplaintRepository,
			postgres.NewSequenceRepository,
			postgres.NewNotificationRepository,
			postgres.NewBillingRepository,
			postgres.NewDirectoryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			directory.NewStoreDirectory,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the job-card label generator
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(defaultQRCodeSize, defaultQRCodeLevel, "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentifierService,
			impl.NewNotificationService,
			impl.NewAutoAssignmentPolicy,
			impl.NewComplaintService,
			impl.NewBillingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewComplaintHandler,
			handler.NewBillingHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
