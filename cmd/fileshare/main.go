package main

import (
	"context"
	"log/slog"
	"os"

	"fileshare/config"
	"fileshare/internal/delivery"
	"fileshare/internal/delivery/api"
	apimiddleware "fileshare/internal/delivery/api/middleware"
	"fileshare/internal/delivery/api/router/handler"
	"fileshare/internal/delivery/worker"
	"fileshare/internal/domain/repository"
	"fileshare/internal/domain/service"
	"fileshare/internal/infra/auth"
	"fileshare/internal/infra/auth/firebase"
	logs "fileshare/internal/infra/log"
	"fileshare/internal/infra/persistence/memory"
	"fileshare/internal/infra/persistence/postgres"
	"fileshare/internal/infra/pubsub"
	"fileshare/internal/infra/qrcode"
	"fileshare/internal/infra/sms"
	"fileshare/internal/infra/storage"
	"fileshare/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
	)
}

type repoParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type repositories struct {
	fx.Out

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	OTPRepo   repository.OTPRepository
	ShareRepo repository.ShareRepository
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

// newRepositories picks the persistence driver named in the config.
func newRepositories(params repoParams) (repositories, error) {
	switch params.Config.Persistence.Driver {
	case config.PersistenceDriverMemory:
		params.Logger.Warn("Using in-memory persistence; data is lost on restart")
		store := memory.NewStore()

		return repositories{
			TxManager: memory.NewTransactionManager(store),
			UserRepo:  memory.NewUserRepository(store),
			OTPRepo:   memory.NewOTPRepository(store),
			ShareRepo: memory.NewShareRepository(store),
		}, nil

	case config.PersistenceDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			TxManager: postgres.NewTransactionManager(db),
			UserRepo:  postgres.NewUserRepository(db),
			OTPRepo:   postgres.NewOTPRepository(db),
			ShareRepo: postgres.NewShareRepository(db),
		}, nil

	default:
		return repositories{}, errors.Errorf("unknown persistence driver: %s", params.Config.Persistence.Driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			sms.NewSMSProvider,
			storage.NewObjectStorage,
			pubsub.NewEventPublisher,
			newIdentityVerifier,
			newQRCodeService,
		),
	)
}

// newIdentityVerifier returns nil when Firebase is not configured, which disables external login.
func newIdentityVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.ExternalIdentityVerifier, error) {
	if !cfg.Firebase.Enabled() {
		logger.Info("Firebase not configured, external login disabled")

		return nil, nil
	}

	return firebase.NewVerifier(ctx, cfg.Firebase, logger)
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationDispatcher,
			impl.NewSessionService,
			impl.NewOTPService,
			impl.NewProfileService,
			impl.NewShareService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewShareHandler,
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
			fx.Annotate(
				worker.NewOTPSweeper,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
