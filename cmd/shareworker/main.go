// Command shareworker receives share lifecycle events from Pub/Sub push subscriptions and writes
// them to the audit log.
package main

import (
	"context"
	"log/slog"

	"fileshare/config"
	"fileshare/internal/delivery"
	"fileshare/internal/delivery/worker"
	"fileshare/internal/delivery/worker/handler"
	logs "fileshare/internal/infra/log"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
		fx.Module("push",
			fx.Provide(
				handler.NewPushHandler,
				worker.NewServer,
			),
		),
		fx.Invoke(serve),
	).Run()
}

// serve runs the push receiver and stops the app when it fails to bind.
func serve(ctx context.Context, server delivery.Delivery, logger *slog.Logger, shutdowner fx.Shutdowner) {
	go func() {
		if err := server.Serve(ctx); err != nil {
			logger.Error("Share worker stopped", slog.Any("error", err))

			if err := shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
				logger.Error("Failed to shut down share worker", slog.Any("error", err))
			}
		}
	}()
}
