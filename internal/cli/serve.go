package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yannix2/medmind/internal/api"
	"github.com/yannix2/medmind/internal/i18n"
	"github.com/yannix2/medmind/internal/importer"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := options.openRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			i18nManager, err := i18n.NewManager(rt.config.DefaultLanguage, rt.config.LocalesDir)
			if err != nil {
				return err
			}

			handler := api.NewHandler(rt.health, i18nManager, rt.config.Location, rt.logger)
			app := fiber.New(fiber.Config{
				AppName:               "medmind",
				DisableStartupMessage: true,
			})
			app.Use(recover.New())
			app.Use(handler.RequestLogger)
			app.Use(compress.New())
			app.Use(handler.LanguageMiddleware)
			api.RegisterRoutes(app, handler)

			sigCtx, stopSignals := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stopSignals()

			tasks := newBackgroundTasks(sigCtx, rt.logger)
			defer tasks.Stop()
			if err := startBackgroundImports(tasks, rt); err != nil {
				return err
			}

			go func() {
				<-sigCtx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := app.ShutdownWithContext(shutdownCtx); err != nil {
					rt.logger.WithError(err).Error("server shutdown failed")
				}
			}()

			rt.logger.WithFields(logrus.Fields{
				"port": rt.config.Port,
				"db":   rt.config.DBPath,
				"tz":   rt.config.Location.String(),
			}).Info("medmind listening")
			return app.Listen(":" + rt.config.Port)
		},
	}
}

// startBackgroundImports runs the configured drop-directory watcher and queue
// consumer alongside the server.
func startBackgroundImports(tasks *backgroundTasks, rt *runtime) error {
	if rt.config.Import.WatchDir != "" {
		watcher, err := importer.NewWatcher(rt.importer(), rt.config.Import.WatchDir)
		if err != nil {
			return err
		}
		if err := watcher.ImportExisting(); err != nil {
			return err
		}
		tasks.Go("records watcher", watcher.Run)
	}

	if rt.config.Import.AMQPURL != "" {
		tasks.Go("records queue consumer", func(ctx context.Context) error {
			return rt.importer().ConsumeQueue(ctx, rt.config.Import.AMQPURL, rt.config.Import.Queue)
		})
	}
	return nil
}
