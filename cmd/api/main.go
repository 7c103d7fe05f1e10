package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	"github.com/crealab/invoice-studio/internal/application/contact"
	"github.com/crealab/invoice-studio/internal/application/invoicing"
	"github.com/crealab/invoice-studio/internal/application/preview"
	"github.com/crealab/invoice-studio/internal/infrastructure/localstore"
	"github.com/crealab/invoice-studio/internal/infrastructure/pdf"
	"github.com/crealab/invoice-studio/internal/infrastructure/postgres"
	"github.com/crealab/invoice-studio/internal/infrastructure/proxyfetch"
	httpRouter "github.com/crealab/invoice-studio/internal/interfaces/http"
	"github.com/crealab/invoice-studio/pkg/config"
	"github.com/crealab/invoice-studio/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()

	// Local persistence for the invoice history log.
	fs := afero.NewOsFs()
	if err := fs.MkdirAll(cfg.Store.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Store.DataDir).Msg("create data directory")
	}
	historyStore := localstore.NewHistoryStore(fs, cfg.Store.DataDir, cfg.Store.HistoryCap)

	// Editor session, restored from the most recent export when one exists.
	session := invoicing.NewSession(time.Now())
	historyUC := invoicing.NewHistoryUseCase(historyStore, log)
	historyUC.RestoreLast(session)

	exportPipeline := invoicing.NewExportPipeline(
		historyStore,
		pdf.NewMarotoGenerator(),
		cfg.Export.Timeout(),
		log,
	)

	previewUC := preview.NewUseCase(
		proxyfetch.NewClient(cfg.Preview.Proxies, cfg.Preview.AttemptTimeout(), log),
		log,
	)

	// Contact-form backend. PostgreSQL is only needed here; when the database
	// is unreachable the rest of the editor still runs and the contact routes
	// stay unregistered.
	var contactUC *contact.UseCase
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Warn().Err(err).Msg("PostgreSQL unavailable, contact form disabled")
	} else {
		defer pool.Close()
		contactUC = contact.NewUseCase(postgres.NewContactRepository(pool), log)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    4 * 1024 * 1024,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:   session,
		Export:    exportPipeline,
		HistoryUC: historyUC,
		ContactUC: contactUC,
		PreviewUC: previewUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
