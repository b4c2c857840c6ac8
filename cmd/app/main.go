package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catering/cmd"
	cateringhttp "catering/internal/adapters/in/http"
	"catering/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, config, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err = app.CreateLoadStateCommandHandler().Handle(ctx, commands.NewLoadStateCommand()); err != nil {
		log.Fatalf("Failed to load state: %v", err)
	}

	resumed, err := app.ResumePreparation(ctx)
	if err != nil {
		log.Fatalf("Failed to resume preparation: %v", err)
	}
	if resumed > 0 {
		logger.Info("Resumed preparation", "orders", resumed)
	}

	if err = app.JobManager().StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	server, err := newWebServer(ctx, app, config, logger)
	if err != nil {
		log.Fatalf("Failed to build web server: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting web server", "addr", config.Addr(), "store", config.StoreDriver)
		if serveErr := server.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		logger.Error("Web server stopped", "error", err)
	}

	shutdown(app, logger)
}

func newWebServer(ctx context.Context, app *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) (*http.Server, error) {
	doc, err := cateringhttp.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	e, err := cateringhttp.NewRouter(cateringhttp.NewServer(app.CreateHTTPHandlers(), logger), doc, logger)
	if err != nil {
		return nil, err
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: config.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(e)

	return &http.Server{
		Addr:              config.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}, nil
}

// shutdown stops the jobs before the final save, so no timer or cron run
// changes the state after it was written.
func shutdown(app *cmd.CompositionRoot, logger *slog.Logger) {
	app.JobManager().StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.CreateSaveStateCommandHandler().Handle(ctx, commands.NewSaveStateCommand()); err != nil {
		logger.Error("Failed to save state on shutdown", "error", err)
	}
	if err := app.Close(); err != nil {
		logger.Error("Failed to close event publishers", "error", err)
	}

	logger.Info("Stopped")
}
