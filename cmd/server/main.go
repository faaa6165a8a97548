package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"purebiz_laundry_go/config"
	"purebiz_laundry_go/handlers"
	"purebiz_laundry_go/logging"
	"purebiz_laundry_go/middleware"
	"purebiz_laundry_go/services"
	"purebiz_laundry_go/services/i18n"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.DotEnvLoaded {
		logger.Info("no .env file found, using environment variables")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	counts, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}
	logger.Debug("translations loaded", zap.Any("keys", counts))

	mailer, err := services.NewMailer(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize mailer: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := services.NewCatalog()
	carousel := services.NewCarousel(len(catalog.Testimonials()), cfg.CarouselInterval)
	carousel.Start(ctx)
	defer carousel.Stop()

	h := handlers.NewHandlers(services.NewRelay(mailer, cfg.BusinessEmail, logger), catalog, carousel, logger)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Recover(logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Accept-Language"},
	}))
	e.Use(middleware.Locale(cfg))

	h.Register(e)
	mountStatic(e, cfg.StaticDir, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.ServerPort),
			zap.String("environment", cfg.Environment),
			zap.Bool("email_test_mode", cfg.EmailTestMode),
		)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// mountStatic serves the built client from dir when it exists
func mountStatic(e *echo.Echo, dir string, logger *zap.Logger) {
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		logger.Info("no client bundle found, serving API only", zap.String("static_dir", dir))
		return
	}
	e.Static("/static", filepath.Join(dir, "static"))
	e.File("/", index)
}
