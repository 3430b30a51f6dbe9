package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop/cmd"
	"shop/internal/adapters/out/postgres"
	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := cmd.LoadConfig()
	logger := newLogger(configs.LogLevel)

	gormDB := openDatabase(configs)
	registry := loadRegistry(configs)

	metricsProvider, err := metrics.NewProvider()
	if err != nil {
		log.Fatalf("failed to create metrics provider: %v", err)
	}
	businessMetrics, err := metrics.NewBusinessMetrics(metricsProvider.MeterProvider(), configs.MetricsNamespace)
	if err != nil {
		log.Fatalf("failed to create business metrics: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, registry, businessMetrics, logger)

	publisher := app.CreateNotificationPublisher()
	jobManager := app.CreateJobManager(publisher)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := startWebServer(app, metricsProvider.Handler(), configs.HTTPPort)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	if err = publisher.Close(); err != nil {
		logger.Error("notification publisher close failed", "error", err)
	}
	if err = metricsProvider.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics shutdown failed", "error", err)
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}

func openDatabase(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(configs.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(configs.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(configs.DBConnMaxLifetime)

	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	return gormDB
}

// loadRegistry refuses to start the process on any status configuration error.
func loadRegistry(configs cmd.Config) *status.Registry {
	tieBreak, err := status.ParseTieBreak(configs.RuleTieBreak)
	if err != nil {
		log.Fatalf("invalid RULE_TIE_BREAK: %v", err)
	}

	contributions, err := cmd.LoadStatusContributions(configs.StatusConfigPaths())
	if err != nil {
		log.Fatalf("failed to read status configuration: %v", err)
	}

	registry, err := status.LoadRegistry(contributions, status.WithTieBreak(tieBreak))
	if err != nil {
		log.Fatalf("invalid status configuration: %v", err)
	}
	return registry
}

func startWebServer(app cmd.CompositionRoot, metricsHandler http.Handler, port string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	server := app.CreateHTTPServer(metricsHandler)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()
	return e
}
