package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"driverapi/cmd"
	driverhttp "driverapi/internal/adapters/in/http"
	"driverapi/internal/adapters/out/postgres/evidencerepo"
	"driverapi/internal/adapters/out/postgres/remittancerepo"
	"driverapi/internal/adapters/out/postgres/schema"
	"driverapi/internal/adapters/out/rabbitmq"
	"driverapi/internal/core/ports"
	"driverapi/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

const (
	amqpDialAttempts   = 5
	amqpPublishTimeout = 5 * time.Second
	shutdownTimeout    = 10 * time.Second
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, sqlDB := mustGormOpen(configs)
	defer sqlDB.Close()

	registry := schema.NewRegistry(mustProbe(ctx, gormDB, configs.DBAutoMigrate))
	metrics.Register()

	publisher, closePublisher := newPublisher(configs, logger)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, sqlDB, registry, publisher, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	docs, err := driverhttp.LoadAPIDocs(ctx)
	if err != nil {
		log.Fatalf("failed to load API docs: %v", err)
	}

	startWebServer(ctx, app, docs, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return config
}

func mustGormOpen(config cmd.Config) (*gorm.DB, *sql.DB) {
	gormDB, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(config.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(config.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.DBConnMaxLifetime)

	return gormDB, sqlDB
}

// mustProbe optionally creates the tables this service owns, then reads the
// capabilities of the shared schema.
func mustProbe(ctx context.Context, gormDB *gorm.DB, autoMigrate bool) schema.Capabilities {
	if autoMigrate {
		models := append(evidencerepo.Models(), &remittancerepo.RemittanceDTO{})
		if err := gormDB.WithContext(ctx).AutoMigrate(models...); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	caps, err := schema.Probe(ctx, gormDB)
	if err != nil {
		log.Fatalf("failed to probe schema: %v", err)
	}
	return caps
}

func newPublisher(config cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if config.AMQPURL == "" {
		logger.Info("AMQP_URL not set, order events are not published")
		return rabbitmq.Noop{}, func() {}
	}

	conn, err := rabbitmq.Dial(config.AMQPURL, amqpDialAttempts, logger)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}

	publisher, err := rabbitmq.NewPublisher(conn.Channel, config.AMQPExchange, amqpPublishTimeout)
	if err != nil {
		_ = conn.Close()
		log.Fatalf("failed to create publisher: %v", err)
	}

	return publisher, func() { _ = conn.Close() }
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, docs *driverhttp.APIDocs, port string, logger *slog.Logger) {
	e := app.CreateRouter(docs)

	go func() {
		logger.Info("HTTP server started", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
