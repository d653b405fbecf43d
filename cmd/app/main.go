package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodorder/cmd"
	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("service stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// a missing .env is fine, the variables may come from the real environment
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	config, err := cmd.LoadConfig(os.LookupEnv)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := cmd.NewLogger(config, os.Stdout)
	slog.SetDefault(log)

	db, err := openDatabase(config)
	if err != nil {
		return err
	}

	if config.DBAutoMigrate {
		if err = postgres.Migrate(db); err != nil {
			return err
		}
		log.Info("schema migrated")
	}

	app, err := cmd.NewCompositionRoot(config, db, log)
	if err != nil {
		return err
	}

	return startWebServer(app, config, log)
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(config.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(config.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.DBConnMaxLifetime)

	return db, nil
}

func startWebServer(app cmd.CompositionRoot, config cmd.Config, log *slog.Logger) error {
	e, err := httpin.NewRouter(app.CreateHTTPServer(), httpin.RouterConfig{
		AdminToken: config.AdminAPIToken,
		Logger:     log,
	})
	if err != nil {
		return err
	}
	if config.AdminAPIToken == "" {
		log.Warn("ADMIN_API_TOKEN is empty, staff endpoints are open")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "port", config.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%d", config.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}
