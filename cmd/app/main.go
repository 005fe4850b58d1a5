package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"frangodahora/cmd"
	"frangodahora/internal/adapters/out/postgres"
	"frangodahora/internal/adapters/out/uairango"
	"frangodahora/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to the database", "error", err)
		os.Exit(1)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		logger.Error("Failed to migrate the database", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go root.Hub().Run()
	go root.TaskQueue().Run(ctx)

	jobManager := jobs.NewJobManager(root.SyncHandler(), configs.SyncSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	root.CreateServer().RegisterRoutes(e)

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil {
			logger.Info("HTTP server stopped", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using process environment")
	}

	return cmd.Config{
		HTTPPort:       envOrDefault("HTTP_PORT", "8080"),
		DBHost:         envOrDefault("DB_HOST", "localhost"),
		DBPort:         envOrDefault("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      envOrDefault("DB_SSLMODE", "disable"),
		MarketplaceURL: envOrDefault("MARKETPLACE_URL", uairango.DefaultBaseURL),
		SyncSchedule:   envOrDefault("SYNC_SCHEDULE", "0 */2 * * * *"),
		TaskQueueSize:  envIntOrDefault("TASK_QUEUE_SIZE", 64),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
}
