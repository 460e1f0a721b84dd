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

	_ "fulfilment/api"
	"fulfilment/cmd"
	httpadapter "fulfilment/internal/adapters/in/http"
	"fulfilment/internal/adapters/out/redis/warehousecache"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/generated/servers"
	"fulfilment/migrations"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := openDatabase(ctx, configs)
	cache, closeCache := openCache(ctx, configs, logger)
	defer closeCache()

	app := cmd.NewCompositionRoot(configs, gormDB, cache, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, logger)
}

func openDatabase(ctx context.Context, configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error getting database handle: %v", err)
	}
	if err = migrations.Up(ctx, sqlDB); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}

	return gormDB
}

func openCache(ctx context.Context, configs cmd.Config, logger *slog.Logger) (ports.WarehouseCache, func()) {
	if configs.RedisAddr == "" {
		logger.InfoContext(ctx, "Warehouse cache disabled")
		return warehousecache.NoopCache{}, func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	logger.InfoContext(ctx, "Warehouse cache enabled", "addr", configs.RedisAddr, "ttl", configs.WarehouseCacheTTL)

	return warehousecache.NewRedisCache(client, configs.WarehouseCacheTTL), func() {
		_ = client.Close()
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := servers.GetSwagger()
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	validator, err := httpadapter.NewRequestValidator(doc)
	if err != nil {
		log.Fatalf("Error building request validator: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpadapter.HTTPErrorHandler
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	routes := e.Group("", validator)
	servers.RegisterHandlers(routes, app.CreateHTTPServer())

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
