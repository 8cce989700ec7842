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

	"orderflow/cmd"
	"orderflow/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var gormDB *gorm.DB
	if configs.UsesPostgres() {
		db, err := postgres.Open(configs.DSN())
		if err != nil {
			log.Fatalf("Error connecting to database: %v", err)
		}
		if err = postgres.Migrate(db); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}
		gormDB = db
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to close application", "error", closeErr)
		}
	}()

	jobManager := app.NewJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = runWebServer(ctx, app, configs.HTTPPort, logger); err != nil {
		logger.Error("Web server stopped with error", "error", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:                     os.Getenv("HTTP_PORT"),
		DBHost:                       os.Getenv("DB_HOST"),
		DBPort:                       os.Getenv("DB_PORT"),
		DBUser:                       os.Getenv("DB_USER"),
		DBPassword:                   os.Getenv("DB_PASSWORD"),
		DBName:                       os.Getenv("DB_NAME"),
		DBSslMode:                    os.Getenv("DB_SSLMODE"),
		KafkaHost:                    os.Getenv("KAFKA_HOST"),
		KafkaOrderNotificationsTopic: os.Getenv("KAFKA_ORDER_NOTIFICATIONS_TOPIC"),
		SweepSchedule:                os.Getenv("SWEEP_SCHEDULE"),
		LowStockSchedule:             os.Getenv("LOW_STOCK_SCHEDULE"),
		PrepaymentGracePeriod:        os.Getenv("PREPAYMENT_GRACE_PERIOD"),
		ConsumptionMaterialID:        os.Getenv("CONSUMPTION_MATERIAL_ID"),
		YieldProductCoefficients:     os.Getenv("YIELD_PRODUCT_COEFFICIENTS"),
		YieldMaterialDefectRates:     os.Getenv("YIELD_MATERIAL_DEFECT_RATES"),
	}
	return config.WithDefaults()
}

func runWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	if err := app.NewServer().Register(e); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
