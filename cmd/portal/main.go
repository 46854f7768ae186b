package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fxdesk/portal/internal/config"
	"github.com/fxdesk/portal/internal/database"
	"github.com/fxdesk/portal/internal/quote"
	"github.com/fxdesk/portal/internal/rates"
	"github.com/fxdesk/portal/internal/server"
	"github.com/fxdesk/portal/internal/store"
	"github.com/fxdesk/portal/internal/trade"
	"github.com/fxdesk/portal/pkg/clock"
	"github.com/fxdesk/portal/pkg/logger"
)

// @title FX Trading Portal API
// @version 1.0
// @description Educational two-step FX workflow: request a quote, then book a trade against it.
// @BasePath /api
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	// Without a DSN the portal runs on the in-memory stores, which is
	// enough for local demos.
	var (
		stores store.Stores
		ping   func() error
	)
	if cfg.Database.DSN != "" {
		db, err := database.NewPostgresDB(
			cfg.Database.DSN,
			cfg.Database.MaxOpenConns,
			cfg.Database.MaxIdleConns,
			cfg.Database.ConnMaxLifetime,
		)
		if err != nil {
			zapLogger.Fatal("failed to connect to database", zap.Error(err))
		}
		if err := database.Migrate(db); err != nil {
			zapLogger.Fatal("failed to migrate schema", zap.Error(err))
		}
		stores = store.NewGormStores(db)
		ping = func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Ping()
		}
		zapLogger.Info("connected to postgres")
	} else {
		stores = store.NewMemoryStores()
		zapLogger.Warn("no database DSN configured, using in-memory stores")
	}

	clk := clock.New()
	rateSource := rates.NewSimulated(cfg.Rates.Seed)

	quoteSvc := quote.NewService(zapLogger, clk, rateSource, stores, cfg.Quote.TTL)
	tradeSvc := trade.NewService(zapLogger, clk, stores)

	srv := server.New(zapLogger, quoteSvc, tradeSvc, ping)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Engine(),
	}

	go func() {
		zapLogger.Info("starting API server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("API server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		zapLogger.Error("forced shutdown", zap.Error(err))
	}

	zapLogger.Info("server exited")
}
