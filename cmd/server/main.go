package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Angger-Raka/aplikasi-absensi/config"
	"github.com/Angger-Raka/aplikasi-absensi/internal/api/handler"
	"github.com/Angger-Raka/aplikasi-absensi/internal/api/router"
	"github.com/Angger-Raka/aplikasi-absensi/internal/repository"
	"github.com/Angger-Raka/aplikasi-absensi/internal/service"
	"github.com/Angger-Raka/aplikasi-absensi/pkg/database"
	applogger "github.com/Angger-Raka/aplikasi-absensi/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// 1. config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting attendance service",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database: the service cannot run without it
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.RunMigrations(db, cfg.Database.Driver, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// 4. import lock (Redis optional, degrades to in-process)
	locker, closeLocker := service.NewDateLockerFromConfig(cfg, logger)
	defer closeLocker()

	// 5. Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, locker, logger)
	h := handler.NewHandler(svc)

	// 6. routes
	engine := router.Setup(cfg, h, logger)

	// 7. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}
