package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"doctors/config"
	_ "doctors/docs"
	"doctors/internal/i18n"
	"doctors/internal/metrics"
	"doctors/internal/repository"
	"doctors/internal/service"
	"doctors/internal/transport/rest"
	"doctors/pkg/database"
	"doctors/pkg/logger"
	"doctors/pkg/validator"
)

// @title Doctors Directory API
// @version 1.0
// @description Directory of doctors with their categories and districts.
// @BasePath /
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	repos, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to open store", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closeStore()

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		log.Fatal("failed to load locale catalogs", zap.Error(err))
	}

	resolver, err := i18n.NewResolver(bundle, cfg.I18n.DefaultLocale)
	if err != nil {
		log.Fatal("failed to init locale resolver", zap.Error(err))
	}

	m := metrics.New()

	services := service.NewServices(service.Deps{
		Repos:     repos,
		Logger:    log,
		Config:    cfg,
		Resolver:  resolver,
		Metrics:   m,
		Validator: validator.New(),
	})

	if cfg.SeedFile != "" {
		if _, err := services.Seeder.SeedFile(ctx, cfg.SeedFile); err != nil {
			log.Fatal("failed to seed store", zap.String("file", cfg.SeedFile), zap.Error(err))
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handler := rest.NewHandler(services, log, cfg, resolver, m)
	handler.InitRoutes(router)

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	log.Info("server started",
		zap.String("addr", srv.Addr),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("version", cfg.Version),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
		return
	}

	log.Info("server stopped")
}

// openStore connects the configured backend and brings its schema up to date.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*repository.Repositories, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverSQLite:
		db, err := database.NewSQLiteDB(cfg.SQLite.DSN, log)
		if err != nil {
			return nil, nil, err
		}
		if err := repository.MigrateSQLite(db); err != nil {
			return nil, nil, err
		}

		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repository.NewSQLiteRepositories(db), closeFn, nil

	default:
		pool, err := database.NewPostgresDB(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}

		log.Info("running database migrations", zap.String("dir", cfg.Storage.MigrationsDir))
		if err := database.RunMigrations(ctx, pool, cfg.Storage.MigrationsDir, log); err != nil {
			pool.Close()
			return nil, nil, err
		}

		return repository.NewRepositories(pool), pool.Close, nil
	}
}
