package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tasktracker/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "tasktracker/internal/adapter/db"
	httpadapter "tasktracker/internal/adapter/http"
	"tasktracker/internal/adapter/http/handlers"
	"tasktracker/internal/adapter/http/relay"
	"tasktracker/internal/app/service"
	"tasktracker/internal/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.DbMigrate {
		if err := dbadapter.Migrate(ctx, db); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	taskRepository := dbadapter.NewTaskRepository(db, cfg.DbQueryTimeout)
	taskService := service.NewTaskService(taskRepository)
	formRelay := relay.New(relay.NewMemoryStore(cfg.RelayTTL), cfg.SessionCookieSecure)

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskService, formRelay, cfg.IsTest())

	r, err := httpadapter.NewRouter(logger, cfg.TrustedProxies, healthHandler, taskHandler)
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           httpadapter.Handler(r),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDev() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
