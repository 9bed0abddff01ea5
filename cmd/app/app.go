package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/youthopia-api/internal/api"
	v1 "github.com/vietanh2810/youthopia-api/internal/api/handler/v1"
	"github.com/vietanh2810/youthopia-api/internal/config"
	"github.com/vietanh2810/youthopia-api/internal/db"
	"github.com/vietanh2810/youthopia-api/internal/logger"
	"github.com/vietanh2810/youthopia-api/internal/pkg/photostore"
	"github.com/vietanh2810/youthopia-api/internal/repository"
	"github.com/vietanh2810/youthopia-api/internal/repository/dao"
	"github.com/vietanh2810/youthopia-api/internal/service"
	"github.com/vietanh2810/youthopia-api/internal/worker"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	applyLogLevel(conf)
	config.Watch(configPath, applyLogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbURL := os.Getenv("DATABASE_URL")
	var gormDB *gorm.DB
	if dbURL != "" {
		gormDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		gormDB, err = db.Open(conf.Storage)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	hub := v1.NewNotificationHub()
	go hub.Run(ctx)

	repo := repository.NewLedgerRepository(dao.NewLedgerDAO(gormDB))
	ledger, err := service.NewLedgerService(ctx, repo, service.LedgerConfig{
		RequireRegistration: conf.Ledger.RequireRegistration,
		Publisher:           hub,
	})
	if err != nil {
		return fmt.Errorf("failed to load ledger -> %w", err)
	}

	photos, err := photostore.New(ctx, conf.Photos)
	if err != nil {
		return fmt.Errorf("failed to initialize photo store -> %w", err)
	}

	reporter, err := worker.NewStatsReporter(ledger, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize stats reporter -> %w", err)
	}
	if err = reporter.Start(conf.Jobs.StatsInterval); err != nil {
		return fmt.Errorf("failed to start stats reporter -> %w", err)
	}
	defer func() {
		if err := reporter.Shutdown(); err != nil {
			zap.L().Warn("stats reporter shutdown", zap.Error(err))
		}
	}()

	s := api.NewServer(conf, ledger, hub, photos)

	addr := ":" + s.Config.API.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
	case <-ctx.Done():
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err = srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown the server -> %w", err)
		}
	}

	return nil
}

func applyLogLevel(conf *config.AppConfig) {
	if conf.API.LogLevel == "" {
		return
	}
	if err := logger.SetLevel(conf.API.LogLevel); err != nil {
		zap.L().Warn("invalid log level", zap.String("level", conf.API.LogLevel), zap.Error(err))
	}
}
