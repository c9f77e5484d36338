package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdityasahuX07/Lens-Time/internal"
	"github.com/AdityasahuX07/Lens-Time/internal/api"
	"github.com/AdityasahuX07/Lens-Time/internal/config"
	"github.com/AdityasahuX07/Lens-Time/internal/notify"
	"github.com/AdityasahuX07/Lens-Time/internal/storage"
	"github.com/AdityasahuX07/Lens-Time/internal/timer"
)

func main() {
	cfg := config.Load()
	logger := internal.NewLogger(cfg.Env, cfg.LogLevel)

	if cfg.StorageBackend == "file" {
		if _, err := os.Stat(cfg.DataDir); os.IsNotExist(err) {
			_ = os.Mkdir(cfg.DataDir, 0755)
		}
	}

	repos, err := storage.NewRepositories(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifier, err := buildNotifier(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init notifier: %v", err)
	}

	engine := timer.NewEngine(repos.Timer, repos.Settings, notifier, timer.SystemClock(), logger)
	if err := engine.Restore(ctx); err != nil {
		// Run with a fresh timer; the session history is unaffected.
		logger.Warnf("continuing without recovered timer state: %v", err)
	}
	go engine.Run(ctx)

	app := api.NewApp(logger, repos.Sessions, repos.Settings, engine)
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: api.NewRouter(app, cfg.AuthToken),
	}

	go func() {
		logger.Infof("server running on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	if err := repos.Closer.Close(); err != nil {
		logger.Errorf("storage shutdown: %v", err)
	}
}

func buildNotifier(ctx context.Context, cfg *config.Config, logger internal.Logger) (notify.Notifier, error) {
	if cfg.Notifier == "sns" {
		return notify.NewSNSNotifier(ctx, cfg.SNSRegion, cfg.SNSTopicARN, logger)
	}
	return notify.NewLogNotifier(logger), nil
}
