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

	"bellavista/internal/config"
	"bellavista/internal/contact"
	"bellavista/internal/db"
	"bellavista/internal/logger"
	"bellavista/internal/menu"
	"bellavista/internal/notify"
	"bellavista/internal/router"
	"bellavista/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bellavista:", err)
		os.Exit(1)
	}
}

func run() error {
	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── STORES ─────────────────────────
	seed, err := menu.DefaultSeed()
	if err != nil {
		return fmt.Errorf("load menu seed: %w", err)
	}

	var (
		menuRepo menu.Repository
		store    contact.Store
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return err
		}
		defer pool.Close()

		pgMenu := menu.NewPostgresRepository(pool)
		if err := pgMenu.Seed(ctx, seed); err != nil {
			return fmt.Errorf("seed menu: %w", err)
		}
		menuRepo = pgMenu
		store = contact.NewPostgresStore(pool)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory storage")
		memMenu, err := menu.NewInMemoryRepository(seed)
		if err != nil {
			return fmt.Errorf("build menu catalog: %w", err)
		}
		menuRepo = memMenu
		store = contact.NewInMemoryStore()
	}

	// ───────────────────────── SIDE EFFECTS ─────────────────────────
	var notifier contact.Notifier
	if cfg.Telegram.Enabled() {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			return fmt.Errorf("init telegram: %w", err)
		}
		notifier = tg
		log.Info("telegram notifications enabled", zap.Int64("chat_id", cfg.Telegram.ChatID))
	}

	var archiver contact.Archiver
	if cfg.R2.Enabled() {
		r2, err := storage.NewR2Client(ctx, cfg.R2)
		if err != nil {
			return fmt.Errorf("init r2: %w", err)
		}
		archiver = r2
		log.Info("submission archive enabled", zap.String("bucket", cfg.R2.Bucket))
	}

	// ───────────────────────── HTTP ─────────────────────────
	r := router.NewRouter(router.Deps{
		Menu:        menu.NewService(menuRepo),
		Contacts:    contact.NewService(store, notifier, archiver, log),
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
