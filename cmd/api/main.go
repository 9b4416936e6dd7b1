package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rescue-passport/internal/adapters/auth/remote"
	"rescue-passport/internal/adapters/eventsink/redisstream"
	pg "rescue-passport/internal/adapters/storage/postgres"
	"rescue-passport/internal/domain/passports"
	"rescue-passport/internal/platform/config"
	"rescue-passport/internal/platform/logger"
	"rescue-passport/internal/ports/auth"
	"rescue-passport/internal/router"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Rescue Passport API
// @version 1.0
// @description Pasaportes de animales rescatados: emisión, transferencia entre cuentas, cambio de nombre e historial.
// @BasePath /
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logger.NewFromStrings("info", "text", "rescue-passport").Error("load config failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.NewFromStrings(cfg.Log.Level, cfg.Log.Format, cfg.Log.App)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDB(cfg.Database, log)
	if err != nil {
		log.Error("database init failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	var sinks []passports.EventSink
	if cfg.Redis.URL != "" {
		rdb, err := redisstream.Open(ctx, cfg.Redis.URL)
		if err != nil {
			log.Error("redis init failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer rdb.Close()

		sinks = append(sinks, redisstream.NewPublisher(rdb, cfg.Redis.Stream, log.With(map[string]any{"module": "redisstream"})))
		log.Info("publishing passport events to redis", map[string]any{"stream": cfg.Redis.Stream})
	}

	verifier, err := newVerifier(cfg.Auth)
	if err != nil {
		log.Error("auth verifier init failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if verifier == nil {
		log.Warn("no auth provider configured, running in dev mode (X-Debug-User-ID)", nil)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Logger:       log,
		ExtraSinks:   sinks,
		Metrics:      reg,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", map[string]any{"error": err.Error()})
		}
	}()

	log.Info("starting server", map[string]any{"addr": cfg.Addr(), "postgres": db != nil})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

// openDB devuelve nil sin DSN (storage in-memory).
func openDB(cfg config.Database, log logger.Logger) (*sql.DB, error) {
	if cfg.DSN == "" {
		log.Info("no DB_DSN, using in-memory storage", nil)
		return nil, nil
	}

	db, err := pg.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.Migrate {
		if err := pg.Migrate(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info("migrations applied", nil)
	}
	return db, nil
}

func newVerifier(cfg config.Auth) (auth.AuthVerifier, error) {
	if cfg.BaseURL == "" {
		return nil, nil
	}

	client, err := remote.NewClient(remote.Config{
		BaseURL:      cfg.BaseURL,
		APIKey:       cfg.APIKey,
		APIKeyHeader: cfg.APIKeyHeader,
		Timeout:      cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return remote.NewVerifier(client), nil
}
