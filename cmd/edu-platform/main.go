package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-edu-platform/internal/cache"
	"github.com/pribylovaa/go-edu-platform/internal/config"
	eduhttp "github.com/pribylovaa/go-edu-platform/internal/http"
	"github.com/pribylovaa/go-edu-platform/internal/mail"
	"github.com/pribylovaa/go-edu-platform/internal/service"
	"github.com/pribylovaa/go-edu-platform/internal/storage"
	"github.com/pribylovaa/go-edu-platform/internal/storage/memory"
	"github.com/pribylovaa/go-edu-platform/internal/storage/postgres"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting application", "env", cfg.Env)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// Хранилище: postgres или in-memory (локальный режим без БД).
	var str storage.Storage
	if cfg.DB.DatabaseURL != "" {
		dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
		pg, err := postgres.New(dbCtx, cfg.DB.DatabaseURL)
		dbCancel()
		if err != nil {
			log.Error("postgres_connect_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		str = pg
		log.Info("postgres_connected")
	} else {
		str = memory.New()
		log.Warn("using_inmemory_storage")
	}
	defer str.Close()

	// Почта: SMTP или лог (локальный режим без SMTP).
	var mailer mail.Mailer
	if cfg.SMTP.Host != "" {
		m, err := mail.NewSMTP(cfg.SMTP)
		if err != nil {
			log.Error("smtp_init_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		mailer = m
		log.Info("smtp_initialized", slog.String("host", cfg.SMTP.Host))
	} else {
		mailer = mail.NewLog()
		log.Warn("using_log_mailer")
	}

	// Сервис.
	srvc := service.New(str, *cfg, mailer)

	// Опциональный реестр активных refresh-токенов (hardened-режим).
	if cfg.Redis.RedisURL != "" {
		register, err := cache.NewRedisRegister(cfg.Redis.RedisURL, "auth:rt:")
		if err != nil {
			log.Error("redis_connect_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		defer func() { _ = register.Close() }()

		srvc.SetRefreshRegister(register)
		log.Info("refresh_register_enabled")
	}

	log.Info("service_initialized")

	// Фоновая очистка просроченных reset-челленджей.
	startResetJanitor(rootCtx, str, log, 30*time.Minute)

	apiHandler := eduhttp.NewRouter(srvc, eduhttp.Options{
		Logger:         log,
		Timeout:        cfg.Timeouts.Service,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		SecureCookies:  cfg.Env == envProd,
		RefreshMaxAge:  cfg.Auth.RefreshTokenTTL,
	})

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// startResetJanitor запускает фоновую задачу, которая периодически гасит
// просроченные reset-челленджи в хранилище.
func startResetJanitor(ctx context.Context, str storage.Storage, log *slog.Logger, period time.Duration) {
	if period <= 0 {
		return
	}

	go func() {
		t := time.NewTicker(period)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := str.ClearExpiredResetTokens(ctx, time.Now().UTC()); err != nil {
					log.Error("reset_janitor_failed", slog.String("err", err.Error()))
				}
			}
		}
	}()
}
