package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"folioforge/internal/config"
	"folioforge/internal/db"
	"folioforge/internal/files"
	applog "folioforge/internal/log"
	"folioforge/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		applog.Error(ctx, "invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "error", err)
		os.Exit(1)
	}

	database := db.MustConfigure(cfg.Database)

	store, err := files.NewStore(cfg.Uploads.Dir)
	if err != nil {
		applog.Error(ctx, "failed to prepare upload storage", "error", err)
		os.Exit(1)
	}

	srv, err := server.New(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Auth.Session.Lifetime,
			CookieName:   cfg.Auth.Session.CookieName,
			CookieDomain: cfg.Auth.Session.CookieDomain,
			CookieSecure: cfg.Auth.Session.CookieSecure,
		},
		Database:      database,
		FileStore:     store,
		JWTSecret:     []byte(cfg.Auth.JWTSecret),
		TokenLifetime: cfg.Auth.TokenLifetime,
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		os.Exit(1)
	}

	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	<-sigCh

	applog.Info(ctx, "shutting down http server")
	if err := srv.Stop(); err != nil {
		applog.Error(ctx, "graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
