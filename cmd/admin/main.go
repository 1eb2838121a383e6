package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"shelter-admin/internal/platform/config"
	"shelter-admin/internal/platform/logger"
	"shelter-admin/internal/router"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.New(logger.Options{Level: conf.Logger.Level, App: conf.AppName})

	if conf.Storage.DSN == "" {
		if err := os.MkdirAll(conf.Storage.DataDir, 0o755); err != nil {
			log.Fatalf("data dir error: %v", err)
		}
	}

	r := router.NewRouter(router.Options{Config: conf, Logger: lg})

	addr := conf.Server.Host + ":" + strconv.Itoa(conf.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		lg.Info("starting server", map[string]any{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		lg.Info("shutdown signal received", nil)
	case err := <-serverErr:
		lg.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
	}
}
