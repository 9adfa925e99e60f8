package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wahek/task-list/internal/config"
	"github.com/wahek/task-list/internal/httpapi"
	"github.com/wahek/task-list/internal/observability/jsonlog"
	"github.com/wahek/task-list/internal/store/sqlstore"
	"github.com/wahek/task-list/internal/task"
)

func main() {
	log := jsonlog.New(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", map[string]any{"err": err.Error()})
	}

	store, err := sqlstore.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal("store", map[string]any{"err": err.Error()})
	}
	defer store.Close()

	svc := task.NewService(store)
	handler := httpapi.NewServer(svc, store, log)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", map[string]any{"addr": srv.Addr, "driver": cfg.DBDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", map[string]any{"err": err.Error()})
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown signal received", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", map[string]any{"err": err.Error()})
	}
	log.Info("bye", nil)
}
