package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guru-mess-api/internal/api"
	"guru-mess-api/internal/config"
	"guru-mess-api/internal/notify"
	"guru-mess-api/internal/store"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	log.Printf("Using %s submission store", cfg.StoreDriver)

	notifier := buildNotifier(cfg)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: api.NewRouter(st, notifier),
	}

	go func() {
		log.Printf("Server starting on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}
	if err := notifier.Close(); err != nil {
		log.Printf("Error closing notifier: %v", err)
	}
	if err := st.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// buildNotifier always traces to the log and adds NATS when configured. An
// unreachable NATS server is not fatal.
func buildNotifier(cfg *config.Config) notify.Notifier {
	notifiers := notify.Multi{notify.NewLogNotifier(nil)}
	if cfg.NatsURL == "" {
		return notifiers
	}
	natsNotifier, err := notify.NewNatsNotifier(cfg.NatsURL, cfg.NatsSubjectPrefix)
	if err != nil {
		log.Printf("Warning: %v; continuing without NATS", err)
		return notifiers
	}
	return append(notifiers, natsNotifier)
}
