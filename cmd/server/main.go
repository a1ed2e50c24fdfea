package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"warehouse-route-service/internal/adapters/repositories"
	"warehouse-route-service/internal/api"
	"warehouse-route-service/internal/config"

	"github.com/google/uuid"
)

// main is the application composition root.
// It opens the configured session store behind the port and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	store, err := repositories.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	// Optionally preload a demo session for local runs.
	if err := seedSession(ctx, store, cfg); err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(store)

	log.Printf("Server listening addr=:%s store=%s session_ttl=%s", cfg.Port, store.Driver, cfg.SessionTTL)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func seedSession(ctx context.Context, store *repositories.Store, cfg *config.Config) error {
	if strings.TrimSpace(cfg.SeedSession) == "" {
		return nil
	}

	id, err := uuid.Parse(cfg.SeedSession)
	if err != nil {
		return fmt.Errorf("seed session: SEED_SESSION must be a UUID: %w", err)
	}

	// Reseeding on every start would duplicate rows in persistent stores.
	if err := store.ClearWarehouses(ctx, id.String()); err != nil {
		return fmt.Errorf("seed session: %w", err)
	}

	n, err := repositories.SeedFromJSON(ctx, store, id.String(), cfg.SeedPath)
	if err != nil {
		return fmt.Errorf("seed session: %w", err)
	}

	log.Printf("Seeded session session_id=%s warehouses=%d path=%s", id, n, cfg.SeedPath)
	return nil
}
