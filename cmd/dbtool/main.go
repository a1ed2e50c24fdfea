package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"warehouse-route-service/internal/adapters/repositories"
	"warehouse-route-service/internal/config"

	"github.com/google/uuid"
)

// dbtool prepares a session store: it creates the schema (on open), optionally
// seeds a session from JSON and optionally purges expired sessions.
func main() {
	session := flag.String("session", "", "session id to seed (defaults to SEED_SESSION, or a new UUID)")
	seed := flag.Bool("seed", true, "seed the session from SEED_PATH")
	purge := flag.Bool("purge", false, "delete expired session rows")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.StoreDriver == config.DriverMemory {
		log.Fatal("dbtool needs a persistent STORE_DRIVER (redis, postgres or sqlite)")
	}

	ctx := context.Background()

	log.Printf("Opening %s store and initializing schema...", cfg.StoreDriver)
	store, err := repositories.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store initialization failed: %v", err)
	}
	defer store.Close()
	log.Println("Store ready.")

	if *purge {
		n, err := store.PurgeExpired(ctx)
		if err != nil {
			log.Fatalf("purge failed: %v", err)
		}
		log.Printf("Purged expired rows: %d", n)
	}

	if !*seed {
		return
	}

	id := strings.TrimSpace(*session)
	if id == "" {
		id = strings.TrimSpace(cfg.SeedSession)
	}
	if id == "" {
		id = uuid.NewString()
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		log.Fatalf("invalid session id %q: %v", id, err)
	}

	log.Printf("Seeding session %s from %s...", parsed, cfg.SeedPath)
	if err := store.ClearWarehouses(ctx, parsed.String()); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	n, err := repositories.SeedFromJSON(ctx, store, parsed.String(), cfg.SeedPath)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete: session_id=%s warehouses=%d", parsed, n)
}
