package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"fitstack/internal/config"
	"fitstack/internal/repository/docstore"
	"fitstack/internal/seed"
	"fitstack/internal/store"
	"fitstack/internal/store/firestore"
	"fitstack/internal/store/postgres"
)

func main() {
	confirmProd := flag.Bool("confirm-prod", false, "Allow re-seeding the production environment")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg := config.Load()

	// Seeding replaces region documents whole; require an explicit opt-in
	// before touching prod.
	if cfg.Environment == "prod" && !*confirmProd {
		log.Fatalf("refusing to seed prod without -confirm-prod")
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	repoCfg := &docstore.RepositoryConfig{
		Store:       st,
		Collections: docstore.NewCollectionNames(cfg.CollectionPrefix),
		Logger:      logger,
	}

	seeder := seed.NewStretchSeeder(docstore.NewStretchRegionRepository(repoCfg), logger)
	if err := seeder.Run(ctx); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	logger.Info("seed complete",
		"environment", cfg.Environment,
		"backend", cfg.StoreBackend,
		"prefix", cfg.CollectionPrefix)
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		return postgres.New(ctx, cfg.DatabaseURL)
	default:
		var opts []option.ClientOption
		if cfg.FirestoreCredentials != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.FirestoreCredentials))
		}
		return firestore.New(ctx, cfg.FirestoreProjectID, opts...)
	}
}
