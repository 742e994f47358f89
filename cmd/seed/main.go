package main

import (
	"context"
	"log"
	"os"

	"calc-catalog/internal/repository"
	"calc-catalog/pkg/config"
	"calc-catalog/pkg/logger"
	"calc-catalog/pkg/postgres"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type options struct {
	file      string
	cacheFile string
	dryRun    bool
	force     bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	flags := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flags.StringVarP(&opts.file, "file", "f", "", "catalog YAML file (default: embedded catalog)")
	flags.StringVar(&opts.cacheFile, "cache", ".seed_cache.json", "seed cache file, empty to disable")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "validate and log the catalog without writing")
	flags.BoolVar(&opts.force, "force", false, "seed even if the catalog is unchanged since the last run")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to parse flags: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if opts.file == "" {
		opts.file = cfg.Catalog.File
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()

	plan, err := planSeed(opts, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to prepare catalog", zap.Error(err))
	}
	if plan == nil {
		return
	}

	if opts.dryRun {
		for _, tool := range plan.catalog.All() {
			appLogger.Info("Would seed tool",
				zap.String("category", string(tool.Category)),
				zap.String("slug", tool.Slug),
				zap.Strings("tags", tool.Tags),
			)
		}
		appLogger.Info("Dry run complete", zap.Int("tools", plan.catalog.Len()))
		return
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repo := repository.NewToolRepository(db, appLogger)
	if err := repo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to prepare schema", zap.Error(err))
	}
	if err := repo.UpsertBatch(ctx, plan.catalog.All()); err != nil {
		appLogger.Fatal("Failed to seed catalog", zap.Error(err))
	}

	if err := plan.commit(); err != nil {
		appLogger.Warn("Failed to save seed cache", zap.Error(err))
	}

	appLogger.Info("Catalog seeding completed", zap.Int("tools", plan.catalog.Len()))
}
