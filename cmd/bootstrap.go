package cmd

import (
	"context"
	"fmt"

	"asset-picker/core/config"
	"asset-picker/core/database"
	"asset-picker/core/logger"
	"asset-picker/core/storage"
	"asset-picker/feature/catalog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// stack is what every command needs after startup.
type stack struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  storage.Client
}

// bootstrap loads configuration, builds the logger and opens the backends the
// catalog source needs. The database is optional unless the source is database.
func bootstrap() (*stack, error) {
	cfg, err := config.LoadConfig(envDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	rt := &stack{cfg: cfg, logger: logg}

	if cfg.Catalog.Source == "database" {
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			rt.db = conn
			logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))
		}
	}

	if cfg.Catalog.Source == "storage" {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		rt.store = client
	}

	return rt, nil
}

// openCatalog builds the configured source. A database source that cannot be
// opened falls back to the memory source so the server still starts.
func (rt *stack) openCatalog(ctx context.Context) (catalog.Source, error) {
	deps := catalog.Deps{
		DB:      rt.db,
		Storage: rt.store,
		Bucket:  rt.cfg.Storage.Bucket,
		Region:  rt.cfg.Storage.Region,
		Logger:  rt.logger,
	}

	src, err := catalog.NewSource(ctx, rt.cfg.Catalog, deps)
	if err == nil || rt.cfg.Catalog.Source != "database" {
		return src, err
	}

	rt.logger.Warn("Database catalog unavailable, using memory catalog", zap.Error(err))
	fallback := rt.cfg.Catalog
	fallback.Source = "memory"
	return catalog.NewSource(ctx, fallback, deps)
}
