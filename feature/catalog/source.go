package catalog

import (
	"context"
	"errors"
	"fmt"

	"asset-picker/core/data"
	"asset-picker/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a reference matches no asset.
	ErrNotFound = errors.New("asset not found")
	// ErrUnsupported is returned for operations a source cannot perform.
	ErrUnsupported = errors.New("operation not supported by this source")
)

// Source is a catalog backend. Components read it as a data provider; the
// catalog endpoints mutate it, which notifies every bound component.
type Source interface {
	data.DataProvider[Asset]
	data.Identifiable[Asset]

	// Kind names the backend (memory, database, storage).
	Kind() string
	// Rename changes an asset's name and sends a Refresh event for it.
	Rename(ctx context.Context, ref, name string) (Asset, error)
	// Delete removes an asset and invalidates listeners.
	Delete(ctx context.Context, ref string) error
	// Reload invalidates listeners, e.g. after the backend changed behind our back.
	Reload(ctx context.Context)
	// Seed writes assets into the backend and returns how many were written.
	Seed(ctx context.Context, assets []Asset) (int, error)
}

// Deps are the optional backends a source may need.
type Deps struct {
	DB      *gorm.DB
	Storage storage.Client
	Bucket  string
	Region  string
	Logger  *zap.Logger
}

// NewSource builds the source named by cfg.Source.
func NewSource(ctx context.Context, cfg Config, deps Deps) (Source, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Source {
	case "", "memory":
		var assets []Asset
		if cfg.SeedFile != "" {
			seed, err := LoadSeed(cfg.SeedFile)
			if err != nil {
				return nil, err
			}
			assets = seed
		}
		logger.Info("Using memory catalog", zap.Int("assets", len(assets)))
		return NewMemorySource(assets), nil

	case "database":
		if deps.DB == nil {
			return nil, fmt.Errorf("catalog source database requires a database connection")
		}
		src, err := NewDatabaseSource(deps.DB)
		if err != nil {
			return nil, err
		}
		logger.Info("Using database catalog")
		return src, nil

	case "storage":
		if deps.Storage == nil {
			return nil, fmt.Errorf("catalog source storage requires a storage client")
		}
		logger.Info("Using storage catalog", zap.String("bucket", deps.Bucket), zap.String("prefix", cfg.Prefix))
		src := NewObjectSource(deps.Storage, deps.Bucket, cfg.Prefix, cfg.Extension)
		src.SetRegion(deps.Region)
		return src, nil

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}
