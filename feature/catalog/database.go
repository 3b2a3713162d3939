package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"asset-picker/core/data"
	"asset-picker/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DatabaseSource reads the catalog from the assets table.
type DatabaseSource struct {
	*data.GormProvider[Asset]
	db *gorm.DB
}

// NewDatabaseSource binds the assets table. The table must already exist;
// `catalog seed` creates it.
func NewDatabaseSource(db *gorm.DB) (*DatabaseSource, error) {
	if err := database.RequireColumns(db, Asset{}.TableName(), "id", "name", "category", "object_key"); err != nil {
		return nil, fmt.Errorf("assets table not usable: %w", err)
	}
	return newDatabaseSource(db), nil
}

func newDatabaseSource(db *gorm.DB) *DatabaseSource {
	return &DatabaseSource{
		GormProvider: data.NewGormProvider(db, data.GormOptions[Asset]{
			FilterColumn: "name",
			DefaultSort:  "id",
			ID:           AssetID,
		}),
		db: db,
	}
}

// Kind implements Source.
func (s *DatabaseSource) Kind() string {
	return "database"
}

func (s *DatabaseSource) load(ctx context.Context, ref string) (Asset, error) {
	id, err := strconv.ParseUint(ref, 10, 64)
	if err != nil {
		return Asset{}, ErrNotFound
	}
	var a Asset
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Asset{}, ErrNotFound
		}
		return Asset{}, fmt.Errorf("failed to load asset: %w", err)
	}
	return a, nil
}

// Rename implements Source.
func (s *DatabaseSource) Rename(ctx context.Context, ref, name string) (Asset, error) {
	a, err := s.load(ctx, ref)
	if err != nil {
		return Asset{}, err
	}
	if err := s.db.WithContext(ctx).Model(&a).Update("name", name).Error; err != nil {
		return Asset{}, fmt.Errorf("failed to rename asset: %w", err)
	}
	a.Name = name
	s.RefreshItem(ctx, a)
	return a, nil
}

// Delete implements Source.
func (s *DatabaseSource) Delete(ctx context.Context, ref string) error {
	a, err := s.load(ctx, ref)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&a).Error; err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	s.RefreshAll(ctx)
	return nil
}

// Reload implements Source.
func (s *DatabaseSource) Reload(ctx context.Context) {
	s.RefreshAll(ctx)
}

// Seed implements Source. It creates the table when needed and upserts by id.
func (s *DatabaseSource) Seed(ctx context.Context, assets []Asset) (int, error) {
	if len(assets) == 0 {
		return 0, nil
	}
	tx := s.db.WithContext(ctx)
	if err := tx.AutoMigrate(&Asset{}); err != nil {
		return 0, fmt.Errorf("failed to migrate assets table: %w", err)
	}
	if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&assets).Error; err != nil {
		return 0, fmt.Errorf("failed to seed assets: %w", err)
	}
	s.RefreshAll(ctx)
	return len(assets), nil
}

// SeedDatabase creates the assets table and writes assets into it.
func SeedDatabase(ctx context.Context, db *gorm.DB, assets []Asset) (int, error) {
	return newDatabaseSource(db).Seed(ctx, assets)
}
