package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"asset-picker/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewSource(t *testing.T) {
	ctx := context.Background()
	seed := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(seedYAML), 0o644))

	t.Run("Memory", func(t *testing.T) {
		src, err := NewSource(ctx, Config{Source: "memory", SeedFile: seed}, Deps{Logger: zap.NewNop()})
		require.NoError(t, err)
		assert.Equal(t, "memory", src.Kind())
		assert.Len(t, src.(*MemorySource).Items(), 2)
	})

	t.Run("MemoryBadSeed", func(t *testing.T) {
		_, err := NewSource(ctx, Config{SeedFile: filepath.Join(t.TempDir(), "nope.yaml")}, Deps{})
		assert.Error(t, err)
	})

	t.Run("DatabaseWithoutConnection", func(t *testing.T) {
		_, err := NewSource(ctx, Config{Source: "database"}, Deps{})
		assert.ErrorContains(t, err, "requires a database connection")
	})

	t.Run("Database", func(t *testing.T) {
		db := setupDB(t)
		_, err := SeedDatabase(ctx, db, []Asset{{Name: "chair"}})
		require.NoError(t, err)

		src, err := NewSource(ctx, Config{Source: "database"}, Deps{DB: db})
		require.NoError(t, err)
		assert.Equal(t, "database", src.Kind())
	})

	t.Run("StorageWithoutClient", func(t *testing.T) {
		_, err := NewSource(ctx, Config{Source: "storage"}, Deps{})
		assert.ErrorContains(t, err, "requires a storage client")
	})

	t.Run("Storage", func(t *testing.T) {
		src, err := NewSource(ctx, Config{Source: "storage", Prefix: "assets/", Extension: ".png"}, Deps{Storage: new(mocks.Client), Bucket: "b"})
		require.NoError(t, err)
		assert.Equal(t, "storage", src.Kind())
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := NewSource(ctx, Config{Source: "ftp"}, Deps{})
		assert.EqualError(t, err, `unknown catalog source "ftp"`)
	})
}
