package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"asset-picker/core/database"
	"asset-picker/core/logger"
	"asset-picker/core/selection"
	"asset-picker/core/server"
	"asset-picker/core/session"
	"asset-picker/core/storage"
	"asset-picker/feature/catalog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var catalogSources = []string{"memory", "database", "storage"}

// Config holds all configuration of the picker service, one section per package.
type Config struct {
	// Server holds the listen port and API key.
	Server server.Config `mapstructure:"server"`
	// Storage holds the MinIO/S3 connection used by the storage catalog.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds the connection used by the database catalog.
	Database database.Config `mapstructure:"database"`
	// Catalog selects where the pickable assets come from.
	Catalog catalog.Config `mapstructure:"catalog"`
	// UI holds session and component defaults.
	UI session.Config `mapstructure:"ui"`
}

// LoadConfig reads dir/.env when present, then the environment, and validates
// the result.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	bindDefaults(v, reflect.TypeOf(Config{}), "")

	// UI_SELECTION_MODE -> ui.selection_mode
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values that would only fail later, at first use.
func (c *Config) Validate() error {
	if _, err := selection.ParseMode(c.UI.SelectionMode); err != nil {
		return fmt.Errorf("invalid ui.selection_mode: %w", err)
	}
	if c.Catalog.Source != "" && !slices.Contains(catalogSources, c.Catalog.Source) {
		return fmt.Errorf("invalid catalog.source %q (want one of %s)", c.Catalog.Source, strings.Join(catalogSources, ", "))
	}
	if c.UI.PageLimit < 0 {
		return fmt.Errorf("invalid ui.page_limit %d", c.UI.PageLimit)
	}
	return nil
}

// bindDefaults walks the struct tags and registers every leaf key with its
// `default` value. Keys without a default are registered too, otherwise
// AutomaticEnv never sees them during Unmarshal.
func bindDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		if field.Type.Kind() == reflect.Struct {
			bindDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
