package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout of a catalog seed.
//
//	assets:
//	  - id: 1
//	    name: chair
//	    category: furniture
type SeedFile struct {
	Assets []Asset `yaml:"assets"`
}

// LoadSeed reads a seed file.
func LoadSeed(filename string) ([]Asset, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(raw)
}

// ParseSeed decodes seed YAML and rejects unnamed assets.
func ParseSeed(raw []byte) ([]Asset, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	for i, a := range seed.Assets {
		if a.Name == "" {
			return nil, fmt.Errorf("seed asset %d has no name", i)
		}
	}
	return seed.Assets, nil
}
