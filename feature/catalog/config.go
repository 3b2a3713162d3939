package catalog

// Config selects and shapes the catalog source.
type Config struct {
	// Source is where assets are read from (memory, database, storage).
	Source string `mapstructure:"source" default:"memory"`
	// SeedFile is a YAML file loaded into the memory source at startup.
	SeedFile string `mapstructure:"seed_file" default:""`
	// Prefix is the object key prefix of the storage source.
	Prefix string `mapstructure:"prefix" default:"assets/"`
	// Extension is the object suffix that marks an asset in the storage source.
	Extension string `mapstructure:"extension" default:".png"`
}
