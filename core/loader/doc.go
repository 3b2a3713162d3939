// Package loader wires features into the Fiber application.
//
// A feature is a self-contained slice of the HTTP surface (catalog, checkboxgroup,
// selectfield) that knows its name, whether the configuration enables it, and how
// to mount its routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager keeps features in registration order. LoadAll mounts the enabled ones,
// logs the skipped ones and stops at the first feature that fails to load.
package loader
