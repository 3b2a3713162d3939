// Package database handles database connections and schema inspection.
//
// It wraps GORM and opens MySQL or SQLite connections from the application's
// configuration. SQLite is meant for local runs and tests.
//
// # Connect
//
// Connect establishes the connection and pings it within the configured timeout.
// The catalog treats the database as optional: when Connect fails the server
// keeps running on the in-memory source.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns for both dialects. RequireColumns is used
// before a table is bound as a catalog source, so that a schema mismatch is reported
// at startup instead of on the first fetch.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database unavailable", zap.Error(err))
//	}
//
//	err = database.RequireColumns(db, "assets", "id", "name")
package database
