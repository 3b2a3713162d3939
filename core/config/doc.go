// Package config loads the service configuration.
//
// Values come from the process environment, optionally preceded by a .env file
// (godotenv) in the given directory, and are decoded with viper into Config. Each
// package owns its section struct and declares defaults in `default` tags:
//
//	server    port, api_key
//	log       level, encoding
//	database  driver (mysql, sqlite), host, port, user, password, name
//	storage   endpoint, credentials, bucket, region
//	catalog   source (memory, database, storage), seed_file, prefix, extension
//	ui        selection_mode, page_limit, session_ttl_seconds, sweep_interval_seconds
//
// Environment names are the upper-cased keys with dots as underscores, e.g.
// UI_SELECTION_MODE. LoadConfig validates the selection mode, the catalog source
// and the page limit before returning.
package config
