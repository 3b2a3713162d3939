// Package catalog implements the asset catalog that components pick from.
//
// The catalog is a Source: a data provider with a small set of edits. Three
// backends exist:
//  1. memory: a slice seeded from a YAML file.
//  2. database: the assets table, read through GORM.
//  3. storage: objects under a prefix in a MinIO/S3 bucket.
//
// # Change Events
//
// Edits notify every component bound to the source:
//   - Rename sends a Refresh event; components re-render that one entry.
//   - Delete and Reload send an Invalidate event; components rebuild and apply their
//     selection preservation mode.
//
// # HTTP Endpoints
//
//   - GET /catalog : List assets (filter, sort, desc, offset, limit).
//   - PATCH /catalog/:ref : Rename an asset.
//   - DELETE /catalog/:ref : Delete an asset.
//   - POST /catalog/reload : Make every open component refetch.
package catalog
