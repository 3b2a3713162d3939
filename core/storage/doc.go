// Package storage is the object store behind the storage catalog source.
//
// Client is the slice of the MinIO API the catalog needs: listing objects under
// a prefix, writing placeholder objects when seeding, removing objects and making
// sure the bucket exists. NewClient builds a minio-go client with bounded dial,
// TLS and header timeouts; the endpoint may carry an http(s) scheme, which is
// stripped. EnsureBucket creates the bucket on first use.
//
// core/storage/mocks holds a testify mock of Client together with Listing, a
// cancellable fake listing.
package storage
