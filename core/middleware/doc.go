// Package middleware groups the HTTP middleware of the Fiber application.
//
// # Components
//
//   - rayid: tags every request with a RayID. An incoming X-Ray-ID header is kept,
//     otherwise a UUID is generated. The id is stored in the request locals and
//     echoed in the response so logs from one round trip can be correlated.
//   - auth: rejects requests without the configured X-API-Key. An empty key
//     disables the check, which is how local runs and tests use it.
//
// RayID is registered first so that even rejected requests are traceable.
package middleware
