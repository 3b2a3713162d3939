// Package session models UI sessions: the single owner under whose lock components
// and their bindings are mutated.
//
// Each request touching a session goes through Session.Access, which locks the
// session, runs the request's work, flushes the round-trip queue (so debounced
// notifications such as size changes fire exactly once) and hands back the events
// collected for the response.
//
// Sessions are identified by random UUIDs and kept in a Store. Idle sessions are
// swept after a TTL; closing a session runs its cleanup hooks, which components use
// to drop their data provider subscriptions.
package session
