// Package selectfield implements the single-select field.
//
// Select sits on a binding.Binding in single mode. It can show an empty option,
// kept in the "empty" auxiliary slot and marked selected while nothing is picked,
// plus a placeholder for clients that render a closed field. Picks arrive as keys;
// a key from an earlier rebuild is rejected with ErrUnknownKey, so the client
// refreshes before trying again.
//
// # HTTP Endpoints
//
//   - POST /selects : Open a select over the catalog.
//   - GET /selects/:id : Current state plus buffered events.
//   - PUT /selects/:id/value : Client pick.
//   - POST /selects/:id/query : Change filter, sort or window.
//   - PUT /selects/:id/mode : Change the selection preservation mode.
//   - DELETE /selects/:id : Close the session.
package selectfield
