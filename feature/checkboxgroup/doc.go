// Package checkboxgroup implements the multi-select checkbox group.
//
// Group is generic over the item type and sits on a binding.Binding. It adds label,
// helper and enabled generators, a group helper text kept in the "helper" auxiliary
// slot, and read-only mode. Client updates carry the full set of checked keys; keys
// from an earlier rebuild are skipped, and disabled items keep their state.
//
// # HTTP Endpoints
//
// Each group lives in its own session, addressed by the session id:
//   - POST /checkbox-groups : Open a group over the catalog.
//   - GET /checkbox-groups/:id : Current state plus buffered events.
//   - PUT /checkbox-groups/:id/value : Client value change.
//   - POST /checkbox-groups/:id/query : Change filter, sort or window.
//   - PUT /checkbox-groups/:id/mode : Change the selection preservation mode.
//   - DELETE /checkbox-groups/:id : Close the session.
//
// Every response carries the events of its round trip (value-change, size-change).
package checkboxgroup
