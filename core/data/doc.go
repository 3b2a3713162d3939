// Package data defines the item source contract consumed by list-bound components.
//
// A DataProvider hands out items through a single forward pass (Fetch) and notifies
// subscribers about changes (AddListener). Two kinds of change exist:
//
//   - Refresh: one known item changed its content; its identity did not change.
//   - Invalidate: anything may have changed (filter, sort, dataset swap).
//
// Subscriptions are explicit Registration values. Disposing one and subscribing again
// is how a component switches to a new source without leaking listeners.
//
// # Providers
//
//   - ListProvider: in-memory slice with optional filter matcher and sort comparators.
//   - GormProvider: streams rows of a GORM model, pushing filter/sort/window down to SQL.
//   - ObjectProvider: streams an object store listing and decodes each object into an item.
//
// # Identity
//
// Items are compared through an Identifier. Providers implementing Identifiable supply
// the default one; ItemIdentity (the item itself) is the fallback.
package data
