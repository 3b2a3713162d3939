// Package binding keeps a presentation list in sync with a data provider.
//
// A Binding is the per-component arena: it owns a keymapper.KeyMapper, the rendered
// nodes, a selection.Set and the size-change debouncer. Components build on it and
// add their own rendering rules.
//
// # Rebuild
//
// A rebuild keeps auxiliary nodes (helper slots, empty-selection items), drops every
// bound node, resets the key registry, fetches the window once and renders each item
// in fetch order with a key and its selected flag. The item count becomes the size,
// and a size notification is scheduled for the end of the round trip. Triggers that
// arrive while a rebuild is running are folded into one more pass.
//
// # Change events
//
//   - Invalidate: the selection preservation mode runs first, then a rebuild.
//   - Refresh: only the node showing that item is re-rendered; keys, order and
//     size do not change.
package binding
