// Package selection holds the selected items of a list-bound component and decides
// what happens to them when the data source is invalidated.
//
// Membership is decided by identity, not reference equality, so a refreshed instance
// of a selected item is still selected.
//
// # Preservation modes
//
//   - Discard: the selection is cleared.
//   - PreserveExisting: identities missing from the fresh window are deselected.
//     The window is scanned once and the scan stops as soon as every selected
//     identity has been found.
//   - PreserveAll: the selection is kept as is, for sources known to only grow.
package selection
