package binding

import "asset-picker/core/selection"

// Selected returns the selected items in selection order.
func (b *Binding[T]) Selected() []T {
	return b.selection.Items()
}

// IsSelected reports whether an item with item's identity is selected.
func (b *Binding[T]) IsSelected(item T) bool {
	return b.selection.Contains(item)
}

// Select adds items to the selection. In single mode the last item wins.
func (b *Binding[T]) Select(items ...T) {
	if len(items) == 0 {
		return
	}
	b.update(false, func() bool {
		if b.single {
			changed, _ := b.selection.Replace(items[len(items)-1:])
			return changed
		}
		changed := false
		for _, item := range items {
			if b.selection.Add(item) {
				changed = true
			}
		}
		return changed
	})
}

// Deselect removes items from the selection.
func (b *Binding[T]) Deselect(items ...T) {
	b.update(false, func() bool {
		changed := false
		for _, item := range items {
			if b.selection.Remove(item) {
				changed = true
			}
		}
		return changed
	})
}

// SetSelection replaces the selection. A nil slice is rejected with
// selection.ErrNilSelection; use ClearSelection to empty it.
func (b *Binding[T]) SetSelection(items []T) error {
	return b.replace(items, false)
}

// SetSelectionFromClient is SetSelection for changes made in the presentation layer.
func (b *Binding[T]) SetSelectionFromClient(items []T) error {
	return b.replace(items, true)
}

func (b *Binding[T]) replace(items []T, fromClient bool) error {
	if items == nil {
		return selection.ErrNilSelection
	}
	if b.single && len(items) > 1 {
		items = items[len(items)-1:]
	}
	b.update(fromClient, func() bool {
		changed, _ := b.selection.Replace(items)
		return changed
	})
	return nil
}

// ClearSelection empties the selection.
func (b *Binding[T]) ClearSelection() {
	b.update(false, b.selection.Clear)
}

// ResolveKeys maps keys to items. Keys that no longer resolve are returned separately;
// clients may hold stale keys for a round trip.
func (b *Binding[T]) ResolveKeys(keys []string) (items []T, stale []string) {
	items = make([]T, 0, len(keys))
	for _, key := range keys {
		if item, ok := b.keys.Get(key); ok {
			items = append(items, item)
		} else {
			stale = append(stale, key)
		}
	}
	return items, stale
}

// update runs mutate and, if the selection changed, syncs node flags and notifies.
func (b *Binding[T]) update(fromClient bool, mutate func() bool) {
	old := b.selection.Items()
	if !mutate() {
		return
	}
	for _, n := range b.nodes {
		if !n.Auxiliary() {
			n.Selected = b.selection.Contains(n.Item)
		}
	}
	b.selectionHooks.fire(SelectionEvent[T]{Old: old, New: b.selection.Items(), FromClient: fromClient})
}
