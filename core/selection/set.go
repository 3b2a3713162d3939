package selection

import (
	"errors"
	"slices"

	"asset-picker/core/data"
)

// ErrNilSelection is returned when a nil slice is passed where a selection is expected.
// Use Clear to empty a selection.
var ErrNilSelection = errors.New("selection must not be nil, use clear instead")

// Set is an ordered set of items whose membership is decided by identity.
type Set[T any] struct {
	identify data.Identifier[T]
	items    []T
	index    map[any]int
}

// NewSet creates an empty set. A nil identifier means data.ItemIdentity.
func NewSet[T any](identify data.Identifier[T]) *Set[T] {
	if identify == nil {
		identify = data.ItemIdentity[T]
	}
	return &Set[T]{
		identify: identify,
		index:    make(map[any]int),
	}
}

// Identity returns item's identity under the current identifier.
func (s *Set[T]) Identity(item T) any {
	return s.identify(item)
}

// SetIdentifierGetter swaps the identifier and re-indexes the set.
// Items that now share an identity collapse into the first one.
func (s *Set[T]) SetIdentifierGetter(identify data.Identifier[T]) {
	if identify == nil {
		identify = data.ItemIdentity[T]
	}
	s.identify = identify
	old := s.items
	s.items = nil
	clear(s.index)
	for _, item := range old {
		s.Add(item)
	}
}

// Add inserts item unless an item with the same identity is present.
// It reports whether the set changed.
func (s *Set[T]) Add(item T) bool {
	id := s.identify(item)
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = len(s.items)
	s.items = append(s.items, item)
	return true
}

// Remove deletes the item with item's identity and reports whether it was present.
func (s *Set[T]) Remove(item T) bool {
	return s.RemoveIdentity(s.identify(item))
}

// RemoveIdentity deletes the item with identity id and reports whether it was present.
func (s *Set[T]) RemoveIdentity(id any) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.identify(s.items[j])] = j
	}
	return true
}

// Update swaps the stored instance for item when an item with the same identity
// is present, keeping its position. It reports whether it did.
func (s *Set[T]) Update(item T) bool {
	i, ok := s.index[s.identify(item)]
	if !ok {
		return false
	}
	s.items[i] = item
	return true
}

// Contains reports whether an item with item's identity is present.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.index[s.identify(item)]
	return ok
}

// ContainsIdentity reports whether identity id is present.
func (s *Set[T]) ContainsIdentity(id any) bool {
	_, ok := s.index[id]
	return ok
}

// Items returns the members in insertion order.
func (s *Set[T]) Items() []T {
	return slices.Clone(s.items)
}

// Identities returns the members' identities in insertion order.
func (s *Set[T]) Identities() []any {
	ids := make([]any, 0, len(s.items))
	for _, item := range s.items {
		ids = append(ids, s.identify(item))
	}
	return ids
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Clear removes every member and reports whether the set changed.
func (s *Set[T]) Clear() bool {
	if len(s.items) == 0 {
		return false
	}
	s.items = nil
	clear(s.index)
	return true
}

// Replace makes items the new content of the set. A nil slice is rejected;
// an empty non-nil slice empties the set.
func (s *Set[T]) Replace(items []T) (bool, error) {
	if items == nil {
		return false, ErrNilSelection
	}
	before := s.Identities()
	s.items = nil
	clear(s.index)
	for _, item := range items {
		s.Add(item)
	}
	return !slices.Equal(before, s.Identities()), nil
}
