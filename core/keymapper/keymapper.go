// Package keymapper assigns opaque string keys to items so a presentation layer can
// address them.
//
// A KeyMapper holds a bijection between keys and live items, where "the same item"
// is decided by an identity function rather than reference equality. Keys come from a
// counter owned by the mapper and are never handed out twice, even across RemoveAll.
//
// A KeyMapper belongs to exactly one binding and is not safe for concurrent use.
package keymapper

import (
	"strconv"

	"asset-picker/core/data"
)

// KeyMapper maps keys to items and item identities back to keys.
type KeyMapper[T any] struct {
	identify data.Identifier[T]
	last     uint64
	items    map[string]T
	keys     map[any]string
}

// New creates an empty mapper. A nil identifier means data.ItemIdentity.
func New[T any](identify data.Identifier[T]) *KeyMapper[T] {
	if identify == nil {
		identify = data.ItemIdentity[T]
	}
	return &KeyMapper[T]{
		identify: identify,
		items:    make(map[string]T),
		keys:     make(map[any]string),
	}
}

// Key returns the key registered for item's identity, minting one if needed.
func (m *KeyMapper[T]) Key(item T) string {
	id := m.identify(item)
	if key, ok := m.keys[id]; ok {
		return key
	}
	m.last++
	key := strconv.FormatUint(m.last, 10)
	m.keys[id] = key
	m.items[key] = item
	return key
}

// Get resolves a key. Unknown and invalidated keys report false.
func (m *KeyMapper[T]) Get(key string) (T, bool) {
	item, ok := m.items[key]
	return item, ok
}

// Has reports whether an item with the same identity is registered.
func (m *KeyMapper[T]) Has(item T) bool {
	_, ok := m.keys[m.identify(item)]
	return ok
}

// Refresh points the existing key for item's identity at this instance.
// Unknown identities are ignored.
func (m *KeyMapper[T]) Refresh(item T) {
	if key, ok := m.keys[m.identify(item)]; ok {
		m.items[key] = item
	}
}

// Remove drops the entry for item's identity.
func (m *KeyMapper[T]) Remove(item T) {
	id := m.identify(item)
	if key, ok := m.keys[id]; ok {
		delete(m.keys, id)
		delete(m.items, key)
	}
}

// RemoveAll drops every entry. Previously issued keys stop resolving.
func (m *KeyMapper[T]) RemoveAll() {
	clear(m.items)
	clear(m.keys)
}

// SetIdentifierGetter replaces the identity function used by later calls.
// Existing entries keep the identity they were registered under.
func (m *KeyMapper[T]) SetIdentifierGetter(identify data.Identifier[T]) {
	if identify == nil {
		identify = data.ItemIdentity[T]
	}
	m.identify = identify
}

// Len returns the number of registered items.
func (m *KeyMapper[T]) Len() int {
	return len(m.items)
}
