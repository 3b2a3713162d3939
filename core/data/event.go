package data

import (
	"context"
	"sync"
)

// ChangeKind tells what a ChangeEvent covers.
type ChangeKind int

const (
	// Invalidate means the whole previous fetch may be stale.
	Invalidate ChangeKind = iota
	// Refresh means one known item changed content but kept its identity.
	Refresh
)

// String returns the lowercase name of the kind.
func (k ChangeKind) String() string {
	switch k {
	case Refresh:
		return "refresh"
	default:
		return "invalidate"
	}
}

// ChangeEvent is emitted by a provider when its items change.
type ChangeEvent[T any] struct {
	Kind ChangeKind
	// Item is only set for Refresh events.
	Item T
}

// InvalidateEvent builds an Invalidate event.
func InvalidateEvent[T any]() ChangeEvent[T] {
	return ChangeEvent[T]{Kind: Invalidate}
}

// RefreshEvent builds a Refresh event for item.
func RefreshEvent[T any](item T) ChangeEvent[T] {
	return ChangeEvent[T]{Kind: Refresh, Item: item}
}

// Listener receives change events.
type Listener[T any] func(ctx context.Context, ev ChangeEvent[T])

// Registration is a disposable subscription handle.
type Registration interface {
	// Remove cancels the subscription. Calling it more than once is harmless.
	Remove()
}

// RegistrationFunc adapts a function to Registration.
type RegistrationFunc func()

// Remove calls f.
func (f RegistrationFunc) Remove() {
	f()
}

// Listeners is a set of listeners that providers embed to implement AddListener.
// The zero value is ready to use.
type Listeners[T any] struct {
	mu     sync.Mutex
	nextID uint64
	items  map[uint64]Listener[T]
	order  []uint64
}

// AddListener registers l and returns a handle that removes it.
func (ls *Listeners[T]) AddListener(l Listener[T]) Registration {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.items == nil {
		ls.items = make(map[uint64]Listener[T])
	}
	ls.nextID++
	id := ls.nextID
	ls.items[id] = l
	ls.order = append(ls.order, id)

	var once sync.Once
	return RegistrationFunc(func() {
		once.Do(func() { ls.remove(id) })
	})
}

func (ls *Listeners[T]) remove(id uint64) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	delete(ls.items, id)
	for i, v := range ls.order {
		if v == id {
			ls.order = append(ls.order[:i], ls.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of live listeners.
func (ls *Listeners[T]) Len() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return len(ls.items)
}

// Fire delivers ev to every listener in subscription order.
// Listeners run outside the lock so they may subscribe or unsubscribe.
func (ls *Listeners[T]) Fire(ctx context.Context, ev ChangeEvent[T]) {
	ls.mu.Lock()
	snapshot := make([]Listener[T], 0, len(ls.order))
	for _, id := range ls.order {
		snapshot = append(snapshot, ls.items[id])
	}
	ls.mu.Unlock()

	for _, l := range snapshot {
		l(ctx, ev)
	}
}

// RefreshAll notifies listeners that everything may have changed.
func (ls *Listeners[T]) RefreshAll(ctx context.Context) {
	ls.Fire(ctx, InvalidateEvent[T]())
}

// RefreshItem notifies listeners that item changed content.
func (ls *Listeners[T]) RefreshItem(ctx context.Context, item T) {
	ls.Fire(ctx, RefreshEvent(item))
}
