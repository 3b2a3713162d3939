package data

import (
	"context"
	"iter"
	"slices"
	"sync"

	"asset-picker/core/utils"
)

// ListProvider serves items from an in-memory slice.
type ListProvider[T any] struct {
	Listeners[T]

	mu       sync.RWMutex
	items    []T
	identify Identifier[T]
	match    func(item T, filter string) bool
	sorts    map[string]func(a, b T) int
}

// NewListProvider creates a provider over a copy of items.
func NewListProvider[T any](items []T) *ListProvider[T] {
	return &ListProvider[T]{
		items: slices.Clone(items),
		sorts: make(map[string]func(a, b T) int),
	}
}

// SetIdentifier sets the identity function reported through ID.
func (p *ListProvider[T]) SetIdentifier(id Identifier[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.identify = id
}

// ID implements Identifiable.
func (p *ListProvider[T]) ID(item T) any {
	p.mu.RLock()
	id := p.identify
	p.mu.RUnlock()
	if id == nil {
		return ItemIdentity(item)
	}
	return id(item)
}

// SetMatcher sets the filter predicate. Without one, the filter is a
// case-insensitive substring match on the item's string form.
func (p *ListProvider[T]) SetMatcher(match func(item T, filter string) bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.match = match
}

// SetSortComparator registers a comparator usable through Query.SortBy.
func (p *ListProvider[T]) SetSortComparator(name string, cmp func(a, b T) int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sorts[name] = cmp
}

// Items returns a copy of the backing slice.
func (p *ListProvider[T]) Items() []T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.items)
}

// SetItems replaces the backing slice and invalidates listeners.
func (p *ListProvider[T]) SetItems(ctx context.Context, items []T) {
	p.mu.Lock()
	p.items = slices.Clone(items)
	p.mu.Unlock()
	p.RefreshAll(ctx)
}

// Add appends an item and invalidates listeners.
func (p *ListProvider[T]) Add(ctx context.Context, item T) {
	p.mu.Lock()
	p.items = append(p.items, item)
	p.mu.Unlock()
	p.RefreshAll(ctx)
}

// Remove drops every item with the same identity and invalidates listeners.
// It reports whether anything was removed.
func (p *ListProvider[T]) Remove(ctx context.Context, item T) bool {
	id := p.ID(item)
	p.mu.Lock()
	before := len(p.items)
	p.items = slices.DeleteFunc(p.items, func(v T) bool { return p.idLocked(v) == id })
	removed := len(p.items) != before
	p.mu.Unlock()
	if removed {
		p.RefreshAll(ctx)
	}
	return removed
}

// Update replaces the item with the same identity and sends a Refresh event.
// It reports whether a matching item was found.
func (p *ListProvider[T]) Update(ctx context.Context, item T) bool {
	id := p.ID(item)
	p.mu.Lock()
	idx := slices.IndexFunc(p.items, func(v T) bool { return p.idLocked(v) == id })
	if idx >= 0 {
		p.items[idx] = item
	}
	p.mu.Unlock()
	if idx < 0 {
		return false
	}
	p.RefreshItem(ctx, item)
	return true
}

func (p *ListProvider[T]) idLocked(item T) any {
	if p.identify == nil {
		return ItemIdentity(item)
	}
	return p.identify(item)
}

// Fetch implements DataProvider.
func (p *ListProvider[T]) Fetch(ctx context.Context, q Query) iter.Seq2[T, error] {
	p.mu.RLock()
	items := slices.Clone(p.items)
	match := p.match
	cmp, sortable := p.sorts[q.SortBy]
	p.mu.RUnlock()

	if q.SortBy != "" && !sortable {
		return fail[T](ErrUnsupportedSort)
	}
	if q.Filter != "" {
		if match == nil {
			match = containsFold[T]
		}
		items = slices.DeleteFunc(items, func(v T) bool { return !match(v, q.Filter) })
	}
	if sortable {
		if q.Desc {
			slices.SortStableFunc(items, func(a, b T) int { return cmp(b, a) })
		} else {
			slices.SortStableFunc(items, cmp)
		}
	}

	all := func(yield func(T, error) bool) {
		for _, item := range items {
			if ctx.Err() != nil {
				var zero T
				yield(zero, ctx.Err())
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
	return window(all, q)
}

func containsFold[T any](item T, filter string) bool {
	return utils.ContainsFold(utils.ToString(item), filter)
}
