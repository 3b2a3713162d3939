package data

import (
	"context"
	"errors"
	"iter"
)

// ErrUnsupportedSort is yielded by providers that cannot honour Query.SortBy.
var ErrUnsupportedSort = errors.New("sort is not supported by this provider")

// Identifier maps an item to its logical identity.
// The returned value must be comparable; it is used as a map key.
type Identifier[T any] func(item T) any

// ItemIdentity uses the item itself as identity.
// Pointers compare by reference, structs by value.
func ItemIdentity[T any](item T) any {
	return item
}

// Query describes the window a component wants to display.
type Query struct {
	// Offset is the number of leading items to skip.
	Offset int
	// Limit caps the number of items returned. Zero means no limit.
	Limit int
	// Filter is a provider specific filter string (substring, prefix, LIKE pattern).
	Filter string
	// SortBy names the sort property. Empty keeps the provider's natural order.
	SortBy string
	// Desc reverses the sort.
	Desc bool
}

// DataProvider is a pull based source of items plus a change notification channel.
type DataProvider[T any] interface {
	// Fetch returns a single forward pass over the items matching the query.
	// The sequence is not re-iterable and two calls are not guaranteed to agree.
	// A failing fetch yields the zero item together with a non-nil error and stops.
	Fetch(ctx context.Context, q Query) iter.Seq2[T, error]

	// AddListener subscribes to change events until the registration is removed.
	AddListener(l Listener[T]) Registration
}

// Identifiable is implemented by providers that know how to identify their items.
type Identifiable[T any] interface {
	ID(item T) any
}

// DefaultIdentifier returns the identity function a provider suggests,
// or ItemIdentity when it has no opinion.
func DefaultIdentifier[T any](p DataProvider[T]) Identifier[T] {
	if idp, ok := p.(Identifiable[T]); ok {
		return idp.ID
	}
	return ItemIdentity[T]
}

// window applies offset and limit to an already filtered and sorted sequence.
func window[T any](seq iter.Seq2[T, error], q Query) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		skipped, emitted := 0, 0
		for item, err := range seq {
			if err != nil {
				yield(item, err)
				return
			}
			if skipped < q.Offset {
				skipped++
				continue
			}
			if q.Limit > 0 && emitted >= q.Limit {
				return
			}
			emitted++
			if !yield(item, nil) {
				return
			}
		}
	}
}

// fail returns a sequence yielding only err.
func fail[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}
