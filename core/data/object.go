package data

import (
	"context"
	"fmt"
	"iter"

	"asset-picker/core/storage"
	"asset-picker/core/utils"

	"github.com/minio/minio-go/v7"
)

// ObjectOptions configures an ObjectProvider.
type ObjectOptions[T any] struct {
	// Bucket is the bucket to list.
	Bucket string
	// Prefix restricts the listing.
	Prefix string
	// Recursive lists nested "directories" too.
	Recursive bool
	// Decode turns an object into an item. Objects it rejects are skipped.
	Decode func(obj minio.ObjectInfo) (T, bool)
	// ID identifies items. Nil falls back to the item value itself.
	ID Identifier[T]
}

// ObjectProvider serves items decoded from an object store listing.
// Listings come back in lexical key order, so Query.SortBy is not supported.
type ObjectProvider[T any] struct {
	Listeners[T]

	client storage.Client
	opts   ObjectOptions[T]
}

// NewObjectProvider creates a provider listing opts.Bucket through client.
func NewObjectProvider[T any](client storage.Client, opts ObjectOptions[T]) *ObjectProvider[T] {
	return &ObjectProvider[T]{client: client, opts: opts}
}

// ID implements Identifiable.
func (p *ObjectProvider[T]) ID(item T) any {
	if p.opts.ID == nil {
		return ItemIdentity(item)
	}
	return p.opts.ID(item)
}

// Fetch implements DataProvider. The filter is a case-insensitive substring of the
// object key. Stopping the iteration cancels the listing.
func (p *ObjectProvider[T]) Fetch(ctx context.Context, q Query) iter.Seq2[T, error] {
	if q.SortBy != "" {
		return fail[T](ErrUnsupportedSort)
	}

	all := func(yield func(T, error) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		objects := p.client.ListObjects(ctx, p.opts.Bucket, minio.ListObjectsOptions{
			Prefix:    p.opts.Prefix,
			Recursive: p.opts.Recursive,
		})
		for obj := range objects {
			if obj.Err != nil {
				var zero T
				yield(zero, fmt.Errorf("failed to list objects: %w", obj.Err))
				return
			}
			if !utils.ContainsFold(obj.Key, q.Filter) {
				continue
			}
			item, ok := p.opts.Decode(obj)
			if !ok {
				continue
			}
			if !yield(item, nil) {
				return
			}
		}
	}
	return window(all, q)
}
