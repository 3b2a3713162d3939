package session

import (
	"context"
	"iter"

	"asset-picker/core/data"
)

// Provider wraps a shared data provider so that its change events reach a
// component under the lock of the session that owns it.
type Provider[T any] struct {
	inner   data.DataProvider[T]
	session *Session
}

// Bind returns p as seen from session s.
func Bind[T any](s *Session, p data.DataProvider[T]) *Provider[T] {
	return &Provider[T]{inner: p, session: s}
}

// Fetch implements data.DataProvider.
func (p *Provider[T]) Fetch(ctx context.Context, q data.Query) iter.Seq2[T, error] {
	return p.inner.Fetch(ctx, q)
}

// AddListener implements data.DataProvider.
func (p *Provider[T]) AddListener(l data.Listener[T]) data.Registration {
	return p.inner.AddListener(func(ctx context.Context, ev data.ChangeEvent[T]) {
		p.session.Background(func() { l(ctx, ev) })
	})
}

// ID implements data.Identifiable with the wrapped provider's identity.
func (p *Provider[T]) ID(item T) any {
	return data.DefaultIdentifier(p.inner)(item)
}
