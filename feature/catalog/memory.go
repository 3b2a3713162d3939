package catalog

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"asset-picker/core/data"
)

// MemorySource keeps the catalog in memory.
type MemorySource struct {
	*data.ListProvider[Asset]
}

// NewMemorySource creates a source over assets. Assets without an id get one.
func NewMemorySource(assets []Asset) *MemorySource {
	p := data.NewListProvider(withIDs(assets, 0))
	p.SetIdentifier(AssetID)
	p.SetSortComparator("name", func(a, b Asset) int { return strings.Compare(a.Name, b.Name) })
	p.SetSortComparator("category", func(a, b Asset) int {
		if c := strings.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	p.SetSortComparator("id", func(a, b Asset) int { return cmp.Compare(a.ID, b.ID) })
	return &MemorySource{ListProvider: p}
}

func withIDs(assets []Asset, last uint) []Asset {
	out := slices.Clone(assets)
	for _, a := range out {
		last = max(last, a.ID)
	}
	for i := range out {
		if out[i].ID == 0 {
			last++
			out[i].ID = last
		}
	}
	return out
}

// Kind implements Source.
func (s *MemorySource) Kind() string {
	return "memory"
}

func (s *MemorySource) find(ref string) (Asset, bool) {
	items := s.Items()
	idx := slices.IndexFunc(items, func(a Asset) bool { return a.Ref() == ref })
	if idx < 0 {
		return Asset{}, false
	}
	return items[idx], true
}

// Rename implements Source.
func (s *MemorySource) Rename(ctx context.Context, ref, name string) (Asset, error) {
	a, ok := s.find(ref)
	if !ok {
		return Asset{}, ErrNotFound
	}
	a.Name = name
	if !s.Update(ctx, a) {
		return Asset{}, ErrNotFound
	}
	return a, nil
}

// Delete implements Source.
func (s *MemorySource) Delete(ctx context.Context, ref string) error {
	a, ok := s.find(ref)
	if !ok || !s.Remove(ctx, a) {
		return ErrNotFound
	}
	return nil
}

// Reload implements Source.
func (s *MemorySource) Reload(ctx context.Context) {
	s.RefreshAll(ctx)
}

// Seed implements Source. Assets replace entries with the same id.
func (s *MemorySource) Seed(ctx context.Context, assets []Asset) (int, error) {
	current := s.Items()
	var last uint
	for _, a := range current {
		last = max(last, a.ID)
	}
	incoming := withIDs(assets, last)
	for _, a := range incoming {
		idx := slices.IndexFunc(current, func(c Asset) bool { return c.ID == a.ID })
		if idx >= 0 {
			current[idx] = a
		} else {
			current = append(current, a)
		}
	}
	s.SetItems(ctx, current)
	return len(incoming), nil
}
