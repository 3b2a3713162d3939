package data_test

import (
	"cmp"
	"context"
	"iter"
	"strings"
	"testing"

	"asset-picker/core/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fruit struct {
	ID   int
	Name string
}

func collect[T any](t *testing.T, p data.DataProvider[T], q data.Query) ([]T, error) {
	t.Helper()
	var out []T
	for item, err := range p.Fetch(context.Background(), q) {
		if err != nil {
			return out, err
		}
		out = append(out, item)
	}
	return out, nil
}

func TestListProvider_Fetch(t *testing.T) {
	p := data.NewListProvider([]string{"pear", "Apple", "plum", "apricot", "peach"})
	p.SetSortComparator("name", func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	tests := []struct {
		name string
		q    data.Query
		want []string
	}{
		{"Natural", data.Query{}, []string{"pear", "Apple", "plum", "apricot", "peach"}},
		{"Filter", data.Query{Filter: "AP"}, []string{"Apple", "apricot"}},
		{"Sort", data.Query{SortBy: "name"}, []string{"Apple", "apricot", "peach", "pear", "plum"}},
		{"SortDesc", data.Query{SortBy: "name", Desc: true}, []string{"plum", "pear", "peach", "apricot", "Apple"}},
		{"Window", data.Query{Offset: 1, Limit: 2}, []string{"Apple", "plum"}},
		{"WindowPastEnd", data.Query{Offset: 10}, nil},
		{"FilterSortWindow", data.Query{Filter: "p", SortBy: "name", Offset: 1, Limit: 2}, []string{"apricot", "peach"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collect[string](t, p, tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListProvider_UnknownSort(t *testing.T) {
	p := data.NewListProvider([]int{1, 2})
	got, err := collect[int](t, p, data.Query{SortBy: "size"})
	assert.ErrorIs(t, err, data.ErrUnsupportedSort)
	assert.Empty(t, got)
}

func TestListProvider_Matcher(t *testing.T) {
	p := data.NewListProvider([]fruit{{1, "fig"}, {2, "kiwi"}, {3, "lime"}})
	p.SetMatcher(func(f fruit, filter string) bool { return strings.HasPrefix(f.Name, filter) })
	p.SetSortComparator("id", func(a, b fruit) int { return cmp.Compare(a.ID, b.ID) })

	got, err := collect[fruit](t, p, data.Query{Filter: "ki"})
	require.NoError(t, err)
	assert.Equal(t, []fruit{{2, "kiwi"}}, got)
}

func TestListProvider_CancelledContext(t *testing.T) {
	p := data.NewListProvider([]int{1, 2, 3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var err error
	for _, e := range p.Fetch(ctx, data.Query{}) {
		err = e
	}
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListProvider_StopEarly(t *testing.T) {
	p := data.NewListProvider([]int{1, 2, 3, 4})
	var seen []int
	for v, err := range p.Fetch(context.Background(), data.Query{}) {
		require.NoError(t, err)
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestListProvider_Events(t *testing.T) {
	ctx := context.Background()
	p := data.NewListProvider([]fruit{{1, "fig"}, {2, "kiwi"}})
	p.SetIdentifier(func(f fruit) any { return f.ID })

	var events []data.ChangeEvent[fruit]
	reg := p.AddListener(func(_ context.Context, ev data.ChangeEvent[fruit]) {
		events = append(events, ev)
	})

	assert.True(t, p.Update(ctx, fruit{2, "golden kiwi"}))
	assert.False(t, p.Update(ctx, fruit{9, "durian"}))
	p.Add(ctx, fruit{3, "lime"})
	assert.True(t, p.Remove(ctx, fruit{ID: 1}))
	assert.False(t, p.Remove(ctx, fruit{ID: 1}))
	p.SetItems(ctx, nil)

	require.Len(t, events, 4)
	assert.Equal(t, data.Refresh, events[0].Kind)
	assert.Equal(t, fruit{2, "golden kiwi"}, events[0].Item)
	for _, ev := range events[1:] {
		assert.Equal(t, data.Invalidate, ev.Kind)
	}

	reg.Remove()
	reg.Remove()
	assert.Equal(t, 0, p.Len())
	p.Add(ctx, fruit{4, "plum"})
	assert.Len(t, events, 4)
}

func TestListProvider_ItemsIsCopy(t *testing.T) {
	src := []int{1, 2}
	p := data.NewListProvider(src)
	src[0] = 99

	items := p.Items()
	items[1] = 42
	assert.Equal(t, []int{1, 2}, p.Items())
}

func TestListeners_FireOrderAndReentrancy(t *testing.T) {
	var ls data.Listeners[int]
	var order []string

	var second data.Registration
	ls.AddListener(func(context.Context, data.ChangeEvent[int]) {
		order = append(order, "first")
		second.Remove()
	})
	second = ls.AddListener(func(context.Context, data.ChangeEvent[int]) {
		order = append(order, "second")
	})

	ls.RefreshItem(context.Background(), 7)
	assert.Equal(t, []string{"first", "second"}, order)

	ls.RefreshAll(context.Background())
	assert.Equal(t, []string{"first", "second", "first"}, order)
	assert.Equal(t, 1, ls.Len())
}

func TestChangeKind_String(t *testing.T) {
	assert.Equal(t, "invalidate", data.Invalidate.String())
	assert.Equal(t, "refresh", data.Refresh.String())
}

func TestDefaultIdentifier(t *testing.T) {
	p := data.NewListProvider([]fruit{{1, "fig"}})
	assert.Equal(t, fruit{1, "fig"}, data.DefaultIdentifier[fruit](p)(fruit{1, "fig"}))

	p.SetIdentifier(func(f fruit) any { return f.ID })
	assert.Equal(t, 1, data.DefaultIdentifier[fruit](p)(fruit{1, "fig"}))

	var plain plainProvider
	assert.Equal(t, "x", data.DefaultIdentifier[string](plain)("x"))
}

type plainProvider struct{}

func (plainProvider) Fetch(context.Context, data.Query) iter.Seq2[string, error] {
	return func(func(string, error) bool) {}
}

func (plainProvider) AddListener(data.Listener[string]) data.Registration {
	return data.RegistrationFunc(func() {})
}
