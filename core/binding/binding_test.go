package binding_test

import (
	"context"
	"errors"
	"iter"
	"testing"

	"asset-picker/core/binding"
	"asset-picker/core/data"
	"asset-picker/core/roundtrip"
	"asset-picker/core/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type asset struct {
	ID   string
	Name string
}

func byID(a *asset) any { return a.ID }

func assets(ids ...string) []*asset {
	out := make([]*asset, 0, len(ids))
	for _, id := range ids {
		out = append(out, &asset{ID: id, Name: "name-" + id})
	}
	return out
}

func render(a *asset) binding.Content {
	return binding.Content{Label: a.Name, Enabled: true}
}

// countingProvider wraps a list provider and counts fetches and consumed items.
type countingProvider struct {
	*data.ListProvider[*asset]
	fetches  int
	consumed int
	failAt   int
}

func (p *countingProvider) Fetch(ctx context.Context, q data.Query) iter.Seq2[*asset, error] {
	p.fetches++
	inner := p.ListProvider.Fetch(ctx, q)
	return func(yield func(*asset, error) bool) {
		for item, err := range inner {
			p.consumed++
			if p.failAt > 0 && p.consumed == p.failAt {
				yield(nil, errors.New("source went away"))
				return
			}
			if !yield(item, err) {
				return
			}
		}
	}
}

func newProvider(items []*asset) *countingProvider {
	lp := data.NewListProvider(items)
	lp.SetIdentifier(byID)
	return &countingProvider{ListProvider: lp}
}

func setup(t *testing.T, items []*asset) (*binding.Binding[*asset], *countingProvider, *roundtrip.Queue) {
	t.Helper()
	q := roundtrip.NewQueue()
	b := binding.New[*asset](q, zap.NewNop())
	b.SetRenderer(render)
	p := newProvider(items)
	require.NoError(t, b.SetDataProvider(context.Background(), p))
	q.Flush()
	return b, p, q
}

func keysOf(nodes []binding.Node[*asset]) []string {
	var out []string
	for _, n := range nodes {
		if !n.Auxiliary() {
			out = append(out, n.Key)
		}
	}
	return out
}

func idsOf(items []*asset) []string {
	var out []string
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func TestBinding_RebuildRendersInFetchOrder(t *testing.T) {
	b, _, _ := setup(t, assets("a", "b", "c"))

	nodes := b.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, 3, b.Size())
	for i, id := range []string{"a", "b", "c"} {
		assert.Equal(t, id, nodes[i].Item.ID)
		assert.Equal(t, "name-"+id, nodes[i].Content.Label)
		assert.False(t, nodes[i].Selected)

		item, ok := b.Item(nodes[i].Key)
		require.True(t, ok)
		assert.Equal(t, id, item.ID)
	}
}

func TestBinding_SelectedFlagsFollowIdentity(t *testing.T) {
	b, p, q := setup(t, assets("a", "b", "c"))
	b.SetSelectionPreservationMode(selection.PreserveAll)

	// A different instance with the same identity counts as selected.
	b.Select(&asset{ID: "b"})
	assert.True(t, b.Nodes()[1].Selected)

	p.SetItems(context.Background(), assets("c", "b"))
	q.Flush()

	nodes := b.Nodes()
	require.Len(t, nodes, 2)
	assert.False(t, nodes[0].Selected)
	assert.True(t, nodes[1].Selected)
}

func TestBinding_InvalidateDiscard(t *testing.T) {
	b, p, _ := setup(t, assets("a", "b", "c"))
	b.Select(assets("a", "b")...)

	p.SetItems(context.Background(), assets("a", "b", "c", "d"))

	assert.Empty(t, b.Selected())
	for _, n := range b.Nodes() {
		assert.False(t, n.Selected)
	}
}

func TestBinding_InvalidatePreserveExisting(t *testing.T) {
	b, p, _ := setup(t, assets("a", "b", "c"))
	b.SetSelectionPreservationMode(selection.PreserveExisting)
	b.Select(assets("a", "b", "c")...)

	var events []binding.SelectionEvent[*asset]
	b.AddSelectionListener(func(ev binding.SelectionEvent[*asset]) { events = append(events, ev) })

	p.SetItems(context.Background(), assets("b", "c", "d"))

	assert.Equal(t, []string{"b", "c"}, idsOf(b.Selected()))
	require.Len(t, events, 1)
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(events[0].Old))
	assert.Equal(t, []string{"b", "c"}, idsOf(events[0].New))
	assert.False(t, events[0].FromClient)

	nodes := b.Nodes()
	require.Len(t, nodes, 3)
	assert.True(t, nodes[0].Selected)
	assert.True(t, nodes[1].Selected)
	assert.False(t, nodes[2].Selected)
}

func TestBinding_InvalidatePreserveExistingStopsEarly(t *testing.T) {
	ids := make([]string, 0, 10000)
	ids = append(ids, "a")
	for i := 1; i < 10000; i++ {
		ids = append(ids, "item-"+string(rune('A'+i%26))+string(rune('A'+i/26%26))+string(rune('A'+i/676)))
	}
	b, p, _ := setup(t, assets(ids...))
	b.SetSelectionPreservationMode(selection.PreserveExisting)
	b.Select(&asset{ID: "a"})
	p.fetches, p.consumed = 0, 0

	require.NoError(t, b.Invalidate(context.Background()))

	// One fetch for the reconciliation (one item), one for the rebuild (all items).
	assert.Equal(t, 2, p.fetches)
	assert.Equal(t, 1+10000, p.consumed)
	assert.Equal(t, []string{"a"}, idsOf(b.Selected()))
}

func TestBinding_InvalidatePreserveAll(t *testing.T) {
	b, p, _ := setup(t, assets("a", "b"))
	b.SetSelectionPreservationMode(selection.PreserveAll)
	b.Select(assets("a", "b")...)

	p.SetItems(context.Background(), nil)

	assert.Equal(t, []string{"a", "b"}, idsOf(b.Selected()))
	assert.Empty(t, b.Nodes())
	assert.Equal(t, 0, b.Size())
}

func TestBinding_InvalidateResetsKeys(t *testing.T) {
	b, p, _ := setup(t, assets("a", "b"))
	before := keysOf(b.Nodes())

	p.RefreshAll(context.Background())

	after := keysOf(b.Nodes())
	for _, key := range before {
		_, ok := b.Item(key)
		assert.False(t, ok, "key %s survived invalidation", key)
		assert.NotContains(t, after, key)
	}
}

func TestBinding_RefreshKeepsOrderAndSize(t *testing.T) {
	b, p, q := setup(t, assets("a", "b", "c"))
	b.Select(&asset{ID: "b"})
	before := b.Nodes()

	var sizes []int
	b.AddSizeChangeListener(func(ev binding.SizeChangeEvent) { sizes = append(sizes, ev.Size) })

	p.Update(context.Background(), &asset{ID: "b", Name: "renamed"})
	q.Flush()

	after := b.Nodes()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Key, after[i].Key)
		assert.Equal(t, before[i].Item.ID, after[i].Item.ID)
	}
	assert.Equal(t, "renamed", after[1].Content.Label)
	assert.Equal(t, "name-a", after[0].Content.Label)
	assert.True(t, after[1].Selected)
	assert.Empty(t, sizes)

	item, ok := b.Item(after[1].Key)
	require.True(t, ok)
	assert.Equal(t, "renamed", item.Name)

	selected := b.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, "renamed", selected[0].Name)
}

func TestBinding_RefreshUnknownItemIsNoop(t *testing.T) {
	b, _, _ := setup(t, assets("a"))

	assert.False(t, b.RefreshItem(&asset{ID: "zzz"}))
	assert.Len(t, b.Nodes(), 1)
}

func TestBinding_SizeEventDebouncedPerRoundTrip(t *testing.T) {
	b, p, q := setup(t, assets("a"))
	var sizes []int
	b.AddSizeChangeListener(func(ev binding.SizeChangeEvent) { sizes = append(sizes, ev.Size) })

	p.SetItems(context.Background(), assets("a", "b", "c"))
	p.SetItems(context.Background(), assets("a", "b", "c", "d", "e"))
	p.SetItems(context.Background(), assets("a", "b"))

	assert.Empty(t, sizes)
	q.Flush()
	assert.Equal(t, []int{2}, sizes)

	q.Flush()
	assert.Equal(t, []int{2}, sizes)
}

func TestBinding_CustomIdentity(t *testing.T) {
	q := roundtrip.NewQueue()
	b := binding.New[*asset](q, nil)
	first := &asset{ID: "x", Name: "first"}
	lp := data.NewListProvider([]*asset{first})
	require.NoError(t, b.SetDataProvider(context.Background(), lp))

	twin := &asset{ID: "x", Name: "twin"}
	assert.NotEqual(t, b.Key(first), b.Key(twin))

	require.NoError(t, b.SetIdentifierGetter(context.Background(), byID))

	key := b.Nodes()[0].Key
	assert.Equal(t, key, b.Key(twin))
	b.Select(twin)
	assert.True(t, b.IsSelected(first))
	assert.True(t, b.Nodes()[0].Selected)
}

func TestBinding_AuxiliaryNodeSurvivesRebuild(t *testing.T) {
	b, p, _ := setup(t, assets("a", "b"))
	b.SetAuxiliary("helper", binding.Content{Label: "Pick some"}, false)

	nodes := b.Nodes()
	require.Len(t, nodes, 3)
	assert.True(t, nodes[0].Auxiliary())

	p.SetItems(context.Background(), assets("c"))

	nodes = b.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "helper", nodes[0].Slot)
	assert.Equal(t, "Pick some", nodes[0].Content.Label)
	assert.Equal(t, "c", nodes[1].Item.ID)
	assert.Equal(t, 1, b.Size())

	b.RemoveAuxiliary("helper")
	assert.Len(t, b.Nodes(), 1)
}

func TestBinding_ReentrantInvalidateIsSerialized(t *testing.T) {
	b, p, _ := setup(t, assets("a", "b", "c"))
	b.SetSelectionPreservationMode(selection.PreserveExisting)
	b.Select(assets("a", "b")...)

	// A listener reacting to the preservation step mutates the source again.
	mutated := false
	b.AddSelectionListener(func(ev binding.SelectionEvent[*asset]) {
		if mutated {
			return
		}
		mutated = true
		p.SetItems(context.Background(), assets("b", "e"))
	})

	p.SetItems(context.Background(), assets("b", "c"))

	assert.True(t, mutated)
	assert.Equal(t, []string{"b"}, idsOf(b.Selected()))
	nodes := b.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "b", nodes[0].Item.ID)
	assert.Equal(t, "e", nodes[1].Item.ID)
	assert.Equal(t, 2, b.Size())
	assert.Equal(t, 2, b.KeyMapper().Len())
}

func TestBinding_SwapProviderReplacesListener(t *testing.T) {
	b, first, _ := setup(t, assets("a"))
	b.Select(&asset{ID: "a"})
	require.Equal(t, 1, first.Len())

	second := newProvider(assets("x", "y"))
	require.NoError(t, b.SetDataProvider(context.Background(), second))

	assert.Equal(t, 0, first.Len())
	assert.Equal(t, 1, second.Len())
	assert.Empty(t, b.Selected())
	assert.Equal(t, 2, b.Size())

	// Events from the old provider no longer reach the binding.
	first.SetItems(context.Background(), assets("q", "r", "s"))
	assert.Equal(t, 2, b.Size())

	b.Close()
	assert.Equal(t, 0, second.Len())
}

func TestBinding_UnbindClearsList(t *testing.T) {
	b, _, q := setup(t, assets("a", "b"))
	var sizes []int
	b.AddSizeChangeListener(func(ev binding.SizeChangeEvent) { sizes = append(sizes, ev.Size) })

	require.NoError(t, b.SetDataProvider(context.Background(), nil))
	q.Flush()

	assert.Empty(t, b.Nodes())
	assert.Equal(t, []int{0}, sizes)
	assert.ErrorIs(t, b.Rebuild(context.Background()), binding.ErrNoDataProvider)
}

func TestBinding_EmptyFetchIsNotAnError(t *testing.T) {
	b, _, _ := setup(t, nil)

	assert.Empty(t, b.Nodes())
	assert.Equal(t, 0, b.Size())
	assert.NoError(t, b.Rebuild(context.Background()))
}

func TestBinding_FetchErrorKeepsPartialList(t *testing.T) {
	b, p, _ := setup(t, assets("a", "b", "c"))
	p.consumed = 0
	p.failAt = 3

	err := b.Rebuild(context.Background())

	assert.ErrorContains(t, err, "source went away")
	assert.Equal(t, 2, b.Size())
	assert.Len(t, b.Nodes(), 2)
}

func TestBinding_PreservationErrorStillRebuilds(t *testing.T) {
	b, p, q := setup(t, assets("a", "b"))
	b.SetSelectionPreservationMode(selection.PreserveExisting)
	b.Select(&asset{ID: "a"})
	before := keysOf(b.Nodes())

	var sizes []int
	b.AddSizeChangeListener(func(ev binding.SizeChangeEvent) { sizes = append(sizes, ev.Size) })

	// The first item of the preservation fetch fails; the rebuild fetch succeeds.
	p.fetches, p.consumed = 0, 0
	p.failAt = 1

	err := b.Invalidate(context.Background())
	q.Flush()

	assert.ErrorContains(t, err, "failed to preserve selection")
	assert.NotContains(t, err.Error(), "failed to fetch items")
	assert.Equal(t, 2, p.fetches)
	for _, key := range before {
		_, ok := b.Item(key)
		assert.False(t, ok, "key %s survived invalidation", key)
	}
	after := keysOf(b.Nodes())
	require.Len(t, after, 2)
	assert.NotEqual(t, before, after)
	assert.Equal(t, 2, b.Size())
	assert.Equal(t, []int{2}, sizes)
}

func TestBinding_PendingPassRunsAfterFailedPass(t *testing.T) {
	b, p, _ := setup(t, assets("a", "b", "c"))
	b.SetSelectionPreservationMode(selection.PreserveExisting)
	b.Select(assets("a", "b")...)

	mutated := false
	b.AddSelectionListener(func(ev binding.SelectionEvent[*asset]) {
		if mutated {
			return
		}
		mutated = true
		p.SetItems(context.Background(), assets("b", "e"))
	})

	// Preservation consumes b and c, then the rebuild fails on its first item.
	// The invalidation queued by the listener must still run.
	p.consumed = 0
	p.failAt = 3
	p.SetItems(context.Background(), assets("b", "c"))

	assert.True(t, mutated)
	assert.Equal(t, []string{"b"}, idsOf(b.Selected()))
	nodes := b.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "b", nodes[0].Item.ID)
	assert.Equal(t, "e", nodes[1].Item.ID)
	assert.Equal(t, 2, b.Size())
}

func TestBinding_QueryChangeRebuilds(t *testing.T) {
	b, _, _ := setup(t, assets("apple", "banana", "avocado"))

	require.NoError(t, b.SetQuery(context.Background(), data.Query{Filter: "a", Limit: 2}))

	assert.Equal(t, 2, b.Size())
	require.NoError(t, b.SetQuery(context.Background(), data.Query{Filter: "ban"}))
	nodes := b.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, "banana", nodes[0].Item.ID)
}

func TestBinding_SetSelectionRejectsNil(t *testing.T) {
	b, _, _ := setup(t, assets("a"))
	b.Select(&asset{ID: "a"})

	assert.ErrorIs(t, b.SetSelection(nil), selection.ErrNilSelection)
	assert.Len(t, b.Selected(), 1)

	require.NoError(t, b.SetSelection([]*asset{}))
	assert.Empty(t, b.Selected())
}

func TestBinding_ResolveKeysReportsStale(t *testing.T) {
	b, p, _ := setup(t, assets("a", "b"))
	stale := keysOf(b.Nodes())[0]

	p.RefreshAll(context.Background())
	fresh := keysOf(b.Nodes())[1]

	items, unknown := b.ResolveKeys([]string{stale, fresh})
	assert.Equal(t, []string{"b"}, idsOf(items))
	assert.Equal(t, []string{stale}, unknown)
}

func TestBinding_SingleSelection(t *testing.T) {
	b, _, _ := setup(t, assets("a", "b"))
	b.SetSingle(true)

	b.Select(&asset{ID: "a"})
	b.Select(&asset{ID: "b"})
	assert.Equal(t, []string{"b"}, idsOf(b.Selected()))

	require.NoError(t, b.SetSelectionFromClient(assets("a", "b")))
	assert.Equal(t, []string{"b"}, idsOf(b.Selected()))
}
