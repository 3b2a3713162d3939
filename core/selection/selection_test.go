package selection_test

import (
	"errors"
	"iter"
	"testing"

	"asset-picker/core/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type asset struct {
	ID   string
	Name string
}

func byID(a *asset) any { return a.ID }

func items(ids ...string) []*asset {
	out := make([]*asset, 0, len(ids))
	for _, id := range ids {
		out = append(out, &asset{ID: id})
	}
	return out
}

func ids(set *selection.Set[*asset]) []string {
	var out []string
	for _, a := range set.Items() {
		out = append(out, a.ID)
	}
	return out
}

// countingWindow yields items and records how many were consumed.
func countingWindow(all []*asset, consumed *int) iter.Seq2[*asset, error] {
	return func(yield func(*asset, error) bool) {
		for _, a := range all {
			*consumed++
			if !yield(a, nil) {
				return
			}
		}
	}
}

func TestSet_Basics(t *testing.T) {
	set := selection.NewSet(byID)

	assert.True(t, set.Add(&asset{ID: "a"}))
	assert.False(t, set.Add(&asset{ID: "a", Name: "copy"}))
	assert.True(t, set.Add(&asset{ID: "b"}))
	assert.True(t, set.Contains(&asset{ID: "a"}))
	assert.Equal(t, 2, set.Len())

	assert.True(t, set.Remove(&asset{ID: "a"}))
	assert.False(t, set.Remove(&asset{ID: "a"}))
	assert.Equal(t, []string{"b"}, ids(set))
	assert.True(t, set.Contains(&asset{ID: "b"}))
}

func TestSet_RemoveKeepsOrderAndIndex(t *testing.T) {
	set := selection.NewSet(byID)
	for _, a := range items("a", "b", "c", "d") {
		set.Add(a)
	}

	set.RemoveIdentity("b")

	assert.Equal(t, []string{"a", "c", "d"}, ids(set))
	assert.True(t, set.RemoveIdentity("d"))
	assert.Equal(t, []string{"a", "c"}, ids(set))
}

func TestSet_UpdateSwapsInstance(t *testing.T) {
	set := selection.NewSet(byID)
	set.Add(&asset{ID: "a"})
	set.Add(&asset{ID: "b", Name: "old"})

	assert.True(t, set.Update(&asset{ID: "b", Name: "new"}))
	assert.False(t, set.Update(&asset{ID: "c"}))

	items := set.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[1].ID)
	assert.Equal(t, "new", items[1].Name)
}

func TestSet_ReplaceRejectsNil(t *testing.T) {
	set := selection.NewSet(byID)
	set.Add(&asset{ID: "a"})

	changed, err := set.Replace(nil)
	assert.True(t, errors.Is(err, selection.ErrNilSelection))
	assert.False(t, changed)
	assert.Equal(t, 1, set.Len())

	changed, err = set.Replace([]*asset{})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0, set.Len())
}

func TestSet_ReplaceReportsChange(t *testing.T) {
	set := selection.NewSet(byID)
	_, err := set.Replace(items("a", "b"))
	require.NoError(t, err)

	changed, err := set.Replace(items("a", "b"))
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = set.Replace(items("b", "c"))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"b", "c"}, ids(set))
}

func TestSet_SetIdentifierGetterReindexes(t *testing.T) {
	set := selection.NewSet[*asset](nil)
	first := &asset{ID: "x", Name: "first"}
	second := &asset{ID: "x", Name: "second"}
	set.Add(first)
	set.Add(second)
	require.Equal(t, 2, set.Len())

	set.SetIdentifierGetter(byID)

	require.Equal(t, 1, set.Len())
	assert.Same(t, first, set.Items()[0])
	assert.True(t, set.Contains(&asset{ID: "x"}))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want selection.Mode
		err  bool
	}{
		{"discard", selection.Discard, false},
		{"PRESERVE_EXISTING", selection.PreserveExisting, false},
		{"preserve-all", selection.PreserveAll, false},
		{"keep", selection.Discard, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := selection.ParseMode(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, selection.ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, must(selection.ParseMode(got.String())))
		})
	}
}

func must(m selection.Mode, err error) selection.Mode {
	if err != nil {
		panic(err)
	}
	return m
}

func TestApply_Discard(t *testing.T) {
	set := selection.NewSet(byID)
	for _, a := range items("a", "b") {
		set.Add(a)
	}
	consumed := 0

	changed, err := selection.Apply(selection.NewHandler(selection.Discard), set, countingWindow(items("a", "b"), &consumed))

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, 0, consumed)
}

func TestApply_PreserveExisting(t *testing.T) {
	set := selection.NewSet(byID)
	for _, a := range items("a", "b", "c") {
		set.Add(a)
	}
	consumed := 0

	changed, err := selection.Apply(selection.NewHandler(selection.PreserveExisting), set, countingWindow(items("b", "c", "d"), &consumed))

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"b", "c"}, ids(set))
	assert.False(t, set.Contains(&asset{ID: "d"}))
}

func TestApply_PreserveExistingStopsEarly(t *testing.T) {
	set := selection.NewSet(byID)
	set.Add(&asset{ID: "a"})

	window := make([]*asset, 0, 10000)
	window = append(window, &asset{ID: "a"})
	for i := 1; i < 10000; i++ {
		window = append(window, &asset{ID: string(rune('b' + i%20))})
	}
	consumed := 0

	changed, err := selection.Apply(selection.NewHandler(selection.PreserveExisting), set, countingWindow(window, &consumed))

	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, consumed)
	assert.Equal(t, []string{"a"}, ids(set))
}

func TestApply_PreserveExistingDuplicateIdentitiesInWindow(t *testing.T) {
	set := selection.NewSet(byID)
	for _, a := range items("a", "b") {
		set.Add(a)
	}
	consumed := 0

	// "a" repeats before "b"; the duplicate must not count as a second match.
	_, err := selection.Apply(selection.NewHandler(selection.PreserveExisting), set, countingWindow(items("a", "a", "b", "z"), &consumed))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(set))
	assert.Equal(t, 3, consumed)
}

func TestApply_PreserveExistingWindowError(t *testing.T) {
	set := selection.NewSet(byID)
	set.Add(&asset{ID: "a"})
	boom := errors.New("boom")
	window := func(yield func(*asset, error) bool) {
		yield(nil, boom)
	}

	changed, err := selection.Apply(selection.NewHandler(selection.PreserveExisting), set, window)

	assert.ErrorIs(t, err, boom)
	assert.False(t, changed)
	assert.Equal(t, 1, set.Len())
}

func TestApply_PreserveAll(t *testing.T) {
	set := selection.NewSet(byID)
	for _, a := range items("a", "b") {
		set.Add(a)
	}
	consumed := 0

	changed, err := selection.Apply(selection.NewHandler(selection.PreserveAll), set, countingWindow(nil, &consumed))

	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []string{"a", "b"}, ids(set))
}

func TestHandler_NeedsWindow(t *testing.T) {
	set := selection.NewSet(byID)
	h := selection.NewHandler(selection.PreserveExisting)
	assert.False(t, h.NeedsWindow(set))

	set.Add(&asset{ID: "a"})
	assert.True(t, h.NeedsWindow(set))

	h.SetMode(selection.PreserveAll)
	assert.Equal(t, selection.PreserveAll, h.Mode())
	assert.False(t, h.NeedsWindow(set))
}
