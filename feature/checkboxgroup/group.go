package checkboxgroup

import (
	"context"
	"errors"
	"fmt"

	"asset-picker/core/binding"
	"asset-picker/core/data"
	"asset-picker/core/roundtrip"
	"asset-picker/core/selection"

	"go.uber.org/zap"
)

// HelperSlot is the auxiliary node carrying the group's helper text.
const HelperSlot = "helper"

// ErrReadOnly is returned for client changes to a read-only group.
var ErrReadOnly = errors.New("checkbox group is read-only")

// Group is a multi-select component over a data provider.
type Group[T any] struct {
	b *binding.Binding[T]

	label    func(T) string
	helper   func(T) string
	enabled  func(T) bool
	readOnly bool
	helpText string
}

// New creates an unbound group.
func New[T any](scheduler roundtrip.Scheduler, logger *zap.Logger) *Group[T] {
	g := &Group[T]{
		b:     binding.New[T](scheduler, logger),
		label: func(item T) string { return fmt.Sprint(item) },
	}
	g.b.SetRenderer(g.render)
	return g
}

func (g *Group[T]) render(item T) binding.Content {
	c := binding.Content{Label: g.label(item), Enabled: true}
	if g.helper != nil {
		c.Helper = g.helper(item)
	}
	if g.enabled != nil {
		c.Enabled = g.enabled(item)
	}
	return c
}

func (g *Group[T]) isEnabled(item T) bool {
	return g.enabled == nil || g.enabled(item)
}

// SetItemLabelGenerator sets the checkbox captions.
func (g *Group[T]) SetItemLabelGenerator(fn func(T) string) {
	if fn == nil {
		fn = func(item T) string { return fmt.Sprint(item) }
	}
	g.label = fn
	g.b.Rerender()
}

// SetItemHelperGenerator sets per-item helper text. Nil removes it.
func (g *Group[T]) SetItemHelperGenerator(fn func(T) string) {
	g.helper = fn
	g.b.Rerender()
}

// SetItemEnabledProvider decides which items the client may toggle. Nil enables all.
func (g *Group[T]) SetItemEnabledProvider(fn func(T) bool) {
	g.enabled = fn
	g.b.Rerender()
}

// SetHelperText sets the group's helper text. Empty removes it.
func (g *Group[T]) SetHelperText(text string) {
	g.helpText = text
	if text == "" {
		g.b.RemoveAuxiliary(HelperSlot)
		return
	}
	g.b.SetAuxiliary(HelperSlot, binding.Content{Label: text, Enabled: true}, false)
}

// HelperText returns the group's helper text.
func (g *Group[T]) HelperText() string {
	return g.helpText
}

// SetReadOnly blocks client changes. Programmatic changes still apply.
func (g *Group[T]) SetReadOnly(readOnly bool) {
	g.readOnly = readOnly
}

// IsReadOnly reports whether client changes are blocked.
func (g *Group[T]) IsReadOnly() bool {
	return g.readOnly
}

// SetDataProvider binds p and rebuilds. The value is cleared.
func (g *Group[T]) SetDataProvider(ctx context.Context, p data.DataProvider[T]) error {
	return g.b.SetDataProvider(ctx, p)
}

// SetQuery changes the shown window.
func (g *Group[T]) SetQuery(ctx context.Context, q data.Query) error {
	return g.b.SetQuery(ctx, q)
}

// Query returns the shown window.
func (g *Group[T]) Query() data.Query {
	return g.b.Query()
}

// SetItemIdentifier overrides how items are identified.
func (g *Group[T]) SetItemIdentifier(ctx context.Context, id data.Identifier[T]) error {
	return g.b.SetIdentifierGetter(ctx, id)
}

// SetSelectionPreservationMode sets what happens to the value when the provider
// invalidates.
func (g *Group[T]) SetSelectionPreservationMode(mode selection.Mode) {
	g.b.SetSelectionPreservationMode(mode)
}

// SelectionPreservationMode returns the current mode.
func (g *Group[T]) SelectionPreservationMode() selection.Mode {
	return g.b.SelectionPreservationMode()
}

// Value returns the checked items in check order.
func (g *Group[T]) Value() []T {
	return g.b.Selected()
}

// SetValue replaces the checked items. Nil is rejected.
func (g *Group[T]) SetValue(items []T) error {
	return g.b.SetSelection(items)
}

// Select checks items.
func (g *Group[T]) Select(items ...T) {
	g.b.Select(items...)
}

// Deselect unchecks items.
func (g *Group[T]) Deselect(items ...T) {
	g.b.Deselect(items...)
}

// Clear unchecks everything.
func (g *Group[T]) Clear() {
	g.b.ClearSelection()
}

// UpdateFromClient applies the full set of keys the client reports as checked.
// Stale keys are skipped and returned. Disabled items keep their current state.
func (g *Group[T]) UpdateFromClient(keys []string) ([]string, error) {
	if g.readOnly {
		return nil, ErrReadOnly
	}
	items, stale := g.b.ResolveKeys(keys)

	next := make([]T, 0, len(items))
	for _, item := range g.b.Selected() {
		if !g.isEnabled(item) {
			next = append(next, item)
		}
	}
	for _, item := range items {
		if g.isEnabled(item) {
			next = append(next, item)
		}
	}
	return stale, g.b.SetSelectionFromClient(next)
}

// Refresh re-renders the node of item without refetching.
func (g *Group[T]) Refresh(item T) bool {
	return g.b.RefreshItem(item)
}

// Items returns the presentation list.
func (g *Group[T]) Items() []binding.NodeView {
	return g.b.Views()
}

// Keys returns the client keys of the checked items that are shown.
func (g *Group[T]) Keys() []string {
	var keys []string
	for _, n := range g.b.Nodes() {
		if !n.Auxiliary() && n.Selected {
			keys = append(keys, n.Key)
		}
	}
	return keys
}

// Size returns the number of shown items.
func (g *Group[T]) Size() int {
	return g.b.Size()
}

// AddValueChangeListener subscribes to value changes.
func (g *Group[T]) AddValueChangeListener(fn func(binding.SelectionEvent[T])) data.Registration {
	return g.b.AddSelectionListener(fn)
}

// AddSizeChangeListener subscribes to the debounced size notification.
func (g *Group[T]) AddSizeChangeListener(fn func(binding.SizeChangeEvent)) data.Registration {
	return g.b.AddSizeChangeListener(fn)
}

// Close releases the provider subscription.
func (g *Group[T]) Close() {
	g.b.Close()
}
