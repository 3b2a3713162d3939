package selectfield

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

// EmptySlot is the auxiliary node that stands for "no selection".
const EmptySlot = "empty"

var (
	// ErrReadOnly is returned for client changes to a read-only field.
	ErrReadOnly = errors.New("select is read-only")
	// ErrUnknownKey is returned for keys that do not resolve to a shown item.
	ErrUnknownKey = errors.New("unknown item key")
	// ErrDisabled is returned when the client picks a disabled item.
	ErrDisabled = errors.New("item is disabled")
)

// Select is a single-select component over a data provider.
type Select[T any] struct {
	b *binding.Binding[T]

	label        func(T) string
	enabled      func(T) bool
	readOnly     bool
	emptyAllowed bool
	emptyCaption string
	placeholder  string
}

// New creates an unbound select.
func New[T any](scheduler roundtrip.Scheduler, logger *zap.Logger) *Select[T] {
	s := &Select[T]{
		b:     binding.New[T](scheduler, logger),
		label: func(item T) string { return fmt.Sprint(item) },
	}
	s.b.SetSingle(true)
	s.b.SetRenderer(s.render)
	s.b.AddSelectionListener(func(binding.SelectionEvent[T]) { s.syncEmpty() })
	return s
}

func (s *Select[T]) render(item T) binding.Content {
	return binding.Content{Label: s.label(item), Enabled: s.enabled == nil || s.enabled(item)}
}

// SetItemLabelGenerator sets the option captions.
func (s *Select[T]) SetItemLabelGenerator(fn func(T) string) {
	if fn == nil {
		fn = func(item T) string { return fmt.Sprint(item) }
	}
	s.label = fn
	s.b.Rerender()
}

// SetItemEnabledProvider decides which options the client may pick. Nil enables all.
func (s *Select[T]) SetItemEnabledProvider(fn func(T) bool) {
	s.enabled = fn
	s.b.Rerender()
}

// SetEmptySelectionAllowed adds or removes the empty option.
func (s *Select[T]) SetEmptySelectionAllowed(allowed bool) {
	s.emptyAllowed = allowed
	s.syncEmpty()
}

// IsEmptySelectionAllowed reports whether the empty option is shown.
func (s *Select[T]) IsEmptySelectionAllowed() bool {
	return s.emptyAllowed
}

// SetEmptySelectionCaption sets the caption of the empty option.
func (s *Select[T]) SetEmptySelectionCaption(caption string) {
	s.emptyCaption = caption
	s.syncEmpty()
}

func (s *Select[T]) syncEmpty() {
	if !s.emptyAllowed {
		s.b.RemoveAuxiliary(EmptySlot)
		return
	}
	s.b.SetAuxiliary(EmptySlot, binding.Content{Label: s.emptyCaption, Enabled: true}, len(s.b.Selected()) == 0)
}

// SetPlaceholder sets the text shown while nothing is selected.
func (s *Select[T]) SetPlaceholder(text string) {
	s.placeholder = text
}

// Placeholder returns the placeholder text.
func (s *Select[T]) Placeholder() string {
	return s.placeholder
}

// SetReadOnly blocks client changes.
func (s *Select[T]) SetReadOnly(readOnly bool) {
	s.readOnly = readOnly
}

// IsReadOnly reports whether client changes are blocked.
func (s *Select[T]) IsReadOnly() bool {
	return s.readOnly
}

// SetDataProvider binds p and rebuilds. The value is cleared.
func (s *Select[T]) SetDataProvider(ctx context.Context, p data.DataProvider[T]) error {
	return s.b.SetDataProvider(ctx, p)
}

// SetQuery changes the shown options.
func (s *Select[T]) SetQuery(ctx context.Context, q data.Query) error {
	return s.b.SetQuery(ctx, q)
}

// SetItemIdentifier overrides how items are identified.
func (s *Select[T]) SetItemIdentifier(ctx context.Context, id data.Identifier[T]) error {
	return s.b.SetIdentifierGetter(ctx, id)
}

// SetSelectionPreservationMode sets what happens to the value when the provider
// invalidates.
func (s *Select[T]) SetSelectionPreservationMode(mode selection.Mode) {
	s.b.SetSelectionPreservationMode(mode)
}

// SelectionPreservationMode returns the current mode.
func (s *Select[T]) SelectionPreservationMode() selection.Mode {
	return s.b.SelectionPreservationMode()
}

// Value returns the selected item.
func (s *Select[T]) Value() (T, bool) {
	selected := s.b.Selected()
	if len(selected) == 0 {
		var zero T
		return zero, false
	}
	return selected[0], true
}

// SetValue selects item.
func (s *Select[T]) SetValue(item T) {
	s.b.Select(item)
}

// Clear empties the value.
func (s *Select[T]) Clear() {
	s.b.ClearSelection()
}

// SelectKey applies a client pick. The empty key picks the empty option.
func (s *Select[T]) SelectKey(key string) error {
	if s.readOnly {
		return ErrReadOnly
	}
	if key == "" {
		if !s.emptyAllowed {
			return ErrUnknownKey
		}
		return s.b.SetSelectionFromClient([]T{})
	}

	items, stale := s.b.ResolveKeys([]string{key})
	if len(stale) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if s.enabled != nil && !s.enabled(items[0]) {
		return ErrDisabled
	}
	return s.b.SetSelectionFromClient(items)
}

// Key returns the client key of the selected option, if it is shown.
func (s *Select[T]) Key() string {
	for _, n := range s.b.Nodes() {
		if !n.Auxiliary() && n.Selected {
			return n.Key
		}
	}
	return ""
}

// Items returns the presentation list.
func (s *Select[T]) Items() []binding.NodeView {
	return s.b.Views()
}

// Size returns the number of shown options.
func (s *Select[T]) Size() int {
	return s.b.Size()
}

// AddValueChangeListener subscribes to value changes.
func (s *Select[T]) AddValueChangeListener(fn func(binding.SelectionEvent[T])) data.Registration {
	return s.b.AddSelectionListener(fn)
}

// AddSizeChangeListener subscribes to the debounced size notification.
func (s *Select[T]) AddSizeChangeListener(fn func(binding.SizeChangeEvent)) data.Registration {
	return s.b.AddSizeChangeListener(fn)
}

// Close releases the provider subscription.
func (s *Select[T]) Close() {
	s.b.Close()
}
