package binding

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"asset-picker/core/data"
	"asset-picker/core/keymapper"
	"asset-picker/core/roundtrip"
	"asset-picker/core/selection"

	"go.uber.org/zap"
)

// ErrNoDataProvider is returned by Rebuild when no provider is bound.
var ErrNoDataProvider = errors.New("no data provider bound")

// Binding connects one component instance to a data provider. It owns the key
// registry, the presentation list and the selection; nothing is shared between
// bindings, so the same item can carry different keys in different bindings.
//
// A Binding is not safe for concurrent use. Callers serialize access, usually
// through session.Session.Access.
type Binding[T any] struct {
	logger *zap.Logger

	provider   data.DataProvider[T]
	providerID data.Identifier[T]
	reg        data.Registration
	custom     data.Identifier[T]
	query      data.Query

	keys      *keymapper.KeyMapper[T]
	selection *selection.Set[T]
	preserve  *selection.Handler
	single    bool

	render Renderer[T]
	nodes  []*Node[T]
	size   int
	sizes  *roundtrip.Debouncer

	sizeHooks      hooks[SizeChangeEvent]
	selectionHooks hooks[SelectionEvent[T]]

	rebuilding      bool
	rerun           bool
	rerunInvalidate bool
}

// New creates an unbound binding. Size notifications are deferred through scheduler.
func New[T any](scheduler roundtrip.Scheduler, logger *zap.Logger) *Binding[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Binding[T]{
		logger:   logger,
		preserve: selection.NewHandler(selection.Discard),
	}
	b.keys = keymapper.New(b.identify)
	b.selection = selection.NewSet(b.identify)
	b.sizes = roundtrip.NewDebouncer(scheduler, func() {
		b.sizeHooks.fire(SizeChangeEvent{Size: b.size})
	})
	return b
}

// identify resolves identity: custom identifier, then the provider's, then the item.
func (b *Binding[T]) identify(item T) any {
	if b.custom != nil {
		return b.custom(item)
	}
	if b.providerID != nil {
		return b.providerID(item)
	}
	return data.ItemIdentity(item)
}

// SetSingle limits the selection to one item.
func (b *Binding[T]) SetSingle(single bool) {
	b.single = single
}

// SetRenderer sets how items are turned into node content and re-renders.
func (b *Binding[T]) SetRenderer(render Renderer[T]) {
	b.render = render
	b.Rerender()
}

func (b *Binding[T]) content(item T) Content {
	if b.render == nil {
		return Content{Label: fmt.Sprint(item), Enabled: true}
	}
	return b.render(item)
}

// Rerender recomputes the content of every bound node without fetching.
func (b *Binding[T]) Rerender() {
	for _, n := range b.nodes {
		if !n.Auxiliary() {
			n.Content = b.content(n.Item)
		}
	}
}

// KeyMapper exposes the key registry of this binding.
func (b *Binding[T]) KeyMapper() *keymapper.KeyMapper[T] {
	return b.keys
}

// DataProvider returns the bound provider, or nil.
func (b *Binding[T]) DataProvider() data.DataProvider[T] {
	return b.provider
}

// SetDataProvider binds p, replacing the previous subscription. The selection is
// cleared, keys are reset and the list is rebuilt. A nil provider unbinds.
func (b *Binding[T]) SetDataProvider(ctx context.Context, p data.DataProvider[T]) error {
	if b.reg != nil {
		b.reg.Remove()
		b.reg = nil
	}
	b.provider = p
	b.providerID = nil
	if p != nil {
		b.providerID = data.DefaultIdentifier(p)
		b.reg = p.AddListener(b.onDataChange)
	}
	b.selection.SetIdentifierGetter(b.identify)
	b.ClearSelection()

	if p == nil {
		b.keys.RemoveAll()
		b.nodes = b.auxiliary()
		b.size = 0
		b.sizes.Trigger()
		return nil
	}
	return b.Rebuild(ctx)
}

// Query returns the current window query.
func (b *Binding[T]) Query() data.Query {
	return b.query
}

// SetQuery changes filter, sort or window and rebuilds when a provider is bound.
func (b *Binding[T]) SetQuery(ctx context.Context, q data.Query) error {
	b.query = q
	if b.provider == nil {
		return nil
	}
	return b.Rebuild(ctx)
}

// SetIdentifierGetter overrides how items are identified. The selection is
// re-indexed and, with a provider bound, keys are reset by a rebuild.
// A nil identifier restores the provider's default.
func (b *Binding[T]) SetIdentifierGetter(ctx context.Context, id data.Identifier[T]) error {
	b.custom = id
	b.selection.SetIdentifierGetter(b.identify)
	if b.provider == nil {
		b.keys.RemoveAll()
		return nil
	}
	return b.Rebuild(ctx)
}

// SelectionPreservationMode returns the mode applied on the next invalidation.
func (b *Binding[T]) SelectionPreservationMode() selection.Mode {
	return b.preserve.Mode()
}

// SetSelectionPreservationMode sets the mode applied on the next invalidation.
func (b *Binding[T]) SetSelectionPreservationMode(mode selection.Mode) {
	b.preserve.SetMode(mode)
}

func (b *Binding[T]) onDataChange(ctx context.Context, ev data.ChangeEvent[T]) {
	if ev.Kind == data.Refresh {
		b.RefreshItem(ev.Item)
		return
	}
	if err := b.Invalidate(ctx); err != nil {
		b.logger.Error("Rebuild after invalidation failed", zap.Error(err))
	}
}

// Invalidate applies the selection preservation mode and rebuilds from scratch.
func (b *Binding[T]) Invalidate(ctx context.Context) error {
	return b.run(ctx, true)
}

// Rebuild clears the presentation list, resets keys and refetches the window.
func (b *Binding[T]) Rebuild(ctx context.Context) error {
	return b.run(ctx, false)
}

// run is the critical section of a binding. A request arriving while a pass is in
// progress (e.g. from a listener reacting to that pass) is folded into one more pass
// after the current one, even when the current pass failed. Only the errors of the
// last pass are returned; earlier ones are logged.
//
// A failed preservation step never skips the rebuild, so keys are reset and the
// list reflects the source in every mode.
func (b *Binding[T]) run(ctx context.Context, invalidate bool) error {
	if b.rebuilding {
		b.rerun = true
		b.rerunInvalidate = b.rerunInvalidate || invalidate
		return nil
	}
	if b.provider == nil {
		return ErrNoDataProvider
	}

	b.rebuilding = true
	defer func() {
		b.rebuilding = false
		b.rerun = false
		b.rerunInvalidate = false
	}()

	for {
		var preserveErr error
		if invalidate {
			preserveErr = b.preserveSelection(ctx)
		}
		err := errors.Join(preserveErr, b.rebuild(ctx))
		if !b.rerun {
			return err
		}
		if err != nil {
			b.logger.Warn("Pass failed, running pending pass", zap.Error(err))
		}
		invalidate = b.rerunInvalidate
		b.rerun, b.rerunInvalidate = false, false
	}
}

func (b *Binding[T]) preserveSelection(ctx context.Context) error {
	old := b.selection.Items()
	var window iter.Seq2[T, error]
	if b.preserve.NeedsWindow(b.selection) {
		window = b.provider.Fetch(ctx, b.query)
	}
	changed, err := selection.Apply(b.preserve, b.selection, window)
	if err != nil {
		return fmt.Errorf("failed to preserve selection: %w", err)
	}
	if changed {
		b.selectionHooks.fire(SelectionEvent[T]{Old: old, New: b.selection.Items()})
	}
	return nil
}

func (b *Binding[T]) rebuild(ctx context.Context) error {
	aux := b.auxiliary()
	clear(b.nodes)
	b.nodes = append(b.nodes[:0], aux...)
	b.keys.RemoveAll()

	count := 0
	var fetchErr error
	for item, err := range b.provider.Fetch(ctx, b.query) {
		if err != nil {
			fetchErr = err
			break
		}
		b.nodes = append(b.nodes, &Node[T]{
			Key:      b.keys.Key(item),
			Item:     item,
			Content:  b.content(item),
			Selected: b.selection.Contains(item),
		})
		count++
	}

	b.size = count
	b.sizes.Trigger()

	if fetchErr != nil {
		return fmt.Errorf("failed to fetch items: %w", fetchErr)
	}
	b.logger.Debug("Rebuilt item list", zap.Int("size", count), zap.Int("selected", b.selection.Len()))
	return nil
}

// RefreshItem updates the node showing item's identity in place. Keys, order and
// size stay the same; it reports whether such a node was rendered. A selected item
// is swapped for the refreshed instance without changing membership.
func (b *Binding[T]) RefreshItem(item T) bool {
	id := b.identify(item)
	b.selection.Update(item)
	for _, n := range b.nodes {
		if n.Auxiliary() || b.identify(n.Item) != id {
			continue
		}
		if b.keys.Has(item) {
			b.keys.Refresh(item)
		}
		n.Item = item
		n.Content = b.content(item)
		return true
	}
	return false
}

// Close drops the provider subscription.
func (b *Binding[T]) Close() {
	if b.reg != nil {
		b.reg.Remove()
		b.reg = nil
	}
}

// Nodes returns a snapshot of the presentation list.
func (b *Binding[T]) Nodes() []Node[T] {
	out := make([]Node[T], 0, len(b.nodes))
	for _, n := range b.nodes {
		out = append(out, *n)
	}
	return out
}

// Size returns the item count of the last rebuild.
func (b *Binding[T]) Size() int {
	return b.size
}

// Item resolves a key handed out by this binding.
func (b *Binding[T]) Item(key string) (T, bool) {
	return b.keys.Get(key)
}

// Key returns the key of a rendered item, minting one if the item is new.
func (b *Binding[T]) Key(item T) string {
	return b.keys.Key(item)
}

// SetAuxiliary places or replaces an out-of-band node. Auxiliary nodes sit ahead of
// the bound items and survive rebuilds.
func (b *Binding[T]) SetAuxiliary(slot string, content Content, selected bool) {
	for _, n := range b.nodes {
		if n.Slot == slot {
			n.Content = content
			n.Selected = selected
			return
		}
	}
	node := &Node[T]{Slot: slot, Content: content, Selected: selected}
	pos := len(b.auxiliary())
	b.nodes = append(b.nodes, nil)
	copy(b.nodes[pos+1:], b.nodes[pos:])
	b.nodes[pos] = node
}

// RemoveAuxiliary drops the auxiliary node in slot.
func (b *Binding[T]) RemoveAuxiliary(slot string) {
	for i, n := range b.nodes {
		if n.Slot == slot {
			b.nodes = append(b.nodes[:i], b.nodes[i+1:]...)
			return
		}
	}
}

func (b *Binding[T]) auxiliary() []*Node[T] {
	var aux []*Node[T]
	for _, n := range b.nodes {
		if n.Auxiliary() {
			aux = append(aux, n)
		}
	}
	return aux
}

// AddSizeChangeListener subscribes to the debounced size notification.
func (b *Binding[T]) AddSizeChangeListener(fn func(SizeChangeEvent)) data.Registration {
	return b.sizeHooks.add(fn)
}

// AddSelectionListener subscribes to selection changes.
func (b *Binding[T]) AddSelectionListener(fn func(SelectionEvent[T])) data.Registration {
	return b.selectionHooks.add(fn)
}
