package binding

import (
	"sync"

	"asset-picker/core/data"
)

// Content is the rendered, component specific part of a node.
type Content struct {
	Label   string `json:"label"`
	Helper  string `json:"helper,omitempty"`
	Enabled bool   `json:"enabled"`
}

// Renderer turns an item into node content.
type Renderer[T any] func(item T) Content

// Node is one entry of the presentation list.
type Node[T any] struct {
	// Key addresses the item; empty for auxiliary nodes.
	Key  string
	Item T
	// Content is what the client shows.
	Content Content
	// Selected mirrors selection membership of Item.
	Selected bool
	// Slot names an auxiliary node that is not bound to an item.
	Slot string
}

// Auxiliary reports whether the node is an out-of-band element.
func (n Node[T]) Auxiliary() bool {
	return n.Slot != ""
}

// NodeView is the client facing form of a node.
type NodeView struct {
	Key  string `json:"key,omitempty"`
	Slot string `json:"slot,omitempty"`
	Content
	Selected bool `json:"selected"`
}

// View drops the item, which never leaves the server.
func (n Node[T]) View() NodeView {
	return NodeView{Key: n.Key, Slot: n.Slot, Content: n.Content, Selected: n.Selected}
}

// Views returns the presentation list in client form.
func (b *Binding[T]) Views() []NodeView {
	out := make([]NodeView, 0, len(b.nodes))
	for _, n := range b.nodes {
		out = append(out, n.View())
	}
	return out
}

// SizeChangeEvent carries the authoritative number of items after a rebuild.
type SizeChangeEvent struct {
	Size int `json:"size"`
}

// SelectionEvent describes a selection change.
type SelectionEvent[T any] struct {
	Old []T
	New []T
	// FromClient is true when the change came from the presentation layer.
	FromClient bool
}

// hooks is an ordered list of callbacks with disposable registrations.
type hooks[E any] struct {
	mu    sync.Mutex
	next  int
	fns   map[int]func(E)
	order []int
}

func (h *hooks[E]) add(fn func(E)) data.Registration {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fns == nil {
		h.fns = make(map[int]func(E))
	}
	h.next++
	id := h.next
	h.fns[id] = fn
	h.order = append(h.order, id)
	return data.RegistrationFunc(func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.fns[id]; !ok {
			return
		}
		delete(h.fns, id)
		for i, v := range h.order {
			if v == id {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	})
}

func (h *hooks[E]) fire(ev E) {
	h.mu.Lock()
	fns := make([]func(E), 0, len(h.order))
	for _, id := range h.order {
		fns = append(fns, h.fns[id])
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}
