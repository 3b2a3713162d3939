package selection

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for unrecognised names.
var ErrUnknownMode = errors.New("unknown selection preservation mode")

// Mode decides what survives an Invalidate.
type Mode int

const (
	// Discard clears the selection.
	Discard Mode = iota
	// PreserveExisting keeps selected items that are still in the fresh window.
	PreserveExisting
	// PreserveAll keeps the selection untouched.
	PreserveAll
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case PreserveExisting:
		return "preserve_existing"
	case PreserveAll:
		return "preserve_all"
	default:
		return "discard"
	}
}

// ParseMode parses discard, preserve_existing or preserve_all (case-insensitive,
// dashes accepted).
func ParseMode(s string) (Mode, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "discard":
		return Discard, nil
	case "preserve_existing":
		return PreserveExisting, nil
	case "preserve_all":
		return PreserveAll, nil
	default:
		return Discard, fmt.Errorf("%w %q", ErrUnknownMode, s)
	}
}

// Handler applies the configured Mode when a data source is invalidated.
// The mode only changes through SetMode and takes effect on the next Apply.
type Handler struct {
	mode Mode
}

// NewHandler creates a handler in mode.
func NewHandler(mode Mode) *Handler {
	return &Handler{mode: mode}
}

// Mode returns the current mode.
func (h *Handler) Mode() Mode {
	return h.mode
}

// SetMode switches the mode.
func (h *Handler) SetMode(mode Mode) {
	h.mode = mode
}

// NeedsWindow reports whether Apply will read the window for the current mode.
// Callers use it to avoid a fetch that would be ignored.
func (h *Handler) NeedsWindow(set interface{ Len() int }) bool {
	return h.mode == PreserveExisting && set.Len() > 0
}

// Apply reconciles set with a freshly fetched window and reports whether the set
// changed. window may be nil when NeedsWindow is false.
func Apply[T any](h *Handler, set *Set[T], window iter.Seq2[T, error]) (bool, error) {
	switch h.mode {
	case Discard:
		return set.Clear(), nil
	case PreserveExisting:
		return preserveExisting(set, window)
	default:
		return false, nil
	}
}

// preserveExisting drops selected identities missing from window. The window is read
// once and only until every candidate has been seen.
func preserveExisting[T any](set *Set[T], window iter.Seq2[T, error]) (bool, error) {
	candidates := make(map[any]struct{}, set.Len())
	for _, id := range set.Identities() {
		candidates[id] = struct{}{}
	}
	if len(candidates) == 0 {
		return false, nil
	}

	if window != nil {
		limit, matched := len(candidates), 0
		for item, err := range window {
			if err != nil {
				return false, err
			}
			id := set.Identity(item)
			if _, ok := candidates[id]; !ok {
				continue
			}
			delete(candidates, id)
			matched++
			if matched == limit {
				break
			}
		}
	}

	changed := false
	for id := range candidates {
		if set.RemoveIdentity(id) {
			changed = true
		}
	}
	return changed, nil
}
