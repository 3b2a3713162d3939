package checkboxgroup

import (
	"context"
	"errors"
	"slices"

	"asset-picker/core/binding"
	"asset-picker/core/logger"
	"asset-picker/core/selection"
	"asset-picker/core/session"
	"asset-picker/feature/catalog"

	"go.uber.org/zap"
)

const attrKey = "checkboxgroup"

// ErrNoComponent is returned when a session holds no checkbox group.
var ErrNoComponent = errors.New("session has no checkbox group")

// CreateRequest configures a new group.
type CreateRequest struct {
	Mode               string               `json:"mode"`
	HelperText         string               `json:"helper_text"`
	ReadOnly           bool                 `json:"read_only"`
	DisabledCategories []string             `json:"disabled_categories"`
	Query              catalog.QueryRequest `json:"query"`
}

// ValueChange is the payload of a value-change event.
type ValueChange struct {
	Value      []string `json:"value"`
	FromClient bool     `json:"from_client"`
}

// State is the client view of a group after a round trip.
type State struct {
	Session    string             `json:"session"`
	Items      []binding.NodeView `json:"items"`
	Size       int                `json:"size"`
	Value      []string           `json:"value"`
	Keys       []string           `json:"keys"`
	Mode       string             `json:"mode"`
	ReadOnly   bool               `json:"read_only"`
	HelperText string             `json:"helper_text,omitempty"`
	Stale      []string           `json:"stale,omitempty"`
	Events     []session.Event    `json:"events"`
}

// Service runs checkbox groups over the catalog, one per session.
type Service struct {
	store  *session.Store
	source catalog.Source
	cfg    session.Config
	logger *zap.Logger
}

// NewService creates a checkbox group service.
func NewService(store *session.Store, source catalog.Source, cfg session.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, source: source, cfg: cfg, logger: logger}
}

func refs(assets []catalog.Asset) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.Ref())
	}
	return out
}

func (s *Service) mode(name string) (selection.Mode, error) {
	if name == "" {
		name = s.cfg.SelectionMode
	}
	return selection.ParseMode(name)
}

// Create opens a session with a new group bound to the catalog.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*State, error) {
	mode, err := s.mode(req.Mode)
	if err != nil {
		return nil, err
	}

	sess := s.store.Create()
	l := logger.WithSession(s.logger, sess.ID)

	var state *State
	events, err := sess.Access(func() error {
		g := New[catalog.Asset](sess.Scheduler(), l)
		g.SetItemLabelGenerator(func(a catalog.Asset) string { return a.Name })
		g.SetItemHelperGenerator(func(a catalog.Asset) string { return a.Category })
		if len(req.DisabledCategories) > 0 {
			disabled := slices.Clone(req.DisabledCategories)
			g.SetItemEnabledProvider(func(a catalog.Asset) bool { return !slices.Contains(disabled, a.Category) })
		}
		g.SetHelperText(req.HelperText)
		g.SetReadOnly(req.ReadOnly)
		g.SetSelectionPreservationMode(mode)

		g.AddValueChangeListener(func(ev binding.SelectionEvent[catalog.Asset]) {
			sess.Emit("value-change", ValueChange{Value: refs(ev.New), FromClient: ev.FromClient})
		})
		g.AddSizeChangeListener(func(ev binding.SizeChangeEvent) {
			sess.Emit("size-change", ev)
		})

		sess.Set(attrKey, g)
		sess.OnClose(g.Close)

		if err := g.SetQuery(ctx, req.Query.Query(s.cfg.PageLimit)); err != nil {
			return err
		}
		if err := g.SetDataProvider(ctx, session.Bind[catalog.Asset](sess, s.source)); err != nil {
			return err
		}
		state = s.state(sess, g)
		return nil
	})
	if err != nil {
		_ = s.store.Delete(sess.ID)
		return nil, err
	}

	l.Info("Checkbox group created", zap.String("mode", mode.String()), zap.Int("size", state.Size))
	state.Events = events
	return state, nil
}

func (s *Service) state(sess *session.Session, g *Group[catalog.Asset]) *State {
	return &State{
		Session:    sess.ID,
		Items:      g.Items(),
		Size:       g.Size(),
		Value:      refs(g.Value()),
		Keys:       g.Keys(),
		Mode:       g.SelectionPreservationMode().String(),
		ReadOnly:   g.IsReadOnly(),
		HelperText: g.HelperText(),
	}
}

// access runs fn against the group of session id and returns the resulting state.
func (s *Service) access(id string, fn func(g *Group[catalog.Asset]) ([]string, error)) (*State, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	var state *State
	events, err := sess.Access(func() error {
		g, ok := session.Attr[*Group[catalog.Asset]](sess, attrKey)
		if !ok {
			return ErrNoComponent
		}
		stale, err := fn(g)
		if err != nil {
			return err
		}
		state = s.state(sess, g)
		state.Stale = stale
		return nil
	})
	if err != nil {
		return nil, err
	}
	state.Events = events
	return state, nil
}

// Get returns the group state and the events buffered since the last round trip.
func (s *Service) Get(id string) (*State, error) {
	return s.access(id, func(*Group[catalog.Asset]) ([]string, error) { return nil, nil })
}

// UpdateValue applies the keys the client reports as checked.
func (s *Service) UpdateValue(id string, keys []string) (*State, error) {
	return s.access(id, func(g *Group[catalog.Asset]) ([]string, error) {
		return g.UpdateFromClient(keys)
	})
}

// SetQuery changes the shown window.
func (s *Service) SetQuery(ctx context.Context, id string, req catalog.QueryRequest) (*State, error) {
	return s.access(id, func(g *Group[catalog.Asset]) ([]string, error) {
		return nil, g.SetQuery(ctx, req.Query(s.cfg.PageLimit))
	})
}

// SetMode changes the selection preservation mode.
func (s *Service) SetMode(id, name string) (*State, error) {
	mode, err := selection.ParseMode(name)
	if err != nil {
		return nil, err
	}
	return s.access(id, func(g *Group[catalog.Asset]) ([]string, error) {
		g.SetSelectionPreservationMode(mode)
		return nil, nil
	})
}

// Close ends the session and releases the group.
func (s *Service) Close(id string) error {
	return s.store.Delete(id)
}
