package selectfield

import (
	"context"
	"errors"

	"asset-picker/core/binding"
	"asset-picker/core/logger"
	"asset-picker/core/selection"
	"asset-picker/core/session"
	"asset-picker/feature/catalog"

	"go.uber.org/zap"
)

const attrKey = "selectfield"

// ErrNoComponent is returned when a session holds no select.
var ErrNoComponent = errors.New("session has no select")

// CreateRequest configures a new select.
type CreateRequest struct {
	Mode         string               `json:"mode"`
	EmptyAllowed bool                 `json:"empty_allowed"`
	EmptyCaption string               `json:"empty_caption"`
	Placeholder  string               `json:"placeholder"`
	ReadOnly     bool                 `json:"read_only"`
	Category     string               `json:"category"`
	Query        catalog.QueryRequest `json:"query"`
}

// ValueChange is the payload of a value-change event.
type ValueChange struct {
	Value      string `json:"value"`
	FromClient bool   `json:"from_client"`
}

// State is the client view of a select after a round trip.
type State struct {
	Session     string             `json:"session"`
	Items       []binding.NodeView `json:"items"`
	Size        int                `json:"size"`
	Value       string             `json:"value"`
	Key         string             `json:"key"`
	Placeholder string             `json:"placeholder,omitempty"`
	Mode        string             `json:"mode"`
	ReadOnly    bool               `json:"read_only"`
	Events      []session.Event    `json:"events"`
}

// Service runs selects over the catalog, one per session.
type Service struct {
	store  *session.Store
	source catalog.Source
	cfg    session.Config
	logger *zap.Logger
}

// NewService creates a select service.
func NewService(store *session.Store, source catalog.Source, cfg session.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, source: source, cfg: cfg, logger: logger}
}

func ref(assets []catalog.Asset) string {
	if len(assets) == 0 {
		return ""
	}
	return assets[0].Ref()
}

// Create opens a session with a new select bound to the catalog.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*State, error) {
	name := req.Mode
	if name == "" {
		name = s.cfg.SelectionMode
	}
	mode, err := selection.ParseMode(name)
	if err != nil {
		return nil, err
	}

	sess := s.store.Create()
	l := logger.WithSession(s.logger, sess.ID)

	var state *State
	events, err := sess.Access(func() error {
		f := New[catalog.Asset](sess.Scheduler(), l)
		f.SetItemLabelGenerator(func(a catalog.Asset) string { return a.Name })
		if req.Category != "" {
			category := req.Category
			f.SetItemEnabledProvider(func(a catalog.Asset) bool { return a.Category == category })
		}
		f.SetEmptySelectionCaption(req.EmptyCaption)
		f.SetEmptySelectionAllowed(req.EmptyAllowed)
		f.SetPlaceholder(req.Placeholder)
		f.SetReadOnly(req.ReadOnly)
		f.SetSelectionPreservationMode(mode)

		f.AddValueChangeListener(func(ev binding.SelectionEvent[catalog.Asset]) {
			sess.Emit("value-change", ValueChange{Value: ref(ev.New), FromClient: ev.FromClient})
		})
		f.AddSizeChangeListener(func(ev binding.SizeChangeEvent) {
			sess.Emit("size-change", ev)
		})

		sess.Set(attrKey, f)
		sess.OnClose(f.Close)

		if err := f.SetQuery(ctx, req.Query.Query(s.cfg.PageLimit)); err != nil {
			return err
		}
		if err := f.SetDataProvider(ctx, session.Bind[catalog.Asset](sess, s.source)); err != nil {
			return err
		}
		state = s.state(sess, f)
		return nil
	})
	if err != nil {
		_ = s.store.Delete(sess.ID)
		return nil, err
	}

	l.Info("Select created", zap.String("mode", mode.String()), zap.Int("size", state.Size))
	state.Events = events
	return state, nil
}

func (s *Service) state(sess *session.Session, f *Select[catalog.Asset]) *State {
	st := &State{
		Session:     sess.ID,
		Items:       f.Items(),
		Size:        f.Size(),
		Key:         f.Key(),
		Placeholder: f.Placeholder(),
		Mode:        f.SelectionPreservationMode().String(),
		ReadOnly:    f.IsReadOnly(),
	}
	if v, ok := f.Value(); ok {
		st.Value = v.Ref()
	}
	return st
}

func (s *Service) access(id string, fn func(f *Select[catalog.Asset]) error) (*State, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	var state *State
	events, err := sess.Access(func() error {
		f, ok := session.Attr[*Select[catalog.Asset]](sess, attrKey)
		if !ok {
			return ErrNoComponent
		}
		if err := fn(f); err != nil {
			return err
		}
		state = s.state(sess, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	state.Events = events
	return state, nil
}

// Get returns the select state and the events buffered since the last round trip.
func (s *Service) Get(id string) (*State, error) {
	return s.access(id, func(*Select[catalog.Asset]) error { return nil })
}

// SelectKey applies a client pick.
func (s *Service) SelectKey(id, key string) (*State, error) {
	return s.access(id, func(f *Select[catalog.Asset]) error {
		return f.SelectKey(key)
	})
}

// SetQuery changes the shown options.
func (s *Service) SetQuery(ctx context.Context, id string, req catalog.QueryRequest) (*State, error) {
	return s.access(id, func(f *Select[catalog.Asset]) error {
		return f.SetQuery(ctx, req.Query(s.cfg.PageLimit))
	})
}

// SetMode changes the selection preservation mode.
func (s *Service) SetMode(id, name string) (*State, error) {
	mode, err := selection.ParseMode(name)
	if err != nil {
		return nil, err
	}
	return s.access(id, func(f *Select[catalog.Asset]) error {
		f.SetSelectionPreservationMode(mode)
		return nil
	})
}

// Close ends the session and releases the select.
func (s *Service) Close(id string) error {
	return s.store.Delete(id)
}
