package session

import (
	"sync"
	"time"

	"asset-picker/core/roundtrip"
)

// Event is a notification collected during a round trip and handed to the client
// with the response.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Session is one UI session. Everything attached to it is mutated under its lock.
type Session struct {
	ID string

	mu       sync.Mutex
	queue    *roundtrip.Queue
	events   []Event
	attrs    map[string]any
	closers  []func()
	now      func() time.Time
	lastSeen time.Time
	closed   bool
}

func newSession(id string, now func() time.Time) *Session {
	return &Session{
		ID:       id,
		queue:    roundtrip.NewQueue(),
		attrs:    make(map[string]any),
		now:      now,
		lastSeen: now(),
	}
}

// Scheduler returns the round-trip queue components defer work to.
func (s *Session) Scheduler() roundtrip.Scheduler {
	return s.queue
}

// Access runs fn under the session lock, then flushes work deferred during fn and
// returns the events collected in this round trip. When fn fails the events stay
// buffered for the next successful round trip.
func (s *Session) Access(fn func() error) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = s.now()
	err := fn()
	s.queue.Flush()
	if err != nil {
		return nil, err
	}

	events := s.events
	s.events = nil
	return events, nil
}

// Background runs fn under the session lock outside a client round trip, for
// example when a data provider notifies a component. Deferred work is flushed but
// the events stay buffered until the next Access. Closed sessions skip fn.
func (s *Session) Background(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	fn()
	s.queue.Flush()
}

// Emit records an event for the current round trip. Only call it under Access.
func (s *Session) Emit(typ string, payload any) {
	s.events = append(s.events, Event{Type: typ, Data: payload})
}

// Set stores an attribute. Only call it under Access.
func (s *Session) Set(key string, value any) {
	s.attrs[key] = value
}

// Get loads an attribute. Only call it under Access.
func (s *Session) Get(key string) (any, bool) {
	v, ok := s.attrs[key]
	return v, ok
}

// OnClose registers cleanup run when the session ends. Only call it under Access.
func (s *Session) OnClose(fn func()) {
	s.closers = append(s.closers, fn)
}

// close runs cleanup once.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
	clear(s.attrs)
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Attr loads a typed attribute. Only call it under Access.
func Attr[V any](s *Session, key string) (V, bool) {
	v, ok := s.attrs[key].(V)
	return v, ok
}
