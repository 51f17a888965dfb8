// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/freight-desk/ids"
	"github.com/danielhkuo/freight-desk/models"
)

// Config wires a Manager to its collaborators
type Config struct {
	Store   OrderStore
	Refs    ReferenceProvider
	Refresh func()        // list refresh trigger, may be nil
	TTL     time.Duration // idle sessions older than this are reaped; 0 disables
	Now     func() time.Time
}

// Manager owns every open wizard session
type Manager struct {
	cfg Config

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(cfg Config) *Manager {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Manager{cfg: cfg, sessions: map[string]*Session{}}
}

// OpenOptions selects a new or an existing order
type OpenOptions struct {
	Order    *models.Order // edit this order when set
	Notifier Notifier      // extra sink besides the session's own log
}

// Open starts a fresh session on CLIENT. Reference lists are captured now.
func (m *Manager) Open(opts OpenOptions) *Session {
	id := ids.NewSessionID()

	state := NewState()
	if opts.Order != nil {
		state = EditState(opts.Order.ID, DataFromOrder(*opts.Order))
		state.Status = opts.Order.Status
	}

	notices := &NoticeLog{}
	sinks := Notifiers{notices, SlogNotifier{SessionID: id}}
	if opts.Notifier != nil {
		sinks = append(sinks, opts.Notifier)
	}

	s := &Session{
		id:       id,
		state:    state,
		opts:     OptionsFrom(m.cfg.Refs),
		lastSeen: m.cfg.Now(),
		notices:  notices,
		notify:   sinks,
		store:    m.cfg.Store,
		refresh:  m.cfg.Refresh,
		onClose:  m.forget,
		now:      m.cfg.Now,
	}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	slog.Info("wizard opened", "session_id", id, "edit", state.IsEdit, "order_id", state.OrderID)
	return s
}

// Get returns an open session
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, ErrSessionUnknown
	}
	return s, nil
}

// Close discards a session (cancel, overlay click, Escape).
// A submission still in flight for it is ignored when it resolves.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrSessionUnknown
	}
	if s.close() {
		slog.Info("wizard closed", "session_id", id)
	}
	return nil
}

// Len returns the number of open sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) forget(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Reap closes sessions idle for longer than the TTL and returns how many.
// Sessions with a submission outstanding are kept.
func (m *Manager) Reap() int {
	if m.cfg.TTL <= 0 {
		return 0
	}
	cutoff := m.cfg.Now().Add(-m.cfg.TTL)

	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		if !s.closeIfIdle(cutoff) {
			continue
		}
		stale = append(stale, s)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, s := range stale {
		slog.Info("wizard session expired", "session_id", s.ID())
	}
	return len(stale)
}

// Run reaps idle sessions every interval until ctx is done
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Reap()
		}
	}
}
