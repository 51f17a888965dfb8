// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/freight-desk/models"
)

// OrderStore persists orders built by the wizard
type OrderStore interface {
	Create(ctx context.Context, p models.OrderPayload) (models.Order, error)
}

// OrderUpdater is implemented by stores that can overwrite an existing order
type OrderUpdater interface {
	Update(ctx context.Context, id string, p models.OrderPayload) (models.Order, error)
}

// StoreError carries an Order Store failure. Its message is the store's,
// verbatim.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

// User-facing messages
const (
	msgOrderCreated = "Order created"
	msgOrderUpdated = "Order updated"
	msgDraftSaved   = "Draft saved"
)

// Session is one open wizard. All methods are safe for concurrent use;
// store calls run without holding the lock so Close is never blocked.
type Session struct {
	id string

	mu         sync.Mutex
	state      State
	opts       Options
	closed     bool
	submitting bool
	lastSeen   time.Time

	notices *NoticeLog
	notify  Notifier
	store   OrderStore
	refresh func()
	onClose func(id string)
	now     func() time.Time
}

func (s *Session) ID() string { return s.id }

// State returns a snapshot of the session state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// View renders the current state
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Render(s.id, s.state, s.opts)
}

// Notices drains notifications raised since the last call
func (s *Session) Notices() []models.Notice {
	return s.notices.Drain()
}

// Closed reports whether the session has ended
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Submitting reports whether a store call is outstanding
func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// begin locks the session for an event. The caller must unlock.
func (s *Session) begin() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.lastSeen = s.now()
	return nil
}

// harvest merges values into the state. Caller holds the lock.
func (s *Session) harvest(values Values) error {
	st, err := Collect(s.state, values)
	if err != nil {
		return err
	}
	s.state = st
	return nil
}

// Collect stores harvested field values without navigating
func (s *Session) Collect(values Values) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	return s.harvest(values)
}

// GoTo is the sidebar jump: harvest, then move to any section ungated
func (s *Session) GoTo(id Section, values Values) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSection, string(id))
	}
	if err := s.begin(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if err := s.harvest(values); err != nil {
		return err
	}
	s.state = GoToSection(s.state, id)
	return nil
}

// Next is the gated forward action: harvest, validate, then advance.
// On failure the section is marked ERROR and stays current.
func (s *Session) Next(values Values) error {
	if err := s.begin(); err != nil {
		return err
	}
	if err := s.harvest(values); err != nil {
		s.mu.Unlock()
		return err
	}

	from := s.state.Current
	st, err := Advance(s.state)
	s.state = st
	s.mu.Unlock()
	if err != nil {
		slog.Info("wizard section rejected", "session_id", s.id, "section", string(from), "reason", err)
		s.notify.Notify(capitalize(err.Error()), SeverityError)
		return fmt.Errorf("%w: %w", ErrSectionInvalid, err)
	}
	return nil
}

// Back harvests and moves one section back
func (s *Session) Back(values Values) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if err := s.harvest(values); err != nil {
		return err
	}
	s.state = GoToPrevSection(s.state)
	return nil
}

// CreateOrder submits the accumulated order. Client and route are checked
// here again regardless of section states; a missing one moves the wizard
// to its section. Success closes the session and requests a list refresh.
// Store failures keep the session open with data intact.
func (s *Session) CreateOrder(ctx context.Context, values Values) (models.Order, error) {
	if err := s.begin(); err != nil {
		return models.Order{}, err
	}
	if err := s.checkIdle(); err != nil {
		s.mu.Unlock()
		return models.Order{}, err
	}
	if err := s.harvest(values); err != nil {
		s.mu.Unlock()
		return models.Order{}, err
	}

	d := s.state.Data
	var guard error
	switch {
	case !present(d.ClientID):
		guard = ErrClientRequired
		s.state = GoToSection(s.state, SectionClient)
	case !present(d.RouteFrom) || !present(d.RouteTo):
		guard = ErrRouteRequired
		s.state = GoToSection(s.state, SectionRoute)
	}
	if guard != nil {
		s.mu.Unlock()
		s.notify.Notify(capitalize(guard.Error()), SeverityError)
		return models.Order{}, guard
	}

	payload := CreatePayload(d)
	if s.state.Status != "" {
		payload.Status = s.state.Status
	}
	orderID := s.state.OrderID
	s.submitting = true
	s.mu.Unlock()

	order, err := s.save(ctx, orderID, payload)

	s.mu.Lock()
	s.submitting = false
	if s.closed {
		s.mu.Unlock()
		slog.Info("wizard result dropped for closed session", "session_id", s.id, "error", err)
		return order, ErrSessionClosed
	}
	if err != nil {
		s.mu.Unlock()
		slog.Error("wizard create failed", "session_id", s.id, "error", err)
		s.notify.Notify(err.Error(), SeverityError)
		return models.Order{}, &StoreError{Err: err}
	}
	s.closed = true
	s.mu.Unlock()

	msg := msgOrderCreated
	if orderID != "" {
		msg = msgOrderUpdated
	}
	slog.Info("wizard order saved", "session_id", s.id, "order_id", order.ID, "status", order.Status)
	s.notify.Notify(msg, SeveritySuccess)
	s.triggerRefresh()
	if s.onClose != nil {
		s.onClose(s.id)
	}
	return order, nil
}

// SaveDraft persists the current data as a draft. Only the client is
// required. The session stays open; later saves overwrite the same draft
// when the store supports updates.
func (s *Session) SaveDraft(ctx context.Context, values Values) (models.Order, error) {
	if err := s.begin(); err != nil {
		return models.Order{}, err
	}
	if err := s.checkIdle(); err != nil {
		s.mu.Unlock()
		return models.Order{}, err
	}
	if err := s.harvest(values); err != nil {
		s.mu.Unlock()
		return models.Order{}, err
	}
	if !present(s.state.Data.ClientID) {
		s.mu.Unlock()
		s.notify.Notify(capitalize(ErrClientRequired.Error()), SeverityError)
		return models.Order{}, ErrClientRequired
	}

	payload := DraftPayload(s.state.Data)
	if s.state.Status != "" {
		payload.Status = s.state.Status
	}
	orderID := s.state.OrderID
	s.submitting = true
	s.mu.Unlock()

	order, err := s.save(ctx, orderID, payload)

	s.mu.Lock()
	s.submitting = false
	if s.closed {
		s.mu.Unlock()
		slog.Info("wizard result dropped for closed session", "session_id", s.id, "error", err)
		return order, ErrSessionClosed
	}
	if err != nil {
		s.mu.Unlock()
		slog.Error("wizard draft save failed", "session_id", s.id, "error", err)
		s.notify.Notify(err.Error(), SeverityError)
		return models.Order{}, &StoreError{Err: err}
	}
	if s.state.OrderID == "" && order.ID != "" {
		s.state.OrderID = order.ID
	}
	s.mu.Unlock()

	slog.Info("wizard draft saved", "session_id", s.id, "order_id", order.ID)
	s.notify.Notify(msgDraftSaved, SeveritySuccess)
	s.triggerRefresh()
	return order, nil
}

// checkIdle rejects a second submission while one is outstanding.
// Caller holds the lock.
func (s *Session) checkIdle() error {
	if s.submitting {
		return ErrSubmitInFlight
	}
	return nil
}

// save creates, or updates when the session is bound to an order and the
// store can update
func (s *Session) save(ctx context.Context, orderID string, p models.OrderPayload) (models.Order, error) {
	if orderID != "" {
		if u, ok := s.store.(OrderUpdater); ok {
			return u.Update(ctx, orderID, p)
		}
	}
	return s.store.Create(ctx, p)
}

func (s *Session) triggerRefresh() {
	if s.refresh != nil {
		s.refresh()
	}
}

// close ends the session. Outstanding store results are dropped.
func (s *Session) close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.closed = true
	return true
}

// closeIfIdle closes the session when it was last used before cutoff and
// no submission is outstanding. The check and the close share one lock.
func (s *Session) closeIfIdle(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.submitting || !s.lastSeen.Before(cutoff) {
		return false
	}
	s.closed = true
	return true
}

// IsGuardError reports whether err is a submission guard or section gate
// failure, i.e. something the user fixes in the form
func IsGuardError(err error) bool {
	return errors.Is(err, ErrClientRequired) ||
		errors.Is(err, ErrRouteRequired) ||
		errors.Is(err, ErrSectionInvalid)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
