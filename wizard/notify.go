// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/danielhkuo/freight-desk/models"
)

// Severity of a user notification
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notifier receives user-facing messages. Fire and forget.
type Notifier interface {
	Notify(message string, severity Severity)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(message string, severity Severity)

func (f NotifierFunc) Notify(message string, severity Severity) { f(message, severity) }

// NoticeLog buffers notifications until the next response drains them
type NoticeLog struct {
	mu      sync.Mutex
	notices []models.Notice
}

func (l *NoticeLog) Notify(message string, severity Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notices = append(l.notices, models.Notice{Message: message, Severity: string(severity)})
}

// Drain returns and clears the buffered notifications
func (l *NoticeLog) Drain() []models.Notice {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.notices
	l.notices = nil
	if out == nil {
		out = []models.Notice{}
	}
	return out
}

// SlogNotifier writes notifications to the structured log
type SlogNotifier struct {
	SessionID string
}

func (n SlogNotifier) Notify(message string, severity Severity) {
	level := slog.LevelInfo
	if severity == SeverityError {
		level = slog.LevelWarn
	}
	slog.Log(context.Background(), level, "wizard notice", "session_id", n.SessionID, "severity", string(severity), "message", message)
}

// Notifiers fans a notification out to several sinks
type Notifiers []Notifier

func (ns Notifiers) Notify(message string, severity Severity) {
	for _, n := range ns {
		n.Notify(message, severity)
	}
}
