// Package notify defines the notification-platform collaborator consumed by
// the reminder scheduler. The core only builds {title, body, trigger-time,
// repeat} payloads; delivery, permission prompts, and OS scheduling belong
// to the platform behind the Notifier interface.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// ErrPermissionDenied is returned by a Notifier when the user refused
// notification permission. Schedulers treat it as a degradation, not a
// failure: remaining work continues and the caller gets a warning.
var ErrPermissionDenied = errors.New("notification permission denied")

// Notification is one reminder to be delivered by the platform.
type Notification struct {
	Title     string
	Body      string
	TriggerAt time.Time
	Repeat    bool
}

// Notifier schedules local notifications. Implementations must be safe for
// concurrent use and should honor ctx for cancellation.
type Notifier interface {
	Schedule(ctx context.Context, n Notification) error
}

// LogNotifier is the default Notifier: it records each scheduled reminder
// in the structured log. Useful headless and in tests; a real mobile shell
// replaces it with a platform-backed implementation.
type LogNotifier struct {
	Log zerolog.Logger
}

// Schedule logs the notification and reports success.
func (l *LogNotifier) Schedule(_ context.Context, n Notification) error {
	l.Log.Info().
		Str("title", n.Title).
		Str("body", n.Body).
		Time("trigger_at", n.TriggerAt).
		Bool("repeat", n.Repeat).
		Msg("reminder scheduled")
	return nil
}
