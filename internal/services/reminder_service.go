// Package services – ReminderService
//
// This file implements ReminderService, the best-effort scheduler that
// turns the current celebration window into repeating local reminders at
// fixed times of day. Each (contact, celebration day, slot) tuple is
// recorded once in the reminders table; the unique key makes re-runs
// idempotent, so launching the app repeatedly never stacks duplicates.
//
// Failure policy follows the platform contract: a notifier permission
// refusal degrades the run (warning + degraded flag) and releases the
// slot's dedupe key so a later run can schedule it; it does not abort the
// remaining contacts. Storage errors do abort, since continuing would
// break the dedupe guarantee.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mvrettas/go-celebrations-backend/internal/notify"
	"github.com/mvrettas/go-celebrations-backend/internal/repo"
	"github.com/mvrettas/go-celebrations-backend/internal/window"
)

// DefaultSlots are the local times of day a reminder fires when the
// configuration does not override them.
var DefaultSlots = []string{"09:00", "13:00", "19:00"}

// ReminderService schedules reminders for contacts inside the window.
type ReminderService struct {
	// DB is the GORM handle used for the reminder dedupe table.
	DB *gorm.DB
	// Contacts supplies the celebration-window view.
	Contacts *ContactService
	// Notifier is the notification platform collaborator.
	Notifier notify.Notifier
	// Slots are "HH:MM" local times of day; DefaultSlots when empty.
	Slots []string
	// Log receives scheduling outcomes.
	Log zerolog.Logger
}

// ScheduleResult summarizes one scheduler run.
type ScheduleResult struct {
	// Contacts is the number of contacts inside the window.
	Contacts int `json:"contacts"`
	// Scheduled counts newly scheduled reminders; replays of already
	// recorded keys are not counted.
	Scheduled int `json:"scheduled"`
	// Degraded is true when the platform refused notification permission;
	// the refused slots were released for a later run and the run itself
	// succeeded.
	Degraded bool `json:"degraded"`
}

// ScheduleWindow schedules reminders for every contact celebrating within
// the rolling window starting at now.
func (s *ReminderService) ScheduleWindow(ctx context.Context, now time.Time) (*ScheduleResult, error) {
	slots := s.Slots
	if len(slots) == 0 {
		slots = DefaultSlots
	}

	celebrating, err := s.Contacts.Celebrations(ctx, now)
	if err != nil {
		return nil, err
	}

	res := &ScheduleResult{Contacts: len(celebrating)}
	for _, c := range celebrating {
		daysLeft, ok := window.DaysUntil(c.Date, now)
		if !ok {
			continue
		}
		day, _ := window.ParseDate(c.Date)
		fireOn := day.Format("2006-01-02")

		for _, slot := range slots {
			created, err := repo.CreateReminder(ctx, s.DB, c.ID, fireOn, slot, daysLeft)
			if err != nil {
				return nil, err
			}
			if !created {
				// Already scheduled on a previous run.
				continue
			}

			trigger, err := slotTime(now, slot)
			if err != nil {
				return nil, err
			}
			n := notify.Notification{
				Title:     "Upcoming celebration",
				Body:      reminderBody(c.Name, daysLeft),
				TriggerAt: trigger,
				Repeat:    true,
			}
			if err := s.Notifier.Schedule(ctx, n); err != nil {
				if errors.Is(err, notify.ErrPermissionDenied) {
					// Release the key so a later run with permission
					// granted can schedule this slot.
					if derr := repo.DeleteReminder(ctx, s.DB, c.ID, fireOn, slot); derr != nil {
						return nil, derr
					}
					if !res.Degraded {
						s.Log.Warn().
							Uint("contact_id", c.ID).
							Msg("notification permission denied; reminder slot released")
					}
					res.Degraded = true
					continue
				}
				return nil, err
			}
			res.Scheduled++
		}
	}
	return res, nil
}

// reminderBody renders the day-count message carried by each notification.
func reminderBody(name string, daysLeft int) string {
	switch daysLeft {
	case 0:
		return fmt.Sprintf("%s is celebrating today!", name)
	case 1:
		return fmt.Sprintf("%s is celebrating tomorrow.", name)
	default:
		return fmt.Sprintf("%s is celebrating in %d days.", name, daysLeft)
	}
}

// slotTime resolves an "HH:MM" slot to the next occurrence on or after now
// in now's location.
func slotTime(now time.Time, slot string) (time.Time, error) {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad reminder slot %q: %w", slot, err)
	}
	y, m, d := now.Date()
	at := time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, now.Location())
	if at.Before(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at, nil
}
