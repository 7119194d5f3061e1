// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the Reminder
// model, which makes notification scheduling idempotent across launches.
package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mvrettas/go-celebrations-backend/internal/domain"
)

// CreateReminder inserts a reminder keyed by (contact_id, fire_on, slot).
// It returns created=false without error when the key already exists, so a
// re-run of the scheduler updates nothing and schedules nothing twice.
func CreateReminder(ctx context.Context, db *gorm.DB, contactID uint, fireOn, slot string, daysLeft int) (created bool, err error) {
	rec := &domain.Reminder{
		ContactID: contactID,
		FireOn:    fireOn,
		Slot:      slot,
		DaysLeft:  daysLeft,
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(low, "unique constraint failed") ||
			strings.Contains(low, "constraint failed: unique") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteReminder releases a previously recorded (contact_id, fire_on, slot)
// key. Deleting a key that was never recorded is a no-op. The scheduler uses
// this when the platform refuses a notification after the key was written,
// so a later run can schedule the slot.
func DeleteReminder(ctx context.Context, db *gorm.DB, contactID uint, fireOn, slot string) error {
	return db.WithContext(ctx).
		Where("contact_id = ? AND fire_on = ? AND slot = ?", contactID, fireOn, slot).
		Delete(&domain.Reminder{}).Error
}

// CountReminders returns the number of reminder rows recorded for a contact.
func CountReminders(ctx context.Context, db *gorm.DB, contactID uint) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Reminder{}).
		Where("contact_id = ?", contactID).
		Count(&total).Error
	return total, err
}

// PruneReminders deletes reminder rows whose fire date sorts before cutoff
// ("2006-01-02"). Lexicographic comparison is correct for ISO dates.
func PruneReminders(ctx context.Context, db *gorm.DB, cutoff string) error {
	return db.WithContext(ctx).
		Where("fire_on < ?", cutoff).
		Delete(&domain.Reminder{}).Error
}
