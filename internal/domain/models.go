// Package domain defines the persistence models for contacts, greeting
// texts, and scheduled reminders. These types are mapped with GORM and form
// the core data layer of the celebrations application.
package domain

import "time"

// Contact represents one tracked person and their significant date
// (birthday, anniversary). The date is stored as an ISO-8601 string exactly
// as received; parsing happens in the window package.
//
// Fields:
//   - ID: store-assigned sequential integer, never reused.
//   - Name: display name, required non-empty.
//   - Date: ISO-8601 calendar date ("2006-01-02" or a full RFC 3339 stamp).
//   - Option: relationship category, one value of the closed enumeration.
//   - ImageURI: opaque reference to a locally stored image; the backend
//     never interprets it.
//   - Phone: optional dial-out number, used only to format tel: links.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Contact struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"       gorm:"type:text;not null"`
	Date      string    `json:"date"       gorm:"type:text;not null"`
	Option    string    `json:"option"     gorm:"type:text;not null"`
	ImageURI  string    `json:"image_uri"  gorm:"column:image_uri;type:text;not null"`
	Phone     string    `json:"phone,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Contact.
func (Contact) TableName() string { return "contacts" }

// Greeting is one candidate greeting text for a relationship category.
// Greetings belong to the message cache, not to a specific contact; an
// unmatched relationship key simply yields zero rows.
type Greeting struct {
	ID           uint   `json:"id"           gorm:"primaryKey;autoIncrement"`
	Relationship string `json:"relationship" gorm:"type:text;not null;index:idx_greeting_rel"`
	Content      string `json:"content"      gorm:"type:text;not null"`
}

// TableName returns the database table name for Greeting.
func (Greeting) TableName() string { return "greetings" }

// Reminder records one scheduled notification slot for a contact. The
// unique index over (contact_id, fire_on, slot) is the idempotency key that
// keeps re-runs of the scheduler from stacking duplicate repeating
// reminders for the same celebration.
//
// FireOn is the celebration date ("2006-01-02"); Slot is the local
// time-of-day label ("09:00").
type Reminder struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	ContactID uint      `gorm:"not null;uniqueIndex:ux_reminder_contact_day_slot,priority:1"`
	FireOn    string    `gorm:"type:text;not null;uniqueIndex:ux_reminder_contact_day_slot,priority:2"`
	Slot      string    `gorm:"type:text;not null;uniqueIndex:ux_reminder_contact_day_slot,priority:3"`
	DaysLeft  int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName implements the GORM tabler interface.
func (Reminder) TableName() string { return "reminders" }
