// Package services defines the business logic for contacts, greetings, and
// reminders. This file centralizes common service-level error values so that
// they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing messages or HTTP status codes is performed
// at the handler layer.
package services

import "errors"

// Validation errors. Each one blocks the triggering operation entirely.
var (
	// ErrNameRequired is returned when a create/update request carries an
	// empty contact name.
	ErrNameRequired = errors.New("name is required")

	// ErrDateRequired is returned when a create/update request carries an
	// empty date.
	ErrDateRequired = errors.New("date is required")

	// ErrDateInvalid is returned when the date does not parse as an
	// ISO-8601 calendar date.
	ErrDateInvalid = errors.New("date must be an ISO-8601 calendar date")

	// ErrRelationshipRequired is returned when a create/update request
	// carries an empty relationship option.
	ErrRelationshipRequired = errors.New("relationship option is required")

	// ErrUnknownRelationship is returned when the relationship option is
	// not a member of the closed enumeration.
	ErrUnknownRelationship = errors.New("unknown relationship option")

	// ErrImageRequired is returned when a create/update request carries an
	// empty image reference.
	ErrImageRequired = errors.New("image is required")
)

// Lookup errors.
var (
	// ErrContactNotFound indicates that the referenced contact id does not
	// exist.
	ErrContactNotFound = errors.New("contact not found")

	// ErrNoGreetings indicates that the greeting catalog holds no candidate
	// texts for the requested relationship key. This is reported to the
	// caller, never silently defaulted.
	ErrNoGreetings = errors.New("no greeting found for this relationship")
)
