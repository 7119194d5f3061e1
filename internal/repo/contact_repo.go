// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Contact
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition. Field validation belongs to the
// service layer; the store trusts its callers.
//
// Error semantics:
//   - When a contact is not found, Get/Update return ErrNotFound.
//   - DeleteContact is a no-op (nil error) when the id does not exist.
//   - On DB errors the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mvrettas/go-celebrations-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateContact inserts a new Contact row and returns it with the
// store-assigned sequential id filled in. CreatedAt is set to UTC.
func CreateContact(ctx context.Context, db *gorm.DB, name, date, option, imageURI, phone string) (*domain.Contact, error) {
	c := &domain.Contact{
		Name:      name,
		Date:      date,
		Option:    option,
		ImageURI:  imageURI,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// ListContacts returns every contact in insertion order (id ascending).
// It returns an empty slice, never an error, when the table is empty.
func ListContacts(ctx context.Context, db *gorm.DB) ([]domain.Contact, error) {
	var out []domain.Contact
	err := db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

// CountContacts returns the total number of contact rows.
func CountContacts(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Contact{}).Count(&total).Error
	return total, err
}

// ListContactsPage returns a paginated slice in insertion order. Use
// CountContacts to obtain the total for pagination metadata. The caller is
// responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListContactsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Contact, error) {
	var out []domain.Contact
	err := db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetContact fetches a single contact by id, or ErrNotFound.
func GetContact(ctx context.Context, db *gorm.DB, id uint) (*domain.Contact, error) {
	var c domain.Contact
	if err := db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateContact replaces the mutable fields of the contact matching id in
// one statement. If no row is affected (id missing), it returns ErrNotFound
// and the store's visible state is unchanged. Partial-field updates are
// deliberately not offered.
func UpdateContact(ctx context.Context, db *gorm.DB, id uint, name, date, option, imageURI, phone string) error {
	res := db.WithContext(ctx).
		Model(&domain.Contact{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":      name,
			"date":      date,
			"option":    option,
			"image_uri": imageURI,
			"phone":     phone,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteContact removes the row matching id. Deleting a missing id is not
// an error; the operation simply affects zero rows.
func DeleteContact(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Contact{}).Error
}
