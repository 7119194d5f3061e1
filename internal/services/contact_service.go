// Package services – ContactService
//
// This file implements ContactService, the application-level component that
// owns the contact lifecycle. It validates input (the repository layer does
// not re-validate), normalizes the relationship option through the closed
// enumeration, and coordinates repository operations for create, list
// (paginated and full), get, full-record update, and delete.
//
// Service-level errors (e.g., ErrContactNotFound, the validation sentinels)
// are returned for predictable cases so handlers can map them to HTTP
// results consistently.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mvrettas/go-celebrations-backend/internal/domain"
	"github.com/mvrettas/go-celebrations-backend/internal/window"
)

// ContactRepo defines the repository contract required by ContactService.
// Implementations are responsible for persistence of contact records.
type ContactRepo interface {
	// CreateContact inserts a new contact row and returns it with its id.
	CreateContact(ctx context.Context, db *gorm.DB, name, date, option, imageURI, phone string) (*domain.Contact, error)

	// ListContacts returns every contact in insertion order.
	ListContacts(ctx context.Context, db *gorm.DB) ([]domain.Contact, error)

	// CountContacts returns the total number of contacts for pagination.
	CountContacts(ctx context.Context, db *gorm.DB) (int64, error)

	// ListContactsPage returns a page of contacts in insertion order.
	ListContactsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Contact, error)

	// GetContact fetches a contact by id.
	GetContact(ctx context.Context, db *gorm.DB, id uint) (*domain.Contact, error)

	// UpdateContact replaces all mutable fields of the contact matching id.
	UpdateContact(ctx context.Context, db *gorm.DB, id uint, name, date, option, imageURI, phone string) error

	// DeleteContact removes the contact matching id; no-op when absent.
	DeleteContact(ctx context.Context, db *gorm.DB, id uint) error
}

// ContactInput carries the user-supplied fields for create and update.
// Name, Date, Option, and ImageURI are required; Phone is optional.
type ContactInput struct {
	Name     string
	Date     string
	Option   string
	ImageURI string
	Phone    string
}

// ContactService provides contact lifecycle operations. It enforces the
// create/update validation rules and owns the celebration-window view.
type ContactService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the contact repository used by this service.
	Repo ContactRepo

	// WindowDays is the rolling celebration window size in days.
	WindowDays int
}

// NewContactService constructs a ContactService with the default window.
func NewContactService(db *gorm.DB, r ContactRepo) *ContactService {
	return &ContactService{DB: db, Repo: r, WindowDays: window.DefaultDays}
}

// validate checks the required fields and normalizes the relationship
// option to its canonical form. It returns the normalized input.
func validate(in ContactInput) (ContactInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Date = strings.TrimSpace(in.Date)
	in.ImageURI = strings.TrimSpace(in.ImageURI)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" {
		return in, ErrNameRequired
	}
	if in.Date == "" {
		return in, ErrDateRequired
	}
	if _, ok := window.ParseDate(in.Date); !ok {
		return in, ErrDateInvalid
	}
	if strings.TrimSpace(in.Option) == "" {
		return in, ErrRelationshipRequired
	}
	rel, ok := domain.ParseRelationship(in.Option)
	if !ok {
		return in, ErrUnknownRelationship
	}
	in.Option = rel.String()
	if in.ImageURI == "" {
		return in, ErrImageRequired
	}
	return in, nil
}

// Create validates the input and inserts a new contact, returning the
// stored record with its assigned id.
func (s *ContactService) Create(ctx context.Context, in ContactInput) (*domain.Contact, error) {
	in, err := validate(in)
	if err != nil {
		return nil, err
	}
	return s.Repo.CreateContact(ctx, s.DB, in.Name, in.Date, in.Option, in.ImageURI, in.Phone)
}

// List returns every contact in insertion order.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.Repo.ListContacts(ctx, s.DB)
}

// ListPage returns a page of contacts plus the total count. It applies
// defaults for invalid page/pageSize.
func (s *ContactService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Contact, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountContacts(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Contact{}, 0, nil
	}

	items, err := s.Repo.ListContactsPage(ctx, s.DB, offset, pageSize)
	return items, total, err
}

// Get fetches one contact, mapping a repository miss to ErrContactNotFound.
func (s *ContactService) Get(ctx context.Context, id uint) (*domain.Contact, error) {
	c, err := s.Repo.GetContact(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return c, nil
}

// Update validates the input and replaces all mutable fields of the contact
// matching id. A missing id surfaces ErrContactNotFound; the store's
// visible state is unchanged in that case.
func (s *ContactService) Update(ctx context.Context, id uint, in ContactInput) error {
	in, err := validate(in)
	if err != nil {
		return err
	}
	err = s.Repo.UpdateContact(ctx, s.DB, id, in.Name, in.Date, in.Option, in.ImageURI, in.Phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrContactNotFound
	}
	return err
}

// Delete removes the contact matching id. Deleting a missing id is a no-op,
// not an error.
func (s *ContactService) Delete(ctx context.Context, id uint) error {
	return s.Repo.DeleteContact(ctx, s.DB, id)
}

// Celebrations returns the contacts whose date falls inside the rolling
// window starting at now, preserving list order.
func (s *ContactService) Celebrations(ctx context.Context, now time.Time) ([]domain.Contact, error) {
	all, err := s.Repo.ListContacts(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return window.Filter(all, now, s.WindowDays), nil
}
