package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/mvrettas/go-celebrations-backend/internal/domain"
	"github.com/mvrettas/go-celebrations-backend/internal/window"
)

// ----- Fake repo -----

type fakeContactRepo struct {
	// capture args
	createName     string
	createDate     string
	createOption   string
	createImageURI string
	createPhone    string
	createErr      error

	listItems []domain.Contact
	listErr   error

	countTotal int64
	countErr   error

	pageOffset int
	pageLimit  int
	pageItems  []domain.Contact
	pageErr    error

	getID   uint
	getItem *domain.Contact
	getErr  error

	updateID     uint
	updateName   string
	updateOption string
	updateErr    error

	deleteID  uint
	deleteErr error
}

func (r *fakeContactRepo) CreateContact(ctx context.Context, db *gorm.DB, name, date, option, imageURI, phone string) (*domain.Contact, error) {
	r.createName, r.createDate, r.createOption = name, date, option
	r.createImageURI, r.createPhone = imageURI, phone
	if r.createErr != nil {
		return nil, r.createErr
	}
	return &domain.Contact{ID: 1, Name: name, Date: date, Option: option, ImageURI: imageURI, Phone: phone}, nil
}

func (r *fakeContactRepo) ListContacts(ctx context.Context, db *gorm.DB) ([]domain.Contact, error) {
	return r.listItems, r.listErr
}

func (r *fakeContactRepo) CountContacts(ctx context.Context, db *gorm.DB) (int64, error) {
	return r.countTotal, r.countErr
}

func (r *fakeContactRepo) ListContactsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Contact, error) {
	r.pageOffset, r.pageLimit = offset, limit
	return r.pageItems, r.pageErr
}

func (r *fakeContactRepo) GetContact(ctx context.Context, db *gorm.DB, id uint) (*domain.Contact, error) {
	r.getID = id
	return r.getItem, r.getErr
}

func (r *fakeContactRepo) UpdateContact(ctx context.Context, db *gorm.DB, id uint, name, date, option, imageURI, phone string) error {
	r.updateID, r.updateName, r.updateOption = id, name, option
	return r.updateErr
}

func (r *fakeContactRepo) DeleteContact(ctx context.Context, db *gorm.DB, id uint) error {
	r.deleteID = id
	return r.deleteErr
}

// ----- Tests -----

func TestNewContactService_Defaults(t *testing.T) {
	r := &fakeContactRepo{}
	s := NewContactService(nil, r)

	if s.DB != nil { // DB can be nil in tests
		t.Fatalf("expected nil DB, got %v", s.DB)
	}
	if s.Repo != ContactRepo(r) {
		t.Fatalf("repo not set")
	}
	if s.WindowDays != window.DefaultDays {
		t.Fatalf("WindowDays default = %d, got %d", window.DefaultDays, s.WindowDays)
	}
}

func TestCreate_ValidationTable(t *testing.T) {
	cases := map[string]struct {
		in      ContactInput
		wantErr error
	}{
		"missing name": {
			in:      ContactInput{Date: "2026-09-01", Option: "FRIEND", ImageURI: "img://1"},
			wantErr: ErrNameRequired,
		},
		"whitespace name": {
			in:      ContactInput{Name: "   ", Date: "2026-09-01", Option: "FRIEND", ImageURI: "img://1"},
			wantErr: ErrNameRequired,
		},
		"missing date": {
			in:      ContactInput{Name: "Alice", Option: "FRIEND", ImageURI: "img://1"},
			wantErr: ErrDateRequired,
		},
		"bad date": {
			in:      ContactInput{Name: "Alice", Date: "27/08/2026", Option: "FRIEND", ImageURI: "img://1"},
			wantErr: ErrDateInvalid,
		},
		"missing option": {
			in:      ContactInput{Name: "Alice", Date: "2026-09-01", ImageURI: "img://1"},
			wantErr: ErrRelationshipRequired,
		},
		"unknown option": {
			in:      ContactInput{Name: "Alice", Date: "2026-09-01", Option: "ROBOT", ImageURI: "img://1"},
			wantErr: ErrUnknownRelationship,
		},
		"missing image": {
			in:      ContactInput{Name: "Alice", Date: "2026-09-01", Option: "FRIEND"},
			wantErr: ErrImageRequired,
		},
	}

	for name, tc := range cases {
		r := &fakeContactRepo{}
		s := NewContactService(nil, r)
		_, err := s.Create(context.Background(), tc.in)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: err = %v; want %v", name, err, tc.wantErr)
		}
		if r.createName != "" {
			t.Errorf("%s: repo called despite validation failure", name)
		}
	}
}

func TestCreate_NormalizesRelationshipCasing(t *testing.T) {
	r := &fakeContactRepo{}
	s := NewContactService(nil, r)

	c, err := s.Create(context.Background(), ContactInput{
		Name:     "  Alice  ",
		Date:     "2026-09-01",
		Option:   "  friend ",
		ImageURI: "img://1",
		Phone:    " +30 694 123 4567 ",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("expected stored record back, got %+v", c)
	}
	if r.createName != "Alice" {
		t.Fatalf("name not trimmed: %q", r.createName)
	}
	if r.createOption != "FRIEND" {
		t.Fatalf("option not canonicalized: %q", r.createOption)
	}
	if r.createPhone != "+30 694 123 4567" {
		t.Fatalf("phone not trimmed: %q", r.createPhone)
	}
}

func TestCreate_PhoneOptional(t *testing.T) {
	r := &fakeContactRepo{}
	s := NewContactService(nil, r)
	if _, err := s.Create(context.Background(), ContactInput{
		Name: "Alice", Date: "2026-09-01", Option: "FRIEND", ImageURI: "img://1",
	}); err != nil {
		t.Fatalf("Create without phone: %v", err)
	}
}

func TestListPage_DefaultsAndOffsets(t *testing.T) {
	r := &fakeContactRepo{countTotal: 42, pageItems: []domain.Contact{{ID: 1}, {ID: 2}}}
	s := NewContactService(nil, r)

	items, total, err := s.ListPage(context.Background(), 3, 10)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 42 || len(items) != 2 {
		t.Fatalf("unexpected result: total=%d len=%d", total, len(items))
	}
	if r.pageOffset != 20 || r.pageLimit != 10 {
		t.Fatalf("offset/limit = %d/%d; want 20/10", r.pageOffset, r.pageLimit)
	}

	// Invalid page/size fall back to defaults 1/20.
	r2 := &fakeContactRepo{countTotal: 5}
	s2 := NewContactService(nil, r2)
	if _, _, err := s2.ListPage(context.Background(), -1, 0); err != nil {
		t.Fatalf("ListPage defaults: %v", err)
	}
	if r2.pageOffset != 0 || r2.pageLimit != 20 {
		t.Fatalf("expected default offset/limit 0/20; got %d/%d", r2.pageOffset, r2.pageLimit)
	}
}

func TestListPage_TotalZeroSkipsItemsQuery(t *testing.T) {
	r := &fakeContactRepo{countTotal: 0, pageErr: errors.New("must not be called")}
	s := NewContactService(nil, r)

	items, total, err := s.ListPage(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Fatalf("expected empty page when total=0")
	}
	if r.pageLimit != 0 {
		t.Fatalf("items query was issued despite total=0")
	}
}

func TestGet_MapsRecordNotFound(t *testing.T) {
	r := &fakeContactRepo{getErr: gorm.ErrRecordNotFound}
	s := NewContactService(nil, r)

	if _, err := s.Get(context.Background(), 9); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}

	sentinel := errors.New("db down")
	r2 := &fakeContactRepo{getErr: sentinel}
	s2 := NewContactService(nil, r2)
	if _, err := s2.Get(context.Background(), 9); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel passthrough, got %v", err)
	}
}

func TestUpdate_ValidatesThenMapsNotFound(t *testing.T) {
	// Validation failure: repo never called.
	r := &fakeContactRepo{}
	s := NewContactService(nil, r)
	err := s.Update(context.Background(), 1, ContactInput{Name: "", Date: "2026-09-01", Option: "FRIEND", ImageURI: "i"})
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if r.updateID != 0 {
		t.Fatalf("repo called despite invalid input")
	}

	// Missing id surfaces ErrContactNotFound.
	r2 := &fakeContactRepo{updateErr: gorm.ErrRecordNotFound}
	s2 := NewContactService(nil, r2)
	err = s2.Update(context.Background(), 5, ContactInput{Name: "A", Date: "2026-09-01", Option: "son", ImageURI: "i"})
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
	if r2.updateID != 5 || r2.updateOption != "SON" {
		t.Fatalf("repo got id=%d option=%q", r2.updateID, r2.updateOption)
	}
}

func TestDelete_Forwards(t *testing.T) {
	r := &fakeContactRepo{}
	s := NewContactService(nil, r)
	if err := s.Delete(context.Background(), 11); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if r.deleteID != 11 {
		t.Fatalf("repo got id %d; want 11", r.deleteID)
	}
}

func TestCelebrations_FiltersThroughWindow(t *testing.T) {
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	r := &fakeContactRepo{listItems: []domain.Contact{
		{ID: 1, Name: "in", Date: "2026-08-29"},
		{ID: 2, Name: "out", Date: "2026-11-01"},
		{ID: 3, Name: "edge", Date: "2026-09-01"},
	}}
	s := NewContactService(nil, r)

	got, err := s.Celebrations(context.Background(), now)
	if err != nil {
		t.Fatalf("Celebrations: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected window view: %+v", got)
	}

	// List errors propagate.
	sentinel := errors.New("boom")
	r2 := &fakeContactRepo{listErr: sentinel}
	s2 := NewContactService(nil, r2)
	if _, err := s2.Celebrations(context.Background(), now); !errors.Is(err, sentinel) {
		t.Fatalf("expected list error to propagate, got %v", err)
	}
}
