package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvrettas/go-celebrations-backend/internal/domain"
	"github.com/mvrettas/go-celebrations-backend/internal/services"
)

// ----- Fakes -----

type fakeContactSvc struct {
	createIn  services.ContactInput
	createOut *domain.Contact
	createErr error

	pageArg, sizeArg int
	pageItems        []domain.Contact
	pageTotal        int64
	pageErr          error

	getID  uint
	getOut *domain.Contact
	getErr error

	updateID  uint
	updateIn  services.ContactInput
	updateErr error

	deleteID  uint
	deleteErr error

	celebOut []domain.Contact
	celebErr error
}

func (f *fakeContactSvc) Create(ctx context.Context, in services.ContactInput) (*domain.Contact, error) {
	f.createIn = in
	return f.createOut, f.createErr
}

func (f *fakeContactSvc) ListPage(ctx context.Context, page, pageSize int) ([]domain.Contact, int64, error) {
	f.pageArg, f.sizeArg = page, pageSize
	return f.pageItems, f.pageTotal, f.pageErr
}

func (f *fakeContactSvc) Get(ctx context.Context, id uint) (*domain.Contact, error) {
	f.getID = id
	return f.getOut, f.getErr
}

func (f *fakeContactSvc) Update(ctx context.Context, id uint, in services.ContactInput) error {
	f.updateID, f.updateIn = id, in
	return f.updateErr
}

func (f *fakeContactSvc) Delete(ctx context.Context, id uint) error {
	f.deleteID = id
	return f.deleteErr
}

func (f *fakeContactSvc) Celebrations(ctx context.Context, now time.Time) ([]domain.Contact, error) {
	return f.celebOut, f.celebErr
}

type fakeGreetingSvc struct {
	pickID  uint
	pickOut *services.Greeting
	pickErr error
}

func (f *fakeGreetingSvc) PickForContact(ctx context.Context, id uint) (*services.Greeting, error) {
	f.pickID = id
	return f.pickOut, f.pickErr
}

type fakeReminderSvc struct {
	out *services.ScheduleResult
	err error
}

func (f *fakeReminderSvc) ScheduleWindow(ctx context.Context, now time.Time) (*services.ScheduleResult, error) {
	return f.out, f.err
}

// newTestRouter wires the handlers onto a bare Gin engine in test mode.
func newTestRouter(cs ContactService, gs GreetingService, rs ReminderService) (*gin.Engine, *Handlers) {
	gin.SetMode(gin.TestMode)
	h := New(cs, gs, rs)
	r := gin.New()
	r.POST("/contacts", h.CreateContact)
	r.GET("/contacts", h.ListContacts)
	r.GET("/contacts/:id", h.GetContact)
	r.PUT("/contacts/:id", h.UpdateContact)
	r.DELETE("/contacts/:id", h.DeleteContact)
	r.GET("/celebrations", h.ListCelebrations)
	r.GET("/celebrations/:id/message", h.GenerateMessage)
	r.POST("/celebrations/reminders", h.ScheduleReminders)
	return r, h
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ----- Contact endpoint tests -----

func TestCreateContact_Created(t *testing.T) {
	cs := &fakeContactSvc{createOut: &domain.Contact{ID: 1, Name: "Alice", Date: "2026-09-01", Option: "FRIEND", ImageURI: "img://1"}}
	r, _ := newTestRouter(cs, &fakeGreetingSvc{}, &fakeReminderSvc{})

	w := doJSON(t, r, http.MethodPost, "/contacts", ContactRequest{
		Name: "Alice", Date: "2026-09-01", Option: "friend", ImageURI: "img://1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201 (%s)", w.Code, w.Body.String())
	}

	var got domain.Contact
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 1 || got.Name != "Alice" {
		t.Fatalf("unexpected body: %+v", got)
	}
	if cs.createIn.Option != "friend" {
		t.Fatalf("service received option %q", cs.createIn.Option)
	}
}

func TestCreateContact_ValidationFailure(t *testing.T) {
	cs := &fakeContactSvc{createErr: services.ErrNameRequired}
	r, _ := newTestRouter(cs, &fakeGreetingSvc{}, &fakeReminderSvc{})

	w := doJSON(t, r, http.MethodPost, "/contacts", ContactRequest{Date: "2026-09-01"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeValidation {
		t.Fatalf("code = %q; want %q", resp.Code, ErrCodeValidation)
	}
}

func TestCreateContact_MalformedJSON(t *testing.T) {
	r, _ := newTestRouter(&fakeContactSvc{}, &fakeGreetingSvc{}, &fakeReminderSvc{})

	req := httptest.NewRequest(http.MethodPost, "/contacts", bytes.NewReader([]byte("{nope")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestListContacts_PaginationClamped(t *testing.T) {
	cs := &fakeContactSvc{
		pageItems: []domain.Contact{{ID: 1}, {ID: 2}},
		pageTotal: 42,
	}
	r, _ := newTestRouter(cs, &fakeGreetingSvc{}, &fakeReminderSvc{})

	w := doJSON(t, r, http.MethodGet, "/contacts?page=0&page_size=9999", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if cs.pageArg != 1 || cs.sizeArg != 100 {
		t.Fatalf("page/size = %d/%d; want 1/100 (clamped)", cs.pageArg, cs.sizeArg)
	}

	var resp ListContactsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Pagination.Total != 42 || resp.Pagination.Page != 1 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
	if resp.Pagination.TotalPages != 1 || resp.Pagination.HasNext {
		t.Fatalf("42 items at size 100 is a single page: %+v", resp.Pagination)
	}
}

func TestGetContact_BadIDAndNotFound(t *testing.T) {
	cs := &fakeContactSvc{getErr: services.ErrContactNotFound}
	r, _ := newTestRouter(cs, &fakeGreetingSvc{}, &fakeReminderSvc{})

	for _, path := range []string{"/contacts/abc", "/contacts/0", "/contacts/-3"} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d; want 400", path, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/contacts/7", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
	if cs.getID != 7 {
		t.Fatalf("service got id %d; want 7", cs.getID)
	}
}

func TestUpdateContact_NoContentAndNotFound(t *testing.T) {
	cs := &fakeContactSvc{}
	r, _ := newTestRouter(cs, &fakeGreetingSvc{}, &fakeReminderSvc{})

	body := ContactRequest{Name: "Alice", Date: "2026-09-01", Option: "FRIEND", ImageURI: "img://1"}
	w := doJSON(t, r, http.MethodPut, "/contacts/3", body)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d; want 204 (%s)", w.Code, w.Body.String())
	}
	if cs.updateID != 3 || cs.updateIn.Name != "Alice" {
		t.Fatalf("service got id=%d in=%+v", cs.updateID, cs.updateIn)
	}

	cs.updateErr = services.ErrContactNotFound
	w = doJSON(t, r, http.MethodPut, "/contacts/99", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}

	cs.updateErr = services.ErrDateInvalid
	w = doJSON(t, r, http.MethodPut, "/contacts/3", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400 for validation error", w.Code)
	}
}

func TestDeleteContact_AlwaysNoContentOnSuccess(t *testing.T) {
	cs := &fakeContactSvc{}
	r, _ := newTestRouter(cs, &fakeGreetingSvc{}, &fakeReminderSvc{})

	// Existing and missing ids alike return 204; a miss is a no-op.
	for _, path := range []string{"/contacts/1", "/contacts/424242"} {
		w := doJSON(t, r, http.MethodDelete, path, nil)
		if w.Code != http.StatusNoContent {
			t.Errorf("%s: status = %d; want 204", path, w.Code)
		}
	}

	cs.deleteErr = errors.New("disk gone")
	w := doJSON(t, r, http.MethodDelete, "/contacts/1", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
}
