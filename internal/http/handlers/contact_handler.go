// Contact HTTP handlers.
//
// This file exposes REST endpoints for contact resources:
//   - POST   /contacts          (create)
//   - GET    /contacts          (list, paginated, ETag support)
//   - GET    /contacts/{id}     (fetch)
//   - PUT    /contacts/{id}     (full-record update)
//   - DELETE /contacts/{id}     (delete; no-op on missing id)
//
// Handlers are transport-thin: they validate input shape, call application
// services, and translate results into HTTP responses (including
// conditional responses).
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mvrettas/go-celebrations-backend/internal/domain"
	"github.com/mvrettas/go-celebrations-backend/internal/repo"
	"github.com/mvrettas/go-celebrations-backend/internal/services"
	"github.com/mvrettas/go-celebrations-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// ContactService defines contact lifecycle operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use and honor the
// provided context.
type ContactService interface {
	// Create validates and stores a new contact.
	Create(ctx context.Context, in services.ContactInput) (*domain.Contact, error)
	// ListPage returns a page of contacts and the total count.
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Contact, int64, error)
	// Get fetches one contact by id.
	Get(ctx context.Context, id uint) (*domain.Contact, error)
	// Update replaces all mutable fields of the contact matching id.
	Update(ctx context.Context, id uint, in services.ContactInput) error
	// Delete removes the contact matching id; no-op when absent.
	Delete(ctx context.Context, id uint) error
	// Celebrations returns the contacts inside the rolling window at now.
	Celebrations(ctx context.Context, now time.Time) ([]domain.Contact, error)
}

// GreetingService defines message generation consumed by HTTP handlers.
type GreetingService interface {
	// PickForContact returns a random greeting for the contact's relationship.
	PickForContact(ctx context.Context, id uint) (*services.Greeting, error)
}

// ReminderService defines reminder scheduling consumed by HTTP handlers.
type ReminderService interface {
	// ScheduleWindow schedules reminders for the current window.
	ScheduleWindow(ctx context.Context, now time.Time) (*services.ScheduleResult, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for contacts, celebrations, greetings, and
// reminders. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	contactSvc  ContactService
	greetingSvc GreetingService
	reminderSvc ReminderService

	// now is the clock used for window computations; tests override it.
	now func() time.Time
}

// New constructs a Handlers instance bound to the given services.
func New(contactSvc ContactService, greetingSvc GreetingService, reminderSvc ReminderService) *Handlers {
	return &Handlers{
		contactSvc:  contactSvc,
		greetingSvc: greetingSvc,
		reminderSvc: reminderSvc,
		now:         time.Now,
	}
}

//
// DTOs
//

// ContactRequest is the JSON payload for creating or updating a contact.
// All fields except phone are required; the relationship option must be a
// member of the closed enumeration (case-insensitive).
type ContactRequest struct {
	Name     string `json:"name"      example:"Alice"`
	Date     string `json:"date"      example:"2026-09-01"`
	Option   string `json:"option"    example:"FRIEND"`
	ImageURI string `json:"image_uri" example:"img://1"`
	Phone    string `json:"phone,omitempty" example:"+30 694 123 4567"`
}

// input converts the DTO into the service-layer shape.
func (r ContactRequest) input() services.ContactInput {
	return services.ContactInput{
		Name:     r.Name,
		Date:     r.Date,
		Option:   r.Option,
		ImageURI: r.ImageURI,
		Phone:    r.Phone,
	}
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListContactsResponse wraps a page of contacts and pagination information.
type ListContactsResponse struct {
	Contacts   []domain.Contact `json:"contacts"`
	Pagination Pagination       `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params.
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// contactID parses the :id path parameter as a positive integer.
func contactID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// isValidationErr reports whether err is one of the create/update
// validation sentinels.
func isValidationErr(err error) bool {
	return errors.Is(err, services.ErrNameRequired) ||
		errors.Is(err, services.ErrDateRequired) ||
		errors.Is(err, services.ErrDateInvalid) ||
		errors.Is(err, services.ErrRelationshipRequired) ||
		errors.Is(err, services.ErrUnknownRelationship) ||
		errors.Is(err, services.ErrImageRequired)
}

//
// Handlers
//

// CreateContact godoc
// @ID          createContact
// @Summary     Create a new contact
// @Description Stores a contact with its celebration date and returns the record with its assigned id.
// @Tags        Contacts
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ContactRequest  true  "Create contact payload"
//
// @Success     201  {object}  domain.Contact
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /contacts [post]
func (h *Handlers) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	contact, err := h.contactSvc.Create(c.Request.Context(), req.input())
	if err != nil {
		if isValidationErr(err) {
			fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, contact)
}

// ListContacts godoc
// @ID          listContacts
// @Summary     List contacts (paginated)
// @Description Returns a page of contacts in insertion order. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Contacts
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page           query   int     false "Page number"      minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"   minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListContactsResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /contacts [get]
func (h *Handlers) ListContacts(c *gin.Context) {
	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, okc := h.contactSvc.(*services.ContactService); okc {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.ContactsStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"contacts:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.contactSvc.ListPage(ctx, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	resp := ListContactsResponse{
		Contacts: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	}
	ok(c, http.StatusOK, resp)
}

// GetContact godoc
// @ID          getContact
// @Summary     Fetch one contact
// @Tags        Contacts
// @Produce     json
//
// @Param       id  path  int  true  "Contact ID"  minimum(1)
//
// @Success     200  {object} domain.Contact
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Contact not found"
// @Router      /contacts/{id} [get]
func (h *Handlers) GetContact(c *gin.Context) {
	id, okID := contactID(c)
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "contact id must be a positive integer")
		return
	}

	contact, err := h.contactSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "contact not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, contact)
}

// UpdateContact godoc
// @ID          updateContact
// @Summary     Replace a contact
// @Description Replaces name, date, option, image, and phone together. Partial updates are not supported.
// @Tags        Contacts
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                      true  "Contact ID"  minimum(1)
// @Param       body  body  handlers.ContactRequest  true  "Full replacement payload"
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Validation failed"
// @Failure     404  {object} handlers.ErrorResponse "Contact not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /contacts/{id} [put]
func (h *Handlers) UpdateContact(c *gin.Context) {
	id, okID := contactID(c)
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "contact id must be a positive integer")
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	if err := h.contactSvc.Update(c.Request.Context(), id, req.input()); err != nil {
		switch {
		case isValidationErr(err):
			fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
		case errors.Is(err, services.ErrContactNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "contact not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	noContent(c)
}

// DeleteContact godoc
// @ID          deleteContact
// @Summary     Delete a contact
// @Description Removes the contact. Deleting a missing id is a no-op and still returns 204.
// @Tags        Contacts
// @Produce     json
//
// @Param       id  path  int  true  "Contact ID"  minimum(1)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /contacts/{id} [delete]
func (h *Handlers) DeleteContact(c *gin.Context) {
	id, okID := contactID(c)
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "contact id must be a positive integer")
		return
	}

	if err := h.contactSvc.Delete(c.Request.Context(), id); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}
