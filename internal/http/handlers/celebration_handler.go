// Celebration HTTP handlers.
//
// This file exposes the "upcoming celebrations" view and its two actions:
//   - GET  /celebrations                (window view with day counts)
//   - GET  /celebrations/{id}/message   (random greeting for the contact)
//   - POST /celebrations/reminders      (schedule reminders for the window)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvrettas/go-celebrations-backend/internal/domain"
	"github.com/mvrettas/go-celebrations-backend/internal/services"
	"github.com/mvrettas/go-celebrations-backend/internal/utils"
	"github.com/mvrettas/go-celebrations-backend/internal/window"
)

// CelebrationItem is one contact inside the window, decorated with the
// remaining day count and, when a phone number is stored, a tel: link for
// the platform's telephony launcher.
type CelebrationItem struct {
	domain.Contact
	DaysLeft int    `json:"days_left"`
	CallURL  string `json:"call_url,omitempty"`
}

// ListCelebrationsResponse wraps the window view.
type ListCelebrationsResponse struct {
	Celebrations []CelebrationItem `json:"celebrations"`
}

// ListCelebrations godoc
// @ID          listCelebrations
// @Summary     List upcoming celebrations
// @Description Returns contacts whose date falls inside the rolling window [today, today+5d], in list order, with the remaining day count per contact.
// @Tags        Celebrations
// @Produce     json
//
// @Success     200  {object} handlers.ListCelebrationsResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /celebrations [get]
func (h *Handlers) ListCelebrations(c *gin.Context) {
	now := h.now()
	celebrating, err := h.contactSvc.Celebrations(c.Request.Context(), now)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	items := make([]CelebrationItem, 0, len(celebrating))
	for _, contact := range celebrating {
		daysLeft, _ := window.DaysUntil(contact.Date, now)
		items = append(items, CelebrationItem{
			Contact:  contact,
			DaysLeft: daysLeft,
			CallURL:  utils.TelURL(contact.Phone),
		})
	}
	ok(c, http.StatusOK, ListCelebrationsResponse{Celebrations: items})
}

// GenerateMessage godoc
// @ID          generateMessage
// @Summary     Generate a greeting message
// @Description Picks one greeting text at random for the contact's relationship category. The text is ready to copy to the clipboard.
// @Tags        Celebrations
// @Produce     json
//
// @Param       id  path  int  true  "Contact ID"  minimum(1)
//
// @Success     200  {object} services.Greeting
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Contact or greeting not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /celebrations/{id}/message [get]
func (h *Handlers) GenerateMessage(c *gin.Context) {
	id, okID := contactID(c)
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "contact id must be a positive integer")
		return
	}

	g, err := h.greetingSvc.PickForContact(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContactNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "contact not found")
		case errors.Is(err, services.ErrNoGreetings):
			fail(c, http.StatusNotFound, ErrCodeGreetingNotFound, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, g)
}

// ScheduleReminders godoc
// @ID          scheduleReminders
// @Summary     Schedule reminders for the current window
// @Description Schedules repeating local reminders at the configured times of day for every contact inside the window. Re-running never duplicates reminders; a refused notification permission degrades the run instead of failing it.
// @Tags        Celebrations
// @Produce     json
//
// @Success     202  {object} services.ScheduleResult
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /celebrations/reminders [post]
func (h *Handlers) ScheduleReminders(c *gin.Context) {
	res, err := h.reminderSvc.ScheduleWindow(c.Request.Context(), h.now())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeScheduleFailed, err.Error())
		return
	}
	ok(c, http.StatusAccepted, res)
}
