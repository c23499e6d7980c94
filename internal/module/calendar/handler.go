package calendar

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/middleware"
	"github.com/peoplekit/portal/internal/pkg"
)

// EventHandler handles REST API requests for calendar events.
type EventHandler struct {
	svc domain.EventService
}

// NewHandler creates an EventHandler with the given service.
func NewHandler(svc domain.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) bindEvent(c *gin.Context) (*domain.Event, bool) {
	var req EventInput
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}

	starts, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "starts_at must be an RFC 3339 timestamp", err))
		return nil, false
	}
	ends, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "ends_at must be an RFC 3339 timestamp", err))
		return nil, false
	}

	return &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    starts,
		EndsAt:      ends,
		AllDay:      req.AllDay,
		CreatedBy:   middleware.GetUserID(c),
	}, true
}

// Create handles POST /api/v1/calendar/events.
func (h *EventHandler) Create(c *gin.Context) {
	e, ok := h.bindEvent(c)
	if !ok {
		return
	}

	created, err := h.svc.CreateEvent(c.Request.Context(), e)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    created,
	})
}

// Get handles GET /api/v1/calendar/events/:id.
func (h *EventHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	e, err := h.svc.GetEvent(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, e)
}

// List handles GET /api/v1/calendar/events.
func (h *EventHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListEvents(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Range handles GET /api/v1/calendar/events/range?from=...&to=... where both
// bounds are dates. The month and week views fetch their window through
// this endpoint.
func (h *EventHandler) Range(c *gin.Context) {
	from, err := time.Parse(domain.DateLayout, c.Query("from"))
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "from must be a date (YYYY-MM-DD)", err))
		return
	}
	to, err := time.Parse(domain.DateLayout, c.Query("to"))
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "to must be a date (YYYY-MM-DD)", err))
		return
	}

	// Include the whole closing day.
	events, err := h.svc.ListRange(c.Request.Context(), from, to.Add(24*time.Hour-time.Nanosecond))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, events)
}

// Update handles PUT /api/v1/calendar/events/:id.
func (h *EventHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	e, ok := h.bindEvent(c)
	if !ok {
		return
	}
	e.ID = id

	updated, err := h.svc.UpdateEvent(c.Request.Context(), e)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, updated)
}

// Delete handles DELETE /api/v1/calendar/events/:id.
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteEvent(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
